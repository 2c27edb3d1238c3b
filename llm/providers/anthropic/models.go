package anthropic

const (
	ModelClaude35Haiku  = "claude-3-5-haiku-20241022"
	ModelClaude37Sonnet = "claude-3-7-sonnet-20250219"
	ModelClaudeSonnet4  = "claude-sonnet-4-20250514"
	ModelClaudeOpus4    = "claude-opus-4-20250514"
)
