package anthropic

import "github.com/mailforge-ai/mailforge/llm"

// PricingInfo holds per-model pricing in USD per 1M tokens.
type PricingInfo struct {
	Model       string  `json:"model"`
	InputPrice  float64 `json:"input_price_per_1m_tokens"`
	OutputPrice float64 `json:"output_price_per_1m_tokens"`
	UpdatedAt   string  `json:"updated_at"` // YYYY-MM-DD
}

// TextModelPricing contains pricing for the supported text models.
var TextModelPricing = map[string]PricingInfo{
	ModelClaude35Haiku: {
		Model:       ModelClaude35Haiku,
		InputPrice:  0.80,
		OutputPrice: 4.00,
		UpdatedAt:   "2025-01-15",
	},
	ModelClaude37Sonnet: {
		Model:       ModelClaude37Sonnet,
		InputPrice:  3.00,
		OutputPrice: 15.00,
		UpdatedAt:   "2025-01-15",
	},
	ModelClaudeSonnet4: {
		Model:       ModelClaudeSonnet4,
		InputPrice:  3.00,
		OutputPrice: 15.00,
		UpdatedAt:   "2025-05-22",
	},
	ModelClaudeOpus4: {
		Model:       ModelClaudeOpus4,
		InputPrice:  15.00,
		OutputPrice: 75.00,
		UpdatedAt:   "2025-05-22",
	},
}

// EstimateCost returns the estimated USD cost for the given usage against
// the given model. Unknown models estimate to zero.
func EstimateCost(model string, usage llm.Usage) float64 {
	pricing, ok := TextModelPricing[model]
	if !ok {
		return 0
	}
	inputCost := float64(usage.InputTokens) / 1_000_000 * pricing.InputPrice
	outputCost := float64(usage.OutputTokens) / 1_000_000 * pricing.OutputPrice
	return inputCost + outputCost
}
