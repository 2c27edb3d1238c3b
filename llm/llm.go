package llm

import "context"

// LLM is a model service capable of producing a text completion for a
// sequence of messages. Implementations must return content blocks that can
// be concatenated in order; streaming is intentionally out of scope.
type LLM interface {
	// Generate a response from the model by passing messages.
	Generate(ctx context.Context, messages []*Message, opts ...GenerateOption) (*Response, error)

	// Name returns the provider name, e.g. "anthropic".
	Name() string
}

// CostEstimator is optionally implemented by providers that know the pricing
// of their models. The estimate is informational only.
type CostEstimator interface {
	EstimateCost(usage Usage) float64
}

// GenerateOption is a function that configures the generation.
type GenerateOption func(*GenerateConfig)

// GenerateConfig holds configuration parameters for a single generation.
type GenerateConfig struct {
	Model        string
	SystemPrompt string
	MaxTokens    *int
	Temperature  *float64
}

// Apply runs the given options against the config.
func (c *GenerateConfig) Apply(opts ...GenerateOption) {
	for _, opt := range opts {
		opt(c)
	}
}

// WithModel sets the model used for the generation.
func WithModel(model string) GenerateOption {
	return func(config *GenerateConfig) {
		config.Model = model
	}
}

// WithSystemPrompt sets the system prompt.
func WithSystemPrompt(systemPrompt string) GenerateOption {
	return func(config *GenerateConfig) {
		config.SystemPrompt = systemPrompt
	}
}

// WithMaxTokens sets the max output tokens.
func WithMaxTokens(maxTokens int) GenerateOption {
	return func(config *GenerateConfig) {
		config.MaxTokens = &maxTokens
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(temperature float64) GenerateOption {
	return func(config *GenerateConfig) {
		config.Temperature = &temperature
	}
}
