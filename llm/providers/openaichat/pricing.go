package openaichat

import "github.com/mailforge-ai/mailforge/llm"

// PricingInfo holds per-model pricing in USD per 1M tokens.
type PricingInfo struct {
	Model       string  `json:"model"`
	InputPrice  float64 `json:"input_price_per_1m_tokens"`
	OutputPrice float64 `json:"output_price_per_1m_tokens"`
	UpdatedAt   string  `json:"updated_at"` // YYYY-MM-DD
}

// TextModelPricing contains pricing for commonly used chat models.
var TextModelPricing = map[string]PricingInfo{
	"gpt-4o": {
		Model:       "gpt-4o",
		InputPrice:  2.50,
		OutputPrice: 10.00,
		UpdatedAt:   "2025-01-15",
	},
	"gpt-4o-mini": {
		Model:       "gpt-4o-mini",
		InputPrice:  0.15,
		OutputPrice: 0.60,
		UpdatedAt:   "2025-01-15",
	},
	"gpt-4.1": {
		Model:       "gpt-4.1",
		InputPrice:  2.00,
		OutputPrice: 8.00,
		UpdatedAt:   "2025-04-14",
	},
	"gpt-4.1-mini": {
		Model:       "gpt-4.1-mini",
		InputPrice:  0.40,
		OutputPrice: 1.60,
		UpdatedAt:   "2025-04-14",
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
