package mailforge

import (
	"github.com/mailforge-ai/mailforge/emailparse"
	"github.com/mailforge-ai/mailforge/extract"
)

// ProductSummary is lightweight display metadata echoed from the extracted
// data. Informational only; never re-validated against the generated HTML.
type ProductSummary struct {
	Name       string `json:"name"`
	Price      string `json:"price"`
	Brand      string `json:"brand"`
	ImageCount int    `json:"imageCount"`
}

// UsageSummary totals token usage across both model calls.
type UsageSummary struct {
	InputTokens      int     `json:"inputTokens"`
	OutputTokens     int     `json:"outputTokens"`
	EstimatedCostUSD float64 `json:"estimatedCostUsd"`
}

// Result is the outcome of one successful generation job. Everything here
// is request-scoped; nothing persists across requests.
type Result struct {
	// BatchID identifies this generation batch in logs and responses.
	BatchID string `json:"batchId"`

	// Content is the raw multi-document response text.
	Content string `json:"content"`

	// Emails are the parsed documents, in generation order.
	Emails []emailparse.Document `json:"emails"`

	// Product is display metadata about what was detected.
	Product ProductSummary `json:"productData"`

	// Sections echoed from the extraction stage for display.
	DesignDecisions      extract.DesignDecisions      `json:"designDecisions"`
	BrandAnalysis        extract.BrandAnalysis        `json:"brandAnalysis"`
	CopywritingDirection extract.CopywritingDirection `json:"copywritingDirection"`

	// Usage totals token consumption across both model calls.
	Usage UsageSummary `json:"usage"`
}
