// Package mailforge orchestrates the email generation pipeline: fetch a
// product page, extract structured brand/product data and design decisions
// with one model call, render Gmail-safe HTML with a second, and parse the
// result into discrete email documents.
package mailforge

import (
	"context"

	"github.com/mailforge-ai/mailforge/extract"
	"github.com/mailforge-ai/mailforge/llm"
	"github.com/mailforge-ai/mailforge/scrape"
)

// PageFetcher retrieves a product page and distills it into signals.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (*scrape.Signals, error)
}

// ProductExtractor turns scraped signals into structured product data and
// design decisions (the first model call).
type ProductExtractor interface {
	Extract(ctx context.Context, signals *scrape.Signals) (*extract.ProductDesign, llm.Usage, error)
}

// EmailGenerator renders raw multi-document email HTML from the extracted
// data (the second model call).
type EmailGenerator interface {
	Generate(ctx context.Context, design *extract.ProductDesign, count int, promotion string) (string, llm.Usage, error)
}
