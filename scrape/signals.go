// Package scrape fetches ecommerce product pages and distills them into a
// bounded set of signals suitable for embedding in a model prompt.
package scrape

import "encoding/json"

// Image is one product image found on a page.
type Image struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// Signals is an immutable snapshot of one fetched page. Field sizes are
// bounded so the downstream prompts stay within size limits.
type Signals struct {
	SourceURL       string            `json:"url"`
	Title           string            `json:"title"`
	MetaDescription string            `json:"metaDescription"`
	OGImage         string            `json:"ogImage"`
	OGTitle         string            `json:"ogTitle"`
	StructuredData  []json.RawMessage `json:"jsonLdData"`
	Images          []Image           `json:"images"`
	BodyText        string            `json:"bodyText"`
}
