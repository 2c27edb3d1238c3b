package mailforge

import (
	"fmt"
	"net/url"
)

const (
	MinEmailCount = 1
	MaxEmailCount = 4
)

// Request describes one email generation job.
type Request struct {
	// ProductURL is the product page to scrape. Required.
	ProductURL string `json:"productUrl"`

	// EmailCount is the number of variations to generate (1-4).
	// Zero defaults to 1.
	EmailCount int `json:"emailCount"`

	// Promotion is optional promo text to feature, e.g. "25% off".
	Promotion string `json:"promotion,omitempty"`
}

// Validate normalizes defaults and checks the request. It returns an error
// wrapping ErrInvalidInput when a field is missing or malformed.
func (r *Request) Validate() error {
	if r.ProductURL == "" {
		return fmt.Errorf("%w: product URL is required", ErrInvalidInput)
	}
	parsed, err := url.Parse(r.ProductURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("%w: product URL must be an absolute http(s) URL", ErrInvalidInput)
	}
	if r.EmailCount == 0 {
		r.EmailCount = MinEmailCount
	}
	if r.EmailCount < MinEmailCount || r.EmailCount > MaxEmailCount {
		return fmt.Errorf("%w: email count must be between %d and %d",
			ErrInvalidInput, MinEmailCount, MaxEmailCount)
	}
	return nil
}
