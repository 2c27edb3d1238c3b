package anthropic

import (
	"net/http"
	"time"
)

// Option configures the Provider.
type Option func(*Provider)

// WithAPIKey sets the API key.
func WithAPIKey(apiKey string) Option {
	return func(p *Provider) { p.apiKey = apiKey }
}

// WithClient sets the HTTP client used for requests.
func WithClient(client *http.Client) Option {
	return func(p *Provider) { p.client = client }
}

// WithEndpoint sets the API endpoint.
func WithEndpoint(endpoint string) Option {
	return func(p *Provider) { p.endpoint = endpoint }
}

// WithModel sets the default model.
func WithModel(model string) Option {
	return func(p *Provider) { p.model = model }
}

// WithVersion sets the anthropic-version header value.
func WithVersion(version string) Option {
	return func(p *Provider) { p.version = version }
}

// WithMaxTokens sets the default max output tokens.
func WithMaxTokens(maxTokens int) Option {
	return func(p *Provider) { p.maxTokens = maxTokens }
}

// WithMaxRetries sets the maximum number of request attempts.
func WithMaxRetries(maxRetries int) Option {
	return func(p *Provider) { p.maxRetries = maxRetries }
}

// WithRetryBaseWait sets the base wait between retries.
func WithRetryBaseWait(wait time.Duration) Option {
	return func(p *Provider) { p.retryBaseWait = wait }
}
