// Package extract implements the first model call of the pipeline: turning
// scraped page signals into structured product data and brand-matched
// design decisions.
package extract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/mailforge-ai/mailforge/llm"
	"github.com/mailforge-ai/mailforge/scrape"
	"github.com/mailforge-ai/mailforge/slogger"
)

// ErrMalformedJSON indicates the model response did not parse as the
// expected structured document. Fatal for the request; the raw text is
// logged for diagnosis but never returned to the caller.
var ErrMalformedJSON = errors.New("model response is not valid JSON")

var DefaultMaxTokens = 5000

// Extractor runs the extraction stage against an LLM.
type Extractor struct {
	model     llm.LLM
	modelName string
	maxTokens int
	logger    slogger.Logger
}

// Option configures the Extractor.
type Option func(*Extractor)

// WithModelName overrides the provider's default model.
func WithModelName(name string) Option {
	return func(e *Extractor) { e.modelName = name }
}

// WithMaxTokens sets the max output tokens for the extraction call.
func WithMaxTokens(n int) Option {
	return func(e *Extractor) { e.maxTokens = n }
}

// WithLogger sets the logger.
func WithLogger(logger slogger.Logger) Option {
	return func(e *Extractor) { e.logger = logger }
}

// New returns an Extractor using the given model service.
func New(model llm.LLM, opts ...Option) *Extractor {
	e := &Extractor{
		model:     model,
		maxTokens: DefaultMaxTokens,
		logger:    slogger.DefaultLogger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract sends the scraped signals to the model and decodes the structured
// product/design document from its response.
func (e *Extractor) Extract(ctx context.Context, signals *scrape.Signals) (*ProductDesign, llm.Usage, error) {
	opts := []llm.GenerateOption{
		llm.WithSystemPrompt(systemPrompt),
		llm.WithMaxTokens(e.maxTokens),
	}
	if e.modelName != "" {
		opts = append(opts, llm.WithModel(e.modelName))
	}

	response, err := e.model.Generate(ctx,
		[]*llm.Message{llm.NewUserMessage(buildUserPrompt(signals))}, opts...)
	if err != nil {
		return nil, llm.Usage{}, fmt.Errorf("extraction call failed: %w", err)
	}

	raw := response.Text()
	cleaned := StripCodeFences(raw)

	var design ProductDesign
	if err := json.Unmarshal([]byte(cleaned), &design); err != nil {
		e.logger.Error("failed to parse extracted data",
			"error", err,
			"raw_response", raw)
		return nil, response.Usage, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}

	e.logger.Debug("extraction complete",
		"product", design.Product.DisplayName(),
		"brand", design.Brand.Name,
		"aesthetic", design.DesignDecisions.OverallAesthetic,
		"input_tokens", response.Usage.InputTokens,
		"output_tokens", response.Usage.OutputTokens)
	return &design, response.Usage, nil
}

// buildUserPrompt serializes the scraped signals into the analysis prompt.
func buildUserPrompt(signals *scrape.Signals) string {
	var sb strings.Builder
	sb.WriteString("Analyze this ecommerce product page. Extract all product/brand data AND make design decisions for an email that perfectly matches this brand's identity.\n")

	sb.WriteString("\n## PAGE URL\n")
	sb.WriteString(signals.SourceURL)
	sb.WriteString("\n\n## PAGE TITLE\n")
	sb.WriteString(signals.Title)
	sb.WriteString("\n\n## META DESCRIPTION\n")
	sb.WriteString(signals.MetaDescription)
	sb.WriteString("\n\n## OG IMAGE\n")
	sb.WriteString(signals.OGImage)

	sb.WriteString("\n\n## JSON-LD DATA\n")
	structured, err := json.MarshalIndent(signals.StructuredData, "", "  ")
	if err != nil {
		structured = []byte("[]")
	}
	sb.Write(structured)

	sb.WriteString("\n\n## IMAGES FOUND\n")
	for i, img := range signals.Images {
		fmt.Fprintf(&sb, "%d. %s (alt: %s)\n", i+1, img.URL, img.Alt)
	}

	sb.WriteString("\n## PAGE CONTENT\n")
	sb.WriteString(signals.BodyText)

	sb.WriteString("\n\nStudy this brand carefully. Your design decisions should make the email feel like it was created by this brand's in-house team.")
	return sb.String()
}

var (
	fenceOpenRe  = regexp.MustCompile("```(?:json)?\n?")
	fenceCloseRe = regexp.MustCompile("```\\s*$")
)

// StripCodeFences removes optional Markdown code-fence wrapping from model
// output. Responses with and without fences are both accepted.
func StripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = fenceOpenRe.ReplaceAllString(text, "")
	text = fenceCloseRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
