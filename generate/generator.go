// Package generate implements the second model call of the pipeline:
// rendering Gmail-safe HTML emails from the extracted product data and
// design decisions.
package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mailforge-ai/mailforge/emailparse"
	"github.com/mailforge-ai/mailforge/extract"
	"github.com/mailforge-ai/mailforge/llm"
	"github.com/mailforge-ai/mailforge/slogger"
)

var DefaultMaxTokens = 16000

// Generator runs the generation stage against an LLM. It returns the raw,
// unparsed response text; splitting it into discrete emails is the
// emailparse package's job.
type Generator struct {
	model     llm.LLM
	modelName string
	maxTokens int
	logger    slogger.Logger
}

// Option configures the Generator.
type Option func(*Generator)

// WithModelName overrides the provider's default model.
func WithModelName(name string) Option {
	return func(g *Generator) { g.modelName = name }
}

// WithMaxTokens sets the max output tokens for the generation call.
func WithMaxTokens(n int) Option {
	return func(g *Generator) { g.maxTokens = n }
}

// WithLogger sets the logger.
func WithLogger(logger slogger.Logger) Option {
	return func(g *Generator) { g.logger = logger }
}

// New returns a Generator using the given model service.
func New(model llm.LLM, opts ...Option) *Generator {
	g := &Generator{
		model:     model,
		maxTokens: DefaultMaxTokens,
		logger:    slogger.DefaultLogger,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate asks the model for count email variations of the given design.
// Content-shape problems in the response (too few documents, malformed
// HTML) are deferred to the parser; only service failures error here.
func (g *Generator) Generate(ctx context.Context, design *extract.ProductDesign, count int, promotion string) (string, llm.Usage, error) {
	opts := []llm.GenerateOption{
		llm.WithSystemPrompt(systemPrompt),
		llm.WithMaxTokens(g.maxTokens),
	}
	if g.modelName != "" {
		opts = append(opts, llm.WithModel(g.modelName))
	}

	prompt := buildUserPrompt(design, count, promotion)
	response, err := g.model.Generate(ctx, []*llm.Message{llm.NewUserMessage(prompt)}, opts...)
	if err != nil {
		return "", llm.Usage{}, fmt.Errorf("generation call failed: %w", err)
	}

	g.logger.Debug("generation complete",
		"requested_count", count,
		"input_tokens", response.Usage.InputTokens,
		"output_tokens", response.Usage.OutputTokens)
	return response.Text(), response.Usage, nil
}

func buildUserPrompt(design *extract.ProductDesign, count int, promotion string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Generate %d promotional email(s) using EXACTLY these specifications.\n", count)

	sb.WriteString("\n## PRODUCT DATA\n")
	writeJSON(&sb, map[string]any{
		"product":           design.Product,
		"description":       design.Description,
		"images":            design.Images,
		"brand":             design.Brand,
		"promotions":        design.Promotions,
		"matching_products": design.MatchingProduct,
	})

	sb.WriteString("\n\n## DESIGN SPECIFICATIONS (FOLLOW EXACTLY)\n")
	writeJSON(&sb, design.DesignDecisions)

	sb.WriteString("\n\n## COPYWRITING DIRECTION\n")
	writeJSON(&sb, design.CopywritingDirection)

	sb.WriteString("\n\n## BRAND CONTEXT\n")
	writeJSON(&sb, design.BrandAnalysis)

	if promotion != "" {
		sb.WriteString("\n\n## ADDITIONAL PROMOTION TO FEATURE\n")
		sb.WriteString(promotion)
		if hint := discountHint(promotion, design.Product.Price); hint != "" {
			sb.WriteString("\n")
			sb.WriteString(hint)
		}
	}

	if count > 1 {
		fmt.Fprintf(&sb, `

## MULTIPLE EMAIL VARIATIONS
Generate %d emails. Each should follow the same design system but vary:
- Headline/copy angle
- Image selection (use different images from the set)
- Slight layout variations within the same aesthetic

Separate each email with: %s`, count, emailparse.Separator)
	}

	sb.WriteString("\n\nExecute these specifications precisely. Generate production-ready HTML now.")
	return sb.String()
}

func writeJSON(sb *strings.Builder, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		sb.WriteString("{}")
		return
	}
	sb.Write(data)
}
