package mailforge

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mailforge-ai/mailforge/emailparse"
	"github.com/mailforge-ai/mailforge/llm"
	"github.com/mailforge-ai/mailforge/slogger"
)

// Per-stage deadlines keep a hung fetch or model call from blocking the
// request indefinitely.
var (
	DefaultFetchTimeout    = 30 * time.Second
	DefaultExtractTimeout  = 2 * time.Minute
	DefaultGenerateTimeout = 5 * time.Minute
)

// Pipeline sequences fetch, extract, generate and parse for one request.
// It holds no mutable state; concurrent Generate calls are independent.
type Pipeline struct {
	fetcher   PageFetcher
	extractor ProductExtractor
	generator EmailGenerator
	costs     llm.CostEstimator
	logger    slogger.Logger

	fetchTimeout    time.Duration
	extractTimeout  time.Duration
	generateTimeout time.Duration
}

// PipelineOption configures the Pipeline.
type PipelineOption func(*Pipeline)

// WithCostEstimator enables estimated-cost accounting in results.
func WithCostEstimator(costs llm.CostEstimator) PipelineOption {
	return func(p *Pipeline) { p.costs = costs }
}

// WithLogger sets the logger.
func WithLogger(logger slogger.Logger) PipelineOption {
	return func(p *Pipeline) { p.logger = logger }
}

// WithFetchTimeout sets the page fetch deadline.
func WithFetchTimeout(d time.Duration) PipelineOption {
	return func(p *Pipeline) { p.fetchTimeout = d }
}

// WithExtractTimeout sets the extraction call deadline.
func WithExtractTimeout(d time.Duration) PipelineOption {
	return func(p *Pipeline) { p.extractTimeout = d }
}

// WithGenerateTimeout sets the generation call deadline.
func WithGenerateTimeout(d time.Duration) PipelineOption {
	return func(p *Pipeline) { p.generateTimeout = d }
}

// NewPipeline wires the three stages into an orchestrator.
func NewPipeline(fetcher PageFetcher, extractor ProductExtractor, generator EmailGenerator, opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		fetcher:         fetcher,
		extractor:       extractor,
		generator:       generator,
		logger:          slogger.DefaultLogger,
		fetchTimeout:    DefaultFetchTimeout,
		extractTimeout:  DefaultExtractTimeout,
		generateTimeout: DefaultGenerateTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Generate runs the full pipeline for one request. Stages run sequentially;
// the first failure terminates the request with its category error. There
// is no partial-success mode below "at least one valid email".
func (p *Pipeline) Generate(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	batchID := uuid.NewString()
	logger := p.logger.With("batch_id", batchID, "url", req.ProductURL)

	logger.Info("fetching product page")
	fetchCtx, cancel := p.stageContext(ctx, p.fetchTimeout)
	signals, err := p.fetcher.Fetch(fetchCtx, req.ProductURL)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	logger.Info("analyzing brand and making design decisions")
	extractCtx, cancel := p.stageContext(ctx, p.extractTimeout)
	design, extractUsage, err := p.extractor.Extract(extractCtx, signals)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExtractionFailed, err)
	}

	logger.Info("generating email html", "count", req.EmailCount)
	generateCtx, cancel := p.stageContext(ctx, p.generateTimeout)
	raw, generateUsage, err := p.generator.Generate(generateCtx, design, req.EmailCount, req.Promotion)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	emails := emailparse.Parse(raw)
	if len(emails) == 0 {
		logger.Error("no valid emails in generation output", "response_chars", len(raw))
		return nil, ErrNoEmails
	}

	usage := extractUsage
	usage.Add(generateUsage)
	summary := UsageSummary{
		InputTokens:  usage.InputTokens,
		OutputTokens: usage.OutputTokens,
	}
	if p.costs != nil {
		summary.EstimatedCostUSD = p.costs.EstimateCost(usage)
	}

	logger.Info("generation complete",
		"emails", len(emails),
		"input_tokens", summary.InputTokens,
		"output_tokens", summary.OutputTokens)

	return &Result{
		BatchID: batchID,
		Content: raw,
		Emails:  emails,
		Product: ProductSummary{
			Name:       design.Product.DisplayName(),
			Price:      design.Product.Price,
			Brand:      design.Brand.Name,
			ImageCount: design.Images.Count(),
		},
		DesignDecisions:      design.DesignDecisions,
		BrandAnalysis:        design.BrandAnalysis,
		CopywritingDirection: design.CopywritingDirection,
		Usage:                summary,
	}, nil
}

func (p *Pipeline) stageContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
