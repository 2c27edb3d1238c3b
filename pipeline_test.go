package mailforge

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/mailforge-ai/mailforge/extract"
	"github.com/mailforge-ai/mailforge/llm"
	"github.com/mailforge-ai/mailforge/scrape"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	signals *scrape.Signals
	err     error
	calls   int
}

func (s *stubFetcher) Fetch(ctx context.Context, url string) (*scrape.Signals, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.signals, nil
}

type stubExtractor struct {
	design *extract.ProductDesign
	usage  llm.Usage
	err    error
	calls  int
}

func (s *stubExtractor) Extract(ctx context.Context, signals *scrape.Signals) (*extract.ProductDesign, llm.Usage, error) {
	s.calls++
	if s.err != nil {
		return nil, llm.Usage{}, s.err
	}
	return s.design, s.usage, nil
}

type stubGenerator struct {
	raw   string
	usage llm.Usage
	err   error
	calls int

	gotCount     int
	gotPromotion string
}

func (s *stubGenerator) Generate(ctx context.Context, design *extract.ProductDesign, count int, promotion string) (string, llm.Usage, error) {
	s.calls++
	s.gotCount = count
	s.gotPromotion = promotion
	if s.err != nil {
		return "", llm.Usage{}, s.err
	}
	return s.raw, s.usage, nil
}

type fixedCost struct{ perToken float64 }

func (f fixedCost) EstimateCost(usage llm.Usage) float64 {
	return float64(usage.InputTokens+usage.OutputTokens) * f.perToken
}

func sampleEmail(body string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><title>Email</title></head>
<body><table role="presentation"><tr><td style="padding: 20px;">%s</td></tr></table></body>
</html>`, body)
}

func happyStubs() (*stubFetcher, *stubExtractor, *stubGenerator) {
	fetcher := &stubFetcher{signals: &scrape.Signals{
		SourceURL: "https://shop.example.com/products/shirt",
		Title:     "Linen Shirt",
	}}
	extractor := &stubExtractor{
		design: &extract.ProductDesign{
			Product: extract.Product{Name: "Linen Shirt", FullName: "Linen Shirt - Sand", Price: "$88.00"},
			Brand:   extract.Brand{Name: "Coastal Goods"},
			Images: extract.Images{
				Hero:       "https://cdn.example.com/hero.jpg",
				Secondary:  "https://cdn.example.com/alt.jpg",
				Additional: []string{"https://cdn.example.com/3.jpg"},
			},
			DesignDecisions: extract.DesignDecisions{OverallAesthetic: "minimalist luxury"},
		},
		usage: llm.Usage{InputTokens: 1000, OutputTokens: 500},
	}
	generator := &stubGenerator{
		raw:   sampleEmail("one") + "\n<!-- EMAIL_SEPARATOR -->\n" + sampleEmail("two"),
		usage: llm.Usage{InputTokens: 2000, OutputTokens: 4000},
	}
	return fetcher, extractor, generator
}

func TestPipelineEndToEnd(t *testing.T) {
	fetcher, extractor, generator := happyStubs()
	pipeline := NewPipeline(fetcher, extractor, generator,
		WithCostEstimator(fixedCost{perToken: 0.001}))

	result, err := pipeline.Generate(context.Background(), Request{
		ProductURL: "https://shop.example.com/products/shirt",
		EmailCount: 2,
		Promotion:  "25% off",
	})
	require.NoError(t, err)

	require.Equal(t, 1, fetcher.calls)
	require.Equal(t, 1, extractor.calls)
	require.Equal(t, 1, generator.calls)
	require.Equal(t, 2, generator.gotCount)
	require.Equal(t, "25% off", generator.gotPromotion)

	require.Len(t, result.Emails, 2)
	require.Equal(t, 1, result.Emails[0].SequenceIndex)
	require.Equal(t, 2, result.Emails[1].SequenceIndex)

	require.NotEmpty(t, result.BatchID)
	require.Equal(t, "Linen Shirt - Sand", result.Product.Name)
	require.Equal(t, "$88.00", result.Product.Price)
	require.Equal(t, "Coastal Goods", result.Product.Brand)
	require.Equal(t, 3, result.Product.ImageCount)
	require.Equal(t, "minimalist luxury", result.DesignDecisions.OverallAesthetic)

	require.Equal(t, 3000, result.Usage.InputTokens)
	require.Equal(t, 4500, result.Usage.OutputTokens)
	require.InDelta(t, 7.5, result.Usage.EstimatedCostUSD, 0.0001)
}

func TestPipelineFetchFailureSkipsModelCalls(t *testing.T) {
	fetcher, extractor, generator := happyStubs()
	fetcher.err = &scrape.FetchError{Status: 404}
	pipeline := NewPipeline(fetcher, extractor, generator)

	_, err := pipeline.Generate(context.Background(), Request{
		ProductURL: "https://shop.example.com/products/gone",
	})
	require.ErrorIs(t, err, ErrFetchFailed)

	var fetchErr *scrape.FetchError
	require.True(t, errors.As(err, &fetchErr))
	require.Equal(t, 404, fetchErr.Status)

	require.Equal(t, 1, fetcher.calls)
	require.Zero(t, extractor.calls)
	require.Zero(t, generator.calls)
}

func TestPipelineExtractionFailure(t *testing.T) {
	fetcher, extractor, generator := happyStubs()
	extractor.err = extract.ErrMalformedJSON
	pipeline := NewPipeline(fetcher, extractor, generator)

	_, err := pipeline.Generate(context.Background(), Request{
		ProductURL: "https://shop.example.com/products/shirt",
	})
	require.ErrorIs(t, err, ErrExtractionFailed)
	require.ErrorIs(t, err, extract.ErrMalformedJSON)
	require.Zero(t, generator.calls)
}

func TestPipelineGenerationFailure(t *testing.T) {
	fetcher, extractor, generator := happyStubs()
	generator.err = errors.New("service unavailable")
	pipeline := NewPipeline(fetcher, extractor, generator)

	_, err := pipeline.Generate(context.Background(), Request{
		ProductURL: "https://shop.example.com/products/shirt",
	})
	require.ErrorIs(t, err, ErrGenerationFailed)
}

func TestPipelineNoParsableEmails(t *testing.T) {
	fetcher, extractor, generator := happyStubs()
	generator.raw = "Sorry, I could not produce any HTML this time."
	pipeline := NewPipeline(fetcher, extractor, generator)

	_, err := pipeline.Generate(context.Background(), Request{
		ProductURL: "https://shop.example.com/products/shirt",
	})
	require.ErrorIs(t, err, ErrNoEmails)
}

func TestPipelinePartialSurvivalIsNotAnError(t *testing.T) {
	fetcher, extractor, generator := happyStubs()
	// One of three documents is truncated below the viability threshold.
	generator.raw = sampleEmail("one") +
		"\n<!-- EMAIL_SEPARATOR -->\n<!DOCTYPE html><html></html>" +
		"\n<!-- EMAIL_SEPARATOR -->\n" + sampleEmail("three")
	pipeline := NewPipeline(fetcher, extractor, generator)

	result, err := pipeline.Generate(context.Background(), Request{
		ProductURL: "https://shop.example.com/products/shirt",
		EmailCount: 3,
	})
	require.NoError(t, err)
	require.Len(t, result.Emails, 2)
}

func TestPipelineValidation(t *testing.T) {
	fetcher, extractor, generator := happyStubs()
	pipeline := NewPipeline(fetcher, extractor, generator)

	_, err := pipeline.Generate(context.Background(), Request{})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = pipeline.Generate(context.Background(), Request{ProductURL: "not a url"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = pipeline.Generate(context.Background(), Request{
		ProductURL: "https://shop.example.com/p",
		EmailCount: 9,
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	// No network activity on invalid input.
	require.Zero(t, fetcher.calls)
	require.Zero(t, extractor.calls)
	require.Zero(t, generator.calls)
}

func TestRequestValidateDefaultsCount(t *testing.T) {
	req := Request{ProductURL: "https://shop.example.com/p"}
	require.NoError(t, req.Validate())
	require.Equal(t, 1, req.EmailCount)
}

func TestRequestValidateRejectsSchemes(t *testing.T) {
	req := Request{ProductURL: "ftp://example.com/file"}
	err := req.Validate()
	require.ErrorIs(t, err, ErrInvalidInput)
	require.True(t, strings.Contains(err.Error(), "http"))
}
