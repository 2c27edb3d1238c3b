package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/mailforge-ai/mailforge/internal/mocks"
	"github.com/mailforge-ai/mailforge/llm"
	"github.com/mailforge-ai/mailforge/scrape"
	"github.com/stretchr/testify/require"
)

const extractedJSON = `{
  "product": {"name": "Linen Shirt", "full_name": "Linen Shirt - Sand", "price": "$88.00"},
  "brand": {"name": "Coastal Goods", "short_name": "Coastal"},
  "images": {"hero": "https://cdn.example.com/hero.jpg", "secondary": "https://cdn.example.com/alt.jpg", "additional": ["https://cdn.example.com/3.jpg"]},
  "design_decisions": {
    "overall_aesthetic": "minimalist luxury",
    "color_palette": {"primary_accent": "#1a3c34"},
    "layout": {"max_width": 600},
    "typography": {"headline_weight": 300},
    "spacing": "generous"
  },
  "copywriting_direction": {"sample_headline": "Ease Into Summer"}
}`

func testSignals() *scrape.Signals {
	return &scrape.Signals{
		SourceURL:       "https://shop.example.com/products/linen-shirt",
		Title:           "Linen Shirt - Coastal Goods",
		MetaDescription: "A breezy linen shirt.",
		OGImage:         "https://cdn.example.com/og.jpg",
		Images: []scrape.Image{
			{URL: "https://cdn.example.com/hero.jpg", Alt: "Front view"},
		},
		BodyText: "Soft, garment-washed linen.",
	}
}

func TestExtractParsesResponse(t *testing.T) {
	mock := mocks.NewMockLLM(mocks.MockLLMOptions{
		Responses: []*llm.Response{mocks.NewTextResponse(extractedJSON)},
	})
	extractor := New(mock)

	design, _, err := extractor.Extract(context.Background(), testSignals())
	require.NoError(t, err)
	require.Equal(t, "Linen Shirt - Sand", design.Product.DisplayName())
	require.Equal(t, "$88.00", design.Product.Price)
	require.Equal(t, "Coastal Goods", design.Brand.Name)
	require.Equal(t, "minimalist luxury", design.DesignDecisions.OverallAesthetic)
	require.Equal(t, "#1a3c34", design.DesignDecisions.ColorPalette.PrimaryAccent)
	require.Equal(t, 3, design.Images.Count())

	// Numeric values for string-ish fields are tolerated.
	require.Equal(t, "600", design.DesignDecisions.Layout.MaxWidth.String())
	require.Equal(t, "300", design.DesignDecisions.Typography.HeadlineWeight.String())
}

func TestExtractAcceptsFencedJSON(t *testing.T) {
	fenced := "```json\n" + extractedJSON + "\n```"
	mock := mocks.NewMockLLM(mocks.MockLLMOptions{
		Responses: []*llm.Response{mocks.NewTextResponse(fenced)},
	})
	design, _, err := New(mock).Extract(context.Background(), testSignals())
	require.NoError(t, err)
	require.Equal(t, "Coastal Goods", design.Brand.Name)
}

func TestExtractMalformedJSON(t *testing.T) {
	mock := mocks.NewMockLLM(mocks.MockLLMOptions{
		Responses: []*llm.Response{mocks.NewTextResponse("I could not analyze this page, sorry!")},
	})
	_, _, err := New(mock).Extract(context.Background(), testSignals())
	require.ErrorIs(t, err, ErrMalformedJSON)
}

func TestExtractPropagatesServiceError(t *testing.T) {
	serviceErr := errors.New("service unavailable")
	mock := mocks.NewMockLLM(mocks.MockLLMOptions{Err: serviceErr})
	_, _, err := New(mock).Extract(context.Background(), testSignals())
	require.ErrorIs(t, err, serviceErr)
}

func TestExtractPromptContents(t *testing.T) {
	mock := mocks.NewMockLLM(mocks.MockLLMOptions{
		Responses: []*llm.Response{mocks.NewTextResponse(extractedJSON)},
	})
	_, _, err := New(mock, WithMaxTokens(1234)).Extract(context.Background(), testSignals())
	require.NoError(t, err)

	calls := mock.Calls()
	require.Len(t, calls, 1)

	config := calls[0].Config
	require.Contains(t, config.SystemPrompt, "brand analyst and creative director")
	require.NotNil(t, config.MaxTokens)
	require.Equal(t, 1234, *config.MaxTokens)

	prompt := calls[0].Messages[0].Text()
	require.Contains(t, prompt, "## PAGE URL\nhttps://shop.example.com/products/linen-shirt")
	require.Contains(t, prompt, "## PAGE TITLE\nLinen Shirt - Coastal Goods")
	require.Contains(t, prompt, "1. https://cdn.example.com/hero.jpg (alt: Front view)")
	require.Contains(t, prompt, "## PAGE CONTENT\nSoft, garment-washed linen.")
}

func TestStripCodeFences(t *testing.T) {
	require.Equal(t, `{"a":1}`, StripCodeFences("```json\n{\"a\":1}\n```"))
	require.Equal(t, `{"a":1}`, StripCodeFences("```\n{\"a\":1}\n```"))
	require.Equal(t, `{"a":1}`, StripCodeFences(`{"a":1}`))
	require.Equal(t, `{"a":1}`, StripCodeFences("  {\"a\":1}  "))
}
