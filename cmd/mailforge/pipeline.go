package main

import (
	"fmt"

	"github.com/mailforge-ai/mailforge"
	"github.com/mailforge-ai/mailforge/config"
	"github.com/mailforge-ai/mailforge/extract"
	"github.com/mailforge-ai/mailforge/generate"
	"github.com/mailforge-ai/mailforge/llm"
	"github.com/mailforge-ai/mailforge/llm/providers/anthropic"
	"github.com/mailforge-ai/mailforge/llm/providers/openaichat"
	"github.com/mailforge-ai/mailforge/scrape"
	"github.com/mailforge-ai/mailforge/slogger"
)

// buildPipeline assembles the pipeline from configuration: one provider
// shared by both model stages, with per-stage model and token overrides.
func buildPipeline(cfg *config.Config, logger slogger.Logger) (*mailforge.Pipeline, error) {
	model, err := buildProvider(cfg)
	if err != nil {
		return nil, err
	}

	fetcher := scrape.New(scrape.WithLogger(logger))

	extractOpts := []extract.Option{
		extract.WithMaxTokens(cfg.ExtractMaxTokens),
		extract.WithLogger(logger),
	}
	if cfg.ExtractModel != "" {
		extractOpts = append(extractOpts, extract.WithModelName(cfg.ExtractModel))
	}
	extractor := extract.New(model, extractOpts...)

	generateOpts := []generate.Option{
		generate.WithMaxTokens(cfg.GenerateMaxTokens),
		generate.WithLogger(logger),
	}
	if cfg.GenerateModel != "" {
		generateOpts = append(generateOpts, generate.WithModelName(cfg.GenerateModel))
	}
	generator := generate.New(model, generateOpts...)

	pipelineOpts := []mailforge.PipelineOption{
		mailforge.WithLogger(logger),
		mailforge.WithFetchTimeout(cfg.FetchTimeout),
		mailforge.WithExtractTimeout(cfg.ExtractTimeout),
		mailforge.WithGenerateTimeout(cfg.GenerateTimeout),
	}
	if costs, ok := model.(llm.CostEstimator); ok {
		pipelineOpts = append(pipelineOpts, mailforge.WithCostEstimator(costs))
	}

	return mailforge.NewPipeline(fetcher, extractor, generator, pipelineOpts...), nil
}

func buildProvider(cfg *config.Config) (llm.LLM, error) {
	switch cfg.Provider {
	case "anthropic":
		return anthropic.New(anthropic.WithAPIKey(cfg.AnthropicAPIKey)), nil
	case "openai":
		opts := []openaichat.Option{openaichat.WithAPIKey(cfg.OpenAIAPIKey)}
		if cfg.OpenAIEndpoint != "" {
			opts = append(opts, openaichat.WithEndpoint(cfg.OpenAIEndpoint))
		}
		return openaichat.New(opts...), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}

func buildLogger(cfg *config.Config) slogger.Logger {
	return slogger.New(slogger.LevelFromString(cfg.LogLevel))
}
