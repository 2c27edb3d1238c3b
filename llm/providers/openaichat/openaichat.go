// Package openaichat implements the llm.LLM interface against any
// OpenAI-compatible chat completions endpoint, including self-hosted
// gateways that speak the same wire format.
package openaichat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/mailforge-ai/mailforge/llm"
	"github.com/mailforge-ai/mailforge/retry"
)

var (
	DefaultModel         = "gpt-4o-mini"
	DefaultEndpoint      = "https://api.openai.com/v1/chat/completions"
	DefaultMaxTokens     = 4096
	DefaultClient        = &http.Client{Timeout: 300 * time.Second}
	DefaultMaxRetries    = 4
	DefaultRetryBaseWait = 2 * time.Second
)

var _ llm.LLM = &Provider{}
var _ llm.CostEstimator = &Provider{}

// Provider is an OpenAI-compatible chat completions client.
type Provider struct {
	client        *http.Client
	apiKey        string
	endpoint      string
	model         string
	maxTokens     int
	maxRetries    int
	retryBaseWait time.Duration
}

// New returns a Provider configured from the given options. The API key
// defaults to the OPENAI_API_KEY environment variable.
func New(opts ...Option) *Provider {
	p := &Provider{
		apiKey:        os.Getenv("OPENAI_API_KEY"),
		client:        DefaultClient,
		endpoint:      DefaultEndpoint,
		model:         DefaultModel,
		maxTokens:     DefaultMaxTokens,
		maxRetries:    DefaultMaxRetries,
		retryBaseWait: DefaultRetryBaseWait,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Provider) Name() string {
	return "openai-chat"
}

// ModelName returns the default model used by this provider.
func (p *Provider) ModelName() string {
	return p.model
}

func (p *Provider) Generate(ctx context.Context, messages []*llm.Message, opts ...llm.GenerateOption) (*llm.Response, error) {
	config := &llm.GenerateConfig{}
	config.Apply(opts...)

	if len(messages) == 0 {
		return nil, fmt.Errorf("no messages provided")
	}

	model := config.Model
	if model == "" {
		model = p.model
	}
	maxTokens := config.MaxTokens
	if maxTokens == nil {
		maxTokens = &p.maxTokens
	}

	msgs := make([]Message, 0, len(messages)+1)
	if config.SystemPrompt != "" {
		msgs = append(msgs, Message{Role: "system", Content: config.SystemPrompt})
	}
	for _, message := range messages {
		msgs = append(msgs, Message{
			Role:    message.Role.String(),
			Content: message.CompleteText(),
		})
	}

	request := Request{
		Model:       model,
		Messages:    msgs,
		MaxTokens:   maxTokens,
		Temperature: config.Temperature,
	}
	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("error marshaling request: %w", err)
	}

	var result Response
	err = retry.Do(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("error creating request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
		req.Header.Set("Content-Type", "application/json")

		resp, err := p.client.Do(req)
		if err != nil {
			return fmt.Errorf("error making request: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			respBody, _ := io.ReadAll(resp.Body)
			return &apiError{status: resp.StatusCode, body: string(respBody)}
		}
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return fmt.Errorf("error decoding response: %w", err)
		}
		return nil
	}, retry.WithMaxRetries(p.maxRetries), retry.WithBaseWait(p.retryBaseWait))
	if err != nil {
		return nil, err
	}

	if len(result.Choices) == 0 {
		return nil, fmt.Errorf("no completion choices returned")
	}

	message := &llm.Message{
		Role: llm.Assistant,
		Content: []*llm.Content{{
			Type: llm.ContentTypeText,
			Text: result.Choices[0].Message.Content,
		}},
	}
	return &llm.Response{
		ID:         result.ID,
		Model:      result.Model,
		StopReason: result.Choices[0].FinishReason,
		Role:       llm.Assistant,
		Message:    *message,
		Usage: llm.Usage{
			InputTokens:  result.Usage.PromptTokens,
			OutputTokens: result.Usage.CompletionTokens,
		},
	}, nil
}

// EstimateCost returns the estimated USD cost of the given usage for this
// provider's model.
func (p *Provider) EstimateCost(usage llm.Usage) float64 {
	return EstimateCost(p.model, usage)
}
