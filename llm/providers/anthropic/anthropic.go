package anthropic

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
	DefaultModel         = ModelClaudeSonnet4
	DefaultEndpoint      = "https://api.anthropic.com/v1/messages"
	DefaultVersion       = "2023-06-01"
	DefaultMaxTokens     = 4096
	DefaultClient        = &http.Client{Timeout: 300 * time.Second}
	DefaultMaxRetries    = 4
	DefaultRetryBaseWait = 2 * time.Second
)

var _ llm.LLM = &Provider{}
var _ llm.CostEstimator = &Provider{}

// Provider is an Anthropic Messages API client implementing llm.LLM.
type Provider struct {
	client        *http.Client
	apiKey        string
	endpoint      string
	model         string
	version       string
	maxTokens     int
	maxRetries    int
	retryBaseWait time.Duration
}

// New returns a Provider configured from the given options. The API key
// defaults to the ANTHROPIC_API_KEY environment variable.
func New(opts ...Option) *Provider {
	p := &Provider{
		apiKey:        os.Getenv("ANTHROPIC_API_KEY"),
		client:        DefaultClient,
		endpoint:      DefaultEndpoint,
		version:       DefaultVersion,
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
	return "anthropic"
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
	for i, message := range messages {
		if len(message.Content) == 0 {
			return nil, fmt.Errorf("empty message detected (index %d)", i)
		}
	}

	model := config.Model
	if model == "" {
		model = p.model
	}
	maxTokens := config.MaxTokens
	if maxTokens == nil {
		maxTokens = &p.maxTokens
	}

	request := Request{
		Model:       model,
		Messages:    convertMessages(messages),
		System:      config.SystemPrompt,
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
		req.Header.Set("x-api-key", p.apiKey)
		req.Header.Set("anthropic-version", p.version)
		req.Header.Set("content-type", "application/json")

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

	message := &llm.Message{Role: llm.Assistant}
	for _, block := range result.Content {
		if block.Type == "text" {
			message.Content = append(message.Content, &llm.Content{
				Type: llm.ContentTypeText,
				Text: block.Text,
			})
		}
	}

	return &llm.Response{
		ID:         result.ID,
		Model:      result.Model,
		StopReason: result.StopReason,
		Role:       llm.Assistant,
		Message:    *message,
		Usage: llm.Usage{
			InputTokens:  result.Usage.InputTokens,
			OutputTokens: result.Usage.OutputTokens,
		},
	}, nil
}

// EstimateCost returns the estimated USD cost of the given usage for this
// provider's model.
func (p *Provider) EstimateCost(usage llm.Usage) float64 {
	return EstimateCost(p.model, usage)
}

func convertMessages(messages []*llm.Message) []*Message {
	result := make([]*Message, 0, len(messages))
	for _, message := range messages {
		converted := &Message{Role: message.Role.String()}
		for _, content := range message.Content {
			switch content.Type {
			case llm.ContentTypeText:
				converted.Content = append(converted.Content, &ContentBlock{
					Type: "text",
					Text: content.Text,
				})
			case llm.ContentTypeImage:
				converted.Content = append(converted.Content, &ContentBlock{
					Type: "image",
					Source: &ImageSource{
						Type:      "base64",
						MediaType: content.MediaType,
						Data:      content.Data,
					},
				})
			}
		}
		result = append(result, converted)
	}
	return result
}
