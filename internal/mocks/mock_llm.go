package mocks

import (
	"context"
	"sync"

	"github.com/mailforge-ai/mailforge/llm"
)

var _ llm.LLM = &MockLLM{}

// MockLLMOptions configures a MockLLM.
type MockLLMOptions struct {
	// Responses are returned in order, one per Generate call. The last
	// response repeats once the list is exhausted.
	Responses []*llm.Response

	// Err, when set, is returned by every Generate call.
	Err error
}

// MockLLM is a scripted llm.LLM for tests. It records every call.
type MockLLM struct {
	mu        sync.Mutex
	responses []*llm.Response
	err       error
	calls     []MockCall
}

// MockCall records the arguments of one Generate invocation.
type MockCall struct {
	Messages []*llm.Message
	Config   llm.GenerateConfig
}

// NewMockLLM returns a MockLLM with the given options.
func NewMockLLM(opts MockLLMOptions) *MockLLM {
	return &MockLLM{
		responses: opts.Responses,
		err:       opts.Err,
	}
}

// NewTextResponse builds an llm.Response containing a single text block.
func NewTextResponse(text string) *llm.Response {
	return &llm.Response{
		Role: llm.Assistant,
		Message: llm.Message{
			Role:    llm.Assistant,
			Content: []*llm.Content{{Type: llm.ContentTypeText, Text: text}},
		},
	}
}

func (m *MockLLM) Name() string {
	return "mock"
}

func (m *MockLLM) Generate(ctx context.Context, messages []*llm.Message, opts ...llm.GenerateOption) (*llm.Response, error) {
	config := llm.GenerateConfig{}
	config.Apply(opts...)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, MockCall{Messages: messages, Config: config})

	if m.err != nil {
		return nil, m.err
	}
	index := len(m.calls) - 1
	if index >= len(m.responses) {
		index = len(m.responses) - 1
	}
	if index < 0 {
		return NewTextResponse(""), nil
	}
	return m.responses[index], nil
}

// Calls returns the recorded Generate invocations.
func (m *MockLLM) Calls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]MockCall(nil), m.calls...)
}

// CallCount returns the number of Generate invocations.
func (m *MockLLM) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}
