package generator

import (
	"context"
	"fmt"
)

// Supported providers. DeepSeek speaks the OpenAI wire protocol and needs a BaseURL.
const (
	ProviderOpenAI   = "openai"
	ProviderDeepSeek = "deepseek"
	ProviderMock     = "mock"
)

// LLMClient is one chat-completion call. Implementations return the raw
// assistant message; interpreting it is the Generator's job.
type LLMClient interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

// LLMSettings selects and authenticates a provider.
type LLMSettings struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}

// NewLLM builds the client named by s.Provider.
func NewLLM(s LLMSettings) (LLMClient, error) {
	switch s.Provider {
	case ProviderMock:
		return MockLLM{}, nil
	case ProviderOpenAI, "":
	case ProviderDeepSeek:
		if s.BaseURL == "" {
			return nil, fmt.Errorf("llm provider deepseek requires base_url (OpenAI-compatible endpoint)")
		}
	default:
		return nil, fmt.Errorf("llm provider %s not supported", s.Provider)
	}
	llm, err := NewOpenAILLMFromConfig(&s)
	if err != nil {
		return nil, err
	}
	return llm, nil
}
