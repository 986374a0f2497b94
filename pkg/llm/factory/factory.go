package factory

import (
	"fmt"

	"contract-renewal-be/pkg/llm"
	"contract-renewal-be/pkg/llm/ollama"
	"contract-renewal-be/pkg/llm/openrouter"
)

// NewLLMProvider selects the configured backend.
func NewLLMProvider(provider, model, ollamaBaseURL, openRouterKey string) (llm.LLMProvider, error) {
	switch provider {
	case "openrouter", "":
		if openRouterKey == "" {
			return nil, fmt.Errorf("openrouter provider requires an API key")
		}
		return openrouter.NewOpenRouterProvider(openRouterKey, model), nil
	case "ollama":
		return ollama.NewOllamaProvider(ollamaBaseURL, model), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", provider)
	}
}
