package main

import (
	"fmt"
	"net/http"

	"github.com/nisiafloresta/painel-bi/pkg/config"
	"github.com/nisiafloresta/painel-bi/pkg/llm"
)

// newCompleter picks the upstream named by LLM_PROVIDER.
func newCompleter(cfg *config.Config) (llm.Completer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	httpClient := &http.Client{Timeout: cfg.ChatTimeout}
	switch cfg.LLMProvider {
	case config.ProviderGemini:
		return llm.NewGeminiClient(llm.GeminiConfig{
			APIKey:     cfg.GeminiAPIKey,
			Model:      cfg.GeminiModel,
			HTTPClient: httpClient,
		}), nil
	case config.ProviderMock:
		return llm.NewMockClient("Modo de demonstração: o assistente não está conectado a um provedor."), nil
	case config.ProviderOpenAI:
		return llm.NewOpenAIClient(llm.OpenAIConfig{
			BaseURL:    cfg.OpenAIBaseURL,
			APIKey:     cfg.OpenAIAPIKey,
			Model:      cfg.OpenAIModel,
			HTTPClient: httpClient,
		}), nil
	default:
		return nil, fmt.Errorf("painelctl: unsupported provider %q", cfg.LLMProvider)
	}
}
