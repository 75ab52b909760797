package provider

import (
	"fmt"

	"gemtui/model"
)

// NewProvider creates a provider based on configuration.
//
// This is the centralized factory for all provider types. It returns an
// error if the provider type is unknown or the provider-specific
// constructor fails (e.g. missing API key, invalid URL). A missing API key
// error here is what makes a provider absent from the startup map, which is
// how configuration errors are kept separate from generation failures.
func NewProvider(cfg Config) (model.Provider, error) {
	switch cfg.Type {
	case ProviderTypeGemini:
		p, err := NewGeminiProvider(cfg.BaseURL, cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, err
		}
		return p, nil
	case ProviderTypeOpenAI:
		p, err := NewOpenAIProvider(cfg.BaseURL, cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, err
		}
		return p, nil
	case ProviderTypeAnthropic:
		p, err := NewAnthropicProvider(cfg.BaseURL, cfg.APIKey, cfg.Model)
		if err != nil {
			return nil, err
		}
		return p, nil
	case ProviderTypeOllama:
		p, err := NewOllamaProvider(cfg.BaseURL, cfg.Model)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown provider type: %s", cfg.Type)
	}
}

// MapProviderIDToType converts a config provider ID to a factory
// ProviderType. Unknown IDs are passed through as-is so the factory can
// return a useful error.
func MapProviderIDToType(id string) ProviderType {
	switch id {
	case "gemini":
		return ProviderTypeGemini
	case "openai":
		return ProviderTypeOpenAI
	case "anthropic":
		return ProviderTypeAnthropic
	case "ollama":
		return ProviderTypeOllama
	default:
		return ProviderType(id)
	}
}
