package provider

import (
	"gemtui/config"
	"gemtui/model"
)

// InitializeProviders creates ALL provider instances for the application.
//
// This function is the single entry point for provider initialization.
// It handles:
//   - Creating the Gemini provider (the default, always attempted)
//   - Creating the other enabled cloud providers (OpenAI, Anthropic)
//   - Creating the Ollama provider (no key needed, always attempted)
//   - Resolving API keys (environment first, then config file)
//   - Graceful degradation (logs warnings but doesn't fail)
//
// A provider whose key is missing is simply absent from the returned map;
// the UI reports the missing credential when the user tries to send, and
// the app still starts.
//
// The provider package owns the complete provider lifecycle, so all
// initialization logic lives here, not in config or ui packages.
func InitializeProviders(cfg *config.Config) map[string]model.Provider {
	providers := make(map[string]model.Provider)

	// Gemini first: it's the default provider and the model in the
	// generation config belongs to it
	if geminiProvider := initializeGemini(cfg); geminiProvider != nil {
		providers["gemini"] = geminiProvider
		if config.Debug && config.DebugLog != nil {
			config.DebugLog.Printf("[Provider] Initialized Gemini provider")
		}
	} else {
		if config.Debug && config.DebugLog != nil {
			config.DebugLog.Printf("[Provider] Gemini provider unavailable (no API key)")
		}
	}

	// Ollama needs no key, so it is always attempted (special case); an
	// explicit disabled [[providers]] entry opts out
	if entry := cfg.ProviderEntry("ollama"); entry == nil || entry.Enabled {
		if p := initializeOllama(cfg); p != nil {
			providers["ollama"] = p
			if config.Debug && config.DebugLog != nil {
				config.DebugLog.Printf("[Provider] Initialized Ollama provider")
			}
		}
	}

	for _, providerCfg := range cfg.Providers {
		if !providerCfg.Enabled || providerCfg.ID == "gemini" || providerCfg.ID == "ollama" {
			continue
		}

		apiKey := cfg.ResolveAPIKey(providerCfg.ID)

		p, err := NewProvider(Config{
			Type:    MapProviderIDToType(providerCfg.ID),
			BaseURL: providerCfg.BaseURL,
			APIKey:  apiKey,
			Model:   "", // Provider picks its own default
		})

		if err != nil {
			// Log warning but don't fail - allow app to start
			if config.Debug && config.DebugLog != nil {
				config.DebugLog.Printf("[Provider] Warning: failed to initialize provider %s: %v", providerCfg.ID, err)
			}
			continue
		}

		providers[providerCfg.ID] = p
		if config.Debug && config.DebugLog != nil {
			config.DebugLog.Printf("[Provider] Initialized provider: %s", providerCfg.ID)
		}
	}

	return providers
}

// initializeGemini creates the Gemini provider instance.
// Returns nil if no API key is available.
func initializeGemini(cfg *config.Config) model.Provider {
	baseURL := ""
	if entry := cfg.ProviderEntry("gemini"); entry != nil {
		baseURL = entry.BaseURL
	}

	p, err := NewProvider(Config{
		Type:    ProviderTypeGemini,
		BaseURL: baseURL,
		APIKey:  cfg.ResolveAPIKey("gemini"),
		Model:   cfg.Generation.Model,
	})
	if err != nil {
		if config.Debug && config.DebugLog != nil {
			config.DebugLog.Printf("[Provider] Gemini provider creation failed: %v", err)
		}
		return nil
	}
	return p
}

// initializeOllama creates the Ollama provider instance.
// Returns nil if initialization fails (server stays optional).
func initializeOllama(cfg *config.Config) model.Provider {
	p, err := NewProvider(Config{
		Type:    ProviderTypeOllama,
		BaseURL: cfg.OllamaURL(),
		Model:   cfg.OllamaModel,
	})
	if err != nil {
		if config.Debug && config.DebugLog != nil {
			config.DebugLog.Printf("[Provider] Ollama provider creation failed: %v", err)
		}
		return nil
	}
	return p
}
