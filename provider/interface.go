// Package provider implements the LLM provider adapters.
//
// GEMTUI talks to multiple generation backends (Gemini, OpenAI, Anthropic,
// local Ollama) through the common model.Provider interface. The UI and
// business logic stay provider-agnostic; everything provider-specific lives
// here, including the conversions between gemtui's model.Message turns and
// each SDK's request types.
//
// # Architecture
//
//   - model.Provider defines the contract (interface, in the model package
//     to avoid import cycles)
//   - provider.GeminiProvider implements it for the Gemini API (default)
//   - provider.OpenAIProvider, provider.AnthropicProvider for the other
//     cloud APIs
//   - provider.OllamaProvider for a local Ollama server
//   - provider.NewProvider() factory creates providers from Config
//   - provider.InitializeProviders() builds the startup provider map
//
// # Usage
//
//	cfg := provider.Config{
//	    Type:   provider.ProviderTypeGemini,
//	    APIKey: os.Getenv("GEMINI_API_KEY"),
//	    Model:  "gemini-2.5-flash-preview-09-2025",
//	}
//	p, err := provider.NewProvider(cfg)
//	if err != nil {
//	    // handle error
//	}
//	err = p.Chat(ctx, turns, genCfg, callback)
package provider

// ProviderType identifies the provider implementation.
type ProviderType string

const (
	ProviderTypeGemini    ProviderType = "gemini"
	ProviderTypeOpenAI    ProviderType = "openai"
	ProviderTypeAnthropic ProviderType = "anthropic"
	ProviderTypeOllama    ProviderType = "ollama"
)

// Config holds provider-specific configuration.
type Config struct {
	Type    ProviderType
	BaseURL string
	Model   string
	APIKey  string // Required for cloud providers (unused for Ollama)
}
