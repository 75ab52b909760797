package config

import "os"

// API keys are never persisted by gemtui itself: they come from the
// environment, the user-edited config file, or are typed into the key modal
// and held in memory for the life of the process.

// apiKeyEnvVars maps provider IDs to the environment variables checked for
// that provider's key, in priority order.
var apiKeyEnvVars = map[string][]string{
	"gemini":    {"GEMINI_API_KEY", "GOOGLE_API_KEY"},
	"openai":    {"OPENAI_API_KEY"},
	"anthropic": {"ANTHROPIC_API_KEY"},
}

// APIKeyEnvVars returns the environment variable names consulted for a
// provider, for use in user-facing configuration error messages.
func APIKeyEnvVars(providerID string) []string {
	return apiKeyEnvVars[providerID]
}

// ResolveAPIKey returns the API key for a provider: environment variables
// first, then the config file entry. Empty string means unconfigured.
// Ollama needs no key and always resolves to "".
func (c *Config) ResolveAPIKey(providerID string) string {
	for _, env := range apiKeyEnvVars[providerID] {
		if key := os.Getenv(env); key != "" {
			return key
		}
	}

	if entry := c.ProviderEntry(providerID); entry != nil {
		return entry.APIKey
	}
	return ""
}
