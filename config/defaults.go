package config

// Defaults mirror the hosted Gemini agent this client grew out of:
// flash model, moderate temperature, 10 exchanges of context.

const (
	DefaultModel      = "gemini-2.5-flash-preview-09-2025"
	DefaultMaxHistory = 20 // individual turns, i.e. 10 user/assistant pairs
)

func DefaultUserConfig() *UserConfig {
	return &UserConfig{
		DefaultProvider: "gemini",
		MaxHistory:      DefaultMaxHistory,
		Generation: GenerationConfig{
			Model:           DefaultModel,
			Temperature:     0.7,
			TopP:            0.95,
			TopK:            40,
			MaxOutputTokens: 5000,
		},
		Providers: []ProviderConfig{
			{ID: "gemini", Enabled: true},
			{ID: "openai", Enabled: false},
			{ID: "anthropic", Enabled: false},
		},
		Ollama: OllamaConfig{
			Host:         "http://localhost:11434",
			DefaultModel: "llama3.1:latest",
		},
	}
}

func GenerateConfigTemplate() string {
	return `# GEMTUI Configuration
# Location: ~/.config/gemtui/config.toml
# This file uses TOML format: https://toml.io

# Provider used when the app starts: gemini, openai, anthropic or ollama
default_provider = "gemini"

# Maximum number of turns (user + assistant messages) kept as context.
# Oldest turns are dropped first once the limit is reached.
max_history = 20

[generation]
# Model used for new conversations
model = "gemini-2.5-flash-preview-09-2025"
temperature = 0.7
top_p = 0.95
top_k = 40
max_output_tokens = 5000

# Cloud providers. API keys can be set here, via environment variables
# (GEMINI_API_KEY / GOOGLE_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY),
# or typed into the app when prompted.
[[providers]]
id = "gemini"
enabled = true
api_key = ""

[[providers]]
id = "openai"
enabled = false
api_key = ""

[[providers]]
id = "anthropic"
enabled = false
api_key = ""

[ollama]
# Local Ollama server (no API key required)
host = "http://localhost:11434"
default_model = "llama3.1:latest"
`
}
