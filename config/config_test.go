package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
)

func TestDefaultUserConfig(t *testing.T) {
	cfg := DefaultUserConfig()

	if cfg.DefaultProvider != "gemini" {
		t.Errorf("DefaultProvider = %q, want gemini", cfg.DefaultProvider)
	}
	if cfg.MaxHistory != DefaultMaxHistory {
		t.Errorf("MaxHistory = %d, want %d", cfg.MaxHistory, DefaultMaxHistory)
	}
	if cfg.Generation.Model != DefaultModel {
		t.Errorf("Generation.Model = %q, want %q", cfg.Generation.Model, DefaultModel)
	}
	if cfg.Generation.MaxOutputTokens <= 0 {
		t.Error("MaxOutputTokens must be positive")
	}
	if cfg.Ollama.Host == "" {
		t.Error("Ollama host default missing")
	}
}

func TestConfigTemplateIsValidTOML(t *testing.T) {
	var cfg UserConfig
	if _, err := toml.Decode(GenerateConfigTemplate(), &cfg); err != nil {
		t.Fatalf("config template does not parse: %v", err)
	}

	// The template's values must match the compiled-in defaults so a
	// fresh install behaves the same with or without the file present
	defaults := DefaultUserConfig()
	if cfg.DefaultProvider != defaults.DefaultProvider {
		t.Errorf("template default_provider = %q, want %q", cfg.DefaultProvider, defaults.DefaultProvider)
	}
	if cfg.MaxHistory != defaults.MaxHistory {
		t.Errorf("template max_history = %d, want %d", cfg.MaxHistory, defaults.MaxHistory)
	}
	if cfg.Generation.Model != defaults.Generation.Model {
		t.Errorf("template model = %q, want %q", cfg.Generation.Model, defaults.Generation.Model)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("GEMTUI_PROVIDER", "ollama")
	t.Setenv("GEMTUI_MODEL", "llama3.1:8b")
	t.Setenv("GEMTUI_OLLAMA_HOST", "http://remote:11434")
	t.Setenv("GEMTUI_MAX_HISTORY", "6")

	cfg := &Config{
		DefaultProvider: "gemini",
		MaxHistory:      20,
		Generation:      GenerationConfig{Model: DefaultModel},
		OllamaHost:      "http://localhost:11434",
	}
	cfg.applyEnvOverrides()

	if cfg.DefaultProvider != "ollama" {
		t.Errorf("DefaultProvider = %q, want ollama", cfg.DefaultProvider)
	}
	if cfg.Generation.Model != "llama3.1:8b" {
		t.Errorf("Model = %q, want llama3.1:8b", cfg.Generation.Model)
	}
	if cfg.OllamaHost != "http://remote:11434" {
		t.Errorf("OllamaHost = %q, want http://remote:11434", cfg.OllamaHost)
	}
	if cfg.MaxHistory != 6 {
		t.Errorf("MaxHistory = %d, want 6", cfg.MaxHistory)
	}
}

func TestApplyEnvOverridesRejectsBadMaxHistory(t *testing.T) {
	tests := []string{"0", "-3", "lots"}
	for _, v := range tests {
		t.Setenv("GEMTUI_MAX_HISTORY", v)
		cfg := &Config{MaxHistory: 20}
		cfg.applyEnvOverrides()
		if cfg.MaxHistory != 20 {
			t.Errorf("GEMTUI_MAX_HISTORY=%q changed MaxHistory to %d", v, cfg.MaxHistory)
		}
	}
}

func TestResolveAPIKeyEnvFirst(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "AIza-from-env")
	t.Setenv("GOOGLE_API_KEY", "")

	cfg := &Config{
		Providers: []ProviderConfig{
			{ID: "gemini", APIKey: "AIza-from-file", Enabled: true},
		},
	}

	if got := cfg.ResolveAPIKey("gemini"); got != "AIza-from-env" {
		t.Errorf("ResolveAPIKey = %q, want the environment value", got)
	}
}

func TestResolveAPIKeyFallsBackToConfigFile(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")

	cfg := &Config{
		Providers: []ProviderConfig{
			{ID: "gemini", APIKey: "AIza-from-file", Enabled: true},
		},
	}

	if got := cfg.ResolveAPIKey("gemini"); got != "AIza-from-file" {
		t.Errorf("ResolveAPIKey = %q, want the config file value", got)
	}
}

func TestResolveAPIKeySecondaryEnvVar(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "AIza-google")

	cfg := &Config{}
	if got := cfg.ResolveAPIKey("gemini"); got != "AIza-google" {
		t.Errorf("ResolveAPIKey = %q, want GOOGLE_API_KEY fallback", got)
	}
}

func TestResolveAPIKeyUnconfigured(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	cfg := &Config{}
	if got := cfg.ResolveAPIKey("openai"); got != "" {
		t.Errorf("ResolveAPIKey = %q, want empty for unconfigured provider", got)
	}
	if got := cfg.ResolveAPIKey("ollama"); got != "" {
		t.Errorf("ResolveAPIKey = %q, want empty for ollama (no key needed)", got)
	}
}

func TestAPIKeyEnvVars(t *testing.T) {
	if vars := APIKeyEnvVars("gemini"); len(vars) != 2 || vars[0] != "GEMINI_API_KEY" {
		t.Errorf("gemini env vars = %v", vars)
	}
	if vars := APIKeyEnvVars("ollama"); len(vars) != 0 {
		t.Errorf("ollama should have no key env vars, got %v", vars)
	}
}

func TestProviderEntry(t *testing.T) {
	cfg := &Config{
		Providers: []ProviderConfig{
			{ID: "gemini", Enabled: true},
			{ID: "openai", Enabled: false},
		},
	}

	if entry := cfg.ProviderEntry("openai"); entry == nil || entry.ID != "openai" {
		t.Errorf("ProviderEntry(openai) = %+v", entry)
	}
	if entry := cfg.ProviderEntry("anthropic"); entry != nil {
		t.Errorf("ProviderEntry(anthropic) = %+v, want nil", entry)
	}
}

func TestExpandPath(t *testing.T) {
	t.Setenv("HOME", "/home/testuser")

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/absolute/path", "/absolute/path"},
		{"~/documents", filepath.Join("/home/testuser", "documents")},
		{"relative/path", "relative/path"},
	}

	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExpandPathEnvVars(t *testing.T) {
	t.Setenv("GEMTUI_TEST_DIR", "/opt/data")

	if got := ExpandPath("$GEMTUI_TEST_DIR/cache"); got != "/opt/data/cache" {
		t.Errorf("ExpandPath = %q, want /opt/data/cache", got)
	}
}

func TestCheckDebug(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"true", true},
		{"1", true},
		{"yes", false},
		{"0", false},
	}

	for _, tt := range tests {
		t.Setenv("GEMTUI_DEBUG", tt.value)
		if got := CheckDebug(); got != tt.want {
			t.Errorf("CheckDebug with GEMTUI_DEBUG=%q = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestGetConfigFilePath(t *testing.T) {
	t.Setenv("HOME", "/home/testuser")

	got := GetConfigFilePath()
	if !strings.HasSuffix(got, filepath.Join("gemtui", "config.toml")) {
		t.Errorf("GetConfigFilePath = %q, want .../gemtui/config.toml", got)
	}
}
