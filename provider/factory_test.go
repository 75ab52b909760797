package provider

import (
	"testing"

	"gemtui/model"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
		expectNil   bool
	}{
		{
			name: "gemini provider with key",
			config: Config{
				Type:   ProviderTypeGemini,
				Model:  "gemini-2.5-flash-preview-09-2025",
				APIKey: "AIzaTestKey",
			},
			expectError: false,
			expectNil:   false,
		},
		{
			name: "gemini provider without key",
			config: Config{
				Type:  ProviderTypeGemini,
				Model: "gemini-2.5-flash-preview-09-2025",
			},
			expectError: true,
			expectNil:   true,
		},
		{
			name: "openai provider",
			config: Config{
				Type:    ProviderTypeOpenAI,
				BaseURL: "https://api.openai.com/v1",
				Model:   "gpt-4o-mini",
				APIKey:  "test-key",
			},
			expectError: false,
			expectNil:   false,
		},
		{
			name: "openai provider without key",
			config: Config{
				Type:    ProviderTypeOpenAI,
				BaseURL: "https://api.openai.com/v1",
				Model:   "gpt-4o-mini",
			},
			expectError: true,
			expectNil:   true,
		},
		{
			name: "anthropic provider",
			config: Config{
				Type:    ProviderTypeAnthropic,
				BaseURL: "https://api.anthropic.com",
				Model:   "claude-sonnet-4-5-20250929",
				APIKey:  "test-key",
			},
			expectError: false,
			expectNil:   false,
		},
		{
			name: "ollama provider with defaults",
			config: Config{
				Type:    ProviderTypeOllama,
				BaseURL: "",
				Model:   "",
			},
			expectError: false,
			expectNil:   false,
		},
		{
			name: "unknown provider type",
			config: Config{
				Type:    ProviderType("unknown"),
				BaseURL: "http://localhost",
				Model:   "test",
			},
			expectError: true,
			expectNil:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := NewProvider(tt.config)

			if tt.expectError && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if tt.expectNil && provider != nil {
				t.Error("expected nil provider, got non-nil")
			}
			if !tt.expectNil && provider == nil {
				t.Error("expected non-nil provider, got nil")
			}

			if !tt.expectError && provider != nil {
				var _ model.Provider = provider
			}
		})
	}
}

// TestFactoryReturnsGeminiProvider verifies that the factory dispatches to
// the concrete Gemini implementation.
func TestFactoryReturnsGeminiProvider(t *testing.T) {
	provider, err := NewProvider(Config{
		Type:   ProviderTypeGemini,
		APIKey: "AIzaTestKey",
		Model:  "gemini-2.5-flash",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := provider.(*GeminiProvider); !ok {
		t.Errorf("expected *GeminiProvider, got %T", provider)
	}
}

// TestFactoryForwardsGeminiBaseURL verifies that a configured base URL
// reaches the Gemini provider the same way it does for the other cloud
// providers.
func TestFactoryForwardsGeminiBaseURL(t *testing.T) {
	provider, err := NewProvider(Config{
		Type:    ProviderTypeGemini,
		BaseURL: "https://gemini-proxy.internal",
		APIKey:  "AIzaTestKey",
		Model:   "gemini-2.5-flash",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	gp, ok := provider.(*GeminiProvider)
	if !ok {
		t.Fatalf("expected *GeminiProvider, got %T", provider)
	}
	if gp.baseURL != "https://gemini-proxy.internal" {
		t.Errorf("baseURL = %q, want the configured proxy URL", gp.baseURL)
	}
}

func TestMapProviderIDToType(t *testing.T) {
	tests := []struct {
		id   string
		want ProviderType
	}{
		{"gemini", ProviderTypeGemini},
		{"openai", ProviderTypeOpenAI},
		{"anthropic", ProviderTypeAnthropic},
		{"ollama", ProviderTypeOllama},
		{"something-else", ProviderType("something-else")},
	}

	for _, tt := range tests {
		if got := MapProviderIDToType(tt.id); got != tt.want {
			t.Errorf("MapProviderIDToType(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}
