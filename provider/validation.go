package provider

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gemtui/config"
)

// PingProviderMsg is sent when a provider ping completes.
type PingProviderMsg struct {
	ProviderID string
	Valid      bool
	Err        error
}

// ValidateKeyFormat does a cheap shape check on an API key before any
// network round trip. It catches pasted-the-wrong-thing mistakes; a key
// that passes still has to survive Ping.
func ValidateKeyFormat(providerID, apiKey string) error {
	key := strings.TrimSpace(apiKey)
	if key == "" {
		return fmt.Errorf("API key is empty")
	}
	if strings.ContainsAny(key, " \t\n") {
		return fmt.Errorf("API key contains whitespace")
	}

	switch providerID {
	case "gemini":
		if !strings.HasPrefix(key, "AIza") {
			return fmt.Errorf("Gemini API keys start with \"AIza\"")
		}
	case "anthropic":
		if !strings.HasPrefix(key, "sk-ant-") {
			return fmt.Errorf("Anthropic API keys start with \"sk-ant-\"")
		}
	case "openai":
		if !strings.HasPrefix(key, "sk-") {
			return fmt.Errorf("OpenAI API keys start with \"sk-\"")
		}
	}

	return nil
}

// PingProvider validates a provider's credentials by building a throwaway
// provider instance and calling Ping(). Used when the user enters an API
// key in the UI, before the key is adopted for the session.
func PingProvider(providerID, baseURL, apiKey string) tea.Cmd {
	return func() tea.Msg {
		if err := ValidateKeyFormat(providerID, apiKey); err != nil && providerID != "ollama" {
			return PingProviderMsg{
				ProviderID: providerID,
				Valid:      false,
				Err:        err,
			}
		}

		p, err := NewProvider(Config{
			Type:    MapProviderIDToType(providerID),
			BaseURL: baseURL,
			APIKey:  strings.TrimSpace(apiKey),
			Model:   "",
		})
		if err != nil {
			return PingProviderMsg{
				ProviderID: providerID,
				Valid:      false,
				Err:        fmt.Errorf("failed to create provider: %w", err),
			}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := p.Ping(ctx); err != nil {
			return PingProviderMsg{
				ProviderID: providerID,
				Valid:      false,
				Err:        fmt.Errorf("connection failed: %w", err),
			}
		}

		if config.Debug && config.DebugLog != nil {
			config.DebugLog.Printf("[Provider] Provider %s ping successful", providerID)
		}

		return PingProviderMsg{
			ProviderID: providerID,
			Valid:      true,
		}
	}
}
