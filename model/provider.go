package model

import (
	"context"

	"gemtui/config"
)

// Provider abstracts LLM provider implementations (Gemini, OpenAI,
// Anthropic, Ollama) using provider-agnostic types from gemtui's model
// layer.
//
// The interface lives in the model package (not the provider package) to
// avoid import cycles: provider implementations import model, and model can
// hold a Provider without importing the provider package.
type Provider interface {
	// Chat sends the ordered conversation turns with the generation
	// parameters and streams the response back via callback, one chunk at a
	// time, in arrival order.
	Chat(ctx context.Context, messages []Message, gen config.GenerationConfig, callback StreamCallback) error

	// ListModels returns the models selectable for this provider.
	ListModels(ctx context.Context) ([]ModelInfo, error)

	// GetModel returns the currently selected model name as used in API calls.
	GetModel() string

	// GetDisplayName returns the model name formatted for UI display.
	GetDisplayName() string

	// SetModel changes the active model.
	SetModel(model string)

	// Ping checks if the provider is reachable with the configured
	// credentials.
	Ping(ctx context.Context) error
}

// StreamCallback is called for each chunk of streamed response text.
// Returning an error aborts the stream.
type StreamCallback func(chunk string) error

// ModelInfo describes one selectable model.
type ModelInfo struct {
	Name         string // Display name
	InternalName string // Full API name (same as Name for most providers)
	Size         int64  // Bytes on disk (Ollama only; 0 when unknown)
	Provider     string // Provider ID: "gemini", "openai", "anthropic", "ollama"
}
