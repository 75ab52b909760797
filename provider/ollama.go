package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ollama/ollama/api"

	"gemtui/config"
	"gemtui/model"
)

// OllamaProvider implements the Provider interface for a local Ollama
// server using the official Ollama Go client. No API key is needed.
type OllamaProvider struct {
	client  *api.Client
	model   string
	baseURL string
}

// NewOllamaProvider creates a new Ollama provider instance.
//
// Parameters:
//   - baseURL: Ollama server URL (default: "http://localhost:11434")
//   - model: Initial model to use (default: "llama3.1:latest")
//
// Returns an error if the base URL cannot be parsed.
func NewOllamaProvider(baseURL, modelName string) (*OllamaProvider, error) {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if modelName == "" {
		modelName = "llama3.1:latest"
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid Ollama URL %q: %w", baseURL, err)
	}

	return &OllamaProvider{
		client:  api.NewClient(parsed, http.DefaultClient),
		model:   modelName,
		baseURL: baseURL,
	}, nil
}

// Chat implements Provider.Chat with streaming support.
func (p *OllamaProvider) Chat(ctx context.Context, messages []model.Message, gen config.GenerationConfig, callback model.StreamCallback) error {
	stream := true
	req := &api.ChatRequest{
		Model:    p.model,
		Messages: convertToOllamaMessages(messages),
		Stream:   &stream,
		Options: map[string]any{
			"temperature": gen.Temperature,
			"top_p":       gen.TopP,
			"top_k":       int(gen.TopK),
			"num_predict": int(gen.MaxOutputTokens),
		},
	}

	err := p.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		if resp.Message.Content != "" && callback != nil {
			return callback(resp.Message.Content)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("Ollama streaming error: %w", err)
	}

	return nil
}

// ListModels implements Provider.ListModels by querying the local server
// for installed models.
func (p *OllamaProvider) ListModels(ctx context.Context) ([]model.ModelInfo, error) {
	resp, err := p.client.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list Ollama models: %w", err)
	}

	result := make([]model.ModelInfo, 0, len(resp.Models))
	for _, m := range resp.Models {
		result = append(result, model.ModelInfo{
			Name:         m.Name,
			InternalName: m.Name,
			Size:         m.Size,
			Provider:     "ollama",
		})
	}

	return result, nil
}

// GetModel implements Provider.GetModel.
func (p *OllamaProvider) GetModel() string {
	return p.model
}

// GetDisplayName implements Provider.GetDisplayName.
// Strips the ":latest" tag for cleaner display.
func (p *OllamaProvider) GetDisplayName() string {
	return strings.TrimSuffix(p.model, ":latest")
}

// SetModel implements Provider.SetModel.
func (p *OllamaProvider) SetModel(model string) {
	p.model = model
}

// Ping implements Provider.Ping by listing models, which only succeeds
// when the server is reachable.
func (p *OllamaProvider) Ping(ctx context.Context) error {
	if _, err := p.client.List(ctx); err != nil {
		return fmt.Errorf("Ollama server not reachable at %s: %w", p.baseURL, err)
	}
	return nil
}

// convertToOllamaMessages converts gemtui messages to Ollama's chat format.
func convertToOllamaMessages(messages []model.Message) []api.Message {
	out := make([]api.Message, 0, len(messages))
	for _, msg := range messages {
		role := msg.Role
		if role != "user" && role != "assistant" {
			role = "user"
		}
		out = append(out, api.Message{
			Role:    role,
			Content: msg.Content,
		})
	}
	return out
}
