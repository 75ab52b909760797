package provider

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"gemtui/config"
	"gemtui/model"
)

// GeminiProvider implements the Provider interface using Google's official
// Gemini API via the genai SDK. This is gemtui's default provider.
type GeminiProvider struct {
	client  *genai.Client
	model   string
	baseURL string
	apiKey  string
}

// NewGeminiProvider creates a new Gemini provider instance.
//
// Parameters:
//   - baseURL: API base URL override (empty for the public Gemini API)
//   - apiKey: Gemini API key (required; GEMINI_API_KEY / GOOGLE_API_KEY)
//   - model: Initial model to use (defaults to the configured flash model)
//
// Returns an error if the API key is missing or the client cannot be built.
func NewGeminiProvider(baseURL, apiKey, modelName string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	if modelName == "" {
		modelName = config.DefaultModel
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		clientCfg.HTTPOptions.BaseURL = baseURL
	}

	client, err := genai.NewClient(context.Background(), clientCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client:  client,
		model:   modelName,
		baseURL: baseURL,
		apiKey:  apiKey,
	}, nil
}

// Chat implements Provider.Chat with streaming support.
func (p *GeminiProvider) Chat(ctx context.Context, messages []model.Message, gen config.GenerationConfig, callback model.StreamCallback) error {
	contents := convertToGeminiContents(messages)
	cfg := buildGeminiConfig(gen)

	for resp, err := range p.client.Models.GenerateContentStream(ctx, p.model, contents, cfg) {
		if err != nil {
			return fmt.Errorf("Gemini streaming error: %w", err)
		}
		if text := resp.Text(); text != "" && callback != nil {
			if err := callback(text); err != nil {
				return err
			}
		}
	}

	return nil
}

// ListModels implements Provider.ListModels.
// The Gemini API's model listing includes embedding and vision-only models
// that cannot chat, so we return a curated list of known chat models
// instead, the same way the Anthropic provider does.
func (p *GeminiProvider) ListModels(ctx context.Context) ([]model.ModelInfo, error) {
	models := []string{
		"gemini-2.5-flash-preview-09-2025",
		"gemini-2.5-pro",
		"gemini-2.5-flash",
		"gemini-2.5-flash-lite",
		"gemini-2.0-flash",
	}

	result := make([]model.ModelInfo, 0, len(models))
	seen := false
	for _, m := range models {
		if m == p.model {
			seen = true
		}
		result = append(result, model.ModelInfo{
			Name:         m,
			InternalName: m,
			Size:         0,
			Provider:     "gemini",
		})
	}

	// Keep a user-configured model selectable even if it's not in the list
	if !seen && p.model != "" {
		result = append(result, model.ModelInfo{
			Name:         p.model,
			InternalName: p.model,
			Provider:     "gemini",
		})
	}

	return result, nil
}

// GetModel implements Provider.GetModel.
func (p *GeminiProvider) GetModel() string {
	return p.model
}

// GetDisplayName implements Provider.GetDisplayName.
func (p *GeminiProvider) GetDisplayName() string {
	return p.model
}

// SetModel implements Provider.SetModel.
func (p *GeminiProvider) SetModel(model string) {
	p.model = model
}

// Ping implements Provider.Ping by making a minimal generation request,
// which validates both reachability and the API key.
func (p *GeminiProvider) Ping(ctx context.Context) error {
	cfg := &genai.GenerateContentConfig{MaxOutputTokens: 1}
	_, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text("ping"), cfg)
	if err != nil {
		return fmt.Errorf("Gemini ping failed: %w", err)
	}
	return nil
}

// convertToGeminiContents converts gemtui messages to Gemini content.
// Gemini uses "model" for the assistant role.
func convertToGeminiContents(messages []model.Message) []*genai.Content {
	contents := make([]*genai.Content, 0, len(messages))
	for _, msg := range messages {
		role := genai.RoleUser
		if msg.Role == "assistant" {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(msg.Content, genai.Role(role)))
	}
	return contents
}

// buildGeminiConfig maps the static generation parameters onto the Gemini
// request config. Gemini's TopK is a float in the SDK.
func buildGeminiConfig(gen config.GenerationConfig) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(gen.Temperature)),
		TopP:            genai.Ptr(float32(gen.TopP)),
		MaxOutputTokens: gen.MaxOutputTokens,
	}
	if gen.TopK > 0 {
		cfg.TopK = genai.Ptr(float32(gen.TopK))
	}
	return cfg
}
