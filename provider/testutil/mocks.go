package testutil

import (
	"context"

	"gemtui/config"
	"gemtui/model"
)

// MockProvider implements the model.Provider interface for testing
type MockProvider struct {
	// Configurable responses
	ChatFunc       func(ctx context.Context, messages []model.Message, gen config.GenerationConfig, callback model.StreamCallback) error
	ListModelsFunc func(ctx context.Context) ([]model.ModelInfo, error)
	PingFunc       func(ctx context.Context) error

	// State
	currentModel string
}

// NewMockProvider creates a mock provider with default implementations
func NewMockProvider(modelName string) *MockProvider {
	mock := &MockProvider{
		currentModel: modelName,
	}
	mock.ChatFunc = mock.defaultChat
	mock.ListModelsFunc = mock.defaultListModels
	mock.PingFunc = mock.defaultPing
	return mock
}

// StreamingMockProvider returns a mock whose Chat delivers the given
// chunks in order via the callback.
func StreamingMockProvider(modelName string, chunks []string) *MockProvider {
	mock := NewMockProvider(modelName)
	mock.ChatFunc = func(ctx context.Context, messages []model.Message, gen config.GenerationConfig, callback model.StreamCallback) error {
		for _, chunk := range chunks {
			if err := callback(chunk); err != nil {
				return err
			}
		}
		return nil
	}
	return mock
}

func (m *MockProvider) defaultChat(ctx context.Context, messages []model.Message, gen config.GenerationConfig, callback model.StreamCallback) error {
	// Default: echo back a mock response
	if len(messages) > 0 {
		return callback("Mock response")
	}
	return nil
}

func (m *MockProvider) defaultListModels(ctx context.Context) ([]model.ModelInfo, error) {
	return []model.ModelInfo{
		{Name: "mock-model-1", InternalName: "mock-model-1", Size: 1000, Provider: "mock"},
		{Name: "mock-model-2", InternalName: "mock-model-2", Size: 2000, Provider: "mock"},
	}, nil
}

func (m *MockProvider) defaultPing(ctx context.Context) error {
	return nil
}

func (m *MockProvider) Chat(ctx context.Context, messages []model.Message, gen config.GenerationConfig, callback model.StreamCallback) error {
	return m.ChatFunc(ctx, messages, gen, callback)
}

func (m *MockProvider) ListModels(ctx context.Context) ([]model.ModelInfo, error) {
	return m.ListModelsFunc(ctx)
}

func (m *MockProvider) GetModel() string {
	return m.currentModel
}

func (m *MockProvider) GetDisplayName() string {
	// Mock provider returns same value as GetModel (no suffix stripping)
	return m.currentModel
}

func (m *MockProvider) SetModel(model string) {
	m.currentModel = model
}

func (m *MockProvider) Ping(ctx context.Context) error {
	return m.PingFunc(ctx)
}
