package model

import (
	"gemtui/config"
)

// Model holds the core application data and business logic state.
type Model struct {
	// Core dependencies
	Config *config.Config

	// Active provider plus every provider that initialized successfully
	Provider  Provider
	Providers map[string]Provider

	// Conversation state
	History *History
	Session *Session

	// Runtime state (not UI)
	Streaming  bool
	RequestSeq uint64 // bumped on every send, clear and cancel

	// Application metadata
	Version string
	License string
}

// NewModel creates the core model. active may be nil when no provider could
// be initialized (e.g. missing API key); sending is blocked until one is
// configured.
func NewModel(cfg *config.Config, active Provider, providers map[string]Provider, version, license string) *Model {
	return &Model{
		Config:    cfg,
		Provider:  active,
		Providers: providers,
		History:   NewHistory(cfg.MaxHistory),
		Session:   NewSession(),
		Version:   version,
		License:   license,
	}
}

// CanSend reports whether a completion request may be started, and if not,
// a user-facing reason. A missing provider means the API key was never
// configured, which is a configuration error rather than a generation
// failure: the buffer must stay untouched and no remote call is attempted.
func (m *Model) CanSend() (bool, string) {
	if m.Streaming {
		return false, "A response is still streaming. Press Esc to cancel it first."
	}
	if m.Provider == nil {
		return false, missingKeyNotice(m.Config.DefaultProvider)
	}
	return true, ""
}

// ClearConversation empties the buffer and starts a fresh session. Bumping
// RequestSeq makes any in-flight response stale, so its eventual arrival is
// discarded instead of corrupting the reset buffer.
func (m *Model) ClearConversation() {
	m.History.Clear()
	m.Session = NewSession()
	m.Streaming = false
	m.RequestSeq++

	if config.Debug && config.DebugLog != nil {
		config.DebugLog.Printf("[Model] Conversation cleared, new session %s", m.Session.ID)
	}
}

// CancelStreaming abandons the in-flight request. The provider goroutine is
// not interrupted; its result simply arrives with a stale sequence number
// and is ignored.
func (m *Model) CancelStreaming() {
	if !m.Streaming {
		return
	}
	m.Streaming = false
	m.RequestSeq++

	if config.Debug && config.DebugLog != nil {
		config.DebugLog.Printf("[Model] Streaming cancelled, seq now %d", m.RequestSeq)
	}
}

func missingKeyNotice(providerID string) string {
	envs := config.APIKeyEnvVars(providerID)
	if len(envs) == 0 {
		return "No provider is configured. Check " + config.GetConfigFilePath()
	}
	notice := "No API key configured for " + providerID + ". Set "
	for i, env := range envs {
		if i > 0 {
			notice += " or "
		}
		notice += env
	}
	notice += ", add it to the config file, or press Alt+K to enter one."
	return notice
}
