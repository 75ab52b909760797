package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"gemtui/config"
	appmodel "gemtui/model"
)

var errTest = errors.New("connection refused")

func testConfig() *config.Config {
	return &config.Config{
		DefaultProvider: "gemini",
		MaxHistory:      20,
		Generation: config.GenerationConfig{
			Model:           "test-model",
			Temperature:     0.7,
			TopP:            0.95,
			TopK:            40,
			MaxOutputTokens: 5000,
		},
	}
}

func newTestAppView() AppView {
	dataModel := appmodel.NewModel(testConfig(), nil, map[string]appmodel.Provider{}, "test", "Apache-2.0")
	return AppView{
		dataModel:        dataModel,
		viewport:         viewport.New(80, 20),
		textarea:         textarea.New(),
		modelFilterInput: textinput.New(),
		currentResp:      &strings.Builder{},
		width:            80,
		height:           24,
		ready:            true,
	}
}

func TestFreshStreamResultStartsTypewriter(t *testing.T) {
	a := newTestAppView()
	a.dataModel.Streaming = true
	a.dataModel.RequestSeq++

	a, cmd := a.handleStreamingMessage(streamChunksCollectedMsg{
		Seq:          a.dataModel.RequestSeq,
		Chunks:       []string{"Hello ", "world"},
		FullResponse: "Hello world",
	})

	if cmd == nil {
		t.Fatal("expected a tick command to start the typewriter")
	}
	if len(a.chunks) != 2 || a.chunkIndex != 0 {
		t.Errorf("typewriter state = %d chunks at index %d, want 2 at 0", len(a.chunks), a.chunkIndex)
	}
}

func TestStaleStreamResultDiscardedAfterClear(t *testing.T) {
	a := newTestAppView()

	// A request goes out...
	a.dataModel.History.Append(Message{Role: "user", Content: "question", Rendered: "question"})
	a.dataModel.Streaming = true
	a.dataModel.RequestSeq++
	staleSeq := a.dataModel.RequestSeq

	// ...the user clears while it is in flight...
	a.dataModel.ClearConversation()

	// ...and the response lands afterwards
	a, cmd := a.handleStreamingMessage(streamChunksCollectedMsg{
		Seq:          staleSeq,
		Chunks:       []string{"too ", "late"},
		FullResponse: "too late",
	})

	if cmd != nil {
		t.Error("stale result should not start the typewriter")
	}
	if a.chunks != nil {
		t.Error("stale result should not install chunks")
	}
	if a.dataModel.History.Len() != 0 {
		t.Errorf("stale result touched the cleared buffer, got %d turns", a.dataModel.History.Len())
	}
}

func TestStaleStreamErrorDiscarded(t *testing.T) {
	a := newTestAppView()
	a.dataModel.Streaming = true
	a.dataModel.RequestSeq++
	staleSeq := a.dataModel.RequestSeq

	a.dataModel.CancelStreaming()

	a, _ = a.handleStreamingMessage(streamErrorMsg{Seq: staleSeq, Err: errTest})

	if a.statusNotice != "" {
		t.Errorf("stale error surfaced a notice: %q", a.statusNotice)
	}
}

func TestTypewriterFinalizeAppendsAssistantTurn(t *testing.T) {
	a := newTestAppView()
	a.dataModel.History.Append(Message{Role: "user", Content: "question", Rendered: "question"})
	a.dataModel.Streaming = true
	a.chunks = []string{"Hello ", "world"}
	a.chunkIndex = 0

	// Two ticks play the chunks, the third finalizes
	var cmd tea.Cmd
	for i := 0; i < 3; i++ {
		a, cmd = a.handleStreamingMessage(displayChunkTickMsg{Seq: a.dataModel.RequestSeq})
		_ = cmd
	}

	if a.dataModel.Streaming {
		t.Error("expected streaming finished")
	}
	if a.dataModel.History.Len() != 2 {
		t.Fatalf("expected user + assistant turns, got %d", a.dataModel.History.Len())
	}

	last := a.dataModel.History.Last()
	if last.Role != "assistant" {
		t.Errorf("last turn role = %q, want assistant", last.Role)
	}
	if last.Content != "Hello world" {
		t.Errorf("assistant turn = %q, want chunks concatenated in order", last.Content)
	}
}

func TestTypewriterStopsWhenCancelled(t *testing.T) {
	a := newTestAppView()
	a.dataModel.Streaming = true
	a.dataModel.RequestSeq++
	playingSeq := a.dataModel.RequestSeq
	a.chunks = []string{"partial"}
	a.chunkIndex = 0

	a.dataModel.CancelStreaming()

	a, cmd := a.handleStreamingMessage(displayChunkTickMsg{Seq: playingSeq})

	if cmd != nil {
		t.Error("cancelled typewriter should not schedule another tick")
	}
	if a.dataModel.History.Len() != 0 {
		t.Errorf("cancelled typewriter appended a turn, got %d", a.dataModel.History.Len())
	}
}

func TestOrphanTickDoesNotFinalizeNewRequest(t *testing.T) {
	a := newTestAppView()

	// First request starts playing
	a.dataModel.Streaming = true
	a.dataModel.RequestSeq++
	orphanSeq := a.dataModel.RequestSeq

	// User cancels and immediately sends again; the new request has no
	// collected chunks yet
	a.dataModel.CancelStreaming()
	a.dataModel.History.Append(Message{Role: "user", Content: "again", Rendered: "again"})
	a.dataModel.Streaming = true
	a.dataModel.RequestSeq++

	// The first request's leftover tick lands now
	a, _ = a.handleStreamingMessage(displayChunkTickMsg{Seq: orphanSeq})

	if !a.dataModel.Streaming {
		t.Error("orphaned tick must not finish the new request")
	}
	if a.statusNotice != "" {
		t.Errorf("orphaned tick surfaced a notice: %q", a.statusNotice)
	}
	if a.dataModel.History.Len() != 1 {
		t.Errorf("orphaned tick changed the buffer, got %d turns", a.dataModel.History.Len())
	}
}

func TestStreamErrorKeepsUserTurn(t *testing.T) {
	a := newTestAppView()
	a.dataModel.History.Append(Message{Role: "user", Content: "question", Rendered: "question"})
	a.dataModel.Streaming = true
	a.dataModel.RequestSeq++

	a, _ = a.handleStreamingMessage(streamErrorMsg{Seq: a.dataModel.RequestSeq, Err: errTest})

	if a.dataModel.Streaming {
		t.Error("expected streaming stopped on error")
	}
	if !strings.Contains(a.statusNotice, "Error") {
		t.Errorf("expected an error notice, got %q", a.statusNotice)
	}
	// The user's turn survives so the next send retries with the same context
	if a.dataModel.History.Len() != 1 {
		t.Errorf("generation error changed the buffer, got %d turns", a.dataModel.History.Len())
	}
}

func TestEmptyResponseShowsNotice(t *testing.T) {
	a := newTestAppView()
	a.dataModel.Streaming = true
	a.chunks = nil
	a.chunkIndex = 0

	a, _ = a.handleStreamingMessage(displayChunkTickMsg{Seq: a.dataModel.RequestSeq})

	if a.dataModel.History.Len() != 0 {
		t.Errorf("empty response must not append a turn, got %d", a.dataModel.History.Len())
	}
	if !strings.Contains(a.statusNotice, "No response") {
		t.Errorf("expected empty-response notice, got %q", a.statusNotice)
	}
}

func TestStaleMarkdownRenderDropped(t *testing.T) {
	a := newTestAppView()
	a.dataModel.History.Append(Message{Role: "user", Content: "old", Rendered: "old"})
	oldSession := a.dataModel.Session.ID

	a.dataModel.ClearConversation()
	a.dataModel.History.Append(Message{Role: "user", Content: "new", Rendered: "new"})

	model, _ := a.Update(markdownRenderedMsg{
		SessionID:    oldSession,
		MessageIndex: 0,
		Rendered:     "rendered for the old session",
	})
	a = model.(AppView)

	if got := a.dataModel.History.Snapshot()[0].Rendered; got != "new" {
		t.Errorf("stale render landed on the new conversation: %q", got)
	}
}
