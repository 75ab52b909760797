package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	appmodel "gemtui/model"
	"gemtui/provider/testutil"
)

func testModelList() []appmodel.ModelInfo {
	return []appmodel.ModelInfo{
		{Name: "claude-sonnet-4-5", InternalName: "claude-sonnet-4-5", Provider: "anthropic"},
		{Name: "gemini-2.5-flash", InternalName: "gemini-2.5-flash", Provider: "gemini"},
		{Name: "gemini-2.5-pro", InternalName: "gemini-2.5-pro", Provider: "gemini"},
		{Name: "gpt-5", InternalName: "gpt-5", Provider: "openai"},
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	default:
		return keyRunes(s)
	}
}

func TestModelFilterNarrowsList(t *testing.T) {
	a := newTestAppView()
	a.showModelSelector = true
	a.modelList = testModelList()

	// "/" enters filter mode
	a, _ = a.handleModelSelectorUpdate(keyPress("/"))
	if !a.modelFilterMode {
		t.Fatal("expected filter mode after /")
	}

	for _, r := range "flash" {
		a, _ = a.handleModelSelectorUpdate(keyRunes(string(r)))
	}

	list := a.getModelList()
	if len(list) != 1 || list[0].Name != "gemini-2.5-flash" {
		t.Errorf("filter %q matched %+v, want only gemini-2.5-flash", "flash", list)
	}
}

func TestModelFilterEscRestoresFullList(t *testing.T) {
	a := newTestAppView()
	a.showModelSelector = true
	a.modelList = testModelList()

	a, _ = a.handleModelSelectorUpdate(keyPress("/"))
	for _, r := range "gpt" {
		a, _ = a.handleModelSelectorUpdate(keyRunes(string(r)))
	}
	a, _ = a.handleModelSelectorUpdate(keyPress("esc"))

	if a.modelFilterMode {
		t.Error("esc should leave filter mode")
	}
	if got := a.getModelList(); len(got) != len(testModelList()) {
		t.Errorf("expected full list restored, got %d entries", len(got))
	}
}

func TestModelSelectorEnterSwitchesModel(t *testing.T) {
	mock := testutil.NewMockProvider("gemini-2.5-flash")
	a := newTestAppView()
	a.dataModel.Provider = mock
	a.dataModel.Providers["gemini"] = mock
	a.showModelSelector = true
	a.modelList = testModelList()
	a.selectedModelIdx = 2 // gemini-2.5-pro

	a, _ = a.handleModelSelectorUpdate(keyPress("enter"))

	if a.showModelSelector {
		t.Error("selector should close after selection")
	}
	if mock.GetModel() != "gemini-2.5-pro" {
		t.Errorf("model = %q, want gemini-2.5-pro", mock.GetModel())
	}
}

func TestClearConfirmYesEmptiesBuffer(t *testing.T) {
	a := newTestAppView()
	a.dataModel.History.Append(appmodel.Message{Role: "user", Content: "hi", Rendered: "hi", Timestamp: time.Now()})
	a.confirmClear = true
	a.statusNotice = "leftover"

	a, _ = a.handleClearConfirmUpdate(keyRunes("y"))

	if a.confirmClear {
		t.Error("confirmation should close")
	}
	if a.dataModel.History.Len() != 0 {
		t.Errorf("expected empty buffer, got %d turns", a.dataModel.History.Len())
	}
	if a.statusNotice != "" {
		t.Errorf("notice should reset on clear, got %q", a.statusNotice)
	}
}

func TestClearConfirmNoKeepsBuffer(t *testing.T) {
	a := newTestAppView()
	a.dataModel.History.Append(appmodel.Message{Role: "user", Content: "hi", Rendered: "hi", Timestamp: time.Now()})
	a.confirmClear = true

	a, _ = a.handleClearConfirmUpdate(keyRunes("n"))

	if a.confirmClear {
		t.Error("confirmation should close")
	}
	if a.dataModel.History.Len() != 1 {
		t.Errorf("declining must keep the buffer, got %d turns", a.dataModel.History.Len())
	}
}

func TestSendBlockedWithoutProvider(t *testing.T) {
	a := newTestAppView() // nil provider
	a.textarea.SetValue("hello")

	model, cmd := a.sendCurrentInput()
	a = model.(AppView)

	if cmd != nil {
		t.Error("no command should fire without a provider")
	}
	if a.dataModel.History.Len() != 0 {
		t.Errorf("configuration error must leave the buffer untouched, got %d turns", a.dataModel.History.Len())
	}
	if a.statusNotice == "" {
		t.Error("expected a configuration notice")
	}
}

func TestSendAppendsUserTurnAndStartsStreaming(t *testing.T) {
	mock := testutil.StreamingMockProvider("mock-model", []string{"hi"})
	a := newTestAppView()
	a.dataModel.Provider = mock
	a.dataModel.Providers["gemini"] = mock
	a.textarea.SetValue("  hello there  ")

	model, cmd := a.sendCurrentInput()
	a = model.(AppView)

	if cmd == nil {
		t.Fatal("expected the send command batch")
	}
	if !a.dataModel.Streaming {
		t.Error("expected streaming state set")
	}
	if a.dataModel.History.Len() != 1 {
		t.Fatalf("expected 1 user turn, got %d", a.dataModel.History.Len())
	}
	if got := a.dataModel.History.Last().Content; got != "hello there" {
		t.Errorf("user turn = %q, want trimmed input", got)
	}
}

func TestSendIgnoresBlankInput(t *testing.T) {
	mock := testutil.NewMockProvider("mock-model")
	a := newTestAppView()
	a.dataModel.Provider = mock
	a.textarea.SetValue("   \n  ")

	model, cmd := a.sendCurrentInput()
	a = model.(AppView)

	if cmd != nil || a.dataModel.History.Len() != 0 || a.dataModel.Streaming {
		t.Error("blank input must not produce a request")
	}
}
