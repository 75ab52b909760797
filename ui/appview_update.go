package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gemtui/config"
)

func (a AppView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	// Update spinner FIRST to handle TickMsg before anything else
	if a.dataModel.Streaming && a.currentResp.Len() == 0 {
		a.loadingSpinner, cmd = a.loadingSpinner.Update(msg)
		cmds = append(cmds, cmd)
		// Update viewport to show animated spinner
		a.updateStreamingMessage()
	}

	// Update API key validation spinner if checking
	if a.apiKeyChecking {
		a.apiKeySpinner, cmd = a.apiKeySpinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

		// Reserve space for title (1 line), separator (1 line), textarea
		// (3 lines) and status bar (1 line)
		viewportHeight := a.height - 6
		a.viewport.Width = a.width
		a.viewport.Height = viewportHeight
		a.textarea.SetWidth(a.width)

		a.ready = true
		a.updateViewportContent(true)
		return a, nil

	case tea.KeyMsg:
		// PRIORITY 0: Always-global shortcuts (quit, help toggle)
		if msg.String() == "alt+q" {
			if config.DebugLog != nil {
				config.DebugLog.Printf("[UI] Alt+Q pressed - quitting")
			}
			return a, tea.Quit
		}

		if msg.String() == "alt+h" {
			a.showHelp = !a.showHelp
			return a, nil
		}

		// PRIORITY 1: Route keys to the open modal
		if a.showHelp {
			if msg.String() == "esc" {
				a.showHelp = false
			}
			return a, nil
		}

		if a.showAPIKeyModal {
			return a.handleAPIKeyModalUpdate(msg)
		}

		if a.confirmClear {
			return a.handleClearConfirmUpdate(msg)
		}

		if a.showModelSelector {
			return a.handleModelSelectorUpdate(msg)
		}

		if a.showAbout {
			if msg.String() == "esc" || msg.String() == "alt+a" {
				a.showAbout = false
			}
			return a, nil
		}

		// PRIORITY 2: Main chat shortcuts
		switch msg.String() {
		case "alt+m":
			a.closeAllModals()
			if a.modelListCached && len(a.modelList) > 0 {
				a.showModelSelector = true
				a.preselectCurrentModel()
				return a, nil
			}
			// No cached list yet - fetch and open on arrival
			return a, a.dataModel.FetchAllModels(true)

		case "alt+n":
			a.closeAllModals()
			if a.dataModel.History.Len() == 0 && !a.dataModel.Streaming {
				// Nothing to discard
				return a, nil
			}
			a.confirmClear = true
			return a, nil

		case "alt+k":
			a.closeAllModals()
			a.showAPIKeyModal = true
			a.apiKeyProvider = a.dataModel.Config.DefaultProvider
			a.apiKeyInput.SetValue("")
			a.apiKeyInput.Focus()
			return a, nil

		case "alt+a":
			a.showAbout = !a.showAbout
			return a, nil

		case "alt+y":
			// Copy last assistant message
			turns := a.dataModel.History.Snapshot()
			for i := len(turns) - 1; i >= 0; i-- {
				if turns[i].Role == "assistant" {
					clipboard.WriteAll(turns[i].Content)
					return a, nil
				}
			}
			return a, nil

		case "alt+c":
			// Copy the whole conversation
			var allText strings.Builder
			for _, turn := range a.dataModel.History.Snapshot() {
				role := turn.Role
				switch role {
				case "user":
					role = "You"
				case "assistant":
					role = "Assistant"
				}
				allText.WriteString(fmt.Sprintf("[%s] %s:\n%s\n\n",
					turn.Timestamp.Format("15:04"),
					role,
					turn.Content))
			}
			clipboard.WriteAll(allText.String())
			return a, nil

		case "alt+d", "alt+down":
			a.viewport.HalfPageDown()
			return a, nil

		case "alt+u", "alt+up":
			a.viewport.HalfPageUp()
			return a, nil

		case "pgdown":
			a.viewport.PageDown()
			return a, nil

		case "pgup":
			a.viewport.PageUp()
			return a, nil

		case "alt+g":
			a.viewport.GotoTop()
			return a, nil

		case "alt+G":
			a.viewport.GotoBottom()
			return a, nil
		}

		// PRIORITY 3: Tab handling (chat input)
		if msg.String() == "tab" && !a.dataModel.Streaming {
			a.textarea.InsertString("   ")
			return a, nil
		}

		// PRIORITY 4: Streaming cancellation (only if no modal open)
		if msg.String() == "esc" && a.dataModel.Streaming {
			return a.cancelStreaming(), nil
		}

		// Handle Enter for sending messages - DON'T let textarea process it.
		// Alt+Enter passes through for newlines.
		if msg.Type == tea.KeyEnter && !msg.Alt {
			return a.sendCurrentInput()
		}

	case streamChunksCollectedMsg, displayChunkTickMsg, streamErrorMsg:
		return a.handleStreamingMessage(msg)

	case markdownRenderedMsg:
		// Renders from a previous session (cleared mid-flight) are stale
		if msg.SessionID != a.dataModel.Session.ID {
			return a, nil
		}
		a.dataModel.History.UpdateRendered(msg.MessageIndex, msg.Rendered)
		a.updateViewportContent(true)
		return a, nil

	case modelsListMsg:
		if msg.Err != nil {
			if config.DebugLog != nil {
				config.DebugLog.Printf("Error fetching models: %v", msg.Err)
			}
			if msg.ShowSelector {
				a.statusNotice = fmt.Sprintf("⚠️ Could not fetch models: %v", msg.Err)
				a.updateViewportContent(true)
			}
			return a, nil
		}

		a.modelList = msg.Models
		a.modelListCached = true

		if config.DebugLog != nil {
			config.DebugLog.Printf("Fetched %d models", len(msg.Models))
		}

		if msg.ShowSelector {
			a.showModelSelector = true
			a.preselectCurrentModel()
		}
		return a, nil

	case pingProviderMsg:
		return a.handlePingResult(msg)
	}

	// Forward everything else to the focused components
	a.textarea, cmd = a.textarea.Update(msg)
	cmds = append(cmds, cmd)
	a.viewport, cmd = a.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return a, tea.Batch(cmds...)
}

// sendCurrentInput validates, appends the user's turn and fires the
// provider command. Configuration errors (no key, already streaming) leave
// the buffer untouched and never reach the network.
func (a AppView) sendCurrentInput() (tea.Model, tea.Cmd) {
	ok, reason := a.dataModel.CanSend()
	if !ok {
		a.statusNotice = "⚠️ " + reason
		a.updateViewportContent(true)
		return a, nil
	}

	userMsg := strings.TrimSpace(a.textarea.Value())
	if userMsg == "" {
		return a, nil
	}
	a.textarea.Reset()
	a.statusNotice = ""

	if config.DebugLog != nil {
		config.DebugLog.Printf("Enter pressed - sending message (%d chars)", len(userMsg))
	}

	// Add user turn (may evict the oldest turn)
	a.dataModel.History.Append(Message{
		Role:      "user",
		Content:   userMsg,
		Rendered:  userMsg, // Start with plain text, will be rendered async
		Timestamp: time.Now(),
	})
	userAbs := a.dataModel.History.AbsIndex(a.dataModel.History.Len() - 1)

	// Initialize and start spinner
	a.loadingSpinner = spinner.New()
	a.loadingSpinner.Spinner = spinner.Dot
	a.loadingSpinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("15")) // Bright white

	a.dataModel.Streaming = true
	a.dataModel.RequestSeq++
	a.currentResp.Reset()
	a.updateStreamingMessage()

	// Start streaming response, spinner animation and user message markdown
	return a, tea.Batch(
		a.renderMarkdownAsync(userAbs, userMsg),
		a.dataModel.Send(),
		a.loadingSpinner.Tick,
	)
}

// cancelStreaming abandons the in-flight request. Text already played back
// by the typewriter is kept as a truncated assistant turn; a response that
// never produced visible text leaves only a notice.
func (a AppView) cancelStreaming() AppView {
	partialResp := a.currentResp.String()

	a.dataModel.CancelStreaming()
	a.chunks = nil
	a.chunkIndex = 0
	a.currentResp.Reset()

	if partialResp != "" {
		content := partialResp + "\n\n⚠️ Response cancelled"
		a.dataModel.History.Append(Message{
			Role:      "assistant",
			Content:   content,
			Rendered:  content,
			Timestamp: time.Now(),
		})
	} else {
		a.statusNotice = "⚠️ Request cancelled"
	}

	a.updateViewportContent(true)
	return a
}

func (a *AppView) preselectCurrentModel() {
	a.selectedModelIdx = 0
	if a.dataModel.Provider == nil {
		return
	}
	current := a.dataModel.Provider.GetModel()
	for i, m := range a.modelList {
		if m.InternalName == current {
			a.selectedModelIdx = i
			return
		}
	}
}
