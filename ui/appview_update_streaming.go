package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gemtui/config"
)

// handleStreamingMessage handles all streaming-related messages.
//
// Stream results carry the request sequence they were issued under. A clear
// or cancel bumps the model's sequence, so a result from an abandoned
// request arrives with a stale number and is dropped before it can touch
// the buffer.
func (a AppView) handleStreamingMessage(msg tea.Msg) (AppView, tea.Cmd) {
	switch msg := msg.(type) {
	case streamChunksCollectedMsg:
		if config.DebugLog != nil {
			config.DebugLog.Printf("streamChunksCollectedMsg received - %d chunks, seq %d", len(msg.Chunks), msg.Seq)
		}

		// Ignore stale results (cleared or cancelled while in flight)
		if msg.Seq != a.dataModel.RequestSeq || !a.dataModel.Streaming {
			if config.DebugLog != nil {
				config.DebugLog.Printf("Ignoring streamChunksCollectedMsg - stale (seq %d, current %d)", msg.Seq, a.dataModel.RequestSeq)
			}
			return a, nil
		}

		// Initialize typewriter effect
		a.chunks = msg.Chunks
		a.chunkIndex = 0
		a.currentResp.Reset()

		// Start displaying chunks after a brief delay so the spinner is
		// visible for fast responses
		seq := msg.Seq
		return a, tea.Tick(300*time.Millisecond, func(time.Time) tea.Msg {
			return displayChunkTickMsg{Seq: seq}
		})

	case displayChunkTickMsg:
		// A tick orphaned by cancel/clear must not touch a later request
		if msg.Seq != a.dataModel.RequestSeq || !a.dataModel.Streaming {
			return a, nil
		}

		if a.chunkIndex >= len(a.chunks) {
			// All chunks displayed - finalize
			fullResp := a.currentResp.String()
			a.dataModel.Streaming = false
			a.chunks = nil
			a.chunkIndex = 0
			a.currentResp.Reset()

			if config.DebugLog != nil {
				config.DebugLog.Printf("Typewriter complete - finalizing message")
			}

			if fullResp == "" {
				a.statusNotice = "⚠️ No response received from " + a.providerLabel()
				a.updateViewportContent(true)
				return a, nil
			}

			// Add final assistant turn and trigger markdown render
			a.dataModel.History.Append(Message{
				Role:      "assistant",
				Content:   fullResp,
				Rendered:  fullResp, // Start with plain text
				Timestamp: time.Now(),
			})

			abs := a.dataModel.History.AbsIndex(a.dataModel.History.Len() - 1)
			a.updateViewportContent(true)

			return a, a.renderMarkdownAsync(abs, fullResp)
		}

		// Display next chunk
		chunk := a.chunks[a.chunkIndex]
		a.chunkIndex++
		a.currentResp.WriteString(chunk)
		a.updateStreamingMessage()

		// Schedule next chunk with delay (30ms, but first chunk is immediate)
		delay := 30 * time.Millisecond
		if a.chunkIndex == 1 {
			delay = time.Millisecond // First chunk nearly immediate
		}

		seq := msg.Seq
		return a, tea.Tick(delay, func(time.Time) tea.Msg {
			return displayChunkTickMsg{Seq: seq}
		})

	case streamErrorMsg:
		if config.DebugLog != nil {
			config.DebugLog.Printf("streamErrorMsg received: %v (seq %d)", msg.Err, msg.Seq)
		}

		// Stale errors are as uninteresting as stale results
		if msg.Seq != a.dataModel.RequestSeq || !a.dataModel.Streaming {
			return a, nil
		}

		a.dataModel.Streaming = false
		a.currentResp.Reset()

		// Generation failure: the user's turn stays in the buffer, the
		// error is shown as a notice and the next send retries with the
		// same context
		displayMsg := fmt.Sprintf("❌ Error: %v", msg.Err)

		// Wrap error message to fit viewport width
		maxWidth := a.width - 10
		if maxWidth > 0 {
			displayMsg = lipgloss.NewStyle().Width(maxWidth).Render(displayMsg)
		}

		a.statusNotice = displayMsg
		a.updateViewportContent(true)
		return a, nil
	}

	return a, nil
}

func (a AppView) providerLabel() string {
	if a.dataModel.Provider != nil {
		return a.dataModel.Provider.GetDisplayName()
	}
	return "provider"
}
