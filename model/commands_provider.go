package model

import (
	"context"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gemtui/config"
)

const requestTimeout = 120 * time.Second

// Send streams the current conversation to the active provider and collects
// the response. The caller must have already appended the user's turn to the
// history and set Streaming; Send captures a snapshot and the current
// request sequence, so a clear or cancel issued while the request is in
// flight makes the eventual result stale.
func (m *Model) Send() tea.Cmd {
	client := m.Provider
	gen := m.Config.Generation
	seq := m.RequestSeq
	turns := m.History.Snapshot()

	return func() tea.Msg {
		if config.DebugLog != nil {
			config.DebugLog.Printf("Send goroutine started - %d turns, seq %d", len(turns), seq)
		}

		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var chunks []string
		var responseBuilder strings.Builder
		startTime := time.Now()

		err := client.Chat(ctx, turns, gen, func(chunk string) error {
			responseBuilder.WriteString(chunk)
			chunks = append(chunks, chunk)
			return nil
		})

		elapsed := time.Since(startTime)

		if err != nil {
			if config.DebugLog != nil {
				config.DebugLog.Printf("Provider error after %v: %v", elapsed, err)
			}
			return StreamErrorMsg{Seq: seq, Err: err}
		}

		response := responseBuilder.String()
		if config.DebugLog != nil {
			config.DebugLog.Printf("Response received after %v - %d chunks, %d chars", elapsed, len(chunks), len(response))
		}

		return StreamChunksCollectedMsg{
			Seq:          seq,
			Chunks:       chunks,
			FullResponse: response,
		}
	}
}

// FetchAllModels retrieves models from all initialized providers.
// showSelector: whether to open the model selector after the fetch
// (user-initiated vs background startup fetch).
func (m *Model) FetchAllModels(showSelector bool) tea.Cmd {
	providers := m.Providers

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var allModels []ModelInfo
		var lastErr error
		for providerID, client := range providers {
			models, err := client.ListModels(ctx)
			if err != nil {
				// Don't fail the whole fetch - show models from the
				// providers that answered
				lastErr = err
				if config.Debug && config.DebugLog != nil {
					config.DebugLog.Printf("Warning: failed to fetch models from %s: %v", providerID, err)
				}
				continue
			}
			allModels = append(allModels, models...)
		}

		sort.Slice(allModels, func(i, j int) bool {
			return allModels[i].Name < allModels[j].Name
		})

		if len(allModels) > 0 {
			lastErr = nil
		}

		return ModelsListMsg{
			Models:       allModels,
			Err:          lastErr,
			ShowSelector: showSelector,
		}
	}
}

// SwitchModel switches the active provider and model to the selection.
// Falls back to setting the model on the current provider if the selected
// provider is somehow absent.
func (m *Model) SwitchModel(info ModelInfo) {
	client, ok := m.Providers[info.Provider]
	if !ok {
		if config.Debug && config.DebugLog != nil {
			config.DebugLog.Printf("[Model] WARNING: Provider '%s' not found for model '%s', using current", info.Provider, info.Name)
		}
		if m.Provider != nil {
			m.Provider.SetModel(info.InternalName)
		}
		return
	}

	m.Provider = client
	client.SetModel(info.InternalName)

	if config.Debug && config.DebugLog != nil {
		config.DebugLog.Printf("[Model] Switched to model '%s' (provider: %s)", info.Name, info.Provider)
	}
}
