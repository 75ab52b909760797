package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"gemtui/config"
	appmodel "gemtui/model"
	"gemtui/provider"
)

func (a AppView) handleModelSelectorUpdate(msg tea.KeyMsg) (AppView, tea.Cmd) {
	// Handle model filter mode
	if a.modelFilterMode {
		switch msg.String() {
		case "esc":
			a.modelFilterMode = false
			a.modelFilterInput.Blur()
			a.modelFilterInput.SetValue("")
			a.filteredModelList = []appmodel.ModelInfo{}
			a.selectedModelIdx = 0
			return a, nil

		case "enter":
			list := a.getModelList()
			if a.selectedModelIdx >= 0 && a.selectedModelIdx < len(list) {
				selected := list[a.selectedModelIdx]
				a.showModelSelector = false
				a.modelFilterMode = false
				a.modelFilterInput.Blur()
				a.modelFilterInput.SetValue("")
				a.dataModel.SwitchModel(selected)
				a.updateViewportContent(true)
			}
			return a, nil

		case "alt+j", "alt+down", "down":
			list := a.getModelList()
			if a.selectedModelIdx < len(list)-1 {
				a.selectedModelIdx++
			}
			return a, nil

		case "alt+k", "alt+up", "up":
			if a.selectedModelIdx > 0 {
				a.selectedModelIdx--
			}
			return a, nil
		}

		var cmd tea.Cmd
		a.modelFilterInput, cmd = a.modelFilterInput.Update(msg)

		filterValue := a.modelFilterInput.Value()
		if filterValue == "" {
			a.filteredModelList = a.modelList
		} else {
			targets := make([]string, len(a.modelList))
			for i, mdl := range a.modelList {
				targets[i] = mdl.Name
			}

			matches := fuzzy.Find(filterValue, targets)
			a.filteredModelList = make([]appmodel.ModelInfo, len(matches))
			for i, match := range matches {
				a.filteredModelList[i] = a.modelList[match.Index]
			}
		}

		list := a.getModelList()
		if a.selectedModelIdx >= len(list) && len(list) > 0 {
			a.selectedModelIdx = len(list) - 1
		}

		return a, cmd
	}

	// Normal model selector mode
	switch msg.String() {
	case "/":
		a.modelFilterMode = true
		a.modelFilterInput.Focus()
		a.modelFilterInput.SetValue("")
		a.filteredModelList = a.modelList
		return a, textinput.Blink

	case "esc", "alt+m":
		a.showModelSelector = false
		return a, nil

	case "r":
		// Refresh model list (user-initiated, keep selector open)
		return a, a.dataModel.FetchAllModels(true)

	case "j", "down":
		list := a.getModelList()
		if a.selectedModelIdx < len(list)-1 {
			a.selectedModelIdx++
		}
		return a, nil

	case "k", "up":
		if a.selectedModelIdx > 0 {
			a.selectedModelIdx--
		}
		return a, nil

	case "enter":
		list := a.getModelList()
		if a.selectedModelIdx >= 0 && a.selectedModelIdx < len(list) {
			selected := list[a.selectedModelIdx]
			a.showModelSelector = false
			a.dataModel.SwitchModel(selected)
			a.updateViewportContent(true)
		}
		return a, nil
	}
	return a, nil
}

func (a AppView) handleClearConfirmUpdate(msg tea.KeyMsg) (AppView, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		a.confirmClear = false
		a.dataModel.ClearConversation()
		a.chunks = nil
		a.chunkIndex = 0
		a.currentResp.Reset()
		a.statusNotice = ""
		a.textarea.Reset()
		a.updateViewportContent(true)
		return a, nil

	case "n", "N", "esc":
		a.confirmClear = false
		return a, nil
	}
	return a, nil
}

func (a AppView) handleAPIKeyModalUpdate(msg tea.KeyMsg) (AppView, tea.Cmd) {
	// Block input while the key is being validated
	if a.apiKeyChecking {
		if msg.String() == "esc" {
			a.apiKeyChecking = false
			a.showAPIKeyModal = false
			a.apiKeyInput.Blur()
		}
		return a, nil
	}

	switch msg.String() {
	case "esc":
		a.showAPIKeyModal = false
		a.apiKeyError = ""
		a.apiKeyInput.SetValue("")
		a.apiKeyInput.Blur()
		return a, nil

	case "tab":
		// Cycle through the cloud providers that take a key
		order := []string{"gemini", "openai", "anthropic"}
		for i, id := range order {
			if id == a.apiKeyProvider {
				a.apiKeyProvider = order[(i+1)%len(order)]
				break
			}
		}
		a.apiKeyError = ""
		return a, nil

	case "enter":
		key := strings.TrimSpace(a.apiKeyInput.Value())
		if key == "" {
			a.apiKeyError = "Enter an API key first"
			return a, nil
		}

		a.apiKeyError = ""
		a.apiKeyChecking = true
		a.apiKeySpinner = spinner.New()
		a.apiKeySpinner.Spinner = spinner.Dot
		a.apiKeySpinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))

		baseURL := ""
		if entry := a.dataModel.Config.ProviderEntry(a.apiKeyProvider); entry != nil {
			baseURL = entry.BaseURL
		}

		return a, tea.Batch(
			provider.PingProvider(a.apiKeyProvider, baseURL, key),
			a.apiKeySpinner.Tick,
		)
	}

	var cmd tea.Cmd
	a.apiKeyInput, cmd = a.apiKeyInput.Update(msg)
	return a, cmd
}

// handlePingResult adopts a validated API key for the current run. The key
// is kept in memory only; persisting it is up to the user via the config
// file or environment.
func (a AppView) handlePingResult(msg pingProviderMsg) (AppView, tea.Cmd) {
	if !a.showAPIKeyModal {
		return a, nil
	}

	a.apiKeyChecking = false

	if !msg.Valid {
		a.apiKeyError = "Validation failed"
		if msg.Err != nil {
			a.apiKeyError = msg.Err.Error()
		}
		return a, nil
	}

	key := strings.TrimSpace(a.apiKeyInput.Value())
	baseURL := ""
	if entry := a.dataModel.Config.ProviderEntry(msg.ProviderID); entry != nil {
		baseURL = entry.BaseURL
	}

	model := ""
	if msg.ProviderID == a.dataModel.Config.DefaultProvider {
		model = a.dataModel.Config.Generation.Model
	}

	p, err := provider.NewProvider(provider.Config{
		Type:    provider.MapProviderIDToType(msg.ProviderID),
		BaseURL: baseURL,
		APIKey:  key,
		Model:   model,
	})
	if err != nil {
		a.apiKeyError = err.Error()
		return a, nil
	}

	a.dataModel.Providers[msg.ProviderID] = p
	if a.dataModel.Provider == nil || msg.ProviderID == a.dataModel.Config.DefaultProvider {
		a.dataModel.Provider = p
	}

	if config.DebugLog != nil {
		config.DebugLog.Printf("[UI] API key accepted for %s", msg.ProviderID)
	}

	a.showAPIKeyModal = false
	a.apiKeyError = ""
	a.apiKeyInput.SetValue("")
	a.apiKeyInput.Blur()
	a.statusNotice = ""
	a.modelListCached = false
	a.updateViewportContent(true)

	// Refresh the model list now that a new provider is available
	return a, a.dataModel.FetchAllModels(false)
}
