package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gemtui/config"
	appmodel "gemtui/model"
	"gemtui/provider"
)

type AppView struct {
	// Reference to core data model
	dataModel *appmodel.Model

	// UI Components
	viewport viewport.Model
	textarea textarea.Model

	// Window state
	width  int
	height int
	ready  bool

	// Streaming UI state
	currentResp *strings.Builder // Pointer to avoid copy panic
	showHelp    bool
	showAbout   bool

	// Typewriter effect fields
	chunks     []string // Chunks to display with typewriter effect
	chunkIndex int      // Current chunk being displayed

	// Loading spinner (bubbles/spinner)
	loadingSpinner spinner.Model

	// Transient notice shown below the transcript (config errors,
	// generation failures, cancellations). Cleared on the next send.
	statusNotice string

	// Model selector
	showModelSelector bool
	modelList         []appmodel.ModelInfo
	selectedModelIdx  int
	modelListCached   bool
	modelFilterMode   bool
	modelFilterInput  textinput.Model
	filteredModelList []appmodel.ModelInfo

	// Clear-conversation confirmation
	confirmClear bool

	// API key modal (Alt+K)
	showAPIKeyModal bool
	apiKeyInput     textinput.Model
	apiKeyProvider  string
	apiKeyError     string
	apiKeyChecking  bool
	apiKeySpinner   spinner.Model
}

func NewAppView(cfg *config.Config, version, license string) AppView {
	ta := textarea.New()
	ta.Placeholder = "Type your message here..."
	ta.Focus()
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.SetHeight(3)
	ta.SetWidth(80)

	// Custom KeyMap: Alt+Enter for newline, Enter alone sends (handled separately)
	ta.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("alt+enter"))

	// Dynamic prompt: "> " for first line, "| " for subsequent lines
	ta.SetPromptFunc(2, func(lineIdx int) string {
		if lineIdx == 0 {
			return "> "
		}
		return "| "
	})

	vp := viewport.New(0, 0)

	modelFilterInput := textinput.New()
	modelFilterInput.Prompt = "Filter: "
	modelFilterInput.CharLimit = 64

	apiKeyInput := textinput.New()
	apiKeyInput.Prompt = "Key: "
	apiKeyInput.EchoMode = textinput.EchoPassword
	apiKeyInput.EchoCharacter = '•'
	apiKeyInput.CharLimit = 256

	// Initialize ALL providers via the provider package.
	// Provider package owns provider lifecycle - zero business logic in UI.
	allProviders := provider.InitializeProviders(cfg)

	// Active provider: configured default, or nil when its key is missing.
	// A nil provider blocks sending with a configuration notice instead of
	// crashing, so the user can still open the key modal or quit.
	activeProvider := allProviders[cfg.DefaultProvider]

	dataModel := appmodel.NewModel(cfg, activeProvider, allProviders, version, license)

	return AppView{
		dataModel:         dataModel,
		textarea:          ta,
		viewport:          vp,
		currentResp:       &strings.Builder{},
		ready:             false,
		modelFilterInput:  modelFilterInput,
		filteredModelList: []appmodel.ModelInfo{},
		apiKeyInput:       apiKeyInput,
		apiKeyProvider:    cfg.DefaultProvider,
	}
}

func (a AppView) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		a.dataModel.FetchAllModels(false), // Background fetch on startup, don't show selector
	)
}

func (a AppView) View() string {
	if !a.ready {
		return "Loading GEMTUI..."
	}

	// Modal rendering order (top to bottom layers):
	// 1. Help (always on top)
	// 2. API key modal
	// 3. Clear confirmation
	// 4. Model selector
	// 5. About

	if a.showHelp {
		return renderHelpModal(a.width, a.height)
	}

	if a.showAPIKeyModal {
		return renderAPIKeyModal(a.apiKeyProvider, a.apiKeyInput, a.apiKeyError, a.apiKeyChecking, a.apiKeySpinner, a.width, a.height)
	}

	if a.confirmClear {
		return RenderConfirmationModal(ConfirmationState{
			Active:  true,
			Title:   "Clear Conversation",
			Message: fmt.Sprintf("Discard all %d turns and start fresh?", a.dataModel.History.Len()),
		}, a.width, a.height)
	}

	if a.showModelSelector {
		multiProvider := len(a.dataModel.Providers) > 1
		currentModel := ""
		if a.dataModel.Provider != nil {
			currentModel = a.dataModel.Provider.GetModel()
		}
		return renderModelSelector(a.modelList, a.selectedModelIdx, currentModel, a.modelFilterMode, a.modelFilterInput, a.filteredModelList, multiProvider, a.width, a.height)
	}

	if a.showAbout {
		return renderAboutModal(a.width, a.height, a.dataModel.Version, a.dataModel.License)
	}

	// Title bar - "GEMTUI - model (buffer usage)"
	appText := AssistantStyle.Render("GEMTUI")
	modelName := "no provider"
	if a.dataModel.Provider != nil {
		modelName = a.dataModel.Provider.GetDisplayName()
	}
	modelText := TitleStyle.Render(fmt.Sprintf(" - %s", modelName))
	bufferText := DimStyle.Render(fmt.Sprintf(" | %d/%d turns", a.dataModel.History.Len(), a.dataModel.History.MaxTurns()))
	title := appText + modelText + bufferText

	// Separator with bottom margin for header (empty line forces spacing)
	separator := ""

	viewportView := a.viewport.View()
	inputView := a.textarea.View()

	// Status bar with bold user green descriptions
	descStyle := lipgloss.NewStyle().Foreground(successColor).Bold(true)
	statusBar := fmt.Sprintf("Alt+Q %s  Alt+M %s  Alt+N %s  Alt+K %s  Alt+Y %s  Alt+Enter %s  Enter %s  Alt+H %s",
		descStyle.Render("Quit"),
		descStyle.Render("Models"),
		descStyle.Render("New"),
		descStyle.Render("API Key"),
		descStyle.Render("Copy"),
		descStyle.Render("New Line"),
		descStyle.Render("Send"),
		descStyle.Render("Help"),
	)
	statusBar = StatusStyle.Render(statusBar)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		separator,
		viewportView,
		inputView,
		statusBar,
	)
}

func (a AppView) getModelList() []appmodel.ModelInfo {
	if a.modelFilterMode && len(a.filteredModelList) > 0 {
		return a.filteredModelList
	}
	return a.modelList
}

func (a *AppView) closeAllModals() {
	a.showHelp = false
	a.showAbout = false
	a.showModelSelector = false
	a.showAPIKeyModal = false
	a.confirmClear = false

	a.modelFilterMode = false
	a.apiKeyChecking = false
	a.apiKeyError = ""

	if a.modelFilterInput.Focused() {
		a.modelFilterInput.Blur()
	}
	if a.apiKeyInput.Focused() {
		a.apiKeyInput.Blur()
	}
}
