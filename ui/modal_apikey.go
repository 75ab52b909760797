package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"gemtui/config"
)

// renderAPIKeyModal renders the Alt+K modal for entering a provider API key
// at runtime. The input is password-masked; the key is validated with a
// live request before being adopted and is never written to disk.
func renderAPIKeyModal(providerID string, input textinput.Model, errMsg string, checking bool, sp spinner.Model, width, height int) string {
	modalWidth := 64
	if width < modalWidth+10 {
		modalWidth = width - 10
	}

	leftStyle := lipgloss.NewStyle().
		Width(modalWidth).
		Align(lipgloss.Left)

	var lines []string

	lines = append(lines, leftStyle.Render("Provider: "+SelectedStyle.Render(providerID)+DimStyle.Render("  (Tab to change)")))
	lines = append(lines, strings.Repeat(" ", modalWidth))

	if envs := config.APIKeyEnvVars(providerID); len(envs) > 0 {
		hint := "Also settable via " + strings.Join(envs, " or ")
		lines = append(lines, leftStyle.Render(DimStyle.Render(hint)))
		lines = append(lines, strings.Repeat(" ", modalWidth))
	}

	if checking {
		lines = append(lines, leftStyle.Render(sp.View()+" Validating key..."))
	} else {
		lines = append(lines, leftStyle.Render(input.View()))
	}

	if errMsg != "" {
		lines = append(lines, strings.Repeat(" ", modalWidth))
		errStyle := lipgloss.NewStyle().
			Width(modalWidth).
			Foreground(dangerColor).
			Align(lipgloss.Left)
		for _, line := range strings.Split(wordWrap(errMsg, modalWidth-2), "\n") {
			lines = append(lines, errStyle.Render(line))
		}
	}

	lines = append(lines, strings.Repeat(" ", modalWidth))
	lines = append(lines, leftStyle.Render(DimStyle.Render("The key is kept in memory for this run only.")))

	footer := FormatFooter("Enter", "Validate", "Tab", "Provider", "Esc", "Cancel")

	return RenderThreeSectionModal(
		"🔑 Set API Key",
		lines,
		footer,
		ModalTypeInfo,
		modalWidth,
		width,
		height,
	)
}
