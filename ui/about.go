package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const asciiArt = ` ██████╗ ███████╗███╗   ███╗████████╗██╗   ██╗██╗
██╔════╝ ██╔════╝████╗ ████║╚══██╔══╝██║   ██║██║
██║  ███╗█████╗  ██╔████╔██║   ██║   ██║   ██║██║
██║   ██║██╔══╝  ██║╚██╔╝██║   ██║   ██║   ██║██║
╚██████╔╝███████╗██║ ╚═╝ ██║   ██║   ╚██████╔╝██║
 ╚═════╝ ╚══════╝╚═╝     ╚═╝   ╚═╝    ╚═════╝ ╚═╝`

var features = []string{
	"A terminal chat client for Gemini and friends",
	"",
	"  • Streaming responses with typewriter playback",
	"  • Bounded conversation memory",
	"  • Gemini, OpenAI, Anthropic and local Ollama",
	"  • Markdown rendering in the terminal",
}

func renderAboutModal(width, height int, version, license string) string {
	var sb strings.Builder

	asciiStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("10")).
		Bold(true).
		Align(lipgloss.Center)

	sb.WriteString(asciiStyle.Render(asciiArt))
	sb.WriteString("\n\n")

	featureStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("7"))

	for _, feature := range features {
		sb.WriteString(featureStyle.Render(feature))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("12")).
		Bold(true)

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("7"))

	sb.WriteString(labelStyle.Render("Version: "))
	sb.WriteString(valueStyle.Render(version))
	sb.WriteString("\n")
	sb.WriteString(labelStyle.Render("License: "))
	sb.WriteString(valueStyle.Render(license))
	sb.WriteString("\n\n")

	sb.WriteString(featureStyle.Render("Press Esc or Alt+A to close"))
	sb.WriteString("\n")

	content := sb.String()

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(1, 2)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, boxStyle.Render(content))
}
