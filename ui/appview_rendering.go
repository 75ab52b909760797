package ui

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	markdown "github.com/MichaelMure/go-term-markdown"
	tea "github.com/charmbracelet/bubbletea"
	gomarkdown "github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/parser"

	"gemtui/config"
)

// Pre-compiled regex patterns for better performance
var (
	inlineCodeRegex = regexp.MustCompile(`(?s)\x1b\[44;3m(.*?)\x1b\[0m`)
	mdLinkRegex     = regexp.MustCompile(`\[([^\]]+)\]\((https?://[^\)]+)\)`)
	urlRegex        = regexp.MustCompile(`(https?://[^\s]+)`)
)

func (a *AppView) updateViewportContent(gotoBottom bool) {
	turns := a.dataModel.History.Snapshot()

	if len(turns) == 0 && a.statusNotice == "" {
		a.viewport.SetContent("No messages yet. Start chatting!")
		return
	}

	var content strings.Builder

	for _, msg := range turns {
		timestamp := DimStyle.Render(msg.Timestamp.Format("[15:04]"))

		if msg.Role == "user" {
			content.WriteString(formatUserMessage(timestamp, UserStyle.Render("You"), msg.Rendered))
			continue
		}

		role := AssistantStyle.Render("Assistant")
		content.WriteString(fmt.Sprintf("%s %s\n%s\n\n", timestamp, role, msg.Rendered))
	}

	// Transient notice (config error, generation failure, cancellation)
	if a.statusNotice != "" {
		timestamp := DimStyle.Render(time.Now().Format("[15:04]"))
		content.WriteString(fmt.Sprintf("%s %s\n%s\n\n", timestamp, DimStyle.Render("System"), a.statusNotice))
	}

	a.viewport.SetContent(content.String())
	if gotoBottom {
		a.viewport.GotoBottom()
	}
}

// updateStreamingMessage redraws the transcript with the in-progress
// response at the bottom: spinner while waiting for the first chunk, then
// text with a block cursor.
func (a *AppView) updateStreamingMessage() {
	var content strings.Builder

	for _, msg := range a.dataModel.History.Snapshot() {
		timestamp := DimStyle.Render(msg.Timestamp.Format("[15:04]"))

		if msg.Role == "user" {
			content.WriteString(formatUserMessage(timestamp, UserStyle.Render("You"), msg.Rendered))
			continue
		}

		role := AssistantStyle.Render("Assistant")
		content.WriteString(fmt.Sprintf("%s %s\n%s\n\n", timestamp, role, msg.Rendered))
	}

	timestamp := DimStyle.Render(time.Now().Format("[15:04]"))
	role := AssistantStyle.Render("Assistant")

	streamContent := a.loadingSpinner.View()
	if a.currentResp.Len() > 0 {
		streamContent = a.currentResp.String() + "▋"
	}

	content.WriteString(fmt.Sprintf("%s %s\n%s\n\n", timestamp, role, streamContent))

	a.viewport.SetContent(content.String())
	a.viewport.GotoBottom()
}

func formatUserMessage(timestamp, role, content string) string {
	greenBold := "\x1b[32;1m"
	reset := "\x1b[0m"
	bar := greenBold + "┃" + reset

	lines := strings.Split(content, "\n")

	var result strings.Builder
	result.WriteString(fmt.Sprintf("%s %s %s\n", bar, timestamp, role))

	for _, line := range lines {
		result.WriteString(fmt.Sprintf("%s %s\n", bar, line))
	}

	result.WriteString("\n")

	return result.String()
}

func postProcessMarkdown(rendered string) string {
	// 1. Fix inline code: Blue background → Red text (glamour style)
	rendered = fixInlineCode(rendered)

	// 2. Color plain URLs red (autolink disabled keeps URLs plain)
	rendered = fixMarkdownLinks(rendered)

	return rendered
}

func preprocessLinks(content string) string {
	// Strip markdown link syntax [text](url) → just url so all links
	// appear as plain URLs that will be colored red
	return mdLinkRegex.ReplaceAllString(content, "$2")
}

func fixInlineCode(s string) string {
	// Replace: \x1b[44;3m...text...\x1b[0m (Blue BG + Italic)
	// With:    \x1b[31m...text...\x1b[0m (Red text)
	return inlineCodeRegex.ReplaceAllString(s, "\x1b[31m$1\x1b[0m")
}

func fixMarkdownLinks(s string) string {
	redColor := "\x1b[31m"
	reset := "\x1b[0m"

	lines := strings.Split(s, "\n")

	for i, line := range lines {
		// Skip code blocks (they have ┃ prefix from the renderer)
		if !strings.Contains(line, "┃") {
			lines[i] = urlRegex.ReplaceAllString(line, redColor+"$1"+reset)
		}
	}

	return strings.Join(lines, "\n")
}

// renderMarkdownAsync renders a turn's markdown off the update loop. The
// result carries the session ID and the turn's absolute number so that
// renders outliving a clear or an eviction are dropped instead of landing
// on the wrong turn.
func (a AppView) renderMarkdownAsync(absIndex int, content string) tea.Cmd {
	width := a.width
	sessionID := a.dataModel.Session.ID

	return func() tea.Msg {
		if config.DebugLog != nil {
			config.DebugLog.Printf("Starting async markdown render for turn %d - %d chars", absIndex, len(content))
		}
		startTime := time.Now()

		content = preprocessLinks(content)

		// Render with go-term-markdown. Autolink is disabled so URLs stay
		// plain text and terminal emulators handle clickability.
		defaultExt := markdown.Extensions()
		customExt := defaultExt &^ parser.Autolink
		p := parser.NewWithExtensions(customExt)
		r := markdown.NewRenderer(width-4, 0)
		doc := p.Parse([]byte(content))
		rendered := gomarkdown.Render(doc, r)

		processed := postProcessMarkdown(string(rendered))

		if config.DebugLog != nil {
			config.DebugLog.Printf("Markdown rendered and post-processed in %v", time.Since(startTime))
		}

		return markdownRenderedMsg{
			SessionID:    sessionID,
			MessageIndex: absIndex,
			Rendered:     processed,
		}
	}
}
