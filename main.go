package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"gemtui/config"
	"gemtui/ui"
)

const (
	Version = "v0.1.0"
	License = "Apache-2.0"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		errorModal := ui.NewErrorModal("Configuration Error",
			fmt.Sprintf("Failed to load config: %v\n\n"+
				"Fix or remove the config file and relaunch gemtui.", err))
		p := tea.NewProgram(
			errorModal,
			tea.WithAltScreen(),
		)

		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	// Initialize debug logging after config is loaded
	config.InitDebugLog()

	p := tea.NewProgram(
		ui.NewAppView(cfg, Version, License),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running gemtui: %v\n", err)
		os.Exit(1)
	}
}
