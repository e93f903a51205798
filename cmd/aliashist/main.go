package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"aliashist/internal/adapters/filesystem"
	"aliashist/internal/adapters/tui"
	"aliashist/internal/config"
)

func main() {
	vaultPath := filesystem.ExpandHome(config.VaultPath())

	settings, err := config.Load(vaultPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	app := tui.NewApp(vaultPath, settings)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
