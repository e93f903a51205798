package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"aliashist/internal/adapters/tui/views"
	"aliashist/internal/config"
)

// App is the settings editor application model.
type App struct {
	settings *views.SettingsModel
}

// NewApp creates the TUI over the vault's persisted settings.
func NewApp(vaultPath string, settings config.Settings) *App {
	return &App{
		settings: views.NewSettingsModel(vaultPath, settings),
	}
}

// Init initializes the application.
func (a *App) Init() tea.Cmd {
	return a.settings.Init()
}

// Update handles messages for the application.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		a.settings.SetSize(size.Width, size.Height)
		return a, nil
	}

	var cmd tea.Cmd
	a.settings, cmd = a.settings.Update(msg)
	return a, cmd
}

// View renders the current view.
func (a *App) View() string {
	return a.settings.View()
}
