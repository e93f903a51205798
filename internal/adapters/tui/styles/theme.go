package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Foreground(Muted)

	InputFocused = lipgloss.NewStyle().
			Foreground(White)

	// Toggle styles
	ToggleOn = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	ToggleOff = lipgloss.NewStyle().
			Foreground(Muted)

	// Status / help
	StatusOK = lipgloss.NewStyle().
			Foreground(Secondary)

	StatusError = lipgloss.NewStyle().
			Foreground(Error)

	HelpKey = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)
)
