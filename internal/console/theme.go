package console

import "charm.land/lipgloss/v2"

// Color palette — muted, terminal-friendly.
var (
	colPrimary = lipgloss.Color("#8B5CF6") // Purple
	colGold    = lipgloss.Color("#EAB308") // Amber
	colPlat    = lipgloss.Color("#A78BFA") // Light purple
	colSuccess = lipgloss.Color("#22C55E") // Green
	colError   = lipgloss.Color("#F43F5E") // Rose
	colText    = lipgloss.Color("#F8FAFC") // White
	colDim     = lipgloss.Color("#94A3B8") // Slate
	colBorder  = lipgloss.Color("#334155") // Slate
)

var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colPrimary)

	styleHeader = lipgloss.NewStyle().
			Foreground(colDim).
			Bold(true)

	styleRow = lipgloss.NewStyle().
			Foreground(colText)

	styleOK = lipgloss.NewStyle().
		Foreground(colSuccess)

	styleErr = lipgloss.NewStyle().
			Foreground(colError)

	styleHint = lipgloss.NewStyle().
			Foreground(colDim).
			Italic(true)

	styleInput = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colBorder).
			Padding(0, 1)
)
