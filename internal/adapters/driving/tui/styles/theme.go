// Package styles provides the colour theme and lipgloss styles of the
// review TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette of the review TUI.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Secondary highlights section headers.
	Secondary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for labels and hints.
	Muted lipgloss.Color

	// Success marks values that were found.
	Success lipgloss.Color

	// Warning marks parser warnings.
	Warning lipgloss.Color

	// Missing marks values the parser could not locate.
	Missing lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color

	// Bar is the background of the status bar.
	Bar lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#40A02B"), // Green
		Secondary:  lipgloss.Color("#DF8E1D"), // Ochre
		Foreground: lipgloss.Color("#CDD6F4"), // Light gray
		Muted:      lipgloss.Color("#6C7086"), // Medium gray
		Success:    lipgloss.Color("#A6E3A1"), // Pale green
		Warning:    lipgloss.Color("#F9E2AF"), // Yellow
		Missing:    lipgloss.Color("#F38BA8"), // Red
		Border:     lipgloss.Color("#45475A"), // Border gray
		Bar:        lipgloss.Color("#181825"),
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	// Title is the review header.
	Title lipgloss.Style

	// Section heads a block such as the measurements table.
	Section lipgloss.Style

	// Label renders field labels.
	Label lipgloss.Style

	// Value renders located values.
	Value lipgloss.Style

	// Missing renders the placeholder of values that were not found.
	Missing lipgloss.Style

	// Muted renders secondary text.
	Muted lipgloss.Style

	// Warning renders parser warnings.
	Warning lipgloss.Style

	// InputField frames the field name editor.
	InputField lipgloss.Style

	// StatusBar renders the bottom bar.
	StatusBar lipgloss.Style

	// Border frames the review body.
	Border lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary).
			MarginTop(1),

		Label: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Width(16),

		Value: lipgloss.NewStyle().
			Foreground(theme.Success),

		Missing: lipgloss.NewStyle().
			Italic(true).
			Foreground(theme.Missing),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),

		InputField: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.Bar).
			Padding(0, 1),

		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
