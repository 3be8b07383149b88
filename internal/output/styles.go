package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette for the CLI. Use these named constants instead of inline
// lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: file paths, HDU names, keywords.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for success summaries.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for warnings and changed entries.
	ColorYellow = lipgloss.Color("220")

	// ColorRed is used for failures and removed entries.
	ColorRed = lipgloss.Color("196")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Styles maps domain concepts to visual presentation.
type Styles struct {
	// Noun styles identifiable nouns (file paths, HDU names, keywords).
	Noun lipgloss.Style

	// Success styles added entries and success summaries.
	Success lipgloss.Style

	// Warning styles changed entries.
	Warning lipgloss.Style

	// Error styles removed entries and failures.
	Error lipgloss.Style

	// Dim styles structural chrome (separators, counts).
	Dim lipgloss.Style

	// Summary styles completion and summary lines.
	Summary lipgloss.Style
}

// GetStyles returns the default style set.
func GetStyles() *Styles {
	return &Styles{
		Noun:    lipgloss.NewStyle().Foreground(ColorCyan),
		Success: lipgloss.NewStyle().Foreground(ColorGreen),
		Warning: lipgloss.NewStyle().Foreground(ColorYellow),
		Error:   lipgloss.NewStyle().Foreground(ColorRed),
		Dim:     lipgloss.NewStyle().Faint(true),
		Summary: lipgloss.NewStyle().Bold(true),
	}
}

// IsTTY reports whether stdout is attached to a terminal. Styled output and
// spinners are suppressed when it is not.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
