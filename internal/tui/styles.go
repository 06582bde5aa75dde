package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the REPL.
var Colors = struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Error   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Text    lipgloss.Color
}{
	Primary: lipgloss.Color("#6C5CE7"), // Purple
	Muted:   lipgloss.Color("#636E72"), // Gray
	Error:   lipgloss.Color("#D63031"), // Red
	Success: lipgloss.Color("#00B894"), // Green
	Warning: lipgloss.Color("#FDCB6E"), // Yellow
	Text:    lipgloss.Color("#DFE6E9"), // Light gray
}

// Styles contains the lipgloss styles for the REPL.
type Styles struct {
	Header   lipgloss.Style
	Prompt   lipgloss.Style
	Input    lipgloss.Style
	Result   lipgloss.Style
	Output   lipgloss.Style
	Error    lipgloss.Style
	ExitCode lipgloss.Style
	Hint     lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true).
			MarginBottom(1),
		Prompt: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),
		Input: lipgloss.NewStyle().
			Foreground(Colors.Text),
		Result: lipgloss.NewStyle().
			Foreground(Colors.Success).
			PaddingLeft(2),
		Output: lipgloss.NewStyle().
			Foreground(Colors.Text).
			PaddingLeft(2),
		Error: lipgloss.NewStyle().
			Foreground(Colors.Error).
			PaddingLeft(2),
		ExitCode: lipgloss.NewStyle().
			Foreground(Colors.Warning).
			PaddingLeft(2),
		Hint: lipgloss.NewStyle().
			Foreground(Colors.Muted),
	}
}
