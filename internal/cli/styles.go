package cli

import "github.com/charmbracelet/lipgloss"

// StyleSet describes the styles used for printed text. Having them in
// one place makes it easy to disable styling wholesale.
type StyleSet struct {
	// Normal text
	Normal lipgloss.Style
	// Title text
	Title lipgloss.Style
	// Description (or label) text
	Description lipgloss.Style
	// Error text
	Error lipgloss.Style
}

// PlainStyles returns the preset for the --no-ansi option (no styling).
func PlainStyles() StyleSet {
	return StyleSet{
		Normal:      lipgloss.NewStyle(),
		Title:       lipgloss.NewStyle(),
		Description: lipgloss.NewStyle(),
		Error:       lipgloss.NewStyle(),
	}
}

// FancyStyles returns the default styled preset.
func FancyStyles() StyleSet {
	return StyleSet{
		Normal:      lipgloss.NewStyle(),
		Title:       lipgloss.NewStyle().Bold(true),
		Description: lipgloss.NewStyle().Italic(true),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
}
