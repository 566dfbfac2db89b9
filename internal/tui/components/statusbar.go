package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pablasso/readplan/internal/tui/styles"
)

// StatusBar renders a bottom help bar showing contextual key hints.
type StatusBar struct{}

// NewStatusBar creates a new StatusBar instance.
func NewStatusBar() StatusBar {
	return StatusBar{}
}

// Render returns the status bar string for the given width and items.
// Items are joined with " • " separator and padded to fill the width.
func (s StatusBar) Render(width int, items []string) string {
	return s.RenderWithStatus(width, items, "")
}

// RenderWithStatus renders the key hints with an additional status segment
// aligned to the right edge of the bar.
func (s StatusBar) RenderWithStatus(width int, items []string, status string) string {
	content := strings.Join(items, " • ")

	if status != "" {
		gap := width - lipgloss.Width(content) - lipgloss.Width(status)
		if gap < 2 {
			gap = 2
		}
		content += strings.Repeat(" ", gap) + status
	}

	return styles.StatusBarStyle.Width(width).Render(content)
}
