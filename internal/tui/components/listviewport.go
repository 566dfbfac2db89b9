package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ListViewport wraps bubbles/viewport.Model for a fixed set of lines, with
// key and mouse scrolling and a 1-column scrollbar rendered on the right.
type ListViewport struct {
	viewport viewport.Model
	lines    []string
	width    int // total width including scrollbar
	height   int
}

// NewListViewport creates a new ListViewport with the given dimensions.
// The width includes 1 column for the scrollbar; the content area is width-1.
func NewListViewport(width, height int) ListViewport {
	contentWidth := width - 1
	if contentWidth < 0 {
		contentWidth = 0
	}

	vp := viewport.New(contentWidth, height)
	vp.SetContent("")

	return ListViewport{
		viewport: vp,
		width:    width,
		height:   height,
	}
}

// SetSize updates the viewport dimensions. Width includes the scrollbar column.
func (l *ListViewport) SetSize(width, height int) {
	if l.width == width && l.height == height {
		return
	}

	l.width = width
	l.height = height

	contentWidth := width - 1
	if contentWidth < 0 {
		contentWidth = 0
	}

	l.viewport.Width = contentWidth
	l.viewport.Height = height

	// Re-set content to let viewport recalculate internal state.
	l.viewport.SetContent(strings.Join(l.lines, "\n"))
	// Clamp y-offset after resize.
	l.viewport.SetYOffset(l.viewport.YOffset)
}

// SetLines replaces the stored lines, preserving the current scroll offset
// where possible.
func (l *ListViewport) SetLines(lines []string) {
	l.lines = make([]string, len(lines))
	copy(l.lines, lines)

	l.viewport.SetContent(strings.Join(l.lines, "\n"))
	l.viewport.SetYOffset(l.viewport.YOffset)
}

// Update handles viewport key and mouse events.
func (l *ListViewport) Update(msg tea.Msg) (ListViewport, tea.Cmd) {
	var cmd tea.Cmd
	l.viewport, cmd = l.viewport.Update(msg)
	return *l, cmd
}

// View renders the viewport content with a 1-column scrollbar on the right.
func (l ListViewport) View() string {
	content := l.viewport.View()
	scrollbar := renderScrollbar(l.height, len(l.lines), l.viewport.YOffset)

	contentLines := strings.Split(content, "\n")
	scrollbarLines := strings.Split(scrollbar, "\n")

	var b strings.Builder
	for i := 0; i < l.height; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}

		cl := ""
		if i < len(contentLines) {
			cl = contentLines[i]
		}
		sl := ""
		if i < len(scrollbarLines) {
			sl = scrollbarLines[i]
		}

		b.WriteString(cl)
		// Pad content to fill the content width so the scrollbar aligns.
		// lipgloss.Width ignores ANSI sequences in styled lines.
		contentWidth := l.width - 1
		if contentWidth < 0 {
			contentWidth = 0
		}
		padding := contentWidth - lipgloss.Width(cl)
		if padding > 0 {
			b.WriteString(strings.Repeat(" ", padding))
		}
		b.WriteString(sl)
	}

	return b.String()
}

// ContentWidth returns the width available for content (total width minus scrollbar).
func (l ListViewport) ContentWidth() int {
	w := l.width - 1
	if w < 0 {
		return 0
	}
	return w
}

// LineCount returns the number of stored lines.
func (l ListViewport) LineCount() int {
	return len(l.lines)
}

// YOffset returns the current scroll offset.
func (l ListViewport) YOffset() int {
	return l.viewport.YOffset
}

// EnsureVisible scrolls the viewport so that lineIndex is visible. If center
// is true, the line is centered in the viewport; otherwise the viewport
// scrolls the minimum amount needed.
func (l *ListViewport) EnsureVisible(lineIndex int, center bool) {
	if lineIndex < 0 || lineIndex >= len(l.lines) {
		return
	}

	top := l.viewport.YOffset
	bottom := top + l.height - 1

	if center {
		target := lineIndex - l.height/2
		if target < 0 {
			target = 0
		}
		l.viewport.SetYOffset(target)
		return
	}

	// Minimum scroll: only move if the line is outside the visible range.
	if lineIndex < top {
		l.viewport.SetYOffset(lineIndex)
	} else if lineIndex > bottom {
		l.viewport.SetYOffset(lineIndex - l.height + 1)
	}
}

// renderScrollbar renders a 1-column vertical scrollbar. While the content
// fits in the viewport it renders a blank gutter to keep layout width stable;
// once scrollable, it renders a track with a proportionally positioned thumb.
func renderScrollbar(viewHeight, contentHeight, yOffset int) string {
	if viewHeight <= 0 {
		return ""
	}

	const (
		track = "│"
		thumb = "█"
	)

	if contentHeight <= viewHeight {
		return strings.Repeat(" \n", viewHeight-1) + " "
	}

	// Thumb size proportional to visible fraction, minimum 1.
	thumbSize := viewHeight * viewHeight / contentHeight
	if thumbSize < 1 {
		thumbSize = 1
	}

	maxYOffset := contentHeight - viewHeight
	thumbMaxTop := viewHeight - thumbSize

	thumbTop := 0
	if maxYOffset > 0 {
		thumbTop = yOffset * thumbMaxTop / maxYOffset
	}
	if thumbTop > thumbMaxTop {
		thumbTop = thumbMaxTop
	}
	if thumbTop < 0 {
		thumbTop = 0
	}

	var b strings.Builder
	for i := 0; i < viewHeight; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		if i >= thumbTop && i < thumbTop+thumbSize {
			b.WriteString(thumb)
		} else {
			b.WriteString(track)
		}
	}

	return b.String()
}
