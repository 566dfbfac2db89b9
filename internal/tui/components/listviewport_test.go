package components

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func numberedLines(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	return lines
}

func TestNewListViewport(t *testing.T) {
	lv := NewListViewport(40, 10)

	if lv.ContentWidth() != 39 {
		t.Errorf("expected content width 39 (one column for the scrollbar), got %d", lv.ContentWidth())
	}
	if lv.LineCount() != 0 {
		t.Errorf("expected 0 lines, got %d", lv.LineCount())
	}
}

func TestListViewport_SetLines(t *testing.T) {
	lv := NewListViewport(40, 10)
	lv.SetLines([]string{"first", "second"})

	if lv.LineCount() != 2 {
		t.Errorf("expected 2 lines, got %d", lv.LineCount())
	}

	view := lv.View()
	if !strings.Contains(view, "first") {
		t.Errorf("expected view to contain 'first', got: %s", view)
	}
	if !strings.Contains(view, "second") {
		t.Errorf("expected view to contain 'second', got: %s", view)
	}
}

func TestListViewport_View_BlankGutterWhenContentFits(t *testing.T) {
	lv := NewListViewport(20, 5)
	lv.SetLines(numberedLines(3))

	view := lv.View()
	if strings.Contains(view, "│") || strings.Contains(view, "█") {
		t.Errorf("expected blank gutter when content fits, got: %s", view)
	}
}

func TestListViewport_View_ScrollbarWhenContentOverflows(t *testing.T) {
	lv := NewListViewport(20, 5)
	lv.SetLines(numberedLines(20))

	view := lv.View()
	if !strings.Contains(view, "│") {
		t.Errorf("expected scrollbar track in view, got: %s", view)
	}
	if !strings.Contains(view, "█") {
		t.Errorf("expected scrollbar thumb in view, got: %s", view)
	}
}

func TestListViewport_View_HasExpectedHeight(t *testing.T) {
	lv := NewListViewport(20, 5)
	lv.SetLines(numberedLines(2))

	view := lv.View()
	if got := len(strings.Split(view, "\n")); got != 5 {
		t.Errorf("expected 5 rendered rows, got %d", got)
	}
}

func TestListViewport_EnsureVisible_Center(t *testing.T) {
	lv := NewListViewport(20, 10)
	lv.SetLines(numberedLines(30))

	lv.EnsureVisible(20, true)

	if lv.YOffset() != 15 {
		t.Errorf("expected y-offset 15 after centering line 20, got %d", lv.YOffset())
	}
}

func TestListViewport_EnsureVisible_MinimumScroll(t *testing.T) {
	lv := NewListViewport(20, 10)
	lv.SetLines(numberedLines(30))

	// Line below the visible range scrolls down just enough.
	lv.EnsureVisible(12, false)
	if lv.YOffset() != 3 {
		t.Errorf("expected y-offset 3 after revealing line 12, got %d", lv.YOffset())
	}

	// Line already visible does not move the viewport.
	lv.EnsureVisible(5, false)
	if lv.YOffset() != 3 {
		t.Errorf("expected y-offset to stay at 3, got %d", lv.YOffset())
	}

	// Line above the visible range scrolls up to it.
	lv.EnsureVisible(1, false)
	if lv.YOffset() != 1 {
		t.Errorf("expected y-offset 1 after revealing line 1, got %d", lv.YOffset())
	}
}

func TestListViewport_EnsureVisible_OutOfRange(t *testing.T) {
	lv := NewListViewport(20, 10)
	lv.SetLines(numberedLines(5))

	lv.EnsureVisible(-1, true)
	lv.EnsureVisible(99, true)

	if lv.YOffset() != 0 {
		t.Errorf("expected y-offset to stay at 0 for out-of-range lines, got %d", lv.YOffset())
	}
}

func TestListViewport_Update_ScrollKeys(t *testing.T) {
	lv := NewListViewport(20, 5)
	lv.SetLines(numberedLines(20))

	lv, _ = lv.Update(tea.KeyMsg{Type: tea.KeyDown})
	if lv.YOffset() != 1 {
		t.Errorf("expected y-offset 1 after down key, got %d", lv.YOffset())
	}

	lv, _ = lv.Update(tea.KeyMsg{Type: tea.KeyUp})
	if lv.YOffset() != 0 {
		t.Errorf("expected y-offset 0 after up key, got %d", lv.YOffset())
	}
}

func TestListViewport_SetSize_ClampsOffset(t *testing.T) {
	lv := NewListViewport(20, 5)
	lv.SetLines(numberedLines(20))
	lv.EnsureVisible(19, false)

	// Growing the viewport must pull the offset back into range.
	lv.SetSize(20, 18)

	maxOffset := lv.LineCount() - 18
	if lv.YOffset() > maxOffset {
		t.Errorf("expected y-offset <= %d after resize, got %d", maxOffset, lv.YOffset())
	}
}
