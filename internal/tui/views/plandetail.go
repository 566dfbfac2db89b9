package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/pablasso/readplan/internal/plan"
	"github.com/pablasso/readplan/internal/store"
	"github.com/pablasso/readplan/internal/tui/components"
	"github.com/pablasso/readplan/internal/tui/msgs"
	"github.com/pablasso/readplan/internal/tui/styles"
)

// PlanDetailModel is the model for reading through a single plan. Movement
// keys change the plan's current entry and persist the change immediately.
type PlanDetailModel struct {
	store   *store.Store
	journal *store.Journal
	plan    *plan.Plan

	entries     components.ListViewport
	currentLine int // line index of the current entry within the viewport
	errorMsg    string

	width  int
	height int
}

// NewPlanDetailModel creates a new PlanDetailModel for the given plan.
func NewPlanDetailModel(st *store.Store, journal *store.Journal, p *plan.Plan) PlanDetailModel {
	return PlanDetailModel{
		store:   st,
		journal: journal,
		plan:    p,
		entries: components.NewListViewport(0, 0),
	}
}

// Init implements tea.Model.
func (m PlanDetailModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PlanDetailModel) Update(msg tea.Msg) (PlanDetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			return m, func() tea.Msg { return msgs.GoToPlanListMsg{} }
		case "n", "right":
			m.move(1)
			return m, nil
		case "p", "left":
			m.move(-1)
			return m, nil
		case "c":
			m.toggleCyclic()
			return m, nil
		case "up", "k", "pgup", "ctrl+u", "down", "j", "pgdown", "ctrl+d", "home", "g", "end", "G":
			var cmd tea.Cmd
			m.entries, cmd = m.entries.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	// Pass through to the entry viewport for mouse scrolling
	var cmd tea.Cmd
	m.entries, cmd = m.entries.Update(msg)
	return m, cmd
}

// move advances or reverts the current entry and persists the change.
func (m *PlanDetailModel) move(delta int) {
	if m.plan == nil {
		return
	}

	from := formatDetailEntryNumber(m.plan)
	if delta >= 0 {
		m.plan.Next(delta)
	} else {
		m.plan.Previous(-delta)
	}
	to := formatDetailEntryNumber(m.plan)

	if from != to {
		m.save()
		m.journal.EntryChanged(m.plan.Name, from, to)
	}
	m.refreshEntries()
}

// toggleCyclic flips the plan's cyclic flag and persists the change.
func (m *PlanDetailModel) toggleCyclic() {
	if m.plan == nil {
		return
	}

	m.plan.SetCyclic(!m.plan.Cyclic)
	m.save()
	m.journal.CyclicChanged(m.plan.Name, m.plan.Cyclic)
	m.refreshEntries()
}

func (m *PlanDetailModel) save() {
	if err := m.store.Save(m.plan); err != nil {
		m.errorMsg = fmt.Sprintf("could not save changes: %v", err)
		return
	}
	m.errorMsg = ""
}

// SetSize updates the model dimensions and resizes the entry viewport.
func (m *PlanDetailModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	if m.plan == nil {
		return
	}

	// Height: total - title(2) - borders(2) - error line(1) - status bar(1)
	viewportHeight := height - 6
	if viewportHeight < 3 {
		viewportHeight = 3
	}

	viewportWidth := m.panelWidth() - 2 // panel padding
	if viewportWidth < 10 {
		viewportWidth = 10
	}

	m.entries.SetSize(viewportWidth, viewportHeight)
	m.refreshEntries()
}

func (m PlanDetailModel) panelWidth() int {
	return m.width - 6
}

// refreshEntries rebuilds the viewport lines and scrolls the current entry
// into view.
func (m *PlanDetailModel) refreshEntries() {
	if m.plan == nil {
		return
	}

	lines, currentLine := renderEntryLines(m.plan, m.entries.ContentWidth())
	m.currentLine = currentLine
	m.entries.SetLines(lines)
	m.entries.EnsureVisible(currentLine, true)
}

// renderEntryLines renders the plan's entries as viewport lines, returning
// the lines and the index of the line holding the current entry marker.
func renderEntryLines(p *plan.Plan, width int) (lines []string, currentLine int) {
	for i, e := range p.Entries {
		if i > 0 {
			lines = append(lines, "")
		}

		isCurrent := i == p.CurrentEntry && !p.IsEnded()
		if isCurrent {
			currentLine = len(lines)
		}

		lines = append(lines, formatEntryTitle(i, e.Title, entryIndicator(i, p), isCurrent, width))
		lines = append(lines, formatEntryDescription(e.Description, width)...)
	}

	if p.IsEnded() {
		lines = append(lines, "")
		lines = append(lines, styles.SubtleStyle.Render("Plan has ended. Press p to revert to an earlier entry."))
		currentLine = len(lines) - 1
	}

	return lines, currentLine
}

// entryIndicator returns the status marker for entry i.
func entryIndicator(i int, p *plan.Plan) string {
	switch {
	case i < p.CurrentEntry:
		return styles.DoneStyle.Render("✓")
	case i == p.CurrentEntry && !p.IsEnded():
		return styles.SelectedStyle.Render("▶")
	default:
		return styles.SubtleStyle.Render("○")
	}
}

func formatEntryTitle(i int, title, indicator string, isCurrent bool, width int) string {
	text := fmt.Sprintf("%d. %s", i+1, title)
	avail := width - 2 // indicator and space
	if avail > 3 && lipgloss.Width(text) > avail {
		text = ansi.Truncate(text, avail-3, "...")
	}
	if isCurrent {
		text = styles.SelectedStyle.Render(text)
	}
	return indicator + " " + text
}

// formatEntryDescription wraps a description under its title, indented and
// subtle. Empty descriptions produce no lines.
func formatEntryDescription(desc string, width int) []string {
	if desc == "" {
		return nil
	}

	avail := width - 5
	if avail < 10 {
		avail = 10
	}

	wrapped := ansi.Wrap(desc, avail, "-")
	var lines []string
	for _, l := range strings.Split(wrapped, "\n") {
		lines = append(lines, "     "+styles.SubtleStyle.Render(l))
	}
	return lines
}

// View implements tea.Model.
func (m PlanDetailModel) View() string {
	if m.width == 0 || m.height == 0 || m.plan == nil {
		return ""
	}

	var b strings.Builder

	// Title
	mode := "acyclic"
	if m.plan.Cyclic {
		mode = "cyclic"
	}
	title := styles.TitleStyle.Render(m.plan.Name) + styles.SubtleStyle.Render(" · "+mode)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	b.WriteString("\n")

	// Entry panel
	panelStyle := styles.BoxStyle.
		Width(m.panelWidth()).
		Padding(0, 1)
	panel := panelStyle.Render(m.entries.View())
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, panel))
	b.WriteString("\n")

	// Error line, blank when there is nothing to report
	if m.errorMsg != "" {
		errorLine := styles.ErrorStyle.Render(m.errorMsg)
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, errorLine))
	}
	b.WriteString("\n")

	// Status bar with the reading position on the right
	statusItems := []string{"n Next", "p Previous", "c Cyclic", "↑↓ Scroll", "Esc Back", "q Quit"}
	b.WriteString(components.NewStatusBar().RenderWithStatus(m.width, statusItems, m.position()))

	return b.String()
}

// position returns the reading position for the status bar.
func (m PlanDetailModel) position() string {
	if m.plan.IsEnded() {
		return "end of plan"
	}
	return fmt.Sprintf("entry %d of %d", m.plan.CurrentEntryNumber(), m.plan.Len())
}

// Plan returns the plan being displayed.
func (m PlanDetailModel) Plan() *plan.Plan {
	return m.plan
}

// ErrorMsg returns the current error message.
func (m PlanDetailModel) ErrorMsg() string {
	return m.errorMsg
}

// CurrentLine returns the viewport line index of the current entry.
func (m PlanDetailModel) CurrentLine() int {
	return m.currentLine
}

func formatDetailEntryNumber(p *plan.Plan) string {
	if p.IsEnded() {
		return "end"
	}
	return fmt.Sprintf("%d", p.CurrentEntryNumber())
}
