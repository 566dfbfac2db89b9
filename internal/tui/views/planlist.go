package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pablasso/readplan/internal/store"
	"github.com/pablasso/readplan/internal/tui/components"
	"github.com/pablasso/readplan/internal/tui/msgs"
	"github.com/pablasso/readplan/internal/tui/styles"
)

const progressBarWidth = 10

// PlanSummary contains summary information about a plan for display.
type PlanSummary struct {
	Name    string
	Entries int
	Read    int // entries before the current one
	Cyclic  bool
	Ended   bool
}

// PlanListModel is the model for the plan selection view.
type PlanListModel struct {
	store    *store.Store
	plans    []PlanSummary
	failed   int
	cursor   int
	errorMsg string
	width    int
	height   int
}

// NewPlanListModel creates a new PlanListModel and loads plans from the store.
func NewPlanListModel(st *store.Store) PlanListModel {
	m := PlanListModel{store: st}
	m.plans, m.failed = loadSummaries(st)
	return m
}

// loadSummaries reads all plans from the store. Plans that cannot be read are
// reported as a count rather than aborting the whole view.
func loadSummaries(st *store.Store) ([]PlanSummary, int) {
	plans, failed, err := st.List()
	if err != nil {
		return nil, 0
	}

	summaries := make([]PlanSummary, 0, len(plans))
	for _, p := range plans {
		summaries = append(summaries, PlanSummary{
			Name:    p.Name,
			Entries: p.Len(),
			Read:    p.CurrentEntry,
			Cyclic:  p.Cyclic,
			Ended:   p.IsEnded(),
		})
	}
	return summaries, failed
}

// Init implements tea.Model.
func (m PlanListModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PlanListModel) Update(msg tea.Msg) (PlanListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Handle empty state
		if len(m.plans) == 0 {
			switch msg.String() {
			case "q", "esc", "ctrl+c":
				return m, tea.Quit
			}
			return m, nil
		}

		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.errorMsg = ""
			}
		case "down", "j":
			if m.cursor < len(m.plans)-1 {
				m.cursor++
				m.errorMsg = ""
			}
		case "enter":
			if m.cursor < len(m.plans) {
				selected := m.plans[m.cursor]
				return m, func() tea.Msg { return msgs.GoToPlanDetailMsg{Name: selected.Name} }
			}
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m PlanListModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if len(m.plans) == 0 {
		return m.renderEmptyView()
	}

	return m.renderNormalView()
}

// renderNormalView renders the view when plans exist.
func (m PlanListModel) renderNormalView() string {
	var b strings.Builder

	// Title
	title := styles.TitleStyle.Render("Reading Plans")
	titleLine := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title)

	// Plan list
	var planLines []string
	for i, p := range m.plans {
		planLines = append(planLines, m.formatPlanLine(i, p))
	}
	planList := strings.Join(planLines, "\n")

	// Notices shown below the list
	var notices []string
	if m.failed == 1 {
		notices = append(notices, styles.ErrorStyle.Render("1 plan could not be read"))
	} else if m.failed > 1 {
		notices = append(notices, styles.ErrorStyle.Render(fmt.Sprintf("%d plans could not be read", m.failed)))
	}
	if m.errorMsg != "" {
		notices = append(notices, styles.ErrorStyle.Render(m.errorMsg))
	}

	// Calculate vertical centering
	statusBarHeight := 1
	contentHeight := 2 + len(m.plans) // title + spacing + plans
	if len(notices) > 0 {
		contentHeight += 1 + len(notices)
	}
	availableHeight := m.height - statusBarHeight

	topPadding := (availableHeight - contentHeight) / 3 // bias towards top
	if topPadding < 0 {
		topPadding = 0
	}

	// Build content
	b.WriteString(strings.Repeat("\n", topPadding))
	b.WriteString(titleLine)
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, planList))
	if len(notices) > 0 {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, strings.Join(notices, "\n")))
	}

	// Calculate remaining lines for bottom padding
	currentLines := topPadding + contentHeight
	bottomPadding := availableHeight - currentLines
	if bottomPadding < 0 {
		bottomPadding = 0
	}
	b.WriteString(strings.Repeat("\n", bottomPadding))

	// Status bar
	statusItems := []string{"↑↓ Navigate", "Enter Open", "q Quit"}
	b.WriteString(components.NewStatusBar().Render(m.width, statusItems))

	return b.String()
}

// formatPlanLine formats a single plan line for display.
func (m PlanListModel) formatPlanLine(index int, p PlanSummary) string {
	// Selection indicator
	indicator := "○"
	if index == m.cursor {
		indicator = "●"
	}

	bar := components.NewProgress(p.Read, p.Entries, progressBarWidth).View()

	position := fmt.Sprintf("entry %d of %d", p.Read+1, p.Entries)
	if p.Ended {
		position = "end of plan"
	}
	if p.Cyclic {
		position += " (cyclic)"
	}

	// Format: ● name       ■■■□□ 3/8   position
	line := fmt.Sprintf("%s %-24s %s   %s", indicator, truncateName(p.Name, 24), bar, position)

	// Apply styling based on selection and state
	if index == m.cursor {
		line = styles.SelectedStyle.Render(line)
	} else if p.Ended {
		line = styles.SubtleStyle.Render(line)
	}

	return line
}

func truncateName(name string, maxLen int) string {
	if len(name) <= maxLen {
		return name
	}
	if maxLen <= 3 {
		return name[:maxLen]
	}
	return name[:maxLen-3] + "..."
}

// renderEmptyView renders the view when no plans exist.
func (m PlanListModel) renderEmptyView() string {
	var b strings.Builder

	// Title
	title := styles.TitleStyle.Render("Reading Plans")
	titleLine := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title)

	// Message
	msg1 := "No plans found."
	msg2 := "Add one with 'readplan add <file>', then come back."
	msg1Line := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, msg1)
	msg2Line := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, styles.SubtleStyle.Render(msg2))

	// Calculate vertical centering
	statusBarHeight := 1
	contentHeight := 5 // title + spacing + msg1 + spacing + msg2
	availableHeight := m.height - statusBarHeight

	topPadding := (availableHeight - contentHeight) / 3
	if topPadding < 0 {
		topPadding = 0
	}

	// Build content
	b.WriteString(strings.Repeat("\n", topPadding))
	b.WriteString(titleLine)
	b.WriteString("\n\n")
	b.WriteString(msg1Line)
	b.WriteString("\n\n")
	b.WriteString(msg2Line)

	// Calculate remaining lines for bottom padding
	currentLines := topPadding + contentHeight
	bottomPadding := availableHeight - currentLines
	if bottomPadding < 0 {
		bottomPadding = 0
	}
	b.WriteString(strings.Repeat("\n", bottomPadding))

	// Status bar
	statusItems := []string{"q Quit"}
	b.WriteString(components.NewStatusBar().Render(m.width, statusItems))

	return b.String()
}

// SetSize updates the model dimensions.
func (m *PlanListModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetError sets an error message to display below the list.
func (m *PlanListModel) SetError(msg string) {
	m.errorMsg = msg
}

// Plans returns the list of plan summaries.
func (m PlanListModel) Plans() []PlanSummary {
	return m.plans
}

// Cursor returns the current cursor position.
func (m PlanListModel) Cursor() int {
	return m.cursor
}

// Failed returns how many plan files could not be read.
func (m PlanListModel) Failed() int {
	return m.failed
}
