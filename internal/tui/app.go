package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pablasso/readplan/internal/store"
	"github.com/pablasso/readplan/internal/tui/msgs"
	"github.com/pablasso/readplan/internal/tui/views"
)

// View represents the different screens in the TUI.
type View int

const (
	ViewPlanList View = iota
	ViewPlanDetail
)

// Minimum terminal dimensions for a usable layout.
const (
	MinTerminalWidth  = 60
	MinTerminalHeight = 15
)

// Model is the main Bubble Tea model that routes between views.
type Model struct {
	currentView View
	width       int
	height      int

	planList   views.PlanListModel
	planDetail views.PlanDetailModel

	store   *store.Store
	journal *store.Journal
}

// Run starts the TUI application.
func Run(st *store.Store, journal *store.Journal) error {
	p := tea.NewProgram(
		initialModel(st, journal),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}

func initialModel(st *store.Store, journal *store.Journal) Model {
	return Model{
		currentView: ViewPlanList,
		planList:    views.NewPlanListModel(st),
		store:       st,
		journal:     journal,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.planList.SetSize(msg.Width, msg.Height)
		m.planDetail.SetSize(msg.Width, msg.Height)
		return m, nil

	case msgs.GoToPlanListMsg:
		// Reload from disk so changes made while in the detail view show up.
		m.currentView = ViewPlanList
		m.planList = views.NewPlanListModel(m.store)
		m.planList.SetSize(m.width, m.height)
		return m, nil

	case msgs.GoToPlanDetailMsg:
		p, err := m.store.Load(msg.Name)
		if err != nil {
			m.planList.SetError(err.Error())
			return m, nil
		}
		m.currentView = ViewPlanDetail
		m.planDetail = views.NewPlanDetailModel(m.store, m.journal, p)
		m.planDetail.SetSize(m.width, m.height)
		return m, nil
	}

	// Delegate everything else to the active view.
	var cmd tea.Cmd
	switch m.currentView {
	case ViewPlanDetail:
		m.planDetail, cmd = m.planDetail.Update(msg)
	default:
		m.planList, cmd = m.planList.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.width < MinTerminalWidth || m.height < MinTerminalHeight {
		return m.renderTerminalTooSmall()
	}

	switch m.currentView {
	case ViewPlanDetail:
		return m.planDetail.View()
	default:
		return m.planList.View()
	}
}

// renderTerminalTooSmall renders a centered notice with the required size.
func (m Model) renderTerminalTooSmall() string {
	msg := fmt.Sprintf("Terminal too small\nMinimum: %dx%d\nCurrent: %dx%d",
		MinTerminalWidth, MinTerminalHeight, m.width, m.height)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, msg)
}
