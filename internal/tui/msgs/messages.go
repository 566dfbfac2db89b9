// Package msgs defines shared message types for TUI view transitions.
package msgs

// View transition messages

// GoToPlanListMsg signals transition to the plan list view. The list is
// reloaded from disk on every transition.
type GoToPlanListMsg struct{}

// GoToPlanDetailMsg signals transition to the detail view for a plan.
type GoToPlanDetailMsg struct {
	Name string
}
