package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/pablasso/readplan/internal/store"
)

var logCount int

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show recent plan changes",
	Args:  cobra.NoArgs,
	RunE:  runLog,
}

func init() {
	logCmd.Flags().IntVarP(&logCount, "count", "c", 10, "Number of changes to show")
}

func runLog(cmd *cobra.Command, args []string) error {
	_, journal, err := openStore()
	if err != nil {
		return err
	}

	events, err := journal.Tail(logCount)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}
	if len(events) == 0 {
		fmt.Println("No recorded changes.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tPLAN\tCHANGE")
	for _, e := range events {
		fmt.Fprintf(w, "%s\t%s\t%s\n", formatAge(e.Timestamp), eventPlan(e), describeEvent(e))
	}
	return w.Flush()
}

// eventPlan extracts the plan name from a journal event.
func eventPlan(e store.Event) string {
	if name, ok := e.Data["plan"].(string); ok {
		return name
	}
	return "-"
}

// describeEvent renders a journal event as a short change description.
func describeEvent(e store.Event) string {
	switch e.Event {
	case store.EventPlanAdded:
		// JSON numbers decode as float64
		if n, ok := e.Data["entries"].(float64); ok {
			return fmt.Sprintf("added with %d entries", int(n))
		}
		return "added"
	case store.EventPlanRemoved:
		return "removed"
	case store.EventEntryChanged:
		from, _ := e.Data["from"].(string)
		to, _ := e.Data["to"].(string)
		return fmt.Sprintf("entry %s -> %s", from, to)
	case store.EventCyclicChanged:
		if cyclic, ok := e.Data["cyclic"].(bool); ok && cyclic {
			return "made cyclic"
		}
		return "made acyclic"
	default:
		return e.Event
	}
}

// formatAge returns a human-readable relative time string.
func formatAge(t time.Time) string {
	now := time.Now()
	duration := now.Sub(t)

	if duration < time.Minute {
		return "just now"
	}

	minutes := int(duration.Minutes())
	if minutes < 60 {
		return fmt.Sprintf("%dm ago", minutes)
	}

	hours := int(duration.Hours())
	if hours < 24 {
		return fmt.Sprintf("%dh ago", hours)
	}

	days := hours / 24
	return fmt.Sprintf("%dd ago", days)
}
