package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pablasso/readplan/internal/plan"
)

var (
	nextCount     int
	previousCount int
)

var nextCmd = &cobra.Command{
	Use:   "next <plan>",
	Short: "Move the specified plan to the next entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMove(args[0], nextCount)
	},
}

var previousCmd = &cobra.Command{
	Use:   "previous <plan>",
	Short: "Move the specified plan to the previous entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMove(args[0], -previousCount)
	},
}

func init() {
	nextCmd.Flags().IntVarP(&nextCount, "count", "c", 1, "Number of entries to move forward")
	previousCmd.Flags().IntVarP(&previousCount, "count", "c", 1, "Number of entries to move backward")
}

// runMove advances a plan by delta entries and saves it, reporting the
// old and new positions.
func runMove(name string, delta int) error {
	s, journal, err := openStore()
	if err != nil {
		return err
	}
	p, err := s.Load(name)
	if err != nil {
		return fmt.Errorf("failed to read plan: %w", err)
	}

	from := formatEntryNumber(p)
	p.Next(delta)
	to := formatEntryNumber(p)

	if err := s.Save(p); err != nil {
		return fmt.Errorf("could not save changes to plan: %w", err)
	}
	journal.EntryChanged(p.Name, from, to)

	fmt.Printf("Changed current entry of '%s': %s -> %s\n", p.Name, from, to)
	return nil
}

// formatEntryNumber renders the 1-based entry number, or "end" for an
// ended plan.
func formatEntryNumber(p *plan.Plan) string {
	if p.IsEnded() {
		return "end"
	}
	return strconv.Itoa(p.CurrentEntryNumber())
}
