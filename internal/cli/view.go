package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var viewCount int

var viewCmd = &cobra.Command{
	Use:   "view <plan>",
	Short: "View the current entry (and optionally more) of the specified plan",
	Args:  cobra.ExactArgs(1),
	RunE:  runView,
}

func init() {
	viewCmd.Flags().IntVarP(&viewCount, "count", "c", 1, "Number of following entries to view")
}

func runView(cmd *cobra.Command, args []string) error {
	count := viewCount
	if !cmd.Flags().Changed("count") {
		count = cfg.DefaultCount
	}
	if count < 1 {
		return fmt.Errorf("count must be at least 1")
	}

	s, _, err := openStore()
	if err != nil {
		return err
	}
	p, err := s.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to read plan: %w", err)
	}

	if p.IsEnded() {
		fmt.Println("Plan has ended (use `readplan previous` to revert to an earlier entry)")
		return nil
	}

	// Print the requested number of entries starting at the current
	// one. A cyclic plan wraps around; an acyclic one stops at its
	// last entry.
	for n := 0; n < count; n++ {
		idx := p.CurrentEntry + n
		if idx >= p.Len() {
			if !p.Cyclic {
				break
			}
			idx %= p.Len()
		}
		e := p.Entries[idx]

		var label string
		switch n {
		case 0:
			label = "Current entry: "
		case 1:
			label = "Next entry: "
		default:
			label = fmt.Sprintf("%d entries from now: ", n)
		}

		fmt.Printf("%-20s %s\n", label, styles.Title.Render(e.Title))
		if e.Description != "" {
			fmt.Printf("%-20s %s\n", "", styles.Description.Render(e.Description))
		}
	}
	return nil
}
