package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <plan>",
	Short: "Remove a reading plan from the collection",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	name := args[0]

	s, journal, err := openStore()
	if err != nil {
		return err
	}
	if err := s.Remove(name); err != nil {
		return fmt.Errorf("failed to remove plan: %w", err)
	}
	journal.PlanRemoved(name)

	fmt.Printf("Removed plan %s\n", styles.Title.Render(name))
	return nil
}
