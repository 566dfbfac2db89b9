package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cyclicOff bool

var cyclicCmd = &cobra.Command{
	Use:   "cyclic <plan>",
	Short: "Make the specified plan cyclic",
	Long:  `Make the specified plan cyclic, so that moving past its last entry wraps around to the first. A cyclic plan that had already ended is moved back to its first entry. Use --off to make a plan acyclic again.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCyclic,
}

func init() {
	cyclicCmd.Flags().BoolVar(&cyclicOff, "off", false, "Make the plan acyclic instead")
}

func runCyclic(cmd *cobra.Command, args []string) error {
	s, journal, err := openStore()
	if err != nil {
		return err
	}
	p, err := s.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to read plan: %w", err)
	}

	p.SetCyclic(!cyclicOff)
	if err := s.Save(p); err != nil {
		return fmt.Errorf("could not save changes to plan: %w", err)
	}
	journal.CyclicChanged(p.Name, p.Cyclic)

	if p.Cyclic {
		fmt.Printf("Plan '%s' is now cyclic (at entry %d of %d)\n", p.Name, p.CurrentEntryNumber(), p.Len())
	} else {
		fmt.Printf("Plan '%s' is now acyclic\n", p.Name)
	}
	return nil
}
