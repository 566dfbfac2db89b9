package cli

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pablasso/readplan/internal/plan"
	"github.com/pablasso/readplan/internal/store"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all installed reading plans",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}

	plans, failed, err := s.List()
	if err != nil {
		if errors.Is(err, store.ErrNoStore) {
			printNoPlans()
			return nil
		}
		return fmt.Errorf("failed to list plans: %w", err)
	}
	if len(plans) == 0 && failed == 0 {
		printNoPlans()
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPOSITION\tMODE")
	for _, p := range plans {
		fmt.Fprintf(w, "%s\t%s\t%s\n", p.Name, formatPosition(p), formatMode(p))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	switch failed {
	case 0:
	case 1:
		fmt.Println(styles.Error.Render("1 plan could not be read"))
	default:
		fmt.Println(styles.Error.Render(fmt.Sprintf("%d plans could not be read", failed)))
	}
	return nil
}

func printNoPlans() {
	fmt.Println("No plans are installed; you can add some by running `readplan add` (use `readplan help add` for more information)")
}

// formatPosition renders the cursor position as "entry X of Y", or
// "end of plan" for an ended plan.
func formatPosition(p *plan.Plan) string {
	if p.IsEnded() {
		return "end of plan"
	}
	return fmt.Sprintf("entry %d of %d", p.CurrentEntryNumber(), p.Len())
}

func formatMode(p *plan.Plan) string {
	if p.Cyclic {
		return "cyclic"
	}
	return "acyclic"
}
