package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pablasso/readplan/internal/plan"
	"github.com/pablasso/readplan/internal/util"
)

var (
	addName   string
	addCyclic bool
)

var addCmd = &cobra.Command{
	Use:   "add <file>",
	Short: "Add a reading plan to the collection",
	Long: `Add a reading plan from a plain text file, or from standard input when the filename is "-".

The expected input format is a plain text file, with each line representing the title of an entry in the plan. Optionally, a title may be followed by a description, which is given on the line(s) directly following and marked as such by any level of indentation. If no name is provided for the plan, the filename (without the extension) will be used as the name.`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "Name of the plan after adding")
	addCmd.Flags().BoolVarP(&addCyclic, "cyclic", "c", false, "Create a cyclic plan")
}

func runAdd(cmd *cobra.Command, args []string) error {
	filename := args[0]

	var r io.Reader
	if filename == "-" {
		if addName == "" {
			return fmt.Errorf("--name is required when reading from stdin")
		}
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(filename)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", filename, err)
		}
		defer f.Close()
		r = f
	}

	name := planName(addName, filename)
	if name == "" {
		return fmt.Errorf("could not deduce plan name from filename '%s'", filename)
	}

	p, err := plan.Parse(name, r)
	if err != nil {
		return fmt.Errorf("failed to parse plan: %w", err)
	}
	p.SetCyclic(addCyclic)

	s, journal, err := openStore()
	if err != nil {
		return err
	}
	if err := s.Add(p); err != nil {
		return fmt.Errorf("failed to add plan: %w", err)
	}
	journal.PlanAdded(p.Name, p.Len())

	fmt.Printf("Added plan %s (%d entries)\n", styles.Title.Render(p.Name), p.Len())
	return nil
}

// planName returns the explicit name, or one derived from the file
// name, normalized to kebab-case either way.
func planName(explicit, filename string) string {
	if explicit != "" {
		return util.ToKebabCase(explicit)
	}
	base := filepath.Base(filename)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return util.ToKebabCase(stem)
}
