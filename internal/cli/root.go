package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/pablasso/readplan/internal/config"
	"github.com/pablasso/readplan/internal/store"
	"github.com/pablasso/readplan/internal/version"
)

var (
	flagNoANSI bool
	flagDir    string

	cfg    *config.Config
	styles = PlainStyles()
)

var rootCmd = &cobra.Command{
	Use:           "readplan",
	Short:         "A simple reading plan manager",
	Long:          `Readplan tracks your position in reading plans: ordered lists of books, articles, or anything else you read one entry at a time. To get started, use ` + "`readplan add`" + ` to add a plan, and check ` + "`readplan help add`" + ` for the expected input format.`,
	Version:       version.String(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if flagNoANSI || cfg.NoColor {
			lipgloss.SetColorProfile(termenv.Ascii)
			styles = PlainStyles()
		} else {
			styles = FancyStyles()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagNoANSI, "no-ansi", "n", false, "Disable fancy text output")
	rootCmd.PersistentFlags().StringVar(&flagDir, "dir", "", "Directory holding the stored plans")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(previousCmd)
	rootCmd.AddCommand(cyclicCmd)
	rootCmd.AddCommand(logCmd)
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.Error.Render("Error: "+err.Error()))
	}
	return err
}

// resolveDir picks the plan directory: the --dir flag wins over the
// config (which already folds in READPLAN_DIR), which wins over the
// default under the user's home.
func resolveDir() (string, error) {
	if flagDir != "" {
		return flagDir, nil
	}
	if cfg != nil && cfg.PlansDir != "" {
		return cfg.PlansDir, nil
	}
	return store.DefaultDir()
}

// openStore returns the plan store and its change journal.
func openStore() (*store.Store, *store.Journal, error) {
	dir, err := resolveDir()
	if err != nil {
		return nil, nil, err
	}
	return store.New(dir), store.NewJournal(dir), nil
}
