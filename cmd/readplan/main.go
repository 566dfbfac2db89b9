package main

import (
	"fmt"
	"os"

	"github.com/pablasso/readplan/internal/cli"
	"github.com/pablasso/readplan/internal/tui"
)

func main() {
	// If no args, launch TUI; otherwise route to CLI
	if len(os.Args) == 1 {
		st, journal, err := setupTUI()
		if err == nil {
			err = tui.Run(st, journal)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	} else {
		if err := cli.Execute(); err != nil {
			os.Exit(1)
		}
	}
}
