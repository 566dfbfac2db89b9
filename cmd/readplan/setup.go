package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/pablasso/readplan/internal/config"
	"github.com/pablasso/readplan/internal/store"
)

// setupTUI prepares the TUI launch: it loads the config, applies the
// color preference, and opens the plan store and journal.
func setupTUI() (*store.Store, *store.Journal, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if cfg.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	return resolveStore(cfg)
}

// resolveStore opens the store and journal at the configured plans
// directory, falling back to the default under the user's home.
func resolveStore(cfg *config.Config) (*store.Store, *store.Journal, error) {
	dir := cfg.PlansDir
	if dir == "" {
		var err error
		dir, err = store.DefaultDir()
		if err != nil {
			return nil, nil, err
		}
	}
	return store.New(dir), store.NewJournal(dir), nil
}
