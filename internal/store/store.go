package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pablasso/readplan/internal/plan"
)

const (
	dataDirName    = ".readplan"
	planFileSuffix = ".plan.json"
)

var (
	// ErrNotFound is returned when a named plan has no file in the store.
	ErrNotFound = errors.New("no such plan")
	// ErrExists is returned by Add when a plan with the same name is
	// already stored.
	ErrExists = errors.New("plan already exists")
	// ErrNoStore is returned when the store directory itself does not
	// exist yet.
	ErrNoStore = errors.New("plan directory does not exist")
)

// Store persists plans as one JSON file per plan inside a single
// directory, ~/.readplan by default.
type Store struct {
	dir string
}

// New creates a store rooted at the given directory. The directory is
// created lazily, on the first Add or Save.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultDir returns the default store directory under the user's home.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not locate home directory: %w", err)
	}
	return filepath.Join(home, dataDirName), nil
}

// Dir returns the directory the store reads and writes.
func (s *Store) Dir() string {
	return s.dir
}

// Add stores a new plan. It fails with ErrExists if a plan with the
// same name is already stored.
func (s *Store) Add(p *plan.Plan) error {
	if err := validateName(p.Name); err != nil {
		return err
	}
	if _, err := os.Stat(s.planPath(p.Name)); err == nil {
		return fmt.Errorf("%w: %s", ErrExists, p.Name)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check for existing plan: %w", err)
	}
	return s.write(p)
}

// Save overwrites a stored plan, creating it if necessary.
func (s *Store) Save(p *plan.Plan) error {
	if err := validateName(p.Name); err != nil {
		return err
	}
	return s.write(p)
}

// write marshals the plan and atomically replaces its file via a temp
// file and rename.
func (s *Store) write(p *plan.Plan) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create plan directory: %w", err)
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}

	planPath := s.planPath(p.Name)
	tmpPath := fmt.Sprintf("%s.tmp.%d", planPath, os.Getpid())
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, planPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// Load reads a stored plan by name. It fails with ErrNoStore when the
// store directory is missing and ErrNotFound when the plan is.
func (s *Store) Load(name string) (*plan.Plan, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if _, err := os.Stat(s.dir); os.IsNotExist(err) {
		return nil, ErrNoStore
	}

	data, err := os.ReadFile(s.planPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("failed to read plan: %w", err)
	}

	p, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("plan %q: %w", name, err)
	}
	return p, nil
}

// Remove deletes a stored plan by name.
func (s *Store) Remove(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	err := os.Remove(s.planPath(name))
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return err
}

// List reads every stored plan, sorted by file name. Plans that cannot
// be read or fail validation are skipped and counted in failed rather
// than aborting the listing.
func (s *Store) List() (plans []*plan.Plan, failed int, err error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, ErrNoStore
		}
		return nil, 0, fmt.Errorf("failed to read plan directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), planFileSuffix) {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			failed++
			continue
		}
		p, err := decode(data)
		if err != nil {
			failed++
			continue
		}
		plans = append(plans, p)
	}

	return plans, failed, nil
}

// decode unmarshals and validates a stored plan document.
func decode(data []byte) (*plan.Plan, error) {
	var p plan.Plan
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse plan: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid plan: %w", err)
	}
	return &p, nil
}

// planPath returns the file path for a plan name.
// Format: <dir>/<name>.plan.json
func (s *Store) planPath(name string) string {
	return filepath.Join(s.dir, name+planFileSuffix)
}

// validateName rejects names that would escape the store directory.
func validateName(name string) error {
	if name == "" {
		return errors.New("plan name cannot be empty")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("invalid plan name: %s", name)
	}
	return nil
}
