package plan

import (
	"errors"
	"fmt"
)

// Plan is an ordered list of entries with a movable cursor.
//
// CurrentEntry is a 0-based index into Entries. For an acyclic plan it
// may also equal len(Entries), which marks the plan as ended. A cyclic
// plan wraps instead of ending, so its cursor always stays in range.
type Plan struct {
	Name         string  `json:"name"`
	Cyclic       bool    `json:"cyclic"`
	CurrentEntry int     `json:"current_entry"`
	Entries      []Entry `json:"entries"`
}

// New constructs an acyclic plan positioned at the first entry.
// A plan must have at least one entry.
func New(name string, entries []Entry) (*Plan, error) {
	if len(entries) == 0 {
		return nil, errors.New("cannot construct an empty plan")
	}
	return &Plan{Name: name, Entries: entries}, nil
}

// Next advances the plan by delta entries. Negative deltas move backward.
//
// A cyclic plan wraps around in both directions. An acyclic plan stops
// at the first entry when moving below it, and at the ended position
// when moving past the last entry.
func (p *Plan) Next(delta int) {
	n := len(p.Entries)
	if n == 0 {
		return
	}

	pos := p.CurrentEntry + delta
	if p.Cyclic {
		pos %= n
		if pos < 0 {
			pos += n
		}
	} else {
		if pos < 0 {
			pos = 0
		} else if pos > n {
			pos = n
		}
	}
	p.CurrentEntry = pos
}

// Previous reverts the plan by delta entries. It is a shortcut for
// calling Next with a negated delta.
func (p *Plan) Previous(delta int) {
	p.Next(-delta)
}

// SetCyclic sets whether the plan wraps around. Making an ended plan
// cyclic moves it back to the first entry.
func (p *Plan) SetCyclic(cyclic bool) {
	p.Cyclic = cyclic
	if p.Cyclic && p.CurrentEntry == len(p.Entries) {
		p.CurrentEntry = 0
	}
}

// CurrentEntryNumber returns the 1-based number of the current entry.
// For an ended plan this is one more than the number of entries.
func (p *Plan) CurrentEntryNumber() int {
	return p.CurrentEntry + 1
}

// Len returns the number of entries in the plan.
func (p *Plan) Len() int {
	return len(p.Entries)
}

// IsEnded reports whether an acyclic plan has moved past its last entry.
func (p *Plan) IsEnded() bool {
	return p.CurrentEntryNumber() > p.Len()
}

// Current returns the current entry, or false if the plan has ended.
func (p *Plan) Current() (Entry, bool) {
	if p.CurrentEntry >= len(p.Entries) {
		return Entry{}, false
	}
	return p.Entries[p.CurrentEntry], true
}

// Validate checks the structural invariants of a plan, typically after
// decoding one from disk.
func (p *Plan) Validate() error {
	if len(p.Entries) == 0 {
		return errors.New("plan has no entries")
	}
	for i, e := range p.Entries {
		if e.Title == "" {
			return fmt.Errorf("entry %d missing title", i+1)
		}
	}
	if p.CurrentEntry < 0 || p.CurrentEntry > len(p.Entries) {
		return fmt.Errorf("current entry %d out of range", p.CurrentEntry)
	}
	if p.Cyclic && p.CurrentEntry == len(p.Entries) {
		return errors.New("cyclic plan cannot be at its end")
	}
	return nil
}
