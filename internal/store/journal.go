package store

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

const journalFileName = "history.log"

// Event type constants for the change journal.
const (
	EventPlanAdded     = "plan_added"
	EventPlanRemoved   = "plan_removed"
	EventEntryChanged  = "entry_changed"
	EventCyclicChanged = "cyclic_changed"
)

// Event is a single journal record.
type Event struct {
	Timestamp time.Time              `json:"timestamp"`
	Event     string                 `json:"event"`
	Data      map[string]interface{} `json:"data,omitempty"`
}

// Journal appends plan changes to a JSON Lines file next to the stored
// plans. It is advisory: callers treat write failures as non-fatal.
type Journal struct {
	path string
}

// NewJournal creates a journal for the given store directory.
func NewJournal(dir string) *Journal {
	return &Journal{
		path: filepath.Join(dir, journalFileName),
	}
}

// Log appends an event to the journal file.
func (j *Journal) Log(event string, data map[string]interface{}) error {
	record := Event{
		Timestamp: time.Now(),
		Event:     event,
		Data:      data,
	}

	jsonBytes, err := json.Marshal(record)
	if err != nil {
		return err
	}
	jsonBytes = append(jsonBytes, '\n')

	if err := os.MkdirAll(filepath.Dir(j.path), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(jsonBytes)
	return err
}

// PlanAdded logs a plan_added event.
func (j *Journal) PlanAdded(name string, entries int) error {
	return j.Log(EventPlanAdded, map[string]interface{}{
		"plan":    name,
		"entries": entries,
	})
}

// PlanRemoved logs a plan_removed event.
func (j *Journal) PlanRemoved(name string) error {
	return j.Log(EventPlanRemoved, map[string]interface{}{
		"plan": name,
	})
}

// EntryChanged logs an entry_changed event. Positions are 1-based
// entry numbers rendered as strings, with "end" for the ended state.
func (j *Journal) EntryChanged(name, from, to string) error {
	return j.Log(EventEntryChanged, map[string]interface{}{
		"plan": name,
		"from": from,
		"to":   to,
	})
}

// CyclicChanged logs a cyclic_changed event.
func (j *Journal) CyclicChanged(name string, cyclic bool) error {
	return j.Log(EventCyclicChanged, map[string]interface{}{
		"plan":   name,
		"cyclic": cyclic,
	})
}

// Tail returns the most recent n events, oldest first. A missing
// journal file yields no events, and malformed lines are skipped.
func (j *Journal) Tail(n int) ([]Event, error) {
	f, err := os.Open(j.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var events []Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e Event
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			continue
		}
		events = append(events, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if n > 0 && len(events) > n {
		events = events[len(events)-n:]
	}
	return events, nil
}
