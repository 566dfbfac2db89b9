package cli

import (
	"testing"
	"time"

	"github.com/pablasso/readplan/internal/store"
)

func TestFormatAge(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{
			name:     "just now for less than a minute",
			duration: 30 * time.Second,
			want:     "just now",
		},
		{
			name:     "just now for 0 seconds",
			duration: 0,
			want:     "just now",
		},
		{
			name:     "1 minute ago",
			duration: 1 * time.Minute,
			want:     "1m ago",
		},
		{
			name:     "5 minutes ago",
			duration: 5 * time.Minute,
			want:     "5m ago",
		},
		{
			name:     "59 minutes ago",
			duration: 59 * time.Minute,
			want:     "59m ago",
		},
		{
			name:     "1 hour ago",
			duration: 1 * time.Hour,
			want:     "1h ago",
		},
		{
			name:     "23 hours ago",
			duration: 23 * time.Hour,
			want:     "23h ago",
		},
		{
			name:     "1 day ago",
			duration: 24 * time.Hour,
			want:     "1d ago",
		},
		{
			name:     "10 days ago",
			duration: 240 * time.Hour,
			want:     "10d ago",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Calculate the time in the past
			pastTime := time.Now().Add(-tt.duration)
			got := formatAge(pastTime)
			if got != tt.want {
				t.Errorf("formatAge() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDescribeEvent(t *testing.T) {
	tests := []struct {
		name  string
		event store.Event
		want  string
	}{
		{
			name: "plan added with entry count",
			event: store.Event{
				Event: store.EventPlanAdded,
				Data:  map[string]interface{}{"plan": "novels", "entries": float64(12)},
			},
			want: "added with 12 entries",
		},
		{
			name:  "plan added without entry count",
			event: store.Event{Event: store.EventPlanAdded},
			want:  "added",
		},
		{
			name:  "plan removed",
			event: store.Event{Event: store.EventPlanRemoved},
			want:  "removed",
		},
		{
			name: "entry changed",
			event: store.Event{
				Event: store.EventEntryChanged,
				Data:  map[string]interface{}{"from": "3", "to": "end"},
			},
			want: "entry 3 -> end",
		},
		{
			name: "made cyclic",
			event: store.Event{
				Event: store.EventCyclicChanged,
				Data:  map[string]interface{}{"cyclic": true},
			},
			want: "made cyclic",
		},
		{
			name: "made acyclic",
			event: store.Event{
				Event: store.EventCyclicChanged,
				Data:  map[string]interface{}{"cyclic": false},
			},
			want: "made acyclic",
		},
		{
			name:  "unknown event falls back to its name",
			event: store.Event{Event: "mystery_event"},
			want:  "mystery_event",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := describeEvent(tt.event)
			if got != tt.want {
				t.Errorf("describeEvent() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEventPlan(t *testing.T) {
	e := store.Event{Data: map[string]interface{}{"plan": "novels"}}
	if got, want := eventPlan(e), "novels"; got != want {
		t.Errorf("eventPlan() = %q, want %q", got, want)
	}

	if got, want := eventPlan(store.Event{}), "-"; got != want {
		t.Errorf("eventPlan() without plan = %q, want %q", got, want)
	}
}
