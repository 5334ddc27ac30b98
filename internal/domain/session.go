package domain

import "time"

// DropSet is an immediate, rest-free continuation set appended to a
// completed main set. Ordered within SetEntry.Drops.
type DropSet struct {
	Weight    string `json:"weight"`
	Reps      string `json:"reps"`
	Completed bool   `json:"completed"`
}

// VariantSnapshot captures a set entry's data for one exercise variant so
// switching the selected variant never destroys the other variant's numbers.
type VariantSnapshot struct {
	Weight    string    `json:"weight"`
	Reps      string    `json:"reps"`
	Completed bool      `json:"completed"`
	IsDropSet bool      `json:"isDropSet"`
	Drops     []DropSet `json:"drops,omitempty"`
}

// SetEntry is the log for one set position of one exercise slot.
// Weight is decimal-as-text and Reps integer-as-text, sanitized on input.
type SetEntry struct {
	Weight          string                  `json:"weight"`
	Reps            string                  `json:"reps"`
	Completed       bool                    `json:"completed"`
	SelectedVariant int                     `json:"selectedVariant"`
	IsDropSet       bool                    `json:"isDropSet"`
	Drops           []DropSet               `json:"drops,omitempty"`
	VariantData     map[int]VariantSnapshot `json:"variantData,omitempty"`
}

// Snapshot copies the entry's top-level fields into a VariantSnapshot
func (e SetEntry) Snapshot() VariantSnapshot {
	drops := make([]DropSet, len(e.Drops))
	copy(drops, e.Drops)
	if len(drops) == 0 {
		drops = nil
	}
	return VariantSnapshot{
		Weight:    e.Weight,
		Reps:      e.Reps,
		Completed: e.Completed,
		IsDropSet: e.IsDropSet,
		Drops:     drops,
	}
}

// Restore writes a VariantSnapshot back into the entry's top-level fields
func (e *SetEntry) Restore(s VariantSnapshot) {
	e.Weight = s.Weight
	e.Reps = s.Reps
	e.Completed = s.Completed
	e.IsDropSet = s.IsDropSet
	if len(s.Drops) == 0 {
		e.Drops = nil
	} else {
		e.Drops = make([]DropSet, len(s.Drops))
		copy(e.Drops, s.Drops)
	}
}

// Clear resets the entry's top-level fields to a blank set. First-time
// selection of a variant starts fresh rather than inheriting the primary
// exercise's numbers.
func (e *SetEntry) Clear() {
	e.Weight = ""
	e.Reps = ""
	e.Completed = false
	e.IsDropSet = false
	e.Drops = nil
}

// SessionState is the canonical in-memory representation of one workout.
// Outer index = exercise slot, inner index = set position.
type SessionState struct {
	Exercises     [][]SetEntry   `json:"exercises"`
	Notes         map[int]string `json:"notes"`
	StartedAt     *time.Time     `json:"startedAt"`
	Duration      int            `json:"duration"` // accumulated seconds
	SupersetLinks map[int]bool   `json:"supersetLinks"`
}

// NewSessionState builds a blank session with exactly one SetEntry per
// (exercise slot, set position).
func NewSessionState(specs []ExerciseSpec) *SessionState {
	exercises := make([][]SetEntry, len(specs))
	for i, spec := range specs {
		sets := spec.TargetSets
		if sets < 1 {
			sets = 1
		}
		exercises[i] = make([]SetEntry, sets)
	}
	return &SessionState{
		Exercises:     exercises,
		Notes:         make(map[int]string),
		SupersetLinks: make(map[int]bool),
	}
}

// Started reports whether the user has confirmed the workout start
func (s *SessionState) Started() bool {
	return s.StartedAt != nil
}

// Entry returns the addressed set entry, or nil when out of range
func (s *SessionState) Entry(slot, set int) *SetEntry {
	if slot < 0 || slot >= len(s.Exercises) {
		return nil
	}
	if set < 0 || set >= len(s.Exercises[slot]) {
		return nil
	}
	return &s.Exercises[slot][set]
}
