// Package session owns the canonical in-memory state of one workout: the
// set-by-set log, its auto-save bridge, and the placeholder/suggestion
// helpers around it.
package session

import (
	"time"

	"ferro/internal/domain"
)

// SupersetTransitionSeconds is the fixed rest window between the two
// halves of a linked pair, replacing the first exercise's own rest target.
const SupersetTransitionSeconds = 3

// Field selects which text field of a set entry an update targets
type Field int

const (
	// FieldWeight is the decimal weight input
	FieldWeight Field = iota
	// FieldReps is the integer reps input
	FieldReps
)

// TimerRequest asks the UI to start a rest timer after a set completion
type TimerRequest struct {
	Slot            int
	Set             int
	DurationSeconds int
	QuickSeconds    int
	Superset        bool
}

// Store is the Session State Store: the only writer of the session's
// canonical state. All mutations happen through its operations; the
// persistence bridge reads it to serialize and writes it only at
// mount-time restore.
type Store struct {
	specs []domain.ExerciseSpec
	state *domain.SessionState
	week  int

	// previous-session weights per slot, seeded from history for
	// placeholder display only
	prevWeights map[int]string
}

// NewStore builds a blank session for the given day's specs and plan week
func NewStore(specs []domain.ExerciseSpec, week int) *Store {
	return &Store{
		specs:       specs,
		state:       domain.NewSessionState(specs),
		week:        week,
		prevWeights: make(map[int]string),
	}
}

// State exposes the canonical session state for reads
func (s *Store) State() *domain.SessionState {
	return s.state
}

// Specs returns the immutable exercise specs for the day
func (s *Store) Specs() []domain.ExerciseSpec {
	return s.specs
}

// Week returns the 1-based plan week the session targets
func (s *Store) Week() int {
	return s.week
}

// Restore replaces the session state from a saved snapshot. Only the
// persistence bridge calls this, at mount time.
func (s *Store) Restore(state *domain.SessionState) {
	if state.Notes == nil {
		state.Notes = make(map[int]string)
	}
	if state.SupersetLinks == nil {
		state.SupersetLinks = make(map[int]bool)
	}
	s.state = state
}

// Start confirms the workout start, unlocking data entry
func (s *Store) Start(now time.Time) {
	if s.state.StartedAt == nil {
		t := now
		s.state.StartedAt = &t
	}
}

// TickDuration advances the running workout duration by one second
func (s *Store) TickDuration() {
	if s.state.Started() {
		s.state.Duration++
	}
}

// UpdateSetField sanitizes and writes a weight or reps value. Returns false
// when the input was blocked (workout not started or indices out of range);
// the caller surfaces the start reminder.
func (s *Store) UpdateSetField(slot, set int, field Field, raw string) bool {
	if !s.state.Started() {
		return false
	}
	entry := s.state.Entry(slot, set)
	if entry == nil {
		return false
	}

	if field == FieldWeight {
		entry.Weight = domain.SanitizeWeight(raw)
	} else {
		entry.Reps = domain.SanitizeReps(raw)
	}
	s.syncVariantData(entry)
	return true
}

// ToggleSetCompletion flips a set's completed flag. On the transition to
// completed it returns the rest timer to start, or nil when no timer
// applies: the final set of an unlinked exercise rests nothing, and the
// leading half of a superset link always gets the fixed transition window
// instead of its own rest target.
func (s *Store) ToggleSetCompletion(slot, set int) (*TimerRequest, bool) {
	if !s.state.Started() {
		return nil, false
	}
	entry := s.state.Entry(slot, set)
	if entry == nil {
		return nil, false
	}

	entry.Completed = !entry.Completed
	s.syncVariantData(entry)
	if !entry.Completed {
		return nil, true
	}

	spec := s.specs[slot]

	if s.state.SupersetLinks[slot] {
		// Leading half of a linked pair: fixed transition timer
		// regardless of the exercise's own rest hints
		return &TimerRequest{
			Slot:            slot,
			Set:             set,
			DurationSeconds: SupersetTransitionSeconds,
			QuickSeconds:    SupersetTransitionSeconds,
			Superset:        true,
		}, true
	}

	if set == len(s.state.Exercises[slot])-1 {
		// Final set of the exercise: no rest needed
		return nil, true
	}

	return &TimerRequest{
		Slot:            slot,
		Set:             set,
		DurationSeconds: spec.OptimalRest(),
		QuickSeconds:    spec.QuickRest(),
	}, true
}

// ToggleDropSetMode enables or disables drop-set mode for a set. Enabling
// seeds one suggested drop; disabling clears all drops.
func (s *Store) ToggleDropSetMode(slot, set int) bool {
	if !s.state.Started() {
		return false
	}
	entry := s.state.Entry(slot, set)
	if entry == nil {
		return false
	}

	if entry.IsDropSet {
		entry.IsDropSet = false
		entry.Drops = nil
	} else {
		entry.IsDropSet = true
		entry.Drops = []domain.DropSet{{}}
	}
	s.syncVariantData(entry)
	return true
}

// AddDropSet appends another drop to a drop-enabled set
func (s *Store) AddDropSet(slot, set int) bool {
	if !s.state.Started() {
		return false
	}
	entry := s.state.Entry(slot, set)
	if entry == nil || !entry.IsDropSet {
		return false
	}

	entry.Drops = append(entry.Drops, domain.DropSet{})
	s.syncVariantData(entry)
	return true
}

// RemoveDropSet removes one drop; removing the last drop demotes the entry
// out of drop-set mode entirely.
func (s *Store) RemoveDropSet(slot, set, drop int) bool {
	if !s.state.Started() {
		return false
	}
	entry := s.state.Entry(slot, set)
	if entry == nil || drop < 0 || drop >= len(entry.Drops) {
		return false
	}

	entry.Drops = append(entry.Drops[:drop], entry.Drops[drop+1:]...)
	if len(entry.Drops) == 0 {
		entry.Drops = nil
		entry.IsDropSet = false
	}
	s.syncVariantData(entry)
	return true
}

// UpdateDropField sanitizes and writes a drop's weight or reps value
func (s *Store) UpdateDropField(slot, set, drop int, field Field, raw string) bool {
	if !s.state.Started() {
		return false
	}
	entry := s.state.Entry(slot, set)
	if entry == nil || drop < 0 || drop >= len(entry.Drops) {
		return false
	}

	if field == FieldWeight {
		entry.Drops[drop].Weight = domain.SanitizeWeight(raw)
	} else {
		entry.Drops[drop].Reps = domain.SanitizeReps(raw)
	}
	s.syncVariantData(entry)
	return true
}

// ToggleDropCompletion flips a drop's completed flag. Drops are rest-free:
// no timer is ever triggered for them.
func (s *Store) ToggleDropCompletion(slot, set, drop int) bool {
	if !s.state.Started() {
		return false
	}
	entry := s.state.Entry(slot, set)
	if entry == nil || drop < 0 || drop >= len(entry.Drops) {
		return false
	}

	entry.Drops[drop].Completed = !entry.Drops[drop].Completed
	s.syncVariantData(entry)
	return true
}

// SelectVariant swaps the exercise a set targets. The current fields are
// snapshotted under the outgoing variant; the incoming variant restores its
// own snapshot if it has one, otherwise starts blank. First-time selection
// never inherits the previous variant's numbers.
func (s *Store) SelectVariant(slot, variant int) {
	if slot < 0 || slot >= len(s.specs) {
		return
	}
	if variant < 0 || variant >= s.specs[slot].VariantCount() {
		return
	}

	for set := range s.state.Exercises[slot] {
		entry := &s.state.Exercises[slot][set]
		if entry.SelectedVariant == variant {
			continue
		}
		if entry.VariantData == nil {
			entry.VariantData = make(map[int]domain.VariantSnapshot)
		}
		entry.VariantData[entry.SelectedVariant] = entry.Snapshot()

		if snap, ok := entry.VariantData[variant]; ok {
			entry.Restore(snap)
		} else {
			entry.Clear()
		}
		entry.SelectedVariant = variant
		s.syncVariantData(entry)
	}
}

// ToggleSupersetLink links or unlinks exercise slot i to slot i+1. The link
// only changes the inter-set rest policy; the last slot has nothing to link
// forward to.
func (s *Store) ToggleSupersetLink(slot int) {
	if slot < 0 || slot >= len(s.specs)-1 {
		return
	}
	if s.state.SupersetLinks[slot] {
		delete(s.state.SupersetLinks, slot)
	} else {
		s.state.SupersetLinks[slot] = true
	}
}

// SetNote stores free-text notes for an exercise slot
func (s *Store) SetNote(slot int, note string) {
	if slot < 0 || slot >= len(s.specs) {
		return
	}
	if note == "" {
		delete(s.state.Notes, slot)
	} else {
		s.state.Notes[slot] = note
	}
}

// Note returns the free-text notes for an exercise slot
func (s *Store) Note(slot int) string {
	return s.state.Notes[slot]
}

// SetPreviousWeight records the previous-session weight used for
// placeholder display
func (s *Store) SetPreviousWeight(slot int, weight string) {
	s.prevWeights[slot] = weight
}

// PlaceholderWeight returns the suggested weight shown when the field is
// empty: the previous session's weight. Placeholders are display-only and
// never written into the entry.
func (s *Store) PlaceholderWeight(slot int) string {
	return s.prevWeights[slot]
}

// PlaceholderReps returns the suggested rep count for a set: the first
// number of the current week's slice of the rep scheme. Zero means no
// numeric suggestion exists.
func (s *Store) PlaceholderReps(slot, set int) int {
	if slot < 0 || slot >= len(s.specs) {
		return 0
	}
	return s.specs[slot].RepScheme.TargetReps(s.week, set)
}

// syncVariantData keeps the snapshot for the selected variant consistent
// with the entry's own top-level fields after every mutation.
func (s *Store) syncVariantData(entry *domain.SetEntry) {
	if entry.VariantData == nil {
		return
	}
	entry.VariantData[entry.SelectedVariant] = entry.Snapshot()
}
