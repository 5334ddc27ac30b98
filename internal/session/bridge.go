package session

import (
	"context"
	"time"

	"ferro/internal/domain"
	"ferro/internal/logging"
	"ferro/internal/ports"
)

// nowFunc returns the current time. Can be overridden in tests.
var nowFunc = time.Now

// Bridge is the persistence bridge between the in-memory session and the
// per-(day, block) storage slot. Every storage failure is caught here and
// degraded: reads become "no saved state", writes become "accepted but not
// durable". The user is never blocked on persistence.
type Bridge struct {
	repo        ports.WorkoutRepository
	day         string
	blockName   string
	week        int
	fingerprint string
}

// NewBridge creates a bridge for one (day, block, week) session
func NewBridge(repo ports.WorkoutRepository, specs []domain.ExerciseSpec, day, blockName string, week int) *Bridge {
	return &Bridge{
		repo:        repo,
		day:         day,
		blockName:   blockName,
		week:        week,
		fingerprint: domain.SpecFingerprint(specs),
	}
}

// Save serializes the session into its storage slot. Called on every state
// change. A failure is logged and returned so the UI can show a transient
// warning; the in-memory session is the source of truth either way.
func (b *Bridge) Save(ctx context.Context, store *Store) error {
	state := store.State()
	snap := domain.SessionSnapshot{
		Day:              b.day,
		BlockName:        b.blockName,
		AllSetsData:      state.Exercises,
		ExerciseNotes:    state.Notes,
		SupersetLinks:    state.SupersetLinks,
		WorkoutStartTime: state.StartedAt,
		WorkoutDuration:  state.Duration,
		SavedAt:          nowFunc(),
		SpecFingerprint:  b.fingerprint,
	}

	if err := b.repo.SaveSnapshot(ctx, snap); err != nil {
		logging.Logger.Warn("Session auto-save failed",
			"day", b.day,
			"block", b.blockName,
			"error", err)
		return err
	}
	return nil
}

// Restore loads the slot's saved session into the store. Returns true when
// a matching snapshot was applied. The restored duration is reconciled with
// the wall-clock time since the save, so the workout keeps "running" across
// an app restart. A snapshot whose spec identity no longer matches the plan
// is discarded silently; read failures mean "start fresh".
func (b *Bridge) Restore(ctx context.Context, store *Store) bool {
	snap, err := b.repo.LoadSnapshot(ctx, b.day, b.blockName)
	if err != nil {
		logging.Logger.Debug("No saved session to restore",
			"day", b.day,
			"block", b.blockName,
			"error", err)
		return false
	}

	if snap.SpecFingerprint != b.fingerprint {
		logging.Logger.Info("Discarding stale session snapshot",
			"day", b.day,
			"block", b.blockName)
		return false
	}

	state := &domain.SessionState{
		Exercises:     snap.AllSetsData,
		Notes:         snap.ExerciseNotes,
		SupersetLinks: snap.SupersetLinks,
		StartedAt:     snap.WorkoutStartTime,
		Duration:      snap.WorkoutDuration,
	}

	if snap.WorkoutStartTime != nil {
		elapsedSinceSave := int(nowFunc().Sub(snap.SavedAt).Seconds())
		if elapsedSinceSave > 0 {
			state.Duration = snap.WorkoutDuration + elapsedSinceSave
		}
	}

	store.Restore(state)
	return true
}

// Finish computes the final stats and persists the session's outcome:
// history entries merged per exercise, the (day, week) completion mark,
// the aggregate stats record, and clearing of the in-progress slot.
// Persistence failures are logged, never surfaced; the stats are returned
// regardless so the summary can always be shown.
func (b *Bridge) Finish(ctx context.Context, store *Store, finishedAt time.Time) domain.SessionStats {
	state := store.State()
	stats := domain.ComputeStats(state)

	entries := domain.CollectHistory(store.Specs(), state, b.day, finishedAt)
	if len(entries) > 0 {
		if err := b.repo.MergeHistory(ctx, entries); err != nil {
			logging.Logger.Warn("Failed to append workout history", "error", err)
		}
	}

	if err := b.repo.MarkCompleted(ctx, b.blockName, b.week, b.day); err != nil {
		logging.Logger.Warn("Failed to mark session completed", "error", err)
	}

	completion := domain.CompletionStats{
		DurationMinutes: stats.DurationSeconds / 60,
		TotalVolume:     stats.TotalVolume,
		Date:            finishedAt.Format(time.RFC3339),
	}
	if err := b.repo.SaveCompletionStats(ctx, b.blockName, b.week, b.day, completion); err != nil {
		logging.Logger.Warn("Failed to save completion stats", "error", err)
	}

	if err := b.repo.ClearSnapshot(ctx, b.day, b.blockName); err != nil {
		logging.Logger.Warn("Failed to clear session snapshot", "error", err)
	}

	return stats
}
