package ports

import (
	"context"

	"ferro/internal/domain"
)

// SnapshotStore persists the auto-saved in-progress session per
// (workout day, block) slot
type SnapshotStore interface {
	SaveSnapshot(ctx context.Context, snap domain.SessionSnapshot) error
	LoadSnapshot(ctx context.Context, day, blockName string) (*domain.SessionSnapshot, error)
	ClearSnapshot(ctx context.Context, day, blockName string) error
}

// HistoryStore persists and queries the append-only workout history
type HistoryStore interface {
	// MergeHistory appends entries, merging with existing entries that
	// share (exerciseName, date, dayName) by set number
	MergeHistory(ctx context.Context, entries []domain.HistoryEntry) error
	HistoryByExercise(ctx context.Context, exerciseName string) ([]domain.HistoryEntry, error)
	// LastCompletedSets returns the most recent session's sets for an
	// exercise, used to seed "previous" placeholders
	LastCompletedSets(ctx context.Context, exerciseName string) ([]domain.LoggedSet, error)
}

// CompletionStore tracks finished (day, week) sessions per block
type CompletionStore interface {
	MarkCompleted(ctx context.Context, blockName string, week int, dayName string) error
	CompletedDays(ctx context.Context, blockName string, week int) ([]string, error)
	SaveCompletionStats(ctx context.Context, blockName string, week int, dayName string, stats domain.CompletionStats) error
	CompletionStatsByWeek(ctx context.Context, blockName string, week int) (map[string]domain.CompletionStats, error)
}

// WorkoutRepository is the composite interface
type WorkoutRepository interface {
	SnapshotStore
	HistoryStore
	CompletionStore
	Close() error
}
