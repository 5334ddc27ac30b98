package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ferro/internal/domain"
)

func testRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "workouts.db"))
	assert.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func testSnapshot() domain.SessionSnapshot {
	start := time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)
	return domain.SessionSnapshot{
		Day:       "push",
		BlockName: "hypertrophy",
		AllSetsData: [][]domain.SetEntry{
			{
				{Weight: "100", Reps: "8", Completed: true},
				{Weight: "100", Reps: "7", IsDropSet: true,
					Drops: []domain.DropSet{{Weight: "80", Reps: "6", Completed: true}}},
			},
		},
		ExerciseNotes:    map[int]string{0: "pause at chest"},
		SupersetLinks:    map[int]bool{0: true},
		WorkoutStartTime: &start,
		WorkoutDuration:  900,
		SavedAt:          start.Add(15 * time.Minute),
		SpecFingerprint:  "abcd1234",
	}
}

func TestSQLiteRepository_SnapshotRoundTrip(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	assert.NoError(t, repo.SaveSnapshot(ctx, testSnapshot()))

	loaded, err := repo.LoadSnapshot(ctx, "push", "hypertrophy")
	assert.NoError(t, err)
	assert.Equal(t, "push", loaded.Day)
	assert.Equal(t, "hypertrophy", loaded.BlockName)
	assert.Equal(t, 900, loaded.WorkoutDuration)
	assert.Equal(t, "abcd1234", loaded.SpecFingerprint)
	assert.Equal(t, "pause at chest", loaded.ExerciseNotes[0])
	assert.True(t, loaded.SupersetLinks[0])
	assert.NotNil(t, loaded.WorkoutStartTime)

	entry := loaded.AllSetsData[0][1]
	assert.True(t, entry.IsDropSet)
	assert.Len(t, entry.Drops, 1)
	assert.Equal(t, "80", entry.Drops[0].Weight)
}

func TestSQLiteRepository_SaveSnapshotOverwritesSlot(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	snap := testSnapshot()
	assert.NoError(t, repo.SaveSnapshot(ctx, snap))

	snap.WorkoutDuration = 1200
	snap.ExerciseNotes[0] = "wider grip"
	assert.NoError(t, repo.SaveSnapshot(ctx, snap))

	loaded, err := repo.LoadSnapshot(ctx, "push", "hypertrophy")
	assert.NoError(t, err)
	assert.Equal(t, 1200, loaded.WorkoutDuration)
	assert.Equal(t, "wider grip", loaded.ExerciseNotes[0])
}

func TestSQLiteRepository_SnapshotSlotsAreIndependent(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	first := testSnapshot()
	second := testSnapshot()
	second.Day = "pull"
	second.WorkoutDuration = 300

	assert.NoError(t, repo.SaveSnapshot(ctx, first))
	assert.NoError(t, repo.SaveSnapshot(ctx, second))

	loaded, err := repo.LoadSnapshot(ctx, "pull", "hypertrophy")
	assert.NoError(t, err)
	assert.Equal(t, 300, loaded.WorkoutDuration)

	loaded, err = repo.LoadSnapshot(ctx, "push", "hypertrophy")
	assert.NoError(t, err)
	assert.Equal(t, 900, loaded.WorkoutDuration)
}

func TestSQLiteRepository_LoadSnapshotNotFound(t *testing.T) {
	repo := testRepo(t)

	_, err := repo.LoadSnapshot(context.Background(), "push", "hypertrophy")

	assert.True(t, errors.Is(err, domain.ErrSnapshotNotFound))
}

func TestSQLiteRepository_ClearSnapshot(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	assert.NoError(t, repo.SaveSnapshot(ctx, testSnapshot()))
	assert.NoError(t, repo.ClearSnapshot(ctx, "push", "hypertrophy"))

	_, err := repo.LoadSnapshot(ctx, "push", "hypertrophy")
	assert.True(t, errors.Is(err, domain.ErrSnapshotNotFound))

	// Clearing an empty slot is fine
	assert.NoError(t, repo.ClearSnapshot(ctx, "push", "hypertrophy"))
}

func TestSQLiteRepository_MergeHistory(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	first := []domain.HistoryEntry{{
		ExerciseName: "Bench Press",
		Date:         "2026-03-14",
		DayName:      "push",
		Sets: []domain.LoggedSet{
			{SetNumber: 1, Weight: "100", Reps: "8"},
			{SetNumber: 2, Weight: "100", Reps: "7"},
		},
	}}
	assert.NoError(t, repo.MergeHistory(ctx, first))

	// A second session on the same date replaces set 2 and adds set 3
	second := []domain.HistoryEntry{{
		ExerciseName: "Bench Press",
		Date:         "2026-03-14",
		DayName:      "push",
		Sets: []domain.LoggedSet{
			{SetNumber: 2, Weight: "105", Reps: "6"},
			{SetNumber: 3, Weight: "105", Reps: "5"},
		},
	}}
	assert.NoError(t, repo.MergeHistory(ctx, second))

	entries, err := repo.HistoryByExercise(ctx, "Bench Press")
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Len(t, entries[0].Sets, 3)
	assert.Equal(t, "100", entries[0].Sets[0].Weight)
	assert.Equal(t, "105", entries[0].Sets[1].Weight)
	assert.NotEmpty(t, entries[0].ID)
}

func TestSQLiteRepository_HistoryByExerciseNewestFirst(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	entries := []domain.HistoryEntry{
		{ExerciseName: "Row", Date: "2026-03-01", DayName: "pull",
			Sets: []domain.LoggedSet{{SetNumber: 1, Weight: "60", Reps: "10"}}},
		{ExerciseName: "Row", Date: "2026-03-08", DayName: "pull",
			Sets: []domain.LoggedSet{{SetNumber: 1, Weight: "65", Reps: "10"}}},
	}
	assert.NoError(t, repo.MergeHistory(ctx, entries))

	got, err := repo.HistoryByExercise(ctx, "Row")
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "2026-03-08", got[0].Date)
	assert.Equal(t, "2026-03-01", got[1].Date)
}

func TestSQLiteRepository_LastCompletedSets(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	// No history yet means no placeholder, not an error
	sets, err := repo.LastCompletedSets(ctx, "Bench Press")
	assert.NoError(t, err)
	assert.Nil(t, sets)

	entries := []domain.HistoryEntry{
		{ExerciseName: "Bench Press", Date: "2026-03-01", DayName: "push",
			Sets: []domain.LoggedSet{{SetNumber: 1, Weight: "95", Reps: "8"}}},
		{ExerciseName: "Bench Press", Date: "2026-03-08", DayName: "push",
			Sets: []domain.LoggedSet{{SetNumber: 1, Weight: "100", Reps: "8"}}},
	}
	assert.NoError(t, repo.MergeHistory(ctx, entries))

	sets, err = repo.LastCompletedSets(ctx, "Bench Press")
	assert.NoError(t, err)
	assert.Len(t, sets, 1)
	assert.Equal(t, "100", sets[0].Weight)
}

func TestSQLiteRepository_Completions(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	assert.NoError(t, repo.MarkCompleted(ctx, "hypertrophy", 1, "push"))
	assert.NoError(t, repo.MarkCompleted(ctx, "hypertrophy", 1, "pull"))
	// Marking twice is an update, not a duplicate
	assert.NoError(t, repo.MarkCompleted(ctx, "hypertrophy", 1, "push"))
	assert.NoError(t, repo.MarkCompleted(ctx, "hypertrophy", 2, "push"))

	days, err := repo.CompletedDays(ctx, "hypertrophy", 1)
	assert.NoError(t, err)
	assert.Len(t, days, 2)
	assert.Contains(t, days, "push")
	assert.Contains(t, days, "pull")

	days, err = repo.CompletedDays(ctx, "hypertrophy", 3)
	assert.NoError(t, err)
	assert.Empty(t, days)
}

func TestSQLiteRepository_CompletionStats(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	stats := domain.CompletionStats{
		DurationMinutes: 45,
		TotalVolume:     5200.5,
		Date:            "2026-03-14T19:00:00Z",
	}
	assert.NoError(t, repo.SaveCompletionStats(ctx, "hypertrophy", 1, "push", stats))

	// Re-finishing the same session overwrites its stats
	stats.DurationMinutes = 50
	assert.NoError(t, repo.SaveCompletionStats(ctx, "hypertrophy", 1, "push", stats))

	byWeek, err := repo.CompletionStatsByWeek(ctx, "hypertrophy", 1)
	assert.NoError(t, err)
	assert.Len(t, byWeek, 1)
	assert.Equal(t, 50, byWeek["push"].DurationMinutes)
	assert.Equal(t, 5200.5, byWeek["push"].TotalVolume)
}
