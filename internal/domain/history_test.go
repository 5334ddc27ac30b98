package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCollectHistory_OnlyCompletedSets(t *testing.T) {
	specs := []ExerciseSpec{
		{Name: "Bench Press", TargetSets: 3},
		{Name: "Row", TargetSets: 2},
	}
	state := &SessionState{
		Exercises: [][]SetEntry{
			{
				{Weight: "100", Reps: "8", Completed: true},
				{Weight: "100", Reps: "7", Completed: false},
				{Weight: "95", Reps: "8", Completed: true},
			},
			{
				{Weight: "70", Reps: "10", Completed: false},
				{Weight: "70", Reps: "10", Completed: false},
			},
		},
	}

	entries := CollectHistory(specs, state, "push", time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC))

	// Row has no completed sets and produces no entry at all
	assert.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, "Bench Press", entry.ExerciseName)
	assert.Equal(t, "2026-03-14", entry.Date)
	assert.Equal(t, "push", entry.DayName)
	assert.Len(t, entry.Sets, 2)
	assert.Equal(t, 1, entry.Sets[0].SetNumber)
	assert.Equal(t, 3, entry.Sets[1].SetNumber)
	assert.Equal(t, "95", entry.Sets[1].Weight)
}

func TestCollectHistory_LogsUnderSelectedVariant(t *testing.T) {
	specs := []ExerciseSpec{
		{Name: "Barbell Squat", TargetSets: 2, Alternatives: []string{"Leg Press"}},
	}
	state := &SessionState{
		Exercises: [][]SetEntry{
			{
				{Weight: "120", Reps: "10", Completed: true, SelectedVariant: 1},
				{Weight: "120", Reps: "8", Completed: true, SelectedVariant: 1},
			},
		},
	}

	entries := CollectHistory(specs, state, "legs", time.Now())

	assert.Len(t, entries, 1)
	assert.Equal(t, "Leg Press", entries[0].ExerciseName)
}

func TestCollectHistory_DropsOnlyWhenCompleted(t *testing.T) {
	specs := []ExerciseSpec{{Name: "Curl", TargetSets: 1}}
	state := &SessionState{
		Exercises: [][]SetEntry{
			{
				{
					Weight: "20", Reps: "12", Completed: true,
					Drops: []DropSet{
						{Weight: "15", Reps: "10", Completed: true},
						{Weight: "10", Reps: "8", Completed: false},
					},
				},
			},
		},
	}

	entries := CollectHistory(specs, state, "arms", time.Now())

	assert.Len(t, entries, 1)
	assert.Len(t, entries[0].Sets[0].Drops, 1)
	assert.Equal(t, "15", entries[0].Sets[0].Drops[0].Weight)
}

func TestMergeSets_IncomingReplacesSamePosition(t *testing.T) {
	existing := []LoggedSet{
		{SetNumber: 1, Weight: "100", Reps: "8"},
		{SetNumber: 2, Weight: "100", Reps: "7"},
	}
	incoming := []LoggedSet{
		{SetNumber: 2, Weight: "105", Reps: "6"},
		{SetNumber: 3, Weight: "105", Reps: "5"},
	}

	merged := MergeSets(existing, incoming)

	assert.Len(t, merged, 3)
	assert.Equal(t, "100", merged[0].Weight)
	assert.Equal(t, "105", merged[1].Weight)
	assert.Equal(t, 3, merged[2].SetNumber)
}

func TestMergeSets_SortedBySetNumber(t *testing.T) {
	merged := MergeSets(
		[]LoggedSet{{SetNumber: 3}, {SetNumber: 1}},
		[]LoggedSet{{SetNumber: 2}},
	)

	assert.Equal(t, []int{1, 2, 3}, []int{merged[0].SetNumber, merged[1].SetNumber, merged[2].SetNumber})
}

func TestHistoryEntryKey(t *testing.T) {
	a := HistoryEntry{ExerciseName: "Bench Press", Date: "2026-03-14", DayName: "push"}
	b := HistoryEntry{ExerciseName: "Bench Press", Date: "2026-03-14", DayName: "push"}
	c := HistoryEntry{ExerciseName: "Bench Press", Date: "2026-03-14", DayName: "pull"}

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
}

func TestSpecFingerprint(t *testing.T) {
	specs := []ExerciseSpec{
		{Name: "Bench Press", TargetSets: 3, RepScheme: ParseRepScheme("8-12")},
	}

	same := SpecFingerprint(specs)
	assert.Equal(t, same, SpecFingerprint(specs))

	edited := []ExerciseSpec{
		{Name: "Bench Press", TargetSets: 4, RepScheme: ParseRepScheme("8-12")},
	}
	assert.NotEqual(t, same, SpecFingerprint(edited))
}

func TestVariantSnapshotRoundTrip(t *testing.T) {
	entry := SetEntry{
		Weight: "80", Reps: "10", Completed: true, IsDropSet: true,
		Drops: []DropSet{{Weight: "60", Reps: "8", Completed: true}},
	}

	snap := entry.Snapshot()
	entry.Clear()

	assert.Empty(t, entry.Weight)
	assert.False(t, entry.Completed)
	assert.Nil(t, entry.Drops)

	entry.Restore(snap)

	assert.Equal(t, "80", entry.Weight)
	assert.True(t, entry.IsDropSet)
	assert.Len(t, entry.Drops, 1)
}
