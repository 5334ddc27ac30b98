package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeStats_CountsOnlyCompletedSets(t *testing.T) {
	state := &SessionState{
		Duration: 600,
		Exercises: [][]SetEntry{
			{
				{Weight: "100", Reps: "8", Completed: true},
				{Weight: "100", Reps: "8", Completed: false},
			},
			{
				{Weight: "60", Reps: "10", Completed: false},
			},
		},
	}

	stats := ComputeStats(state)

	assert.Equal(t, 800.0, stats.TotalVolume)
	assert.Equal(t, 1, stats.CompletedSets)
	assert.Equal(t, 3, stats.TotalSets)
	assert.Equal(t, 1, stats.ExercisesCompleted)
	assert.Equal(t, 600, stats.DurationSeconds)
}

func TestComputeStats_DropVolume(t *testing.T) {
	state := &SessionState{
		Exercises: [][]SetEntry{
			{
				{
					Weight: "100", Reps: "8", Completed: true,
					Drops: []DropSet{
						{Weight: "80", Reps: "6", Completed: true},
						{Weight: "60", Reps: "6", Completed: false},
					},
				},
				{
					// Completed drops under an incomplete main set never count
					Weight: "100", Reps: "8", Completed: false,
					Drops: []DropSet{
						{Weight: "80", Reps: "6", Completed: true},
					},
				},
			},
		},
	}

	stats := ComputeStats(state)

	assert.Equal(t, 800.0+480.0, stats.TotalVolume)
	assert.Equal(t, 1, stats.CompletedSets)
}

func TestComputeStats_UnparseableFieldsContributeZero(t *testing.T) {
	state := &SessionState{
		Exercises: [][]SetEntry{
			{
				{Weight: "", Reps: "8", Completed: true},
				{Weight: "100", Reps: "bodyweight", Completed: true},
				{Weight: "62.5", Reps: "10", Completed: true},
			},
		},
	}

	stats := ComputeStats(state)

	assert.Equal(t, 625.0, stats.TotalVolume)
	assert.Equal(t, 3, stats.CompletedSets)
	assert.Equal(t, 1, stats.ExercisesCompleted)
}

func TestComputeStats_Idempotent(t *testing.T) {
	state := &SessionState{
		Duration: 120,
		Exercises: [][]SetEntry{
			{{Weight: "50", Reps: "12", Completed: true}},
		},
	}

	first := ComputeStats(state)
	second := ComputeStats(state)

	assert.Equal(t, first, second)
	assert.Equal(t, "50", state.Exercises[0][0].Weight)
	assert.True(t, state.Exercises[0][0].Completed)
}

func TestComputeStats_EmptySession(t *testing.T) {
	stats := ComputeStats(&SessionState{})

	assert.Zero(t, stats.TotalVolume)
	assert.Zero(t, stats.TotalSets)
	assert.Zero(t, stats.ExercisesCompleted)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		seconds  int
		expected string
	}{
		{"under a minute", 45, "0:45"},
		{"minutes and seconds", 754, "12:34"},
		{"exactly an hour", 3600, "1:00:00"},
		{"over an hour", 3725, "1:02:05"},
		{"zero", 0, "0:00"},
		{"negative clamps to zero", -5, "0:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDuration(tt.seconds))
		})
	}
}
