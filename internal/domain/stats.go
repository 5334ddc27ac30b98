package domain

import (
	"fmt"
	"strconv"
)

// SessionStats is the aggregate produced at workout-finish time
type SessionStats struct {
	TotalVolume        float64
	CompletedSets      int
	TotalSets          int
	ExercisesCompleted int
	DurationSeconds    int
}

// ComputeStats reduces a session into aggregate stats. Pure and idempotent:
// it never mutates the session and the same state always yields the same
// result.
func ComputeStats(s *SessionState) SessionStats {
	stats := SessionStats{DurationSeconds: s.Duration}

	for _, sets := range s.Exercises {
		exerciseHasCompleted := false
		for _, entry := range sets {
			stats.TotalSets++
			if !entry.Completed {
				continue
			}
			stats.CompletedSets++
			exerciseHasCompleted = true
			stats.TotalVolume += setVolume(entry.Weight, entry.Reps)
			for _, drop := range entry.Drops {
				// Incomplete drops do not count toward volume
				if drop.Completed {
					stats.TotalVolume += setVolume(drop.Weight, drop.Reps)
				}
			}
		}
		if exerciseHasCompleted {
			stats.ExercisesCompleted++
		}
	}

	return stats
}

// setVolume multiplies weight×reps, treating unparseable text as zero
func setVolume(weight, reps string) float64 {
	w, err := strconv.ParseFloat(weight, 64)
	if err != nil {
		return 0
	}
	r, err := strconv.Atoi(reps)
	if err != nil {
		return 0
	}
	return w * float64(r)
}

// FormatDuration renders seconds as H:MM:SS when at least an hour has
// elapsed, M:SS otherwise.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
