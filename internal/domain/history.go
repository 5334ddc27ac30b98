package domain

import (
	"fmt"
	"sort"
	"time"
)

// LoggedDrop is a completed drop within a logged set
type LoggedDrop struct {
	Weight string `json:"weight"`
	Reps   string `json:"reps"`
}

// LoggedSet is one completed set as recorded into workout history
type LoggedSet struct {
	SetNumber int          `json:"setNumber"` // 1-based set position
	Weight    string       `json:"weight"`
	Reps      string       `json:"reps"`
	Drops     []LoggedDrop `json:"drops,omitempty"`
}

// HistoryEntry is the persisted record of one exercise on one calendar date
// within one workout day. Only completed sets are recorded.
type HistoryEntry struct {
	ID           string      `json:"id"`
	ExerciseName string      `json:"exerciseName"`
	Date         string      `json:"date"` // "2006-01-02"
	DayName      string      `json:"dayName"`
	Sets         []LoggedSet `json:"sets"`
}

// Key identifies the merge target: multiple sessions logging the same
// exercise on the same date under the same day collapse into one entry.
func (e HistoryEntry) Key() string {
	return fmt.Sprintf("%s|%s|%s", e.ExerciseName, e.Date, e.DayName)
}

// MergeSets merges incoming sets into existing ones keyed by set number;
// an incoming set replaces the existing set at the same position.
func MergeSets(existing, incoming []LoggedSet) []LoggedSet {
	byNumber := make(map[int]LoggedSet, len(existing)+len(incoming))
	for _, s := range existing {
		byNumber[s.SetNumber] = s
	}
	for _, s := range incoming {
		byNumber[s.SetNumber] = s
	}

	merged := make([]LoggedSet, 0, len(byNumber))
	for _, s := range byNumber {
		merged = append(merged, s)
	}
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].SetNumber < merged[j].SetNumber
	})
	return merged
}

// CollectHistory extracts one HistoryEntry per exercise slot with at least
// one completed set, logged under the currently selected variant's name.
func CollectHistory(specs []ExerciseSpec, state *SessionState, dayName string, date time.Time) []HistoryEntry {
	dateStr := date.Format("2006-01-02")
	var entries []HistoryEntry

	for slot, sets := range state.Exercises {
		if slot >= len(specs) {
			break
		}
		var logged []LoggedSet
		variant := 0
		for pos, entry := range sets {
			if !entry.Completed {
				continue
			}
			variant = entry.SelectedVariant
			set := LoggedSet{
				SetNumber: pos + 1,
				Weight:    entry.Weight,
				Reps:      entry.Reps,
			}
			for _, drop := range entry.Drops {
				if drop.Completed {
					set.Drops = append(set.Drops, LoggedDrop{Weight: drop.Weight, Reps: drop.Reps})
				}
			}
			logged = append(logged, set)
		}
		if len(logged) == 0 {
			continue
		}
		entries = append(entries, HistoryEntry{
			ExerciseName: specs[slot].VariantName(variant),
			Date:         dateStr,
			DayName:      dayName,
			Sets:         logged,
		})
	}

	return entries
}

// CompletionKey marks one finished (day, week) session within a block
func CompletionKey(dayName string, week int) string {
	return fmt.Sprintf("%s_week%d", dayName, week)
}

// CompletionStats is the per-session aggregate persisted at finish time
type CompletionStats struct {
	DurationMinutes int     `json:"duration"`
	TotalVolume     float64 `json:"totalVolume"`
	Date            string  `json:"date"` // RFC 3339
}
