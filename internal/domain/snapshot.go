package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// SessionSnapshot is the auto-saved in-progress session for one
// (workout day, block) slot.
type SessionSnapshot struct {
	Day              string         `json:"day"`
	BlockName        string         `json:"blockName"`
	AllSetsData      [][]SetEntry   `json:"allSetsData"`
	ExerciseNotes    map[int]string `json:"exerciseNotes"`
	SupersetLinks    map[int]bool   `json:"supersetLinks"`
	WorkoutStartTime *time.Time     `json:"workoutStartTime"`
	WorkoutDuration  int            `json:"workoutDuration"` // seconds
	SavedAt          time.Time      `json:"savedAt"`
	SpecFingerprint  string         `json:"specFingerprint"`
}

// SpecFingerprint identifies a day's exercise spec list. A restored
// snapshot is only applied when its fingerprint matches the current plan;
// a stale snapshot from an edited plan is discarded silently.
func SpecFingerprint(specs []ExerciseSpec) string {
	var b strings.Builder
	for _, s := range specs {
		fmt.Fprintf(&b, "%s|%d|%s|%s;", s.Name, s.TargetSets, s.RepScheme.Raw, strings.Join(s.Alternatives, ","))
	}
	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:8])
}
