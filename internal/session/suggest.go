package session

import (
	"fmt"
	"strconv"

	"ferro/internal/domain"
)

// DropSuggestion tunes the drop-set placeholder heuristic. The defaults
// mirror common drop-set practice: first drop at 80% of the main set's
// weight with two extra reps, later drops chaining at 85% of the previous
// drop. A product heuristic, not a contract; callers may override it.
type DropSuggestion struct {
	FirstWeightFactor float64
	ChainWeightFactor float64
	ExtraReps         int
}

// DefaultDropSuggestion returns the stock heuristic
func DefaultDropSuggestion() DropSuggestion {
	return DropSuggestion{
		FirstWeightFactor: 0.80,
		ChainWeightFactor: 0.85,
		ExtraReps:         2,
	}
}

// Suggest computes placeholder weight/reps for the drop at dropIndex within
// a set entry. Empty strings mean no suggestion is available (the main set
// has no parseable numbers yet). Suggestions are display-only.
func (d DropSuggestion) Suggest(entry *domain.SetEntry, dropIndex int) (weight, reps string) {
	baseWeight := entry.Weight
	baseReps := entry.Reps
	factor := d.FirstWeightFactor
	if dropIndex > 0 && dropIndex-1 < len(entry.Drops) {
		prev := entry.Drops[dropIndex-1]
		if prev.Weight != "" {
			baseWeight = prev.Weight
		}
		if prev.Reps != "" {
			baseReps = prev.Reps
		}
		factor = d.ChainWeightFactor
	}

	if w, err := strconv.ParseFloat(baseWeight, 64); err == nil {
		weight = formatWeight(w * factor)
	}
	if r, err := strconv.Atoi(baseReps); err == nil {
		reps = strconv.Itoa(r + d.ExtraReps)
	}
	return weight, reps
}

// formatWeight trims trailing zeros so 48.0 renders as "48"
func formatWeight(w float64) string {
	if w == float64(int64(w)) {
		return strconv.FormatInt(int64(w), 10)
	}
	return fmt.Sprintf("%.1f", w)
}
