package domain

// Default rest durations applied when a plan leaves the hints unset
const (
	DefaultOptimalRestSeconds = 120
	DefaultQuickRestSeconds   = 60
)

// ExerciseSpec is one exercise slot in a workout day as declared by the
// training plan. Immutable input to a session; never mutated by logging.
type ExerciseSpec struct {
	Name               string
	TargetSets         int
	RepScheme          RepScheme
	Alternatives       []string
	OptimalRestSeconds int
	QuickRestSeconds   int
	Notes              string
}

// VariantName returns the exercise name for a variant index, where 0 is the
// primary exercise and 1..N map onto Alternatives. Out-of-range indices fall
// back to the primary name.
func (e ExerciseSpec) VariantName(variant int) string {
	if variant <= 0 || variant > len(e.Alternatives) {
		return e.Name
	}
	return e.Alternatives[variant-1]
}

// VariantCount returns how many selectable variants the slot has
func (e ExerciseSpec) VariantCount() int {
	return 1 + len(e.Alternatives)
}

// OptimalRest returns the configured optimal rest with the default applied
func (e ExerciseSpec) OptimalRest() int {
	if e.OptimalRestSeconds > 0 {
		return e.OptimalRestSeconds
	}
	return DefaultOptimalRestSeconds
}

// QuickRest returns the configured quick rest with the default applied
func (e ExerciseSpec) QuickRest() int {
	if e.QuickRestSeconds > 0 {
		return e.QuickRestSeconds
	}
	return DefaultQuickRestSeconds
}
