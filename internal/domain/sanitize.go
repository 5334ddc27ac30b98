package domain

import "strings"

// SanitizeWeight strips everything except digits and at most one decimal
// point from a weight input. Invalid characters are dropped silently; this
// is normal input handling, not an error path.
func SanitizeWeight(raw string) string {
	var b strings.Builder
	seenDot := false
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case (r == '.' || r == ',') && !seenDot:
			b.WriteByte('.')
			seenDot = true
		}
	}
	return b.String()
}

// SanitizeReps strips everything except digits from a reps input
func SanitizeReps(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
