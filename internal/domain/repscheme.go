package domain

import (
	"regexp"
	"strconv"
	"strings"
)

// SchemeKind classifies how a rep-scheme string is interpreted
type SchemeKind string

const (
	// SchemeStraight is a single range applied to every set ("8-12")
	SchemeStraight SchemeKind = "straight"
	// SchemeWeekly is a per-week progression ("Week 1: 8-10, Week 2: 6-8")
	SchemeWeekly SchemeKind = "weekly"
	// SchemePyramid is a per-set descending/ascending sequence ("12-10-8")
	SchemePyramid SchemeKind = "pyramid"
)

// RepRange is one parsed rep target. Raw keeps the verbatim text so views
// can display exactly what the plan author wrote.
type RepRange struct {
	Raw string
	Min int
	Max int
}

// RepScheme is the parsed form of a plan's rep-scheme string, computed once
// at plan ingestion instead of re-parsed on every render.
type RepScheme struct {
	Kind  SchemeKind
	Raw   string
	Weeks []RepRange // populated for SchemeWeekly, index 0 = week 1
	Steps []RepRange // populated for SchemePyramid, index 0 = set 1
	Range RepRange   // populated for SchemeStraight
}

// weekEntryRe matches "Week 1: 8-10" style entries
var weekEntryRe = regexp.MustCompile(`(?i)week\s*(\d+)\s*:\s*([^,;]+)`)

// ParseRepScheme classifies a rep-scheme string into exactly one of the
// three scheme kinds. Total: every input maps to a scheme, malformed input
// degrades to SchemeStraight with the raw text kept verbatim.
func ParseRepScheme(raw string) RepScheme {
	trimmed := strings.TrimSpace(raw)

	// Weekly long form: literal "Week" token followed by "N: range" pairs
	if matches := weekEntryRe.FindAllStringSubmatch(trimmed, -1); len(matches) > 0 {
		weeks := parseWeekEntries(matches)
		if len(weeks) > 0 {
			return RepScheme{Kind: SchemeWeekly, Raw: raw, Weeks: weeks}
		}
	}

	// Weekly shorthand: colon-delimited ranges ("8-10:6-8:4-6")
	if strings.Contains(trimmed, ":") && !strings.Contains(strings.ToLower(trimmed), "week") {
		parts := strings.Split(trimmed, ":")
		weeks := make([]RepRange, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				weeks = append(weeks, ParseRepRange(p))
			}
		}
		if len(weeks) > 0 {
			return RepScheme{Kind: SchemeWeekly, Raw: raw, Weeks: weeks}
		}
	}

	// Pyramid: three or more hyphen-separated integers
	if parts := strings.Split(trimmed, "-"); len(parts) >= 3 {
		steps := make([]RepRange, 0, len(parts))
		allInts := true
		for _, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				allInts = false
				break
			}
			steps = append(steps, RepRange{Raw: strings.TrimSpace(p), Min: n, Max: n})
		}
		if allInts {
			return RepScheme{Kind: SchemePyramid, Raw: raw, Steps: steps}
		}
	}

	// Everything else is taken verbatim as a flat range
	return RepScheme{Kind: SchemeStraight, Raw: raw, Range: ParseRepRange(trimmed)}
}

// parseWeekEntries orders week entries by their declared week number,
// filling a dense slice so ForWeek can index directly.
func parseWeekEntries(matches [][]string) []RepRange {
	byWeek := make(map[int]RepRange)
	maxWeek := 0
	for _, m := range matches {
		week, err := strconv.Atoi(m[1])
		if err != nil || week < 1 {
			continue
		}
		byWeek[week] = ParseRepRange(strings.TrimSpace(m[2]))
		if week > maxWeek {
			maxWeek = week
		}
	}
	if maxWeek == 0 {
		return nil
	}

	weeks := make([]RepRange, maxWeek)
	last := RepRange{}
	for w := 1; w <= maxWeek; w++ {
		if r, ok := byWeek[w]; ok {
			last = r
		}
		// Gaps inherit the previous declared week
		weeks[w-1] = last
	}
	return weeks
}

// ParseRepRange parses "8-10", "8" or free text into a RepRange.
// Non-numeric text yields Min=Max=0 with Raw preserved.
func ParseRepRange(raw string) RepRange {
	r := RepRange{Raw: raw}
	parts := strings.SplitN(raw, "-", 2)
	if n, err := strconv.Atoi(strings.TrimSpace(parts[0])); err == nil {
		r.Min = n
		r.Max = n
	}
	if len(parts) == 2 {
		if n, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil {
			r.Max = n
		}
	}
	return r
}

// ForWeek returns the rep range for a 1-based week, clamped to the last
// defined week when the plan runs longer than the scheme.
func (s RepScheme) ForWeek(week int) RepRange {
	switch s.Kind {
	case SchemeWeekly:
		if len(s.Weeks) == 0 {
			return RepRange{Raw: s.Raw}
		}
		idx := week - 1
		if idx < 0 {
			idx = 0
		}
		if idx >= len(s.Weeks) {
			idx = len(s.Weeks) - 1
		}
		return s.Weeks[idx]
	case SchemePyramid:
		// Pyramids do not vary by week; show the full sequence
		return RepRange{Raw: s.Raw}
	default:
		return s.Range
	}
}

// TargetReps returns the suggested rep count for a 0-based set position in
// the given 1-based week. Zero means no numeric suggestion is available.
func (s RepScheme) TargetReps(week, setIndex int) int {
	switch s.Kind {
	case SchemePyramid:
		if len(s.Steps) == 0 {
			return 0
		}
		if setIndex < 0 {
			setIndex = 0
		}
		if setIndex >= len(s.Steps) {
			setIndex = len(s.Steps) - 1
		}
		return s.Steps[setIndex].Min
	default:
		return s.ForWeek(week).Min
	}
}
