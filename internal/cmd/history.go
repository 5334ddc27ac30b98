package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
)

// HistoryCmd shows the logged history for one exercise, newest first
type HistoryCmd struct {
	Exercise string `help:"Exercise name" arg:""`
	Limit    int    `help:"Maximum number of sessions to show" default:"10"`
}

// Run executes the history command
func (h *HistoryCmd) Run(cli *CLI) error {
	entries, err := cli.Container.Repository.HistoryByExercise(context.Background(), h.Exercise)
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	if len(entries) == 0 {
		fmt.Printf("No history for %q yet.\n", h.Exercise)
		return nil
	}

	if h.Limit > 0 && len(entries) > h.Limit {
		entries = entries[:h.Limit]
	}

	fmt.Printf("History - %s\n\n", h.Exercise)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Date\tDay\tSets")

	for _, entry := range entries {
		var sets []string
		for _, set := range entry.Sets {
			s := fmt.Sprintf("%s×%s", set.Weight, set.Reps)
			if len(set.Drops) > 0 {
				var drops []string
				for _, d := range set.Drops {
					drops = append(drops, fmt.Sprintf("%s×%s", d.Weight, d.Reps))
				}
				s += fmt.Sprintf(" (drop: %s)", strings.Join(drops, ", "))
			}
			sets = append(sets, s)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", entry.Date, entry.DayName, strings.Join(sets, "  "))
	}

	return w.Flush()
}
