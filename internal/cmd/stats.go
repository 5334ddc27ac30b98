package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
)

// StatsCmd shows completed sessions and aggregates for one plan week
type StatsCmd struct {
	Block string `help:"Training block name (defaults to the plan's first block)"`
	Week  int    `help:"Plan week number" default:"1"`
}

// Run executes the stats command
func (s *StatsCmd) Run(cli *CLI) error {
	plan, err := cli.Container.LoadPlan()
	if err != nil {
		return err
	}
	block, err := plan.Block(s.Block)
	if err != nil {
		return err
	}

	ctx := context.Background()
	completed, err := cli.Container.Repository.CompletedDays(ctx, block.Name, s.Week)
	if err != nil {
		return fmt.Errorf("failed to load completed days: %w", err)
	}
	stats, err := cli.Container.Repository.CompletionStatsByWeek(ctx, block.Name, s.Week)
	if err != nil {
		return fmt.Errorf("failed to load completion stats: %w", err)
	}

	fmt.Printf("%s - week %d\n\n", block.Name, s.Week)

	completedSet := make(map[string]bool, len(completed))
	for _, day := range completed {
		completedSet[day] = true
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Day\tDone\tDuration\tVolume")

	for _, day := range block.Days {
		mark := "·"
		duration := "-"
		volume := "-"
		if completedSet[day.Name] {
			mark = "✓"
		}
		if st, ok := stats[day.Name]; ok {
			duration = fmt.Sprintf("%dm", st.DurationMinutes)
			volume = fmt.Sprintf("%.1f", st.TotalVolume)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", day.Name, mark, duration, volume)
	}

	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d/%d days completed\n", len(completed), len(block.Days))
	return nil
}
