package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
)

// PlansCmd lists the training blocks and days in the plan file
type PlansCmd struct{}

// Run executes the plans command
func (p *PlansCmd) Run(cli *CLI) error {
	plan, err := cli.Container.LoadPlan()
	if err != nil {
		return err
	}

	fmt.Printf("Plan file: %s\n", cli.Container.PlanPath())

	for _, block := range plan.Blocks {
		fmt.Printf("\n%s (%d weeks)\n", block.Name, block.Weeks)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, day := range block.Days {
			fmt.Fprintf(w, "  %s\t%d exercises\n", day.Name, len(day.Exercises))
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	return nil
}
