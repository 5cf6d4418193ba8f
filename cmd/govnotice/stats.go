package main

import (
	"fmt"

	"github.com/awalczak/govnotice"
)

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	counts, err := deps.Notifications.CategoryCounts(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", govnotice.ErrorMessage(err))
		return err
	}

	total := 0
	for _, category := range govnotice.Categories {
		n := counts[category]
		total += n
		fmt.Fprintf(deps.Stdout, "%-12s %d\n", category, n)
	}
	fmt.Fprintf(deps.Stdout, "%-12s %d\n", "total", total)

	return nil
}
