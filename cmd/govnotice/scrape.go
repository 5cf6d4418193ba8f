package main

import (
	"fmt"

	"github.com/awalczak/govnotice"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	result, err := deps.Scraper.Scrape(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", govnotice.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Scraped %d candidates: %d new, %d skipped\n",
		result.Candidates, result.Created, result.Skipped)

	for _, n := range result.Notifications {
		fmt.Fprintf(deps.Stdout, "%s  [%s]  %s\n", n.ID, n.Category, govnotice.Truncate(n.Title, 80))
	}

	return nil
}
