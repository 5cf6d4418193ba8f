package main

import (
	"fmt"

	"github.com/awalczak/govnotice"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	active := true
	filter := govnotice.NotificationFilter{
		IsActive: &active,
		Offset:   (c.Page - 1) * c.Limit,
		Limit:    c.Limit,
	}
	if c.Category != "" {
		category := govnotice.Category(c.Category)
		if !govnotice.ValidCategory(category) {
			err := govnotice.Errorf(govnotice.EINVALID, "Unknown category %q.", c.Category)
			fmt.Fprintf(deps.Stderr, "error: %s\n", govnotice.ErrorMessage(err))
			return err
		}
		filter.Category = &category
	}

	notifications, total, err := deps.Notifications.FindNotifications(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", govnotice.ErrorMessage(err))
		return err
	}

	if total == 0 {
		fmt.Fprintln(deps.Stdout, "No notifications found. Use 'govnotice scrape' to collect some.")
		return nil
	}

	for _, n := range notifications {
		fmt.Fprintf(deps.Stdout, "%s  %s  [%s]  %s\n",
			n.ID, n.PublishedDate.Format("2006-01-02"), n.Category, govnotice.Truncate(n.Title, 80))
	}
	fmt.Fprintf(deps.Stdout, "Page %d of %d (%d total)\n", c.Page, (total+c.Limit-1)/c.Limit, total)

	return nil
}
