package cli

import (
	"context"
	"fmt"

	"github.com/aleksandrpnshkn/gnome-timer/internal/api"
	"github.com/aleksandrpnshkn/gnome-timer/internal/services"
)

// HistoryCommand handles the history command
type HistoryCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewHistoryCommand creates a new history command handler
func NewHistoryCommand(a api.API) *HistoryCommand {
	return &HistoryCommand{
		api:          a,
		errorHandler: NewErrorHandler(),
	}
}

// Execute lists recorded countdowns, optionally filtered by a time shorthand
// and the completed flag.
func (c *HistoryCommand) Execute(ctx context.Context, args []string, completedOnly bool) error {
	since := ""
	if len(args) > 0 {
		since = args[0]
	}

	var entries []*services.HistoryEntry
	var err error
	if since == "" && !completedOnly {
		entries, err = c.api.ListHistory(ctx)
	} else {
		entries, err = c.api.SearchHistory(ctx, since, completedOnly)
	}
	if err != nil {
		return c.errorHandler.Handle("list history", err)
	}

	if len(entries) == 0 {
		fmt.Println("No recorded countdowns found")
		return nil
	}

	fmt.Printf("%-20s  %-9s  %s\n", "STARTED", "DURATION", "OUTCOME")
	for _, entry := range entries {
		fmt.Printf("%-20s  %-9s  %s\n",
			entry.Countdown.StartedAt.Local().Format("2006-01-02 15:04:05"),
			entry.Duration,
			entry.Outcome,
		)
	}
	fmt.Printf("\n%d recorded countdown(s)\n", len(entries))
	return nil
}
