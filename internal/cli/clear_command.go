package cli

import (
	"context"
	"fmt"

	"github.com/aleksandrpnshkn/gnome-timer/internal/api"
)

// ClearCommand handles the clear command
type ClearCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewClearCommand creates a new clear command handler
func NewClearCommand(a api.API) *ClearCommand {
	return &ClearCommand{
		api:          a,
		errorHandler: NewErrorHandler(),
	}
}

// Execute deletes all recorded countdowns.
func (c *ClearCommand) Execute(ctx context.Context) error {
	deleted, err := c.api.ClearHistory(ctx)
	if err != nil {
		return c.errorHandler.Handle("clear history", err)
	}

	fmt.Printf("Cleared %d recorded countdown(s)\n", deleted)
	return nil
}
