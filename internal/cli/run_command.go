package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aleksandrpnshkn/gnome-timer/internal/api"
	"github.com/aleksandrpnshkn/gnome-timer/internal/errors"
)

// RunCommand handles the run command
type RunCommand struct {
	api          api.API
	errorHandler *ErrorHandler
}

// NewRunCommand creates a new run command handler
func NewRunCommand(a api.API) *RunCommand {
	return &RunCommand{
		api:          a,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs a countdown in the foreground until it finishes or the process
// receives an interrupt.
func (c *RunCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "run", "usage: gtimer run <duration>")
	}

	if err := c.api.Start(ctx, args[0]); err != nil {
		return c.errorHandler.Handle("start countdown", err)
	}
	fmt.Printf("Counting down %s, Ctrl-C to stop\n", c.api.Status().Configured)

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := c.api.Wait(sigCtx); err != nil {
		// Interrupted before the countdown finished
		fmt.Println()
		if stopErr := c.api.Stop(context.Background()); stopErr != nil && !c.errorHandler.IsInvalidStateError(stopErr) {
			return c.errorHandler.Handle("stop countdown", stopErr)
		}
		fmt.Println("Countdown interrupted")
		return nil
	}

	fmt.Println()
	return nil
}
