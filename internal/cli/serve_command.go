package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/aleksandrpnshkn/gnome-timer/internal/statusd"
)

// ServeCommand handles the serve command
type ServeCommand struct {
	server *statusd.Server
	logger zerolog.Logger
}

// NewServeCommand creates a new serve command handler
func NewServeCommand(server *statusd.Server, logger zerolog.Logger) *ServeCommand {
	return &ServeCommand{
		server: server,
		logger: logger,
	}
}

// Execute runs the status daemon until a termination signal arrives.
func (c *ServeCommand) Execute(ctx context.Context) error {
	go c.server.Start()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	signal.Notify(stop, syscall.SIGTERM)

	select {
	case stopped := <-stop:
		c.logger.Info().Msg(fmt.Sprintf("%s signal received", stopped.String()))
	case <-ctx.Done():
	}

	c.server.Shutdown()
	c.logger.Info().Msg("status daemon has stopped")
	return nil
}
