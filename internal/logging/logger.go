package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level string
}

// NewLogger creates a zerolog logger with the configured level. In the local
// environment output goes through the console writer for readability.
func NewLogger(cfg Config, environment string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Logger{}, err
	}
	logger := zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
	if environment == "local" {
		logger = logger.Output(zerolog.ConsoleWriter{
			Out: os.Stderr,
		})
	}
	return logger, nil
}

// NewNop returns a logger that discards everything. Used in tests.
func NewNop() zerolog.Logger {
	return zerolog.Nop()
}
