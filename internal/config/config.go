package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/aleksandrpnshkn/gnome-timer/internal/logging"
)

// Config holds all configuration options for the countdown timer application
type Config struct {
	Environment string
	Log         logging.Config
	Refresh     RefreshConfig
	Database    DatabaseConfig
	Notify      NotifyConfig
	Display     DisplayConfig
	Server      ServerConfig
	History     HistoryConfig
}

// RefreshConfig holds refresh-loop configuration
type RefreshConfig struct {
	Interval time.Duration
}

// DatabaseConfig holds history database configuration
type DatabaseConfig struct {
	Dir          string
	Filename     string
	QueryTimeout time.Duration
	WriteTimeout time.Duration
}

// NotifyConfig holds completion notification configuration
type NotifyConfig struct {
	Enabled bool
	Command string
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	DoneText string
}

// ServerConfig holds status daemon configuration
type ServerConfig struct {
	Port               string
	TimeoutSec         int
	RequestPerSecLimit int
	AllowedOrigins     []string
}

// HistoryConfig holds countdown history configuration
type HistoryConfig struct {
	Enabled bool
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".gtimer")

	return &Config{
		Environment: "local",
		Log: logging.Config{
			Level: "info",
		},
		Refresh: RefreshConfig{
			Interval: 500 * time.Millisecond,
		},
		Database: DatabaseConfig{
			Dir:          defaultDBDir,
			Filename:     "gtimer.db",
			QueryTimeout: 10 * time.Second,
			WriteTimeout: 5 * time.Second,
		},
		Notify: NotifyConfig{
			Enabled: true,
			Command: "notify-send",
		},
		Display: DisplayConfig{
			DoneText: "Time is up!",
		},
		Server: ServerConfig{
			Port:               "8642",
			TimeoutSec:         60,
			RequestPerSecLimit: 100,
			AllowedOrigins:     []string{"*"},
		},
		History: HistoryConfig{
			Enabled: true,
		},
	}
}

// GetDatabasePath returns the full path to the history database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// EnsureDatabaseDir creates the database directory if it does not exist
func (c *Config) EnsureDatabaseDir() error {
	return os.MkdirAll(c.Database.Dir, 0755)
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate refresh configuration
	if c.Refresh.Interval <= 0 {
		return &ConfigError{Field: "refresh.interval", Message: "refresh interval must be positive"}
	}

	// Validate database configuration
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	// Validate notify configuration
	if c.Notify.Enabled && c.Notify.Command == "" {
		return &ConfigError{Field: "notify.command", Message: "notification command cannot be empty when notifications are enabled"}
	}

	// Validate display configuration
	if c.Display.DoneText == "" {
		return &ConfigError{Field: "display.done_text", Message: "done text cannot be empty"}
	}

	// Validate server configuration
	if c.Server.Port == "" {
		return &ConfigError{Field: "server.port", Message: "server port cannot be empty"}
	}
	if c.Server.TimeoutSec <= 0 {
		return &ConfigError{Field: "server.timeout_sec", Message: "server timeout must be positive"}
	}
	if c.Server.RequestPerSecLimit <= 0 {
		return &ConfigError{Field: "server.request_per_sec_limit", Message: "request rate limit must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
