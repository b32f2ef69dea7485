package cli

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/aleksandrpnshkn/gnome-timer/internal/api"
	"github.com/aleksandrpnshkn/gnome-timer/internal/config"
	"github.com/aleksandrpnshkn/gnome-timer/internal/statusd"
)

// Mode selects the presentation wiring for the command being executed.
// Foreground commands own the terminal and rewrite the countdown line on
// stdout. The daemon broadcasts updates to its websocket subscribers instead,
// so its stdout stays free for logs.
type Mode string

const (
	ModeForeground Mode = "foreground"
	ModeDaemon     Mode = "daemon"
)

// Factory builds the countdown API and the status daemon from the effective
// configuration. It runs after flag overrides are applied so every component
// sees the final settings.
type Factory func(cfg *config.Config, log zerolog.Logger, mode Mode) (api.API, *statusd.Server, error)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	config  *config.Config
	logger  zerolog.Logger
	factory Factory
	api     api.API
	server  *statusd.Server
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(cfg *config.Config, log zerolog.Logger, factory Factory) *RootCommand {
	root := &RootCommand{
		config:  cfg,
		logger:  log,
		factory: factory,
	}

	root.cmd = &cobra.Command{
		Use:   "gtimer",
		Short: "A command-line countdown timer",
		Long: `Gnome Timer (gtimer) is a command-line countdown timer with desktop
notifications, a run history and a status daemon for external displays.

FEATURES:
  • Countdowns that stay accurate across host sleep and delayed wakeups
  • Desktop notification and terminal bell when the countdown finishes
  • SQLite-backed history of completed and interrupted countdowns
  • Status daemon exposing the countdown over HTTP and websocket
  • Fully configurable via environment variables and command-line flags

EXAMPLES:
  gtimer run 25:00                         # Run a 25 minute countdown
  gtimer run 90                            # Run a 90 second countdown
  gtimer run 1h30m                         # Run using Go duration notation
  gtimer serve                             # Start the status daemon
  gtimer history                           # Show all recorded countdowns
  gtimer history 2h                        # Show countdowns from the last 2 hours
  gtimer history 1w --completed            # Completed countdowns from the last week
  gtimer clear                             # Delete all recorded countdowns

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > gtimer.yaml > defaults

  Database Configuration:
    GTIMER_DATABASE_DIR                    Database directory (default: ~/.gtimer)
    GTIMER_DATABASE_FILENAME               Database filename (default: gtimer.db)

  Refresh Configuration:
    GTIMER_REFRESH_INTERVAL                Display refresh interval (default: 500ms)

  Notification Configuration:
    GTIMER_NOTIFY_ENABLED                  Send a desktop notification on completion (default: true)
    GTIMER_NOTIFY_COMMAND                  Notification command (default: notify-send)

  Display Configuration:
    GTIMER_DISPLAY_DONETEXT                Text shown when the countdown finishes (default: Time is up!)

  Daemon Configuration:
    GTIMER_SERVER_PORT                     Status daemon port (default: 8642)

  Logging Configuration:
    GTIMER_LOG_LEVEL                       Log level (default: info)

TIME FORMATS:
  Countdown durations: 90 (seconds), 25:00 or 1:25:00 (colon notation), 25m or 1h30m (Go notation)
  History filters: 30m, 2h, 1d, 2w, 3mo, 1y

GETTING HELP:
  gtimer [command] --help                  # Get help for any specific command`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Apply configuration overrides from flags before wiring anything
			if err := root.getConfigFromFlags(); err != nil {
				return err
			}
			mode := ModeForeground
			if cmd.Name() == "serve" {
				mode = ModeDaemon
			}
			a, server, err := root.factory(root.config, root.logger, mode)
			if err != nil {
				return err
			}
			root.api = a
			root.server = server
			return nil
		},
	}

	// Add global flags for configuration overrides
	root.addGlobalFlags()

	// Add all subcommands
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Database configuration
	flags.String("db-dir", "", "Database directory (overrides GTIMER_DATABASE_DIR)")
	flags.String("db-filename", "", "Database filename (overrides GTIMER_DATABASE_FILENAME)")

	// Refresh configuration
	flags.Duration("refresh-interval", 0, "Display refresh interval (overrides GTIMER_REFRESH_INTERVAL)")

	// Notification configuration
	flags.Bool("no-notify", false, "Disable the completion notification (overrides GTIMER_NOTIFY_ENABLED)")

	// Display configuration
	flags.String("done-text", "", "Completion text (overrides GTIMER_DISPLAY_DONETEXT)")

	// Daemon configuration
	flags.String("port", "", "Status daemon port (overrides GTIMER_SERVER_PORT)")

	// Logging configuration
	flags.String("log-level", "", "Log level (overrides GTIMER_LOG_LEVEL)")
}

// getConfigFromFlags applies command-line flag overrides to the configuration
func (r *RootCommand) getConfigFromFlags() error {
	flags := r.cmd.PersistentFlags()

	if dbDir, _ := flags.GetString("db-dir"); dbDir != "" {
		r.config.Database.Dir = dbDir
	}
	if dbFilename, _ := flags.GetString("db-filename"); dbFilename != "" {
		r.config.Database.Filename = dbFilename
	}
	if interval, _ := flags.GetDuration("refresh-interval"); interval > 0 {
		r.config.Refresh.Interval = interval
	}
	if noNotify, _ := flags.GetBool("no-notify"); noNotify {
		r.config.Notify.Enabled = false
	}
	if doneText, _ := flags.GetString("done-text"); doneText != "" {
		r.config.Display.DoneText = doneText
	}
	if port, _ := flags.GetString("port"); port != "" {
		r.config.Server.Port = port
	}
	if logLevel, _ := flags.GetString("log-level"); logLevel != "" {
		r.config.Log.Level = logLevel
	}

	return r.config.Validate()
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	// Run command
	runCmd := &cobra.Command{
		Use:   "run <duration>",
		Short: "Run a countdown in the foreground",
		Long: `Run a countdown in the terminal, refreshing the remaining time until it
reaches zero. Interrupting with Ctrl-C stops the countdown and records it as
interrupted.

Duration formats:
  gtimer run 90          # 90 seconds
  gtimer run 25:00       # 25 minutes in colon notation
  gtimer run 1:05:00     # 1 hour 5 minutes in colon notation
  gtimer run 1h30m       # Go duration notation`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runHandler := NewRunCommand(r.api)
			return runHandler.Execute(context.Background(), args)
		},
	}

	// Serve command
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the status daemon",
		Long: `Start the status daemon exposing the countdown over HTTP and websocket.

Endpoints:
  GET    /api/status     Current countdown snapshot
  POST   /api/start      Start a countdown ({"duration": "25:00"})
  POST   /api/pause      Pause the running countdown
  POST   /api/resume     Resume a paused countdown
  POST   /api/stop       Stop the countdown
  GET    /api/history    Recorded countdowns (?since=2h&completed=true)
  DELETE /api/history    Delete all recorded countdowns
  GET    /ws             Websocket status stream
  GET    /health         Liveness probe`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			serveHandler := NewServeCommand(r.server, r.logger)
			return serveHandler.Execute(context.Background())
		},
	}

	// History command
	historyCmd := &cobra.Command{
		Use:   "history [time]",
		Short: "Show recorded countdowns",
		Long: `Show recorded countdowns with optional filtering.

Time filters support: 30m, 2h, 1d, 2w, 3mo, 1y

Examples:
  gtimer history                    # Show all recorded countdowns
  gtimer history 2h                 # Show countdowns from the last 2 hours
  gtimer history 1w --completed     # Completed countdowns from the last week`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			completedOnly, _ := cmd.Flags().GetBool("completed")

			ctx, cancel := context.WithTimeout(context.Background(), r.queryTimeout())
			defer cancel()

			historyHandler := NewHistoryCommand(r.api)
			return historyHandler.Execute(ctx, args, completedOnly)
		},
	}
	historyCmd.Flags().Bool("completed", false, "Show only completed countdowns")

	// Clear command
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded countdowns",
		Long:  "Delete every recorded countdown from the history database.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.queryTimeout())
			defer cancel()

			clearHandler := NewClearCommand(r.api)
			return clearHandler.Execute(ctx)
		},
	}

	r.cmd.AddCommand(runCmd, serveCmd, historyCmd, clearCmd)
}

func (r *RootCommand) queryTimeout() time.Duration {
	if r.config != nil && r.config.Database.QueryTimeout > 0 {
		return r.config.Database.QueryTimeout
	}
	return 10 * time.Second
}
