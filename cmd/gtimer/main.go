package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/aleksandrpnshkn/gnome-timer/internal/api"
	"github.com/aleksandrpnshkn/gnome-timer/internal/cli"
	"github.com/aleksandrpnshkn/gnome-timer/internal/config"
	"github.com/aleksandrpnshkn/gnome-timer/internal/display"
	"github.com/aleksandrpnshkn/gnome-timer/internal/domain"
	"github.com/aleksandrpnshkn/gnome-timer/internal/logging"
	"github.com/aleksandrpnshkn/gnome-timer/internal/notify"
	"github.com/aleksandrpnshkn/gnome-timer/internal/refresh"
	"github.com/aleksandrpnshkn/gnome-timer/internal/repository/sqlite"
	"github.com/aleksandrpnshkn/gnome-timer/internal/services"
	"github.com/aleksandrpnshkn/gnome-timer/internal/statusd"
	"github.com/aleksandrpnshkn/gnome-timer/internal/timer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.NewLogger(cfg.Log, cfg.Environment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}

	root := cli.NewRootCommand(cfg, log, buildComponents)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildComponents wires the full application from the effective configuration.
func buildComponents(cfg *config.Config, _ zerolog.Logger, mode cli.Mode) (api.API, *statusd.Server, error) {
	log, err := logging.NewLogger(cfg.Log, cfg.Environment)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	if err := cfg.EnsureDatabaseDir(); err != nil {
		return nil, nil, fmt.Errorf("failed to create database directory: %w", err)
	}
	repo, err := sqlite.New(cfg.GetDatabasePath())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	engine := timer.NewEngine(nil)
	hub := statusd.NewHub(log)
	if mode == cli.ModeDaemon {
		// The refresh loop broadcasts through the hub on its very first
		// update, so the hub loop has to run before any countdown starts
		go hub.Start()
	}
	sink := buildSink(cfg, mode, hub, engine)
	loop := refresh.NewLoop(engine, sink, cfg.Refresh.Interval)

	countdownService := services.NewCountdownService(engine, loop, buildNotifier(cfg), repo, log, services.CountdownServiceOptions{
		HistoryEnabled: cfg.History.Enabled,
		WriteTimeout:   cfg.Database.WriteTimeout,
	})
	historyService := services.NewHistoryService(repo)
	apiInstance := api.New(countdownService, historyService)

	server := statusd.NewServer(statusd.Config{
		Port: cfg.Server.Port,
		Router: statusd.RouterConfig{
			TimeoutSec:         cfg.Server.TimeoutSec,
			RequestPerSecLimit: cfg.Server.RequestPerSecLimit,
			AllowedOrigins:     cfg.Server.AllowedOrigins,
		},
	}, apiInstance, hub, log)

	return apiInstance, server, nil
}

// buildSink picks the countdown presentation for the command being run.
// Foreground commands rewrite the countdown line on stdout; the daemon keeps
// stdout for its logs and pushes updates to websocket subscribers instead.
func buildSink(cfg *config.Config, mode cli.Mode, hub *statusd.Hub, engine *timer.Engine) display.Sink {
	if mode == cli.ModeDaemon {
		return statusd.NewHubSink(hub, func() domain.Duration {
			return engine.Status().Configured
		})
	}
	return display.NewTerminalSink(os.Stdout, cfg.Display.DoneText)
}

// buildNotifier picks the completion notifier from configuration.
func buildNotifier(cfg *config.Config) notify.Notifier {
	if !cfg.Notify.Enabled {
		return notify.NopNotifier{}
	}
	return notify.NewDesktopNotifier(cfg.Notify.Command)
}
