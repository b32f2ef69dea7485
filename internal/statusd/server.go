package statusd

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/unrolled/render"

	"github.com/aleksandrpnshkn/gnome-timer/internal/api"
)

// Config holds the status daemon settings
type Config struct {
	Port   string
	Router RouterConfig
}

// Server is the countdown status daemon. It serves the HTTP API and pushes
// live status updates to websocket subscribers through its hub.
type Server struct {
	cfg      Config
	log      zerolog.Logger
	server   *http.Server
	hub      *Hub
	errCh    chan error
	shutdown sync.Once
}

// NewServer creates a status daemon around the given countdown API. The hub
// loop must already be running; the server only shuts it down.
func NewServer(cfg Config, a api.API, hub *Hub, log zerolog.Logger) *Server {
	handler := NewHandler(log, render.New(), a, hub)
	r := NewRouter(cfg.Router, log)
	r = AddRoutes(r, handler)

	return &Server{
		cfg: cfg,
		log: log,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Port),
			Handler: r,
		},
		hub:   hub,
		errCh: make(chan error),
	}
}

// Start runs the HTTP listener, blocking until a fatal error or Shutdown.
func (s *Server) Start() {
	go func() {
		s.log.Info().Msg(fmt.Sprintf("status daemon started on 0.0.0.0:%s", s.cfg.Port))
		err := s.server.ListenAndServe()
		if err != http.ErrServerClosed {
			s.log.Error().Caller().Err(err).Msg("status daemon stopped unexpectedly")
			s.errCh <- err
		} else {
			s.log.Info().Msg("status daemon stopped")
		}
	}()
	for err := range s.errCh {
		if err != nil {
			s.log.Error().Caller().Err(err).Msg("fatal error")
			s.Shutdown()
		}
	}
}

// Shutdown stops the listener and disconnects all subscribers. It may be
// called more than once.
func (s *Server) Shutdown() {
	s.shutdown.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.log.Info().Msg("attempting graceful shutdown")
		s.hub.Close()
		if err := s.server.Shutdown(ctx); err != nil {
			s.log.Error().Caller().Err(err).Msg("failed to shutdown status daemon gracefully")
		}
		close(s.errCh)
	})
}
