package statusd

import (
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/rs/zerolog"
)

// RouterConfig holds the HTTP middleware settings for the status daemon
type RouterConfig struct {
	TimeoutSec         int
	RequestPerSecLimit int
	AllowedOrigins     []string
}

// NewRouter builds the daemon router with its middleware stack.
func NewRouter(cfg RouterConfig, log zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(time.Duration(cfg.TimeoutSec) * time.Second))
	r.Use(httprate.LimitAll(cfg.RequestPerSecLimit, time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(RequestLogger(log))
	return r
}

// AddRoutes attaches the countdown endpoints to the router.
func AddRoutes(r *chi.Mux, handler *Handler) *chi.Mux {
	r.Route("/api", func(r chi.Router) {
		r.Get("/status", handler.GetStatus)
		r.Post("/start", handler.StartCountdown)
		r.Post("/pause", handler.PauseCountdown)
		r.Post("/resume", handler.ResumeCountdown)
		r.Post("/stop", handler.StopCountdown)
		r.Get("/history", handler.GetHistory)
		r.Delete("/history", handler.ClearHistory)
	})
	r.Get("/ws", handler.Subscribe)
	r.Get("/health", handler.Health)
	return r
}
