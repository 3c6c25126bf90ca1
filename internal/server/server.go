package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"depthjournal/internal/engine"
)

// Server is the depthjournal HTTP API.
type Server struct {
	eng     *engine.Engine
	router  chi.Router
	log     zerolog.Logger
	version string
	started time.Time
}

// New creates a Server over the given engine.
func New(eng *engine.Engine, logger zerolog.Logger, version string) *Server {
	s := &Server{
		eng:     eng,
		log:     logger,
		version: version,
		started: time.Now(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Post("/session", s.handleSignIn)
		r.Get("/session", s.handleCurrentUser)
		r.Delete("/session", s.handleSignOut)

		r.Route("/users/{userID}/entries", func(r chi.Router) {
			r.Get("/", s.handleListEntries)
			r.Post("/", s.handleCreateEntry)
			r.Delete("/{entryID}", s.handleDeleteEntry)
		})
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	substrateOK := true
	if err := s.eng.Ping(); err != nil {
		substrateOK = false
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"version":   s.version,
		"uptime":    time.Since(s.started).Seconds(),
		"substrate": substrateOK,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
