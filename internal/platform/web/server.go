// Package web serves Frogger to browsers: an SVG page that renders frames
// pushed over a websocket, one game per connection.
package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
	"github.com/vovakirdan/tui-frogger/internal/session"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

//go:embed static/index.html
var static embed.FS

// Config holds configuration for the web server.
type Config struct {
	Address string         // host:port to listen on
	Rules   *frogger.Rules // Defaults to frogger.DefaultRules()
	Store   *storage.Store // Shared leaderboard, may be nil
	Logger  *log.Logger    // Nil discards
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{Address: ":8080"}
}

// Server is the browser shell.
type Server struct {
	config   Config
	sessions *session.Registry
	logger   *log.Logger
	upgrader websocket.Upgrader
	http     *http.Server
}

// NewServer creates a server. It does not listen until ListenAndServe.
func NewServer(cfg Config) *Server {
	if cfg.Rules == nil {
		cfg.Rules = frogger.DefaultRules()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Server{
		config:   cfg,
		sessions: session.NewRegistry(),
		logger:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
	s.http = &http.Server{
		Addr:              cfg.Address,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Routes sets up the HTTP routes.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)
	r.Get("/scores", s.handleScores)
	r.Get("/play", s.handlePlay)

	return r
}

// loggingMiddleware logs each request once it completes.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := static.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, "page missing", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page) //nolint:errcheck
}

type healthResponse struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Sessions: s.sessions.Count()})
}

type scoreEntry struct {
	Player string `json:"player"`
	Score  int    `json:"score"`
	Level  int    `json:"level"`
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	entries := []scoreEntry{}
	if s.config.Store != nil {
		runs, err := s.config.Store.TopScores(10)
		if err != nil {
			s.logger.Error("cannot load scores", "error", err)
			http.Error(w, "leaderboard unavailable", http.StatusInternalServerError)
			return
		}
		for _, run := range runs {
			entries = append(entries, scoreEntry{Player: run.Player, Score: run.Score, Level: run.Level})
		}
	}
	s.writeJSON(w, http.StatusOK, entries)
}

// writeJSON writes a JSON response with proper headers.
func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("cannot encode response", "error", err)
	}
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting web server", "address", s.config.Address)

	errc := make(chan error, 1)
	go func() {
		errc <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("web: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}

// Addr returns the server's listen address string.
func (s *Server) Addr() string {
	return s.config.Address
}

// Sessions returns the number of games in progress.
func (s *Server) Sessions() int {
	return s.sessions.Count()
}
