// Package web serves the game to browsers: an embedded page plus a
// websocket that runs one independent session per connection.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

//go:embed assets/index.html
var assets embed.FS

// Config holds server settings.
type Config struct {
	// Addr is the host:port to listen on (e.g., ":8048").
	Addr string

	// TickRate is the simulation rate of every session.
	TickRate int

	// Seed fixes the RNG seed of new sessions; 0 picks a fresh one each time.
	Seed int64

	// Rules are the game rules for every session.
	Rules config.GameConfig
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Addr:     ":8048",
		TickRate: 60,
		Rules:    config.Default(),
	}
}

// Server is the browser front end.
type Server struct {
	cfg      Config
	router   *chi.Mux
	store    *storage.Store
	logger   *log.Logger
	upgrader websocket.Upgrader

	// closed on shutdown; hijacked websocket connections watch it
	done     chan struct{}
	doneOnce sync.Once
}

// New creates a server. store may be nil, in which case scores are not
// recorded and best is always the session's own score.
func New(cfg Config, store *storage.Store, logger *log.Logger) *Server {
	if cfg.TickRate <= 0 {
		cfg.TickRate = DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "t2048-web",
		})
	}

	s := &Server{
		cfg:    cfg,
		router: chi.NewRouter(),
		store:  store,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		done: make(chan struct{}),
	}

	s.router.Use(chimw.RequestID)
	s.router.Use(chimw.RealIP)
	s.router.Use(chimw.Recoverer)

	s.router.Get("/", s.handleIndex)
	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	s.router.Get("/ws", s.handleWS)

	return s
}

// Handler exposes the router (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.router
}

// handleIndex serves the embedded page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := assets.ReadFile("assets/index.html")
	if err != nil {
		http.Error(w, "page missing", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

// handleWS validates the requested mode and runs a session on the upgraded connection.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	modeName := r.URL.Query().Get("mode")
	if modeName == "" {
		modeName = string(t2048.ModeClassic)
	}
	mode, err := t2048.ParseMode(modeName)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	c := newClient(s, conn, mode)
	c.logger.Info("session started", "remote", r.RemoteAddr)
	c.run()
	c.logger.Info("session ended", "score", c.sess.Score())
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting web server", "address", s.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("web: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.Close()
	return srv.Shutdown(shutdownCtx)
}

// Close tells all websocket sessions to end. Safe to call more than once.
func (s *Server) Close() {
	s.doneOnce.Do(func() { close(s.done) })
}
