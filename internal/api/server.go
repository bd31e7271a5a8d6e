package api

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/dvora/yoman/internal/db"
)

// Server is the HTTP API server for the yoman backend.
type Server struct {
	config Config
	http   *http.Server
	store  *db.DB
}

// NewServer creates a new Server with the given config and store.
func NewServer(cfg Config, store *db.DB) *Server {
	s := &Server{
		config: cfg,
		store:  store,
	}

	s.http = &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      s.routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s
}

// Start begins listening for HTTP requests (non-blocking).
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.config.ListenAddr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	go func() {
		if err := s.http.Serve(ln); err != nil && err != http.ErrServerClosed {
			slog.Error("http server", "err", err)
		}
	}()

	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// routes builds the HTTP handler with all routes.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", s.handleHealth)

	mux.HandleFunc("GET /api/days", s.handleListDays)
	mux.HandleFunc("POST /api/add-task", s.handleAddTask)
	mux.HandleFunc("POST /api/day", s.handleAddDayNote)
	mux.HandleFunc("PUT /api/update-task", s.handleUpdateTask)
	mux.HandleFunc("PUT /api/update-day", s.handleUpdateDayNote)
	mux.HandleFunc("DELETE /api/delete-task", s.handleDeleteTask)
	mux.HandleFunc("POST /api/move-task", s.handleMoveTask)
	mux.HandleFunc("PUT /api/dvorush", s.handleDvorush)

	return s.logRequests(mux)
}

// logRequests logs each request at debug level.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Debug("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
