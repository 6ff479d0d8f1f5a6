// Package usertwin serves a fake of the user API the widgets read from.
//
// It answers the plural endpoint (/users/{id}: 404 with {} when absent) and the
// singular endpoint (/user/{id}: 200 with null when absent), plus admin routes to
// reseed users and inject per-user latency for reproducing out-of-order responses.
package usertwin

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Server is the fake user API.
type Server struct {
	Router  *chi.Mux
	Logger  *slog.Logger
	Store   *Store
	Latency time.Duration
}

// New returns a Server backed by store. A nil logger discards logs.
func New(store *Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Server{
		Router: chi.NewRouter(),
		Logger: logger,
		Store:  store,
	}

	s.Router.Use(chimw.RequestID)
	s.Router.Use(chimw.RealIP)
	s.Router.Use(s.requestLog)
	s.Router.Use(s.cors)

	s.Router.Get("/users", s.listUsers)
	s.Router.Get("/users/{id}", s.getUser(false))
	s.Router.Get("/user/{id}", s.getUser(true))

	s.Router.Route("/admin", func(r chi.Router) {
		r.Get("/health", s.health)
		r.Post("/reset", s.reset)
		r.Put("/users/{id}", s.putUser)
		r.Delete("/users/{id}", s.deleteUser)
		r.Put("/delays/{id}", s.putDelay)
	})
	return s
}

// Open builds a Server seeded from seedFile (DefaultUsers when empty) that
// delays every response by latency.
func Open(seedFile string, latency time.Duration, logger *slog.Logger) (*Server, error) {
	users := DefaultUsers
	if seedFile != "" {
		seeded, err := LoadSeed(seedFile)
		if err != nil {
			return nil, err
		}
		users = seeded
	}
	s := New(NewStore(users...), logger)
	s.Latency = latency
	if seedFile != "" {
		s.Logger.Info("loaded seed data", "file", seedFile, "users", len(users))
	}
	return s, nil
}

// ServeHTTP implements http.Handler so Server can be used directly in tests.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

// Serve accepts connections on ln until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.Logger.Info("starting user twin", "addr", ln.Addr().String())
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.Logger.Info("shutting down user twin")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.Logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).String(),
			"request_id", chimw.GetReqID(r.Context()),
		)
	})
}

// cors lets the browser build of the widgets call the twin directly.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, PUT, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]any{
		"error": map[string]any{
			"message": message,
			"code":    status,
		},
	})
}
