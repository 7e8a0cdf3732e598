// Package server serves rendered diagrams over HTTP.
//
// Routes:
//
//	GET /healthz                 "ok"
//	GET /v1/validate/{spec}      {"spec": ..., "valid": ..., "error": ...}
//	GET /v1/diagrams/{spec}.png  image/png
//
// Every response carries an X-Request-Id header, echoed from the request
// when the client supplies one.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/hexglyph/pkg/errors"
	"github.com/matzehuels/hexglyph/pkg/notation"
	"github.com/matzehuels/hexglyph/pkg/pipeline"
)

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = ":8080"

// DefaultMaxCells caps the unit steps of any token in a request. Request
// paths are untrusted, and canvas size grows with path length.
const DefaultMaxCells = 64

const (
	shutdownTimeout = 10 * time.Second
	renderTimeout   = 30 * time.Second
	cacheMaxAge     = "public, max-age=86400, immutable"
)

// Server renders diagrams on request through a shared pipeline.Runner.
type Server struct {
	// MaxCells caps the unit steps per token for every request, on top of
	// any limit in the runner's options. Zero or negative uses
	// DefaultMaxCells.
	MaxCells int

	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// New builds a server around runner. A nil logger uses the runner's.
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = runner.Logger
	}
	s := &Server{MaxCells: DefaultMaxCells, runner: runner, logger: logger}
	s.router = s.routes()
	return s
}

// Handler returns the HTTP handler for all routes.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(renderTimeout))

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/validate/{spec}", s.handleValidate)
		r.Get("/diagrams/{file}", s.handleDiagram)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, errors.New(errors.ErrCodeNotFound, "no route for %s", r.URL.Path))
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != http.ErrServerClosed {
		return err
	}
	return nil
}

// parser applies the tighter of the request cap and the runner's limit.
func (s *Server) parser() notation.Parser {
	limit := s.MaxCells
	if limit <= 0 {
		limit = DefaultMaxCells
	}
	if n := s.runner.Options.MaxCells; n > 0 && n < limit {
		limit = n
	}
	return notation.Parser{MaxCells: limit}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

type validateResponse struct {
	Spec  string `json:"spec"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
	Code  string `json:"code,omitempty"`
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	spec := chi.URLParam(r, "spec")
	resp := validateResponse{Spec: spec, Valid: true}
	if _, err := s.parser().Parse(spec); err != nil {
		resp.Valid = false
		resp.Error = errors.UserMessage(err)
		resp.Code = string(errors.GetCode(err))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDiagram(w http.ResponseWriter, r *http.Request) {
	file := chi.URLParam(r, "file")
	if !strings.HasSuffix(strings.ToLower(file), ".png") {
		writeError(w, http.StatusNotFound, errors.New(errors.ErrCodeNotFound, "diagrams are served as <spec>.png, got %q", file))
		return
	}
	spec := notation.Normalize(file, "")
	if _, err := s.parser().Parse(spec); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	data, hit, err := s.runner.RenderPNG(r.Context(), spec)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.IsNotation(err) {
			status = http.StatusBadRequest
		}
		if status == http.StatusInternalServerError {
			s.logger.Error("render failed", "spec", spec, "request_id", RequestID(r.Context()), "error", err)
		}
		writeError(w, status, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", cacheMaxAge)
	if hit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	resp := errorResponse{Error: errors.UserMessage(err), Code: string(errors.GetCode(err))}
	if status == http.StatusInternalServerError {
		resp.Error = "internal error"
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
