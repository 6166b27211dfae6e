// Package api implements the HTTP service for the diagram builder.
//
// The service exposes a small JSON API: clients POST a node/edge request
// and receive a complete Excalidraw document back. Routing is handled by
// chi, logging by charmbracelet/log.
//
// # Endpoints
//
//   - GET  /healthz       liveness probe, returns build info
//   - POST /v1/diagrams   build a document from a node/edge request
//
// # Example
//
//	srv := api.NewServer(":8080", logger)
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/robtaylor/excalidraw-diagrams/pkg/buildinfo"
	"github.com/robtaylor/excalidraw-diagrams/pkg/errors"
	"github.com/robtaylor/excalidraw-diagrams/pkg/excalidraw"
	"github.com/robtaylor/excalidraw-diagrams/pkg/request"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// maxRequestBytes caps diagram request bodies. Node/edge lists are
	// small; anything larger is a client error.
	maxRequestBytes = 1 << 20

	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// =============================================================================
// Server
// =============================================================================

// Server is the diagram HTTP service.
type Server struct {
	addr   string
	logger *log.Logger
	router chi.Router
}

// NewServer creates a server listening on addr.
func NewServer(addr string, logger *log.Logger) *Server {
	s := &Server{addr: addr, logger: logger}
	s.router = s.routes()
	return s
}

// Handler returns the server's HTTP handler, exposed for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the server and blocks until ctx is cancelled or the
// listener fails. On cancellation the server drains in-flight requests
// before returning.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// routes builds the router with middleware and all endpoints registered.
func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Post("/v1/diagrams", s.handleDiagram)

	return r
}

// logRequests logs each request with its status and duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Millisecond),
		)
	})
}

// =============================================================================
// Handlers
// =============================================================================

// healthResponse is the /healthz payload.
type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Version: buildinfo.Version,
	})
}

func (s *Server) handleDiagram(w http.ResponseWriter, r *http.Request) {
	req, err := request.Read(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	d := excalidraw.New()
	if err := request.Build(req, d); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, errors.ErrCodeInvalidShape) {
			status = http.StatusBadRequest
		}
		s.writeError(w, status, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := d.Encode(w); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

// =============================================================================
// Responses
// =============================================================================

// errorResponse is the JSON body for failed requests.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	s.logger.Warn("request failed", "code", code, "err", err)
	writeJSON(w, status, errorResponse{
		Code:    string(code),
		Message: errors.UserMessage(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
