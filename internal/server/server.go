// Package server exposes envelope derivation over HTTP.
//
// The API is a thin wrapper around [model.File.Build]: clients POST block
// definitions as JSON and receive the derived model. All heavy lifting stays
// in pkg/block and pkg/model so the CLI and the API cannot drift apart.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/gridshell/envelope/pkg/errors"
	"github.com/gridshell/envelope/pkg/model"
)

// maxBodyBytes caps definition uploads. Footprints are small; anything
// beyond this is a client mistake.
const maxBodyBytes = 1 << 20

// Server handles envelope derivation requests.
type Server struct {
	logger *log.Logger
}

// New creates a server that logs through the given logger.
func New(logger *log.Logger) *Server {
	return &Server{logger: logger}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Post("/v1/envelope", s.handleEnvelope)

	return r
}

// ListenAndServe runs the server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleEnvelope derives a model from posted block definitions.
func (s *Server) handleEnvelope(w http.ResponseWriter, r *http.Request) {
	var f model.File
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&f); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidDefinition, err, "decode request body"))
		return
	}

	m, err := f.Build()
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.logger.Info("derived envelope", "model", m.Name, "blocks", len(f.Blocks), "zones", len(m.Zones))
	writeJSON(w, http.StatusOK, m)
}

// errorResponse is the JSON error body.
type errorResponse struct {
	Code  errors.Code `json:"code,omitempty"`
	Error string      `json:"error"`
}

// writeError maps coded errors onto HTTP statuses. Validation and geometry
// problems are the client's fault; everything else is a 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidDefinition,
		errors.ErrCodeInvalidStoreys,
		errors.ErrCodeInvalidFormat,
		errors.ErrCodeDegenerateFootprint:
		status = http.StatusBadRequest
	case errors.ErrCodeFileNotFound, errors.ErrCodeBlockNotFound:
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	} else {
		s.logger.Debug("rejected request", "err", err)
	}

	writeJSON(w, status, errorResponse{
		Code:  errors.GetCode(err),
		Error: errors.UserMessage(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
