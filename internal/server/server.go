// Package server exposes a layout service over HTTP.
//
// Routes:
//
//	POST /layout     content.Description  -> content.Translated[content.Positioned]
//	POST /normalize  NormalizeRequest     -> NormalizeResponse
//	GET  /healthz                         -> {"status": "ok", ...}
//
// Failures are answered with a [layoutsvc.ErrorResponse] and a status derived
// from the error code.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ortfo/gui/pkg/buildinfo"
	"github.com/ortfo/gui/pkg/core/blocks"
	"github.com/ortfo/gui/pkg/core/content"
	"github.com/ortfo/gui/pkg/core/layout"
	"github.com/ortfo/gui/pkg/errors"
	"github.com/ortfo/gui/pkg/layoutsvc"
)

const (
	// maxRequestSize bounds request bodies.
	maxRequestSize = 8 << 20

	shutdownTimeout = 10 * time.Second
)

// Server answers layout requests with a [blocks.LayoutService].
type Server struct {
	svc    blocks.LayoutService
	logger *log.Logger
}

// New creates a server backed by svc. A nil logger selects log.Default().
func New(svc blocks.LayoutService, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{svc: svc, logger: logger}
}

// Handler returns the HTTP handler serving every route.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get(layoutsvc.HealthPath, s.health)
	r.Post(layoutsvc.LayoutPath, s.layout)
	r.Post(layoutsvc.NormalizePath, s.normalize)
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("layout service listening", "addr", addr)
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
	if err := <-errc; err != nil && err != http.ErrServerClosed {
		return err
	}
	return ctx.Err()
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	info := buildinfo.Get()
	s.respond(w, r, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": info.Version,
		"commit":  info.Commit,
	})
}

func (s *Server) layout(w http.ResponseWriter, r *http.Request) {
	var d content.Description
	if err := decodeBody(w, r, &d); err != nil {
		s.fail(w, r, err)
		return
	}
	if s.svc == nil {
		s.fail(w, r, errors.New(errors.ErrCodeLayoutService, "no layout service configured"))
		return
	}
	positioned, err := s.svc.Layout(r.Context(), d)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.respond(w, r, http.StatusOK, positioned)
}

func (s *Server) normalize(w http.ResponseWriter, r *http.Request) {
	var req layoutsvc.NormalizeRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	capacity := req.Capacity
	if capacity == 0 {
		capacity = layout.Width(req.Layout)
	}
	normalized, err := layout.Normalize(req.Layout, capacity)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.respond(w, r, http.StatusOK, layoutsvc.NormalizeResponse{Layout: normalized, Capacity: capacity})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestSize)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.GetCode(err) != "" {
			return err
		}
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode request")
	}
	return nil
}

func (s *Server) respond(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("write response", "request_id", RequestID(r.Context()), "err", err)
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(errors.GetCode(err))
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "request_id", RequestID(r.Context()), "err", err)
	} else {
		s.logger.Debug("request rejected", "request_id", RequestID(r.Context()), "err", err)
	}
	s.respond(w, r, status, layoutsvc.NewErrorResponse(err))
}

func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidInput:
		return http.StatusBadRequest
	case errors.ErrCodeInvalidToken, errors.ErrCodeInvalidLayout, errors.ErrCodeInvalidBlock,
		errors.ErrCodeInvalidLanguage, errors.ErrCodeIntegrity, errors.ErrCodeOverlap:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case errors.ErrCodeLayoutService, errors.ErrCodeNetwork:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
