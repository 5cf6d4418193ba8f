// Package http exposes the notification store and scrape pipeline over a
// JSON API.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/awalczak/govnotice"
	"github.com/go-chi/chi/v5"
)

// ShutdownTimeout is the grace period given to in-flight requests on Close.
const ShutdownTimeout = 10 * time.Second

// Server serves the notification API over HTTP.
type Server struct {
	ln     net.Listener
	server *http.Server
	router chi.Router

	// Addr is the bind address, e.g. ":8080".
	Addr string

	NotificationService govnotice.NotificationService
	Scraper             govnotice.Scraper

	// MetricsHandler, when set, is mounted at /metrics.
	MetricsHandler http.Handler

	Logger *slog.Logger
}

// NewServer creates a Server with its routes registered. Dependencies are
// assigned as fields before Open.
func NewServer() *Server {
	s := &Server{
		server: &http.Server{
			ReadHeaderTimeout: 5 * time.Second,
		},
		router: chi.NewRouter(),
	}
	s.server.Handler = s.router

	s.router.Get("/healthz", s.handleHealth)
	s.router.Get("/metrics", s.handleMetrics)
	s.router.Route("/api", func(r chi.Router) {
		r.Get("/notifications", s.handleNotificationList)
		r.Get("/notifications/{id}", s.handleNotificationByID)
		r.Post("/scrape", s.handleScrape)
		r.Get("/stats", s.handleStats)
	})

	return s
}

// Open binds the listener and starts serving in the background.
func (s *Server) Open() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.ln = ln

	go func() {
		if err := s.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.logger().Error("http serve", "err", err)
		}
	}()
	return nil
}

// Close drains in-flight requests and shuts the server down.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// URL returns the base URL of the running server. Only valid after Open.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// ServeHTTP dispatches to the router. Exported for handler tests.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if s.MetricsHandler == nil {
		http.NotFound(w, r)
		return
	}
	s.MetricsHandler.ServeHTTP(w, r)
}

func (s *Server) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// errorResponse is the uniform error body for all endpoints.
type errorResponse struct {
	Error string `json:"error"`
}

// StatusCode maps application error codes to HTTP status codes.
func StatusCode(code string) int {
	switch code {
	case govnotice.EINVALID:
		return http.StatusBadRequest
	case govnotice.ENOTFOUND:
		return http.StatusNotFound
	case govnotice.ECONFLICT:
		return http.StatusConflict
	case govnotice.ETIMEOUT:
		return http.StatusGatewayTimeout
	case govnotice.EUNAVAILABLE:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// error writes err as a JSON response, logging internal errors.
func (s *Server) error(w http.ResponseWriter, r *http.Request, err error) {
	code := govnotice.ErrorCode(err)
	if code == govnotice.EINTERNAL {
		s.logger().Error("http request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"err", err,
		)
	}
	writeJSON(w, StatusCode(code), errorResponse{Error: govnotice.ErrorMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
