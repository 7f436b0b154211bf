// Package server builds the HTTP server and the middleware-equipped router
// for the catalog application.
package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/abgdnv/catalog/internal/config"
	"github.com/abgdnv/catalog/internal/platform/web"
	"github.com/go-chi/chi/v5"
)

// NewHTTPServer configures the listening server from the server section of
// the application configuration.
func NewHTTPServer(cfg config.HTTPConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadTimeout:       cfg.Timeout.Read,
		WriteTimeout:      cfg.Timeout.Write,
		IdleTimeout:       cfg.Timeout.Idle,
		ReadHeaderTimeout: cfg.Timeout.ReadHeader,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}
}

// NewChiRouter creates a chi router with request ID injection, request
// metrics, structured logging and panic recovery applied to every route.
// Metrics wrap the logger and recoverer, so recovered panics are still
// counted as 500 responses.
func NewChiRouter(logger *slog.Logger, metrics *web.Metrics) *chi.Mux {
	mux := chi.NewRouter()
	mux.Use(web.RequestIDInjector)
	mux.Use(metrics.Middleware)
	mux.Use(web.StructuredLogger(logger))
	mux.Use(web.Recoverer(logger))
	return mux
}
