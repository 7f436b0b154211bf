// Package app contains the application setup for the catalog server.
package app

import (
	"log/slog"
	"net/http"

	"github.com/abgdnv/catalog/internal/catalog"
	"github.com/abgdnv/catalog/internal/catalog/persist"
	"github.com/abgdnv/catalog/internal/catalog/service"
	"github.com/abgdnv/catalog/internal/catalog/store"
	"github.com/abgdnv/catalog/internal/config"
	"github.com/abgdnv/catalog/internal/kvstore"
	"github.com/abgdnv/catalog/internal/platform/web"
	"github.com/abgdnv/catalog/internal/server"
	"github.com/abgdnv/catalog/internal/web/api"
	"github.com/abgdnv/catalog/internal/web/ui"
	"github.com/go-chi/chi/v5"
)

type Dependencies struct {
	Store          *store.Store
	CatalogService service.CatalogService
	Metrics        *web.Metrics
	Logger         *slog.Logger
}

// SetupDependencies builds the dependency graph: persistence adapter over
// the blob store, the hydrated product store and the catalog service.
func SetupDependencies(blob kvstore.Store, logger *slog.Logger) *Dependencies {
	adapter := persist.NewAdapter(blob, logger)
	productStore := store.NewStore(adapter, logger)

	// Persisted data wins when it holds at least one product; otherwise the
	// fixed seed catalog is loaded. Hydration itself does not write back.
	if products, ok := adapter.Load(); ok && len(products) > 0 {
		productStore.Hydrate(products)
	} else {
		productStore.Hydrate(catalog.Seed())
	}

	return &Dependencies{
		Store:          productStore,
		CatalogService: service.NewService(productStore),
		Metrics:        web.NewMetrics(),
		Logger:         logger,
	}
}

// SetupHttpHandler initializes the HTTP routes for the catalog application.
// Used by E2E tests to set up the full handler without a listening socket.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := server.NewChiRouter(deps.Logger, deps.Metrics)
	wireRoutes(mux, deps)
	return mux
}

// wireRoutes sets up the UI, API and metrics routes for the catalog application.
func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	ui.NewHandler(deps.Store, deps.Logger).RegisterRoutes(mux)
	api.NewHandler(deps.CatalogService, deps.Logger).RegisterRoutes(mux)
	mux.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
}

// SetupHttpServer creates and configures an HTTP server for the catalog application.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	return server.NewHTTPServer(cfg.HTTPServer, SetupHttpHandler(deps))
}
