package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/digitalbuddiesspune/stylegenz/pkg/health"
	"github.com/digitalbuddiesspune/stylegenz/pkg/middleware"
)

// RouterConfig holds the HTTP surface's tunables.
type RouterConfig struct {
	ServiceName        string
	CORSAllowedOrigins []string
	CacheMaxAgeSeconds int
}

// NewRouter assembles the service's full route tree and middleware stack.
func NewRouter(cfg RouterConfig, catalog *CatalogHandler, wishlist *WishlistHandler, checks *health.Handler, log *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestLogging(log))
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.PrometheusMetrics(cfg.ServiceName))

	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.CORSAllowedOrigins) > 0 {
		corsCfg.AllowedOrigins = cfg.CORSAllowedOrigins
	}
	r.Use(middleware.CORS(corsCfg))

	r.Get("/health/live", checks.LivenessHandler())
	r.Get("/health/ready", checks.ReadinessHandler())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			// Catalog reads are safe to cache at the edge.
			r.Use(middleware.CacheControl(cfg.CacheMaxAgeSeconds))

			r.Get("/catalog", catalog.List)
			r.Get("/catalog/facets", catalog.Facets)
			r.Get("/catalog/categories", catalog.Categories)
			r.Get("/catalog/items/{id}", catalog.GetItem)
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Use(RequireUser(log))

			r.Get("/", wishlist.List)
			r.Post("/items", wishlist.AddItem)
			r.Delete("/items/{itemID}", wishlist.RemoveItem)
		})
	})

	return r
}
