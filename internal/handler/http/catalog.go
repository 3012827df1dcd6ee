package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/digitalbuddiesspune/stylegenz/internal/service"
	"github.com/digitalbuddiesspune/stylegenz/pkg/httputil"
	"github.com/digitalbuddiesspune/stylegenz/pkg/pagination"
)

// CatalogHandler exposes the catalog query endpoints.
type CatalogHandler struct {
	catalog *service.CatalogService
	logger  *slog.Logger
}

// NewCatalogHandler creates a catalog handler.
func NewCatalogHandler(catalog *service.CatalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, logger: logger}
}

// List handles GET /api/v1/catalog.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	params := pagination.FromRequest(r)
	query := flattenQuery(r)

	result, err := h.catalog.ListCatalog(r.Context(), query["category"], query, params)
	if err != nil {
		httputil.WriteListError(w, r, err, params, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: httputil.NewListResponse(result.Items, pagination.NewEnvelope(result.TotalItems, params)),
	})
}

// Facets handles GET /api/v1/catalog/facets.
func (h *CatalogHandler) Facets(w http.ResponseWriter, r *http.Request) {
	query := flattenQuery(r)

	result, err := h.catalog.GetFacets(r.Context(), query["category"], query)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: result})
}

// GetItem handles GET /api/v1/catalog/items/{id}.
func (h *CatalogHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.catalog.GetItemByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: item})
}

// Categories handles GET /api/v1/catalog/categories.
func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: h.catalog.Categories()})
}

// flattenQuery reduces the request's query parameters to their first values.
// Repeated parameters have no meaning in the catalog API.
func flattenQuery(r *http.Request) map[string]string {
	values := r.URL.Query()
	out := make(map[string]string, len(values))
	for key, vals := range values {
		if len(vals) > 0 {
			out[key] = vals[0]
		}
	}
	return out
}
