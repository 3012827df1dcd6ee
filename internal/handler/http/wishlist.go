package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/digitalbuddiesspune/stylegenz/internal/domain"
	"github.com/digitalbuddiesspune/stylegenz/internal/service"
	apperrors "github.com/digitalbuddiesspune/stylegenz/pkg/errors"
	"github.com/digitalbuddiesspune/stylegenz/pkg/httputil"
	"github.com/digitalbuddiesspune/stylegenz/pkg/logger"
	"github.com/digitalbuddiesspune/stylegenz/pkg/validator"
)

// WishlistHandler exposes the per-user wishlist endpoints. All routes
// require a user identity.
type WishlistHandler struct {
	wishlist *service.WishlistService
	logger   *slog.Logger
}

// NewWishlistHandler creates a wishlist handler.
func NewWishlistHandler(wishlist *service.WishlistService, logger *slog.Logger) *WishlistHandler {
	return &WishlistHandler{wishlist: wishlist, logger: logger}
}

type addWishlistItemRequest struct {
	ItemID  string `json:"item_id" validate:"required,uuid"`
	Variant string `json:"variant" validate:"required,oneof=mens_shoe womens_shoe kids_shoe shoe_accessory"`
}

// List handles GET /api/v1/wishlist.
func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := logger.UserIDFromContext(r.Context())

	items, err := h.wishlist.ListItems(r.Context(), userID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}
	if items == nil {
		items = []domain.CatalogItem{}
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: items})
}

// AddItem handles POST /api/v1/wishlist/items.
func (h *WishlistHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID := logger.UserIDFromContext(r.Context())

	var req addWishlistItemRequest
	if err := validator.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	if err := h.wishlist.AddItem(r.Context(), userID, req.ItemID, domain.VariantTag(req.Variant)); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RemoveItem handles DELETE /api/v1/wishlist/items/{itemID}.
func (h *WishlistHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID := logger.UserIDFromContext(r.Context())

	if err := h.wishlist.RemoveItem(r.Context(), userID, chi.URLParam(r, "itemID")); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RequireUser rejects requests without a resolved user identity. The
// identity arrives on the X-User-ID header, set by the edge gateway.
func RequireUser(fallback *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if logger.UserIDFromContext(r.Context()) == "" {
				httputil.WriteError(w, r, apperrors.Unauthorized("missing user identity"), fallback)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
