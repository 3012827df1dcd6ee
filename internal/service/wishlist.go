package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/digitalbuddiesspune/stylegenz/internal/domain"
	"github.com/digitalbuddiesspune/stylegenz/internal/event"
	"github.com/digitalbuddiesspune/stylegenz/internal/repository"
	apperrors "github.com/digitalbuddiesspune/stylegenz/pkg/errors"
)

// WishlistService manages per-user saved items. Wishlists store item
// references only; items are re-read and re-normalized on every listing so
// the wishlist always reflects current catalog data.
type WishlistService struct {
	wishlists repository.WishlistStore
	records   repository.RecordStore
	events    event.Publisher
	logger    *slog.Logger
}

// NewWishlistService creates a wishlist service.
func NewWishlistService(wishlists repository.WishlistStore, records repository.RecordStore, events event.Publisher, logger *slog.Logger) *WishlistService {
	return &WishlistService{
		wishlists: wishlists,
		records:   records,
		events:    events,
		logger:    logger,
	}
}

// AddItem saves one catalog item to the user's wishlist after verifying it
// exists in the named collection.
func (s *WishlistService) AddItem(ctx context.Context, userID, itemID string, variant domain.VariantTag) error {
	if _, err := uuid.Parse(itemID); err != nil {
		return apperrors.InvalidIdentifier(itemID)
	}
	if !domain.IsValidVariant(string(variant)) {
		return apperrors.InvalidInput("unknown variant")
	}

	if _, err := s.records.FindByID(ctx, variant, itemID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NotFound("item", itemID)
		}
		return apperrors.StoreUnavailable(err)
	}

	entry := repository.WishlistEntry{
		ItemID:  itemID,
		Variant: variant,
		AddedAt: time.Now().UTC(),
	}
	if err := s.wishlists.Add(ctx, userID, entry); err != nil {
		return apperrors.StoreUnavailable(err)
	}

	s.events.WishlistModified(ctx, event.WishlistPayload{
		UserID:  userID,
		ItemID:  itemID,
		Variant: variant,
		Action:  "added",
	})

	s.logger.InfoContext(ctx, "wishlist item added",
		slog.String("user_id", userID),
		slog.String("item_id", itemID),
	)

	return nil
}

// RemoveItem deletes one item from the user's wishlist. Removing an absent
// item succeeds.
func (s *WishlistService) RemoveItem(ctx context.Context, userID, itemID string) error {
	if _, err := uuid.Parse(itemID); err != nil {
		return apperrors.InvalidIdentifier(itemID)
	}

	if err := s.wishlists.Remove(ctx, userID, itemID); err != nil {
		return apperrors.StoreUnavailable(err)
	}

	s.events.WishlistModified(ctx, event.WishlistPayload{
		UserID: userID,
		ItemID: itemID,
		Action: "removed",
	})

	return nil
}

// ListItems resolves the user's wishlist into normalized catalog items.
// Entries whose records no longer exist are dropped from the result.
func (s *WishlistService) ListItems(ctx context.Context, userID string) ([]domain.CatalogItem, error) {
	entries, err := s.wishlists.List(ctx, userID)
	if err != nil {
		return nil, apperrors.StoreUnavailable(err)
	}

	items := make([]domain.CatalogItem, 0, len(entries))
	for _, entry := range entries {
		record, err := s.records.FindByID(ctx, entry.Variant, entry.ItemID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				continue
			}
			return nil, apperrors.StoreUnavailable(err)
		}
		items = append(items, domain.Normalize(record, entry.Variant))
	}

	return items, nil
}
