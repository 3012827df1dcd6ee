package repository

import (
	"context"
	"time"

	"github.com/digitalbuddiesspune/stylegenz/internal/domain"
)

// SortKey is one ORDER BY term of a collection read.
type SortKey struct {
	Field string
	Desc  bool
}

// DefaultSort orders targeted reads for stable pagination: sub-category
// first so the listing reads grouped, record ID second as the tiebreak.
func DefaultSort() []SortKey {
	return []SortKey{{Field: domain.FieldSubCategory}, {Field: "id"}}
}

// RecordStore reads raw catalog records out of the four physical
// collections. Implementations translate the backend-agnostic FilterSpec
// into their own query language.
type RecordStore interface {
	// Find returns one page of raw records matching the filter.
	Find(ctx context.Context, collection domain.VariantTag, spec domain.FilterSpec, sort []SortKey, offset, limit int) ([]domain.RawRecord, error)

	// Count returns the total number of records matching the filter.
	Count(ctx context.Context, collection domain.VariantTag, spec domain.FilterSpec) (int, error)

	// FindByID returns the record with the given ID, or apperrors.ErrNotFound.
	FindByID(ctx context.Context, collection domain.VariantTag, id string) (domain.RawRecord, error)

	// GroupCounts returns matching-record counts grouped by the given field
	// path. Records with an empty group value are omitted.
	GroupCounts(ctx context.Context, collection domain.VariantTag, spec domain.FilterSpec, path string) (map[string]int, error)

	// Prices returns the sale prices of every record matching the filter,
	// for histogram bucketing.
	Prices(ctx context.Context, collection domain.VariantTag, spec domain.FilterSpec) ([]float64, error)

	// Ping verifies store connectivity for readiness checks.
	Ping(ctx context.Context) error
}

// WishlistEntry is one saved item reference in a user's wishlist.
type WishlistEntry struct {
	ItemID  string            `json:"item_id"`
	Variant domain.VariantTag `json:"variant"`
	AddedAt time.Time         `json:"added_at"`
}

// WishlistStore persists per-user wishlists.
type WishlistStore interface {
	Add(ctx context.Context, userID string, entry WishlistEntry) error
	Remove(ctx context.Context, userID, itemID string) error
	List(ctx context.Context, userID string) ([]WishlistEntry, error)
	Ping(ctx context.Context) error
}
