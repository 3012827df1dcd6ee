package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/digitalbuddiesspune/stylegenz/internal/repository"
)

const (
	wishlistKeyPrefix = "wishlist:"
	wishlistTTL       = 90 * 24 * time.Hour
)

// WishlistStore keeps per-user wishlists in Redis hashes: one hash per user,
// item ID as the field, the serialized entry as the value.
type WishlistStore struct {
	client *redis.Client
}

// NewWishlistStore creates a wishlist store on top of an existing client.
func NewWishlistStore(client *redis.Client) *WishlistStore {
	return &WishlistStore{client: client}
}

func wishlistKey(userID string) string {
	return wishlistKeyPrefix + userID
}

// Add stores one entry in the user's wishlist. Re-adding an item overwrites
// the existing entry.
func (s *WishlistStore) Add(ctx context.Context, userID string, entry repository.WishlistEntry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal wishlist entry: %w", err)
	}

	key := wishlistKey(userID)
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key, entry.ItemID, payload)
	pipe.Expire(ctx, key, wishlistTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store wishlist entry: %w", err)
	}
	return nil
}

// Remove deletes one item from the user's wishlist. Removing an absent item
// is not an error.
func (s *WishlistStore) Remove(ctx context.Context, userID, itemID string) error {
	if err := s.client.HDel(ctx, wishlistKey(userID), itemID).Err(); err != nil {
		return fmt.Errorf("remove wishlist entry: %w", err)
	}
	return nil
}

// List returns every entry in the user's wishlist, newest first. Entries
// that no longer unmarshal are skipped.
func (s *WishlistStore) List(ctx context.Context, userID string) ([]repository.WishlistEntry, error) {
	values, err := s.client.HGetAll(ctx, wishlistKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("read wishlist: %w", err)
	}

	entries := make([]repository.WishlistEntry, 0, len(values))
	for _, raw := range values {
		var entry repository.WishlistEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].AddedAt.After(entries[j].AddedAt)
	})

	return entries, nil
}

// Ping verifies Redis connectivity for readiness checks.
func (s *WishlistStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
