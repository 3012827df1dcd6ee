package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/digitalbuddiesspune/stylegenz/internal/domain"
	"github.com/digitalbuddiesspune/stylegenz/internal/repository"
	apperrors "github.com/digitalbuddiesspune/stylegenz/pkg/errors"
)

type mockWishlistStore struct {
	mock.Mock
}

func (m *mockWishlistStore) Add(ctx context.Context, userID string, entry repository.WishlistEntry) error {
	return m.Called(ctx, userID, entry).Error(0)
}

func (m *mockWishlistStore) Remove(ctx context.Context, userID, itemID string) error {
	return m.Called(ctx, userID, itemID).Error(0)
}

func (m *mockWishlistStore) List(ctx context.Context, userID string) ([]repository.WishlistEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.WishlistEntry), args.Error(1)
}

func (m *mockWishlistStore) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func newWishlistService(wishlists *mockWishlistStore, records *mockRecordStore) (*WishlistService, *recordingPublisher) {
	events := &recordingPublisher{}
	return NewWishlistService(wishlists, records, events, testLogger()), events
}

func TestWishlistAdd(t *testing.T) {
	wishlists := &mockWishlistStore{}
	records := &mockRecordStore{}
	svc, events := newWishlistService(wishlists, records)

	id := uuid.NewString()
	records.On("FindByID", mock.Anything, domain.VariantMensShoe, id).
		Return(bootRecord(id, "Classic Boot", 1500), nil)
	wishlists.On("Add", mock.Anything, "user-1", mock.MatchedBy(func(e repository.WishlistEntry) bool {
		return e.ItemID == id && e.Variant == domain.VariantMensShoe && !e.AddedAt.IsZero()
	})).Return(nil)

	err := svc.AddItem(context.Background(), "user-1", id, domain.VariantMensShoe)

	require.NoError(t, err)
	require.Len(t, events.wishlist, 1)
	assert.Equal(t, "added", events.wishlist[0].Action)

	wishlists.AssertExpectations(t)
}

func TestWishlistAdd_Rejections(t *testing.T) {
	wishlists := &mockWishlistStore{}
	records := &mockRecordStore{}
	svc, _ := newWishlistService(wishlists, records)

	t.Run("malformed item id", func(t *testing.T) {
		err := svc.AddItem(context.Background(), "user-1", "garbage", domain.VariantMensShoe)
		assert.ErrorIs(t, err, apperrors.ErrInvalidIdentifier)
	})

	t.Run("unknown variant", func(t *testing.T) {
		err := svc.AddItem(context.Background(), "user-1", uuid.NewString(), "hats")
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("item does not exist", func(t *testing.T) {
		id := uuid.NewString()
		records.On("FindByID", mock.Anything, domain.VariantKidsShoe, id).
			Return(domain.RawRecord{}, apperrors.ErrNotFound)

		err := svc.AddItem(context.Background(), "user-1", id, domain.VariantKidsShoe)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	wishlists.AssertNotCalled(t, "Add")
}

func TestWishlistRemove(t *testing.T) {
	wishlists := &mockWishlistStore{}
	svc, events := newWishlistService(wishlists, &mockRecordStore{})

	id := uuid.NewString()
	wishlists.On("Remove", mock.Anything, "user-1", id).Return(nil)

	require.NoError(t, svc.RemoveItem(context.Background(), "user-1", id))
	require.Len(t, events.wishlist, 1)
	assert.Equal(t, "removed", events.wishlist[0].Action)
}

func TestWishlistList_ResolvesAndSkipsMissing(t *testing.T) {
	wishlists := &mockWishlistStore{}
	records := &mockRecordStore{}
	svc, _ := newWishlistService(wishlists, records)

	keptID, goneID := uuid.NewString(), uuid.NewString()
	wishlists.On("List", mock.Anything, "user-1").Return([]repository.WishlistEntry{
		{ItemID: keptID, Variant: domain.VariantWomensShoe, AddedAt: time.Now()},
		{ItemID: goneID, Variant: domain.VariantMensShoe, AddedAt: time.Now().Add(-time.Hour)},
	}, nil)

	records.On("FindByID", mock.Anything, domain.VariantWomensShoe, keptID).
		Return(bootRecord(keptID, "Chelsea Boot", 2100), nil)
	records.On("FindByID", mock.Anything, domain.VariantMensShoe, goneID).
		Return(domain.RawRecord{}, apperrors.ErrNotFound)

	items, err := svc.ListItems(context.Background(), "user-1")

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Chelsea Boot", items[0].Title)
	assert.Equal(t, domain.VariantWomensShoe, items[0].Variant)
}

func TestWishlistList_StoreFailure(t *testing.T) {
	wishlists := &mockWishlistStore{}
	svc, _ := newWishlistService(wishlists, &mockRecordStore{})

	wishlists.On("List", mock.Anything, "user-1").Return(nil, errors.New("connection refused"))

	_, err := svc.ListItems(context.Background(), "user-1")

	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
}
