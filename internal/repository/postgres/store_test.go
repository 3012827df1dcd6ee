package postgres

import (
	"context"
	"errors"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitalbuddiesspune/stylegenz/internal/domain"
	"github.com/digitalbuddiesspune/stylegenz/internal/repository"
	"github.com/digitalbuddiesspune/stylegenz/pkg/database"
	apperrors "github.com/digitalbuddiesspune/stylegenz/pkg/errors"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := database.NewMockPool()
	require.NoError(t, err)
	return mock
}

func strPtr(s string) *string { return &s }

// Column lists in scan order, shared base set plus per-table descriptors.

var baseCols = []string{
	"id", "title", "price", "original_price", "discount_percent",
	"category", "sub_category", "sub_sub_category",
	"images", "primary_image", "secondary_image", "additional_images",
	"thumbnail", "image_url",
	"rating", "ratings_count", "reviews_count",
	"is_featured", "on_sale", "in_stock",
	"product_info",
}

var mensCols = append(append([]string{}, baseCols...),
	"sole_material", "outer_material", "inner_material", "closure_type", "toe_shape",
)

var womensCols = append(append([]string{}, baseCols...),
	"sole_material", "outer_material", "inner_material", "closure_type", "toe_shape", "heel_height",
)

var accessoryCols = append(append([]string{}, baseCols...),
	"material", "accessory_type",
)

func sampleMensRecord() domain.RawRecord {
	return domain.RawRecord{
		ID:              "8f14e45f-ceea-4e17-a0f8-5e5b2c866a1d",
		Title:           "Chelsea Boot",
		Price:           1500,
		OriginalPrice:   2000,
		DiscountPercent: 25,
		Category:        "Men's Shoes",
		SubCategory:     "Boots",
		SubSubCategory:  "Chelsea",
		Images:          []string{"https://cdn.stylegenz.com/p/chelsea-boot-1.jpg"},
		PrimaryImage:    "https://cdn.stylegenz.com/p/chelsea-boot-1.jpg",
		Thumbnail:       "https://cdn.stylegenz.com/t/chelsea-boot.jpg",
		Rating:          4.2,
		RatingsCount:    31,
		ReviewsCount:    12,
		InStock:         true,
		Attributes:      map[string]string{"gender": "Men", "color": "Brown", "brand": "Harrington"},
		SoleMaterial:    "Rubber",
		OuterMaterial:   "Leather",
		InnerMaterial:   "Textile",
		ClosureType:     "Slip-On",
		ToeShape:        "Round",
	}
}

func sampleAccessoryRecord() domain.RawRecord {
	return domain.RawRecord{
		ID:            "1c9ab3e7-4f02-47d1-9b6a-02f7f3d6c54e",
		Title:         "Leather Shoe Polish",
		Price:         349,
		Category:      "Shoes Accessories",
		SubCategory:   "Shoe Care",
		ImageURL:      "https://cdn.stylegenz.com/p/shoe-polish.jpg",
		InStock:       true,
		Attributes:    map[string]string{"brand": "Harrington"},
		Material:      "Wax",
		AccessoryType: "Polish",
	}
}

func baseRow(r domain.RawRecord) []any {
	return []any{
		r.ID, r.Title, r.Price, r.OriginalPrice, r.DiscountPercent,
		r.Category, r.SubCategory, r.SubSubCategory,
		r.Images, r.PrimaryImage, r.SecondaryImage, r.AdditionalImages,
		r.Thumbnail, r.ImageURL,
		r.Rating, r.RatingsCount, r.ReviewsCount,
		r.IsFeatured, r.OnSale, r.InStock,
		r.Attributes,
	}
}

func mensRow(r domain.RawRecord) []any {
	return append(baseRow(r), r.SoleMaterial, r.OuterMaterial, r.InnerMaterial, r.ClosureType, r.ToeShape)
}

func womensRow(r domain.RawRecord) []any {
	return append(baseRow(r), r.SoleMaterial, r.OuterMaterial, r.InnerMaterial, r.ClosureType, r.ToeShape, r.HeelHeight)
}

func accessoryRow(r domain.RawRecord) []any {
	return append(baseRow(r), r.Material, r.AccessoryType)
}

func TestStore_Find_Success(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	store := NewStore(mock)

	rec := sampleMensRecord()
	spec := domain.CompileFilter(domain.CategoryMensShoes, map[string]string{"subCategory": "Boots"})

	// category=$1, sub_category=$2, LIMIT $3 OFFSET $4
	mock.ExpectQuery("SELECT .+ FROM mens_shoes WHERE .+ ORDER BY sub_category ASC, id ASC LIMIT").
		WithArgs("Men's Shoes", "Boots", 20, 0).
		WillReturnRows(
			pgxmock.NewRows(mensCols).AddRow(mensRow(rec)...),
		)

	records, err := store.Find(context.Background(), domain.VariantMensShoe, spec, repository.DefaultSort(), 0, 20)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, rec.ID, records[0].ID)
	assert.Equal(t, rec.Title, records[0].Title)
	assert.Equal(t, rec.Price, records[0].Price)
	assert.Equal(t, rec.Attributes, records[0].Attributes)
	assert.Equal(t, rec.SoleMaterial, records[0].SoleMaterial)
	assert.Equal(t, rec.ToeShape, records[0].ToeShape)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Find_FullSetWithoutLimit(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	store := NewStore(mock)

	r1 := sampleMensRecord()
	r1.Title = "Ankle Boot"
	r2 := sampleMensRecord()
	r2.ID = "52c7a3d1-88e4-4b0f-b7d2-6f01f0e3a914"
	r2.Title = "Combat Boot"

	spec := domain.CompileFilter(domain.CategoryNone, map[string]string{"search": "Boot"})

	// A non-positive limit must not append LIMIT/OFFSET placeholders.
	mock.ExpectQuery("SELECT .+ FROM womens_shoes WHERE title ILIKE").
		WithArgs("%Boot%").
		WillReturnRows(
			pgxmock.NewRows(womensCols).
				AddRow(womensRow(r1)...).
				AddRow(womensRow(r2)...),
		)

	records, err := store.Find(context.Background(), domain.VariantWomensShoe, spec, repository.DefaultSort(), 0, 0)
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Find_UnknownCollection(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	store := NewStore(mock)

	_, err := store.Find(context.Background(), domain.VariantTag("sneaker"), domain.FilterSpec{}, nil, 0, 20)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown collection")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Find_QueryError(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	store := NewStore(mock)

	mock.ExpectQuery("SELECT .+ FROM mens_shoes").
		WillReturnError(errors.New("connection refused"))

	_, err := store.Find(context.Background(), domain.VariantMensShoe, domain.FilterSpec{}, nil, 0, 20)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "query mens_shoes")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Count_Success(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	store := NewStore(mock)

	spec := domain.CompileFilter(domain.CategoryKidsShoes, nil)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM kids_shoes WHERE`).
		WithArgs("Kids Shoes").
		WillReturnRows(
			pgxmock.NewRows([]string{"count"}).AddRow(7),
		)

	count, err := store.Count(context.Background(), domain.VariantKidsShoe, spec)
	require.NoError(t, err)
	assert.Equal(t, 7, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_FindByID_Success(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	store := NewStore(mock)

	rec := sampleAccessoryRecord()
	mock.ExpectQuery("SELECT .+ FROM shoe_accessories WHERE id").
		WithArgs(rec.ID).
		WillReturnRows(
			pgxmock.NewRows(accessoryCols).AddRow(accessoryRow(rec)...),
		)

	result, err := store.FindByID(context.Background(), domain.VariantShoeAccessory, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, result.ID)
	assert.Equal(t, rec.Title, result.Title)
	assert.Equal(t, rec.ImageURL, result.ImageURL)
	assert.Equal(t, rec.Material, result.Material)
	assert.Equal(t, rec.AccessoryType, result.AccessoryType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_FindByID_NotFound(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	store := NewStore(mock)

	mock.ExpectQuery("SELECT .+ FROM mens_shoes WHERE id").
		WithArgs("8f14e45f-ceea-4e17-a0f8-5e5b2c866a1d").
		WillReturnRows(pgxmock.NewRows(mensCols))

	_, err := store.FindByID(context.Background(), domain.VariantMensShoe, "8f14e45f-ceea-4e17-a0f8-5e5b2c866a1d")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_GroupCounts_Success(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	store := NewStore(mock)

	spec := domain.CompileFilter(domain.CategoryMensShoes, nil)

	// Rows with NULL or empty group keys are dropped from the result.
	mock.ExpectQuery("SELECT product_info.+ FROM mens_shoes WHERE .+ GROUP BY 1").
		WithArgs("Men's Shoes").
		WillReturnRows(
			pgxmock.NewRows([]string{"key", "count"}).
				AddRow(strPtr("Men"), 5).
				AddRow(strPtr("Women"), 3).
				AddRow((*string)(nil), 2).
				AddRow(strPtr(""), 1),
		)

	counts, err := store.GroupCounts(context.Background(), domain.VariantMensShoe, spec, domain.AttrPath("gender"))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Men": 5, "Women": 3}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_GroupCounts_UnknownPath(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	store := NewStore(mock)

	_, err := store.GroupCounts(context.Background(), domain.VariantMensShoe, domain.FilterSpec{}, "rating")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot group by")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_Prices_Success(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	store := NewStore(mock)

	spec := domain.CompileFilter(domain.CategoryWomensShoes, nil)

	mock.ExpectQuery("SELECT price FROM womens_shoes WHERE").
		WithArgs("Women's Shoes").
		WillReturnRows(
			pgxmock.NewRows([]string{"price"}).
				AddRow(499.0).
				AddRow(1500.0).
				AddRow(3200.0),
		)

	prices, err := store.Prices(context.Background(), domain.VariantWomensShoe, spec)
	require.NoError(t, err)
	assert.Equal(t, []float64{499, 1500, 3200}, prices)
	assert.NoError(t, mock.ExpectationsWereMet())
}
