package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/digitalbuddiesspune/stylegenz/internal/domain"
	"github.com/digitalbuddiesspune/stylegenz/internal/repository"
	"github.com/digitalbuddiesspune/stylegenz/pkg/database"
	apperrors "github.com/digitalbuddiesspune/stylegenz/pkg/errors"
)

// tableSpec describes one physical collection: its table name and the
// variant-specific descriptor columns it carries beyond the shared base set.
type tableSpec struct {
	name      string
	extraCols []string
	extraPtrs func(r *domain.RawRecord) []any
}

var tables = map[domain.VariantTag]tableSpec{
	domain.VariantMensShoe: {
		name:      "mens_shoes",
		extraCols: []string{"sole_material", "outer_material", "inner_material", "closure_type", "toe_shape"},
		extraPtrs: func(r *domain.RawRecord) []any {
			return []any{&r.SoleMaterial, &r.OuterMaterial, &r.InnerMaterial, &r.ClosureType, &r.ToeShape}
		},
	},
	domain.VariantWomensShoe: {
		name:      "womens_shoes",
		extraCols: []string{"sole_material", "outer_material", "inner_material", "closure_type", "toe_shape", "heel_height"},
		extraPtrs: func(r *domain.RawRecord) []any {
			return []any{&r.SoleMaterial, &r.OuterMaterial, &r.InnerMaterial, &r.ClosureType, &r.ToeShape, &r.HeelHeight}
		},
	},
	domain.VariantKidsShoe: {
		name:      "kids_shoes",
		extraCols: []string{"sole_material", "outer_material", "closure_type"},
		extraPtrs: func(r *domain.RawRecord) []any {
			return []any{&r.SoleMaterial, &r.OuterMaterial, &r.ClosureType}
		},
	},
	domain.VariantShoeAccessory: {
		name:      "shoe_accessories",
		extraCols: []string{"material", "accessory_type"},
		extraPtrs: func(r *domain.RawRecord) []any {
			return []any{&r.Material, &r.AccessoryType}
		},
	},
}

// Columns every collection carries, in scan order.
var baseColumns = []string{
	"id", "title", "price", "original_price", "discount_percent",
	"category", "sub_category", "sub_sub_category",
	"images", "primary_image", "secondary_image", "additional_images",
	"thumbnail", "image_url",
	"rating", "ratings_count", "reviews_count",
	"is_featured", "on_sale", "in_stock",
	"product_info",
}

// Store is the Postgres-backed record store over the four catalog tables.
type Store struct {
	pool database.DBTX
}

// NewStore creates a record store on top of an existing connection pool.
func NewStore(pool database.DBTX) *Store {
	return &Store{pool: pool}
}

func (s *Store) table(collection domain.VariantTag) (tableSpec, error) {
	tbl, ok := tables[collection]
	if !ok {
		return tableSpec{}, fmt.Errorf("unknown collection %q", collection)
	}
	return tbl, nil
}

// Find returns one page of raw records matching the filter.
func (s *Store) Find(ctx context.Context, collection domain.VariantTag, spec domain.FilterSpec, sort []repository.SortKey, offset, limit int) ([]domain.RawRecord, error) {
	tbl, err := s.table(collection)
	if err != nil {
		return nil, err
	}

	where, args := buildWhere(spec, 1)

	query := fmt.Sprintf("SELECT %s FROM %s%s%s", selectColumns(tbl), tbl.name, where, orderBy(sort))

	// A non-positive limit reads the full match set, which the in-memory
	// search ranker needs.
	if limit > 0 {
		argIndex := len(args) + 1
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
		args = append(args, limit, offset)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", tbl.name, err)
	}
	defer rows.Close()

	var records []domain.RawRecord
	for rows.Next() {
		record, err := scanRecord(rows, tbl)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", tbl.name, err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", tbl.name, err)
	}

	return records, nil
}

// Count returns the total number of records matching the filter.
func (s *Store) Count(ctx context.Context, collection domain.VariantTag, spec domain.FilterSpec) (int, error) {
	tbl, err := s.table(collection)
	if err != nil {
		return 0, err
	}

	where, args := buildWhere(spec, 1)
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s%s", tbl.name, where)

	var count int
	if err := s.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count %s: %w", tbl.name, err)
	}
	return count, nil
}

// FindByID returns the record with the given ID from one collection.
func (s *Store) FindByID(ctx context.Context, collection domain.VariantTag, id string) (domain.RawRecord, error) {
	tbl, err := s.table(collection)
	if err != nil {
		return domain.RawRecord{}, err
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", selectColumns(tbl), tbl.name)

	rows, err := s.pool.Query(ctx, query, id)
	if err != nil {
		return domain.RawRecord{}, fmt.Errorf("query %s by id: %w", tbl.name, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return domain.RawRecord{}, fmt.Errorf("query %s by id: %w", tbl.name, err)
		}
		return domain.RawRecord{}, apperrors.ErrNotFound
	}

	record, err := scanRecord(rows, tbl)
	if err != nil {
		return domain.RawRecord{}, fmt.Errorf("scan %s: %w", tbl.name, err)
	}
	return record, nil
}

// GroupCounts returns matching-record counts grouped by the given field
// path. Rows whose group value is empty are dropped.
func (s *Store) GroupCounts(ctx context.Context, collection domain.VariantTag, spec domain.FilterSpec, path string) (map[string]int, error) {
	tbl, err := s.table(collection)
	if err != nil {
		return nil, err
	}

	expr, err := groupExpr(path)
	if err != nil {
		return nil, err
	}

	where, args := buildWhere(spec, 1)
	query := fmt.Sprintf("SELECT %s, COUNT(*) FROM %s%s GROUP BY 1", expr, tbl.name, where)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("group counts %s: %w", tbl.name, err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var key *string
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			return nil, fmt.Errorf("scan group counts %s: %w", tbl.name, err)
		}
		if key == nil || *key == "" {
			continue
		}
		counts[*key] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate group counts %s: %w", tbl.name, err)
	}

	return counts, nil
}

// Prices returns the sale prices of every record matching the filter.
func (s *Store) Prices(ctx context.Context, collection domain.VariantTag, spec domain.FilterSpec) ([]float64, error) {
	tbl, err := s.table(collection)
	if err != nil {
		return nil, err
	}

	where, args := buildWhere(spec, 1)
	query := fmt.Sprintf("SELECT price FROM %s%s", tbl.name, where)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("prices %s: %w", tbl.name, err)
	}
	defer rows.Close()

	var prices []float64
	for rows.Next() {
		var price float64
		if err := rows.Scan(&price); err != nil {
			return nil, fmt.Errorf("scan price %s: %w", tbl.name, err)
		}
		prices = append(prices, price)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate prices %s: %w", tbl.name, err)
	}

	return prices, nil
}

// Ping verifies database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func selectColumns(tbl tableSpec) string {
	cols := make([]string, 0, len(baseColumns)+len(tbl.extraCols))
	cols = append(cols, baseColumns...)
	cols = append(cols, tbl.extraCols...)
	return strings.Join(cols, ", ")
}

func scanRecord(rows pgx.Rows, tbl tableSpec) (domain.RawRecord, error) {
	var r domain.RawRecord

	dest := []any{
		&r.ID, &r.Title, &r.Price, &r.OriginalPrice, &r.DiscountPercent,
		&r.Category, &r.SubCategory, &r.SubSubCategory,
		&r.Images, &r.PrimaryImage, &r.SecondaryImage, &r.AdditionalImages,
		&r.Thumbnail, &r.ImageURL,
		&r.Rating, &r.RatingsCount, &r.ReviewsCount,
		&r.IsFeatured, &r.OnSale, &r.InStock,
		&r.Attributes,
	}
	dest = append(dest, tbl.extraPtrs(&r)...)

	if err := rows.Scan(dest...); err != nil {
		return domain.RawRecord{}, err
	}
	return r, nil
}
