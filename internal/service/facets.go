package service

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/digitalbuddiesspune/stylegenz/internal/domain"
	apperrors "github.com/digitalbuddiesspune/stylegenz/pkg/errors"
)

// GetFacets computes the filter-UI count breakdowns for a listing query: a
// fixed price histogram plus gender, color and sub-category counts, all
// under the same compiled filter the listing itself would use. Cross-
// collection breakdowns merge by summing counts per key.
func (s *CatalogService) GetFacets(ctx context.Context, rawCategory string, params map[string]string) (domain.FacetResult, error) {
	tag := domain.ResolveCategory(rawCategory)
	if tag == domain.CategoryUnknown {
		return domain.FacetResult{}, apperrors.InvalidCategory(rawCategory)
	}

	spec := domain.CompileFilter(tag, params)

	var collections []domain.VariantTag
	if tag == domain.CategoryNone {
		collections = domain.ShoeVariants()
	} else {
		collections = []domain.VariantTag{tag.Variant()}
	}

	result := domain.NewFacetResult()
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for _, collection := range collections {
		g.Go(func() error {
			return s.collectFacets(gctx, collection, spec, &result, &mu)
		})
	}
	if err := g.Wait(); err != nil {
		return domain.FacetResult{}, apperrors.StoreUnavailable(err)
	}

	s.logger.InfoContext(ctx, "facets aggregated",
		slog.String("category", string(tag)),
		slog.Int("collections", len(collections)),
	)

	return result, nil
}

// collectFacets reads one collection's breakdowns and folds them into the
// shared result.
func (s *CatalogService) collectFacets(ctx context.Context, collection domain.VariantTag, spec domain.FilterSpec, result *domain.FacetResult, mu *sync.Mutex) error {
	genders, err := s.store.GroupCounts(ctx, collection, spec, domain.AttrPath("gender"))
	if err != nil {
		return err
	}
	colors, err := s.store.GroupCounts(ctx, collection, spec, domain.AttrPath("color"))
	if err != nil {
		return err
	}
	subCategories, err := s.store.GroupCounts(ctx, collection, spec, domain.FieldSubCategory)
	if err != nil {
		return err
	}
	prices, err := s.store.Prices(ctx, collection, spec)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()

	mergeCounts(result.Genders, genders)
	mergeCounts(result.Colors, colors)
	mergeCounts(result.SubCategories, subCategories)
	for _, price := range prices {
		if label := domain.BucketFor(price); label != "" {
			result.PriceBuckets[label]++
		}
	}
	return nil
}

func mergeCounts(dst, src map[string]int) {
	for key, count := range src {
		dst[key] += count
	}
}
