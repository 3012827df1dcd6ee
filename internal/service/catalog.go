package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/digitalbuddiesspune/stylegenz/internal/domain"
	"github.com/digitalbuddiesspune/stylegenz/internal/event"
	"github.com/digitalbuddiesspune/stylegenz/internal/repository"
	apperrors "github.com/digitalbuddiesspune/stylegenz/pkg/errors"
	"github.com/digitalbuddiesspune/stylegenz/pkg/pagination"
)

// CatalogService answers listing, lookup and facet queries over the four
// catalog collections.
type CatalogService struct {
	store  repository.RecordStore
	events event.Publisher
	logger *slog.Logger
}

// NewCatalogService creates a catalog service.
func NewCatalogService(store repository.RecordStore, events event.Publisher, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		store:  store,
		events: events,
		logger: logger,
	}
}

// ListResult is one page of a catalog listing.
type ListResult struct {
	Items      []domain.CatalogItem
	TotalItems int
}

// ListCatalog resolves the raw category, compiles the request's query
// parameters into a filter, and returns one normalized page. A recognized
// category reads a single collection; no category fans out across the three
// shoe collections. An unrecognized category fails with ErrInvalidCategory
// before any store read.
func (s *CatalogService) ListCatalog(ctx context.Context, rawCategory string, params map[string]string, page pagination.Params) (ListResult, error) {
	tag := domain.ResolveCategory(rawCategory)
	if tag == domain.CategoryUnknown {
		return ListResult{}, apperrors.InvalidCategory(rawCategory)
	}

	spec := domain.CompileFilter(tag, params)

	var (
		result ListResult
		err    error
	)
	if tag == domain.CategoryNone {
		result, err = s.listFanOut(ctx, spec, page)
	} else {
		result, err = s.listTargeted(ctx, tag.Variant(), spec, page)
	}
	if err != nil {
		return ListResult{}, err
	}

	term, _ := spec.Search()
	s.events.CatalogSearched(ctx, event.SearchedPayload{
		Category:   string(tag),
		SearchTerm: term,
		Filters:    len(spec.Conditions),
		Page:       page.Page,
		TotalItems: result.TotalItems,
	})

	s.logger.InfoContext(ctx, "catalog listed",
		slog.String("category", string(tag)),
		slog.Int("conditions", len(spec.Conditions)),
		slog.Int("total_items", result.TotalItems),
	)

	return result, nil
}

// listTargeted reads one collection with the filter pushed down to the
// store, sorted for stable pagination.
func (s *CatalogService) listTargeted(ctx context.Context, collection domain.VariantTag, spec domain.FilterSpec, page pagination.Params) (ListResult, error) {
	var (
		records []domain.RawRecord
		total   int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.store.Find(gctx, collection, spec, repository.DefaultSort(), page.Offset, page.PerPage)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.store.Count(gctx, collection, spec)
		return err
	})
	if err := g.Wait(); err != nil {
		return ListResult{}, apperrors.StoreUnavailable(err)
	}

	return ListResult{
		Items:      normalizeAll(records, collection),
		TotalItems: total,
	}, nil
}

// listFanOut reads the three shoe collections concurrently. With a search
// term the full match sets are merged and ranked in memory; without one,
// each collection contributes a proportional slice of the page. Any failed
// read fails the whole call.
func (s *CatalogService) listFanOut(ctx context.Context, spec domain.FilterSpec, page pagination.Params) (ListResult, error) {
	variants := domain.ShoeVariants()

	if term, ok := spec.Search(); ok {
		// Price filtering moves to the ranker so every collection's matches
		// make it into the merged set before the page is cut.
		stripped := spec.WithoutPrice()

		merged := make([][]domain.CatalogItem, len(variants))
		g, gctx := errgroup.WithContext(ctx)
		for i, variant := range variants {
			g.Go(func() error {
				records, err := s.store.Find(gctx, variant, stripped, repository.DefaultSort(), 0, 0)
				if err != nil {
					return err
				}
				merged[i] = normalizeAll(records, variant)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return ListResult{}, apperrors.StoreUnavailable(err)
		}

		var all []domain.CatalogItem
		for _, items := range merged {
			all = append(all, items...)
		}

		var priceCond *domain.FieldCondition
		if cond, ok := spec.PriceRange(); ok {
			priceCond = &cond
		}

		ranked := domain.RankAndPage(all, term, priceCond, page.Offset, page.PerPage)
		return ListResult{Items: ranked.Items, TotalItems: ranked.TotalItems}, nil
	}

	// Browse path: split the page evenly across the collections.
	perCollection := (page.PerPage + len(variants) - 1) / len(variants)
	offset := page.Offset / len(variants)

	pages := make([][]domain.CatalogItem, len(variants))
	totals := make([]int, len(variants))

	g, gctx := errgroup.WithContext(ctx)
	for i, variant := range variants {
		g.Go(func() error {
			records, err := s.store.Find(gctx, variant, spec, repository.DefaultSort(), offset, perCollection)
			if err != nil {
				return err
			}
			pages[i] = normalizeAll(records, variant)

			total, err := s.store.Count(gctx, variant, spec)
			if err != nil {
				return err
			}
			totals[i] = total
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return ListResult{}, apperrors.StoreUnavailable(err)
	}

	result := ListResult{Items: make([]domain.CatalogItem, 0, page.PerPage)}
	for i := range variants {
		result.Items = append(result.Items, pages[i]...)
		result.TotalItems += totals[i]
	}
	if len(result.Items) > page.PerPage {
		result.Items = result.Items[:page.PerPage]
	}

	return result, nil
}

// GetItemByID probes the collections in canonical order and returns the
// first normalized match. A malformed identifier fails before any store
// read.
func (s *CatalogService) GetItemByID(ctx context.Context, id string) (domain.CatalogItem, error) {
	if _, err := uuid.Parse(id); err != nil {
		return domain.CatalogItem{}, apperrors.InvalidIdentifier(id)
	}

	for _, variant := range domain.AllVariants() {
		record, err := s.store.FindByID(ctx, variant, id)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				continue
			}
			return domain.CatalogItem{}, apperrors.StoreUnavailable(err)
		}
		return domain.Normalize(record, variant), nil
	}

	return domain.CatalogItem{}, apperrors.NotFound("item", id)
}

// Categories returns the browsable category tags with their display names.
func (s *CatalogService) Categories() []CategoryInfo {
	known := domain.KnownCategories()
	out := make([]CategoryInfo, 0, len(known))
	for _, tag := range known {
		out = append(out, CategoryInfo{
			Tag:         tag,
			DisplayName: tag.DisplayName(),
		})
	}
	return out
}

// CategoryInfo is one browsable category.
type CategoryInfo struct {
	Tag         domain.CategoryTag `json:"tag"`
	DisplayName string             `json:"display_name"`
}

func normalizeAll(records []domain.RawRecord, variant domain.VariantTag) []domain.CatalogItem {
	items := make([]domain.CatalogItem, len(records))
	for i, record := range records {
		items[i] = domain.Normalize(record, variant)
	}
	return items
}
