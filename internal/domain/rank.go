package domain

import (
	"sort"
	"strings"
)

// RankPage is the outcome of ranking and paginating a merged fan-out result.
type RankPage struct {
	Items      []CatalogItem
	TotalItems int
}

// RankAndPage orders a merged cross-collection search result and slices one
// page out of it.
//
// The items arrive already contains-matched on title by the fan-out reads.
// Steps: apply any still-pending price range as a post-filter over the sale
// price, partition into two tiers (titles starting with the term beat titles
// merely containing it), stable-sort so relative order within a tier is
// preserved, then slice [offset, offset+limit). Output is deterministic for
// identical input ordering.
func RankAndPage(items []CatalogItem, term string, priceFilter *FieldCondition, offset, limit int) RankPage {
	filtered := items
	if priceFilter != nil {
		filtered = make([]CatalogItem, 0, len(items))
		for _, it := range items {
			if priceFilter.Min > it.Price {
				continue
			}
			if priceFilter.Max != nil && it.Price > *priceFilter.Max {
				continue
			}
			filtered = append(filtered, it)
		}
	}

	termLower := strings.ToLower(strings.TrimSpace(term))
	if termLower != "" {
		// SliceStable keeps arrival order within a tier, which is what makes
		// the ranking reproducible across runs.
		sort.SliceStable(filtered, func(i, j int) bool {
			return rankTier(filtered[i].Title, termLower) < rankTier(filtered[j].Title, termLower)
		})
	}

	total := len(filtered)

	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	end := total
	if limit > 0 && offset+limit < total {
		end = offset + limit
	}

	page := make([]CatalogItem, end-offset)
	copy(page, filtered[offset:end])

	return RankPage{Items: page, TotalItems: total}
}

// rankTier returns 0 for a title that starts with the search term and 1 for
// everything else.
func rankTier(title, termLower string) int {
	if strings.HasPrefix(strings.ToLower(title), termLower) {
		return 0
	}
	return 1
}
