package domain

import (
	"net/url"
	"strings"
)

// CategoryTag is the resolved storefront taxonomy entry for a category
// parameter.
type CategoryTag string

const (
	CategoryMensShoes        CategoryTag = "mens_shoes"
	CategoryWomensShoes      CategoryTag = "womens_shoes"
	CategoryKidsShoes        CategoryTag = "kids_shoes"
	CategoryShoesAccessories CategoryTag = "shoes_accessories"

	// CategoryUnknown means a category was requested but matches no known
	// taxonomy entry. Callers must treat this as a client error, not an
	// empty result.
	CategoryUnknown CategoryTag = "unknown"

	// CategoryNone means no category was requested.
	CategoryNone CategoryTag = "none"
)

// DisplayName returns the storefront display string for a taxonomy entry.
func (t CategoryTag) DisplayName() string {
	switch t {
	case CategoryMensShoes:
		return "Men's Shoes"
	case CategoryWomensShoes:
		return "Women's Shoes"
	case CategoryKidsShoes:
		return "Kids Shoes"
	case CategoryShoesAccessories:
		return "Shoes Accessories"
	}
	return ""
}

// Variant returns the physical collection a targeted category reads from,
// or "" for CategoryNone and CategoryUnknown.
func (t CategoryTag) Variant() VariantTag {
	switch t {
	case CategoryMensShoes:
		return VariantMensShoe
	case CategoryWomensShoes:
		return VariantWomensShoe
	case CategoryKidsShoes:
		return VariantKidsShoe
	case CategoryShoesAccessories:
		return VariantShoeAccessory
	}
	return ""
}

// Category returns the taxonomy entry a collection belongs to.
func (v VariantTag) Category() CategoryTag {
	switch v {
	case VariantMensShoe:
		return CategoryMensShoes
	case VariantWomensShoe:
		return CategoryWomensShoes
	case VariantKidsShoe:
		return CategoryKidsShoes
	case VariantShoeAccessory:
		return CategoryShoesAccessories
	}
	return CategoryNone
}

// KnownCategories returns the taxonomy entries in display order.
func KnownCategories() []CategoryTag {
	return []CategoryTag{
		CategoryMensShoes,
		CategoryWomensShoes,
		CategoryKidsShoes,
		CategoryShoesAccessories,
	}
}

// categoryAliases maps canonicalized category strings to taxonomy tags.
// Keys are produced by canonicalCategoryKey, so apostrophes and plural "s"
// suffixes are already stripped. "footwear" is the legacy alias the old
// storefront used for the men's collection.
var categoryAliases = map[string]CategoryTag{
	"men shoe":        CategoryMensShoes,
	"footwear":        CategoryMensShoes,
	"women shoe":      CategoryWomensShoes,
	"kid shoe":        CategoryKidsShoes,
	"shoe accessorie": CategoryShoesAccessories,
	"shoe accessory":  CategoryShoesAccessories,
}

// ResolveCategory decodes a raw category parameter and resolves it to a
// taxonomy tag. It never fails: empty input resolves to CategoryNone and
// unmatched non-empty input to CategoryUnknown.
//
// Decoding tolerates the URL conventions seen in the wild: "+" for spaces,
// percent-encoding (applied only when a "%" is present, so literal
// percent-free values pass through untouched), and hyphenated route slugs.
func ResolveCategory(raw string) CategoryTag {
	s := strings.NewReplacer("+", " ", "-", " ").Replace(raw)
	if strings.Contains(s, "%") {
		if decoded, err := url.QueryUnescape(s); err == nil {
			s = decoded
		}
	}
	s = strings.TrimSpace(s)

	if s == "" {
		return CategoryNone
	}

	if tag, ok := categoryAliases[canonicalCategoryKey(s)]; ok {
		return tag
	}
	return CategoryUnknown
}

// canonicalCategoryKey lowercases, strips apostrophe variants, and removes a
// trailing "s" from every word, so "Men's Shoes", "mens shoe" and
// "MENS SHOES" all collapse to "men shoe".
func canonicalCategoryKey(s string) string {
	s = strings.ToLower(s)
	s = strings.NewReplacer("'", "", "’", "", "ʼ", "").Replace(s)

	words := strings.Fields(s)
	for i, w := range words {
		if len(w) > 1 && strings.HasSuffix(w, "s") {
			words[i] = w[:len(w)-1]
		}
	}
	return strings.Join(words, " ")
}
