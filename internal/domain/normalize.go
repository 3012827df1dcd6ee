package domain

import (
	"math"
	"strings"
)

// PlaceholderImage is served when a record carries no usable image source.
const PlaceholderImage = "https://cdn.stylegenz.in/assets/placeholder-product.png"

// attrColumn maps one variant-specific record column into a canonical
// attribute key.
type attrColumn struct {
	key string
	get func(*RawRecord) string
}

// variantProfile describes how one record shape normalizes: which descriptor
// columns become attributes and whether the single image_url field
// participates in the image fallback chain (a leftover of the accessory
// collection's earlier schema).
type variantProfile struct {
	attrColumns []attrColumn
	useImageURL bool
}

var variantProfiles = map[VariantTag]variantProfile{
	VariantMensShoe: {
		attrColumns: []attrColumn{
			{"sole_material", func(r *RawRecord) string { return r.SoleMaterial }},
			{"outer_material", func(r *RawRecord) string { return r.OuterMaterial }},
			{"inner_material", func(r *RawRecord) string { return r.InnerMaterial }},
			{"closure_type", func(r *RawRecord) string { return r.ClosureType }},
			{"toe_shape", func(r *RawRecord) string { return r.ToeShape }},
		},
	},
	VariantWomensShoe: {
		attrColumns: []attrColumn{
			{"sole_material", func(r *RawRecord) string { return r.SoleMaterial }},
			{"outer_material", func(r *RawRecord) string { return r.OuterMaterial }},
			{"inner_material", func(r *RawRecord) string { return r.InnerMaterial }},
			{"closure_type", func(r *RawRecord) string { return r.ClosureType }},
			{"toe_shape", func(r *RawRecord) string { return r.ToeShape }},
			{"heel_height", func(r *RawRecord) string { return r.HeelHeight }},
		},
	},
	VariantKidsShoe: {
		attrColumns: []attrColumn{
			{"sole_material", func(r *RawRecord) string { return r.SoleMaterial }},
			{"outer_material", func(r *RawRecord) string { return r.OuterMaterial }},
			{"closure_type", func(r *RawRecord) string { return r.ClosureType }},
		},
	},
	VariantShoeAccessory: {
		attrColumns: []attrColumn{
			{"material", func(r *RawRecord) string { return r.Material }},
			{"accessory_type", func(r *RawRecord) string { return r.AccessoryType }},
		},
		useImageURL: true,
	},
}

// Normalize maps a raw record of the given variant shape into the canonical
// CatalogItem. It is pure and total: missing optional fields become zero
// values, never nils leaking into the output, and normalizing the same
// record twice yields identical output.
func Normalize(raw RawRecord, tag VariantTag) CatalogItem {
	profile := variantProfiles[tag]

	price, original, discount := derivePrices(raw)

	item := CatalogItem{
		ID:              raw.ID,
		Title:           strings.TrimSpace(raw.Title),
		Price:           price,
		OriginalPrice:   original,
		DiscountPercent: discount,
		Category:        raw.Category,
		SubCategory:     raw.SubCategory,
		SubSubCategory:  raw.SubSubCategory,
		Attributes:      normalizeAttributes(&raw, profile),
		Images:          resolveImages(&raw, profile),
		Rating:          raw.Rating,
		RatingsCount:    raw.RatingsCount,
		ReviewsCount:    raw.ReviewsCount,
		Flags: ItemFlags{
			IsFeatured: raw.IsFeatured,
			OnSale:     raw.OnSale,
			InStock:    raw.InStock,
		},
		Variant: tag,
	}

	return item
}

// derivePrices applies the storefront price invariant: when the MRP is
// absent and a discount is recorded, the MRP is reconstructed from the sale
// price; an explicitly stored MRP is never overwritten.
func derivePrices(raw RawRecord) (price, original, discount float64) {
	price = raw.Price
	if price < 0 {
		price = 0
	}

	discount = raw.DiscountPercent
	if discount < 0 {
		discount = 0
	}
	if discount > 100 {
		discount = 100
	}

	original = raw.OriginalPrice
	if original <= 0 {
		if discount > 0 && discount < 100 && price > 0 {
			original = math.Round(price / (1 - discount/100))
		} else {
			original = price
		}
	}

	return price, original, discount
}

// resolveImages walks the image fallback chain and returns the first
// non-empty source, preserving the order in which non-empty entries were
// found. A record with no usable source gets the placeholder.
func resolveImages(raw *RawRecord, profile variantProfile) []string {
	if imgs := nonEmpty(raw.Images); len(imgs) > 0 {
		return imgs
	}

	// Legacy structured shape: two primary fields plus additional images.
	legacy := make([]string, 0, 2+len(raw.AdditionalImages))
	legacy = append(legacy, raw.PrimaryImage, raw.SecondaryImage)
	legacy = append(legacy, raw.AdditionalImages...)
	if imgs := nonEmpty(legacy); len(imgs) > 0 {
		return imgs
	}

	if raw.Thumbnail != "" {
		return []string{raw.Thumbnail}
	}

	if profile.useImageURL && raw.ImageURL != "" {
		return []string{raw.ImageURL}
	}

	return []string{PlaceholderImage}
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// normalizeAttributes promotes brand/gender/color out of the open map and
// folds the variant's descriptor columns into Extra. Open-map keys never
// override descriptor columns of the same name.
func normalizeAttributes(raw *RawRecord, profile variantProfile) ItemAttributes {
	attrs := ItemAttributes{
		Extra: make(map[string]string),
	}

	for k, v := range raw.Attributes {
		if v == "" {
			continue
		}
		switch strings.ToLower(k) {
		case "brand":
			attrs.Brand = v
		case "gender":
			attrs.Gender = v
		case "color", "colour":
			attrs.Color = v
		default:
			attrs.Extra[strings.ToLower(k)] = v
		}
	}

	for _, col := range profile.attrColumns {
		if v := col.get(raw); v != "" {
			attrs.Extra[col.key] = v
		}
	}

	return attrs
}
