package domain

// VariantTag identifies which of the four physical record shapes a raw
// record (and the item normalized from it) came from.
type VariantTag string

const (
	VariantMensShoe      VariantTag = "mens_shoe"
	VariantWomensShoe    VariantTag = "womens_shoe"
	VariantKidsShoe      VariantTag = "kids_shoe"
	VariantShoeAccessory VariantTag = "shoe_accessory"
)

// AllVariants returns the variant tags in the storefront's canonical probe
// order: mens, womens, kids, accessories.
func AllVariants() []VariantTag {
	return []VariantTag{VariantMensShoe, VariantWomensShoe, VariantKidsShoe, VariantShoeAccessory}
}

// ShoeVariants returns the three shoe collections read by the fan-out paths.
// Accessories are excluded from cross-collection listing and faceting.
func ShoeVariants() []VariantTag {
	return []VariantTag{VariantMensShoe, VariantWomensShoe, VariantKidsShoe}
}

// IsValidVariant checks whether the given string is a known variant tag.
func IsValidVariant(tag string) bool {
	switch VariantTag(tag) {
	case VariantMensShoe, VariantWomensShoe, VariantKidsShoe, VariantShoeAccessory:
		return true
	}
	return false
}

// ItemAttributes holds the open attribute map of a catalog item, with the
// fields the filter compiler and facet aggregator address promoted to typed
// fields. Everything else lives in Extra.
type ItemAttributes struct {
	Brand  string            `json:"brand"`
	Gender string            `json:"gender"`
	Color  string            `json:"color"`
	Extra  map[string]string `json:"extra,omitempty"`
}

// ItemFlags holds the boolean merchandising flags of a catalog item.
type ItemFlags struct {
	IsFeatured bool `json:"is_featured"`
	OnSale     bool `json:"on_sale"`
	InStock    bool `json:"in_stock"`
}

// CatalogItem is the canonical, variant-agnostic product view returned by
// the catalog. It is a request-scoped value, never persisted in this shape.
type CatalogItem struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Price           float64        `json:"price"`
	OriginalPrice   float64        `json:"original_price"`
	DiscountPercent float64        `json:"discount_percent"`
	Category        string         `json:"category"`
	SubCategory     string         `json:"sub_category"`
	SubSubCategory  string         `json:"sub_sub_category"`
	Attributes      ItemAttributes `json:"attributes"`
	Images          []string       `json:"images"`
	Rating          float64        `json:"rating"`
	RatingsCount    int            `json:"ratings_count"`
	ReviewsCount    int            `json:"reviews_count"`
	Flags           ItemFlags      `json:"flags"`
	Variant         VariantTag     `json:"variant"`
}

// RawRecord is the superset of the four physical record shapes as read from
// the store. Fields that a given collection does not carry stay at their
// zero value; the normalizer's per-variant descriptor decides which ones are
// meaningful.
type RawRecord struct {
	ID              string
	Title           string
	Price           float64
	OriginalPrice   float64
	DiscountPercent float64
	Category        string
	SubCategory     string
	SubSubCategory  string

	// Image sources, in fallback-chain order.
	Images           []string
	PrimaryImage     string
	SecondaryImage   string
	AdditionalImages []string
	Thumbnail        string
	ImageURL         string

	Rating       float64
	RatingsCount int
	ReviewsCount int

	IsFeatured bool
	OnSale     bool
	InStock    bool

	// Open attribute map (the product_info column).
	Attributes map[string]string

	// Variant-specific descriptor columns.
	SoleMaterial  string
	OuterMaterial string
	InnerMaterial string
	ClosureType   string
	ToeShape      string
	HeelHeight    string
	Material      string
	AccessoryType string
}

// FacetResult holds the filter-UI count breakdowns for a listing query.
// Built fresh per request; never cached.
type FacetResult struct {
	PriceBuckets  map[string]int `json:"price_buckets"`
	Genders       map[string]int `json:"genders"`
	Colors        map[string]int `json:"colors"`
	SubCategories map[string]int `json:"sub_categories"`
}

// NewFacetResult returns an empty facet result with all maps allocated.
func NewFacetResult() FacetResult {
	return FacetResult{
		PriceBuckets:  make(map[string]int),
		Genders:       make(map[string]int),
		Colors:        make(map[string]int),
		SubCategories: make(map[string]int),
	}
}

// PriceBucket is one inclusive price range of the facet histogram. A
// negative Max means the bucket is open-ended.
type PriceBucket struct {
	Label string
	Min   float64
	Max   float64
}

// PriceBuckets is the fixed storefront histogram. Buckets are mutually
// exclusive by construction; BucketFor assigns each price to the first match.
var PriceBuckets = []PriceBucket{
	{Label: "300-1000", Min: 300, Max: 1000},
	{Label: "1001-2000", Min: 1001, Max: 2000},
	{Label: "2001-3000", Min: 2001, Max: 3000},
	{Label: "3001-4000", Min: 3001, Max: 4000},
	{Label: "4001-5000", Min: 4001, Max: 5000},
	{Label: "5000+", Min: 5001, Max: -1},
}

// BucketFor returns the label of the first bucket whose inclusive range
// contains the price, or "" when the price falls below every bucket.
func BucketFor(price float64) string {
	for _, b := range PriceBuckets {
		if price >= b.Min && (b.Max < 0 || price <= b.Max) {
			return b.Label
		}
	}
	return ""
}
