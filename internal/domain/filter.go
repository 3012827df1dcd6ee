package domain

import (
	"sort"
	"strconv"
	"strings"
)

// ConditionKind is the comparison applied by one field condition.
type ConditionKind int

const (
	// EqualsFold is an anchored, case-insensitive equality match.
	EqualsFold ConditionKind = iota
	// ContainsFold is a case-insensitive substring match.
	ContainsFold
	// RangeInclusive matches numeric values within [Min, Max]; a nil Max
	// leaves the range open-ended.
	RangeInclusive
)

// Field paths understood by the record store.
const (
	FieldCategory       = "category"
	FieldSubCategory    = "sub_category"
	FieldSubSubCategory = "sub_sub_category"
	FieldTitle          = "title"
	FieldPrice          = "price"

	attrPathPrefix = "attributes."
)

// AttrPath builds the field path for a key of the open attribute map.
func AttrPath(key string) string {
	return attrPathPrefix + key
}

// IsAttrPath reports whether the path addresses the open attribute map and
// returns the attribute key.
func IsAttrPath(path string) (string, bool) {
	if strings.HasPrefix(path, attrPathPrefix) {
		return path[len(attrPathPrefix):], true
	}
	return "", false
}

// FieldCondition is one AND-composed condition of a filter.
type FieldCondition struct {
	Path  string
	Kind  ConditionKind
	Value string

	// Range bounds, set only for RangeInclusive.
	Min float64
	Max *float64
}

// FilterSpec is the backend-agnostic filter expression for one listing
// request: an AND-list of field conditions. Built fresh per request, never
// cached or shared.
type FilterSpec struct {
	Conditions []FieldCondition
}

// Equals appends an anchored case-insensitive equality condition.
func (s *FilterSpec) Equals(path, value string) {
	s.Conditions = append(s.Conditions, FieldCondition{Path: path, Kind: EqualsFold, Value: value})
}

// Contains appends a case-insensitive substring condition.
func (s *FilterSpec) Contains(path, value string) {
	s.Conditions = append(s.Conditions, FieldCondition{Path: path, Kind: ContainsFold, Value: value})
}

// Range appends an inclusive numeric range condition.
func (s *FilterSpec) Range(path string, min float64, max *float64) {
	s.Conditions = append(s.Conditions, FieldCondition{Path: path, Kind: RangeInclusive, Min: min, Max: max})
}

// PriceRange returns the compiled price range condition, if any. The fan-out
// search path uses this to re-apply the price filter in memory.
func (s FilterSpec) PriceRange() (FieldCondition, bool) {
	for _, c := range s.Conditions {
		if c.Path == FieldPrice && c.Kind == RangeInclusive {
			return c, true
		}
	}
	return FieldCondition{}, false
}

// WithoutPrice returns a copy of the spec with price range conditions
// removed. The fan-out reads defer price filtering to the ranker.
func (s FilterSpec) WithoutPrice() FilterSpec {
	out := FilterSpec{Conditions: make([]FieldCondition, 0, len(s.Conditions))}
	for _, c := range s.Conditions {
		if c.Path == FieldPrice && c.Kind == RangeInclusive {
			continue
		}
		out.Conditions = append(out.Conditions, c)
	}
	return out
}

// Search returns the compiled title search term, if any.
func (s FilterSpec) Search() (string, bool) {
	for _, c := range s.Conditions {
		if c.Path == FieldTitle && c.Kind == ContainsFold {
			return c.Value, true
		}
	}
	return "", false
}

// reservedKeys are query parameters with dedicated compiler rules or
// meanings outside filtering; they are never treated as attribute filters.
var reservedKeys = map[string]struct{}{
	"category":       {},
	"subcategory":    {},
	"subsubcategory": {},
	"search":         {},
	"pricerange":     {},
	"gender":         {},
	"color":          {},
	"brand":          {},
	"page":           {},
	"per_page":       {},
	"limit":          {},
	"sort":           {},
}

// hierarchicalKeys is the explicit allow-list of legacy admin filter keys,
// mapped to attribute paths. Anything outside this table and the reserved
// set is ignored rather than compiled into a store path.
var hierarchicalKeys = map[string]string{
	"gender":        "gender",
	"brands":        "brand",
	"shape":         "shape",
	"usage":         "usage",
	"material":      "material",
	"solematerial":  "sole_material",
	"outermaterial": "outer_material",
	"innermaterial": "inner_material",
	"closuretype":   "closure_type",
	"toeshape":      "toe_shape",
	"heelheight":    "heel_height",
	"heeltype":      "heel_type",
	"accessorytype": "accessory_type",
	"occasion":      "occasion",
	"pattern":       "pattern",
	"shoewidth":     "shoe_width",
	"fastenertype":  "fastener_type",
}

// CompileFilter turns a resolved category tag and the request's query
// parameters into a FilterSpec. It is pure and total over any input map:
// malformed values are ignored, never rejected, and the store is never
// touched.
func CompileFilter(tag CategoryTag, params map[string]string) FilterSpec {
	var spec FilterSpec

	if name := tag.DisplayName(); name != "" {
		spec.Equals(FieldCategory, name)
	}

	if v := params["subCategory"]; v != "" {
		spec.Equals(FieldSubCategory, v)
	}
	if v := params["subSubCategory"]; v != "" {
		spec.Equals(FieldSubSubCategory, v)
	}
	if v := params["search"]; v != "" {
		spec.Contains(FieldTitle, v)
	}
	if v := params["priceRange"]; v != "" {
		if min, max, ok := parsePriceRange(v); ok {
			spec.Range(FieldPrice, min, max)
		}
	}
	if v := params["gender"]; v != "" {
		spec.Equals(AttrPath("gender"), v)
	}
	if v := params["color"]; v != "" {
		spec.Equals(AttrPath("color"), v)
	}
	if v := params["brand"]; v != "" {
		spec.Equals(AttrPath("brand"), v)
	}

	// Sorted iteration keeps the compiled condition order deterministic.
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := params[key]
		if value == "" {
			continue
		}
		lower := strings.ToLower(key)
		if _, reserved := reservedKeys[lower]; reserved {
			continue
		}
		if attr, ok := hierarchicalKeys[lower]; ok {
			spec.Equals(AttrPath(attr), value)
		}
	}

	return spec
}

// parsePriceRange accepts "<min>-<max>" for an inclusive range and "<min>+"
// for an open-ended minimum. Anything else is reported as not ok.
func parsePriceRange(v string) (min float64, max *float64, ok bool) {
	v = strings.TrimSpace(v)

	if strings.HasSuffix(v, "+") {
		lo, err := strconv.ParseFloat(strings.TrimSuffix(v, "+"), 64)
		if err != nil {
			return 0, nil, false
		}
		return lo, nil, true
	}

	parts := strings.SplitN(v, "-", 2)
	if len(parts) != 2 {
		return 0, nil, false
	}
	lo, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	hi, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil || hi < lo {
		return 0, nil, false
	}
	return lo, &hi, true
}
