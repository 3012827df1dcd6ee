package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveCategory(t *testing.T) {
	tests := []struct {
		raw  string
		want CategoryTag
	}{
		{"mens-shoes", CategoryMensShoes},
		{"Mens Shoes", CategoryMensShoes},
		{"Men's Shoes", CategoryMensShoes},
		{"MEN'S SHOES", CategoryMensShoes},
		{"Men%27s%20Shoes", CategoryMensShoes},
		{"Men's+Shoes", CategoryMensShoes},
		{"mens shoe", CategoryMensShoes},
		{"Men’s Shoes", CategoryMensShoes},
		{"womens-shoes", CategoryWomensShoes},
		{"Women's Shoes", CategoryWomensShoes},
		{"kids-shoes", CategoryKidsShoes},
		{"Kid's Shoes", CategoryKidsShoes},
		{"shoes-accessories", CategoryShoesAccessories},
		{"Shoe Accessories", CategoryShoesAccessories},
		{"Footwear", CategoryMensShoes},
		{"footwear", CategoryMensShoes},
		{"", CategoryNone},
		{"   ", CategoryNone},
		{"Handbags", CategoryUnknown},
		{"Electronics", CategoryUnknown},
		{"%ZZ-not-a-category", CategoryUnknown},
		{"shoes", CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveCategory(tt.raw))
		})
	}
}

func TestResolveCategory_Total(t *testing.T) {
	// The resolver never panics, whatever garbage comes off the wire.
	inputs := []string{
		"%", "%%", "%2", "++%27++", "\x00\x01", "日本語",
		"mens-shoes%", "a%2Fb%2Fc", "🥾",
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() { ResolveCategory(in) }, "input %q", in)
	}
}

func TestCategoryTag_DisplayName(t *testing.T) {
	assert.Equal(t, "Men's Shoes", CategoryMensShoes.DisplayName())
	assert.Equal(t, "Women's Shoes", CategoryWomensShoes.DisplayName())
	assert.Equal(t, "Kids Shoes", CategoryKidsShoes.DisplayName())
	assert.Equal(t, "Shoes Accessories", CategoryShoesAccessories.DisplayName())
	assert.Empty(t, CategoryNone.DisplayName())
	assert.Empty(t, CategoryUnknown.DisplayName())
}

func TestCategoryTag_Variant(t *testing.T) {
	tests := []struct {
		tag  CategoryTag
		want VariantTag
	}{
		{CategoryMensShoes, VariantMensShoe},
		{CategoryWomensShoes, VariantWomensShoe},
		{CategoryKidsShoes, VariantKidsShoe},
		{CategoryShoesAccessories, VariantShoeAccessory},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.tag.Variant())
		assert.Equal(t, tt.tag, tt.want.Category())
	}

	assert.Empty(t, CategoryNone.Variant())
	assert.Empty(t, CategoryUnknown.Variant())
}

func TestKnownCategories(t *testing.T) {
	known := KnownCategories()

	assert.Len(t, known, 4)
	assert.NotContains(t, known, CategoryUnknown)
	assert.NotContains(t, known, CategoryNone)

	for _, tag := range known {
		assert.NotEmpty(t, tag.DisplayName())
		assert.NotEmpty(t, tag.Variant())
	}
}
