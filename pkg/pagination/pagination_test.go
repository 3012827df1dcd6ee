package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, 0, p.Offset)
}

func TestFromRequest_Defaults(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	p := FromRequest(req)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, 0, p.Offset)
}

func TestFromRequest_CustomValues(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/catalog?page=3&per_page=50", nil)
	p := FromRequest(req)

	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 50, p.PerPage)
	assert.Equal(t, 100, p.Offset)
}

func TestFromRequest_LegacyLimitAlias(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/catalog?limit=12", nil)
	p := FromRequest(req)
	assert.Equal(t, 12, p.PerPage)
}

func TestFromRequest_PerPageWinsOverLimit(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/catalog?per_page=30&limit=12", nil)
	p := FromRequest(req)
	assert.Equal(t, 30, p.PerPage)
}

func TestFromRequest_InvalidValuesIgnored(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"negative page", "page=-1"},
		{"zero page", "page=0"},
		{"non-numeric page", "page=abc"},
		{"per_page above cap", "per_page=200"},
		{"zero per_page", "per_page=0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/catalog?"+tt.query, nil)
			p := FromRequest(req)
			assert.Equal(t, 1, p.Page)
			assert.Equal(t, 20, p.PerPage)
		})
	}
}

func TestNewEnvelope_CeilProperty(t *testing.T) {
	tests := []struct {
		name       string
		totalItems int
		page       int
		perPage    int
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{"exact multiple", 40, 1, 20, 2, true, false},
		{"remainder adds a page", 41, 2, 20, 3, true, true},
		{"single partial page", 7, 1, 20, 1, false, false},
		{"empty result", 0, 1, 20, 0, false, false},
		{"last page", 41, 3, 20, 3, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := NewEnvelope(tt.totalItems, Params{Page: tt.page, PerPage: tt.perPage})
			assert.Equal(t, tt.totalPages, env.TotalPages)
			assert.Equal(t, tt.hasNext, env.HasNext)
			assert.Equal(t, tt.hasPrev, env.HasPrev)
			assert.Equal(t, tt.totalItems, env.TotalItems)
		})
	}
}

func TestEmpty_PreservesRequestedPage(t *testing.T) {
	env := Empty(Params{Page: 4, PerPage: 12})
	assert.Equal(t, 4, env.CurrentPage)
	assert.Equal(t, 12, env.PerPage)
	assert.Zero(t, env.TotalItems)
	assert.Zero(t, env.TotalPages)
	assert.False(t, env.HasNext)
	assert.True(t, env.HasPrev)
}
