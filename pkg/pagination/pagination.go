package pagination

import (
	"net/http"
	"strconv"
)

// Params holds pagination parameters extracted from query strings.
type Params struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Offset  int `json:"-"`
}

// DefaultParams returns the storefront pagination defaults.
func DefaultParams() Params {
	return Params{
		Page:    1,
		PerPage: 20,
		Offset:  0,
	}
}

// FromRequest extracts pagination parameters from an HTTP request.
// "limit" is accepted as a legacy alias for "per_page".
func FromRequest(r *http.Request) Params {
	p := DefaultParams()

	if page := r.URL.Query().Get("page"); page != "" {
		if v, err := strconv.Atoi(page); err == nil && v > 0 {
			p.Page = v
		}
	}

	perPage := r.URL.Query().Get("per_page")
	if perPage == "" {
		perPage = r.URL.Query().Get("limit")
	}
	if perPage != "" {
		if v, err := strconv.Atoi(perPage); err == nil && v > 0 && v <= 100 {
			p.PerPage = v
		}
	}

	p.Offset = (p.Page - 1) * p.PerPage
	return p
}

// Envelope describes one page of a result set.
type Envelope struct {
	CurrentPage int  `json:"current_page"`
	TotalPages  int  `json:"total_pages"`
	TotalItems  int  `json:"total_items"`
	PerPage     int  `json:"per_page"`
	HasNext     bool `json:"has_next"`
	HasPrev     bool `json:"has_prev"`
}

// NewEnvelope computes the pagination envelope for the given totals. It
// maintains totalPages == ceil(totalItems/perPage) and
// hasNext == (currentPage*perPage < totalItems).
func NewEnvelope(totalItems int, params Params) Envelope {
	totalPages := 0
	if params.PerPage > 0 {
		totalPages = totalItems / params.PerPage
		if totalItems%params.PerPage > 0 {
			totalPages++
		}
	}

	return Envelope{
		CurrentPage: params.Page,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		PerPage:     params.PerPage,
		HasNext:     params.Page*params.PerPage < totalItems,
		HasPrev:     params.Page > 1,
	}
}

// Empty returns the envelope clients can render when a listing failed:
// zero totals with the requested page and page size preserved.
func Empty(params Params) Envelope {
	return Envelope{
		CurrentPage: params.Page,
		TotalPages:  0,
		TotalItems:  0,
		PerPage:     params.PerPage,
		HasNext:     false,
		HasPrev:     params.Page > 1,
	}
}
