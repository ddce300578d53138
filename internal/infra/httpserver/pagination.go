package httpserver

import (
	"net/http"
	"strconv"
)

const (
	_defaultPage  = 1
	_defaultLimit = 50
	_maxLimit     = 100
	_maxPage      = 100000
)

type PaginationParams struct {
	Page  int
	Limit int
}

func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

func DefaultPaginationParams() PaginationParams {
	return PaginationParams{Page: _defaultPage, Limit: _defaultLimit}
}

// ExtractPaginationParams reads page and limit from the query string, falling
// back to the defaults for missing or out of range values. Pages past _maxPage
// are clamped so Offset cannot overflow.
func ExtractPaginationParams(r *http.Request) PaginationParams {
	params := DefaultPaginationParams()

	if page, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && page > 0 {
		params.Page = min(page, _maxPage)
	}

	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit > 0 && limit <= _maxLimit {
		params.Limit = limit
	}

	return params
}

// Pager is the view model used by templates to draw page links.
type Pager struct {
	Page       int
	Limit      int
	Total      int
	TotalPages int
	PrevPage   int
	NextPage   int
	HasPrev    bool
	HasNext    bool
}

func NewPager(params PaginationParams, total int) Pager {
	totalPages := 1
	if total > 0 && params.Limit > 0 {
		totalPages = (total + params.Limit - 1) / params.Limit
	}

	return Pager{
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      total,
		TotalPages: totalPages,
		PrevPage:   params.Page - 1,
		NextPage:   params.Page + 1,
		HasPrev:    params.Page > 1,
		HasNext:    params.Page < totalPages,
	}
}
