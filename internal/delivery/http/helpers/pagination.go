package helpers

import (
	"net/http"
	"net/url"
	"strconv"

	"latinaempire/internal/domain"
)

// Page defaults for the admin leads inbox.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ParsePagination reads ?page= and ?page_size= for the leads inbox. Missing,
// malformed or non-positive values use the defaults; page_size is capped at
// MaxPageSize.
func ParsePagination(r *http.Request) domain.PaginationParams {
	q := r.URL.Query()
	return domain.PaginationParams{
		Page:     positiveInt(q, "page", DefaultPage),
		PageSize: min(positiveInt(q, "page_size", DefaultPageSize), MaxPageSize),
	}
}

func positiveInt(q url.Values, key string, fallback int) int {
	v, err := strconv.Atoi(q.Get(key))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}

// PaginationMeta describes where a page of leads sits in the full inbox.
// swagger:model PaginationMeta
type PaginationMeta struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
}

// NewPaginationMeta builds the metadata for page out of total leads.
// A zero pageSize yields zero pages.
func NewPaginationMeta(page, pageSize, total int) PaginationMeta {
	m := PaginationMeta{Page: page, PageSize: pageSize, Total: total}
	if pageSize > 0 {
		m.TotalPages = (total + pageSize - 1) / pageSize
	}
	m.HasNext = page < m.TotalPages
	return m
}
