package domain

import "math"

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	// Keeps the offset far from int overflow.
	MaxPage = 10000
)

// PaginatedResult for list responses
type PaginatedResult[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// Page holds normalised page/limit values.
type Page struct {
	Page  int
	Limit int
}

// NewPage applies the defaults (page 1, limit 10) and caps page and limit.
func NewPage(page, limit int) Page {
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return Page{Page: page, Limit: limit}
}

func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

func NewPaginatedResult[T any](data []T, total int64, p Page) *PaginatedResult[T] {
	if data == nil {
		data = []T{}
	}
	return &PaginatedResult[T]{
		Data:       data,
		Total:      total,
		Page:       p.Page,
		PageSize:   p.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(p.Limit))),
	}
}
