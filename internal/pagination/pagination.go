// Package pagination holds the page/size contract shared by every listing
// endpoint.
package pagination

import (
	"fmt"

	"gerai/internal/apperrors"
)

// Params is a validated page request. Page numbers start at 1.
type Params struct {
	Page int
	Size int
}

// New validates the raw page number and size. Both must be at least 1.
func New(page, size int) (Params, error) {
	if page <= 0 || size <= 0 {
		return Params{}, fmt.Errorf("%w: invalid page number or page size", apperrors.ErrInvalidInput)
	}
	return Params{Page: page, Size: size}, nil
}

// Offset is the number of rows to skip for this page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Size
}

// Page is the envelope every paginated response is wrapped in.
type Page[T any] struct {
	TotalCount int64 `json:"total_count"`
	PageNumber int   `json:"page_number"`
	PageSize   int   `json:"page_size"`
	Items      []T   `json:"items"`
}

// NewPage builds the envelope for one page of items.
func NewPage[T any](p Params, total int64, items []T) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		TotalCount: total,
		PageNumber: p.Page,
		PageSize:   p.Size,
		Items:      items,
	}
}
