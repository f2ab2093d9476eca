package domain

import "math"

// Page sizes accepted by list operations.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100

	// MaxPage keeps Offset of a clamped page within int.
	MaxPage = math.MaxInt / MaxPageSize
)

// PaginationParams selects one page of a list. Page is 1-based.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Clamped returns p with Page within [1, MaxPage] and PageSize within [1, MaxPageSize].
// A non-positive PageSize becomes DefaultPageSize.
func (p PaginationParams) Clamped() PaginationParams {
	switch {
	case p.Page < 1:
		p.Page = 1
	case p.Page > MaxPage:
		p.Page = MaxPage
	}
	switch {
	case p.PageSize < 1:
		p.PageSize = DefaultPageSize
	case p.PageSize > MaxPageSize:
		p.PageSize = MaxPageSize
	}
	return p
}

// Offset is the number of items before the page. It saturates at math.MaxInt.
func (p PaginationParams) Offset() int {
	if p.Page < 1 || p.PageSize < 1 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.PageSize {
		return math.MaxInt
	}
	return (p.Page - 1) * p.PageSize
}

// TotalPages is the number of pages needed for total items; 0 when PageSize is unset.
func (p PaginationParams) TotalPages(total int) int {
	if p.PageSize <= 0 {
		return 0
	}
	return (total + p.PageSize - 1) / p.PageSize
}
