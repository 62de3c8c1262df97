package catalog

import (
	"fmt"

	"github.com/matst80/slask-catalog/pkg/types"
)

type Pagination struct {
	TotalItems  int  `json:"total_items"`
	TotalPages  int  `json:"total_pages"`
	CurrentPage int  `json:"current_page"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

// Paginate slices out one page and computes page metadata. Pages are
// 1-indexed; page and pageSize below 1 are rejected. A page past the
// end is a valid empty result, the metadata still carries the totals.
func Paginate(products []types.Product, page, pageSize int) ([]types.Product, Pagination, error) {
	if page < 1 {
		return nil, Pagination{}, &types.ValidationError{Msg: fmt.Sprintf("page must be positive, got %d", page)}
	}
	if pageSize < 1 {
		return nil, Pagination{}, &types.ValidationError{Msg: fmt.Sprintf("page size must be positive, got %d", pageSize)}
	}

	total := len(products)
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}
	if totalPages < 1 {
		totalPages = 1
	}

	info := Pagination{
		TotalItems:  total,
		TotalPages:  totalPages,
		CurrentPage: page,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}

	// page <= totalPages bounds start below total, so the offset math
	// cannot overflow even for huge page or pageSize values
	if page > totalPages {
		return []types.Product{}, info, nil
	}
	start := (page - 1) * pageSize
	end := min(start+pageSize, total)
	return products[start:end], info, nil
}
