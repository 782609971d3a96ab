package service

import (
	"strings"

	"github.com/ticketlot/admin-gateway/internal/domain"
)

// fetchLimit bounds how much of a collection is pulled from the
// platform before the substring filter and local paging are applied.
const fetchLimit = 500

// matchesQuery reports whether any field contains the query,
// case-insensitively. An empty query matches everything.
func matchesQuery(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}

	return false
}

// pageSlice cuts one page out of a filtered collection and computes
// the paging block for it.
func pageSlice[T any](items []T, page, limit int) ([]T, domain.Pagination) {
	pagination := domain.Paginate(len(items), page, limit)

	start := (pagination.Page - 1) * pagination.Limit
	if start >= len(items) {
		return []T{}, pagination
	}
	end := start + pagination.Limit
	if end > len(items) {
		end = len(items)
	}

	return items[start:end], pagination
}
