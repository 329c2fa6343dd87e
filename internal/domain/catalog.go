package domain

import (
	"sort"
	"strings"
)

// CategoryAll is the sentinel category that bypasses the category filter.
const CategoryAll = "All"

// SortOrder controls price ordering of a derived product list.
type SortOrder string

const (
	// SortNone preserves catalog order.
	SortNone SortOrder = "none"
	// SortPriceAsc orders products by non-decreasing price.
	SortPriceAsc SortOrder = "low"
	// SortPriceDesc orders products by non-increasing price.
	SortPriceDesc SortOrder = "high"
)

// IsValidSortOrder reports whether s is a recognized sort order value.
func IsValidSortOrder(s string) bool {
	switch SortOrder(s) {
	case SortNone, SortPriceAsc, SortPriceDesc:
		return true
	}
	return false
}

// Derive returns the ordered product list for the given search text, category,
// and sort order. The category filter is an exact match, bypassed for the
// CategoryAll sentinel. The search filter is a case-insensitive substring
// match against the product name or category; empty search text matches
// everything. Both filters must pass. Sorting is stable by price and never
// mutates the input slice.
func Derive(catalog []Product, searchText, category string, order SortOrder) []Product {
	search := strings.ToLower(searchText)

	result := make([]Product, 0, len(catalog))
	for _, p := range catalog {
		if category != CategoryAll && p.Category != category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Category), search) {
			continue
		}
		result = append(result, p)
	}

	switch order {
	case SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	case SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price > result[j].Price })
	}

	return result
}

// DeriveCategories returns the distinct category values observed in the
// catalog in first-seen order, prefixed with the CategoryAll sentinel.
func DeriveCategories(catalog []Product) []string {
	categories := []string{CategoryAll}
	seen := make(map[string]struct{}, len(catalog))
	for _, p := range catalog {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories
}
