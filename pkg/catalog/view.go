package catalog

import (
	"sort"
	"strings"
	"time"
)

// View is the filtered, sorted, paginated projection of the product mirror.
// It is recomputed from scratch on every relevant state change.
type View struct {
	// Items are the products on the current page.
	Items []Product
	// Total is the number of products after filtering, across all pages.
	Total int
	// Page is the effective 1-based page number, clamped into range.
	Page int
	// TotalPages is at least 1, even for an empty result.
	TotalPages int
	HasPrev    bool
	HasNext    bool
}

// DeriveView filters products by query, sorts them by sortBy and slices out
// the requested page. A requested page beyond the last page is clamped, so a
// shrinking filtered set never yields an empty page.
func DeriveView(products []Product, query string, sortBy SortBy, page, perPage int) View {
	if perPage <= 0 {
		perPage = ItemsPerPage
	}

	filtered := filterProducts(products, query)
	sortProducts(filtered, sortBy)

	total := len(filtered)
	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return View{
		Items:      filtered[start:end],
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
}

// filterProducts keeps products whose name contains the trimmed lower-cased
// query, or whose creation timestamp's ISO-8601 rendering contains it. An
// empty query matches everything.
func filterProducts(products []Product, query string) []Product {
	q := strings.ToLower(strings.TrimSpace(query))

	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		nameMatch := strings.Contains(strings.ToLower(p.Name), q)
		createdMatch := strings.Contains(isoTimestamp(p.CreatedAt), q)
		if nameMatch || createdMatch {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// sortProducts orders the slice in place: price and weight ascending,
// otherwise creation time descending (newest first). The sort is stable, so
// ties keep their incoming order.
func sortProducts(products []Product, sortBy SortBy) {
	switch sortBy {
	case SortByPrice:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortByWeight:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Weight < products[j].Weight
		})
	default:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	}
}

// isoTimestamp renders a timestamp the way the search filter matches it:
// lower-cased ISO 8601 (UTC, millisecond precision). A zero time renders as
// an empty string and therefore only matches the empty query.
func isoTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return strings.ToLower(t.UTC().Format("2006-01-02T15:04:05.000Z"))
}
