package catalog

import "time"

// Product mirrors the JSON shape served by the catalog API.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Weight    float64   `json:"weight"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProductFields are the caller-supplied fields sent on create and update.
// All three fields are always sent together; there are no partial updates.
type ProductFields struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
	Price  float64 `json:"price"`
}

// SortBy selects the ordering of the derived view.
type SortBy string

const (
	// SortByNewest orders by creation time, newest first. This is the default.
	SortByNewest SortBy = "createdAt"
	// SortByPrice orders by price, ascending.
	SortByPrice SortBy = "price"
	// SortByWeight orders by weight, ascending.
	SortByWeight SortBy = "weight"
)

// ItemsPerPage is the fixed page size of the derived view.
const ItemsPerPage = 5
