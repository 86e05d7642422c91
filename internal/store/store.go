// Package store provides an interface for product record storage.
package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Product is a product record as persisted by the store. The store owns the
// ID and both timestamps: ID and CreatedAt are assigned once at creation,
// UpdatedAt is refreshed on every mutation.
type Product struct {
	ID        uuid.UUID
	Name      string
	Weight    float64
	Price     float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProductFields are the caller-supplied, mutable fields of a product.
type ProductFields struct {
	Name   string
	Weight float64
	Price  float64
}

// ProductStore is an interface for product storage operations.
// It abstracts the underlying data store, allowing for different implementations (e.g., in-memory, database).
type ProductStore interface {
	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindAll returns all products in store-default order.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]Product, error)

	// Create adds a new product, assigning its ID and timestamps.
	Create(ctx context.Context, fields ProductFields) (*Product, error)

	// Update replaces the mutable fields of an existing product and
	// refreshes UpdatedAt. Returns ErrProductNotFound if no product exists
	// with the given ID.
	Update(ctx context.Context, id uuid.UUID, fields ProductFields) (*Product, error)

	// DeleteByID removes a product by its ID. Deleting a product that does
	// not exist is not an error.
	DeleteByID(ctx context.Context, id uuid.UUID) error
}
