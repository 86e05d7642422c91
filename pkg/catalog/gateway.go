package catalog

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a Gateway when the requested product does not exist.
var ErrNotFound = errors.New("catalog: product not found")

// ErrInvalidInput is returned by a Gateway when the server rejects the
// supplied fields.
var ErrInvalidInput = errors.New("catalog: invalid input")

// Gateway is the network boundary of the catalog client. The state layer
// calls it but does not implement it; implementations perform a single
// attempt per call with no retries.
type Gateway interface {
	// List fetches the full product collection.
	List(ctx context.Context) ([]Product, error)

	// Get fetches a single product by ID. Returns ErrNotFound if missing.
	Get(ctx context.Context, id string) (*Product, error)

	// Create persists a new product and returns it with the assigned ID and
	// timestamps.
	Create(ctx context.Context, fields ProductFields) (*Product, error)

	// Update replaces a product's fields and returns the updated record.
	// Returns ErrNotFound if the product does not exist.
	Update(ctx context.Context, id string, fields ProductFields) (*Product, error)

	// Delete removes a product. Deleting a missing product succeeds.
	Delete(ctx context.Context, id string) error
}
