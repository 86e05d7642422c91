package store

import (
	"context"
	"sync"
	"time"

	perrors "github.com/akosmin/prodcatalog/internal/errors"
	"github.com/google/uuid"
)

// memory implements ProductStore using an in-memory map. It mirrors the
// database behaviour: IDs and timestamps are assigned by the store itself.
type memory struct {
	mu       sync.RWMutex
	products map[uuid.UUID]Product
}

// NewMemoryStore creates a new in-memory instance of ProductStore.
func NewMemoryStore() ProductStore {
	return &memory{
		products: make(map[uuid.UUID]Product),
	}
}

// FindByID retrieves a product by its ID.
func (s *memory) FindByID(_ context.Context, id uuid.UUID) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, perrors.ErrProductNotFound
	}
	return &p, nil
}

// FindAll retrieves all products. Map iteration order stands in for the
// store-default order.
func (s *memory) FindAll(_ context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		list = append(list, p)
	}
	return list, nil
}

// Create creates a new product, assigning a fresh ID and both timestamps.
func (s *memory) Create(_ context.Context, fields ProductFields) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	product := Product{
		ID:        uuid.New(),
		Name:      fields.Name,
		Weight:    fields.Weight,
		Price:     fields.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.products[product.ID] = product

	return &product, nil
}

// Update replaces the mutable fields and refreshes UpdatedAt, keeping ID and
// CreatedAt intact.
func (s *memory) Update(_ context.Context, id uuid.UUID, fields ProductFields) (*Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return nil, perrors.ErrProductNotFound
	}
	now := time.Now().UTC()
	if !now.After(p.UpdatedAt) {
		// Keep UpdatedAt strictly advancing even on coarse clocks.
		now = p.UpdatedAt.Add(time.Nanosecond)
	}
	p.Name = fields.Name
	p.Weight = fields.Weight
	p.Price = fields.Price
	p.UpdatedAt = now
	s.products[id] = p

	return &p, nil
}

// DeleteByID deletes a product by its ID. Missing products are ignored.
func (s *memory) DeleteByID(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.products, id)
	return nil
}
