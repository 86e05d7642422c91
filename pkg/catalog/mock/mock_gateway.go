// Package mock provides an in-memory catalog.Gateway for tests and offline
// use. It reproduces the record store's behaviour: IDs and timestamps are
// assigned on create, updatedAt is refreshed on every mutation, and deletes
// are idempotent.
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/akosmin/prodcatalog/pkg/catalog"
)

// Gateway is an in-memory catalog.Gateway.
type Gateway struct {
	mu       sync.RWMutex
	products map[string]catalog.Product
	order    []string
	nextID   int
	now      func() time.Time

	// FailNext makes the next call return this error once, for exercising
	// failure paths in tests.
	FailNext error
}

// Option configures the mock gateway.
type Option func(*Gateway)

// WithClock overrides the clock used for timestamp assignment (useful in tests).
func WithClock(fn func() time.Time) Option {
	return func(g *Gateway) {
		if fn != nil {
			g.now = fn
		}
	}
}

// New creates an empty mock gateway.
func New(opts ...Option) *Gateway {
	g := &Gateway{
		products: make(map[string]catalog.Product),
		nextID:   1,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var _ catalog.Gateway = (*Gateway)(nil)

func (g *Gateway) takeFailure() error {
	err := g.FailNext
	g.FailNext = nil
	return err
}

// List returns all products in insertion order.
func (g *Gateway) List(_ context.Context) ([]catalog.Product, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.takeFailure(); err != nil {
		return nil, err
	}

	list := make([]catalog.Product, 0, len(g.order))
	for _, id := range g.order {
		list = append(list, g.products[id])
	}
	return list, nil
}

// Get returns a product by ID.
func (g *Gateway) Get(_ context.Context, id string) (*catalog.Product, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.takeFailure(); err != nil {
		return nil, err
	}

	p, ok := g.products[id]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	return &p, nil
}

// Create assigns an ID and timestamps and stores the product.
func (g *Gateway) Create(_ context.Context, fields catalog.ProductFields) (*catalog.Product, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.takeFailure(); err != nil {
		return nil, err
	}

	now := g.now()
	p := catalog.Product{
		ID:        fmt.Sprintf("mock-%d", g.nextID),
		Name:      fields.Name,
		Weight:    fields.Weight,
		Price:     fields.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}
	g.nextID++
	g.products[p.ID] = p
	g.order = append(g.order, p.ID)

	return &p, nil
}

// Update replaces the mutable fields and refreshes UpdatedAt.
func (g *Gateway) Update(_ context.Context, id string, fields catalog.ProductFields) (*catalog.Product, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.takeFailure(); err != nil {
		return nil, err
	}

	p, ok := g.products[id]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	p.Name = fields.Name
	p.Weight = fields.Weight
	p.Price = fields.Price
	p.UpdatedAt = g.now()
	g.products[id] = p

	return &p, nil
}

// Delete removes a product; deleting a missing product succeeds.
func (g *Gateway) Delete(_ context.Context, id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.takeFailure(); err != nil {
		return err
	}

	if _, ok := g.products[id]; ok {
		delete(g.products, id)
		for i, existing := range g.order {
			if existing == id {
				g.order = append(g.order[:i], g.order[i+1:]...)
				break
			}
		}
	}
	return nil
}
