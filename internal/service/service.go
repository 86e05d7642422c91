// Package service provides the implementation of product-related business logic.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/akosmin/prodcatalog/internal/store"
	"github.com/google/uuid"
)

// ProductService defines the methods for managing products.
// It abstracts the underlying business logic and data access.
type ProductService interface {
	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id uuid.UUID) (*ProductDto, error)

	// FindAll returns all products in store-default order.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]ProductDto, error)

	// Create adds a new product to the catalog.
	// Returns error if the product cannot be created.
	Create(ctx context.Context, product ProductInputDto) (*ProductDto, error)

	// Update replaces an existing product's name, weight and price.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(ctx context.Context, id uuid.UUID, product ProductInputDto) (*ProductDto, error)

	// DeleteByID removes a product by its ID. Deleting a missing product
	// succeeds (idempotent delete).
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// Service implements ProductService and provides methods to manage products.
type Service struct {
	repository store.ProductStore
}

// NewService creates a new instance of ProductService with the provided repository.
func NewService(repo store.ProductStore) *Service {
	return &Service{
		repository: repo,
	}
}

// ProductInputDto carries the caller-supplied fields for create and update.
// Weight and Price are pointers so that a zero value is accepted while a
// missing field still fails the required rule.
type ProductInputDto struct {
	Name   string   `json:"name"   validate:"required,max=100"`
	Weight *float64 `json:"weight" validate:"required,gte=0"`
	Price  *float64 `json:"price"  validate:"required,gte=0"`
}

// ProductDto represents the data transfer object for a product.
type ProductDto struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Weight    float64   `json:"weight"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FindByID retrieves a product by its ID and returns it as a ProductDto.
// Returns ErrProductNotFound if no product exists with the given ID.
func (s *Service) FindByID(ctx context.Context, id uuid.UUID) (*ProductDto, error) {
	product, err := s.repository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %s: %w", id, err)
	}

	return toDto(product), nil
}

// FindAll retrieves all products and returns them as ProductDTOs.
// Returns an empty slice if no products exist or error if the retrieval fails.
func (s *Service) FindAll(ctx context.Context) ([]ProductDto, error) {
	products, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	productDTOs := make([]ProductDto, len(products))

	for i, item := range products {
		productDTOs[i] = *toDto(&item)
	}

	return productDTOs, nil
}

// Create creates a new product and returns it as a ProductDto.
// Returns an error if the product cannot be created.
func (s *Service) Create(ctx context.Context, product ProductInputDto) (*ProductDto, error) {
	p, err := s.repository.Create(ctx, toFields(product))
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return toDto(p), nil
}

// Update replaces an existing product's details and returns the updated product as a ProductDto.
// Returns ErrProductNotFound if no product exists with the given ID.
func (s *Service) Update(ctx context.Context, id uuid.UUID, product ProductInputDto) (*ProductDto, error) {
	updated, err := s.repository.Update(ctx, id, toFields(product))
	if err != nil {
		return nil, fmt.Errorf("failed to update product with ID %s: %w", id, err)
	}

	return toDto(updated), nil
}

// DeleteByID deletes a product by its ID. Deleting a product that does not
// exist is treated as success.
func (s *Service) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return s.repository.DeleteByID(ctx, id)
}

// toFields converts a ProductInputDto to store fields, trimming the name.
func toFields(product ProductInputDto) store.ProductFields {
	return store.ProductFields{
		Name:   strings.TrimSpace(product.Name),
		Weight: *product.Weight,
		Price:  *product.Price,
	}
}

// toDto converts a store.Product to a ProductDto.
func toDto(product *store.Product) *ProductDto {
	return &ProductDto{
		ID:        product.ID.String(),
		Name:      product.Name,
		Weight:    product.Weight,
		Price:     product.Price,
		CreatedAt: product.CreatedAt,
		UpdatedAt: product.UpdatedAt,
	}
}
