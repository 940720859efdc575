// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"suq/internal/domain/entity"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the operations on the product collection.
//
// The collection is stored whole: admin mutations compute the new full list
// and write it back through ReplaceAll, mirroring the storefront's
// full-collection replace contract.
type ProductRepository interface {
	// List returns the full catalog. On first run, when no catalog has been
	// stored yet, it seeds the fixed initial catalog, persists it and
	// returns it. The seed is idempotent.
	List(ctx context.Context) ([]*entity.Product, error)

	// FindByID retrieves a product by its id.
	// Returns ErrProductNotFound if no such product exists.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// ReplaceAll overwrites the stored catalog with the given list.
	ReplaceAll(ctx context.Context, products []*entity.Product) error
}
