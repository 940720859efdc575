// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"suq/internal/domain/entity"
)

// ListProductsInput narrows the catalog listing. Zero values mean "no filter".
type ListProductsInput struct {
	Category     string // Exact category match.
	Query        string // Case-insensitive substring of either locale's name.
	FeaturedOnly bool   // Only products flagged for the home page.
}

// CreateProductInput defines the data required to create a catalog entry.
// The id is always generated, never caller-supplied.
type CreateProductInput struct {
	Name        entity.LocalizedText
	Description entity.LocalizedText
	Price       int
	Image       string
	Category    entity.Category
	Sizes       []string
	Colors      []string
	IsFeatured  bool
}

// UpdateProductInput defines the data for editing an existing entry.
// The id selects the entry and is itself immutable.
type UpdateProductInput struct {
	ID          string
	Name        entity.LocalizedText
	Description entity.LocalizedText
	Price       int
	Image       string
	Category    entity.Category
	Sizes       []string
	Colors      []string
	IsFeatured  bool
}

// CatalogUsecase defines the storefront and admin operations on the catalog.
type CatalogUsecase interface {
	ListProducts(ctx context.Context, input *ListProductsInput) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id string) (*entity.Product, error)
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}
