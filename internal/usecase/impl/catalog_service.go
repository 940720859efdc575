// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"suq/internal/domain/entity"
	domainerrors "suq/internal/domain/errors"
	"suq/internal/domain/repository"
	"suq/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *catalogService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	if input == nil {
		return products, nil
	}

	filtered := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if input.Category != "" && p.Category.String() != input.Category {
			continue
		}
		if input.FeaturedOnly && !p.IsFeatured {
			continue
		}
		if input.Query != "" && !matchesQuery(p, input.Query) {
			continue
		}
		filtered = append(filtered, p)
	}

	return filtered, nil
}

// matchesQuery does a case-insensitive substring search over both locales
// of the product name.
func matchesQuery(p *entity.Product, query string) bool {
	q := strings.ToLower(query)

	return strings.Contains(strings.ToLower(p.Name.En), q) ||
		strings.Contains(p.Name.Am, query)
}

func (srv *catalogService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("get product")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	if err := validateProductInput(input.Category, input.Price, input.Sizes); err != nil {
		return nil, err
	}

	product := &entity.Product{
		ID:          "prod-" + uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Image:       input.Image,
		Category:    input.Category,
		Sizes:       input.Sizes,
		Colors:      input.Colors,
		IsFeatured:  input.IsFeatured,
	}

	products, err := srv.productRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products before create")
	}

	if err := srv.productRepo.ReplaceAll(ctx, append(products, product)); err != nil {
		return nil, errors.Wrap(err, "failed to persist created product")
	}

	srv.logger.Info("Product created", slog.String("productID", product.ID))

	return product, nil
}

func (srv *catalogService) UpdateProduct(ctx context.Context, input *usecase.UpdateProductInput) (*entity.Product, error) {
	if err := validateProductInput(input.Category, input.Price, input.Sizes); err != nil {
		return nil, err
	}

	products, err := srv.productRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products before update")
	}

	var updated *entity.Product
	for i, p := range products {
		if p.ID != input.ID {
			continue
		}
		updated = &entity.Product{
			ID:          p.ID, // immutable
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			Image:       input.Image,
			Category:    input.Category,
			Sizes:       input.Sizes,
			Colors:      input.Colors,
			IsFeatured:  input.IsFeatured,
		}
		products[i] = updated

		break
	}

	if updated == nil {
		return nil, domainerrors.ErrProductNotFound.WrapMessage("update product")
	}

	if err := srv.productRepo.ReplaceAll(ctx, products); err != nil {
		return nil, errors.Wrap(err, "failed to persist updated product")
	}

	srv.logger.Info("Product updated", slog.String("productID", updated.ID))

	return updated, nil
}

// DeleteProduct removes the product from the catalog. Deleting an unknown id
// is a no-op; existing orders keep their snapshots either way.
func (srv *catalogService) DeleteProduct(ctx context.Context, id string) error {
	products, err := srv.productRepo.List(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to list products before delete")
	}

	remaining := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			remaining = append(remaining, p)
		}
	}

	if err := srv.productRepo.ReplaceAll(ctx, remaining); err != nil {
		return errors.Wrap(err, "failed to persist catalog after delete")
	}

	srv.logger.Info("Product deleted", slog.String("productID", id))

	return nil
}

func validateProductInput(category entity.Category, price int, sizes []string) error {
	if !category.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown category " + category.String())
	}
	if price <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("price must be positive")
	}
	if len(sizes) == 0 {
		return domainerrors.ErrValidationFailed.WithDetails("at least one size is required")
	}

	return nil
}
