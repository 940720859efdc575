package blobstore

import (
	"context"
	"sync"

	"suq/internal/domain/entity"
	"suq/internal/domain/repository"
	"suq/internal/infra/kvstore"

	"github.com/pkg/errors"
)

// productRepository implements repository.ProductRepository over the
// products region.
type productRepository struct {
	store *kvstore.Store
	mu    sync.Mutex
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(store *kvstore.Store) repository.ProductRepository {
	return &productRepository{store: store}
}

func (r *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.listLocked(ctx)
}

// listLocked reads the catalog, seeding it on first run. A malformed region
// reads as absent and is re-seeded the same way.
func (r *productRepository) listLocked(ctx context.Context) ([]*entity.Product, error) {
	var products []*entity.Product
	ok, err := readRegion(ctx, r.store, productsKey, &products)
	if err != nil {
		return nil, err
	}
	if ok {
		return products, nil
	}

	seeded := initialCatalog()
	if err := writeRegion(ctx, r.store, productsKey, seeded); err != nil {
		return nil, errors.Wrap(err, "seed initial catalog")
	}

	return seeded, nil
}

func (r *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	products, err := r.listLocked(ctx)
	if err != nil {
		return nil, err
	}

	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}

	return nil, repository.ErrProductNotFound
}

func (r *productRepository) ReplaceAll(ctx context.Context, products []*entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return writeRegion(ctx, r.store, productsKey, products)
}
