package blobstore

import (
	"context"
	"testing"

	"suq/internal/domain/entity"
	"suq/internal/domain/repository"
	"suq/internal/infra/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_ListSeedsInitialCatalog(t *testing.T) {
	store := kvstore.NewMemStore()
	repo := NewProductRepository(store)
	ctx := context.Background()

	products, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "wollo-01", products[0].ID)
	assert.Equal(t, "gondar-01", products[1].ID)

	// The seed is persisted, not just returned.
	raw, err := store.Get(ctx, productsKey)
	require.NoError(t, err)
	assert.Contains(t, raw, "wollo-01")
}

func TestProductRepository_SeedIsIdempotent(t *testing.T) {
	store := kvstore.NewMemStore()
	repo := NewProductRepository(store)
	ctx := context.Background()

	first, err := repo.List(ctx)
	require.NoError(t, err)

	second, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, second, len(first))
}

func TestProductRepository_SeedDoesNotOverwriteExistingCatalog(t *testing.T) {
	store := kvstore.NewMemStore()
	repo := NewProductRepository(store)
	ctx := context.Background()

	custom := []*entity.Product{{
		ID:       "habesha-99",
		Name:     entity.LocalizedText{En: "Habesha Suit", Am: "የሐበሻ ልብስ"},
		Price:    4000,
		Category: entity.CategoryMen,
		Sizes:    []string{"M"},
	}}
	require.NoError(t, repo.ReplaceAll(ctx, custom))

	products, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "habesha-99", products[0].ID)
}

func TestProductRepository_CorruptRegionReseeds(t *testing.T) {
	store := kvstore.NewMemStore()
	repo := NewProductRepository(store)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, productsKey, "{not valid json"))

	products, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "wollo-01", products[0].ID)
}

func TestProductRepository_FindByID(t *testing.T) {
	store := kvstore.NewMemStore()
	repo := NewProductRepository(store)
	ctx := context.Background()

	product, err := repo.FindByID(ctx, "gondar-01")
	require.NoError(t, err)
	assert.Equal(t, "Gondar Royal Kemis", product.Name.En)
	assert.Equal(t, 12000, product.Price)
}

func TestProductRepository_FindByIDUnknown(t *testing.T) {
	store := kvstore.NewMemStore()
	repo := NewProductRepository(store)

	_, err := repo.FindByID(context.Background(), "no-such-product")
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductRepository_ReplaceAllPersistsEmptyCatalog(t *testing.T) {
	store := kvstore.NewMemStore()
	repo := NewProductRepository(store)
	ctx := context.Background()

	_, err := repo.List(ctx)
	require.NoError(t, err)

	// An explicitly emptied catalog must stay empty, not re-seed.
	require.NoError(t, repo.ReplaceAll(ctx, []*entity.Product{}))

	products, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}
