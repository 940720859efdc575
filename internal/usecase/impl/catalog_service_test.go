package impl

import (
	"context"
	"testing"

	"suq/internal/domain/entity"
	domainerrors "suq/internal/domain/errors"
	"suq/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_ListProductsReturnsSeededCatalog(t *testing.T) {
	fx := createTestCatalogService(t)

	products, err := fx.service.ListProducts(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "wollo-01", products[0].ID)
	assert.Equal(t, "gondar-01", products[1].ID)
}

func TestCatalogService_ListProductsFiltersByCategory(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	_, err := fx.service.CreateProduct(ctx, &usecase.CreateProductInput{
		Name:     entity.LocalizedText{En: "Habesha Suit", Am: "የሐበሻ ልብስ"},
		Price:    4000,
		Category: entity.CategoryMen,
		Sizes:    []string{"M", "L"},
	})
	require.NoError(t, err)

	men, err := fx.service.ListProducts(ctx, &usecase.ListProductsInput{Category: "Men"})
	require.NoError(t, err)
	require.Len(t, men, 1)
	assert.Equal(t, "Habesha Suit", men[0].Name.En)

	women, err := fx.service.ListProducts(ctx, &usecase.ListProductsInput{Category: "Women"})
	require.NoError(t, err)
	assert.Len(t, women, 2)
}

func TestCatalogService_ListProductsQueryIsCaseInsensitiveInEnglish(t *testing.T) {
	fx := createTestCatalogService(t)

	products, err := fx.service.ListProducts(context.Background(), &usecase.ListProductsInput{Query: "gondar"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "gondar-01", products[0].ID)
}

func TestCatalogService_ListProductsQueryMatchesAmharicName(t *testing.T) {
	fx := createTestCatalogService(t)

	products, err := fx.service.ListProducts(context.Background(), &usecase.ListProductsInput{Query: "ወሎ"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "wollo-01", products[0].ID)
}

func TestCatalogService_ListProductsFeaturedOnly(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	_, err := fx.service.CreateProduct(ctx, &usecase.CreateProductInput{
		Name:       entity.LocalizedText{En: "Plain Netela", Am: "ነጠላ"},
		Price:      900,
		Category:   entity.CategoryAccessories,
		Sizes:      []string{"One Size"},
		IsFeatured: false,
	})
	require.NoError(t, err)

	featured, err := fx.service.ListProducts(ctx, &usecase.ListProductsInput{FeaturedOnly: true})
	require.NoError(t, err)
	require.Len(t, featured, 2)
	for _, p := range featured {
		assert.True(t, p.IsFeatured)
	}
}

func TestCatalogService_GetProductUnknownID(t *testing.T) {
	fx := createTestCatalogService(t)

	_, err := fx.service.GetProduct(context.Background(), "no-such-product")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PRODUCT_NOT_FOUND", appErr.ErrorCode())
}

func TestCatalogService_CreateProductGeneratesID(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	created, err := fx.service.CreateProduct(ctx, &usecase.CreateProductInput{
		Name:     entity.LocalizedText{En: "Tibeb Shawl", Am: "ጥበብ ሻርፕ"},
		Price:    1500,
		Category: entity.CategoryAccessories,
		Sizes:    []string{"One Size"},
	})
	require.NoError(t, err)
	assert.Contains(t, created.ID, "prod-")

	// Appended after the seeded entries.
	products, err := fx.service.ListProducts(ctx, nil)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, created.ID, products[2].ID)
}

func TestCatalogService_CreateProductRejectsInvalidInput(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		input *usecase.CreateProductInput
	}{
		{
			name: "unknown category",
			input: &usecase.CreateProductInput{
				Name:     entity.LocalizedText{En: "X", Am: "X"},
				Price:    100,
				Category: entity.Category("Shoes"),
				Sizes:    []string{"M"},
			},
		},
		{
			name: "non-positive price",
			input: &usecase.CreateProductInput{
				Name:     entity.LocalizedText{En: "X", Am: "X"},
				Price:    0,
				Category: entity.CategoryMen,
				Sizes:    []string{"M"},
			},
		},
		{
			name: "no sizes",
			input: &usecase.CreateProductInput{
				Name:     entity.LocalizedText{En: "X", Am: "X"},
				Price:    100,
				Category: entity.CategoryMen,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fx.service.CreateProduct(ctx, tc.input)
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
		})
	}
}

func TestCatalogService_UpdateProductKeepsIDImmutable(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	updated, err := fx.service.UpdateProduct(ctx, &usecase.UpdateProductInput{
		ID:       "wollo-01",
		Name:     entity.LocalizedText{En: "Wollo Kemis Deluxe", Am: "የወሎ ቀሚስ"},
		Price:    9000,
		Category: entity.CategoryWomen,
		Sizes:    []string{"S", "M", "L", "XL"},
	})
	require.NoError(t, err)
	assert.Equal(t, "wollo-01", updated.ID)
	assert.Equal(t, 9000, updated.Price)

	got, err := fx.service.GetProduct(ctx, "wollo-01")
	require.NoError(t, err)
	assert.Equal(t, "Wollo Kemis Deluxe", got.Name.En)
	assert.Equal(t, []string{"S", "M", "L", "XL"}, got.Sizes)
}

func TestCatalogService_UpdateProductUnknownID(t *testing.T) {
	fx := createTestCatalogService(t)

	_, err := fx.service.UpdateProduct(context.Background(), &usecase.UpdateProductInput{
		ID:       "no-such-product",
		Name:     entity.LocalizedText{En: "X", Am: "X"},
		Price:    100,
		Category: entity.CategoryMen,
		Sizes:    []string{"M"},
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PRODUCT_NOT_FOUND", appErr.ErrorCode())
}

func TestCatalogService_DeleteProduct(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	require.NoError(t, fx.service.DeleteProduct(ctx, "wollo-01"))

	products, err := fx.service.ListProducts(ctx, nil)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "gondar-01", products[0].ID)
}

func TestCatalogService_DeleteUnknownProductIsNoOp(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	require.NoError(t, fx.service.DeleteProduct(ctx, "no-such-product"))

	products, err := fx.service.ListProducts(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, products, 2)
}
