package usecase

import (
	"context"
	"testing"

	"palengke/src/inventory/application/request"
	"palengke/src/inventory/domain/entity"
	"palengke/src/inventory/infrastructure/cache"
	"palengke/src/inventory/infrastructure/persistence"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddProductPersistsAndCaches(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewProductMemoryRepository()
	productCache := cache.NewProductCache()
	uc := NewAddProductUseCase(repo, productCache)

	resp, err := uc.Execute(ctx, &request.AddProductRequest{
		Name:      "kwek-kwek",
		Cost:      decimal.RequireFromString("8.00"),
		SellPrice: decimal.RequireFromString("15.00"),
		Stock:     100,
	})
	require.NoError(t, err)
	assert.Equal(t, "kwek-kwek", resp.Name)
	assert.True(t, resp.InStock)

	// Persistido y cacheado
	stored, err := repo.GetByID(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, stored.Stock)

	cached, ok := productCache.Get(resp.ID)
	require.True(t, ok)
	assert.True(t, cached.SellPrice.Equal(decimal.RequireFromString("15.00")))
}

func TestAddProductRejectsInvalidInput(t *testing.T) {
	uc := NewAddProductUseCase(persistence.NewProductMemoryRepository(), cache.NewProductCache())

	_, err := uc.Execute(context.Background(), &request.AddProductRequest{
		Name:      "",
		Cost:      decimal.Zero,
		SellPrice: decimal.Zero,
	})
	assert.ErrorIs(t, err, entity.ErrProductNameRequired)
}

func TestRestockProductUpdatesStockAndLogs(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewProductMemoryRepository()
	productCache := cache.NewProductCache()

	product, err := entity.NewProduct("gulaman",
		decimal.RequireFromString("7.00"), decimal.RequireFromString("20.00"), 2)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, product))
	productCache.Put(*product)

	uc := NewRestockProductUseCase(repo, productCache)
	resp, err := uc.Execute(ctx, product.ID, 28)
	require.NoError(t, err)
	assert.Equal(t, 30, resp.Stock)

	cached, _ := productCache.Get(product.ID)
	assert.Equal(t, 30, cached.Stock)

	logs, err := repo.ListStockLogs(ctx, product.ID)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, entity.StockLogRestock, logs[0].Type)
	assert.Equal(t, 28, logs[0].Quantity)
}

func TestRestockProductRejectsNonPositiveQuantity(t *testing.T) {
	uc := NewRestockProductUseCase(persistence.NewProductMemoryRepository(), cache.NewProductCache())

	_, err := uc.Execute(context.Background(), uuid.New(), 0)
	assert.ErrorIs(t, err, entity.ErrInvalidRestockQty)
}

func TestRestockUnknownProduct(t *testing.T) {
	uc := NewRestockProductUseCase(persistence.NewProductMemoryRepository(), cache.NewProductCache())

	_, err := uc.Execute(context.Background(), uuid.New(), 5)
	assert.ErrorIs(t, err, entity.ErrProductNotFound)
}

func TestSeedCatalogPopulatesEmptyRepo(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewProductMemoryRepository()
	uc := NewSeedCatalogUseCase(repo)

	require.NoError(t, uc.Execute(ctx))

	products, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, len(sampleCatalog))

	// Idempotente: con catálogo existente no duplica
	require.NoError(t, uc.Execute(ctx))
	products, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, products, len(sampleCatalog))
}
