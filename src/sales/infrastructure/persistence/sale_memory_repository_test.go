package persistence

import (
	"context"
	"testing"
	"time"

	"palengke/src/sales/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func committedSale(t *testing.T, createdAt time.Time) *entity.CommittedSale {
	t.Helper()
	po := entity.NewPendingOrder()
	_, err := po.AddTap("a", "fishballs", decimal.RequireFromString("10.00"), 1)
	require.NoError(t, err)

	sale, err := entity.NewCommittedSale(uuid.New(), po, "PHP")
	require.NoError(t, err)
	sale.CreatedAt = createdAt
	return sale
}

func TestSaleMemoryRepositoryListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewSaleMemoryRepository()

	old := committedSale(t, time.Now().Add(-time.Hour))
	recent := committedSale(t, time.Now())
	require.NoError(t, repo.Create(ctx, old))
	require.NoError(t, repo.Create(ctx, recent))

	sales, total, err := repo.List(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, sales, 2)
	assert.Equal(t, recent.ID, sales[0].ID)
	assert.Equal(t, old.ID, sales[1].ID)
}

func TestSaleMemoryRepositoryPagination(t *testing.T) {
	ctx := context.Background()
	repo := NewSaleMemoryRepository()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, committedSale(t, time.Now().Add(time.Duration(i)*time.Minute))))
	}

	sales, total, err := repo.List(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Len(t, sales, 2)

	// Página fuera de rango: vacía, pero el total se mantiene
	sales, total, err = repo.List(ctx, 4, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Empty(t, sales)
}

func TestSaleMemoryRepositoryVoidHidesSale(t *testing.T) {
	ctx := context.Background()
	repo := NewSaleMemoryRepository()

	sale := committedSale(t, time.Now())
	require.NoError(t, repo.Create(ctx, sale))
	require.NoError(t, repo.Void(ctx, sale.ID))

	sales, total, err := repo.List(ctx, 1, 10)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, sales)

	// Anular una venta inexistente es un no-op
	assert.NoError(t, repo.Void(ctx, uuid.New()))
}
