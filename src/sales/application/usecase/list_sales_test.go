package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"palengke/src/sales/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSaleRepository struct {
	sales      []*entity.CommittedSale
	totalCount int
	err        error

	gotPage     int
	gotPageSize int
}

func (m *mockSaleRepository) Create(ctx context.Context, sale *entity.CommittedSale) error {
	return nil
}

func (m *mockSaleRepository) Void(ctx context.Context, saleID uuid.UUID) error {
	return nil
}

func (m *mockSaleRepository) List(ctx context.Context, page, pageSize int) ([]*entity.CommittedSale, int, error) {
	m.gotPage = page
	m.gotPageSize = pageSize
	return m.sales, m.totalCount, m.err
}

func TestListSalesAppliesDefaults(t *testing.T) {
	repo := &mockSaleRepository{sales: []*entity.CommittedSale{}}
	uc := NewListSalesUseCase(repo)

	resp, err := uc.Execute(context.Background(), 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.gotPage)
	assert.Equal(t, 10, repo.gotPageSize)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 10, resp.PageSize)
	assert.Empty(t, resp.Items)
	assert.Zero(t, resp.TotalPages)
}

func TestListSalesClampsOversizedPageSize(t *testing.T) {
	repo := &mockSaleRepository{}
	uc := NewListSalesUseCase(repo)

	_, err := uc.Execute(context.Background(), 2, 500)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.gotPage)
	assert.Equal(t, 10, repo.gotPageSize)
}

func TestListSalesComputesTotalPages(t *testing.T) {
	sale := &entity.CommittedSale{
		ID:            uuid.New(),
		SessionID:     uuid.New(),
		DisplayLabel:  "fishballs",
		TotalQuantity: 2,
		TotalAmount:   decimal.RequireFromString("20.00"),
		Currency:      "PHP",
		CreatedAt:     time.Now(),
	}
	repo := &mockSaleRepository{sales: []*entity.CommittedSale{sale}, totalCount: 25}
	uc := NewListSalesUseCase(repo)

	resp, err := uc.Execute(context.Background(), 1, 10)
	require.NoError(t, err)

	assert.Equal(t, 25, resp.TotalCount)
	assert.Equal(t, 3, resp.TotalPages)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, sale.ID, resp.Items[0].ID)
	assert.Equal(t, "fishballs", resp.Items[0].DisplayLabel)
	assert.True(t, resp.Items[0].TotalAmount.Equal(decimal.RequireFromString("20.00")))
}

func TestListSalesPropagatesRepositoryError(t *testing.T) {
	repo := &mockSaleRepository{err: errors.New("db down")}
	uc := NewListSalesUseCase(repo)

	_, err := uc.Execute(context.Background(), 1, 10)
	assert.Error(t, err)
}
