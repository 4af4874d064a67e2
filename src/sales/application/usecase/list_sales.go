package usecase

import (
	"context"
	"math"

	"palengke/src/sales/application/response"
	"palengke/src/sales/domain/entity"
	"palengke/src/sales/domain/port"
)

// ListSalesUseCase caso de uso para listar ventas confirmadas con paginación
type ListSalesUseCase struct {
	saleRepo port.SaleRepository
}

// NewListSalesUseCase crea una nueva instancia del caso de uso
func NewListSalesUseCase(saleRepo port.SaleRepository) *ListSalesUseCase {
	return &ListSalesUseCase{
		saleRepo: saleRepo,
	}
}

// Execute ejecuta el listado de ventas
func (uc *ListSalesUseCase) Execute(ctx context.Context, page, pageSize int) (*response.ListSalesResponse, error) {
	// Valores por defecto
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	sales, totalCount, err := uc.saleRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, err
	}

	return &response.ListSalesResponse{
		Items:      toSaleListItems(sales),
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: int(math.Ceil(float64(totalCount) / float64(pageSize))),
	}, nil
}

func toSaleListItems(sales []*entity.CommittedSale) []response.SaleListItem {
	items := make([]response.SaleListItem, 0, len(sales))
	for _, s := range sales {
		items = append(items, response.SaleListItem{
			ID:            s.ID,
			SessionID:     s.SessionID,
			DisplayLabel:  s.DisplayLabel,
			TotalQuantity: s.TotalQuantity,
			TotalAmount:   s.TotalAmount,
			Currency:      s.Currency,
			TotalItems:    s.TotalItems(),
			CreatedAt:     s.CreatedAt,
		})
	}
	return items
}
