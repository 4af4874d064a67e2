package usecase

import (
	"context"

	"palengke/src/inventory/application/response"
	"palengke/src/inventory/domain/entity"
	"palengke/src/inventory/domain/port"
)

// ListProductsUseCase caso de uso para listar el catálogo de productos
type ListProductsUseCase struct {
	productRepo port.ProductRepository
}

// NewListProductsUseCase crea una nueva instancia del caso de uso
func NewListProductsUseCase(productRepo port.ProductRepository) *ListProductsUseCase {
	return &ListProductsUseCase{
		productRepo: productRepo,
	}
}

// Execute lista los productos del puesto
func (uc *ListProductsUseCase) Execute(ctx context.Context) ([]response.ProductResponse, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

func toProductResponses(products []*entity.Product) []response.ProductResponse {
	out := make([]response.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, response.ProductResponse{
			ID:        p.ID,
			Name:      p.Name,
			Cost:      p.Cost,
			SellPrice: p.SellPrice,
			Stock:     p.Stock,
			InStock:   p.InStock(),
			CreatedAt: p.CreatedAt,
		})
	}
	return out
}
