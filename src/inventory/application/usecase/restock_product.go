package usecase

import (
	"context"
	"fmt"
	"log"

	"palengke/src/inventory/application/response"
	"palengke/src/inventory/domain/entity"
	"palengke/src/inventory/domain/port"
	"palengke/src/inventory/infrastructure/cache"

	"github.com/google/uuid"
)

// RestockProductUseCase caso de uso para reponer stock de un producto
type RestockProductUseCase struct {
	productRepo  port.ProductRepository
	productCache *cache.ProductCache
}

// NewRestockProductUseCase crea una nueva instancia del caso de uso
func NewRestockProductUseCase(productRepo port.ProductRepository, productCache *cache.ProductCache) *RestockProductUseCase {
	return &RestockProductUseCase{
		productRepo:  productRepo,
		productCache: productCache,
	}
}

// Execute repone stock: ajusta el repositorio (con stock_log de restock) y
// refleja el nuevo stock en el cache
func (uc *RestockProductUseCase) Execute(ctx context.Context, productID uuid.UUID, quantity int) (*response.ProductResponse, error) {
	if quantity <= 0 {
		return nil, entity.ErrInvalidRestockQty
	}

	if err := uc.productRepo.AdjustStock(ctx, productID, quantity, entity.StockLogRestock); err != nil {
		return nil, fmt.Errorf("error restocking product %s: %w", productID, err)
	}

	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	uc.productCache.Put(*product)
	log.Printf("📦 Restocked %s: +%d (stock=%d)", product.Name, quantity, product.Stock)

	return &response.ProductResponse{
		ID:        product.ID,
		Name:      product.Name,
		Cost:      product.Cost,
		SellPrice: product.SellPrice,
		Stock:     product.Stock,
		InStock:   product.InStock(),
		CreatedAt: product.CreatedAt,
	}, nil
}
