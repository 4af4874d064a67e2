package usecase

import (
	"context"
	"fmt"
	"log"

	"palengke/src/inventory/application/request"
	"palengke/src/inventory/application/response"
	"palengke/src/inventory/domain/entity"
	"palengke/src/inventory/domain/port"
	"palengke/src/inventory/infrastructure/cache"
)

// AddProductUseCase caso de uso para agregar un producto al catálogo
type AddProductUseCase struct {
	productRepo  port.ProductRepository
	productCache *cache.ProductCache
}

// NewAddProductUseCase crea una nueva instancia del caso de uso
func NewAddProductUseCase(productRepo port.ProductRepository, productCache *cache.ProductCache) *AddProductUseCase {
	return &AddProductUseCase{
		productRepo:  productRepo,
		productCache: productCache,
	}
}

// Execute crea el producto, lo persiste y actualiza el cache
func (uc *AddProductUseCase) Execute(ctx context.Context, req *request.AddProductRequest) (*response.ProductResponse, error) {
	product, err := entity.NewProduct(req.Name, req.Cost, req.SellPrice, req.Stock)
	if err != nil {
		return nil, err
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("error creating product: %w", err)
	}

	uc.productCache.Put(*product)
	log.Printf("✅ Product created: %s (%s), stock=%d", product.Name, product.ID, product.Stock)

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
