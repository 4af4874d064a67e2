package notifier

import (
	"context"
	"log"

	inventoryEntity "palengke/src/inventory/domain/entity"
	inventoryPort "palengke/src/inventory/domain/port"
	"palengke/src/inventory/infrastructure/cache"
	"palengke/src/sales/domain/entity"
	"palengke/src/sales/domain/port"

	"github.com/google/uuid"
)

// SaleRecorder persiste las ventas confirmadas y descuenta el inventario.
// Commit: inserta la venta y descuenta stock de cada line item (con
// stock_log de venta). Undo: anula la venta y devuelve el stock.
//
// Corre en la goroutine del timer del agregador; los errores se loguean
// para auditoría manual, nunca revierten una venta ya confirmada.
type SaleRecorder struct {
	saleRepo     port.SaleRepository
	productRepo  inventoryPort.ProductRepository
	productCache *cache.ProductCache
}

// NewSaleRecorder crea un nuevo recorder de ventas
func NewSaleRecorder(saleRepo port.SaleRepository, productRepo inventoryPort.ProductRepository, productCache *cache.ProductCache) *SaleRecorder {
	return &SaleRecorder{
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		productCache: productCache,
	}
}

// TapRecorded no persiste nada: el indicador en vivo es efímero
func (r *SaleRecorder) TapRecorded(sessionID uuid.UUID, update entity.TapUpdate) {}

// OutOfStockTapped no persiste nada
func (r *SaleRecorder) OutOfStockTapped(sessionID uuid.UUID, productID, productName string) {}

// SaleCommitted persiste la venta y descuenta stock por cada line item
func (r *SaleRecorder) SaleCommitted(sale *entity.CommittedSale) {
	ctx := context.Background()

	if err := r.saleRepo.Create(ctx, sale); err != nil {
		log.Printf("❌ CRITICAL ERROR: Failed to persist committed sale %s: %v", sale.ID, err)
		return
	}

	r.adjustStockForSale(ctx, sale, -1, inventoryEntity.StockLogSale)
	log.Printf("✅ Sale committed: ID=%s, Label=%q, Qty=%d, Total=%s %s",
		sale.ID, sale.DisplayLabel, sale.TotalQuantity, sale.TotalAmount, sale.Currency)
}

// SaleUndone anula la venta persistida y devuelve el stock descontado
func (r *SaleRecorder) SaleUndone(sale *entity.CommittedSale) {
	ctx := context.Background()

	if err := r.saleRepo.Void(ctx, sale.ID); err != nil {
		log.Printf("❌ CRITICAL ERROR: Failed to void sale %s: %v", sale.ID, err)
		return
	}

	r.adjustStockForSale(ctx, sale, 1, inventoryEntity.StockLogUndo)
	log.Printf("↩️  Sale undone: ID=%s, Label=%q", sale.ID, sale.DisplayLabel)
}

// adjustStockForSale aplica sign*quantity de cada line item al inventario.
// Si falla un item se loguea y se continúa con el resto.
func (r *SaleRecorder) adjustStockForSale(ctx context.Context, sale *entity.CommittedSale, sign int, logType string) {
	for _, item := range sale.LineItems {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			log.Printf("⚠️  Invalid product_id %q in sale %s: %v", item.ProductID, sale.ID, err)
			continue
		}

		delta := sign * item.Quantity
		if err := r.productRepo.AdjustStock(ctx, productID, delta, logType); err != nil {
			log.Printf("❌ CRITICAL ERROR: Failed to adjust stock for product %s (delta=%d): %v", productID, delta, err)
			continue
		}
		r.productCache.AdjustStock(productID, delta)
	}
}
