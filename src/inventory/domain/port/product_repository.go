package port

import (
	"context"

	"palengke/src/inventory/domain/entity"

	"github.com/google/uuid"
)

// ProductRepository define el contrato para persistir productos y sus
// movimientos de stock
type ProductRepository interface {
	// List retorna todos los productos del puesto
	List(ctx context.Context) ([]*entity.Product, error)

	// GetByID retorna un producto por ID (ErrProductNotFound si no existe)
	GetByID(ctx context.Context, productID uuid.UUID) (*entity.Product, error)

	// Create persiste un producto nuevo
	Create(ctx context.Context, product *entity.Product) error

	// AdjustStock suma delta al stock del producto (delta negativo para
	// ventas) y registra el movimiento en stock_logs, en una transacción.
	// El stock nunca queda por debajo de cero: en ese caso retorna
	// ErrInsufficientStock sin aplicar nada.
	AdjustStock(ctx context.Context, productID uuid.UUID, delta int, logType string) error

	// ListStockLogs retorna los movimientos de stock de un producto,
	// más recientes primero
	ListStockLogs(ctx context.Context, productID uuid.UUID) ([]*entity.StockLog, error)
}
