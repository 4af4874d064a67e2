package port

import (
	"context"

	"palengke/src/sales/domain/entity"

	"github.com/google/uuid"
)

// SaleRepository define el contrato para persistir ventas confirmadas.
// Solo operaciones mínimas: Create, Void y List.
type SaleRepository interface {
	// Create persiste una venta confirmada con sus items.
	// No valida, solo inserta.
	Create(ctx context.Context, sale *entity.CommittedSale) error

	// Void marca una venta como anulada (undo). Idempotente.
	Void(ctx context.Context, saleID uuid.UUID) error

	// List retorna las ventas confirmadas más recientes primero,
	// con paginación simple
	List(ctx context.Context, page, pageSize int) ([]*entity.CommittedSale, int, error)
}
