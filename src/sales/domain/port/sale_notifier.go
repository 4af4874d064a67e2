package port

import (
	"palengke/src/sales/domain/entity"

	"github.com/google/uuid"
)

// SaleNotifier define el contrato de salida del agregador de ventas hacia
// sus colaboradores (persistencia, métricas, eventos, UI).
//
// TapRecorded y OutOfStockTapped se invocan sincrónicamente durante el tap.
// SaleCommitted se invoca desde el timer de quiet-window (goroutine propia).
// Las implementaciones no deben bloquear ni devolver error: una venta ya
// confirmada no se revierte porque un colaborador falle (se loguea).
type SaleNotifier interface {
	// TapRecorded publica el indicador en vivo de un tap
	TapRecorded(sessionID uuid.UUID, update entity.TapUpdate)

	// OutOfStockTapped señala un tap sobre un producto sin stock.
	// Nunca toca la orden pendiente ni su timer.
	OutOfStockTapped(sessionID uuid.UUID, productID, productName string)

	// SaleCommitted notifica que una venta quedó final (cierre por timeout)
	SaleCommitted(sale *entity.CommittedSale)

	// SaleUndone notifica la reversa de la última venta confirmada
	SaleUndone(sale *entity.CommittedSale)
}
