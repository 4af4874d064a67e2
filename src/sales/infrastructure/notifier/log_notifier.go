package notifier

import (
	"log"

	"palengke/src/sales/domain/entity"

	"github.com/google/uuid"
)

// LogNotifier escribe cada notificación del agregador al log del servicio
// (el equivalente al popup de la pantalla de venta)
type LogNotifier struct{}

// NewLogNotifier crea un nuevo notificador de log
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// TapRecorded loguea el indicador en vivo del tap
func (n *LogNotifier) TapRecorded(sessionID uuid.UUID, update entity.TapUpdate) {
	log.Printf("🛒 Tap: session=%s x%d %s (+%s)", sessionID, update.Quantity, update.ProductName, update.LineTotal)
}

// OutOfStockTapped loguea el tap sin stock
func (n *LogNotifier) OutOfStockTapped(sessionID uuid.UUID, productID, productName string) {
	log.Printf("⛔ Out of stock: session=%s %s (%s)", sessionID, productName, productID)
}

// SaleCommitted loguea la venta confirmada
func (n *LogNotifier) SaleCommitted(sale *entity.CommittedSale) {
	log.Printf("💰 Committed: x%d %s (+%s %s)", sale.TotalQuantity, sale.DisplayLabel, sale.TotalAmount, sale.Currency)
}

// SaleUndone loguea la reversa
func (n *LogNotifier) SaleUndone(sale *entity.CommittedSale) {
	log.Printf("↩️  Undo: x%d %s", sale.TotalQuantity, sale.DisplayLabel)
}
