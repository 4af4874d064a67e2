package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tipos de movimiento de stock
const (
	StockLogSale    = "sale"
	StockLogRestock = "restock"
	StockLogUndo    = "undo" // Reversa de una venta (devuelve stock)
)

// StockLog registra un movimiento de stock de un producto
type StockLog struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	Type      string    `json:"type"` // sale | restock | undo
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}
