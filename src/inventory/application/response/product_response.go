package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductResponse representa un producto en las respuestas del API
type ProductResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Cost      decimal.Decimal `json:"cost"`
	SellPrice decimal.Decimal `json:"sell_price"`
	Stock     int             `json:"stock"`
	InStock   bool            `json:"in_stock"`
	CreatedAt time.Time       `json:"created_at"`
}

// StockLogResponse representa un movimiento de stock
type StockLogResponse struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}
