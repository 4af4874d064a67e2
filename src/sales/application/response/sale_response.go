package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleListItem representa una venta confirmada en el listado
type SaleListItem struct {
	ID            uuid.UUID       `json:"id"`
	SessionID     uuid.UUID       `json:"session_id"`
	DisplayLabel  string          `json:"display_label"` // Nombre del producto o "N items"
	TotalQuantity int             `json:"total_quantity"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Currency      string          `json:"currency"`
	TotalItems    int             `json:"total_items"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ListSalesResponse respuesta paginada del listado de ventas
type ListSalesResponse struct {
	Items      []SaleListItem `json:"items"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalCount int            `json:"total_count"`
	TotalPages int            `json:"total_pages"`
}

// PendingLineItemResponse es un line item de la orden pendiente (vista en vivo)
type PendingLineItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// PendingOrderResponse es la vista en vivo de la orden pendiente de una sesión
type PendingOrderResponse struct {
	SessionID     uuid.UUID                 `json:"session_id"`
	State         string                    `json:"state"` // "idle" | "accumulating"
	Items         []PendingLineItemResponse `json:"items"`
	TotalQuantity int                       `json:"total_quantity"`
	TotalAmount   decimal.Decimal           `json:"total_amount"`
}

// UndoResponse respuesta del undo: la venta revertida, si existía
type UndoResponse struct {
	Undone        bool            `json:"undone"`
	SaleID        *uuid.UUID      `json:"sale_id,omitempty"`
	DisplayLabel  string          `json:"display_label,omitempty"`
	TotalQuantity int             `json:"total_quantity,omitempty"`
	TotalAmount   decimal.Decimal `json:"total_amount,omitempty"`
}
