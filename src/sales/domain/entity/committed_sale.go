package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CommittedSale es el snapshot inmutable que se emite cuando la orden
// pendiente se cierra por timeout (Aggregate Root)
type CommittedSale struct {
	ID            uuid.UUID         `json:"id"`
	SessionID     uuid.UUID         `json:"session_id"`
	LineItems     []PendingLineItem `json:"line_items"`
	TotalQuantity int               `json:"total_quantity"`
	TotalAmount   decimal.Decimal   `json:"total_amount"`
	DisplayLabel  string            `json:"display_label"`
	Currency      string            `json:"currency"`
	CreatedAt     time.Time         `json:"created_at"`
}

// NewCommittedSale construye el snapshot a partir de la orden pendiente.
// Los totales se calculan desde los line items; display_label es el nombre
// del producto si hay exactamente un item, sino "N items".
func NewCommittedSale(sessionID uuid.UUID, order *PendingOrder, currency string) (*CommittedSale, error) {
	if order == nil || order.IsEmpty() {
		return nil, ErrPendingOrderEmpty
	}

	items := order.Items()

	totalQuantity := 0
	totalAmount := decimal.Zero
	for _, item := range items {
		totalQuantity += item.Quantity
		totalAmount = totalAmount.Add(item.LineTotal)
	}

	displayLabel := fmt.Sprintf("%d items", len(items))
	if len(items) == 1 {
		displayLabel = items[0].ProductName
	}

	if currency == "" {
		currency = "PHP"
	}

	return &CommittedSale{
		ID:            uuid.New(),
		SessionID:     sessionID,
		LineItems:     items,
		TotalQuantity: totalQuantity,
		TotalAmount:   totalAmount,
		DisplayLabel:  displayLabel,
		Currency:      currency,
		CreatedAt:     time.Now(),
	}, nil
}

// TotalItems retorna el número de line items distintos
func (cs *CommittedSale) TotalItems() int {
	return len(cs.LineItems)
}
