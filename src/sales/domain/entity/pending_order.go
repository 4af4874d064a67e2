package entity

import (
	"github.com/shopspring/decimal"
)

// PendingLineItem acumula la cantidad vendida de un producto dentro de la
// orden pendiente actual. LineTotal siempre se recalcula como
// unit_price * quantity, nunca se acumula (evita drift decimal).
type PendingLineItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// PendingOrder es el batch abierto y no confirmado de taps.
// Invariante: a lo sumo un PendingLineItem por product_id.
// Los items preservan el orden en que cada producto fue tapeado por
// primera vez dentro del batch (solo para display).
type PendingOrder struct {
	items map[string]*PendingLineItem
	order []string // product_ids en orden de primera aparición
}

// NewPendingOrder crea una orden pendiente vacía
func NewPendingOrder() *PendingOrder {
	return &PendingOrder{
		items: make(map[string]*PendingLineItem),
	}
}

// AddTap registra un tap sobre un producto: inserta un nuevo line item o
// incrementa el existente. Retorna el line item resultante.
func (po *PendingOrder) AddTap(productID, productName string, unitPrice decimal.Decimal, quantity int) (*PendingLineItem, error) {
	if productID == "" {
		return nil, ErrProductIDRequired
	}
	if productName == "" {
		return nil, ErrProductNameRequired
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if unitPrice.LessThan(decimal.Zero) {
		return nil, ErrInvalidPrice
	}

	item, ok := po.items[productID]
	if !ok {
		item = &PendingLineItem{
			ProductID:   productID,
			ProductName: productName,
			UnitPrice:   unitPrice,
		}
		po.items[productID] = item
		po.order = append(po.order, productID)
	}

	item.Quantity += quantity
	// Recalcular, no acumular
	item.LineTotal = item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))

	return item, nil
}

// IsEmpty indica si la orden no tiene items
func (po *PendingOrder) IsEmpty() bool {
	return len(po.items) == 0
}

// Len retorna la cantidad de line items distintos
func (po *PendingOrder) Len() int {
	return len(po.items)
}

// Items retorna los line items en orden de primera aparición (copia)
func (po *PendingOrder) Items() []PendingLineItem {
	out := make([]PendingLineItem, 0, len(po.order))
	for _, id := range po.order {
		out = append(out, *po.items[id])
	}
	return out
}

// Clear vacía la orden atómicamente (commit, undo o cierre de sesión)
func (po *PendingOrder) Clear() {
	po.items = make(map[string]*PendingLineItem)
	po.order = nil
}
