package notifier

import (
	"palengke/src/sales/domain/entity"
	"palengke/src/sales/domain/port"

	"github.com/google/uuid"
)

// CompositeNotifier distribuye cada evento del agregador a todos los
// colaboradores registrados (persistencia, métricas, eventos, log)
type CompositeNotifier struct {
	notifiers []port.SaleNotifier
}

// NewCompositeNotifier crea un notificador compuesto
func NewCompositeNotifier(notifiers ...port.SaleNotifier) *CompositeNotifier {
	return &CompositeNotifier{notifiers: notifiers}
}

// TapRecorded distribuye el indicador en vivo
func (c *CompositeNotifier) TapRecorded(sessionID uuid.UUID, update entity.TapUpdate) {
	for _, n := range c.notifiers {
		n.TapRecorded(sessionID, update)
	}
}

// OutOfStockTapped distribuye el tap sin stock
func (c *CompositeNotifier) OutOfStockTapped(sessionID uuid.UUID, productID, productName string) {
	for _, n := range c.notifiers {
		n.OutOfStockTapped(sessionID, productID, productName)
	}
}

// SaleCommitted distribuye la venta confirmada
func (c *CompositeNotifier) SaleCommitted(sale *entity.CommittedSale) {
	for _, n := range c.notifiers {
		n.SaleCommitted(sale)
	}
}

// SaleUndone distribuye la reversa
func (c *CompositeNotifier) SaleUndone(sale *entity.CommittedSale) {
	for _, n := range c.notifiers {
		n.SaleUndone(sale)
	}
}
