package response

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyReportResponse representa el reporte diario de ventas del puesto
// (la tarjeta "Today's Sales" de la pantalla principal)
type DailyReportResponse struct {
	Date          string          `json:"date"`           // YYYY-MM-DD
	SalesCount    int             `json:"sales_count"`    // Ventas confirmadas
	TotalQuantity int             `json:"total_quantity"` // Unidades vendidas
	GrossTotal    decimal.Decimal `json:"gross_total"`    // Suma total_amount (completadas)
	VoidedCount   int             `json:"voided_count"`   // Ventas anuladas con undo
	VoidedTotal   decimal.Decimal `json:"voided_total"`   // Monto anulado
	Currency      string          `json:"currency"`
	FirstSaleAt   *time.Time      `json:"first_sale_at,omitempty"` // Primera venta del día
	LastSaleAt    *time.Time      `json:"last_sale_at,omitempty"`  // Última venta del día
}
