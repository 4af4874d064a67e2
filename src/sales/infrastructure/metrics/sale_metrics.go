package metrics

import (
	"palengke/src/sales/domain/entity"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SaleMetrics publica contadores Prometheus de la actividad POS.
// Se expone en GET /metrics junto con las métricas default de promhttp.
type SaleMetrics struct {
	tapsTotal       prometheus.Counter
	outOfStockTotal prometheus.Counter
	commitsTotal    prometheus.Counter
	undosTotal      prometheus.Counter
	amountCommitted prometheus.Counter
}

// NewSaleMetrics registra los contadores en el registry default
func NewSaleMetrics() *SaleMetrics {
	return &SaleMetrics{
		tapsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "palengke_pos_taps_total",
			Help: "Taps de venta registrados",
		}),
		outOfStockTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "palengke_pos_out_of_stock_taps_total",
			Help: "Taps sobre productos sin stock",
		}),
		commitsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "palengke_pos_sales_committed_total",
			Help: "Ventas confirmadas por cierre de ventana de silencio",
		}),
		undosTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "palengke_pos_sales_undone_total",
			Help: "Ventas revertidas con undo",
		}),
		amountCommitted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "palengke_pos_amount_committed_total",
			Help: "Monto total confirmado (unidad mayor de la moneda)",
		}),
	}
}

// TapRecorded incrementa el contador de taps
func (m *SaleMetrics) TapRecorded(sessionID uuid.UUID, update entity.TapUpdate) {
	m.tapsTotal.Inc()
}

// OutOfStockTapped incrementa el contador de taps sin stock
func (m *SaleMetrics) OutOfStockTapped(sessionID uuid.UUID, productID, productName string) {
	m.outOfStockTotal.Inc()
}

// SaleCommitted incrementa ventas y monto confirmado
func (m *SaleMetrics) SaleCommitted(sale *entity.CommittedSale) {
	m.commitsTotal.Inc()
	amount, _ := sale.TotalAmount.Float64()
	m.amountCommitted.Add(amount)
}

// SaleUndone incrementa el contador de undos
func (m *SaleMetrics) SaleUndone(sale *entity.CommittedSale) {
	m.undosTotal.Inc()
}
