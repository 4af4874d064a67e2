package response

import (
	"github.com/shopspring/decimal"
)

// TapResponse es el indicador en vivo que se devuelve sincrónicamente con
// cada tap: cantidad y total acumulados del line item dentro de la orden
// pendiente. El commit de la venta es asíncrono (cierre de ventana de
// silencio), esto es feedback inmediato para la UI.
type TapResponse struct {
	Result      string          `json:"result"` // "sale" | "out_of_stock"
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity,omitempty"`
	LineTotal   decimal.Decimal `json:"line_total,omitempty"`
	PositionX   *float64        `json:"position_x,omitempty"`
	PositionY   *float64        `json:"position_y,omitempty"`
}
