package entity

import "github.com/shopspring/decimal"

// Position es la posición en pantalla del tap (feedback visual transitorio)
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TapUpdate es el indicador en vivo que se publica sincrónicamente con cada
// tap: cantidad y total acumulados del line item, más la posición del tap.
// A diferencia del commit (asíncrono), esto es observable de inmediato.
type TapUpdate struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	LineTotal   decimal.Decimal `json:"line_total"`
	Position    *Position       `json:"position,omitempty"`
}
