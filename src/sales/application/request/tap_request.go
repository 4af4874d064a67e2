package request

// TapPosition es la posición en pantalla donde ocurrió el tap (opcional,
// solo para feedback visual)
type TapPosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TapRequest request para registrar un tap de venta sobre un producto.
// Un tap cuenta como una venta; quantity permite taps acumulados desde el
// cliente (default: 1).
type TapRequest struct {
	ProductID string       `json:"product_id" binding:"required"`
	Quantity  int          `json:"quantity,omitempty"` // Default: 1
	Position  *TapPosition `json:"position,omitempty"`
}
