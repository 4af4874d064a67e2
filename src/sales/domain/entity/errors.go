package entity

import "errors"

var (
	ErrProductIDRequired   = errors.New("product_id is required")
	ErrProductNameRequired = errors.New("product_name is required")
	ErrInvalidQuantity     = errors.New("quantity must be greater than 0")
	ErrInvalidPrice        = errors.New("unit_price must be greater than or equal to 0")
	ErrPendingOrderEmpty   = errors.New("pending order must have at least one item")

	// Sesiones POS (una por pantalla de venta abierta)
	ErrSessionNotFound = errors.New("pos session not found")
	ErrSessionClosed   = errors.New("pos session is closed")
)
