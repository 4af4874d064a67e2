package request

import "github.com/shopspring/decimal"

// AddProductRequest request para crear un producto del catálogo
type AddProductRequest struct {
	Name      string          `json:"name" binding:"required"`
	Cost      decimal.Decimal `json:"cost"`
	SellPrice decimal.Decimal `json:"sell_price" binding:"required"`
	Stock     int             `json:"stock"`
}

// RestockRequest request para reponer stock de un producto
type RestockRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}
