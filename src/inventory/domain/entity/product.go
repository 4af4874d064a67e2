package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product representa un producto del puesto (catálogo + stock)
type Product struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Cost      decimal.Decimal `json:"cost"`       // Costo unitario para el vendedor
	SellPrice decimal.Decimal `json:"sell_price"` // Precio de venta al público
	Stock     int             `json:"stock"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewProduct crea un producto nuevo con validaciones básicas
func NewProduct(name string, cost, sellPrice decimal.Decimal, stock int) (*Product, error) {
	if name == "" {
		return nil, ErrProductNameRequired
	}
	if cost.LessThan(decimal.Zero) {
		return nil, ErrInvalidCost
	}
	if sellPrice.LessThan(decimal.Zero) {
		return nil, ErrInvalidSellPrice
	}
	if stock < 0 {
		return nil, ErrInvalidStock
	}

	return &Product{
		ID:        uuid.New(),
		Name:      name,
		Cost:      cost,
		SellPrice: sellPrice,
		Stock:     stock,
		CreatedAt: time.Now(),
	}, nil
}

// InStock indica si el producto tiene stock disponible
func (p *Product) InStock() bool {
	return p.Stock > 0
}
