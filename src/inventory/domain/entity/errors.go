package entity

import "errors"

var (
	ErrProductNotFound     = errors.New("product not found")
	ErrProductNameRequired = errors.New("name is required")
	ErrInvalidSellPrice    = errors.New("sell_price must be greater than or equal to 0")
	ErrInvalidCost         = errors.New("cost must be greater than or equal to 0")
	ErrInvalidStock        = errors.New("stock must be greater than or equal to 0")
	ErrInvalidRestockQty   = errors.New("restock quantity must be greater than 0")
	ErrInsufficientStock   = errors.New("insufficient stock")
)
