package models

import "shopping-cart/cart"

// SalableProduct is a catalog product as seen by a cart.
type SalableProduct struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

// Equal reports whether other is the same catalog product. Only the ID counts,
// so a stale copy of a product still matches the fresh one.
func (p SalableProduct) Equal(other cart.Product) bool {
	switch o := other.(type) {
	case SalableProduct:
		return o.ID == p.ID
	case *SalableProduct:
		return o != nil && o.ID == p.ID
	}
	return false
}
