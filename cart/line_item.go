package cart

// Product is anything the cart can hold. The cart only ever asks whether two
// products are the same salable item.
type Product interface {
	Equal(other Product) bool
}

// LineItem pairs a product with a quantity.
type LineItem struct {
	product  Product
	quantity int
}

func NewLineItem(p Product, quantity int) *LineItem {
	return &LineItem{product: p, quantity: quantity}
}

func (li *LineItem) Product() Product { return li.product }

func (li *LineItem) Quantity() int { return li.quantity }

// Adjust adds delta to the quantity. It may leave the quantity at or below
// zero; the owning Cart drops such items.
func (li *LineItem) Adjust(delta int) {
	li.quantity += delta
}
