package store

// Store is the product catalog the carts resolve product ids against.
// Cart contents are never stored here.
type Store interface {
	CreateProduct(name, desc string, price float64, stock int) (int64, error)
	GetProduct(productID int64) (ProductRow, error)
	ListProducts() ([]ProductRow, error)

	UpdateStock(productID int64, newStock int) error
	GetStock(productID int64) (int, error)

	Close() error
}
