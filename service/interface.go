package service

type ServiceInterface interface {
	CreateProduct(name, desc string, price float64, stock int) (int64, error)
	ListProducts() ([]ProductDTO, error)
	UpdateStock(productID int64, newStock int) error

	AddToCart(userID string, productID int64, qty int) error
	RemoveFromCart(userID string, productID int64, qty int) error
	GetCart(userID string) ([]CartDTO, error)
	ClearCart(userID string) error
}
