package service

import (
	"errors"

	models "shopping-cart/model"
	"shopping-cart/store"
)

var (
	ErrUserRequired    = errors.New("user_id required")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrNameRequired    = errors.New("name required")
	ErrNegativePrice   = errors.New("price must be >= 0")
)

type Service struct {
	store store.Store
	carts sessions
}

func NewService(s store.Store) *Service {
	return &Service{store: s}
}

func (s *Service) CreateProduct(name, desc string, price float64, stock int) (int64, error) {
	if name == "" {
		return 0, ErrNameRequired
	}
	if price < 0 {
		return 0, ErrNegativePrice
	}
	if stock < 0 {
		return 0, store.ErrNegativeStock
	}
	return s.store.CreateProduct(name, desc, price, stock)
}

func (s *Service) ListProducts() ([]ProductDTO, error) {
	rows, err := s.store.ListProducts()
	if err != nil {
		return nil, err
	}
	out := make([]ProductDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, toProductDTO(r))
	}
	return out, nil
}

func (s *Service) UpdateStock(productID int64, newStock int) error {
	if newStock < 0 {
		return store.ErrNegativeStock
	}
	return s.store.UpdateStock(productID, newStock)
}

// AddToCart puts qty units of a catalog product into the user's cart. The
// cart may never hold more than the product's current stock; stock is only
// checked, not reserved.
func (s *Service) AddToCart(userID string, productID int64, qty int) error {
	if userID == "" {
		return ErrUserRequired
	}
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	row, err := s.store.GetProduct(productID)
	if err != nil {
		return err
	}
	stock, err := s.store.GetStock(productID)
	if err != nil {
		return err
	}
	p := toProduct(row)
	p.Stock = stock

	c, unlock := s.carts.lock(userID)
	defer unlock()

	// both operands are non-negative, so the subtraction cannot overflow.
	if qty > stock-c.Quantity(p) {
		return store.ErrInsufficientStock
	}
	c.AddItem(p, qty)
	return nil
}

// RemoveFromCart takes qty units of a product out of the user's cart.
// qty == 0 removes the whole line. Unknown users and products are a no-op.
func (s *Service) RemoveFromCart(userID string, productID int64, qty int) error {
	if userID == "" {
		return ErrUserRequired
	}
	if qty < 0 {
		return ErrInvalidQuantity
	}
	c, unlock, ok := s.carts.lockExisting(userID)
	if !ok {
		return nil
	}
	defer unlock()

	// products compare by id, so no catalog lookup is needed
	p := models.SalableProduct{ID: productID}
	if qty == 0 {
		qty = c.Quantity(p)
	}
	c.RemoveItem(p, qty)
	return nil
}

func (s *Service) GetCart(userID string) ([]CartDTO, error) {
	if userID == "" {
		return nil, ErrUserRequired
	}
	out := []CartDTO{}
	c, unlock, ok := s.carts.lockExisting(userID)
	if !ok {
		return out, nil
	}
	defer unlock()

	for _, it := range c.Items() {
		p := it.Product().(models.SalableProduct)
		out = append(out, CartDTO{ProductID: p.ID, Name: p.Name, Quantity: it.Quantity()})
	}
	return out, nil
}

func (s *Service) ClearCart(userID string) error {
	if userID == "" {
		return ErrUserRequired
	}
	c, unlock, ok := s.carts.lockExisting(userID)
	if !ok {
		return nil
	}
	defer unlock()
	c.Clear()
	return nil
}

func toProduct(r store.ProductRow) models.SalableProduct {
	p := models.SalableProduct{
		ID:    r.ID,
		Name:  r.Name,
		Price: r.Price,
		Stock: r.Stock,
	}
	if r.Description.Valid {
		p.Description = r.Description.String
	}
	return p
}

func toProductDTO(r store.ProductRow) ProductDTO {
	p := toProduct(r)
	return ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
	}
}

// DTOs
type ProductDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
}

type CartDTO struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
}
