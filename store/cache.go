package store

import (
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// CachedStore keeps recently used products in memory in front of another
// Store. Concurrent misses for the same product share one lookup.
// Stock reads always go to the underlying store.
type CachedStore struct {
	next  Store
	cache *lru.Cache[int64, ProductRow]
	sf    singleflight.Group
}

func NewCachedStore(next Store, size int) (*CachedStore, error) {
	c, err := lru.New[int64, ProductRow](size)
	if err != nil {
		return nil, err
	}
	return &CachedStore{next: next, cache: c}, nil
}

func (s *CachedStore) GetProduct(productID int64) (ProductRow, error) {
	if p, ok := s.cache.Get(productID); ok {
		return p, nil
	}
	v, err, _ := s.sf.Do(strconv.FormatInt(productID, 10), func() (any, error) {
		p, err := s.next.GetProduct(productID)
		if err != nil {
			return p, err
		}
		s.cache.Add(productID, p)
		return p, nil
	})
	return v.(ProductRow), err
}

func (s *CachedStore) CreateProduct(name, desc string, price float64, stock int) (int64, error) {
	return s.next.CreateProduct(name, desc, price, stock)
}

func (s *CachedStore) ListProducts() ([]ProductRow, error) {
	return s.next.ListProducts()
}

// UpdateStock forwards the update and drops the cached copy either way.
func (s *CachedStore) UpdateStock(productID int64, newStock int) error {
	err := s.next.UpdateStock(productID, newStock)
	s.cache.Remove(productID)
	return err
}

func (s *CachedStore) GetStock(productID int64) (int, error) {
	return s.next.GetStock(productID)
}

func (s *CachedStore) Close() error {
	s.cache.Purge()
	return s.next.Close()
}
