package service

import (
	"sync"

	"shopping-cart/cart"
)

// session is one user's cart. mu guards c and dead.
type session struct {
	mu   sync.Mutex
	c    *cart.Cart
	dead bool
}

// sessions maps user ids to their carts. Carts live only in memory, and a
// user's entry is dropped as soon as their cart is empty on unlock.
type sessions struct {
	m sync.Map // map[string]*session
}

// lock returns the user's cart, creating it if needed, with its mutex held.
func (ss *sessions) lock(userID string) (*cart.Cart, func()) {
	for {
		v, ok := ss.m.Load(userID)
		if !ok {
			v, _ = ss.m.LoadOrStore(userID, &session{c: cart.New()})
		}
		s := v.(*session)
		s.mu.Lock()
		if !s.dead {
			return s.c, func() { ss.release(userID, s) }
		}
		// released while we waited; a fresh session takes its place
		s.mu.Unlock()
	}
}

// lockExisting is like lock but does not create a cart. ok is false when the
// user has none.
func (ss *sessions) lockExisting(userID string) (c *cart.Cart, unlock func(), ok bool) {
	for {
		v, found := ss.m.Load(userID)
		if !found {
			return nil, nil, false
		}
		s := v.(*session)
		s.mu.Lock()
		if !s.dead {
			return s.c, func() { ss.release(userID, s) }, true
		}
		s.mu.Unlock()
	}
}

// release unlocks s, first removing it from the map if its cart is empty.
func (ss *sessions) release(userID string, s *session) {
	if s.c.IsEmpty() {
		s.dead = true
		ss.m.CompareAndDelete(userID, s)
	}
	s.mu.Unlock()
}

