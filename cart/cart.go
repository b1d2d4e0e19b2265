// Package cart holds the in-memory shopping cart.
//
// A Cart keeps at most one LineItem per product and never keeps an item whose
// quantity is zero or negative once a call returns. It is not safe for
// concurrent use; callers sharing a Cart must serialize access themselves.
package cart

// Cart is an ordered set of line items, unique by product.
type Cart struct {
	items []*LineItem
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

func (c *Cart) IsEmpty() bool { return len(c.items) == 0 }

func (c *Cart) Len() int { return len(c.items) }

// Items returns a copy of the cart contents in insertion order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, 0, len(c.items))
	for _, it := range c.items {
		out = append(out, *it)
	}
	return out
}

// Quantity returns the quantity held for p, or 0 if p is not in the cart.
func (c *Cart) Quantity(p Product) int {
	if _, it := c.findItem(p); it != nil {
		return it.quantity
	}
	return 0
}

// AddItem merges quantity into the item for p, or appends a new item.
// A new item with a non-positive quantity is not stored, and an existing
// item pushed to zero or below is dropped.
func (c *Cart) AddItem(p Product, quantity int) {
	i, it := c.findItem(p)
	if it == nil {
		if quantity > 0 {
			c.items = append(c.items, NewLineItem(p, quantity))
		}
		return
	}
	it.Adjust(quantity)
	if it.quantity <= 0 {
		c.removeAt(i)
	}
}

// RemoveItem takes quantity off the item for p. Once the quantity reaches
// zero the item is removed entirely. Removing an absent product is a no-op.
func (c *Cart) RemoveItem(p Product, quantity int) {
	i, it := c.findItem(p)
	if it == nil {
		return
	}
	it.Adjust(-quantity)
	if it.quantity <= 0 {
		c.removeAt(i)
	}
}

// Clear drops every item.
func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) findItem(p Product) (int, *LineItem) {
	for i, it := range c.items {
		if it.product.Equal(p) {
			return i, it
		}
	}
	return -1, nil
}

func (c *Cart) removeAt(i int) {
	copy(c.items[i:], c.items[i+1:])
	c.items[len(c.items)-1] = nil
	c.items = c.items[:len(c.items)-1]
}
