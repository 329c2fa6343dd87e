package domain

import "time"

// Cart holds a session's shopping cart. It lives only in memory for the
// duration of the session; there is no durable persistence.
type Cart struct {
	SessionID string     `json:"session_id"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem is one product's presence in the cart: a snapshot of the product's
// attributes at the time it was added, plus a quantity that is always >= 1.
// A quantity that would reach zero removes the item instead.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// AddProduct adds a product to the cart. If an item for the product id
// already exists its quantity is incremented; otherwise a new item with
// quantity 1 is appended, snapshotting the product's current attributes.
// Later catalog changes do not affect existing items.
func (c *Cart) AddProduct(p Product) {
	if i := c.findIndex(p.ID); i >= 0 {
		c.Items[i].Quantity++
		return
	}
	c.Items = append(c.Items, CartItem{Product: p, Quantity: 1})
}

// IncreaseQuantity increments the quantity of the item for the given product
// id. It reports whether an item was found; an absent id is a no-op.
func (c *Cart) IncreaseQuantity(id string) bool {
	i := c.findIndex(id)
	if i < 0 {
		return false
	}
	c.Items[i].Quantity++
	return true
}

// DecreaseQuantity decrements the quantity of the item for the given product
// id, removing the item entirely when the quantity would drop below 1. It
// reports whether an item was found; an absent id is a no-op.
func (c *Cart) DecreaseQuantity(id string) bool {
	i := c.findIndex(id)
	if i < 0 {
		return false
	}
	c.Items[i].Quantity--
	if c.Items[i].Quantity <= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
	}
	return true
}

// RemoveProduct deletes the item for the given product id regardless of its
// quantity. It reports whether an item was found; an absent id is a no-op.
func (c *Cart) RemoveProduct(id string) bool {
	i := c.findIndex(id)
	if i < 0 {
		return false
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
	return true
}

// TotalAmount returns the sum of price times quantity over all items.
func (c *Cart) TotalAmount() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

// ItemCount returns the total number of units in the cart.
func (c *Cart) ItemCount() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// findIndex returns the index of the item for the given product id, or -1.
func (c *Cart) findIndex(id string) int {
	for i := range c.Items {
		if c.Items[i].ID == id {
			return i
		}
	}
	return -1
}
