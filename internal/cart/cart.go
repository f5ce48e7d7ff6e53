// Package cart is the reference model of the client-side shopping cart. The
// storefront keeps the cart in browser storage; this package pins its merge
// and persistence semantics so the checkout payload shape stays agreed on.
// Cart prices are display-only, the order service re-prices every line.
package cart

import "encoding/json"

type Item struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"imageUrl,omitempty"`
	Quantity  int     `json:"quantity"`
}

// Cart is an ordered list of items, one line per product.
type Cart struct {
	items []Item
}

func New() *Cart {
	return &Cart{}
}

// Add puts an item in the cart. Adding a product already present merges into
// the existing line by summing quantities; the line keeps its position.
func (c *Cart) Add(item Item) {
	if item.Quantity <= 0 {
		return
	}

	for i := range c.items {
		if c.items[i].ProductID == item.ProductID {
			c.items[i].Quantity += item.Quantity
			return
		}
	}

	c.items = append(c.items, item)
}

// SetQuantity replaces the quantity of a line. Zero or negative removes it.
func (c *Cart) SetQuantity(productID int64, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}

	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Remove drops the line for a product, if present.
func (c *Cart) Remove(productID int64) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = nil
}

// Items returns the cart lines in insertion order.
func (c *Cart) Items() []Item {
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

// Len returns the number of distinct product lines.
func (c *Cart) Len() int {
	return len(c.items)
}

// Total sums price times quantity over all lines. Display only; the server
// recomputes the real total from the catalog when the order is placed.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// MarshalJSON serializes the cart as a plain item array, the same shape the
// storefront persists.
func (c *Cart) MarshalJSON() ([]byte, error) {
	if c.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.items)
}

func (c *Cart) UnmarshalJSON(data []byte) error {
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}

	// Rebuild through Add so duplicate lines merge.
	c.items = nil
	for _, item := range items {
		c.Add(item)
	}
	return nil
}
