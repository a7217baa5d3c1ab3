package models

import "math"

// TaxRate is the flat tax applied to the cart subtotal at checkout.
const TaxRate = 0.08

type CartItem struct {
	MenuItemID int     `json:"menuItemId"`
	Name       string  `json:"name"`
	UnitPrice  float64 `json:"unitPrice"`
	Quantity   int     `json:"quantity"`
}

// Cart is an ephemeral value object. It is never persisted: the client
// owns cart state and the server only rebuilds one at checkout to price
// the order. All methods return a new Cart and leave the receiver alone.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Add appends a line, merging into an existing line when the menu item
// is already in the cart. A merged line keeps the unit price it was
// first added with; only the quantity grows.
func (c Cart) Add(item CartItem) Cart {
	items := make([]CartItem, 0, len(c.Items)+1)
	merged := false
	for _, it := range c.Items {
		if it.MenuItemID == item.MenuItemID {
			it.Quantity += item.Quantity
			merged = true
		}
		items = append(items, it)
	}
	if !merged {
		items = append(items, item)
	}
	return Cart{Items: items}
}

func (c Cart) Remove(menuItemID int) Cart {
	items := make([]CartItem, 0, len(c.Items))
	for _, it := range c.Items {
		if it.MenuItemID != menuItemID {
			items = append(items, it)
		}
	}
	return Cart{Items: items}
}

// UpdateQuantity sets the quantity for a line. A quantity of zero or
// less removes the line.
func (c Cart) UpdateQuantity(menuItemID, quantity int) Cart {
	if quantity <= 0 {
		return c.Remove(menuItemID)
	}
	items := make([]CartItem, 0, len(c.Items))
	for _, it := range c.Items {
		if it.MenuItemID == menuItemID {
			it.Quantity = quantity
		}
		items = append(items, it)
	}
	return Cart{Items: items}
}

func (c Cart) Clear() Cart {
	return Cart{}
}

func (c Cart) Subtotal() float64 {
	var subtotal float64
	for _, it := range c.Items {
		subtotal += it.UnitPrice * float64(it.Quantity)
	}
	return Round2(subtotal)
}

// Total is the subtotal plus the flat tax, rounded to cents.
func (c Cart) Total() float64 {
	return Round2(c.Subtotal() * (1 + TaxRate))
}

// Round2 rounds to currency precision (2 decimals).
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}
