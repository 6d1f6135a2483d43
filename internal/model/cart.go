package model

type CartItem struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

func (c CartItem) Subtotal() float64 {
	return c.Price * float64(c.Quantity)
}

// CartTotal computes the cart total from the line items themselves,
// never from a server-sent total field.
func CartTotal(items []CartItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Subtotal()
	}
	return total
}
