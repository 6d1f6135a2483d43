package model

// MenuItem is a purchasable product. The menu is server-owned and
// immutable once loaded; clients receive copies only.
type MenuItem struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
