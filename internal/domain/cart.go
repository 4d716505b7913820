package domain

// CartItem is one cart line. Price, name and image are snapshots taken
// when the product was added; they are not re-synced if the catalog
// changes later.
type CartItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
}

// Subtotal returns the snapshot price times the quantity.
func (i CartItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}
