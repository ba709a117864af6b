package models

// Item is the minimal listing/recommendation card payload.
type Item struct {
	ID        string  `json:"id"`
	StoreID   string  `json:"storeID"`
	Type      string  `json:"type"` // "food & drink", "cloth", "other"
	Name      string  `json:"name"`
	ImageURL  string  `json:"imageUrl"`
	Price     float64 `json:"price"`
	ShortDesc string  `json:"shortDesc"`
	Badge     string  `json:"badge,omitempty"`
	Rating    float64 `json:"rating,omitempty"`
}

// CartItem is an Item plus the quantity held in the cart.
type CartItem struct {
	Item
	Quantity int `json:"quantity"`
}
