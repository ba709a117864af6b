// Package models defines the client-side domain records: catalog stores and
// items, cart lines, and the user profile created after sign-up.
package models

// Store is the basic store info used by listings.
type Store struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ImageURL string  `json:"imageUrl"`
	Rating   float64 `json:"rating,omitempty"`
	Type     string  `json:"type"` // "restaurant", "grocery", "retail", ...
	Badge    string  `json:"badge,omitempty"`
}

// StoreDetail is the full detail payload of a store screen.
type StoreDetail struct {
	Store
	Description string   `json:"description"`
	Address     string   `json:"address"`
	Banner      string   `json:"banner,omitempty"`
	Gallery     []string `json:"gallery,omitempty"`
	Reviews     []Review `json:"reviews,omitempty"`
}

// Review is a user review attached to a store or item.
type Review struct {
	User    string  `json:"user"`
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
}
