// Package cart holds the session-local shopping cart. State lives only in
// the running process; nothing is persisted or synced.
package cart

import (
	"sync"

	"github.com/google/uuid"

	"github.com/lvtran/mindbrew/internal/client/models"
)

// Store is the in-memory cart. Line order is insertion order.
type Store struct {
	mu    sync.Mutex
	items []models.CartItem
}

func New() *Store {
	return &Store{}
}

// Add puts one unit of item in the cart, incrementing the existing line when
// the item is already present.
func (s *Store) Add(item models.Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i].Quantity++
			return
		}
	}
	s.items = append(s.items, models.CartItem{Item: item, Quantity: 1})
}

// Remove drops the whole line for the given item id.
func (s *Store) Remove(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = deleteLine(s.items, itemID)
}

// Decrement removes one unit; the line disappears when it reaches zero.
func (s *Store) Decrement(itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == itemID {
			s.items[i].Quantity--
			if s.items[i].Quantity <= 0 {
				s.items = deleteLine(s.items, itemID)
			}
			return
		}
	}
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Items returns a copy of the current lines.
func (s *Store) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Total is the price sum over all lines.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, it := range s.items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// Draft is a checkout snapshot with a fresh id, handed to whatever places the
// order.
type Draft struct {
	ID    string
	Lines []models.CartItem
	Total float64
}

// CheckoutDraft snapshots the cart into a Draft. The cart itself is left
// untouched; callers Clear it once the order is accepted.
func (s *Store) CheckoutDraft() Draft {
	return Draft{
		ID:    uuid.NewString(),
		Lines: s.Items(),
		Total: s.Total(),
	}
}

func deleteLine(items []models.CartItem, itemID string) []models.CartItem {
	out := items[:0]
	for _, it := range items {
		if it.ID != itemID {
			out = append(out, it)
		}
	}
	return out
}
