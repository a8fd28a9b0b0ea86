package wishlist

import (
	"sync"

	"minishop-storefront/internal/domain"
)

// Store is the process-wide wishlist: a set of product snapshots keyed by
// product id, kept in insertion order. The store holds no authentication
// state; callers gate toggles before reaching it.
type Store struct {
	mu    sync.Mutex
	items []domain.Product
}

func NewStore() *Store {
	return &Store{}
}

// Toggle inserts a full snapshot of p when absent and removes the existing
// entry when present. It returns whether p is in the wishlist afterwards.
// Two consecutive toggles of the same id restore the prior state.
func (s *Store) Toggle(p domain.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return false
		}
	}
	s.items = append(s.items, p)
	return true
}

// Contains reports membership by product id, used to pick the icon state.
func (s *Store) Contains(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			return true
		}
	}
	return false
}

// Items returns a copy of the wishlist in insertion order.
func (s *Store) Items() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Product, len(s.items))
	copy(out, s.items)
	return out
}
