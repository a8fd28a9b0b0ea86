package cart

import (
	"sync"

	"minishop-storefront/internal/domain"
)

// Summary is the store-wide change notification payload consumed by badge
// counts and order summaries.
type Summary struct {
	TotalItems    int   `json:"totalItems"`
	SubtotalCents int64 `json:"subtotalCents"`
}

// Store is the process-wide cart. All mutation goes through named operations
// serialized by a single mutex; subscribers are notified after every
// mutation. Lines keep insertion order.
type Store struct {
	mu      sync.Mutex
	lines   []domain.CartLine
	subs    map[int]func(Summary)
	nextSub int
}

func NewStore() *Store {
	return &Store{subs: make(map[int]func(Summary))}
}

// Subscribe registers a change listener and returns its unsubscribe func.
// Listeners run after the mutation completes, outside the store lock.
func (s *Store) Subscribe(fn func(Summary)) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Add merges by product id: an existing line gains quantity 1, otherwise a
// new line is created with quantity 1 and the unit price frozen at the
// product's current price. It always succeeds.
func (s *Store) Add(p domain.Product) {
	s.mu.Lock()
	if i := s.find(p.ID); i >= 0 {
		s.lines[i].Quantity++
	} else {
		s.lines = append(s.lines, domain.CartLine{
			ProductID:      p.ID,
			Quantity:       1,
			UnitPriceCents: p.PriceCents,
			NameEN:         p.NameEN,
			NameAR:         p.NameAR,
			Category:       p.Category,
			Image:          p.Image,
		})
	}
	s.notifyLocked()
}

// UpdateQuantity sets the line's quantity. A non-positive quantity removes
// the line; the UI floors decrements at 1, so reaching zero here means the
// caller bypassed that guard and the line is treated as removed. Unknown ids
// are a no-op. There is no maximum clamp.
func (s *Store) UpdateQuantity(id string, quantity int) {
	s.mu.Lock()
	i := s.find(id)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	if quantity <= 0 {
		s.lines = append(s.lines[:i], s.lines[i+1:]...)
	} else {
		s.lines[i].Quantity = quantity
	}
	s.notifyLocked()
}

// Remove deletes the line for id; an absent id is a silent no-op.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	i := s.find(id)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	s.notifyLocked()
}

// Clear empties the cart. Called exactly once per order, on placement.
func (s *Store) Clear() {
	s.mu.Lock()
	s.lines = nil
	s.notifyLocked()
}

// Lines returns a copy of the cart lines in insertion order.
func (s *Store) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// SubtotalCents sums unit price times quantity over all lines.
func (s *Store) SubtotalCents() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return subtotal(s.lines)
}

// TotalItems sums quantities, for the cart badge.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return totalItems(s.lines)
}

// Snapshot returns an immutable copy of the whole cart. The checkout review
// step prices against a snapshot, not the live store.
func (s *Store) Snapshot() domain.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := make([]domain.CartLine, len(s.lines))
	copy(lines, s.lines)
	return domain.CartSnapshot{
		Lines:         lines,
		SubtotalCents: subtotal(lines),
		TotalItems:    totalItems(lines),
	}
}

// notifyLocked releases the lock and runs subscribers with the new summary,
// so listeners may read the store without deadlocking.
func (s *Store) notifyLocked() {
	summary := Summary{TotalItems: totalItems(s.lines), SubtotalCents: subtotal(s.lines)}
	fns := make([]func(Summary), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn(summary)
	}
}

func (s *Store) find(id string) int {
	for i := range s.lines {
		if s.lines[i].ProductID == id {
			return i
		}
	}
	return -1
}

func subtotal(lines []domain.CartLine) int64 {
	var total int64
	for _, l := range lines {
		total += l.TotalCents()
	}
	return total
}

func totalItems(lines []domain.CartLine) int {
	var count int
	for _, l := range lines {
		count += l.Quantity
	}
	return count
}
