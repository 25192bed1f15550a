package cart

import (
	"sync"

	"woodcraft-market/internal/domain"
)

// Line is one product-and-quantity entry in a cart. The unit price and name
// are snapshotted when the product is first added.
type Line struct {
	ProductID      string `json:"productId"`
	ProductName    string `json:"productName"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unitPriceCents"`
}

// Snapshot is a read-only copy of the cart with derived totals. It is computed
// fresh on every call and never cached.
type Snapshot struct {
	Lines      []Line `json:"lines"`
	TotalItems int    `json:"totalItems"`
	TotalCents int64  `json:"totalCents"`
}

// Empty reports whether the snapshot holds no lines.
func (s Snapshot) Empty() bool {
	return len(s.Lines) == 0
}

// Store holds the cart lines for one session. There is at most one line per
// product; adding an already-present product increments its quantity. Lines
// keep first-add order. Stores live only in process memory.
type Store struct {
	mu    sync.Mutex
	lines []Line
}

func NewStore() *Store {
	return &Store{}
}

// Add puts quantity units of the product into the cart. Non-positive
// quantities and products without a positive price are ignored; the
// operation never fails.
func (s *Store) Add(p domain.Product, quantity int) {
	if quantity <= 0 {
		return
	}
	price := p.EffectivePriceCents()
	if price <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID == p.ID {
			s.lines[i].Quantity += quantity
			return
		}
	}
	s.lines = append(s.lines, Line{
		ProductID:      p.ID,
		ProductName:    p.Name,
		Quantity:       quantity,
		UnitPriceCents: price,
	})
}

// UpdateQuantity replaces the quantity of the line for productID. A quantity
// of zero or less removes the line. Unknown product ids are a no-op so stale
// UI actions do not error.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		s.Remove(productID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines[i].Quantity = quantity
			return
		}
	}
}

// Remove deletes the line for productID if present.
func (s *Store) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Called after a fully successful checkout or on
// explicit user action.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

// Snapshot returns a copy of the current lines plus totals. Totals are kept
// in integer cents, so no rounding happens in the aggregate.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{Lines: make([]Line, len(s.lines))}
	copy(snap.Lines, s.lines)
	for _, line := range snap.Lines {
		snap.TotalItems += line.Quantity
		snap.TotalCents += int64(line.Quantity) * line.UnitPriceCents
	}
	return snap
}
