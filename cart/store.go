// Package cart implements the client-side cart store: line items, quantity
// mutations, price aggregation, and snapshot persistence.
package cart

import (
	"encoding/json"
	"sync"

	"github.com/Mrzain17/storefront/core"
)

// Store holds the cart line items. All operations are synchronous; every
// mutation writes the persisted snapshot inside the same critical section,
// so no reader ever observes memory and storage diverging.
//
// Cart operations never fail: unknown product ids are no-ops, not errors.
type Store struct {
	mu      sync.RWMutex
	items   []*core.LineItem // insertion order, preserved for display
	index   map[string]*core.LineItem
	storage core.StateStorage // nil disables persistence
}

// NewStore creates a cart store backed by storage and restores any
// previously persisted snapshot. A nil storage keeps the cart in memory only.
func NewStore(storage core.StateStorage) *Store {
	s := &Store{
		index:   make(map[string]*core.LineItem),
		storage: storage,
	}
	s.restore()
	return s
}

// AddItem inserts the item with quantity 1, or increments the quantity of an
// existing line item with the same id, leaving its other fields untouched.
func (s *Store) AddItem(item core.LineItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.index[item.ID]; ok {
		existing.Quantity++
		s.persistLocked()
		return
	}

	item.Quantity = 1
	entry := &item
	s.items = append(s.items, entry)
	s.index[item.ID] = entry
	s.persistLocked()
}

// UpdateQuantity sets the quantity for id. A quantity of zero or less
// removes the line item. Unknown ids are a no-op.
func (s *Store) UpdateQuantity(id string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(id)
		return
	}

	entry, ok := s.index[id]
	if !ok {
		return
	}
	entry.Quantity = quantity
	s.persistLocked()
}

// RemoveItem deletes the line item for id if present.
func (s *Store) RemoveItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(id)
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.index = make(map[string]*core.LineItem)
	s.persistLocked()
}

// TotalItems returns the sum of quantities across all line items.
func (s *Store) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice returns the sum of price * quantity across all line items,
// using the current price, never the original pre-discount price.
func (s *Store) TotalPrice() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0.0
	for _, item := range s.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// ItemQuantity returns the quantity for id, or 0 when absent.
func (s *Store) ItemQuantity(id string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if entry, ok := s.index[id]; ok {
		return entry.Quantity
	}
	return 0
}

// Items returns a copy of the line items in insertion order.
func (s *Store) Items() []core.LineItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.LineItem, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, *item)
	}
	return out
}

// removeLocked deletes id while holding the write lock and persists.
// No-op when the id is absent.
func (s *Store) removeLocked(id string) {
	if _, ok := s.index[id]; !ok {
		return
	}
	delete(s.index, id)
	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	s.persistLocked()
}

// persistLocked writes the current snapshot while holding the write lock.
// A persistence failure never fails the mutation.
func (s *Store) persistLocked() {
	if s.storage == nil {
		return
	}
	data, err := json.Marshal(s.items)
	if err != nil {
		return
	}
	_ = s.storage.Store(core.CartStateName, data)
}

func (s *Store) restore() {
	if s.storage == nil {
		return
	}
	data, err := s.storage.Load(core.CartStateName)
	if err != nil {
		return
	}
	var items []*core.LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return
	}
	s.items = items
	for _, item := range items {
		s.index[item.ID] = item
	}
}
