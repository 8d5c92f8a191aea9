package cart

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/Tuka1911/dymokminiapp/models"
)

// Store owns the cart's line items. Lines are keyed by (product id,
// selected flavor); adding an existing pair bumps its quantity instead of
// appending a duplicate. Every mutation persists a fresh snapshot after
// the in-memory state has settled.
type Store struct {
	mu      sync.Mutex
	lines   []models.CartLine
	storage Storage
	key     string
}

func NewStore(storage Storage) *Store {
	return &Store{storage: storage, key: SnapshotKey}
}

// LoadFromStorage restores the persisted snapshot. A malformed snapshot
// resets the cart to empty and discards the stored payload; that path is
// logged but otherwise silent.
func (s *Store) LoadFromStorage() {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, ok, err := s.storage.Load(s.key)
	if err != nil {
		log.Printf("cart: failed to load snapshot: %v", err)
		return
	}
	if !ok {
		return
	}

	var lines []models.CartLine
	if err := json.Unmarshal([]byte(payload), &lines); err != nil {
		log.Printf("cart: discarding corrupt snapshot: %v", err)
		s.lines = nil
		if err := s.storage.Clear(s.key); err != nil {
			log.Printf("cart: failed to clear corrupt snapshot: %v", err)
		}
		return
	}

	s.lines = s.lines[:0]
	for _, line := range lines {
		if line.Quantity < 1 {
			continue
		}
		s.lines = append(s.lines, line)
	}
}

// AddItem merges the (product, flavor) pair into the cart: quantity +1 on
// an existing line, otherwise a new line with quantity 1 snapshotting the
// product's fields. The caller has already validated the flavor choice
// through the selection flow.
func (s *Store) AddItem(p models.Product, flavor string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(p.ID, flavor); i >= 0 {
		s.lines[i].Quantity++
	} else {
		s.lines = append(s.lines, models.NewCartLine(p, flavor))
	}
	s.persist()
}

// RemoveItem drops the line matching both keys. Absence is a no-op.
func (s *Store) RemoveItem(productID, flavor string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(productID, flavor)
	if i < 0 {
		return
	}
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	s.persist()
}

// SetQuantity overwrites the matching line's quantity; anything below 1
// behaves exactly like RemoveItem. Absence is a no-op.
func (s *Store) SetQuantity(productID, flavor string, quantity int) {
	if quantity < 1 {
		s.RemoveItem(productID, flavor)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(productID, flavor)
	if i < 0 {
		return
	}
	s.lines[i].Quantity = quantity
	s.persist()
}

// Lines returns a copy of the cart in insertion order.
func (s *Store) Lines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// TotalItemCount sums quantities, not line count.
func (s *Store) TotalItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, line := range s.lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice is the pre-discount sum of price x quantity over all lines.
func (s *Store) TotalPrice() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, line := range s.lines {
		total += line.Subtotal()
	}
	return total
}

// Clear empties the cart and removes the persisted snapshot.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	if err := s.storage.Clear(s.key); err != nil {
		log.Printf("cart: failed to clear snapshot: %v", err)
	}
}

func (s *Store) indexOf(productID, flavor string) int {
	for i, line := range s.lines {
		if line.ID == productID && line.SelectedFlavor == flavor {
			return i
		}
	}
	return -1
}

// persist writes the snapshot after a mutation. Last write wins; a failed
// write is logged and the in-memory cart stays authoritative.
func (s *Store) persist() {
	lines := s.lines
	if lines == nil {
		lines = []models.CartLine{}
	}
	payload, err := json.Marshal(lines)
	if err != nil {
		log.Printf("cart: failed to encode snapshot: %v", err)
		return
	}
	if err := s.storage.Save(s.key, string(payload)); err != nil {
		log.Printf("cart: failed to save snapshot: %v", err)
	}
}
