package cart

import "sync"

// SnapshotKey is the fixed storage key for the cart snapshot.
const SnapshotKey = "cart"

// Storage is the abstract key-value store the cart persists into. Load
// reports whether a value exists for the key.
type Storage interface {
	Load(key string) (payload string, ok bool, err error)
	Save(key, payload string) error
	Clear(key string) error
}

// MemoryStorage backs tests and database-less dev runs.
type MemoryStorage struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (s *MemoryStorage) Load(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	payload, ok := s.values[key]
	return payload, ok, nil
}

func (s *MemoryStorage) Save(key, payload string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = payload
	return nil
}

func (s *MemoryStorage) Clear(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
