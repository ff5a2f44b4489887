// Package storage provides the persistent key-value store backing the
// ledger. All operations are synchronous; a Set that returns has been
// committed.
package storage

import "sync"

// Keys used by the ledger. Each store holds one namespace.
const (
	KeyTransactions = "transactions"
	KeyBudget       = "budget"
	KeyCurrency     = "currency"
)

// Store is a synchronous key-value store.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)
	// Set writes a value durably before returning.
	Set(key, value string) error
	// Delete removes a key. Deleting an absent key is not an error.
	Delete(key string) error
	// Clear removes every key in the namespace.
	Clear() error
	Close() error
}

// MemoryStore is an ephemeral Store for tests and throwaway runs.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = make(map[string]string)
	return nil
}

func (s *MemoryStore) Close() error { return nil }
