package memory

import (
	"sync"

	"RegistryAdmin/internal/cli/repo"
)

// Store - in-memory KVStore для тестов.
type Store struct {
	mu   sync.RWMutex
	data map[string]string
}

var _ repo.KVStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{data: map[string]string{}}
}

func (s *Store) Get(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return "", repo.ErrNotFound
	}
	return v, nil
}

func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
