package mocks

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/nutritrack/backend/internal/models"
)

// MemoryStore is an in-memory stand-in for the Redis-backed user data store.
// Documents round-trip through JSON on every call so tests observe the same
// serialization behavior as the real store.
type MemoryStore struct {
	mu      sync.Mutex
	raw     []byte
	LoadErr error
	SaveErr error
}

// NewMemoryStore creates an empty MemoryStore (not onboarded).
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Seed stores a document directly, bypassing error injection.
func (s *MemoryStore) Seed(data *models.UserData) {
	raw, err := json.Marshal(data)
	if err != nil {
		panic(err)
	}
	s.mu.Lock()
	s.raw = raw
	s.mu.Unlock()
}

func (s *MemoryStore) Load(ctx context.Context) (*models.UserData, error) {
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	s.mu.Lock()
	raw := s.raw
	s.mu.Unlock()
	if raw == nil {
		return nil, nil
	}
	var data models.UserData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (s *MemoryStore) Save(ctx context.Context, data *models.UserData) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.raw = raw
	s.mu.Unlock()
	return nil
}
