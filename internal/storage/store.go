package storage

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("key not found")

// Store is a key-value store holding JSON-encoded snapshots. All application
// state lives under a handful of well-known keys; writers always replace the
// whole value, so the last writer wins.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Well-known store keys.
const (
	KeyUser           = "user"
	KeyCartItems      = "cartItems"
	KeyOrders         = "orders"
	KeyLastOrderID    = "lastOrderId"
	KeyMenuItems      = "menuItems"
	KeyLastMenuItemID = "lastMenuItemId"
	KeyFeaturedItems  = "featuredItems"
	KeyCheckoutDraft  = "checkoutDraft"
)

type memoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore returns an in-process Store. It is the default backend and
// doubles as the test fake.
func NewMemoryStore() Store {
	return &memoryStore{data: make(map[string][]byte)}
}

func (s *memoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *memoryStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	s.data[key] = stored
	return nil
}

func (s *memoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
