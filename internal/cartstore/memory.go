package cartstore

import (
	"context"
	"sync"

	"github.com/Johncsss/food-supplier-platform-sub001/internal/domain"
)

// MemoryStore keeps carts in process memory. It is the default store for
// development and the test double for everything that needs persistence.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string][]domain.LineItem
}

// NewMemoryStore creates an empty in-memory cart store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		carts: make(map[string][]domain.LineItem),
	}
}

func (m *MemoryStore) Load(ctx context.Context, memberID string) ([]domain.LineItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items, ok := m.carts[memberID]
	if !ok {
		return []domain.LineItem{}, nil
	}
	out := make([]domain.LineItem, len(items))
	copy(out, items)
	return out, nil
}

func (m *MemoryStore) Save(ctx context.Context, memberID string, items []domain.LineItem) error {
	stored := make([]domain.LineItem, len(items))
	copy(stored, items)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.carts[memberID] = stored
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, memberID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, memberID)
	return nil
}
