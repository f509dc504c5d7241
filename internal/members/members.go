package members

import (
	"context"
	"sync"
	"time"

	"github.com/Johncsss/food-supplier-platform-sub001/internal/domain"
	"github.com/Johncsss/food-supplier-platform-sub001/pkg/errors"
)

// Repository looks up and stores member profiles
type Repository interface {
	GetByID(ctx context.Context, memberID string) (*domain.Member, error)
	Save(ctx context.Context, member *domain.Member) error
}

// MemoryRepository keeps member profiles in process memory
type MemoryRepository struct {
	mu      sync.RWMutex
	members map[string]*domain.Member
}

// NewMemoryRepository creates an empty in-memory member repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		members: make(map[string]*domain.Member),
	}
}

func (r *MemoryRepository) GetByID(ctx context.Context, memberID string) (*domain.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.members[memberID]
	if !ok {
		return nil, &errors.ErrNotFound{Resource: "member", ID: memberID}
	}
	cp := *m
	return &cp, nil
}

func (r *MemoryRepository) Save(ctx context.Context, member *domain.Member) error {
	now := time.Now()
	if member.CreatedAt.IsZero() {
		member.CreatedAt = now
	}
	member.UpdatedAt = now

	cp := *member
	r.mu.Lock()
	defer r.mu.Unlock()
	r.members[member.ID] = &cp
	return nil
}
