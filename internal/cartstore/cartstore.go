package cartstore

import (
	"context"

	"github.com/Johncsss/food-supplier-platform-sub001/internal/domain"
)

// CartStore persists a member's cart line items between sessions. It is a
// plain key-value contract keyed by member id: read once when a session
// opens, written through after every mutation. No durability guarantee is
// claimed; a crash between mutation and save loses at most that mutation.
type CartStore interface {
	// Load returns the persisted line items for a member. A member with no
	// persisted cart yields an empty slice, not an error.
	Load(ctx context.Context, memberID string) ([]domain.LineItem, error)

	// Save replaces the persisted line items for a member
	Save(ctx context.Context, memberID string, items []domain.LineItem) error

	// Delete removes the persisted cart for a member
	Delete(ctx context.Context, memberID string) error
}
