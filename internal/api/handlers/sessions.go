package handlers

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/Johncsss/food-supplier-platform-sub001/internal/cart"
	"github.com/Johncsss/food-supplier-platform-sub001/internal/cartstore"
)

// Sessions maps member ids to open cart sessions. A cart is hydrated from
// the store the first time a member touches it and reused for the rest of
// the session; each member is a single writer to their own cart. The
// mutex only guards the map, never the carts.
type Sessions struct {
	mu     sync.Mutex
	store  cartstore.CartStore
	logger *zap.Logger
	carts  map[string]*cart.Cart
}

// NewSessions creates an empty session registry over a cart store
func NewSessions(store cartstore.CartStore, logger *zap.Logger) *Sessions {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sessions{
		store:  store,
		logger: logger,
		carts:  make(map[string]*cart.Cart),
	}
}

// Cart returns the member's cart session, opening and hydrating it on
// first use
func (s *Sessions) Cart(ctx context.Context, memberID string) (*cart.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.carts[memberID]; ok {
		return c, nil
	}

	c, err := cart.Open(ctx, memberID, s.store, s.logger)
	if err != nil {
		return nil, err
	}
	s.carts[memberID] = c
	return c, nil
}

// Evict drops a member's session so the next access re-hydrates from the
// store
func (s *Sessions) Evict(memberID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, memberID)
}
