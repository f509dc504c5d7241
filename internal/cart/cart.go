package cart

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Johncsss/food-supplier-platform-sub001/internal/cartstore"
	"github.com/Johncsss/food-supplier-platform-sub001/internal/domain"
	"github.com/Johncsss/food-supplier-platform-sub001/pkg/errors"
)

// Snapshot is an immutable copy of the cart taken when checkout begins.
// The order payload is built from it, never from the live state, so rapid
// UI actions during the checkout window cannot change what is submitted.
type Snapshot struct {
	Items       []domain.LineItem
	TotalItems  int
	TotalAmount decimal.Decimal
	CapturedAt  time.Time
}

// Cart is one member's cart session. State is hydrated from the store when
// the session opens and mutated only through Apply; every successful
// transition is written through to the store. A Cart assumes a single
// writer (one member, one session); concurrent sessions for the same
// member are not coordinated.
type Cart struct {
	memberID string
	state    State
	store    cartstore.CartStore
	logger   *zap.Logger

	// checkoutInFlight blocks mutations between snapshot and clear so the
	// submitted payload cannot diverge from the persisted cart
	checkoutInFlight bool
}

// Open hydrates a cart session for a member from the persisted store
func Open(ctx context.Context, memberID string, store cartstore.CartStore, logger *zap.Logger) (*Cart, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	items, err := store.Load(ctx, memberID)
	if err != nil {
		return nil, err
	}

	return &Cart{
		memberID: memberID,
		state:    recompute(items),
		store:    store,
		logger:   logger,
	}, nil
}

// MemberID returns the member this cart session belongs to
func (c *Cart) MemberID() string {
	return c.memberID
}

// State returns the current cart state. Callers must treat Items as
// read-only.
func (c *Cart) State() State {
	return c.state
}

// Quantity returns the in-cart quantity for a product, 0 if absent
func (c *Cart) Quantity(productID string) int {
	return c.state.Quantity(productID)
}

// Apply runs an action through the reducer and, on success, writes the new
// item set through to the store. Mutations are rejected while a checkout
// is in flight. Persistence failures are logged and tolerated: the
// in-memory state is authoritative for the session and no durability
// guarantee is claimed.
func (c *Cart) Apply(ctx context.Context, action Action) (State, error) {
	if c.checkoutInFlight {
		return c.state, &errors.ErrCheckoutInProgress{}
	}

	next, err := Reduce(c.state, action)
	if err != nil {
		return c.state, err
	}
	c.state = next

	if err := c.store.Save(ctx, c.memberID, c.state.Items); err != nil {
		c.logger.Warn("Failed to persist cart",
			zap.Error(err),
			zap.String("member_id", c.memberID),
		)
	}
	return c.state, nil
}

// BeginCheckout marks the cart busy and returns an immutable snapshot of
// the current state. Every begun checkout must end with either
// FailCheckout or CompleteCheckout, including on teardown, or the cart
// stays locked.
func (c *Cart) BeginCheckout() (*Snapshot, error) {
	if c.checkoutInFlight {
		return nil, &errors.ErrCheckoutInProgress{}
	}
	c.checkoutInFlight = true

	items := make([]domain.LineItem, len(c.state.Items))
	copy(items, c.state.Items)

	return &Snapshot{
		Items:       items,
		TotalItems:  c.state.TotalItems,
		TotalAmount: c.state.TotalAmount,
		CapturedAt:  time.Now(),
	}, nil
}

// FailCheckout releases the busy flag with no state change. Used on every
// failed or abandoned checkout path.
func (c *Cart) FailCheckout() {
	c.checkoutInFlight = false
}

// CompleteCheckout clears the cart and its persisted copy after a
// successful checkout and releases the busy flag
func (c *Cart) CompleteCheckout(ctx context.Context) {
	c.state = NewState()
	c.checkoutInFlight = false

	if err := c.store.Delete(ctx, c.memberID); err != nil {
		c.logger.Warn("Failed to clear persisted cart after checkout",
			zap.Error(err),
			zap.String("member_id", c.memberID),
		)
	}
}

// CheckoutInFlight reports whether a checkout currently holds the cart
func (c *Cart) CheckoutInFlight() bool {
	return c.checkoutInFlight
}
