package checkout

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Johncsss/food-supplier-platform-sub001/internal/cart"
	"github.com/Johncsss/food-supplier-platform-sub001/internal/domain"
	"github.com/Johncsss/food-supplier-platform-sub001/pkg/errors"
)

// OrderCreator submits a finalized cart snapshot and returns an opaque
// order id
type OrderCreator interface {
	CreateOrder(ctx context.Context, payload domain.OrderPayload) (string, error)
}

// PointsDebiter removes points from a member's ledger balance
type PointsDebiter interface {
	Debit(ctx context.Context, memberID string, amount decimal.Decimal, description string) (decimal.Decimal, error)
}

// Service runs the checkout protocol against the order and points
// collaborators
type Service struct {
	orders OrderCreator
	points PointsDebiter
	logger *zap.Logger
}

// NewService creates a checkout service
func NewService(orders OrderCreator, points PointsDebiter, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		orders: orders,
		points: points,
		logger: logger,
	}
}

// Result reports a completed checkout. PointsDebited is false when the
// order was created but the ledger debit failed; the checkout still
// completes in that case and nothing reconciles the difference later.
type Result struct {
	OrderID       string
	TotalAmount   decimal.Decimal
	PointsDebited bool
	NewBalance    decimal.Decimal
	Stage         domain.CheckoutStage
}

// Checkout runs one checkout attempt:
//
//  1. Preconditions, each with its own error: non-empty cart,
//     authenticated member, loaded profile, sufficient balance (error
//     carries the exact shortfall), checkout password configured.
//  2. Verify the checkout password. Mismatch aborts with no state change.
//  3. Snapshot the cart; the cart is locked against mutation from here.
//  4. Submit the order. Failure aborts everything: cart kept, no debit.
//  5. Debit points by the snapshot total. Failure here is non-fatal: the
//     order already exists, so it is logged and the checkout proceeds.
//  6. Clear the cart and return the order id.
//
// The cart lock is released on every exit path.
func (s *Service) Checkout(ctx context.Context, c *cart.Cart, memberID string, member *domain.Member, credential string) (*Result, error) {
	stage := domain.StageIdle
	stage = advance(stage, domain.StageValidatingPreconditions)

	if c.State().IsEmpty() {
		return nil, &errors.ErrEmptyCart{}
	}
	if memberID == "" {
		return nil, &errors.ErrNotAuthenticated{}
	}
	if member == nil {
		return nil, &errors.ErrProfileNotLoaded{MemberID: memberID}
	}
	total := c.State().TotalAmount
	if member.PointsBalance.LessThan(total) {
		return nil, &errors.ErrInsufficientPoints{
			Balance:   member.PointsBalance,
			Required:  total,
			Shortfall: total.Sub(member.PointsBalance),
		}
	}
	if !member.HasCheckoutCredential() {
		return nil, &errors.ErrCredentialNotSet{}
	}

	stage = advance(stage, domain.StageAwaitingCredential)
	if !member.VerifyCheckoutCredential(credential) {
		return nil, &errors.ErrCredentialMismatch{}
	}

	snap, err := c.BeginCheckout()
	if err != nil {
		return nil, err
	}
	completed := false
	defer func() {
		// Release the cart lock on every non-completed exit, including
		// panic-driven teardown mid-checkout
		if !completed {
			c.FailCheckout()
		}
	}()

	stage = advance(stage, domain.StageSubmittingOrder)
	payload := domain.OrderPayload{
		ReferenceID: uuid.NewString(),
		Items:       snap.Items,
		TotalAmount: snap.TotalAmount,
		Buyer:       member.Buyer(),
		PlacedAt:    snap.CapturedAt,
	}
	orderID, err := s.orders.CreateOrder(ctx, payload)
	if err != nil {
		s.logger.Error("Order creation failed, aborting checkout",
			zap.Error(err),
			zap.String("member_id", member.ID),
		)
		return nil, &errors.ErrOrderCreation{Err: err}
	}

	stage = advance(stage, domain.StageDebitingPoints)
	newBalance, debitErr := s.points.Debit(ctx, member.ID, snap.TotalAmount, "Order "+orderID)
	pointsDebited := debitErr == nil
	if debitErr != nil {
		// The order exists; failing the whole checkout now would leave it
		// in limbo. Warn and continue.
		s.logger.Warn("Points debit failed after order creation, completing checkout anyway",
			zap.Error(debitErr),
			zap.String("member_id", member.ID),
			zap.String("order_id", orderID),
			zap.String("amount", snap.TotalAmount.String()),
		)
		newBalance = member.PointsBalance
	}

	stage = advance(stage, domain.StageCleared)
	c.CompleteCheckout(ctx)
	completed = true

	s.logger.Info("Checkout completed",
		zap.String("member_id", member.ID),
		zap.String("order_id", orderID),
		zap.String("total_amount", snap.TotalAmount.String()),
		zap.Bool("points_debited", pointsDebited),
	)

	return &Result{
		OrderID:       orderID,
		TotalAmount:   snap.TotalAmount,
		PointsDebited: pointsDebited,
		NewBalance:    newBalance,
		Stage:         stage,
	}, nil
}

// advance moves to the next checkout stage, panicking on transitions the
// stage machine forbids. All call sites are fixed, so a panic here is a
// programming error, not an input error.
func advance(from, to domain.CheckoutStage) domain.CheckoutStage {
	if !from.CanAdvanceTo(to) {
		panic("checkout: illegal stage transition " + string(from) + " -> " + string(to))
	}
	return to
}
