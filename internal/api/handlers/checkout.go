package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Johncsss/food-supplier-platform-sub001/internal/api/middleware"
	"github.com/Johncsss/food-supplier-platform-sub001/internal/checkout"
	"github.com/Johncsss/food-supplier-platform-sub001/internal/domain"
	"github.com/Johncsss/food-supplier-platform-sub001/internal/members"
	"github.com/Johncsss/food-supplier-platform-sub001/pkg/errors"
)

// BalanceGetter is the slice of the points client used to refresh a
// member's balance before checkout
type BalanceGetter interface {
	GetBalance(ctx context.Context, memberID string) (decimal.Decimal, error)
}

// CheckoutRequest authorizes an order with the member's checkout password
type CheckoutRequest struct {
	CheckoutPassword string `json:"checkout_password"`
}

// CheckoutResponse reports a completed checkout
type CheckoutResponse struct {
	OrderID       string          `json:"order_id"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PointsDebited bool            `json:"points_debited"`
	NewBalance    decimal.Decimal `json:"new_balance"`
}

// HandleCheckout runs the checkout protocol for the member's cart
func HandleCheckout(
	sessions *Sessions,
	memberRepo members.Repository,
	points BalanceGetter,
	svc *checkout.Service,
	logger *zap.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		memberID, ok := middleware.GetMemberID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		session, err := sessions.Cart(c.Request.Context(), memberID)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		// Profile lookup failure is a distinct checkout precondition, so a
		// missing member is passed through as a nil profile
		var member *domain.Member
		if m, err := memberRepo.GetByID(c.Request.Context(), memberID); err == nil {
			member = m
		} else if _, isNotFound := err.(*errors.ErrNotFound); !isNotFound {
			logger.Error("Failed to load member profile", zap.Error(err), zap.String("member_id", memberID))
			respondError(c, logger, err)
			return
		}

		// Refresh the balance from the ledger when it is reachable; the
		// stored balance is the fallback
		if member != nil && points != nil {
			if balance, err := points.GetBalance(c.Request.Context(), memberID); err == nil {
				member.PointsBalance = balance
			} else {
				logger.Warn("Points balance refresh failed, using stored balance",
					zap.Error(err),
					zap.String("member_id", memberID),
				)
			}
		}

		result, err := svc.Checkout(c.Request.Context(), session, memberID, member, req.CheckoutPassword)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, CheckoutResponse{
			OrderID:       result.OrderID,
			TotalAmount:   result.TotalAmount,
			PointsDebited: result.PointsDebited,
			NewBalance:    result.NewBalance,
		})
	}
}
