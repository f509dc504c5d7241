package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Johncsss/food-supplier-platform-sub001/internal/api/middleware"
	"github.com/Johncsss/food-supplier-platform-sub001/internal/domain"
	"github.com/Johncsss/food-supplier-platform-sub001/internal/members"
)

// CreateMemberRequest registers a member profile
type CreateMemberRequest struct {
	ID             string          `json:"id" binding:"required"`
	Email          string          `json:"email"`
	RestaurantName string          `json:"restaurant_name"`
	PointsBalance  decimal.Decimal `json:"points_balance"`
}

// SetCredentialRequest configures the member's checkout password
type SetCredentialRequest struct {
	CheckoutPassword string `json:"checkout_password" binding:"required,min=4"`
}

// HandleCreateMember registers a member profile (admin surface)
func HandleCreateMember(repo members.Repository, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateMemberRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		member := &domain.Member{
			ID:             req.ID,
			Email:          req.Email,
			RestaurantName: req.RestaurantName,
			PointsBalance:  req.PointsBalance,
		}
		if err := repo.Save(c.Request.Context(), member); err != nil {
			logger.Error("Failed to save member", zap.Error(err), zap.String("member_id", req.ID))
			respondError(c, logger, err)
			return
		}

		logger.Info("Member created", zap.String("member_id", member.ID))
		c.JSON(http.StatusCreated, member)
	}
}

// HandleSetCheckoutCredential stores the member's checkout password. The
// checkout protocol directs members here when no password is configured.
func HandleSetCheckoutCredential(repo members.Repository, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		memberID, ok := middleware.GetMemberID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req SetCredentialRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		member, err := repo.GetByID(c.Request.Context(), memberID)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		if err := member.SetCheckoutCredential(req.CheckoutPassword); err != nil {
			logger.Error("Failed to hash checkout password", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		if err := repo.Save(c.Request.Context(), member); err != nil {
			respondError(c, logger, err)
			return
		}

		logger.Info("Checkout password configured", zap.String("member_id", memberID))
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
