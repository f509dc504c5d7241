package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Johncsss/food-supplier-platform-sub001/pkg/errors"
)

// respondError maps typed domain errors to HTTP responses. Every body
// carries a machine-readable code alongside the human-readable message so
// clients can branch without string matching.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	switch e := err.(type) {
	case *errors.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{
			"code":  "not_found",
			"error": e.Error(),
		})
	case *errors.ErrInvalidQuantity:
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"code":  "invalid_quantity",
			"error": e.Error(),
		})
	case *errors.ErrSupplierMismatch:
		c.JSON(http.StatusConflict, gin.H{
			"code":             "supplier_mismatch",
			"error":            e.Error(),
			"cart_supplier":    e.CartSupplier,
			"product_supplier": e.ProductSupplier,
		})
	case *errors.ErrCategoryMismatch:
		c.JSON(http.StatusConflict, gin.H{
			"code":             "category_mismatch",
			"error":            e.Error(),
			"cart_category":    e.CartCategory,
			"product_category": e.ProductCategory,
		})
	case *errors.ErrCheckoutInProgress:
		c.JSON(http.StatusConflict, gin.H{
			"code":  "checkout_in_progress",
			"error": e.Error(),
		})
	case *errors.ErrEmptyCart:
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"code":  "empty_cart",
			"error": e.Error(),
		})
	case *errors.ErrNotAuthenticated:
		c.JSON(http.StatusUnauthorized, gin.H{
			"code":  "not_authenticated",
			"error": e.Error(),
		})
	case *errors.ErrProfileNotLoaded:
		c.JSON(http.StatusNotFound, gin.H{
			"code":  "profile_not_loaded",
			"error": e.Error(),
		})
	case *errors.ErrInsufficientPoints:
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"code":      "insufficient_points",
			"error":     e.Error(),
			"balance":   e.Balance,
			"required":  e.Required,
			"shortfall": e.Shortfall,
		})
	case *errors.ErrCredentialNotSet:
		c.JSON(http.StatusConflict, gin.H{
			"code":      "checkout_password_not_set",
			"error":     e.Error(),
			"setup_url": "/v1/members/me/checkout-credential",
		})
	case *errors.ErrCredentialMismatch:
		c.JSON(http.StatusUnauthorized, gin.H{
			"code":  "checkout_password_incorrect",
			"error": e.Error(),
		})
	case *errors.ErrOrderCreation:
		c.JSON(http.StatusBadGateway, gin.H{
			"code":  "order_creation_failed",
			"error": e.Error(),
		})
	default:
		logger.Error("Unhandled error", zap.Error(err), zap.String("path", c.Request.URL.Path))
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":  "internal_error",
			"error": "internal error",
		})
	}
}
