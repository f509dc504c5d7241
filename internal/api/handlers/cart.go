package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Johncsss/food-supplier-platform-sub001/internal/api/middleware"
	"github.com/Johncsss/food-supplier-platform-sub001/internal/cart"
	"github.com/Johncsss/food-supplier-platform-sub001/internal/domain"
)

// ProductGetter is the slice of the catalog client the cart handlers need
type ProductGetter interface {
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
}

// AddItemRequest adds a product to the cart. Quantity 0 means "the
// product's minimum order quantity".
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"min=0"`
}

// UpdateItemRequest replaces a line item's quantity. 0 removes the item.
type UpdateItemRequest struct {
	Quantity int `json:"quantity" binding:"min=0"`
}

// HandleGetCart returns the member's current cart state
func HandleGetCart(sessions *Sessions, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		memberID, ok := middleware.GetMemberID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		session, err := sessions.Cart(c.Request.Context(), memberID)
		if err != nil {
			logger.Error("Failed to open cart session", zap.Error(err), zap.String("member_id", memberID))
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, session.State())
	}
}

// HandleAddItem looks the product up in the catalog and adds it to the
// cart. The minimum-order-quantity floor is applied here, not in the
// engine: the engine only enforces the supplier/category invariant and
// positive quantities.
func HandleAddItem(sessions *Sessions, catalog ProductGetter, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		memberID, ok := middleware.GetMemberID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		var req AddItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		product, err := catalog.GetProduct(c.Request.Context(), req.ProductID)
		if err != nil {
			logger.Warn("Product lookup failed", zap.Error(err), zap.String("product_id", req.ProductID))
			respondError(c, logger, err)
			return
		}

		quantity := req.Quantity
		if quantity < product.MinOrderQuantity {
			quantity = product.MinOrderQuantity
		}
		if quantity < 1 {
			quantity = 1
		}

		session, err := sessions.Cart(c.Request.Context(), memberID)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		state, err := session.Apply(c.Request.Context(), cart.Add{Product: *product, Quantity: quantity})
		if err != nil {
			respondError(c, logger, err)
			return
		}

		logger.Info("Item added to cart",
			zap.String("member_id", memberID),
			zap.String("product_id", product.ID),
			zap.Int("quantity", quantity),
		)
		c.JSON(http.StatusOK, state)
	}
}

// HandleUpdateItem replaces a line item's quantity. Quantity 0 removes
// the item; a positive quantity below the product's minimum order
// quantity is floored to it (caller-side policy, same as HandleAddItem).
func HandleUpdateItem(sessions *Sessions, catalog ProductGetter, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		memberID, ok := middleware.GetMemberID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		productID := c.Param("productID")

		var req UpdateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		quantity := req.Quantity
		if quantity > 0 {
			product, err := catalog.GetProduct(c.Request.Context(), productID)
			if err != nil {
				// The item is already in the cart with frozen price and
				// metadata; a catalog miss only costs us the MOQ floor
				logger.Warn("Product lookup for MOQ floor failed, using requested quantity",
					zap.Error(err),
					zap.String("product_id", productID),
				)
			} else if quantity < product.MinOrderQuantity {
				quantity = product.MinOrderQuantity
			}
		}

		session, err := sessions.Cart(c.Request.Context(), memberID)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		state, err := session.Apply(c.Request.Context(), cart.SetQuantity{ProductID: productID, Quantity: quantity})
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, state)
	}
}

// HandleRemoveItem deletes a line item from the cart. Removing an absent
// item succeeds.
func HandleRemoveItem(sessions *Sessions, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		memberID, ok := middleware.GetMemberID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		productID := c.Param("productID")

		session, err := sessions.Cart(c.Request.Context(), memberID)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		state, err := session.Apply(c.Request.Context(), cart.Remove{ProductID: productID})
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, state)
	}
}

// HandleClearCart empties the member's cart
func HandleClearCart(sessions *Sessions, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		memberID, ok := middleware.GetMemberID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		session, err := sessions.Cart(c.Request.Context(), memberID)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		state, err := session.Apply(c.Request.Context(), cart.Clear{})
		if err != nil {
			respondError(c, logger, err)
			return
		}

		logger.Info("Cart cleared", zap.String("member_id", memberID))
		c.JSON(http.StatusOK, state)
	}
}
