package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Johncsss/food-supplier-platform-sub001/internal/api/middleware"
)

// productView is a catalog product plus how many units the member already
// has in the cart. Listing views use in_cart_quantity to choose between an
// "add" control and a quantity stepper.
type productView struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Category         string `json:"category"`
	Supplier         string `json:"supplier"`
	Price            string `json:"price"`
	Unit             string `json:"unit"`
	MinOrderQuantity int    `json:"min_order_quantity"`
	ImageURL         string `json:"image_url"`
	InCartQuantity   int    `json:"in_cart_quantity"`
}

// HandleGetProduct proxies a catalog product lookup and annotates it with
// the member's in-cart quantity
func HandleGetProduct(sessions *Sessions, catalog ProductGetter, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		memberID, ok := middleware.GetMemberID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		productID := c.Param("productID")

		product, err := catalog.GetProduct(c.Request.Context(), productID)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		session, err := sessions.Cart(c.Request.Context(), memberID)
		if err != nil {
			respondError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, productView{
			ID:               product.ID,
			Name:             product.Name,
			Category:         product.Category,
			Supplier:         product.Supplier,
			Price:            product.Price.String(),
			Unit:             product.Unit,
			MinOrderQuantity: product.MinOrderQuantity,
			ImageURL:         product.ImageURL,
			InCartQuantity:   session.Quantity(product.ID),
		})
	}
}
