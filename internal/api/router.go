package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Johncsss/food-supplier-platform-sub001/internal/api/handlers"
	"github.com/Johncsss/food-supplier-platform-sub001/internal/api/middleware"
	"github.com/Johncsss/food-supplier-platform-sub001/internal/checkout"
	"github.com/Johncsss/food-supplier-platform-sub001/internal/config"
	"github.com/Johncsss/food-supplier-platform-sub001/internal/members"
)

// Deps are the collaborators the router hands to the handlers
type Deps struct {
	Sessions   *handlers.Sessions
	MemberRepo members.Repository
	Catalog    handlers.ProductGetter
	Points     handlers.BalanceGetter
	Checkout   *checkout.Service
}

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, deps Deps, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(customRecovery(logger))
	router.Use(loggingMiddleware(logger))

	// Root: friendly response so GET / returns 200 instead of 404
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "Supply Cart API",
			"endpoints": []string{
				"GET /health",
				"GET /metrics",
				"GET /v1/cart",
				"POST /v1/cart/items",
				"PATCH /v1/cart/items/:productID",
				"DELETE /v1/cart/items/:productID",
				"DELETE /v1/cart",
				"POST /v1/checkout",
				"GET /v1/catalog/products/:productID",
				"PUT /v1/members/me/checkout-credential",
			},
		})
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/v1")
	{
		// Member routes (require member identity)
		memberRoutes := v1.Group("")
		memberRoutes.Use(middleware.MemberSession())
		{
			memberRoutes.GET("/cart", handlers.HandleGetCart(deps.Sessions, logger))
			memberRoutes.POST("/cart/items", handlers.HandleAddItem(deps.Sessions, deps.Catalog, logger))
			memberRoutes.PATCH("/cart/items/:productID", handlers.HandleUpdateItem(deps.Sessions, deps.Catalog, logger))
			memberRoutes.DELETE("/cart/items/:productID", handlers.HandleRemoveItem(deps.Sessions, logger))
			memberRoutes.DELETE("/cart", handlers.HandleClearCart(deps.Sessions, logger))

			memberRoutes.POST("/checkout", handlers.HandleCheckout(deps.Sessions, deps.MemberRepo, deps.Points, deps.Checkout, logger))

			memberRoutes.GET("/catalog/products/:productID", handlers.HandleGetProduct(deps.Sessions, deps.Catalog, logger))
			memberRoutes.PUT("/members/me/checkout-credential", handlers.HandleSetCheckoutCredential(deps.MemberRepo, logger))
		}

		// Admin surface: member registration
		adminRoutes := v1.Group("/admin")
		{
			adminRoutes.POST("/members", handlers.HandleCreateMember(deps.MemberRepo, logger))
		}
	}

	return router
}

// customRecovery is a custom recovery middleware that logs panics
func customRecovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Panic recovered",
			zap.Any("error", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal server error",
			"details": fmt.Sprintf("%v", recovered),
		})
	})
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
