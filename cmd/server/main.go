package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Johncsss/food-supplier-platform-sub001/internal/api"
	"github.com/Johncsss/food-supplier-platform-sub001/internal/api/handlers"
	"github.com/Johncsss/food-supplier-platform-sub001/internal/cartstore"
	"github.com/Johncsss/food-supplier-platform-sub001/internal/catalog"
	"github.com/Johncsss/food-supplier-platform-sub001/internal/checkout"
	"github.com/Johncsss/food-supplier-platform-sub001/internal/config"
	"github.com/Johncsss/food-supplier-platform-sub001/internal/members"
	"github.com/Johncsss/food-supplier-platform-sub001/internal/orders"
	"github.com/Johncsss/food-supplier-platform-sub001/internal/points"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, _ = zap.NewProduction()
	} else {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	logger.Info("Starting supply cart server",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
		zap.String("cart_store", cfg.CartStore),
	)

	// Initialize cart persistence
	store, err := cartstore.FromConfig(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize cart store", zap.Error(err))
	}

	// Collaborator clients
	catalogClient := catalog.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.ServiceKey, logger)
	ordersClient := orders.NewClient(cfg.Orders.BaseURL, cfg.Orders.ServiceKey, logger)
	pointsClient := points.NewClient(cfg.Points.BaseURL, cfg.Points.ServiceKey, logger)

	// Services
	memberRepo := members.NewMemoryRepository()
	checkoutSvc := checkout.NewService(ordersClient, pointsClient, logger)
	sessions := handlers.NewSessions(store, logger)

	// Initialize router
	router := api.NewRouter(cfg, api.Deps{
		Sessions:   sessions,
		MemberRepo: memberRepo,
		Catalog:    catalogClient,
		Points:     pointsClient,
		Checkout:   checkoutSvc,
	}, logger)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	logger.Info("Server started successfully", zap.String("address", srv.Addr))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
