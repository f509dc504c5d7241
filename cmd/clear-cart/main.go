package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Johncsss/food-supplier-platform-sub001/internal/cartstore"
	"github.com/Johncsss/food-supplier-platform-sub001/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: clear-cart <member-id>")
		os.Exit(1)
	}
	memberID := os.Args[1]

	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	store, err := cartstore.FromConfig(context.Background(), cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize cart store: %v\n", err)
		os.Exit(1)
	}

	if err := store.Delete(context.Background(), memberID); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to clear cart: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Cleared persisted cart for member %s (%s backend)\n", memberID, cfg.CartStore)
}
