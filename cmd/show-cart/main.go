package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Johncsss/food-supplier-platform-sub001/internal/cart"
	"github.com/Johncsss/food-supplier-platform-sub001/internal/cartstore"
	"github.com/Johncsss/food-supplier-platform-sub001/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: show-cart <member-id>")
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

	session, err := cart.Open(context.Background(), memberID, store, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load cart: %v\n", err)
		os.Exit(1)
	}

	state := session.State()
	fmt.Printf("Cart for member %s (%s backend):\n", memberID, cfg.CartStore)
	if state.IsEmpty() {
		fmt.Println("  (empty)")
		return
	}
	for _, item := range state.Items {
		fmt.Printf("  %-20s %-24s qty=%-4d unit=%-8s %s x %d = %s\n",
			item.ProductID, item.ProductName, item.Quantity, item.Unit,
			item.UnitPrice, item.Quantity, item.TotalPrice)
	}
	fmt.Printf("Supplier: %s  Category: %s\n", state.Items[0].Supplier, state.Items[0].Category)
	fmt.Printf("Total items: %d  Total amount: %s\n", state.TotalItems, state.TotalAmount)
}
