package cartstore

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Johncsss/food-supplier-platform-sub001/internal/domain"
)

func lineItem(id string, qty int) domain.LineItem {
	price := decimal.NewFromInt(10)
	return domain.LineItem{
		ProductID:   id,
		ProductName: "Product " + id,
		Category:    "meat",
		Supplier:    "S1",
		Quantity:    qty,
		UnitPrice:   price,
		TotalPrice:  price.Mul(decimal.NewFromInt(int64(qty))),
	}
}

func TestMemoryStoreLoadAbsent(t *testing.T) {
	store := NewMemoryStore()

	items, err := store.Load(context.Background(), "nobody")
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty slice for absent member, got %+v", items)
	}
}

func TestMemoryStoreSaveLoadDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if err := store.Save(ctx, "m1", []domain.LineItem{lineItem("A", 2), lineItem("B", 1)}); err != nil {
		t.Fatal(err)
	}

	items, err := store.Load(ctx, "m1")
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 || items[0].ProductID != "A" || items[1].ProductID != "B" {
		t.Fatalf("loaded %+v", items)
	}

	// Save replaces, never merges
	if err := store.Save(ctx, "m1", []domain.LineItem{lineItem("C", 5)}); err != nil {
		t.Fatal(err)
	}
	items, _ = store.Load(ctx, "m1")
	if len(items) != 1 || items[0].ProductID != "C" {
		t.Fatalf("save did not replace: %+v", items)
	}

	if err := store.Delete(ctx, "m1"); err != nil {
		t.Fatal(err)
	}
	items, _ = store.Load(ctx, "m1")
	if len(items) != 0 {
		t.Errorf("cart survived delete: %+v", items)
	}
}

func TestMemoryStoreIsolatesCallers(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	saved := []domain.LineItem{lineItem("A", 2)}
	store.Save(ctx, "m1", saved)

	// Mutating the slice we saved must not reach the store
	saved[0].Quantity = 99
	items, _ := store.Load(ctx, "m1")
	if items[0].Quantity != 2 {
		t.Errorf("store aliased the saved slice: %+v", items)
	}

	// Mutating a loaded slice must not reach the store either
	items[0].Quantity = 77
	again, _ := store.Load(ctx, "m1")
	if again[0].Quantity != 2 {
		t.Errorf("store aliased the loaded slice: %+v", again)
	}
}
