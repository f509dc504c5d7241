package cart

import (
	"context"
	"fmt"
	"testing"

	"github.com/Johncsss/food-supplier-platform-sub001/internal/cartstore"
	"github.com/Johncsss/food-supplier-platform-sub001/internal/domain"
	"github.com/Johncsss/food-supplier-platform-sub001/pkg/errors"
)

// failingStore refuses all writes so persistence tolerance can be observed
type failingStore struct{}

func (failingStore) Load(ctx context.Context, memberID string) ([]domain.LineItem, error) {
	return []domain.LineItem{}, nil
}

func (failingStore) Save(ctx context.Context, memberID string, items []domain.LineItem) error {
	return fmt.Errorf("store unavailable")
}

func (failingStore) Delete(ctx context.Context, memberID string) error {
	return fmt.Errorf("store unavailable")
}

func TestOpenHydratesFromStore(t *testing.T) {
	ctx := context.Background()
	store := cartstore.NewMemoryStore()

	c, err := Open(ctx, "m1", store, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Apply(ctx, Add{Product: product("A", "S1", "meat", "10"), Quantity: 2}); err != nil {
		t.Fatal(err)
	}

	// A fresh session for the same member sees the persisted cart, with
	// totals rederived from the stored items
	reopened, err := Open(ctx, "m1", store, nil)
	if err != nil {
		t.Fatal(err)
	}
	state := reopened.State()
	if len(state.Items) != 1 || state.Items[0].ProductID != "A" {
		t.Fatalf("hydrated state = %+v", state.Items)
	}
	if state.TotalItems != 2 {
		t.Errorf("hydrated TotalItems = %d, want 2", state.TotalItems)
	}
	checkTotals(t, state)
}

func TestApplyWritesThroughToStore(t *testing.T) {
	ctx := context.Background()
	store := cartstore.NewMemoryStore()

	c, err := Open(ctx, "m1", store, nil)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := c.Apply(ctx, Add{Product: product("A", "S1", "meat", "10"), Quantity: 2}); err != nil {
		t.Fatal(err)
	}
	items, _ := store.Load(ctx, "m1")
	if len(items) != 1 || items[0].Quantity != 2 {
		t.Fatalf("store not updated after add: %+v", items)
	}

	if _, err := c.Apply(ctx, SetQuantity{ProductID: "A", Quantity: 5}); err != nil {
		t.Fatal(err)
	}
	items, _ = store.Load(ctx, "m1")
	if items[0].Quantity != 5 {
		t.Fatalf("store not updated after quantity change: %+v", items)
	}

	if _, err := c.Apply(ctx, Clear{}); err != nil {
		t.Fatal(err)
	}
	items, _ = store.Load(ctx, "m1")
	if len(items) != 0 {
		t.Fatalf("store not emptied after clear: %+v", items)
	}
}

func TestRejectedActionDoesNotPersist(t *testing.T) {
	ctx := context.Background()
	store := cartstore.NewMemoryStore()

	c, _ := Open(ctx, "m1", store, nil)
	c.Apply(ctx, Add{Product: product("A", "S1", "meat", "10"), Quantity: 2})

	if _, err := c.Apply(ctx, Add{Product: product("B", "S2", "meat", "5"), Quantity: 1}); err == nil {
		t.Fatal("cross-supplier add was accepted")
	}

	items, _ := store.Load(ctx, "m1")
	if len(items) != 1 || items[0].ProductID != "A" {
		t.Errorf("rejected add reached the store: %+v", items)
	}
}

func TestPersistFailureDoesNotFailOperation(t *testing.T) {
	ctx := context.Background()
	c, err := Open(ctx, "m1", failingStore{}, nil)
	if err != nil {
		t.Fatal(err)
	}

	state, err := c.Apply(ctx, Add{Product: product("A", "S1", "meat", "10"), Quantity: 1})
	if err != nil {
		t.Fatalf("mutation failed because persistence failed: %v", err)
	}
	if state.TotalItems != 1 {
		t.Errorf("in-memory state not updated: %+v", state)
	}
}

func TestMutationsBlockedDuringCheckout(t *testing.T) {
	ctx := context.Background()
	c, _ := Open(ctx, "m1", cartstore.NewMemoryStore(), nil)
	c.Apply(ctx, Add{Product: product("A", "S1", "meat", "10"), Quantity: 2})

	snap, err := c.BeginCheckout()
	if err != nil {
		t.Fatal(err)
	}

	if _, err := c.Apply(ctx, Add{Product: product("A", "S1", "meat", "10"), Quantity: 1}); err == nil {
		t.Fatal("mutation accepted during in-flight checkout")
	} else if _, ok := err.(*errors.ErrCheckoutInProgress); !ok {
		t.Fatalf("expected ErrCheckoutInProgress, got %v", err)
	}

	// A second checkout cannot start while one is in flight
	if _, err := c.BeginCheckout(); err == nil {
		t.Fatal("second concurrent checkout accepted")
	}

	// The snapshot reflects the state at begin time
	if snap.TotalItems != 2 || len(snap.Items) != 1 {
		t.Errorf("snapshot = %+v", snap)
	}
}

func TestFailCheckoutUnlocksWithoutStateChange(t *testing.T) {
	ctx := context.Background()
	c, _ := Open(ctx, "m1", cartstore.NewMemoryStore(), nil)
	c.Apply(ctx, Add{Product: product("A", "S1", "meat", "10"), Quantity: 2})

	if _, err := c.BeginCheckout(); err != nil {
		t.Fatal(err)
	}
	c.FailCheckout()

	if c.CheckoutInFlight() {
		t.Error("cart still locked after FailCheckout")
	}
	if c.State().TotalItems != 2 {
		t.Errorf("state changed by failed checkout: %+v", c.State())
	}
	if _, err := c.Apply(ctx, SetQuantity{ProductID: "A", Quantity: 3}); err != nil {
		t.Errorf("mutation still blocked after FailCheckout: %v", err)
	}
}

func TestCompleteCheckoutClearsStateAndStore(t *testing.T) {
	ctx := context.Background()
	store := cartstore.NewMemoryStore()
	c, _ := Open(ctx, "m1", store, nil)
	c.Apply(ctx, Add{Product: product("A", "S1", "meat", "10"), Quantity: 2})

	snap, _ := c.BeginCheckout()
	c.CompleteCheckout(ctx)

	if !c.State().IsEmpty() || c.State().TotalItems != 0 {
		t.Errorf("cart not empty after completed checkout: %+v", c.State())
	}
	if c.CheckoutInFlight() {
		t.Error("cart still locked after completed checkout")
	}
	items, _ := store.Load(ctx, "m1")
	if len(items) != 0 {
		t.Errorf("persisted cart not cleared: %+v", items)
	}

	// The snapshot taken before clearing is unaffected
	if snap.TotalItems != 2 || len(snap.Items) != 1 {
		t.Errorf("snapshot mutated by clear: %+v", snap)
	}
}
