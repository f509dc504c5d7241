package cart

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Johncsss/food-supplier-platform-sub001/internal/domain"
	"github.com/Johncsss/food-supplier-platform-sub001/pkg/errors"
)

func product(id, supplier, category string, price string) domain.Product {
	return domain.Product{
		ID:               id,
		Name:             "Product " + id,
		Category:         category,
		Supplier:         supplier,
		Price:            decimal.RequireFromString(price),
		Unit:             "kg",
		MinOrderQuantity: 1,
		ImageURL:         "https://img.example/" + id + ".jpg",
	}
}

// checkTotals verifies the derived totals against the item set. The
// invariant must hold after every operation, not just eventually.
func checkTotals(t *testing.T, s State) {
	t.Helper()
	items := 0
	amount := decimal.Zero
	for _, item := range s.Items {
		items += item.Quantity
		want := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		if !item.TotalPrice.Equal(want) {
			t.Errorf("line %s: total price %s, want %s", item.ProductID, item.TotalPrice, want)
		}
		amount = amount.Add(item.TotalPrice)
	}
	if s.TotalItems != items {
		t.Errorf("TotalItems = %d, want %d", s.TotalItems, items)
	}
	if !s.TotalAmount.Equal(amount) {
		t.Errorf("TotalAmount = %s, want %s", s.TotalAmount, amount)
	}
}

func mustReduce(t *testing.T, s State, a Action) State {
	t.Helper()
	next, err := Reduce(s, a)
	if err != nil {
		t.Fatalf("Reduce(%T) failed: %v", a, err)
	}
	checkTotals(t, next)
	return next
}

func TestAddToEmptyCart(t *testing.T) {
	s := NewState()
	s = mustReduce(t, s, Add{Product: product("A", "S1", "meat", "10"), Quantity: 2})

	if len(s.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(s.Items))
	}
	item := s.Items[0]
	if item.ProductID != "A" || item.Quantity != 2 {
		t.Errorf("unexpected item %+v", item)
	}
	if !item.TotalPrice.Equal(decimal.RequireFromString("20")) {
		t.Errorf("line total = %s, want 20", item.TotalPrice)
	}
	if !s.TotalAmount.Equal(decimal.RequireFromString("20")) {
		t.Errorf("TotalAmount = %s, want 20", s.TotalAmount)
	}
	if s.TotalItems != 2 {
		t.Errorf("TotalItems = %d, want 2", s.TotalItems)
	}
}

func TestAddAggregatesSameProduct(t *testing.T) {
	s := NewState()
	p := product("A", "S1", "meat", "10")
	s = mustReduce(t, s, Add{Product: p, Quantity: 2})
	s = mustReduce(t, s, Add{Product: p, Quantity: 3})

	if len(s.Items) != 1 {
		t.Fatalf("expected one line item after aggregating add, got %d", len(s.Items))
	}
	if s.Items[0].Quantity != 5 {
		t.Errorf("quantity = %d, want 5", s.Items[0].Quantity)
	}
	if !s.TotalAmount.Equal(decimal.RequireFromString("50")) {
		t.Errorf("TotalAmount = %s, want 50", s.TotalAmount)
	}
}

func TestAddRejectsSupplierMismatch(t *testing.T) {
	s := NewState()
	s = mustReduce(t, s, Add{Product: product("A", "S1", "meat", "10"), Quantity: 2})

	before := s
	next, err := Reduce(s, Add{Product: product("B", "S2", "meat", "5"), Quantity: 1})

	mismatch, ok := err.(*errors.ErrSupplierMismatch)
	if !ok {
		t.Fatalf("expected ErrSupplierMismatch, got %v", err)
	}
	if mismatch.CartSupplier != "S1" || mismatch.ProductSupplier != "S2" {
		t.Errorf("mismatch names suppliers %q/%q, want S1/S2", mismatch.CartSupplier, mismatch.ProductSupplier)
	}

	// Rejection leaves state untouched
	if len(next.Items) != 1 || next.Items[0].ProductID != "A" {
		t.Errorf("items changed after rejected add: %+v", next.Items)
	}
	if next.TotalItems != before.TotalItems || !next.TotalAmount.Equal(before.TotalAmount) {
		t.Errorf("totals changed after rejected add")
	}
}

func TestAddRejectsCategoryMismatch(t *testing.T) {
	s := NewState()
	s = mustReduce(t, s, Add{Product: product("A", "S1", "meat", "10"), Quantity: 1})

	_, err := Reduce(s, Add{Product: product("B", "S1", "produce", "5"), Quantity: 1})

	mismatch, ok := err.(*errors.ErrCategoryMismatch)
	if !ok {
		t.Fatalf("expected ErrCategoryMismatch, got %v", err)
	}
	if mismatch.CartCategory != "meat" || mismatch.ProductCategory != "produce" {
		t.Errorf("mismatch names categories %q/%q, want meat/produce", mismatch.CartCategory, mismatch.ProductCategory)
	}
}

func TestAddRejectsNonPositiveQuantity(t *testing.T) {
	s := NewState()
	for _, qty := range []int{0, -1} {
		_, err := Reduce(s, Add{Product: product("A", "S1", "meat", "10"), Quantity: qty})
		if _, ok := err.(*errors.ErrInvalidQuantity); !ok {
			t.Errorf("Add with quantity %d: expected ErrInvalidQuantity, got %v", qty, err)
		}
	}
}

func TestSetQuantity(t *testing.T) {
	s := NewState()
	s = mustReduce(t, s, Add{Product: product("A", "S1", "meat", "10"), Quantity: 2})
	s = mustReduce(t, s, SetQuantity{ProductID: "A", Quantity: 5})

	if s.Items[0].Quantity != 5 {
		t.Errorf("quantity = %d, want 5", s.Items[0].Quantity)
	}
	if !s.Items[0].TotalPrice.Equal(decimal.RequireFromString("50")) {
		t.Errorf("line total = %s, want 50", s.Items[0].TotalPrice)
	}
	if !s.TotalAmount.Equal(decimal.RequireFromString("50")) {
		t.Errorf("TotalAmount = %s, want 50", s.TotalAmount)
	}
}

func TestSetQuantityZeroEqualsRemove(t *testing.T) {
	s := NewState()
	s = mustReduce(t, s, Add{Product: product("A", "S1", "meat", "10"), Quantity: 2})
	s = mustReduce(t, s, Add{Product: product("B", "S1", "meat", "4"), Quantity: 1})

	viaZero := mustReduce(t, s, SetQuantity{ProductID: "A", Quantity: 0})
	viaRemove := mustReduce(t, s, Remove{ProductID: "A"})

	if len(viaZero.Items) != 1 || viaZero.Items[0].ProductID != "B" {
		t.Fatalf("expected only B after zero-quantity update, got %+v", viaZero.Items)
	}
	if len(viaRemove.Items) != len(viaZero.Items) ||
		viaRemove.TotalItems != viaZero.TotalItems ||
		!viaRemove.TotalAmount.Equal(viaZero.TotalAmount) {
		t.Errorf("SetQuantity(0) and Remove diverge: %+v vs %+v", viaZero, viaRemove)
	}

	// Negative quantity behaves the same as zero
	viaNegative := mustReduce(t, s, SetQuantity{ProductID: "A", Quantity: -3})
	if len(viaNegative.Items) != 1 || viaNegative.Items[0].ProductID != "B" {
		t.Errorf("expected only B after negative-quantity update, got %+v", viaNegative.Items)
	}
}

func TestRemoveAbsentIsNoError(t *testing.T) {
	s := NewState()
	s = mustReduce(t, s, Add{Product: product("A", "S1", "meat", "10"), Quantity: 2})

	next, err := Reduce(s, Remove{ProductID: "nope"})
	if err != nil {
		t.Fatalf("removing absent product errored: %v", err)
	}
	if len(next.Items) != 1 || next.TotalItems != 2 {
		t.Errorf("state changed by removing absent product: %+v", next)
	}
}

func TestClearIsTotal(t *testing.T) {
	s := NewState()
	s = mustReduce(t, s, Add{Product: product("A", "S1", "meat", "10"), Quantity: 2})
	s = mustReduce(t, s, Add{Product: product("B", "S1", "meat", "4"), Quantity: 7})

	s = mustReduce(t, s, Clear{})

	if len(s.Items) != 0 {
		t.Errorf("items not empty after clear: %+v", s.Items)
	}
	if s.TotalItems != 0 {
		t.Errorf("TotalItems = %d after clear", s.TotalItems)
	}
	if !s.TotalAmount.Equal(decimal.Zero) {
		t.Errorf("TotalAmount = %s after clear", s.TotalAmount)
	}
}

func TestHomogeneityAcrossAddSequences(t *testing.T) {
	// Any sequence of adds must leave every item with one supplier and
	// one category; rejected adds change nothing.
	adds := []Add{
		{Product: product("A", "S1", "meat", "10"), Quantity: 2},
		{Product: product("B", "S2", "meat", "5"), Quantity: 1},
		{Product: product("C", "S1", "produce", "3"), Quantity: 4},
		{Product: product("D", "S1", "meat", "7"), Quantity: 1},
		{Product: product("A", "S1", "meat", "10"), Quantity: 1},
	}

	s := NewState()
	for _, a := range adds {
		next, err := Reduce(s, a)
		if err != nil {
			continue
		}
		s = next
		checkTotals(t, s)
	}

	seen := map[string]bool{}
	for _, item := range s.Items {
		if item.Supplier != "S1" || item.Category != "meat" {
			t.Errorf("heterogeneous item survived: %+v", item)
		}
		if seen[item.ProductID] {
			t.Errorf("duplicate product id %s", item.ProductID)
		}
		seen[item.ProductID] = true
	}
	if len(s.Items) != 2 { // A and D
		t.Errorf("expected items A and D, got %+v", s.Items)
	}
}

func TestInsertionOrderPreserved(t *testing.T) {
	s := NewState()
	for _, id := range []string{"C", "A", "B"} {
		s = mustReduce(t, s, Add{Product: product(id, "S1", "meat", "1"), Quantity: 1})
	}
	// Aggregating add must not reorder
	s = mustReduce(t, s, Add{Product: product("A", "S1", "meat", "1"), Quantity: 1})

	want := []string{"C", "A", "B"}
	for i, id := range want {
		if s.Items[i].ProductID != id {
			t.Fatalf("item order %v, want %v", s.Items, want)
		}
	}
}

func TestQuantityAccessor(t *testing.T) {
	s := NewState()
	s = mustReduce(t, s, Add{Product: product("A", "S1", "meat", "10"), Quantity: 3})

	if got := s.Quantity("A"); got != 3 {
		t.Errorf("Quantity(A) = %d, want 3", got)
	}
	if got := s.Quantity("missing"); got != 0 {
		t.Errorf("Quantity(missing) = %d, want 0", got)
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	s := NewState()
	s = mustReduce(t, s, Add{Product: product("A", "S1", "meat", "10"), Quantity: 2})

	_ = mustReduce(t, s, SetQuantity{ProductID: "A", Quantity: 9})
	_ = mustReduce(t, s, Add{Product: product("A", "S1", "meat", "10"), Quantity: 5})

	if s.Items[0].Quantity != 2 {
		t.Errorf("input state mutated: quantity = %d, want 2", s.Items[0].Quantity)
	}
	if s.TotalItems != 2 {
		t.Errorf("input state mutated: TotalItems = %d, want 2", s.TotalItems)
	}
}

func TestLineItemMetadataFrozenAtInsertion(t *testing.T) {
	s := NewState()
	p := product("A", "S1", "meat", "10")
	s = mustReduce(t, s, Add{Product: p, Quantity: 1})

	// A later add of the "same" product with a changed catalog price must
	// not reprice the existing line: the cart never re-fetches
	p.Price = decimal.RequireFromString("99")
	s = mustReduce(t, s, Add{Product: p, Quantity: 1})

	if !s.Items[0].UnitPrice.Equal(decimal.RequireFromString("10")) {
		t.Errorf("unit price repriced to %s, want frozen 10", s.Items[0].UnitPrice)
	}
	if !s.TotalAmount.Equal(decimal.RequireFromString("20")) {
		t.Errorf("TotalAmount = %s, want 20", s.TotalAmount)
	}
}
