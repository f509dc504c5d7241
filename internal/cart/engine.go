package cart

import (
	"github.com/shopspring/decimal"

	"github.com/Johncsss/food-supplier-platform-sub001/internal/domain"
	"github.com/Johncsss/food-supplier-platform-sub001/pkg/errors"
)

// State is the full cart state. Items preserve insertion order and are
// unique by product id. TotalItems and TotalAmount are derived from Items
// and recomputed from scratch after every mutation so they cannot drift.
type State struct {
	Items       []domain.LineItem `json:"items"`
	TotalItems  int               `json:"total_items"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
}

// NewState returns the empty cart state
func NewState() State {
	return State{
		Items:       []domain.LineItem{},
		TotalItems:  0,
		TotalAmount: decimal.Zero,
	}
}

// Quantity returns the quantity of the given product in the cart, or 0 if
// absent. Listing views use this to decide between an "add" control and a
// quantity stepper.
func (s State) Quantity(productID string) int {
	for _, item := range s.Items {
		if item.ProductID == productID {
			return item.Quantity
		}
	}
	return 0
}

// IsEmpty reports whether the cart has no line items
func (s State) IsEmpty() bool {
	return len(s.Items) == 0
}

// Reduce applies an action to a cart state and returns the new state. It
// is a pure function: the input state is never mutated, and on error it is
// returned unchanged so callers can keep using it.
func Reduce(s State, action Action) (State, error) {
	switch a := action.(type) {
	case Add:
		return reduceAdd(s, a)
	case Remove:
		return reduceRemove(s, a.ProductID)
	case SetQuantity:
		if a.Quantity <= 0 {
			return reduceRemove(s, a.ProductID)
		}
		return reduceSetQuantity(s, a.ProductID, a.Quantity)
	case Clear:
		return NewState(), nil
	default:
		return s, nil
	}
}

func reduceAdd(s State, a Add) (State, error) {
	if a.Quantity < 1 {
		return s, &errors.ErrInvalidQuantity{Quantity: a.Quantity}
	}

	// One cart = one supplier and one category. Both halves of the
	// invariant are checked against the first item, each with its own
	// error so callers can name the conflict.
	if len(s.Items) > 0 {
		if s.Items[0].Supplier != a.Product.Supplier {
			return s, &errors.ErrSupplierMismatch{
				CartSupplier:    s.Items[0].Supplier,
				ProductSupplier: a.Product.Supplier,
			}
		}
		if s.Items[0].Category != a.Product.Category {
			return s, &errors.ErrCategoryMismatch{
				CartCategory:    s.Items[0].Category,
				ProductCategory: a.Product.Category,
			}
		}
	}

	items := copyItems(s.Items)
	found := false
	for i := range items {
		if items[i].ProductID == a.Product.ID {
			items[i].Quantity += a.Quantity
			found = true
			break
		}
	}
	if !found {
		items = append(items, domain.LineItem{
			ProductID:   a.Product.ID,
			ProductName: a.Product.Name,
			ImageURL:    a.Product.ImageURL,
			Unit:        a.Product.Unit,
			Category:    a.Product.Category,
			Supplier:    a.Product.Supplier,
			Quantity:    a.Quantity,
			UnitPrice:   a.Product.Price,
		})
	}

	return recompute(items), nil
}

func reduceRemove(s State, productID string) (State, error) {
	items := make([]domain.LineItem, 0, len(s.Items))
	for _, item := range s.Items {
		if item.ProductID != productID {
			items = append(items, item)
		}
	}
	return recompute(items), nil
}

func reduceSetQuantity(s State, productID string, quantity int) (State, error) {
	items := copyItems(s.Items)
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = quantity
			break
		}
	}
	return recompute(items), nil
}

// recompute derives line totals and cart totals from the full item set.
// Totals are never adjusted incrementally.
func recompute(items []domain.LineItem) State {
	totalItems := 0
	totalAmount := decimal.Zero
	for i := range items {
		items[i].TotalPrice = items[i].UnitPrice.Mul(decimal.NewFromInt(int64(items[i].Quantity)))
		totalItems += items[i].Quantity
		totalAmount = totalAmount.Add(items[i].TotalPrice)
	}
	return State{
		Items:       items,
		TotalItems:  totalItems,
		TotalAmount: totalAmount,
	}
}

func copyItems(items []domain.LineItem) []domain.LineItem {
	out := make([]domain.LineItem, len(items))
	copy(out, items)
	return out
}
