package cart

import "github.com/Johncsss/food-supplier-platform-sub001/internal/domain"

// Action is a cart state transition request. The concrete types form a
// closed set dispatched by Reduce.
type Action interface {
	isAction()
}

// Add puts Quantity units of Product into the cart. If a line item with
// the same product id exists its quantity is incremented; otherwise a new
// line item is appended. Rejected when the product's supplier or category
// differs from the items already in the cart.
type Add struct {
	Product  domain.Product
	Quantity int
}

// Remove deletes the line item with ProductID. Absent id is a no-op.
type Remove struct {
	ProductID string
}

// SetQuantity replaces the quantity of the line item with ProductID.
// Quantity ≤ 0 is equivalent to Remove. Minimum-order-quantity flooring is
// a caller obligation; the engine only knows about non-positive removal.
type SetQuantity struct {
	ProductID string
	Quantity  int
}

// Clear resets the cart to the empty state
type Clear struct{}

func (Add) isAction()         {}
func (Remove) isAction()      {}
func (SetQuantity) isAction() {}
func (Clear) isAction()       {}
