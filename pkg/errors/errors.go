package errors

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a resource is not found
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrInvalidQuantity is returned when an add is attempted with quantity < 1
type ErrInvalidQuantity struct {
	Quantity int
}

func (e *ErrInvalidQuantity) Error() string {
	return fmt.Sprintf("quantity must be at least 1, got %d", e.Quantity)
}

// ErrSupplierMismatch is returned when a product from a different supplier
// is added to a non-empty cart. One cart = one supplier.
type ErrSupplierMismatch struct {
	CartSupplier    string
	ProductSupplier string
}

func (e *ErrSupplierMismatch) Error() string {
	return fmt.Sprintf("cart holds items from supplier %q, cannot add item from supplier %q", e.CartSupplier, e.ProductSupplier)
}

// ErrCategoryMismatch is returned when a product from a different category
// is added to a non-empty cart. One cart = one category.
type ErrCategoryMismatch struct {
	CartCategory    string
	ProductCategory string
}

func (e *ErrCategoryMismatch) Error() string {
	return fmt.Sprintf("cart holds items from category %q, cannot add item from category %q", e.CartCategory, e.ProductCategory)
}

// ErrCheckoutInProgress is returned when a cart mutation is attempted while
// a checkout is in flight for the same cart
type ErrCheckoutInProgress struct{}

func (e *ErrCheckoutInProgress) Error() string {
	return "checkout in progress, cart is locked"
}

// ErrEmptyCart is returned when checkout is attempted on an empty cart
type ErrEmptyCart struct{}

func (e *ErrEmptyCart) Error() string {
	return "cart is empty"
}

// ErrNotAuthenticated is returned when checkout is attempted without a member identity
type ErrNotAuthenticated struct{}

func (e *ErrNotAuthenticated) Error() string {
	return "not authenticated"
}

// ErrProfileNotLoaded is returned when the member profile is not available at checkout
type ErrProfileNotLoaded struct {
	MemberID string
}

func (e *ErrProfileNotLoaded) Error() string {
	return fmt.Sprintf("member profile not loaded: %s", e.MemberID)
}

// ErrInsufficientPoints is returned when the points balance does not cover
// the cart total. Shortfall is the exact amount missing.
type ErrInsufficientPoints struct {
	Balance   decimal.Decimal
	Required  decimal.Decimal
	Shortfall decimal.Decimal
}

func (e *ErrInsufficientPoints) Error() string {
	return fmt.Sprintf("insufficient points: balance %s, required %s, short %s", e.Balance, e.Required, e.Shortfall)
}

// ErrCredentialNotSet is returned when the member has no checkout password
// configured. Callers should direct the member to the setup flow.
type ErrCredentialNotSet struct{}

func (e *ErrCredentialNotSet) Error() string {
	return "checkout password not set, configure one before placing orders"
}

// ErrCredentialMismatch is returned when the checkout password is wrong
type ErrCredentialMismatch struct{}

func (e *ErrCredentialMismatch) Error() string {
	return "incorrect checkout password"
}

// ErrOrderCreation is returned when the order collaborator rejects or fails
// to create the order. The checkout is aborted with no state change.
type ErrOrderCreation struct {
	Err error
}

func (e *ErrOrderCreation) Error() string {
	return fmt.Sprintf("order creation failed: %v", e.Err)
}

func (e *ErrOrderCreation) Unwrap() error {
	return e.Err
}
