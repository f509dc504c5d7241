package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Product is the catalog view of an item at add-to-cart time. The cart
// copies what it needs and never re-fetches; price changes after insertion
// do not affect existing line items.
type Product struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Category         string          `json:"category"`
	Supplier         string          `json:"supplier"`
	Price            decimal.Decimal `json:"price"`
	Unit             string          `json:"unit"`
	MinOrderQuantity int             `json:"min_order_quantity"`
	ImageURL         string          `json:"image_url"`
}

// LineItem is one row in a cart. ProductID is unique within a cart;
// display metadata and unit price are frozen at insertion time.
// TotalPrice is always UnitPrice × Quantity, recomputed on every change.
type LineItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	ImageURL    string          `json:"image_url"`
	Unit        string          `json:"unit"`
	Category    string          `json:"category"`
	Supplier    string          `json:"supplier"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// Buyer identifies the ordering member on an order payload
type Buyer struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	RestaurantName string `json:"restaurant_name"`
}

// OrderPayload is the immutable cart snapshot submitted to the
// order-creation collaborator at checkout. ReferenceID is generated
// client-side so the order service can deduplicate resubmissions.
type OrderPayload struct {
	ReferenceID string          `json:"reference_id"`
	Items       []LineItem      `json:"items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Buyer       Buyer           `json:"buyer"`
	PlacedAt    time.Time       `json:"placed_at"`
}

// Member is a buyer profile. PointsBalance is the prepaid ledger balance
// debited at checkout. CheckoutCredentialHash is the bcrypt hash of the
// secondary checkout password; empty means none is configured yet.
type Member struct {
	ID                     string          `json:"id"`
	Email                  string          `json:"email"`
	RestaurantName         string          `json:"restaurant_name"`
	PointsBalance          decimal.Decimal `json:"points_balance"`
	CheckoutCredentialHash string          `json:"-"`
	CreatedAt              time.Time       `json:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at"`
}

// Buyer returns the member's identity as carried on an order payload
func (m *Member) Buyer() Buyer {
	return Buyer{
		ID:             m.ID,
		Email:          m.Email,
		RestaurantName: m.RestaurantName,
	}
}

// HasCheckoutCredential reports whether a checkout password is configured
func (m *Member) HasCheckoutCredential() bool {
	return m.CheckoutCredentialHash != ""
}

// SetCheckoutCredential stores a bcrypt hash of the checkout password
func (m *Member) SetCheckoutCredential(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return err
	}
	m.CheckoutCredentialHash = string(hash)
	return nil
}

// VerifyCheckoutCredential checks the checkout password against the stored hash
func (m *Member) VerifyCheckoutCredential(password string) bool {
	if m.CheckoutCredentialHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(m.CheckoutCredentialHash), []byte(password)) == nil
}
