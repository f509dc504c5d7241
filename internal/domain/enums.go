package domain

// CheckoutStage represents the stage of one checkout attempt
type CheckoutStage string

const (
	// IDLE - no checkout in flight
	StageIdle CheckoutStage = "IDLE"
	// VALIDATING_PRECONDITIONS - cart, identity, profile, balance and credential-configured checks
	StageValidatingPreconditions CheckoutStage = "VALIDATING_PRECONDITIONS"
	// AWAITING_CREDENTIAL - verifying the secondary checkout password
	StageAwaitingCredential CheckoutStage = "AWAITING_CREDENTIAL"
	// SUBMITTING_ORDER - order payload in flight to the order collaborator
	StageSubmittingOrder CheckoutStage = "SUBMITTING_ORDER"
	// DEBITING_POINTS - points ledger debit in flight
	StageDebitingPoints CheckoutStage = "DEBITING_POINTS"
	// CLEARED - cart cleared, checkout finished
	StageCleared CheckoutStage = "CLEARED"
)

// IsValid checks if the checkout stage is valid
func (s CheckoutStage) IsValid() bool {
	switch s {
	case StageIdle,
		StageValidatingPreconditions,
		StageAwaitingCredential,
		StageSubmittingOrder,
		StageDebitingPoints,
		StageCleared:
		return true
	default:
		return false
	}
}

// CanAdvanceTo checks if a stage transition is valid. Failure edges from
// precondition, credential and order-submit stages lead back to Idle with
// no state change. A points-debit failure does NOT fall back: the order
// already exists, so the attempt still advances to Cleared.
func (s CheckoutStage) CanAdvanceTo(next CheckoutStage) bool {
	switch s {
	case StageIdle:
		return next == StageValidatingPreconditions
	case StageValidatingPreconditions:
		return next == StageAwaitingCredential ||
			next == StageIdle
	case StageAwaitingCredential:
		return next == StageSubmittingOrder ||
			next == StageIdle
	case StageSubmittingOrder:
		return next == StageDebitingPoints ||
			next == StageIdle
	case StageDebitingPoints:
		return next == StageCleared
	case StageCleared:
		return next == StageIdle
	default:
		return false
	}
}
