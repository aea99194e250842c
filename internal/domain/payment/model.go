package payment

import (
	"errors"
	"time"
)

// Approval states for a monthly payment. StatePending is realized lazily:
// a (player, period) pair with no row at all means pending — the two are
// the same semantic and projections must treat them as such.
const (
	StatePending   = "pending"
	StateConfirmed = "confirmed"
	StateValidated = "validated"
	StateRejected  = "rejected"
)

// Payment methods the player can self-report.
const (
	MethodCash     = "efectivo"
	MethodTransfer = "transferencia"
)

// ValidStates contains all valid approval state values.
var ValidStates = []string{StatePending, StateConfirmed, StateValidated, StateRejected}

// Domain errors
var (
	ErrEmptyPlayerID = errors.New("player ID is required")
	ErrInvalidPeriod = errors.New("period must be in YYYY-MM format")
	ErrInvalidState  = errors.New("state must be one of: pending, confirmed, validated, rejected")
)

// Payment represents one monthly due for one player. At most one Payment
// exists per (PlayerID, Period); the storage layer enforces this with a
// composite unique constraint.
type Payment struct {
	ID          string
	PlayerID    string
	Period      string // YYYY-MM
	Amount      int
	Method      string
	State       string
	ConfirmedBy string // PlayerID who self-reported
	ConfirmedAt time.Time
	ValidatedBy string // AccountID of the admin who decided
	ValidatedAt time.Time
}

// Validate checks if the Payment has valid data.
// PRE: Payment struct is populated
// POST: Returns nil if valid, error otherwise
func (p *Payment) Validate() error {
	if p.PlayerID == "" {
		return ErrEmptyPlayerID
	}
	if !IsValidPeriod(p.Period) {
		return ErrInvalidPeriod
	}
	if !isValidState(p.State) {
		return ErrInvalidState
	}
	if p.Amount < 0 {
		return errors.New("amount cannot be negative")
	}
	return nil
}

// Confirm records the player's self-report. Repeated confirmations for the
// same period collapse onto this record: the method is overwritten and the
// confirmation stamp refreshed, whatever the prior state was.
// PRE: playerID is non-empty
// POST: State is confirmed, Method/ConfirmedBy/ConfirmedAt are set
func (p *Payment) Confirm(playerID, method string, now time.Time) {
	p.State = StateConfirmed
	p.Method = method
	p.ConfirmedBy = playerID
	p.ConfirmedAt = now
}

// MarkValidated applies the admin's approval. Allowed from any prior state,
// including a record never confirmed by the player, and re-validation simply
// restamps — last writer wins, no state is sticky.
// PRE: adminID is non-empty
// POST: State is validated, ValidatedBy/ValidatedAt are set
func (p *Payment) MarkValidated(adminID string, now time.Time) {
	p.State = StateValidated
	p.ValidatedBy = adminID
	p.ValidatedAt = now
}

// MarkRejected applies the admin's rejection. Same relaxed rules as
// MarkValidated: any prior state, last writer wins.
// PRE: adminID is non-empty
// POST: State is rejected, ValidatedBy/ValidatedAt are set
func (p *Payment) MarkRejected(adminID string, now time.Time) {
	p.State = StateRejected
	p.ValidatedBy = adminID
	p.ValidatedAt = now
}

// IsDecided returns true once an admin has validated or rejected the payment.
// INVARIANT: Payment fields are not mutated
func (p *Payment) IsDecided() bool {
	return p.State == StateValidated || p.State == StateRejected
}

// IsValidPeriod reports whether s is a well-formed YYYY-MM period key.
func IsValidPeriod(s string) bool {
	t, err := time.Parse("2006-01", s)
	return err == nil && t.Format("2006-01") == s
}

// CurrentPeriod returns the period key for the given instant.
func CurrentPeriod(now time.Time) string {
	return now.Format("2006-01")
}

func isValidState(state string) bool {
	for _, s := range ValidStates {
		if s == state {
			return true
		}
	}
	return false
}
