package projections

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"clubvoley/internal/domain/payment"
)

// PaymentStoreForPlayerList defines the payment store interface needed by
// the player payments projection.
type PaymentStoreForPlayerList interface {
	ListByPlayerID(ctx context.Context, playerID string) ([]payment.Payment, error)
	GetByPlayerAndPeriod(ctx context.Context, playerID, period string) (payment.Payment, error)
}

// GetPlayerPaymentsQuery carries input for the player payments projection.
type GetPlayerPaymentsQuery struct {
	PlayerID string
}

// GetPlayerPaymentsDeps holds dependencies for the player payments projection.
type GetPlayerPaymentsDeps struct {
	PaymentStore PaymentStoreForPlayerList
}

// GetPlayerPaymentsResult carries the output of the player payments projection.
// CurrentPeriod is always present: when no row exists for the running month
// the state reads as pending — "no record" and "pending" are the same
// semantic, resolved here and nowhere else.
type GetPlayerPaymentsResult struct {
	Payments           []payment.Payment // ordered by period descending
	CurrentPeriod      string
	CurrentPeriodState string
}

// QueryGetPlayerPayments lists a player's own payment history, newest period
// first, plus the effective state of the running month.
func QueryGetPlayerPayments(ctx context.Context, query GetPlayerPaymentsQuery, deps GetPlayerPaymentsDeps) (GetPlayerPaymentsResult, error) {
	records, err := deps.PaymentStore.ListByPlayerID(ctx, query.PlayerID)
	if err != nil {
		return GetPlayerPaymentsResult{}, err
	}
	if records == nil {
		records = []payment.Payment{}
	}

	result := GetPlayerPaymentsResult{
		Payments:      records,
		CurrentPeriod: payment.CurrentPeriod(time.Now()),
	}

	current, err := deps.PaymentStore.GetByPlayerAndPeriod(ctx, query.PlayerID, result.CurrentPeriod)
	switch {
	case err == nil:
		result.CurrentPeriodState = current.State
	case errors.Is(err, sql.ErrNoRows):
		result.CurrentPeriodState = payment.StatePending
	default:
		return GetPlayerPaymentsResult{}, err
	}

	return result, nil
}
