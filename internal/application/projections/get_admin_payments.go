package projections

import (
	"context"

	"clubvoley/internal/domain/payment"
	"clubvoley/internal/domain/player"
)

// PaymentStoreForAdminList defines the payment store interface needed by
// the admin payments projection.
type PaymentStoreForAdminList interface {
	ListAll(ctx context.Context) ([]payment.Payment, error)
}

// PlayerStoreForAdminList defines the player store interface needed to
// resolve names for the admin review surface.
type PlayerStoreForAdminList interface {
	GetByID(ctx context.Context, id string) (player.Player, error)
}

// GetAdminPaymentsQuery carries input for the admin payments projection.
type GetAdminPaymentsQuery struct{}

// GetAdminPaymentsDeps holds dependencies for the admin payments projection.
type GetAdminPaymentsDeps struct {
	PaymentStore PaymentStoreForAdminList
	PlayerStore  PlayerStoreForAdminList
}

// AdminPaymentRow is one reported payment with the player's display name.
type AdminPaymentRow struct {
	Payment    payment.Payment
	PlayerName string
}

// GetAdminPaymentsResult carries the output of the admin payments projection.
type GetAdminPaymentsResult struct {
	Rows []AdminPaymentRow
}

// QueryGetAdminPayments lists every reported payment across all players for
// the admin review surface, ordered by period descending then approval state.
// Read-only: no per-player attendance data is joined here.
func QueryGetAdminPayments(ctx context.Context, query GetAdminPaymentsQuery, deps GetAdminPaymentsDeps) (GetAdminPaymentsResult, error) {
	records, err := deps.PaymentStore.ListAll(ctx)
	if err != nil {
		return GetAdminPaymentsResult{}, err
	}

	// Resolve player names once per player
	names := make(map[string]string)
	rows := make([]AdminPaymentRow, 0, len(records))
	for _, rec := range records {
		name, ok := names[rec.PlayerID]
		if !ok {
			if pl, err := deps.PlayerStore.GetByID(ctx, rec.PlayerID); err == nil {
				name = pl.FullName()
			}
			names[rec.PlayerID] = name
		}
		rows = append(rows, AdminPaymentRow{Payment: rec, PlayerName: name})
	}

	return GetAdminPaymentsResult{Rows: rows}, nil
}
