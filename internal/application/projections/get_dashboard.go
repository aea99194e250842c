package projections

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"clubvoley/internal/domain/payment"
	"clubvoley/internal/domain/player"
	"clubvoley/internal/domain/training"
)

// DashboardPlayerStore defines the player store interface needed by the
// dashboard projection.
type DashboardPlayerStore interface {
	GetByAccountID(ctx context.Context, accountID string) (player.Player, error)
	Count(ctx context.Context) (int, error)
}

// DashboardPaymentStore defines the payment store interface needed by the
// dashboard projection.
type DashboardPaymentStore interface {
	GetByPlayerAndPeriod(ctx context.Context, playerID, period string) (payment.Payment, error)
	ListAll(ctx context.Context) ([]payment.Payment, error)
}

// DashboardTrainingStore defines the training store interface needed by the
// dashboard projection.
type DashboardTrainingStore interface {
	ListUpcoming(ctx context.Context, limit int) ([]training.Session, error)
}

// GetDashboardQuery carries input for the dashboard projection.
type GetDashboardQuery struct {
	Role      string // admin or player
	AccountID string // used to resolve the player profile for player role
}

// GetDashboardDeps holds dependencies for the dashboard projection.
type GetDashboardDeps struct {
	PlayerStore   DashboardPlayerStore
	PaymentStore  DashboardPaymentStore
	TrainingStore DashboardTrainingStore
}

// DashboardResult carries the output of the dashboard projection.
type DashboardResult struct {
	Role string

	// Shared
	UpcomingSessions []training.Session
	CurrentPeriod    string

	// Player
	Player              *player.Player
	CurrentPaymentState string

	// Admin
	PlayerCount    int
	AwaitingReview int // payments reported by players, not yet decided
}

const upcomingSessionLimit = 5

// QueryGetDashboard aggregates landing-page data based on the user's role.
// Sections are best-effort: a failing lookup leaves its section zeroed
// rather than failing the whole page.
func QueryGetDashboard(ctx context.Context, query GetDashboardQuery, deps GetDashboardDeps, now time.Time) (DashboardResult, error) {
	result := DashboardResult{
		Role:          query.Role,
		CurrentPeriod: payment.CurrentPeriod(now),
	}

	// All roles: next scheduled sessions
	sessions, err := deps.TrainingStore.ListUpcoming(ctx, upcomingSessionLimit)
	if err == nil {
		result.UpcomingSessions = sessions
	}

	switch query.Role {
	case "admin":
		count, err := deps.PlayerStore.Count(ctx)
		if err == nil {
			result.PlayerCount = count
		}
		records, err := deps.PaymentStore.ListAll(ctx)
		if err == nil {
			for _, rec := range records {
				if rec.State == payment.StateConfirmed {
					result.AwaitingReview++
				}
			}
		}

	default:
		pl, err := deps.PlayerStore.GetByAccountID(ctx, query.AccountID)
		if err != nil {
			return result, err
		}
		result.Player = &pl

		current, err := deps.PaymentStore.GetByPlayerAndPeriod(ctx, pl.ID, result.CurrentPeriod)
		switch {
		case err == nil:
			result.CurrentPaymentState = current.State
		case errors.Is(err, sql.ErrNoRows):
			// No row for the running month reads as pending
			result.CurrentPaymentState = payment.StatePending
		default:
			return result, err
		}
	}

	return result, nil
}
