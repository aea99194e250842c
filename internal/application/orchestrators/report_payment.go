package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"clubvoley/internal/domain/payment"
	"clubvoley/internal/domain/player"

	"github.com/google/uuid"
)

// PaymentStoreForReport defines the payment store interface needed by ReportPayment.
type PaymentStoreForReport interface {
	UpsertReport(ctx context.Context, p payment.Payment) error
	GetByPlayerAndPeriod(ctx context.Context, playerID, period string) (payment.Payment, error)
}

// PlayerLookupStore defines the player store interface needed to resolve the caller.
type PlayerLookupStore interface {
	GetByID(ctx context.Context, id string) (player.Player, error)
}

// ReportPaymentInput carries input for the report-payment orchestrator.
type ReportPaymentInput struct {
	PlayerID string
	Period   string // YYYY-MM; defaults to the current month when empty
	Method   string
	Amount   int
}

// ReportPaymentResult carries the persisted record after the upsert.
type ReportPaymentResult struct {
	Payment payment.Payment
}

// ReportPaymentDeps holds dependencies for ReportPayment.
type ReportPaymentDeps struct {
	PaymentStore PaymentStoreForReport
	PlayerStore  PlayerLookupStore
}

// Domain-level orchestration errors
var (
	ErrPlayerNotFound = errors.New("player not found")
)

// ExecuteReportPayment records a player's self-report for one period. The
// write is a storage-level upsert keyed on (player_id, period): the first
// report creates the row in confirmed state, any later report for the same
// period overwrites method and refreshes the confirmation stamp on the same
// row. Calling it twice is idempotent — duplicate rows cannot occur.
// PRE: PlayerID is a valid player; Period is YYYY-MM or empty
// POST: Exactly one confirmed record exists for (player, period)
func ExecuteReportPayment(ctx context.Context, input ReportPaymentInput, deps ReportPaymentDeps) (ReportPaymentResult, error) {
	if input.PlayerID == "" {
		return ReportPaymentResult{}, payment.ErrEmptyPlayerID
	}

	if _, err := deps.PlayerStore.GetByID(ctx, input.PlayerID); err != nil {
		return ReportPaymentResult{}, ErrPlayerNotFound
	}

	period := input.Period
	if period == "" {
		period = payment.CurrentPeriod(time.Now())
	}
	if !payment.IsValidPeriod(period) {
		return ReportPaymentResult{}, payment.ErrInvalidPeriod
	}

	p := payment.Payment{
		ID:       uuid.New().String(),
		PlayerID: input.PlayerID,
		Period:   period,
		Amount:   input.Amount,
	}
	p.Confirm(input.PlayerID, input.Method, time.Now())

	if err := p.Validate(); err != nil {
		return ReportPaymentResult{}, err
	}

	if err := deps.PaymentStore.UpsertReport(ctx, p); err != nil {
		return ReportPaymentResult{}, err
	}

	slog.Info("payment_event", "event", "payment_reported", "player_id", input.PlayerID, "period", period, "method", input.Method)

	// Re-read so the caller sees the surviving row (the original id when the
	// upsert landed on an existing record).
	stored, err := deps.PaymentStore.GetByPlayerAndPeriod(ctx, input.PlayerID, period)
	if err != nil {
		return ReportPaymentResult{}, err
	}

	return ReportPaymentResult{Payment: stored}, nil
}
