package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"clubvoley/internal/adapters/email"
	"clubvoley/internal/domain/payment"
)

// PaymentStoreForReview defines the payment store interface needed by the
// admin validate/reject transitions.
type PaymentStoreForReview interface {
	GetByID(ctx context.Context, id string) (payment.Payment, error)
	Save(ctx context.Context, p payment.Payment) error
}

// ReviewPaymentInput carries input for the validate/reject orchestrators.
type ReviewPaymentInput struct {
	PaymentID string
	AdminID   string // AccountID of the deciding admin
}

// ReviewPaymentDeps holds dependencies for ValidatePayment and RejectPayment.
type ReviewPaymentDeps struct {
	PaymentStore PaymentStoreForReview
	PlayerStore  PlayerLookupStore // optional: used for the notification email
	EmailSender  email.Sender      // optional: nil skips notification
	EmailFrom    string
	LookupEmail  func(ctx context.Context, accountID string) (string, error) // optional
}

var ErrPaymentNotFound = errors.New("payment not found")

// ExecuteValidatePayment applies the admin's approval to a payment record.
// The transition is deliberately relaxed: it is allowed from any prior state
// (even one never confirmed by the player) and re-running it simply restamps.
// A best-effort notification email goes to the player afterwards.
// PRE: PaymentID refers to an existing record; AdminID is the acting admin
// POST: State is validated, ValidatedBy/ValidatedAt stamped
func ExecuteValidatePayment(ctx context.Context, input ReviewPaymentInput, deps ReviewPaymentDeps) (payment.Payment, error) {
	p, err := deps.PaymentStore.GetByID(ctx, input.PaymentID)
	if err != nil {
		return payment.Payment{}, ErrPaymentNotFound
	}

	p.MarkValidated(input.AdminID, time.Now())

	if err := deps.PaymentStore.Save(ctx, p); err != nil {
		return payment.Payment{}, err
	}

	slog.Info("payment_event", "event", "payment_validated", "payment_id", p.ID, "player_id", p.PlayerID, "period", p.Period, "admin_id", input.AdminID)

	notifyPlayer(ctx, deps, p)

	return p, nil
}

// ExecuteRejectPayment applies the admin's rejection. Symmetric to
// ExecuteValidatePayment: any prior state, last writer wins.
// PRE: PaymentID refers to an existing record; AdminID is the acting admin
// POST: State is rejected, ValidatedBy/ValidatedAt stamped
func ExecuteRejectPayment(ctx context.Context, input ReviewPaymentInput, deps ReviewPaymentDeps) (payment.Payment, error) {
	p, err := deps.PaymentStore.GetByID(ctx, input.PaymentID)
	if err != nil {
		return payment.Payment{}, ErrPaymentNotFound
	}

	p.MarkRejected(input.AdminID, time.Now())

	if err := deps.PaymentStore.Save(ctx, p); err != nil {
		return payment.Payment{}, err
	}

	slog.Info("payment_event", "event", "payment_rejected", "payment_id", p.ID, "player_id", p.PlayerID, "period", p.Period, "admin_id", input.AdminID)

	return p, nil
}

// notifyPlayer emails the player that their payment was validated.
// Best effort: failures are logged, never returned.
func notifyPlayer(ctx context.Context, deps ReviewPaymentDeps, p payment.Payment) {
	if deps.EmailSender == nil || deps.PlayerStore == nil || deps.LookupEmail == nil {
		return
	}

	pl, err := deps.PlayerStore.GetByID(ctx, p.PlayerID)
	if err != nil {
		slog.Warn("payment_notify_skipped", "payment_id", p.ID, "reason", "player_lookup_failed")
		return
	}
	addr, err := deps.LookupEmail(ctx, pl.AccountID)
	if err != nil || addr == "" {
		slog.Warn("payment_notify_skipped", "payment_id", p.ID, "reason", "email_lookup_failed")
		return
	}

	req := email.SendRequest{
		To:      []string{addr},
		From:    deps.EmailFrom,
		Subject: fmt.Sprintf("Cuota %s validada", p.Period),
		HTML: fmt.Sprintf("<p>Hola %s,</p><p>Tu pago de la cuota <strong>%s</strong> fue validado por el club.</p>",
			pl.Name, p.Period),
	}
	if _, err := deps.EmailSender.Send(ctx, req); err != nil {
		slog.Warn("payment_notify_failed", "payment_id", p.ID, "error", err.Error())
	}
}
