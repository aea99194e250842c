package email

import (
	"context"
	"log/slog"
	"time"
)

// NoopSender logs emails instead of sending them. Used in development and
// when no provider key is configured.
type NoopSender struct{}

// NewNoopSender creates a sender that drops all email.
func NewNoopSender() *NoopSender {
	return &NoopSender{}
}

// Send logs the email and reports success without sending anything.
// POST: Returns a synthetic result; no external call is made
func (s *NoopSender) Send(ctx context.Context, req SendRequest) (SendResult, error) {
	slog.Info("email_noop", "to", req.To, "subject", req.Subject)
	return SendResult{MessageID: "noop", SentAt: time.Now()}, nil
}
