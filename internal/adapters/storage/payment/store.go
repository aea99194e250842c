package payment

import (
	"context"

	domain "clubvoley/internal/domain/payment"
)

// Store persists Payment state. UpsertReport is the only write path for
// player self-reports; Save is used by the admin validate/reject transitions.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Payment, error)
	GetByPlayerAndPeriod(ctx context.Context, playerID, period string) (domain.Payment, error)
	UpsertReport(ctx context.Context, value domain.Payment) error
	Save(ctx context.Context, value domain.Payment) error
	ListByPlayerID(ctx context.Context, playerID string) ([]domain.Payment, error)
	ListAll(ctx context.Context) ([]domain.Payment, error)
}
