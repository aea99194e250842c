package attendance

import (
	"context"

	domain "clubvoley/internal/domain/attendance"
)

// Store persists Attendance state.
type Store interface {
	GetBySessionAndPlayer(ctx context.Context, sessionID, playerID string) (domain.Attendance, error)
	Upsert(ctx context.Context, value domain.Attendance) error
	ListByPlayerID(ctx context.Context, playerID string) ([]domain.Attendance, error)
	ListBySessionID(ctx context.Context, sessionID string) ([]domain.Attendance, error)
}
