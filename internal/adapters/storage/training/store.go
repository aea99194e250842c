package training

import (
	"context"

	domain "clubvoley/internal/domain/training"
)

// Store persists training Session state. Sessions are insert-only: no edit
// or delete path exists in this workflow.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Session, error)
	Save(ctx context.Context, value domain.Session) error
	List(ctx context.Context) ([]domain.Session, error)
	ListUpcoming(ctx context.Context, limit int) ([]domain.Session, error)
}
