package player

import (
	"context"

	domain "clubvoley/internal/domain/player"
)

// Store persists Player state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Player, error)
	GetByAccountID(ctx context.Context, accountID string) (domain.Player, error)
	Save(ctx context.Context, value domain.Player) error
	List(ctx context.Context, filter ListFilter) ([]domain.Player, error)
	Count(ctx context.Context) (int, error)
}

// ListFilter carries filtering parameters for List operations.
type ListFilter struct {
	Category string
	Limit    int
	Offset   int
}
