package orchestrators

import (
	"context"
	"log/slog"
	"strings"

	"clubvoley/internal/domain/player"
)

// PlayerStoreForProfile defines the store interface needed by UpdateProfile.
type PlayerStoreForProfile interface {
	GetByAccountID(ctx context.Context, accountID string) (player.Player, error)
	Save(ctx context.Context, p player.Player) error
}

// UpdateProfileInput carries input for the profile-edit orchestrator.
// Empty fields keep their current value.
type UpdateProfileInput struct {
	AccountID string
	Name      string
	Surname   string
	Phone     string
	Position  string
	Category  string
}

// UpdateProfileDeps holds dependencies for UpdateProfile.
type UpdateProfileDeps struct {
	PlayerStore PlayerStoreForProfile
}

// ExecuteUpdateProfile edits the player profile linked to the calling account.
// PRE: AccountID belongs to an authenticated player with a profile
// POST: Profile fields updated; absent fields unchanged
func ExecuteUpdateProfile(ctx context.Context, input UpdateProfileInput, deps UpdateProfileDeps) (player.Player, error) {
	p, err := deps.PlayerStore.GetByAccountID(ctx, input.AccountID)
	if err != nil {
		return player.Player{}, ErrPlayerNotFound
	}

	if v := strings.TrimSpace(input.Name); v != "" {
		p.Name = v
	}
	if v := strings.TrimSpace(input.Surname); v != "" {
		p.Surname = v
	}
	if v := strings.TrimSpace(input.Phone); v != "" {
		p.Phone = v
	}
	if v := strings.TrimSpace(input.Position); v != "" {
		p.Position = v
	}
	if v := strings.TrimSpace(input.Category); v != "" {
		p.Category = v
	}

	if err := p.Validate(); err != nil {
		return player.Player{}, err
	}

	if err := deps.PlayerStore.Save(ctx, p); err != nil {
		return player.Player{}, err
	}

	slog.Info("profile_event", "event", "profile_updated", "player_id", p.ID)

	return p, nil
}
