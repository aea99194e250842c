package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"clubvoley/internal/domain/account"
	"clubvoley/internal/domain/player"

	"github.com/google/uuid"
)

// AccountStoreForSeed defines the account store interface needed for seeding.
type AccountStoreForSeed interface {
	GetByEmail(ctx context.Context, email string) (account.Account, error)
	Save(ctx context.Context, a account.Account) error
}

// PlayerStoreForSeed defines the player store interface needed for seeding.
type PlayerStoreForSeed interface {
	GetByAccountID(ctx context.Context, accountID string) (player.Player, error)
	Save(ctx context.Context, p player.Player) error
}

// SeedAccountsDeps holds dependencies for the startup seed.
type SeedAccountsDeps struct {
	AccountStore AccountStoreForSeed
	PlayerStore  PlayerStoreForSeed
}

// SeedAccountsInput carries the credentials for the two well-known accounts.
type SeedAccountsInput struct {
	AdminEmail     string
	AdminPassword  string
	PlayerEmail    string
	PlayerPassword string
}

// ExecuteSeedAccounts creates the admin account and a demo player account
// with its profile. Idempotent: existing accounts are left untouched, so
// this runs on every startup.
// PRE: emails and passwords are non-empty
// POST: Both accounts exist with bcrypt-hashed credentials; demo profile exists
func ExecuteSeedAccounts(ctx context.Context, input SeedAccountsInput, deps SeedAccountsDeps) error {
	if _, err := seedAccount(ctx, deps.AccountStore, input.AdminEmail, input.AdminPassword, account.RoleAdmin); err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}

	playerAcctID, err := seedAccount(ctx, deps.AccountStore, input.PlayerEmail, input.PlayerPassword, account.RolePlayer)
	if err != nil {
		return fmt.Errorf("failed to seed player account: %w", err)
	}

	// Demo player profile, created once
	if _, err := deps.PlayerStore.GetByAccountID(ctx, playerAcctID); err != nil {
		p := player.Player{
			ID:        uuid.New().String(),
			AccountID: playerAcctID,
			Name:      "Lucía",
			Surname:   "Gómez",
			Phone:     "1122334455",
			Position:  "Armadora",
			Category:  player.CategoryMayores,
		}
		if err := p.Validate(); err != nil {
			return err
		}
		if err := deps.PlayerStore.Save(ctx, p); err != nil {
			return fmt.Errorf("failed to seed demo player: %w", err)
		}
		slog.Info("seed_event", "event", "demo_player_created", "player_id", p.ID)
	}

	return nil
}

// seedAccount creates one account if absent and returns its ID either way.
func seedAccount(ctx context.Context, store AccountStoreForSeed, email, password, role string) (string, error) {
	if existing, err := store.GetByEmail(ctx, email); err == nil {
		return existing.ID, nil
	}

	acct := account.Account{
		ID:        uuid.New().String(),
		Email:     email,
		Role:      role,
		CreatedAt: time.Now(),
	}
	if err := acct.SetPassword(password); err != nil {
		return "", err
	}
	if err := acct.Validate(); err != nil {
		return "", err
	}
	if err := store.Save(ctx, acct); err != nil {
		return "", err
	}

	slog.Info("seed_event", "event", "account_created", "email", email, "role", role)
	return acct.ID, nil
}
