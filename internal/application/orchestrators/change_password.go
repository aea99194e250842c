package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"clubvoley/internal/domain/account"
)

// AccountStoreForPassword defines the store interface needed by ChangePassword.
type AccountStoreForPassword interface {
	GetByID(ctx context.Context, id string) (account.Account, error)
	Save(ctx context.Context, a account.Account) error
}

// ChangePasswordInput carries input for the change-password orchestrator.
type ChangePasswordInput struct {
	AccountID       string
	CurrentPassword string
	NewPassword     string
}

// ChangePasswordDeps holds dependencies for ChangePassword.
type ChangePasswordDeps struct {
	AccountStore AccountStoreForPassword
}

var ErrWrongCurrentPassword = errors.New("current password is incorrect")

// ExecuteChangePassword rotates an account credential. The current password
// is re-verified before the new hash is written.
// PRE: AccountID is an authenticated account
// POST: PasswordHash replaced with the bcrypt hash of the new password
func ExecuteChangePassword(ctx context.Context, input ChangePasswordInput, deps ChangePasswordDeps) error {
	acct, err := deps.AccountStore.GetByID(ctx, input.AccountID)
	if err != nil {
		return err
	}

	if err := acct.CheckPassword(input.CurrentPassword); err != nil {
		slog.Info("auth_event", "event", "password_change_failed", "account_id", input.AccountID, "reason", "wrong_current")
		return ErrWrongCurrentPassword
	}

	if err := acct.SetPassword(input.NewPassword); err != nil {
		return err
	}

	if err := deps.AccountStore.Save(ctx, acct); err != nil {
		return err
	}

	slog.Info("auth_event", "event", "password_changed", "account_id", input.AccountID)

	return nil
}
