package orchestrators

import (
	"context"
	"errors"
	"testing"
	"time"

	accountDomain "clubvoley/internal/domain/account"
)

func seedLoginAccount(t *testing.T, store *mockAccountStore, password string) accountDomain.Account {
	t.Helper()
	acct := accountDomain.Account{
		ID:        "acc-1",
		Email:     "jugador@club.com",
		Role:      accountDomain.RolePlayer,
		CreatedAt: time.Now(),
	}
	if err := acct.SetPassword(password); err != nil {
		t.Fatalf("SetPassword() error = %v", err)
	}
	store.accounts[acct.ID] = acct
	return acct
}

// TestExecuteLogin_Success tests a valid login round trip.
func TestExecuteLogin_Success(t *testing.T) {
	store := newMockAccountStore()
	seedLoginAccount(t, store, "jugador123")

	result, err := ExecuteLogin(context.Background(),
		LoginInput{Email: "jugador@club.com", Password: "jugador123"},
		LoginDeps{AccountStore: store},
	)
	if err != nil {
		t.Fatalf("ExecuteLogin() error = %v", err)
	}
	if result.AccountID != "acc-1" || result.Role != accountDomain.RolePlayer {
		t.Errorf("result = %+v, want acc-1/player", result)
	}
}

// TestExecuteLogin_WrongPassword tests credential rejection and the failure counter.
func TestExecuteLogin_WrongPassword(t *testing.T) {
	store := newMockAccountStore()
	seedLoginAccount(t, store, "jugador123")

	_, err := ExecuteLogin(context.Background(),
		LoginInput{Email: "jugador@club.com", Password: "nope-nope"},
		LoginDeps{AccountStore: store},
	)
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("error = %v, want ErrInvalidCredentials", err)
	}
	if store.accounts["acc-1"].FailedLogins != 1 {
		t.Errorf("FailedLogins = %d, want 1", store.accounts["acc-1"].FailedLogins)
	}
}

// TestExecuteLogin_UnknownEmail verifies unknown accounts get the same
// generic error as bad passwords.
func TestExecuteLogin_UnknownEmail(t *testing.T) {
	store := newMockAccountStore()

	_, err := ExecuteLogin(context.Background(),
		LoginInput{Email: "nadie@club.com", Password: "whatever"},
		LoginDeps{AccountStore: store},
	)
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("error = %v, want ErrInvalidCredentials", err)
	}
}

// TestExecuteLogin_Lockout verifies the fifth failure locks the account and
// further attempts are blocked even with the right password.
func TestExecuteLogin_Lockout(t *testing.T) {
	store := newMockAccountStore()
	seedLoginAccount(t, store, "jugador123")

	for i := 0; i < 5; i++ {
		_, err := ExecuteLogin(context.Background(),
			LoginInput{Email: "jugador@club.com", Password: "wrong"},
			LoginDeps{AccountStore: store},
		)
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("attempt %d: error = %v, want ErrInvalidCredentials", i+1, err)
		}
	}

	_, err := ExecuteLogin(context.Background(),
		LoginInput{Email: "jugador@club.com", Password: "jugador123"},
		LoginDeps{AccountStore: store},
	)
	if !errors.Is(err, ErrAccountLocked) {
		t.Errorf("error after lockout = %v, want ErrAccountLocked", err)
	}
}

// TestExecuteLogin_ResetsCounterOnSuccess verifies a good login clears
// earlier failures.
func TestExecuteLogin_ResetsCounterOnSuccess(t *testing.T) {
	store := newMockAccountStore()
	seedLoginAccount(t, store, "jugador123")

	for i := 0; i < 3; i++ {
		ExecuteLogin(context.Background(),
			LoginInput{Email: "jugador@club.com", Password: "wrong"},
			LoginDeps{AccountStore: store},
		)
	}

	if _, err := ExecuteLogin(context.Background(),
		LoginInput{Email: "jugador@club.com", Password: "jugador123"},
		LoginDeps{AccountStore: store},
	); err != nil {
		t.Fatalf("ExecuteLogin() error = %v", err)
	}
	if store.accounts["acc-1"].FailedLogins != 0 {
		t.Errorf("FailedLogins = %d after success, want 0", store.accounts["acc-1"].FailedLogins)
	}
}
