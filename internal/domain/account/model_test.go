package account_test

import (
	"testing"
	"time"

	"clubvoley/internal/domain/account"
)

// TestAccount_Validate tests validation of Account.
func TestAccount_Validate(t *testing.T) {
	tests := []struct {
		name    string
		account account.Account
		wantErr bool
	}{
		{
			name: "valid admin account",
			account: account.Account{
				ID:    "1",
				Email: "admin@club.com",
				Role:  account.RoleAdmin,
			},
			wantErr: false,
		},
		{
			name: "valid player account",
			account: account.Account{
				ID:    "2",
				Email: "jugador@club.com",
				Role:  account.RolePlayer,
			},
			wantErr: false,
		},
		{
			name: "empty email",
			account: account.Account{
				ID:   "3",
				Role: account.RolePlayer,
			},
			wantErr: true,
		},
		{
			name: "email without at sign",
			account: account.Account{
				ID:    "4",
				Email: "not-an-email",
				Role:  account.RolePlayer,
			},
			wantErr: true,
		},
		{
			name: "unknown role",
			account: account.Account{
				ID:    "5",
				Email: "coach@club.com",
				Role:  "coach",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.account.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestAccount_SetPassword tests password hashing rules.
func TestAccount_SetPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid password", "jugador123", false},
		{"minimum length", "sixchr", false},
		{"too short", "abc", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := account.Account{}
			err := a.SetPassword(tt.password)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SetPassword() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if a.PasswordHash == tt.password || a.PasswordHash == "" {
				t.Errorf("PasswordHash must be a hash, got %q", a.PasswordHash)
			}
			if err := a.CheckPassword(tt.password); err != nil {
				t.Errorf("CheckPassword() after SetPassword() = %v, want nil", err)
			}
		})
	}
}

// TestAccount_CheckPassword tests hash verification.
func TestAccount_CheckPassword(t *testing.T) {
	a := account.Account{}
	if err := a.SetPassword("correct-horse"); err != nil {
		t.Fatalf("SetPassword() error = %v", err)
	}

	if err := a.CheckPassword("wrong-horse"); err != account.ErrWrongPassword {
		t.Errorf("CheckPassword(wrong) = %v, want ErrWrongPassword", err)
	}

	empty := account.Account{}
	if err := empty.CheckPassword("anything"); err != account.ErrWrongPassword {
		t.Errorf("CheckPassword() with no hash = %v, want ErrWrongPassword", err)
	}
}

// TestAccount_Lockout tests the failed-login counter and lock window.
func TestAccount_Lockout(t *testing.T) {
	a := account.Account{}

	for i := 0; i < 4; i++ {
		a.RecordFailedLogin()
	}
	if a.IsLocked() {
		t.Fatal("account locked after 4 failures, want unlocked")
	}

	a.RecordFailedLogin()
	if !a.IsLocked() {
		t.Fatal("account not locked after 5 failures")
	}
	if a.LockedUntil.Before(time.Now()) {
		t.Error("LockedUntil should be in the future")
	}

	a.ResetFailedLogins()
	if a.IsLocked() || a.FailedLogins != 0 {
		t.Errorf("after reset: locked=%v failures=%d, want unlocked with 0", a.IsLocked(), a.FailedLogins)
	}
}

// TestAccount_IsAdmin tests the role predicate.
func TestAccount_IsAdmin(t *testing.T) {
	admin := account.Account{Role: account.RoleAdmin}
	player := account.Account{Role: account.RolePlayer}

	if !admin.IsAdmin() {
		t.Error("admin account should report IsAdmin")
	}
	if player.IsAdmin() {
		t.Error("player account should not report IsAdmin")
	}
}
