package payment_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"clubvoley/internal/adapters/storage"
	paymentStore "clubvoley/internal/adapters/storage/payment"
	domain "clubvoley/internal/domain/payment"
)

// newTestStore opens a migrated in-memory database with one player row.
func newTestStore(t *testing.T) *paymentStore.SQLiteStore {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if err := storage.MigrateDB(db, ":memory:"); err != nil {
		t.Fatalf("MigrateDB() error = %v", err)
	}
	if _, err := db.Exec("INSERT INTO account (id, email, role, created_at) VALUES ('acc1', 'x@club.com', 'player', '2026-08-28')"); err != nil {
		t.Fatalf("account insert failed: %v", err)
	}
	if _, err := db.Exec("INSERT INTO player (id, account_id, name, surname) VALUES ('p1', 'acc1', 'Ana', 'Pérez')"); err != nil {
		t.Fatalf("player insert failed: %v", err)
	}
	return paymentStore.NewSQLiteStore(db)
}

func confirmedPayment(id, period string, now time.Time) domain.Payment {
	p := domain.Payment{ID: id, PlayerID: "p1", Period: period, Amount: 15000}
	p.Confirm("p1", domain.MethodCash, now)
	return p
}

// TestUpsertReport_Twice verifies two reports for the same period collapse
// onto a single row keeping the original id.
func TestUpsertReport_Twice(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	if err := store.UpsertReport(ctx, confirmedPayment("pay-1", "2026-08", now)); err != nil {
		t.Fatalf("first UpsertReport() error = %v", err)
	}

	second := domain.Payment{ID: "pay-2", PlayerID: "p1", Period: "2026-08", Amount: 18000}
	second.Confirm("p1", domain.MethodTransfer, now.Add(time.Hour))
	if err := store.UpsertReport(ctx, second); err != nil {
		t.Fatalf("second UpsertReport() error = %v", err)
	}

	got, err := store.GetByPlayerAndPeriod(ctx, "p1", "2026-08")
	if err != nil {
		t.Fatalf("GetByPlayerAndPeriod() error = %v", err)
	}
	if got.ID != "pay-1" {
		t.Errorf("surviving row id = %q, want original %q", got.ID, "pay-1")
	}
	if got.Method != domain.MethodTransfer || got.Amount != 18000 {
		t.Errorf("got method=%q amount=%d, want overwritten %q/18000", got.Method, got.Amount, domain.MethodTransfer)
	}

	rows, err := store.ListByPlayerID(ctx, "p1")
	if err != nil {
		t.Fatalf("ListByPlayerID() error = %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("got %d rows for (p1, 2026-08), want exactly 1", len(rows))
	}
}

// TestGetByPlayerAndPeriod_NoRow verifies absence surfaces as sql.ErrNoRows
// so projections can read it as pending.
func TestGetByPlayerAndPeriod_NoRow(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetByPlayerAndPeriod(context.Background(), "p1", "2026-08")
	if !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("error = %v, want wrapped sql.ErrNoRows", err)
	}
}

// TestSave_ValidateTransition verifies the admin decision round-trips with
// its stamps.
func TestSave_ValidateTransition(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	reported := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	decided := reported.Add(2 * time.Hour)

	p := confirmedPayment("pay-1", "2026-08", reported)
	if err := store.UpsertReport(ctx, p); err != nil {
		t.Fatalf("UpsertReport() error = %v", err)
	}

	p.MarkValidated("admin-1", decided)
	if err := store.Save(ctx, p); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.GetByID(ctx, "pay-1")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.State != domain.StateValidated {
		t.Errorf("State = %q, want %q", got.State, domain.StateValidated)
	}
	if got.ValidatedBy != "admin-1" || !got.ValidatedAt.Equal(decided) {
		t.Errorf("decision stamp = (%q, %v), want (admin-1, %v)", got.ValidatedBy, got.ValidatedAt, decided)
	}
	// Confirmation stamp survives the decision
	if got.ConfirmedBy != "p1" || !got.ConfirmedAt.Equal(reported) {
		t.Errorf("confirmation stamp = (%q, %v), want (p1, %v)", got.ConfirmedBy, got.ConfirmedAt, reported)
	}
}

// TestListByPlayerID_Ordering verifies newest period first.
func TestListByPlayerID_Ordering(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	for i, period := range []string{"2026-06", "2026-08", "2026-07"} {
		p := confirmedPayment("pay-"+period, period, now.Add(time.Duration(i)*time.Minute))
		if err := store.UpsertReport(ctx, p); err != nil {
			t.Fatalf("UpsertReport(%s) error = %v", period, err)
		}
	}

	rows, err := store.ListByPlayerID(ctx, "p1")
	if err != nil {
		t.Fatalf("ListByPlayerID() error = %v", err)
	}
	want := []string{"2026-08", "2026-07", "2026-06"}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i, period := range want {
		if rows[i].Period != period {
			t.Errorf("rows[%d].Period = %q, want %q", i, rows[i].Period, period)
		}
	}
}
