package payment

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"clubvoley/internal/adapters/storage"
	domain "clubvoley/internal/domain/payment"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new PaymentStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const paymentColumns = "id, player_id, period, amount, method, state, confirmed_by, confirmed_at, validated_by, validated_at"

// GetByID retrieves a Payment by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Payment, error) {
	query := "SELECT " + paymentColumns + " FROM payment WHERE id = ?"
	row := s.db.QueryRowContext(ctx, query, id)

	entity, err := scanPayment(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Payment{}, fmt.Errorf("payment not found: %w", err)
	}
	return entity, err
}

// GetByPlayerAndPeriod retrieves the Payment for one (player, period) pair.
// No row means the period is implicitly pending; callers detect that with
// errors.Is(err, sql.ErrNoRows).
// PRE: playerID and period are non-empty
// POST: Returns the entity or a sql.ErrNoRows-wrapped error
func (s *SQLiteStore) GetByPlayerAndPeriod(ctx context.Context, playerID, period string) (domain.Payment, error) {
	query := "SELECT " + paymentColumns + " FROM payment WHERE player_id = ? AND period = ?"
	row := s.db.QueryRowContext(ctx, query, playerID, period)

	entity, err := scanPayment(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Payment{}, fmt.Errorf("payment not found: %w", err)
	}
	return entity, err
}

// UpsertReport persists a player's self-report keyed on (player_id, period).
// The unique constraint makes this a single atomic insert-or-update: repeated
// reports for the same period collapse onto the existing row (the original id
// is kept) with method and confirmation stamps overwritten.
// PRE: entity has been validated and has State=confirmed
// POST: Exactly one row exists for (player_id, period)
func (s *SQLiteStore) UpsertReport(ctx context.Context, entity domain.Payment) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	fields := []string{"id", "player_id", "period", "amount", "method", "state", "confirmed_by", "confirmed_at"}
	placeholders := []string{"?", "?", "?", "?", "?", "?", "?", "?"}
	updates := []string{
		"amount=excluded.amount",
		"method=excluded.method",
		"state=excluded.state",
		"confirmed_by=excluded.confirmed_by",
		"confirmed_at=excluded.confirmed_at",
	}

	query := fmt.Sprintf(
		"INSERT INTO payment (%s) VALUES (%s) ON CONFLICT(player_id, period) DO UPDATE SET %s",
		strings.Join(fields, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(updates, ", "),
	)

	_, err = tx.ExecContext(ctx, query,
		entity.ID,
		entity.PlayerID,
		entity.Period,
		entity.Amount,
		nullable(entity.Method),
		entity.State,
		nullable(entity.ConfirmedBy),
		timeValue(entity.ConfirmedAt),
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// Save persists a Payment to the database keyed on id. Used by the admin
// validate/reject transitions, which operate on an already-loaded record.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Payment) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	fields := []string{"id", "player_id", "period", "amount", "method", "state", "confirmed_by", "confirmed_at", "validated_by", "validated_at"}
	placeholders := []string{"?", "?", "?", "?", "?", "?", "?", "?", "?", "?"}
	updates := []string{
		"amount=excluded.amount",
		"method=excluded.method",
		"state=excluded.state",
		"confirmed_by=excluded.confirmed_by",
		"confirmed_at=excluded.confirmed_at",
		"validated_by=excluded.validated_by",
		"validated_at=excluded.validated_at",
	}

	query := fmt.Sprintf(
		"INSERT INTO payment (%s) VALUES (%s) ON CONFLICT(id) DO UPDATE SET %s",
		strings.Join(fields, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(updates, ", "),
	)

	_, err = tx.ExecContext(ctx, query,
		entity.ID,
		entity.PlayerID,
		entity.Period,
		entity.Amount,
		nullable(entity.Method),
		entity.State,
		nullable(entity.ConfirmedBy),
		timeValue(entity.ConfirmedAt),
		nullable(entity.ValidatedBy),
		timeValue(entity.ValidatedAt),
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// ListByPlayerID retrieves all payments for a player, ordered by period descending.
// PRE: playerID is non-empty
// POST: Returns records for the given player, newest period first
func (s *SQLiteStore) ListByPlayerID(ctx context.Context, playerID string) ([]domain.Payment, error) {
	query := "SELECT " + paymentColumns + " FROM payment WHERE player_id = ? ORDER BY period DESC"

	rows, err := s.db.QueryContext(ctx, query, playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPayments(rows)
}

// ListAll retrieves every payment row across all players, ordered by period
// descending then approval state. Admin review surface only.
// POST: Returns all reported payments
func (s *SQLiteStore) ListAll(ctx context.Context) ([]domain.Payment, error) {
	query := "SELECT " + paymentColumns + " FROM payment ORDER BY period DESC, state"

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPayments(rows)
}

// collectPayments scans all rows into Payment entities.
func collectPayments(rows *sql.Rows) ([]domain.Payment, error) {
	var results []domain.Payment
	for rows.Next() {
		entity, err := scanPayment(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// scanPayment extracts a Payment from a row scanner function.
func scanPayment(scan func(dest ...interface{}) error) (domain.Payment, error) {
	var entity domain.Payment
	var method, confirmedBy, confirmedAt, validatedBy, validatedAt sql.NullString
	err := scan(
		&entity.ID,
		&entity.PlayerID,
		&entity.Period,
		&entity.Amount,
		&method,
		&entity.State,
		&confirmedBy,
		&confirmedAt,
		&validatedBy,
		&validatedAt,
	)
	if err != nil {
		return domain.Payment{}, err
	}
	entity.Method = method.String
	entity.ConfirmedBy = confirmedBy.String
	entity.ValidatedBy = validatedBy.String
	if confirmedAt.Valid && confirmedAt.String != "" {
		entity.ConfirmedAt, _ = storage.ParseStoredTime(confirmedAt.String)
	}
	if validatedAt.Valid && validatedAt.String != "" {
		entity.ValidatedAt, _ = storage.ParseStoredTime(validatedAt.String)
	}
	return entity, nil
}

// nullable maps "" to NULL for optional text columns.
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// timeValue maps the zero time to NULL, RFC3339 otherwise.
func timeValue(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t.Format(time.RFC3339Nano)
}
