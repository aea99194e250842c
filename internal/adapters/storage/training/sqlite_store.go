package training

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"clubvoley/internal/adapters/storage"
	domain "clubvoley/internal/domain/training"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new TrainingStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const sessionColumns = "id, date, time_slot, description, created_at"

// GetByID retrieves a Session by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Session, error) {
	query := "SELECT " + sessionColumns + " FROM training_session WHERE id = ?"
	row := s.db.QueryRowContext(ctx, query, id)

	entity, err := scanSession(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Session{}, fmt.Errorf("training session not found: %w", err)
	}
	return entity, err
}

// Save persists a Session to the database. Pure insert — sessions are
// immutable once created.
// PRE: entity has been validated
// POST: Entity is persisted
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Session) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := "INSERT INTO training_session (id, date, time_slot, description, created_at) VALUES (?, ?, ?, ?, ?)"

	var description interface{}
	if entity.Description != "" {
		description = entity.Description
	}

	_, err = tx.ExecContext(ctx, query,
		entity.ID,
		entity.Date,
		entity.TimeSlot,
		description,
		entity.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// List retrieves all sessions, newest date first.
// POST: Returns all sessions ordered by date descending then time slot
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Session, error) {
	query := "SELECT " + sessionColumns + " FROM training_session ORDER BY date DESC, time_slot"

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectSessions(rows)
}

// ListUpcoming retrieves the most recent sessions for the dashboard.
// PRE: limit > 0
// POST: Returns at most limit sessions, newest first
func (s *SQLiteStore) ListUpcoming(ctx context.Context, limit int) ([]domain.Session, error) {
	query := "SELECT " + sessionColumns + " FROM training_session ORDER BY date DESC, time_slot LIMIT ?"

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectSessions(rows)
}

// collectSessions scans all rows into Session entities.
func collectSessions(rows *sql.Rows) ([]domain.Session, error) {
	var results []domain.Session
	for rows.Next() {
		entity, err := scanSession(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// scanSession extracts a Session from a row scanner function.
func scanSession(scan func(dest ...interface{}) error) (domain.Session, error) {
	var entity domain.Session
	var description sql.NullString
	var createdAt string
	err := scan(
		&entity.ID,
		&entity.Date,
		&entity.TimeSlot,
		&description,
		&createdAt,
	)
	if err != nil {
		return domain.Session{}, err
	}
	entity.Description = description.String
	entity.CreatedAt, _ = storage.ParseStoredTime(createdAt)
	return entity, nil
}
