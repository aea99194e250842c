package attendance

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"clubvoley/internal/adapters/storage"
	domain "clubvoley/internal/domain/attendance"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new AttendanceStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const attendanceColumns = "id, session_id, player_id, attended"

// GetBySessionAndPlayer retrieves the Attendance for one (session, player)
// pair. No row means the player has not attended; callers detect that with
// errors.Is(err, sql.ErrNoRows) and default to Attended=false.
// PRE: sessionID and playerID are non-empty
// POST: Returns the entity or a sql.ErrNoRows-wrapped error
func (s *SQLiteStore) GetBySessionAndPlayer(ctx context.Context, sessionID, playerID string) (domain.Attendance, error) {
	query := "SELECT " + attendanceColumns + " FROM attendance WHERE session_id = ? AND player_id = ?"
	row := s.db.QueryRowContext(ctx, query, sessionID, playerID)

	entity, err := scanAttendance(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Attendance{}, fmt.Errorf("attendance not found: %w", err)
	}
	return entity, err
}

// Upsert persists an Attendance keyed on (session_id, player_id). The unique
// constraint makes this a single atomic insert-or-update, so confirming twice
// collapses onto one row.
// PRE: entity has been validated
// POST: Exactly one row exists for (session_id, player_id)
func (s *SQLiteStore) Upsert(ctx context.Context, entity domain.Attendance) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	fields := []string{"id", "session_id", "player_id", "attended"}
	placeholders := []string{"?", "?", "?", "?"}
	updates := []string{"attended=excluded.attended"}

	query := fmt.Sprintf(
		"INSERT INTO attendance (%s) VALUES (%s) ON CONFLICT(session_id, player_id) DO UPDATE SET %s",
		strings.Join(fields, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(updates, ", "),
	)

	_, err = tx.ExecContext(ctx, query,
		entity.ID,
		entity.SessionID,
		entity.PlayerID,
		boolValue(entity.Attended),
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// ListByPlayerID retrieves all attendance records for a player.
// PRE: playerID is non-empty
// POST: Returns records for the given player
func (s *SQLiteStore) ListByPlayerID(ctx context.Context, playerID string) ([]domain.Attendance, error) {
	query := "SELECT " + attendanceColumns + " FROM attendance WHERE player_id = ?"

	rows, err := s.db.QueryContext(ctx, query, playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAttendances(rows)
}

// ListBySessionID retrieves all attendance records for a session.
// PRE: sessionID is non-empty
// POST: Returns records for the given session
func (s *SQLiteStore) ListBySessionID(ctx context.Context, sessionID string) ([]domain.Attendance, error) {
	query := "SELECT " + attendanceColumns + " FROM attendance WHERE session_id = ?"

	rows, err := s.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAttendances(rows)
}

// collectAttendances scans all rows into Attendance entities.
func collectAttendances(rows *sql.Rows) ([]domain.Attendance, error) {
	var results []domain.Attendance
	for rows.Next() {
		entity, err := scanAttendance(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// scanAttendance extracts an Attendance from a row scanner function.
func scanAttendance(scan func(dest ...interface{}) error) (domain.Attendance, error) {
	var entity domain.Attendance
	var attended int
	err := scan(
		&entity.ID,
		&entity.SessionID,
		&entity.PlayerID,
		&attended,
	)
	if err != nil {
		return domain.Attendance{}, err
	}
	entity.Attended = attended != 0
	return entity, nil
}

// boolValue maps a bool to the 0/1 integer encoding used in the schema.
func boolValue(b bool) int {
	if b {
		return 1
	}
	return 0
}
