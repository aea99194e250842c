package storage

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// migration is one schema step. Migrations run in order inside a transaction
// and must be safe to re-run on a database created before version tracking
// existed (hence IF NOT EXISTS in the baseline).
type migration struct {
	version int
	name    string
	apply   func(tx *sql.Tx) error
}

var migrations = []migration{
	{version: 1, name: "baseline club schema", apply: migrateBaseline},
}

// LatestSchemaVersion returns the highest known migration version.
func LatestSchemaVersion() int {
	return migrations[len(migrations)-1].version
}

// SchemaVersion reads the current schema version, returning 0 when the
// database has never been migrated.
// PRE: db is a valid database connection
// POST: Returns the recorded version or 0
func SchemaVersion(db *sql.DB) (int, error) {
	var exists int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&exists)
	if err != nil {
		return 0, fmt.Errorf("failed to check schema_version table: %w", err)
	}
	if exists == 0 {
		return 0, nil
	}
	var version sql.NullInt64
	err = db.QueryRow("SELECT MAX(version) FROM schema_version").Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	if !version.Valid {
		return 0, nil
	}
	return int(version.Int64), nil
}

// MigrateDB brings the database schema to the latest version.
// PRE: db is a valid database connection; dbPath is used for logging only
// POST: All pending migrations applied, version recorded; no-op when current
func MigrateDB(db *sql.DB, dbPath string) error {
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	current, err := SchemaVersion(db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin migration %d: %w", m.version, err)
		}
		if err := m.apply(tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", m.version, m.name, err)
		}
		if _, err := tx.Exec("CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL, applied_at TEXT NOT NULL DEFAULT (datetime('now')))"); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to create schema_version: %w", err)
		}
		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", m.version); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record version %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.version, err)
		}
		slog.Info("migration_applied", "version", m.version, "name", m.name, "db", dbPath)
	}

	return nil
}

// migrateBaseline creates the club schema. The composite unique constraints
// on payment(player_id, period) and attendance(session_id, player_id) are the
// data-layer guarantee behind the upsert semantics: two near-simultaneous
// reports resolve onto the same row, never two rows.
func migrateBaseline(tx *sql.Tx) error {
	schema := `
	CREATE TABLE IF NOT EXISTS account (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL,
		created_at TEXT NOT NULL,
		failed_logins INTEGER NOT NULL DEFAULT 0,
		locked_until TEXT
	);

	CREATE TABLE IF NOT EXISTS player (
		id TEXT PRIMARY KEY,
		account_id TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		surname TEXT NOT NULL,
		phone TEXT,
		position TEXT,
		category TEXT,
		FOREIGN KEY (account_id) REFERENCES account(id)
	);

	CREATE TABLE IF NOT EXISTS payment (
		id TEXT PRIMARY KEY,
		player_id TEXT NOT NULL,
		period TEXT NOT NULL,
		amount INTEGER NOT NULL DEFAULT 0,
		method TEXT,
		state TEXT NOT NULL,
		confirmed_by TEXT,
		confirmed_at TEXT,
		validated_by TEXT,
		validated_at TEXT,
		UNIQUE(player_id, period),
		FOREIGN KEY (player_id) REFERENCES player(id)
	);

	CREATE TABLE IF NOT EXISTS training_session (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL,
		time_slot TEXT NOT NULL,
		description TEXT,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS attendance (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		player_id TEXT NOT NULL,
		attended INTEGER NOT NULL DEFAULT 0,
		UNIQUE(session_id, player_id),
		FOREIGN KEY (session_id) REFERENCES training_session(id),
		FOREIGN KEY (player_id) REFERENCES player(id)
	);
	`
	if _, err := tx.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
