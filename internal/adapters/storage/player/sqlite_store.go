package player

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"clubvoley/internal/adapters/storage"
	domain "clubvoley/internal/domain/player"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new PlayerStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const playerColumns = "id, account_id, name, surname, phone, position, category"

// GetByID retrieves a Player by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Player, error) {
	query := "SELECT " + playerColumns + " FROM player WHERE id = ?"
	row := s.db.QueryRowContext(ctx, query, id)

	entity, err := scanPlayer(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Player{}, fmt.Errorf("player not found: %w", err)
	}
	return entity, err
}

// GetByAccountID retrieves the Player linked to an account. The link is 1:1,
// enforced by the unique constraint on account_id.
// PRE: accountID is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByAccountID(ctx context.Context, accountID string) (domain.Player, error) {
	query := "SELECT " + playerColumns + " FROM player WHERE account_id = ?"
	row := s.db.QueryRowContext(ctx, query, accountID)

	entity, err := scanPlayer(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Player{}, fmt.Errorf("player not found: %w", err)
	}
	return entity, err
}

// Save persists a Player to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Player) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	fields := []string{"id", "account_id", "name", "surname", "phone", "position", "category"}
	placeholders := []string{"?", "?", "?", "?", "?", "?", "?"}
	updates := []string{
		"name=excluded.name",
		"surname=excluded.surname",
		"phone=excluded.phone",
		"position=excluded.position",
		"category=excluded.category",
	}

	query := fmt.Sprintf(
		"INSERT INTO player (%s) VALUES (%s) ON CONFLICT(id) DO UPDATE SET %s",
		strings.Join(fields, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(updates, ", "),
	)

	_, err = tx.ExecContext(ctx, query,
		entity.ID,
		entity.AccountID,
		entity.Name,
		entity.Surname,
		nullable(entity.Phone),
		nullable(entity.Position),
		nullable(entity.Category),
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

// List retrieves Players based on the filter, ordered by surname then name.
// PRE: filter has valid parameters
// POST: Returns matching entities
func (s *SQLiteStore) List(ctx context.Context, filter ListFilter) ([]domain.Player, error) {
	var queryBuilder strings.Builder
	var args []interface{}

	queryBuilder.WriteString("SELECT " + playerColumns + " FROM player")

	if filter.Category != "" {
		queryBuilder.WriteString(" WHERE category = ?")
		args = append(args, filter.Category)
	}

	queryBuilder.WriteString(" ORDER BY surname, name LIMIT ? OFFSET ?")
	args = append(args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Player
	for rows.Next() {
		entity, err := scanPlayer(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// Count returns the total number of Players.
// POST: Returns count of all entities
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM player").Scan(&count)
	return count, err
}

// scanPlayer extracts a Player from a row scanner function.
func scanPlayer(scan func(dest ...interface{}) error) (domain.Player, error) {
	var entity domain.Player
	var phone, position, category sql.NullString
	err := scan(
		&entity.ID,
		&entity.AccountID,
		&entity.Name,
		&entity.Surname,
		&phone,
		&position,
		&category,
	)
	if err != nil {
		return domain.Player{}, err
	}
	entity.Phone = phone.String
	entity.Position = position.String
	entity.Category = category.String
	return entity, nil
}

// nullable maps "" to NULL for optional text columns.
func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
