package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

type AppStateStore struct {
	db *sqlx.DB
}

func NewAppStateStore(db *sqlx.DB) *AppStateStore {
	return &AppStateStore{db: db}
}

// Get returns the stored value for key, or "" when the key has never been
// set.
func (s *AppStateStore) Get(ctx context.Context, key string) (string, error) {
	query := `SELECT value FROM app_state WHERE key = $1`

	var value string
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &value, query, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (s *AppStateStore) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO app_state (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, key, value)
	return err
}
