package localstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/jmoiron/sqlx"
)

// Storage keys used by the local single-user mode. Kept stable so an existing
// data file survives upgrades.
const (
	QuotesKey = "quotes_app_quotes"
	UsersKey  = "quotes_app_users"
)

// Store is a JSON key-value blob store on top of a single SQLite table. It is
// the durable replacement for the browser localStorage the app started with:
// whole collections are read and written as one value per key, bulk-replace
// semantics, single writer.
type Store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// GetItem unmarshals the blob stored under key into dest. Returns false with
// a nil error when the key does not exist; dest is left untouched then.
func (s *Store) GetItem(ctx context.Context, key string, dest any) (bool, error) {
	var raw string
	err := s.db.GetContext(ctx, &raw, `SELECT value FROM app_storage WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetItem stores value under key as JSON, replacing any previous blob.
func (s *Store) SetItem(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO app_storage(key, value) VALUES(?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, string(raw))
	return err
}

func (s *Store) RemoveItem(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM app_storage WHERE key = ?`, key)
	return err
}

func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM app_storage`)
	return err
}

func (s *Store) Has(ctx context.Context, key string) (bool, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM app_storage WHERE key = ?`, key); err != nil {
		return false, err
	}
	return n > 0, nil
}
