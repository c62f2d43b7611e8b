package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Store keys. Each key holds one JSON document; the profile is a single
// object, the rest are flat arrays owned by their respective commands.
const (
	KeyProfile = "profile"
	KeyGoals   = "goals"
	KeyHabits  = "habits"
	KeyQuotes  = "quotes"
)

// Store is a named-key JSON blob store over SQLite. Writes replace the
// whole value under a key atomically; there are no partial updates.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Get returns the raw value under key, or nil if the key is absent.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM store WHERE key = ?`, key)

	var value string
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("store get %q: %w", key, err)
	}
	return []byte(value), nil
}

// Put overwrites the value under key in a single transaction.
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	err := WithTx(ctx, s.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO store (key, value, updated_at) VALUES (?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
		`, key, string(value), time.Now().UTC())
		return err
	})
	if err != nil {
		return fmt.Errorf("store put %q: %w", key, err)
	}
	return nil
}

// Delete removes the key. Deleting an absent key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM store WHERE key = ?`, key); err != nil {
		return fmt.Errorf("store delete %q: %w", key, err)
	}
	return nil
}
