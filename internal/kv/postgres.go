package kv

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// PostgresStore keeps entries in a single cart_entries table:
//
//	CREATE TABLE cart_entries (
//	    key   TEXT PRIMARY KEY,
//	    value JSONB NOT NULL
//	);
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new instance of PostgresStore.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Keys(ctx context.Context) ([]string, error) {
	query := `SELECT key FROM cart_entries ORDER BY key`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

func (s *PostgresStore) GetMany(ctx context.Context, keys []string) (map[string]string, error) {
	if len(keys) == 0 {
		return map[string]string{}, nil
	}

	query := `SELECT key, value FROM cart_entries WHERE key = ANY($1)`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, query, keys)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := make(map[string]string, len(keys))
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		values[k] = v
	}
	return values, rows.Err()
}

func (s *PostgresStore) Get(ctx context.Context, key string) (string, error) {
	query := `SELECT value FROM cart_entries WHERE key = $1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var v string
	err := s.db.QueryRowContext(ctx, query, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	return v, err
}

func (s *PostgresStore) Set(ctx context.Context, key, value string) error {
	query := `INSERT INTO cart_entries (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := s.db.ExecContext(ctx, query, key, value)
	return err
}

func (s *PostgresStore) Merge(ctx context.Context, key, value string) error {
	// jsonb || merges one level deep with the right side winning, matching
	// mergeJSON for the other backends.
	query := `INSERT INTO cart_entries (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = cart_entries.value || EXCLUDED.value`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := s.db.ExecContext(ctx, query, key, value)
	return err
}
