package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// KVRepository stores JSON documents by key.
type KVRepository struct {
	pool *pgxpool.Pool
}

// Get retrieves the document stored under key.
func (r *KVRepository) Get(ctx context.Context, key string) (*KVEntry, error) {
	query := `
		SELECT key, value, updated_at
		FROM kv_entries
		WHERE key = $1
	`
	var entry KVEntry
	err := r.pool.QueryRow(ctx, query, key).Scan(
		&entry.Key,
		&entry.Value,
		&entry.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying kv entry: %w", err)
	}
	return &entry, nil
}

// Put inserts or replaces the document stored under key.
func (r *KVRepository) Put(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_entries (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = NOW()
	`
	_, err := r.pool.Exec(ctx, query, key, value)
	if err != nil {
		return fmt.Errorf("upserting kv entry: %w", err)
	}
	return nil
}
