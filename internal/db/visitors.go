package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// VisitorRepository handles visitor database operations.
type VisitorRepository struct {
	pool *pgxpool.Pool
}

// Touch records a visit, creating the visitor on first sight.
func (r *VisitorRepository) Touch(ctx context.Context, id string) error {
	query := `
		INSERT INTO visitors (id, first_seen, last_seen)
		VALUES ($1, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE SET last_seen = NOW()
	`
	_, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("touching visitor: %w", err)
	}
	return nil
}

// CountActiveSince returns how many visitors were seen at or after since.
func (r *VisitorRepository) CountActiveSince(ctx context.Context, since time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM visitors WHERE last_seen >= $1`
	var n int
	if err := r.pool.QueryRow(ctx, query, since).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting visitors: %w", err)
	}
	return n, nil
}
