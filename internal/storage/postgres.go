package storage

import (
	"context"
	"errors"

	"github.com/justestif/go-life-cheatkey/internal/db"
)

// Postgres stores values in the kv_entries table.
type Postgres struct {
	kv *db.KVRepository
}

// NewPostgres wraps a key/value repository.
func NewPostgres(kv *db.KVRepository) *Postgres {
	return &Postgres{kv: kv}
}

// Load returns the document under key, or nil if absent.
func (p *Postgres) Load(ctx context.Context, key string) ([]byte, error) {
	entry, err := p.kv.Get(ctx, key)
	if errors.Is(err, db.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entry.Value, nil
}

// Save upserts the document under key.
func (p *Postgres) Save(ctx context.Context, key string, data []byte) error {
	return p.kv.Put(ctx, key, data)
}
