// Package storage provides the backends behind the habit persistence port.
package storage

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/justestif/go-life-cheatkey/internal/config"
	"github.com/justestif/go-life-cheatkey/internal/db"
	"github.com/justestif/go-life-cheatkey/internal/habit"
)

// Backend is an opened store plus the resources it holds.
type Backend struct {
	Store habit.Store

	// DB is set for the postgres backend so callers can reuse the pool.
	DB *db.DB

	close func() error
}

// Close releases the backend's connections.
func (b *Backend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// Open connects the backend selected by cfg.Storage.Backend.
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Backend, error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		logger.Info("using in-memory storage")
		return &Backend{Store: NewMemory()}, nil

	case config.BackendFile:
		fs, err := NewFile(cfg.Storage.Dir)
		if err != nil {
			return nil, err
		}
		logger.Info("using file storage", zap.String("dir", cfg.Storage.Dir))
		return &Backend{Store: fs}, nil

	case config.BackendRedis:
		rs, err := NewRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		logger.Info("using redis storage", zap.String("addr", cfg.Redis.Addr), zap.Int("db", cfg.Redis.DB))
		return &Backend{Store: rs, close: rs.Close}, nil

	case config.BackendPostgres:
		database, err := db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("connecting to database: %w", err)
		}
		if err := database.Migrate(ctx); err != nil {
			database.Close()
			return nil, fmt.Errorf("migrating database: %w", err)
		}
		logger.Info("using postgres storage")
		return &Backend{
			Store: NewPostgres(database.KV()),
			DB:    database,
			close: func() error {
				database.Close()
				return nil
			},
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
