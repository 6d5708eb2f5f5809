// Package storage selects the configured member store backend and wraps it
// with tracing and metrics.
//
// Usage:
//
//	backend, err := storage.Open(ctx, cfg.Store)
//	defer backend.Close()
//	store := storage.NewInstrumented(backend, cfg.Store.Driver, metrics)
package storage

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/member-roster/internal/adapters/storage/flatfile"
	"github.com/jsamuelsen11/member-roster/internal/adapters/storage/postgres"
	"github.com/jsamuelsen11/member-roster/internal/platform/config"
	"github.com/jsamuelsen11/member-roster/internal/ports"
)

// Backend is a member store that can report its health and release its
// resources.
type Backend interface {
	ports.MemberStore
	ports.HealthChecker
	Close() error
}

// Open returns the backend named by cfg.Driver. The postgres driver connects
// eagerly and fails if the database is unreachable; the file driver touches
// nothing until the first operation.
func Open(ctx context.Context, cfg config.StoreConfig) (Backend, error) {
	switch cfg.Driver {
	case config.StoreDriverFile:
		return flatfile.New(cfg.Path), nil
	case config.StoreDriverPostgres:
		s, err := postgres.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("opening postgres store: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Driver)
	}
}
