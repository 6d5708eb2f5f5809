// Package postgres implements the member store on a single Postgres table.
// Row order is the insertion order recorded by a BIGSERIAL position column,
// so LoadAll returns names exactly as the flat-file store would.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/jsamuelsen11/member-roster/internal/domain"
	"github.com/jsamuelsen11/member-roster/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.MemberStore   = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

const (
	queryLoadAll = `SELECT name FROM members ORDER BY position`
	queryAppend  = `INSERT INTO members (name) VALUES ($1)`
	queryClear   = `DELETE FROM members`
)

// Store persists the roster in the members table.
type Store struct {
	db *sql.DB
}

// Open connects to Postgres through the pgx driver and verifies the
// connection. The caller owns the returned Store and must Close it.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}
	return New(db), nil
}

// New wraps an existing connection pool.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// LoadAll returns every stored name ordered by insertion.
func (s *Store) LoadAll(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, queryLoadAll)
	if err != nil {
		return nil, &domain.StorageError{Op: "query", Err: err}
	}
	defer func() { _ = rows.Close() }()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, &domain.StorageError{Op: "scan", Err: err}
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.StorageError{Op: "query", Err: err}
	}
	return names, nil
}

// Append inserts name after every existing row.
func (s *Store) Append(ctx context.Context, name string) error {
	if _, err := s.db.ExecContext(ctx, queryAppend, name); err != nil {
		return &domain.StorageError{Op: "insert", Err: err}
	}
	return nil
}

// ReplaceAll deletes every row and inserts names in order inside a single
// transaction.
func (s *Store) ReplaceAll(ctx context.Context, names []string) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &domain.StorageError{Op: "begin", Err: err}
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, queryClear); err != nil {
		return &domain.StorageError{Op: "delete", Err: err}
	}

	stmt, err := tx.PrepareContext(ctx, queryAppend)
	if err != nil {
		return &domain.StorageError{Op: "prepare", Err: err}
	}
	defer func() { _ = stmt.Close() }()

	for _, name := range names {
		if _, err = stmt.ExecContext(ctx, name); err != nil {
			return &domain.StorageError{Op: "insert", Err: err}
		}
	}

	if err = tx.Commit(); err != nil {
		return &domain.StorageError{Op: "commit", Err: err}
	}
	return nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "member-store"
}

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}
