package ports

import "context"

// MemberStore defines the storage port for the persisted roster.
// Implemented by the storage adapters (flat file, Postgres); called by the
// application layer. It is the only component that touches storage.
// Names are stored in insertion order; the store does not enforce uniqueness.
type MemberStore interface {
	// LoadAll returns every persisted name in stored order.
	// Returns an empty slice, not an error, if nothing has been stored yet.
	LoadAll(ctx context.Context) ([]string, error)

	// Append adds name to the end of the stored list.
	Append(ctx context.Context, name string) error

	// ReplaceAll overwrites the stored list with names.
	ReplaceAll(ctx context.Context, names []string) error
}
