package ports

import (
	"context"

	"github.com/jsamuelsen11/member-roster/internal/domain/member"
)

// MemberService defines the service port for roster operations.
// Implemented by the application layer; called by inbound adapters (HTTP
// handlers, CLI). Every operation reloads the roster from the store.
type MemberService interface {
	// List returns all members in stored order.
	List(ctx context.Context) ([]member.Member, error)

	// Get returns the member whose identifier equals id.
	// Returns domain.ErrNotFound if no such member exists.
	Get(ctx context.Context, id string) (*member.Member, error)

	// Create validates name against the roster and appends it.
	// Returns a *domain.ValidationError if the name is empty or taken.
	Create(ctx context.Context, name string) (*member.Member, error)

	// Update renames the member identified by id to name.
	// Returns domain.ErrNotFound if id does not exist, or a
	// *domain.ValidationError if name is empty or used by another member.
	Update(ctx context.Context, id, name string) (*member.Member, error)

	// Delete removes every entry whose identifier equals id and returns
	// how many were removed. Removing an unknown id is not an error.
	Delete(ctx context.Context, id string) (int, error)
}
