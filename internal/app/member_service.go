// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/member-roster/internal/domain"
	"github.com/jsamuelsen11/member-roster/internal/domain/member"
	"github.com/jsamuelsen11/member-roster/internal/ports"
)

// Compile-time check that MemberService implements ports.MemberService.
var _ ports.MemberService = (*MemberService)(nil)

// MemberService implements ports.MemberService on top of a MemberStore.
// Every operation reloads the full roster; there is no cache and no locking,
// so concurrent writers race and the last ReplaceAll wins.
type MemberService struct {
	store  ports.MemberStore
	logger *slog.Logger
}

// NewMemberService creates a MemberService. A nil logger discards output.
func NewMemberService(store ports.MemberStore, logger *slog.Logger) *MemberService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &MemberService{
		store:  store,
		logger: logger,
	}
}

// List returns every member in stored order.
func (s *MemberService) List(ctx context.Context) ([]member.Member, error) {
	s.logger.InfoContext(ctx, "listing members")

	members, err := s.load(ctx, "List")
	if err != nil {
		return nil, err
	}
	return members, nil
}

// Get returns the first member whose identifier equals id.
func (s *MemberService) Get(ctx context.Context, id string) (*member.Member, error) {
	s.logger.InfoContext(ctx, "fetching member", slog.String("member_id", id))

	members, err := s.load(ctx, "Get")
	if err != nil {
		return nil, err
	}

	m, ok := member.Find(members, id)
	if !ok {
		return nil, fmt.Errorf("member %q: %w", id, domain.ErrNotFound)
	}
	return &m, nil
}

// Create validates name against the current roster and appends it.
func (s *MemberService) Create(ctx context.Context, name string) (*member.Member, error) {
	s.logger.InfoContext(ctx, "creating member", slog.String("name", name))

	members, err := s.load(ctx, "Create")
	if err != nil {
		return nil, err
	}

	candidate := member.New(name)
	if err := member.NewValidator(members).Validate(candidate); err != nil {
		return nil, err
	}

	if err := s.store.Append(ctx, candidate.Name); err != nil {
		s.logger.ErrorContext(ctx, "failed to append member",
			slog.String("operation", "Create"),
			slog.String("name", name),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("appending member: %w", err)
	}

	return &candidate, nil
}

// Update renames the member identified by id. The uniqueness check ignores
// the member's own prior name, so saving an unchanged name succeeds. Only the
// first entry holding id is rewritten.
func (s *MemberService) Update(ctx context.Context, id, name string) (*member.Member, error) {
	s.logger.InfoContext(ctx, "updating member",
		slog.String("member_id", id),
		slog.String("name", name),
	)

	members, err := s.load(ctx, "Update")
	if err != nil {
		return nil, err
	}

	pos := indexOf(members, id)
	if pos < 0 {
		return nil, fmt.Errorf("member %q: %w", id, domain.ErrNotFound)
	}

	candidate := member.New(name)
	if err := member.NewValidator(members).Excluding(id).Validate(candidate); err != nil {
		return nil, err
	}

	names := namesOf(members)
	names[pos] = candidate.Name

	if err := s.store.ReplaceAll(ctx, names); err != nil {
		s.logger.ErrorContext(ctx, "failed to rewrite members",
			slog.String("operation", "Update"),
			slog.String("member_id", id),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("rewriting members: %w", err)
	}

	return &candidate, nil
}

// Delete removes every entry whose identifier equals id and reports how many
// were removed. The roster is rewritten even when nothing matched.
func (s *MemberService) Delete(ctx context.Context, id string) (int, error) {
	s.logger.InfoContext(ctx, "deleting member", slog.String("member_id", id))

	members, err := s.load(ctx, "Delete")
	if err != nil {
		return 0, err
	}

	kept := make([]string, 0, len(members))
	for _, m := range members {
		if m.ID() != id {
			kept = append(kept, m.Name)
		}
	}
	removed := len(members) - len(kept)

	if err := s.store.ReplaceAll(ctx, kept); err != nil {
		s.logger.ErrorContext(ctx, "failed to rewrite members",
			slog.String("operation", "Delete"),
			slog.String("member_id", id),
			slog.Any("error", err),
		)
		return 0, fmt.Errorf("rewriting members: %w", err)
	}

	return removed, nil
}

func (s *MemberService) load(ctx context.Context, op string) ([]member.Member, error) {
	stored, err := s.store.LoadAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load members",
			slog.String("operation", op),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("loading members: %w", err)
	}
	return member.FromNames(stored), nil
}

func indexOf(members []member.Member, id string) int {
	for i, m := range members {
		if m.ID() == id {
			return i
		}
	}
	return -1
}

func namesOf(members []member.Member) []string {
	out := make([]string, len(members))
	for i, m := range members {
		out[i] = m.Name
	}
	return out
}
