// Package member defines the roster entity and the rules a candidate must pass
// before it is committed to the store.
package member

// Member is a single roster entry. The name doubles as the identifier; there
// is no surrogate key, so renaming a member changes its identity.
type Member struct {
	Name string
}

// New returns a Member with the given name.
func New(name string) Member {
	return Member{Name: name}
}

// ID returns the member's identifier, which is its name.
func (m Member) ID() string {
	return m.Name
}

// FromNames builds members from persisted names, preserving order.
func FromNames(names []string) []Member {
	members := make([]Member, len(names))
	for i, name := range names {
		members[i] = New(name)
	}
	return members
}

// Find returns the first member whose identifier equals id.
func Find(members []Member, id string) (Member, bool) {
	for _, m := range members {
		if m.ID() == id {
			return m, true
		}
	}
	return Member{}, false
}
