package dto

import "github.com/jsamuelsen11/member-roster/internal/domain"

const msgNameRequired = "name is required"

// MemberRequest represents the JSON body for creating or renaming a member.
// Name is a pointer so that a missing field can be told apart from an empty
// string; the empty string is left to the domain validator.
type MemberRequest struct {
	Name *string `json:"name"`
}

// Validate checks that the name field is present.
// Returns a *domain.ValidationError if it is missing.
func (r *MemberRequest) Validate() error {
	if r.Name == nil {
		return domain.NewValidationError(msgNameRequired)
	}
	return nil
}
