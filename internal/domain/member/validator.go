package member

import (
	"fmt"

	"github.com/jsamuelsen11/member-roster/internal/domain"
)

// MsgNameRequired is reported when a candidate has an empty name.
const MsgNameRequired = "You need to enter a name"

// DuplicateMessage returns the message reported when name is already taken.
func DuplicateMessage(name string) string {
	return fmt.Sprintf("%s is already included in our list.", name)
}

// Validator checks a candidate member against the collection it is about to
// join. Rules are evaluated in order and the first failing rule ends the pass,
// so an invalid result always carries exactly one message.
type Validator struct {
	existing []Member
	prior    string
	exclude  bool
}

// NewValidator returns a Validator for the given collection.
func NewValidator(existing []Member) *Validator {
	return &Validator{existing: existing}
}

// Excluding returns a copy of the validator that ignores entries whose
// identifier equals id when checking for duplicates. Updates pass the
// member's prior identifier so that saving an unchanged name is accepted.
func (v *Validator) Excluding(id string) *Validator {
	return &Validator{existing: v.existing, prior: id, exclude: true}
}

// Validate returns nil if candidate may be committed, or a
// *domain.ValidationError describing the first rule it breaks.
func (v *Validator) Validate(candidate Member) error {
	if candidate.Name == "" {
		return domain.NewValidationError(MsgNameRequired)
	}
	if v.contains(candidate.Name) {
		return domain.NewValidationError(DuplicateMessage(candidate.Name))
	}
	return nil
}

func (v *Validator) contains(name string) bool {
	for _, m := range v.existing {
		if v.exclude && m.ID() == v.prior {
			continue
		}
		if m.Name == name {
			return true
		}
	}
	return false
}
