// Package policy holds the authorization rules of the catalog.
package policy

import (
	"catalog/internal/domain/entity"

	"github.com/google/uuid"
)

// Decision is the outcome of an authorization check.
type Decision int

const (
	Denied Decision = iota
	Allowed
)

func (d Decision) String() string {
	if d == Allowed {
		return "allowed"
	}

	return "denied"
}

// Authorize decides whether identityID may mutate course.
// Ownership is the only rule: there is no ACL and no admin override.
func Authorize(identityID uuid.UUID, course *entity.Course) Decision {
	if course == nil || identityID == uuid.Nil {
		return Denied
	}
	if course.OwnerID == identityID {
		return Allowed
	}

	return Denied
}
