// Package entity contains the core business objects of the catalog,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is a registered identity. EmailAddress is unique and always stored normalised.
type User struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	EmailAddress string
	PasswordHash string // bcrypt hash, never serialised
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName returns "First Last".
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// NormalizeEmail lower-cases and trims an address so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
