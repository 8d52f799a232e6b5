package models

import (
	"strings"
	"time"
)

// User represents a user account in the system.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	PhoneNumber  string    `json:"phoneNumber"`
	Active       bool      `json:"active"`
	PasswordHash string    `json:"-"` // Never expose this to the client
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// IsZero reports whether the user carries no data at all. The repository
// rejects zero users on save.
func (u User) IsZero() bool {
	return u == User{}
}

// NormalizeEmail trims and lower-cases an email address. All email equality
// and uniqueness checks compare this form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
