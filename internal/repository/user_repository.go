// Package repository defines the storage contract for user records.
package repository

import (
	"time"

	"github.com/renefm/user-hub-be/internal/models"
)

// UserRepository defines CRUD and query operations over stored users.
// Lookups signal absence with a false second return value; they never
// return an error for a missing record. Users flow in and out by value,
// so callers can mutate results freely without touching stored state.
type UserRepository interface {
	// Save persists a user. A user with ID 0 is created: the repository
	// assigns the next id and sets both timestamps. A user with a set ID
	// is overwritten in place with a refreshed UpdatedAt. The stored copy
	// is returned.
	Save(user models.User) (models.User, error)

	FindByID(id int64) (models.User, bool)
	FindByEmail(email string) (models.User, bool)

	// FindAll returns every user ordered by ascending id.
	FindAll() []models.User
	// FindPage returns the ascending-id slice starting at offset, at most
	// limit users. Negative offsets are clamped to 0; non-positive limits
	// fall back to 10.
	FindPage(offset, limit int) []models.User

	// DeleteByID removes the user and reports whether one was present.
	DeleteByID(id int64) bool
	// Delete removes the given user by its id.
	Delete(user models.User) bool

	ExistsByID(id int64) bool
	ExistsByEmail(email string) bool
	Count() int64

	// FindByNameContaining matches the term case-insensitively against
	// first or last name. A blank term yields no results.
	FindByNameContaining(term string) []models.User
	FindByActiveTrue() []models.User
	FindByActiveFalse() []models.User
	// FindByCreatedAtAfter returns users created strictly after t. A zero
	// t yields no results.
	FindByCreatedAtAfter(t time.Time) []models.User

	// DeleteAll clears the store and resets the id sequence.
	DeleteAll()
}
