// Package memory provides the in-memory UserRepository used by the
// backend. State lives for the process lifetime only.
package memory

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/renefm/user-hub-be/internal/apperr"
	"github.com/renefm/user-hub-be/internal/models"
	"github.com/renefm/user-hub-be/internal/repository"
	"github.com/rs/zerolog/log"
)

const defaultPageSize = 10

// UserRepository is a thread-safe in-memory store of users keyed by id.
// Users are stored and returned by value, so a caller can never mutate
// stored state without an explicit Save.
type UserRepository struct {
	mu     sync.RWMutex
	users  map[int64]models.User
	nextID int64
}

// NewUserRepository creates an empty in-memory user repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:  make(map[int64]models.User),
		nextID: 1,
	}
}

var _ repository.UserRepository = (*UserRepository)(nil)

// Save persists a user. Users with ID 0 are assigned the next id in the
// sequence and get both timestamps set; existing ids are overwritten with
// a refreshed UpdatedAt.
func (r *UserRepository) Save(user models.User) (models.User, error) {
	if user.IsZero() {
		return models.User{}, fmt.Errorf("%w: user is empty", apperr.ErrInvalidArgument)
	}

	now := time.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == 0 {
		user.ID = r.nextID
		r.nextID++
		user.CreatedAt = now
		user.UpdatedAt = now
		log.Debug().Int64("user_id", user.ID).Msg("Creating new user")
	} else {
		user.UpdatedAt = now
		log.Debug().Int64("user_id", user.ID).Msg("Updating existing user")
	}

	r.users[user.ID] = user
	return user, nil
}

// FindByID returns the user with the given id, if present.
func (r *UserRepository) FindByID(id int64) (models.User, bool) {
	if id <= 0 {
		return models.User{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	return user, ok
}

// FindByEmail scans for a user whose normalized email matches the
// normalized argument. Blank emails match nothing.
func (r *UserRepository) FindByEmail(email string) (models.User, bool) {
	normalized := models.NormalizeEmail(email)
	if normalized == "" {
		return models.User{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if models.NormalizeEmail(user.Email) == normalized {
			return user, true
		}
	}
	return models.User{}, false
}

// FindAll returns all users ordered by ascending id.
func (r *UserRepository) FindAll() []models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedLocked()
}

// FindPage returns at most limit users starting at offset, in ascending
// id order. Offsets below zero are clamped; limits below one fall back to
// the default page size.
func (r *UserRepository) FindPage(offset, limit int) []models.User {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultPageSize
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.sortedLocked()
	if offset >= len(all) {
		return []models.User{}
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end]
}

// DeleteByID removes the user with the given id and reports whether one
// was present.
func (r *UserRepository) DeleteByID(id int64) bool {
	if id <= 0 {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return false
	}
	delete(r.users, id)
	return true
}

// Delete removes the given user by its id.
func (r *UserRepository) Delete(user models.User) bool {
	if user.ID == 0 {
		return false
	}
	return r.DeleteByID(user.ID)
}

// ExistsByID reports whether a user with the given id is stored.
func (r *UserRepository) ExistsByID(id int64) bool {
	if id <= 0 {
		return false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.users[id]
	return ok
}

// ExistsByEmail reports whether a user with the given email is stored.
// The comparison is case-insensitive.
func (r *UserRepository) ExistsByEmail(email string) bool {
	_, ok := r.FindByEmail(email)
	return ok
}

// Count returns the number of stored users.
func (r *UserRepository) Count() int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.users))
}

// FindByNameContaining matches the term case-insensitively against first
// or last name. Blank terms match nothing.
func (r *UserRepository) FindByNameContaining(term string) []models.User {
	normalized := strings.ToLower(strings.TrimSpace(term))
	if normalized == "" {
		return []models.User{}
	}

	return r.filter(func(u models.User) bool {
		return strings.Contains(strings.ToLower(u.FirstName), normalized) ||
			strings.Contains(strings.ToLower(u.LastName), normalized)
	})
}

// FindByActiveTrue returns all active users.
func (r *UserRepository) FindByActiveTrue() []models.User {
	return r.filter(func(u models.User) bool { return u.Active })
}

// FindByActiveFalse returns all inactive users.
func (r *UserRepository) FindByActiveFalse() []models.User {
	return r.filter(func(u models.User) bool { return !u.Active })
}

// FindByCreatedAtAfter returns users created strictly after t. A zero t
// matches nothing.
func (r *UserRepository) FindByCreatedAtAfter(t time.Time) []models.User {
	if t.IsZero() {
		return []models.User{}
	}

	return r.filter(func(u models.User) bool { return u.CreatedAt.After(t) })
}

// DeleteAll clears the store and resets the id sequence.
func (r *UserRepository) DeleteAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	log.Warn().Int("count", len(r.users)).Msg("Deleting all users from store")
	r.users = make(map[int64]models.User)
	r.nextID = 1
}

// sortedLocked returns all users in ascending id order. Callers must hold
// at least a read lock.
func (r *UserRepository) sortedLocked() []models.User {
	result := make([]models.User, 0, len(r.users))
	for _, user := range r.users {
		result = append(result, user)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func (r *UserRepository) filter(keep func(models.User) bool) []models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []models.User{}
	for _, user := range r.sortedLocked() {
		if keep(user) {
			result = append(result, user)
		}
	}
	return result
}
