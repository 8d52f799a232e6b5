package mapper

import (
	"testing"
	"time"

	"github.com/renefm/user-hub-be/internal/dto"
	"github.com/renefm/user-hub-be/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestToEntityDefaults(t *testing.T) {
	user := ToEntity(dto.CreateUserRequest{
		Email:       "  X@Y.com ",
		Password:    "secret",
		FirstName:   "John",
		LastName:    "Doe",
		PhoneNumber: "+1234567890",
	})

	assert.Equal(t, int64(0), user.ID, "id is left for the store")
	assert.Equal(t, "x@y.com", user.Email, "email is normalized")
	assert.True(t, user.Active, "new users start active")
	assert.True(t, user.CreatedAt.IsZero())
	assert.True(t, user.UpdatedAt.IsZero())
	assert.NotEqual(t, "secret", user.PasswordHash)
	assert.NotEmpty(t, user.PasswordHash)
}

func TestToResponseOmitsPasswordHash(t *testing.T) {
	now := time.Now()
	resp := ToResponse(models.User{
		ID:           3,
		Email:        "x@y.com",
		FirstName:    "John",
		LastName:     "Doe",
		PhoneNumber:  "+1234567890",
		Active:       true,
		PasswordHash: "hashed-secret",
		CreatedAt:    now,
		UpdatedAt:    now,
	})

	assert.Equal(t, int64(3), resp.ID)
	assert.Equal(t, "x@y.com", resp.Email)
	assert.Equal(t, now, resp.CreatedAt)
	// UserResponse has no password field at all; nothing else to check here.
}

func TestApplyUpdateOnlyTouchesProvidedFields(t *testing.T) {
	user := models.User{
		ID:           3,
		Email:        "x@y.com",
		FirstName:    "John",
		LastName:     "Doe",
		PhoneNumber:  "+1234567890",
		Active:       true,
		PasswordHash: "hashed-old",
	}

	first := "Jane"
	active := false
	ApplyUpdate(dto.UpdateUserRequest{FirstName: &first, Active: &active}, &user)

	assert.Equal(t, "Jane", user.FirstName)
	assert.False(t, user.Active)
	assert.Equal(t, "Doe", user.LastName)
	assert.Equal(t, "x@y.com", user.Email)
	assert.Equal(t, "hashed-old", user.PasswordHash)

	email := " NEW@Y.com "
	ApplyUpdate(dto.UpdateUserRequest{Email: &email}, &user)
	assert.Equal(t, "new@y.com", user.Email)
}

func TestHashPassword(t *testing.T) {
	assert.Empty(t, HashPassword(""))
	assert.NotEqual(t, HashPassword("a"), "a")
	assert.Equal(t, HashPassword("a"), HashPassword("a"))
}
