// Package mapper translates between wire shapes and the user entity.
package mapper

import (
	"github.com/renefm/user-hub-be/internal/dto"
	"github.com/renefm/user-hub-be/internal/models"
)

// ToEntity builds a new user from a create request. The id and timestamps
// are left unset for the repository to assign; new users start active.
func ToEntity(req dto.CreateUserRequest) models.User {
	return models.User{
		Email:        models.NormalizeEmail(req.Email),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PhoneNumber:  req.PhoneNumber,
		Active:       true,
		PasswordHash: HashPassword(req.Password),
	}
}

// ToResponse projects a user into its outward shape, dropping the
// password hash.
func ToResponse(user models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		PhoneNumber: user.PhoneNumber,
		Active:      user.Active,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

// ToResponses projects a slice of users.
func ToResponses(users []models.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, ToResponse(user))
	}
	return responses
}

// ApplyUpdate copies the non-nil fields of an update request onto the
// user. The id and CreatedAt are never touched; UpdatedAt is left for the
// repository to refresh.
func ApplyUpdate(req dto.UpdateUserRequest, user *models.User) {
	if req.Email != nil {
		user.Email = models.NormalizeEmail(*req.Email)
	}
	if req.Password != nil {
		user.PasswordHash = HashPassword(*req.Password)
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}
	if req.Active != nil {
		user.Active = *req.Active
	}
}

// HashPassword produces the stored form of a password. This is a
// placeholder scheme, not a real hash; swapping in a proper KDF is a
// deployment concern outside this service's scope.
func HashPassword(password string) string {
	if password == "" {
		return ""
	}
	return "hashed-" + password
}
