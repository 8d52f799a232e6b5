package services

import (
	"fmt"
	"strings"

	"github.com/renefm/user-hub-be/internal/apperr"
	"github.com/renefm/user-hub-be/internal/dto"
	"github.com/renefm/user-hub-be/internal/mapper"
	"github.com/renefm/user-hub-be/internal/models"
	"github.com/renefm/user-hub-be/internal/repository"
	"github.com/rs/zerolog/log"
)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	CreateUser(req *dto.CreateUserRequest) (dto.UserResponse, error)
	FindByID(id int64) (dto.UserResponse, bool)
	FindByEmail(email string) (dto.UserResponse, bool)
	FindAll() []dto.UserResponse
	FindPage(page, size int) []dto.UserResponse
	UpdateUser(id int64, req *dto.UpdateUserRequest) (dto.UserResponse, error)
	DeleteUser(id int64) error
	ActivateUser(id int64) (dto.UserResponse, error)
	DeactivateUser(id int64) (dto.UserResponse, error)
	ExistsByID(id int64) bool
	ExistsByEmail(email string) bool
	CountUsers() int64
	SearchByName(term string) []dto.UserResponse
}

// UserService provides business logic for user management. It owns the
// cross-record rules (email uniqueness, required existence); the
// repository below it never enforces them.
type UserService struct {
	repo  repository.UserRepository
	audit AuditServiceProvider
}

// NewUserService creates a new UserService.
func NewUserService(repo repository.UserRepository, audit AuditServiceProvider) *UserService {
	return &UserService{repo: repo, audit: audit}
}

// CreateUser registers a new user after checking email uniqueness.
//
// The existence check and the save are two separate repository calls, so
// two concurrent creates with the same email can both pass the check.
// The uniqueness guard is best-effort, not transactional.
func (s *UserService) CreateUser(req *dto.CreateUserRequest) (dto.UserResponse, error) {
	if req == nil {
		return dto.UserResponse{}, fmt.Errorf("%w: request is required", apperr.ErrInvalidArgument)
	}
	if req.Email == "" {
		return dto.UserResponse{}, fmt.Errorf("%w: email is required", apperr.ErrInvalidArgument)
	}
	if req.Password == "" {
		return dto.UserResponse{}, fmt.Errorf("%w: password is required", apperr.ErrInvalidArgument)
	}

	if s.repo.ExistsByEmail(req.Email) {
		return dto.UserResponse{}, fmt.Errorf("%w: %s", apperr.ErrDuplicateEmail, req.Email)
	}

	saved, err := s.repo.Save(mapper.ToEntity(*req))
	if err != nil {
		return dto.UserResponse{}, err
	}

	log.Info().Int64("user_id", saved.ID).Str("email", saved.Email).Msg("User created")
	s.audit.Record("user.created", "info", "User created: "+saved.Email, &saved.ID)
	return mapper.ToResponse(saved), nil
}

// FindByID returns the user's projection, if one exists. Non-positive ids
// short-circuit without querying.
func (s *UserService) FindByID(id int64) (dto.UserResponse, bool) {
	if id <= 0 {
		return dto.UserResponse{}, false
	}
	user, ok := s.repo.FindByID(id)
	if !ok {
		return dto.UserResponse{}, false
	}
	return mapper.ToResponse(user), true
}

// FindByEmail returns the projection for the given email, if one exists.
// Blank emails short-circuit without querying.
func (s *UserService) FindByEmail(email string) (dto.UserResponse, bool) {
	if models.NormalizeEmail(email) == "" {
		return dto.UserResponse{}, false
	}
	user, ok := s.repo.FindByEmail(email)
	if !ok {
		return dto.UserResponse{}, false
	}
	return mapper.ToResponse(user), true
}

// FindAll returns projections of every user.
func (s *UserService) FindAll() []dto.UserResponse {
	return mapper.ToResponses(s.repo.FindAll())
}

// FindPage returns one page of projections. Negative pages are clamped to
// the first page; non-positive sizes fall back to 10.
func (s *UserService) FindPage(page, size int) []dto.UserResponse {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 10
	}
	return mapper.ToResponses(s.repo.FindPage(page*size, size))
}

// UpdateUser applies the non-nil fields of the request onto an existing
// user. Changing the email to one held by another user is a conflict.
func (s *UserService) UpdateUser(id int64, req *dto.UpdateUserRequest) (dto.UserResponse, error) {
	if id <= 0 {
		return dto.UserResponse{}, fmt.Errorf("%w: user id is required", apperr.ErrInvalidArgument)
	}
	if req == nil {
		return dto.UserResponse{}, fmt.Errorf("%w: request is required", apperr.ErrInvalidArgument)
	}

	existing, ok := s.repo.FindByID(id)
	if !ok {
		return dto.UserResponse{}, fmt.Errorf("%w: id %d", apperr.ErrNotFound, id)
	}

	if req.Email != nil && models.NormalizeEmail(*req.Email) != models.NormalizeEmail(existing.Email) {
		if s.repo.ExistsByEmail(*req.Email) {
			return dto.UserResponse{}, fmt.Errorf("%w: %s", apperr.ErrDuplicateEmail, *req.Email)
		}
	}

	mapper.ApplyUpdate(*req, &existing)

	saved, err := s.repo.Save(existing)
	if err != nil {
		return dto.UserResponse{}, err
	}

	log.Info().Int64("user_id", id).Msg("User updated")
	s.audit.Record("user.updated", "info", "User updated: "+saved.Email, &saved.ID)
	return mapper.ToResponse(saved), nil
}

// DeleteUser removes a user permanently.
func (s *UserService) DeleteUser(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: user id is required", apperr.ErrInvalidArgument)
	}
	if !s.repo.ExistsByID(id) {
		return fmt.Errorf("%w: id %d", apperr.ErrNotFound, id)
	}

	if !s.repo.DeleteByID(id) {
		log.Warn().Int64("user_id", id).Msg("User vanished before deletion")
		return fmt.Errorf("%w: id %d", apperr.ErrNotFound, id)
	}

	log.Info().Int64("user_id", id).Msg("User deleted")
	s.audit.Record("user.deleted", "warn", fmt.Sprintf("User %d deleted", id), &id)
	return nil
}

// ActivateUser marks a user active. Activating an already-active user is
// a no-op success.
func (s *UserService) ActivateUser(id int64) (dto.UserResponse, error) {
	return s.setActive(id, true, "user.activated", "activated")
}

// DeactivateUser marks a user inactive.
func (s *UserService) DeactivateUser(id int64) (dto.UserResponse, error) {
	return s.setActive(id, false, "user.deactivated", "deactivated")
}

func (s *UserService) setActive(id int64, active bool, eventType, verb string) (dto.UserResponse, error) {
	if id <= 0 {
		return dto.UserResponse{}, fmt.Errorf("%w: user id is required", apperr.ErrInvalidArgument)
	}

	user, ok := s.repo.FindByID(id)
	if !ok {
		return dto.UserResponse{}, fmt.Errorf("%w: id %d", apperr.ErrNotFound, id)
	}

	user.Active = active
	saved, err := s.repo.Save(user)
	if err != nil {
		return dto.UserResponse{}, err
	}

	log.Info().Int64("user_id", id).Bool("active", active).Msg("User " + verb)
	s.audit.Record(eventType, "info", fmt.Sprintf("User %d %s", id, verb), &id)
	return mapper.ToResponse(saved), nil
}

// ExistsByID reports whether a user with the given id exists.
func (s *UserService) ExistsByID(id int64) bool {
	if id <= 0 {
		return false
	}
	return s.repo.ExistsByID(id)
}

// ExistsByEmail reports whether a user with the given email exists.
func (s *UserService) ExistsByEmail(email string) bool {
	if models.NormalizeEmail(email) == "" {
		return false
	}
	return s.repo.ExistsByEmail(email)
}

// CountUsers returns the total number of users.
func (s *UserService) CountUsers() int64 {
	return s.repo.Count()
}

// SearchByName returns projections of users whose first or last name
// contains the term. Blank terms return an empty list without querying.
func (s *UserService) SearchByName(term string) []dto.UserResponse {
	if strings.TrimSpace(term) == "" {
		return []dto.UserResponse{}
	}
	return mapper.ToResponses(s.repo.FindByNameContaining(term))
}
