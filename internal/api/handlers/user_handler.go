package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/renefm/user-hub-be/internal/apperr"
	"github.com/renefm/user-hub-be/internal/dto"
	"github.com/renefm/user-hub-be/internal/services"
	"github.com/rs/zerolog/log"
)

// UserHandler handles HTTP requests for user management.
type UserHandler struct {
	service services.UserServiceProvider
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserServiceProvider) *UserHandler {
	return &UserHandler{service: service}
}

// Create handles POST /users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload dto.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body")
		return
	}

	user, err := h.service.CreateUser(&payload)
	if err != nil {
		log.Warn().Err(err).Str("email", payload.Email).Msg("Failed to create user")
		writeServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, user)
}

// GetAll handles GET /users with optional page and size query parameters.
func (h *UserHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 0)
	size := queryInt(r, "size", 10)

	respondJSON(w, http.StatusOK, h.service.FindPage(page, size))
}

// Get handles GET /users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid user id")
		return
	}

	user, ok := h.service.FindByID(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, "NOT_FOUND", "User not found")
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// GetByEmail handles GET /users/email/{email}.
func (h *UserHandler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	user, ok := h.service.FindByEmail(email)
	if !ok {
		writeError(w, r, http.StatusNotFound, "NOT_FOUND", "User not found")
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// Update handles PUT /users/{id} with partial-update semantics.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid user id")
		return
	}

	var payload dto.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body")
		return
	}

	user, err := h.service.UpdateUser(id, &payload)
	if err != nil {
		log.Warn().Err(err).Int64("user_id", id).Msg("Failed to update user")
		writeServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// Delete handles DELETE /users/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid user id")
		return
	}

	if err := h.service.DeleteUser(id); err != nil {
		log.Warn().Err(err).Int64("user_id", id).Msg("Failed to delete user")
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Activate handles PATCH /users/{id}/activate.
func (h *UserHandler) Activate(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, h.service.ActivateUser)
}

// Deactivate handles PATCH /users/{id}/deactivate.
func (h *UserHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	h.setActive(w, r, h.service.DeactivateUser)
}

func (h *UserHandler) setActive(w http.ResponseWriter, r *http.Request, op func(int64) (dto.UserResponse, error)) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid user id")
		return
	}

	user, err := op(id)
	if err != nil {
		log.Warn().Err(err).Int64("user_id", id).Msg("Failed to change user active flag")
		writeServiceError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// Search handles GET /users/search?q=term.
func (h *UserHandler) Search(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	respondJSON(w, http.StatusOK, h.service.SearchByName(term))
}

// Count handles GET /users/count.
func (h *UserHandler) Count(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, dto.CountResponse{Count: h.service.CountUsers()})
}

// --- shared helpers ---

func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	respondJSON(w, status, dto.ErrorResponse{
		Code:      code,
		Message:   message,
		Status:    status,
		Path:      r.URL.Path,
		Timestamp: time.Now(),
	})
}

// writeServiceError maps the service error taxonomy onto status codes.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, apperr.ErrInvalidArgument):
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error())
	case errors.Is(err, apperr.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, apperr.ErrDuplicateEmail):
		writeError(w, r, http.StatusConflict, "CONFLICT", err.Error())
	default:
		log.Error().Err(err).Msg("Unexpected error")
		writeError(w, r, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "An unexpected error occurred")
	}
}

func queryInt(r *http.Request, key string, fallback int) int {
	value, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return fallback
	}
	return value
}
