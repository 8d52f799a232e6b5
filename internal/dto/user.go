// Package dto holds the wire-facing request and response shapes.
package dto

import "time"

// CreateUserRequest is the payload for registering a new user.
type CreateUserRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
}

// UpdateUserRequest is the payload for updating a user. Every field is
// optional; nil fields are left untouched on the stored user.
type UpdateUserRequest struct {
	Email       *string `json:"email,omitempty"`
	Password    *string `json:"password,omitempty"`
	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

// HasUpdates reports whether the request carries at least one field.
func (r UpdateUserRequest) HasUpdates() bool {
	return r.Email != nil || r.Password != nil || r.FirstName != nil ||
		r.LastName != nil || r.PhoneNumber != nil || r.Active != nil
}

// UserResponse is the outward projection of a user. It never carries the
// password hash.
type UserResponse struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	PhoneNumber string    `json:"phoneNumber"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ErrorResponse is the body returned for failed requests.
type ErrorResponse struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Status    int       `json:"status"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// CountResponse wraps the user count endpoint's result.
type CountResponse struct {
	Count int64 `json:"count"`
}
