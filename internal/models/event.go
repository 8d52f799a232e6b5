package models

import "time"

// AuditEvent represents a recorded user-management action.
type AuditEvent struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`  // e.g., "user.created", "user.deactivated"
	Level     string    `json:"level"` // e.g., "info", "warn"
	Message   string    `json:"message"`
	UserID    *int64    `json:"userId,omitempty"` // Nullable for system-wide events
	CreatedAt time.Time `json:"createdAt"`
}
