package handlers

import (
	"net/http"
	"strconv"

	"github.com/renefm/user-hub-be/internal/services"
)

// EventHandler handles HTTP requests for the audit event log.
type EventHandler struct {
	service services.AuditServiceProvider
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(service services.AuditServiceProvider) *EventHandler {
	return &EventHandler{service: service}
}

// GetRecent handles the request to get recent audit events.
func (h *EventHandler) GetRecent(w http.ResponseWriter, r *http.Request) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 20 // Default limit
	}

	respondJSON(w, http.StatusOK, h.service.Recent(limit))
}
