package services

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/renefm/user-hub-be/internal/models"
	ws "github.com/renefm/user-hub-be/internal/websocket"
	"github.com/rs/zerolog/log"
)

// maxAuditEvents bounds the in-memory log; the oldest events are dropped
// once the ring is full.
const maxAuditEvents = 1000

// AuditServiceProvider defines the interface for the audit event log.
type AuditServiceProvider interface {
	Record(eventType, level, message string, userID *int64)
	Recent(limit int) []models.AuditEvent
}

// AuditService keeps a bounded in-memory log of user-management events
// and pushes each new event to connected websocket clients. Events live
// for the process lifetime only, like the user store itself.
type AuditService struct {
	mu     sync.RWMutex
	events []models.AuditEvent
	hub    *ws.Hub
}

// NewAuditService creates a new AuditService. The hub may be nil when no
// live feed is wanted (e.g., in tests).
func NewAuditService(hub *ws.Hub) *AuditService {
	return &AuditService{hub: hub}
}

// Record appends a new audit event and broadcasts it.
func (s *AuditService) Record(eventType, level, message string, userID *int64) {
	event := models.AuditEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		Level:     level,
		Message:   message,
		UserID:    userID,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.events = append(s.events, event)
	if len(s.events) > maxAuditEvents {
		s.events = s.events[len(s.events)-maxAuditEvents:]
	}
	s.mu.Unlock()

	s.broadcast(event)
}

// Recent returns the most recent events, newest first.
func (s *AuditService) Recent(limit int) []models.AuditEvent {
	if limit <= 0 {
		limit = 20
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit > len(s.events) {
		limit = len(s.events)
	}
	result := make([]models.AuditEvent, 0, limit)
	for i := len(s.events) - 1; i >= len(s.events)-limit; i-- {
		result = append(result, s.events[i])
	}
	return result
}

func (s *AuditService) broadcast(event models.AuditEvent) {
	if s.hub == nil {
		return
	}

	payload, err := json.Marshal(ws.Message{Action: "audit_event", Payload: event})
	if err != nil {
		log.Error().Err(err).Msg("Failed to encode audit event for broadcast")
		return
	}
	s.hub.Broadcast <- payload
}
