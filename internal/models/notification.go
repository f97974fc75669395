package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification types
const (
	NotificationDaysGenerated    = "itinerary_days_generated"
	NotificationGenerationFailed = "itinerary_generation_failed"
	NotificationLocked           = "itinerary_locked"
	NotificationUnlocked         = "itinerary_unlocked"
)

var notificationTypes = map[string]bool{
	NotificationDaysGenerated:    true,
	NotificationGenerationFailed: true,
	NotificationLocked:           true,
	NotificationUnlocked:         true,
}

// ValidNotificationType reports whether t is a known notification type
func ValidNotificationType(t string) bool {
	return notificationTypes[t]
}

// Notification is an inbox entry for an agent
type Notification struct {
	ID        uuid.UUID      `json:"id" db:"id"`
	UserID    uuid.UUID      `json:"user_id" db:"user_id"`
	Type      string         `json:"type" db:"type"`
	Title     string         `json:"title" db:"title"`
	Message   *string        `json:"message,omitempty" db:"message"`
	Data      map[string]any `json:"data,omitempty" db:"data"`
	ActionURL *string        `json:"action_url,omitempty" db:"action_url"`
	Read      bool           `json:"read" db:"read"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
}
