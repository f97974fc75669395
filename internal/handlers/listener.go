package handlers

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"ITINERARY_BACK-END/internal/itinerary"
	"ITINERARY_BACK-END/internal/models"
)

const listenerTimeout = 5 * time.Second

// ListenerStore is what the session listener persists to
type ListenerStore interface {
	GetItinerary(ctx context.Context, id uuid.UUID) (*models.Itinerary, error)
	UpdateTotalPrice(ctx context.Context, itineraryID uuid.UUID, total float64) error
	CreateNotification(ctx context.Context, n models.Notification) error
}

// EventSink receives realtime itinerary events
type EventSink interface {
	PriceUpdated(itineraryID uuid.UUID, total float64, currency string)
	DaysGenerated(itineraryID uuid.UUID, dayCount int)
	Notice(itineraryID uuid.UUID, level, message string)
	LockChanged(itineraryID, by uuid.UUID, locked bool)
}

// SessionListener persists builder totals, fans events out to websocket
// subscribers and files inbox notifications for the owning agent
type SessionListener struct {
	store    ListenerStore
	events   EventSink
	currency string
}

// NewSessionListener creates a listener. currency is reported for itineraries
// that carry none.
func NewSessionListener(store ListenerStore, events EventSink, currency string) *SessionListener {
	return &SessionListener{store: store, events: events, currency: currency}
}

func (l *SessionListener) PriceUpdated(ctx context.Context, itineraryID uuid.UUID, total float64) error {
	if err := l.store.UpdateTotalPrice(ctx, itineraryID, total); err != nil {
		return err
	}
	currency := l.currency
	if it, err := l.store.GetItinerary(ctx, itineraryID); err == nil && it.Currency != "" {
		currency = it.Currency
	}
	l.events.PriceUpdated(itineraryID, total, currency)
	return nil
}

func (l *SessionListener) DaysGenerated(itineraryID uuid.UUID, days []models.Day) {
	l.events.DaysGenerated(itineraryID, len(days))
	msg := fmt.Sprintf("%d days were generated from the lead's query", len(days))
	l.notifyAgent(itineraryID, models.NotificationDaysGenerated, "Itinerary days generated", &msg, map[string]any{
		"day_count": len(days),
	})
}

func (l *SessionListener) GenerationFailed(itineraryID uuid.UUID, err error) {
	msg := err.Error()
	l.notifyAgent(itineraryID, models.NotificationGenerationFailed, "Itinerary day generation failed", &msg, nil)
}

func (l *SessionListener) Noticed(itineraryID uuid.UUID, n itinerary.Notice) {
	l.events.Notice(itineraryID, n.Level, n.Message)
}

// LockChanged broadcasts a lock change and files a notification
func (l *SessionListener) LockChanged(itineraryID, by uuid.UUID, locked bool) {
	l.events.LockChanged(itineraryID, by, locked)
	typ, title := models.NotificationUnlocked, "Itinerary unlocked"
	if locked {
		typ, title = models.NotificationLocked, "Itinerary locked"
	}
	l.notifyAgent(itineraryID, typ, title, nil, map[string]any{"by": by.String()})
}

func (l *SessionListener) notifyAgent(itineraryID uuid.UUID, typ, title string, message *string, data map[string]any) {
	ctx, cancel := context.WithTimeout(context.Background(), listenerTimeout)
	defer cancel()

	it, err := l.store.GetItinerary(ctx, itineraryID)
	if err != nil {
		log.Printf("Error loading itinerary for notification: %v (itinerary_id=%s, type=%s)", err, itineraryID, typ)
		return
	}
	if data == nil {
		data = map[string]any{}
	}
	data["itinerary_id"] = itineraryID.String()
	action := "/itineraries/" + itineraryID.String()

	n := models.Notification{
		UserID:    it.AgentID,
		Type:      typ,
		Title:     title,
		Message:   message,
		Data:      data,
		ActionURL: &action,
	}
	if err := l.store.CreateNotification(ctx, n); err != nil {
		log.Printf("Error creating notification: %v (itinerary_id=%s, type=%s)", err, itineraryID, typ)
	}
}

var _ itinerary.Listener = (*SessionListener)(nil)
