package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// MessageType identifies an event sent to subscribers
type MessageType string

const (
	// Server -> client
	TypePriceUpdated  MessageType = "itinerary.price_updated"
	TypeDaysGenerated MessageType = "itinerary.days_generated"
	TypeNotice        MessageType = "itinerary.notice"
	TypeLockChanged   MessageType = "itinerary.lock_changed"
	TypeSubscribeAck  MessageType = "subscribe.ack"
	TypePong          MessageType = "pong"
	TypeError         MessageType = "error"

	// Client -> server
	TypePing MessageType = "ping"
)

// Message is the envelope of every websocket frame
type Message struct {
	Type        MessageType `json:"type"`
	ItineraryID uuid.UUID   `json:"itinerary_id"`
	Timestamp   time.Time   `json:"timestamp"`
	Payload     any         `json:"payload,omitempty"`
}

// NewMessage stamps a message with the current time
func NewMessage(t MessageType, itineraryID uuid.UUID, payload any) Message {
	return Message{
		Type:        t,
		ItineraryID: itineraryID,
		Timestamp:   time.Now().UTC(),
		Payload:     payload,
	}
}

func (m Message) JSON() ([]byte, error) {
	return json.Marshal(m)
}

type PricePayload struct {
	TotalPrice float64 `json:"total_price"`
	Currency   string  `json:"currency,omitempty"`
}

type DaysPayload struct {
	DayCount int `json:"day_count"`
}

type NoticePayload struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

type LockPayload struct {
	Locked bool      `json:"locked"`
	By     uuid.UUID `json:"by"`
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
