package events

import (
	"log"

	"github.com/google/uuid"
)

// Publisher delivers encoded messages for an itinerary
type Publisher interface {
	Publish(itineraryID uuid.UUID, data []byte)
}

// Broadcaster encodes itinerary events and publishes them on a hub
type Broadcaster struct {
	pub Publisher
}

func NewBroadcaster(pub Publisher) *Broadcaster {
	return &Broadcaster{pub: pub}
}

func (b *Broadcaster) PriceUpdated(itineraryID uuid.UUID, total float64, currency string) {
	b.send(NewMessage(TypePriceUpdated, itineraryID, PricePayload{TotalPrice: total, Currency: currency}))
}

func (b *Broadcaster) DaysGenerated(itineraryID uuid.UUID, dayCount int) {
	b.send(NewMessage(TypeDaysGenerated, itineraryID, DaysPayload{DayCount: dayCount}))
}

func (b *Broadcaster) Notice(itineraryID uuid.UUID, level, message string) {
	b.send(NewMessage(TypeNotice, itineraryID, NoticePayload{Level: level, Message: message}))
}

func (b *Broadcaster) LockChanged(itineraryID, by uuid.UUID, locked bool) {
	b.send(NewMessage(TypeLockChanged, itineraryID, LockPayload{Locked: locked, By: by}))
}

func (b *Broadcaster) send(msg Message) {
	data, err := msg.JSON()
	if err != nil {
		log.Printf("[events] Error encoding %s message: %v", msg.Type, err)
		return
	}
	b.pub.Publish(msg.ItineraryID, data)
}
