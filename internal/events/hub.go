// Package events fans itinerary events out to websocket subscribers.
package events

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

type envelope struct {
	topic uuid.UUID
	data  []byte
}

// Hub tracks subscribers per itinerary and delivers published messages to them
type Hub struct {
	topics map[uuid.UUID]map[*Client]bool

	publish    chan envelope
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	stopOnce   sync.Once

	mu sync.RWMutex
}

// NewHub creates a hub. Call Run in a goroutine before registering clients.
func NewHub() *Hub {
	return &Hub{
		topics:     make(map[uuid.UUID]map[*Client]bool),
		publish:    make(chan envelope, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Run is the hub event loop; it returns after Stop
func (h *Hub) Run() {
	for {
		select {
		case <-h.done:
			h.mu.Lock()
			for topic, clients := range h.topics {
				for c := range clients {
					close(c.send)
				}
				delete(h.topics, topic)
			}
			h.mu.Unlock()
			return

		case c := <-h.register:
			h.mu.Lock()
			clients, ok := h.topics[c.topic]
			if !ok {
				clients = make(map[*Client]bool)
				h.topics[c.topic] = clients
			}
			clients[c] = true
			n := len(clients)
			h.mu.Unlock()
			log.Printf("[events] Client subscribed (itinerary_id=%s, subscribers=%d)", c.topic, n)

		case c := <-h.unregister:
			h.mu.Lock()
			h.drop(c)
			h.mu.Unlock()

		case msg := <-h.publish:
			h.mu.Lock()
			for c := range h.topics[msg.topic] {
				select {
				case c.send <- msg.data:
				default:
					log.Printf("[events] Subscriber buffer full, disconnecting (itinerary_id=%s)", msg.topic)
					h.drop(c)
				}
			}
			h.mu.Unlock()
		}
	}
}

// drop removes c and closes its send channel. Caller holds h.mu.
func (h *Hub) drop(c *Client) {
	clients, ok := h.topics[c.topic]
	if !ok || !clients[c] {
		return
	}
	delete(clients, c)
	close(c.send)
	if len(clients) == 0 {
		delete(h.topics, c.topic)
	}
}

// Publish queues data for every subscriber of the itinerary. Messages are
// dropped when the hub is saturated or stopped.
func (h *Hub) Publish(itineraryID uuid.UUID, data []byte) {
	select {
	case <-h.done:
		return
	default:
	}
	select {
	case h.publish <- envelope{topic: itineraryID, data: data}:
	default:
		log.Printf("[events] Publish queue full, dropping message (itinerary_id=%s)", itineraryID)
	}
}

// Register subscribes c to its itinerary
func (h *Hub) Register(c *Client) {
	select {
	case h.register <- c:
	case <-h.done:
		close(c.send)
	}
}

// Unregister removes c; safe to call more than once
func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Stop ends Run and disconnects every subscriber
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.done) })
}

// Subscribers returns the number of clients watching an itinerary
func (h *Hub) Subscribers(itineraryID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[itineraryID])
}

// Client is one websocket subscriber
type Client struct {
	topic uuid.UUID
	user  uuid.UUID
	send  chan []byte
}

// NewClient creates a subscriber for an itinerary
func NewClient(itineraryID, userID uuid.UUID) *Client {
	return &Client{
		topic: itineraryID,
		user:  userID,
		send:  make(chan []byte, 64),
	}
}

// Send returns the channel the hub delivers messages on. It is closed
// when the client is dropped.
func (c *Client) Send() <-chan []byte {
	return c.send
}

func (c *Client) ItineraryID() uuid.UUID { return c.topic }
