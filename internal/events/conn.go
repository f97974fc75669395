package events

import (
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 30 * time.Second
	maxMessageSize = 4096
)

// Serve pumps messages between conn and the hub until either side closes.
// It blocks; the caller's goroutine becomes the read pump.
func Serve(hub *Hub, conn *websocket.Conn, c *Client) {
	hub.Register(c)
	go writePump(conn, c)
	readPump(hub, conn, c)
}

func writePump(conn *websocket.Conn, c *Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	ack, _ := NewMessage(TypeSubscribeAck, c.topic, nil).JSON()
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteMessage(websocket.TextMessage, ack); err != nil {
		return
	}

	for {
		select {
		case message, ok := <-c.send:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func readPump(hub *Hub, conn *websocket.Conn, c *Client) {
	defer func() {
		hub.Unregister(c)
		conn.Close()
	}()

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("[events] Read error (itinerary_id=%s): %v", c.topic, err)
			}
			return
		}
		hub.reply(c, raw)
	}
}

// reply answers client pings; anything else gets an error frame
func (h *Hub) reply(c *Client, raw []byte) {
	var in struct {
		Type MessageType `json:"type"`
	}
	var out Message
	if err := json.Unmarshal(raw, &in); err != nil || in.Type != TypePing {
		out = NewMessage(TypeError, c.topic, ErrorPayload{Code: "unsupported", Message: "only ping messages are accepted"})
	} else {
		out = NewMessage(TypePong, c.topic, nil)
	}
	data, err := out.JSON()
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.topics[c.topic][c] {
		select {
		case c.send <- data:
		default:
		}
	}
}
