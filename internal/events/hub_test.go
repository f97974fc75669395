package events

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func receive(t *testing.T, c *Client) []byte {
	t.Helper()
	select {
	case got, ok := <-c.Send():
		require.True(t, ok, "send channel closed")
		return got
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for message")
		return nil
	}
}

func waitSubscribers(t *testing.T, h *Hub, id uuid.UUID, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return h.Subscribers(id) == n }, time.Second, 5*time.Millisecond)
}

func TestHubDeliversOnlyToTopic(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	paris, rome := uuid.New(), uuid.New()
	a := NewClient(paris, uuid.New())
	b := NewClient(rome, uuid.New())
	hub.Register(a)
	hub.Register(b)
	waitSubscribers(t, hub, paris, 1)
	waitSubscribers(t, hub, rome, 1)

	NewBroadcaster(hub).PriceUpdated(paris, 270, "USD")

	got := receive(t, a)
	assert.Equal(t, string(TypePriceUpdated), gjson.GetBytes(got, "type").String())
	assert.Equal(t, paris.String(), gjson.GetBytes(got, "itinerary_id").String())
	assert.Equal(t, 270.0, gjson.GetBytes(got, "payload.total_price").Float())

	select {
	case msg := <-b.Send():
		t.Fatalf("unexpected message for other itinerary: %s", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubUnregisterClosesSend(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	id := uuid.New()
	c := NewClient(id, uuid.New())
	hub.Register(c)
	waitSubscribers(t, hub, id, 1)

	hub.Unregister(c)
	hub.Unregister(c)
	waitSubscribers(t, hub, id, 0)

	_, ok := <-c.Send()
	assert.False(t, ok)
}

func TestHubStopDisconnectsAll(t *testing.T) {
	hub := NewHub()
	done := make(chan struct{})
	go func() {
		hub.Run()
		close(done)
	}()

	id := uuid.New()
	c := NewClient(id, uuid.New())
	hub.Register(c)
	waitSubscribers(t, hub, id, 1)

	hub.Stop()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Stop")
	}
	_, ok := <-c.Send()
	assert.False(t, ok)

	// publishing after stop is a no-op
	hub.Publish(id, []byte("late"))
}

func TestServeOverWebsocket(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	id := uuid.New()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		Serve(hub, conn, NewClient(id, uuid.New()))
	}))
	defer srv.Close()

	ws, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer ws.Close()

	_, ack, err := ws.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, string(TypeSubscribeAck), gjson.GetBytes(ack, "type").String())
	waitSubscribers(t, hub, id, 1)

	NewBroadcaster(hub).Notice(id, "success", "Generated 3 days")
	_, msg, err := ws.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, "Generated 3 days", gjson.GetBytes(msg, "payload.message").String())

	require.NoError(t, ws.WriteMessage(websocket.TextMessage, []byte(`{"type":"ping"}`)))
	_, pong, err := ws.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, string(TypePong), gjson.GetBytes(pong, "type").String())

	ws.Close()
	waitSubscribers(t, hub, id, 0)
}
