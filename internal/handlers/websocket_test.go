package handlers

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

	"ITINERARY_BACK-END/internal/events"
	"ITINERARY_BACK-END/internal/itinerary/itinerarytest"
	"ITINERARY_BACK-END/internal/models"
	"ITINERARY_BACK-END/internal/utils"
)

func TestWebSocketSubscribe(t *testing.T) {
	store := itinerarytest.NewStore()
	agent := uuid.New()
	it := store.AddItinerary(models.Itinerary{AgentID: agent})

	hub := events.NewHub()
	go hub.Run()
	defer hub.Stop()

	h := NewWebSocketHandler(hub, store, []string{"*"})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := uuid.Parse(r.Header.Get("X-User"))
		if err == nil {
			r = r.WithContext(utils.WithUser(r.Context(), user, "", models.RoleAgent))
		}
		h.Subscribe(w, r)
	}))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/ws?itinerary_id=" + it.ID.String()

	header := http.Header{"X-User": {uuid.NewString()}}
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	header = http.Header{"X-User": {agent.String()}}
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, header)
	require.NoError(t, err)
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, ack, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, string(events.TypeSubscribeAck), gjson.GetBytes(ack, "type").String())

	require.Eventually(t, func() bool { return hub.Subscribers(it.ID) == 1 }, time.Second, 10*time.Millisecond)
	events.NewBroadcaster(hub).PriceUpdated(it.ID, 99.5, "USD")

	_, raw, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, string(events.TypePriceUpdated), gjson.GetBytes(raw, "type").String())
	assert.Equal(t, 99.5, gjson.GetBytes(raw, "payload.total_price").Float())
}

func TestWebSocketSubscribeValidation(t *testing.T) {
	h := NewWebSocketHandler(events.NewHub(), itinerarytest.NewStore(), nil)

	rec := httptest.NewRecorder()
	h.Subscribe(rec, notificationRequest(http.MethodGet, "/api/ws?itinerary_id=nope", uuid.New()))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.Subscribe(rec, notificationRequest(http.MethodGet, "/api/ws?itinerary_id="+uuid.NewString(), uuid.New()))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	h.Subscribe(rec, notificationRequest(http.MethodGet, "/api/ws", uuid.Nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
