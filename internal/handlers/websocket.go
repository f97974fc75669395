package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"ITINERARY_BACK-END/internal/events"
	"ITINERARY_BACK-END/internal/itinerary"
	"ITINERARY_BACK-END/internal/models"
	"ITINERARY_BACK-END/internal/utils"
)

// ItineraryGetter loads an itinerary for an authorization check
type ItineraryGetter interface {
	GetItinerary(ctx context.Context, id uuid.UUID) (*models.Itinerary, error)
}

// WebSocketHandler streams itinerary events to subscribers
type WebSocketHandler struct {
	hub      *events.Hub
	store    ItineraryGetter
	upgrader websocket.Upgrader
}

// NewWebSocketHandler creates a handler. allowedOrigins of "*" accepts any origin.
func NewWebSocketHandler(hub *events.Hub, store ItineraryGetter, allowedOrigins []string) *WebSocketHandler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return &WebSocketHandler{
		hub:   hub,
		store: store,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || allowed["*"] || allowed[origin]
			},
		},
	}
}

// Subscribe handles GET /api/ws?itinerary_id=
// @Summary Subscribe to itinerary events
// @Description Upgrades to a websocket that carries price, day generation, notice and lock events.
// @Tags events
// @Security BearerAuth
// @Param itinerary_id query string true "Itinerary ID"
// @Param access_token query string false "JWT for clients that cannot set headers"
// @Success 101 {string} string "Switching Protocols"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/ws [get]
func (h *WebSocketHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(r.URL.Query().Get("itinerary_id"))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid id", "itinerary_id must be a valid UUID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	it, err := h.store.GetItinerary(ctx, id)
	cancel()
	if err != nil {
		writeError(w, err, "load itinerary")
		return
	}
	if !actor.CanEdit(it) {
		writeError(w, itinerary.ErrForbidden, "subscribe")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v (itinerary_id=%s)", err, id)
		return
	}
	events.Serve(h.hub, conn, events.NewClient(id, actor.UserID))
}
