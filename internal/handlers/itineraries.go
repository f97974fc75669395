package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"ITINERARY_BACK-END/internal/dto"
	"ITINERARY_BACK-END/internal/itinerary"
	"ITINERARY_BACK-END/internal/models"
	"ITINERARY_BACK-END/internal/utils"
)

const requestTimeout = 5 * time.Second

// ItineraryStore reads itineraries and flips their lock
type ItineraryStore interface {
	GetItinerary(ctx context.Context, id uuid.UUID) (*models.Itinerary, error)
	ListDays(ctx context.Context, itineraryID uuid.UUID) ([]models.Day, error)
	ListItems(ctx context.Context, itineraryID uuid.UUID) ([]models.ItineraryItem, error)
	SetLocked(ctx context.Context, itineraryID, userID uuid.UUID, locked bool) error
}

// LockObserver hears about lock changes made through the API
type LockObserver interface {
	LockChanged(itineraryID, by uuid.UUID, locked bool)
}

// ItinerariesHandler serves itinerary reads and lock changes
type ItinerariesHandler struct {
	store    ItineraryStore
	sessions *itinerary.Sessions
	observer LockObserver
}

// NewItinerariesHandler creates a new ItinerariesHandler
func NewItinerariesHandler(store ItineraryStore, sessions *itinerary.Sessions, observer LockObserver) *ItinerariesHandler {
	return &ItinerariesHandler{store: store, sessions: sessions, observer: observer}
}

// pathItineraryID parses the {id} path segment
func pathItineraryID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid id", "itinerary id must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}

func requireActor(w http.ResponseWriter, r *http.Request) (models.Actor, bool) {
	actor, ok := utils.ActorFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
	}
	return actor, ok
}

// authorize loads the itinerary named in the path and checks the caller may edit it
func (h *ItinerariesHandler) authorize(ctx context.Context, w http.ResponseWriter, r *http.Request) (*models.Itinerary, models.Actor, bool) {
	actor, ok := requireActor(w, r)
	if !ok {
		return nil, actor, false
	}
	id, ok := pathItineraryID(w, r)
	if !ok {
		return nil, actor, false
	}
	it, err := h.store.GetItinerary(ctx, id)
	if err != nil {
		writeError(w, err, "load itinerary")
		return nil, actor, false
	}
	if !actor.CanEdit(it) {
		writeError(w, itinerary.ErrForbidden, "load itinerary")
		return nil, actor, false
	}
	return it, actor, true
}

// Days handles GET /api/itineraries/{id}/days
// @Summary List itinerary days
// @Tags itineraries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Itinerary ID"
// @Success 200 {object} dto.DaysResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/itineraries/{id}/days [get]
func (h *ItinerariesHandler) Days(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	it, _, ok := h.authorize(ctx, w, r)
	if !ok {
		return
	}
	days, err := h.store.ListDays(ctx, it.ID)
	if err != nil {
		writeError(w, err, "fetch days")
		return
	}
	for i := range days {
		days[i].TimeSlots = days[i].TimeSlots.Normalized()
	}
	if days == nil {
		days = []models.Day{}
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.DaysResponse{Days: days})
}

// Items handles GET /api/itineraries/{id}/items
// @Summary List itinerary items
// @Description Items are normalized: a missing total falls back to the unit price.
// @Tags itineraries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Itinerary ID"
// @Success 200 {object} dto.ItemsResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/itineraries/{id}/items [get]
func (h *ItinerariesHandler) Items(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	it, _, ok := h.authorize(ctx, w, r)
	if !ok {
		return
	}
	items, err := h.store.ListItems(ctx, it.ID)
	if err != nil {
		writeError(w, err, "fetch items")
		return
	}
	items = itinerary.Normalize(items)
	utils.WriteJSONResponse(w, http.StatusOK, dto.ItemsResponse{Items: items, TotalPrice: itinerary.Aggregate(items)})
}

// Summary handles GET /api/itineraries/{id}/summary
// @Summary Itinerary totals and budget
// @Tags itineraries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Itinerary ID"
// @Success 200 {object} dto.SummaryResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/itineraries/{id}/summary [get]
func (h *ItinerariesHandler) Summary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	it, _, ok := h.authorize(ctx, w, r)
	if !ok {
		return
	}
	days, err := h.store.ListDays(ctx, it.ID)
	if err != nil {
		writeError(w, err, "fetch days")
		return
	}
	items, err := h.store.ListItems(ctx, it.ID)
	if err != nil {
		writeError(w, err, "fetch items")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, itinerary.Summarize(it, days, itinerary.Normalize(items)))
}

// Lock handles POST /api/itineraries/{id}/lock
// @Summary Lock an itinerary
// @Description Only the owning agent may lock. Locked itineraries reject builder edits.
// @Tags itineraries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Itinerary ID"
// @Success 200 {object} dto.LockResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/itineraries/{id}/lock [post]
func (h *ItinerariesHandler) Lock(w http.ResponseWriter, r *http.Request) {
	h.setLocked(w, r, true)
}

// Unlock handles DELETE /api/itineraries/{id}/lock
// @Summary Unlock an itinerary
// @Tags itineraries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Itinerary ID"
// @Success 200 {object} dto.LockResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/itineraries/{id}/lock [delete]
func (h *ItinerariesHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	h.setLocked(w, r, false)
}

func (h *ItinerariesHandler) setLocked(w http.ResponseWriter, r *http.Request, locked bool) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	id, ok := pathItineraryID(w, r)
	if !ok {
		return
	}
	it, err := h.store.GetItinerary(ctx, id)
	if err != nil {
		writeError(w, err, "load itinerary")
		return
	}
	if it.AgentID != actor.UserID {
		utils.WriteErrorResponse(w, http.StatusForbidden, "Forbidden", "Only the owning agent can change the lock")
		return
	}
	if locked && it.Locked() {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Already locked", "Itinerary is already locked")
		return
	}
	if !locked && !it.Locked() {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Not locked", "Itinerary is not locked")
		return
	}

	if err := h.store.SetLocked(ctx, id, actor.UserID, locked); err != nil {
		writeError(w, err, "change lock")
		return
	}
	for _, b := range h.sessions.ForItinerary(id) {
		b.SetLocked(locked)
	}
	if h.observer != nil {
		h.observer.LockChanged(id, actor.UserID, locked)
	}

	updated, err := h.store.GetItinerary(ctx, id)
	if err != nil {
		writeError(w, err, "load itinerary")
		return
	}
	resp := dto.LockResponse{
		ItineraryID: id.String(),
		Locked:      updated.Locked(),
		Status:      updated.Status,
	}
	if updated.LockedAt != nil {
		s := utils.FormatTimestamp(*updated.LockedAt)
		resp.LockedAt = &s
	}
	if updated.LockedBy != nil {
		s := updated.LockedBy.String()
		resp.LockedBy = &s
	}
	utils.WriteJSONResponse(w, http.StatusOK, resp)
}
