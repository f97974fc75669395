package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"ITINERARY_BACK-END/internal/dto"
	"ITINERARY_BACK-END/internal/itinerary"
	"ITINERARY_BACK-END/internal/models"
	"ITINERARY_BACK-END/internal/utils"
)

// Loading and generating days can take several round trips
const builderTimeout = 30 * time.Second

// BuilderHandler exposes builder sessions over HTTP
type BuilderHandler struct {
	sessions     *itinerary.Sessions
	optionsLimit int
}

// NewBuilderHandler creates a new BuilderHandler
func NewBuilderHandler(sessions *itinerary.Sessions, optionsLimit int) *BuilderHandler {
	if optionsLimit <= 0 {
		optionsLimit = itinerary.DefaultOptionsLimit
	}
	return &BuilderHandler{sessions: sessions, optionsLimit: optionsLimit}
}

// session returns the caller's open builder for the itinerary in the path
func (h *BuilderHandler) session(w http.ResponseWriter, r *http.Request) (*itinerary.Builder, bool) {
	actor, ok := requireActor(w, r)
	if !ok {
		return nil, false
	}
	id, ok := pathItineraryID(w, r)
	if !ok {
		return nil, false
	}
	b, ok := h.sessions.Get(id, actor.UserID)
	if !ok {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "No builder session is open for this itinerary")
		return nil, false
	}
	return b, true
}

// Open handles POST /api/itineraries/{id}/builder
// @Summary Open a builder session
// @Description Loads the itinerary, its days and items. Days are generated from the lead's query once when there are none.
// @Tags builder
// @Produce json
// @Security BearerAuth
// @Param id path string true "Itinerary ID"
// @Success 200 {object} dto.BuilderResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/itineraries/{id}/builder [post]
func (h *BuilderHandler) Open(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	id, ok := pathItineraryID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), builderTimeout)
	defer cancel()

	b, err := h.sessions.Open(ctx, id, actor)
	if err != nil {
		writeError(w, err, "open builder")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, b.Snapshot())
}

// Get handles GET /api/itineraries/{id}/builder
// @Summary Builder session snapshot
// @Tags builder
// @Produce json
// @Security BearerAuth
// @Param id path string true "Itinerary ID"
// @Success 200 {object} dto.BuilderResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/itineraries/{id}/builder [get]
func (h *BuilderHandler) Get(w http.ResponseWriter, r *http.Request) {
	b, ok := h.session(w, r)
	if !ok {
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, b.Snapshot())
}

// Close handles DELETE /api/itineraries/{id}/builder
// @Summary Close a builder session
// @Description A pending total update is persisted before the session ends.
// @Tags builder
// @Produce json
// @Security BearerAuth
// @Param id path string true "Itinerary ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/itineraries/{id}/builder [delete]
func (h *BuilderHandler) Close(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	id, ok := pathItineraryID(w, r)
	if !ok {
		return
	}
	if !h.sessions.Close(id, actor.UserID) {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found", "No builder session is open for this itinerary")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Builder session closed"})
}

// Generate handles POST /api/itineraries/{id}/builder/generate
// @Summary Generate days from the lead's query
// @Description Manual retry after a failed automatic generation.
// @Tags builder
// @Produce json
// @Security BearerAuth
// @Param id path string true "Itinerary ID"
// @Success 200 {object} dto.BuilderResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 423 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/itineraries/{id}/builder/generate [post]
func (h *BuilderHandler) Generate(w http.ResponseWriter, r *http.Request) {
	b, ok := h.session(w, r)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), builderTimeout)
	defer cancel()

	if err := b.Generate(ctx); err != nil {
		writeError(w, err, "generate days")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, b.Snapshot())
}

// BeginSelection handles POST /api/itineraries/{id}/builder/selection
// @Summary Open the package picker for a day slot
// @Tags builder
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Itinerary ID"
// @Param payload body dto.OpenSelectionRequest true "Day index, slot and kind"
// @Success 200 {object} dto.SelectionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 423 {object} dto.ErrorResponse
// @Router /api/itineraries/{id}/builder/selection [post]
func (h *BuilderHandler) BeginSelection(w http.ResponseWriter, r *http.Request) {
	b, ok := h.session(w, r)
	if !ok {
		return
	}
	var req dto.OpenSelectionRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return // Error already handled by DecodeJSONRequest
	}

	sel, err := b.BeginSelection(*req.DayIndex, models.SlotName(req.Slot), models.PackageType(req.Kind))
	if err != nil {
		writeError(w, err, "open selection")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.SelectionResponse{Selection: *sel, State: b.State()})
}

// CancelSelection handles DELETE /api/itineraries/{id}/builder/selection
// @Summary Close the package picker
// @Tags builder
// @Produce json
// @Security BearerAuth
// @Param id path string true "Itinerary ID"
// @Success 200 {object} dto.BuilderResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/itineraries/{id}/builder/selection [delete]
func (h *BuilderHandler) CancelSelection(w http.ResponseWriter, r *http.Request) {
	b, ok := h.session(w, r)
	if !ok {
		return
	}
	b.CancelSelection()
	utils.WriteJSONResponse(w, http.StatusOK, b.Snapshot())
}

// Options handles GET /api/itineraries/{id}/builder/selection/options
// @Summary Candidate packages for the open selection
// @Description Packages in the day's city; activities must operate in the slot and end before it closes.
// @Tags builder
// @Produce json
// @Security BearerAuth
// @Param id path string true "Itinerary ID"
// @Param limit query int false "maximum catalog results"
// @Param arrival query string false "arrival time HH:MM on the selected day"
// @Success 200 {object} dto.OptionsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /api/itineraries/{id}/builder/selection/options [get]
func (h *BuilderHandler) Options(w http.ResponseWriter, r *http.Request) {
	b, ok := h.session(w, r)
	if !ok {
		return
	}
	limit, ok := parseLimit(w, r, h.optionsLimit)
	if !ok {
		return
	}
	arrival := strings.TrimSpace(r.URL.Query().Get("arrival"))
	if arrival != "" && !models.ValidClock(arrival) {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid arrival", "arrival must be HH:MM")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	opts, err := b.Options(ctx, limit, arrival)
	if err != nil {
		writeError(w, err, "list packages")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, opts)
}

// Commit handles POST /api/itineraries/{id}/builder/selection/commit
// @Summary Attach a package to the open selection
// @Description Prices the package for the itinerary's travelers and creates the item.
// @Tags builder
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Itinerary ID"
// @Param payload body dto.CommitSelectionRequest true "Package and optional pricing tier"
// @Success 201 {object} dto.CommitResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 423 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/itineraries/{id}/builder/selection/commit [post]
func (h *BuilderHandler) Commit(w http.ResponseWriter, r *http.Request) {
	b, ok := h.session(w, r)
	if !ok {
		return
	}
	var req dto.CommitSelectionRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return // Error already handled by DecodeJSONRequest
	}
	packageID, err := uuid.Parse(req.PackageID)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "package_id must be a UUID")
		return
	}
	var tierID *uuid.UUID
	if req.PricingTierID != nil {
		id, err := uuid.Parse(*req.PricingTierID)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "pricing_tier_id must be a UUID")
			return
		}
		tierID = &id
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	item, err := b.Commit(ctx, packageID, tierID)
	if err != nil {
		writeError(w, err, "add item")
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, dto.CommitResponse{Item: *item, Builder: b.Snapshot()})
}

// RemoveItem handles DELETE /api/itineraries/{id}/builder/items/{itemId}
// @Summary Remove an item from a day slot
// @Tags builder
// @Produce json
// @Security BearerAuth
// @Param id path string true "Itinerary ID"
// @Param itemId path string true "Item ID"
// @Param day_index query int true "zero-based day index"
// @Param slot query string true "morning|afternoon|evening"
// @Param kind query string true "activity|transfer"
// @Success 200 {object} dto.BuilderResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 423 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/itineraries/{id}/builder/items/{itemId} [delete]
func (h *BuilderHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	b, ok := h.session(w, r)
	if !ok {
		return
	}
	itemID, err := uuid.Parse(r.PathValue("itemId"))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid id", "item id must be a valid UUID")
		return
	}
	q := r.URL.Query()
	dayIndex, err := strconv.Atoi(q.Get("day_index"))
	if err != nil || dayIndex < 0 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "day_index must be a non-negative integer")
		return
	}
	slot := models.SlotName(q.Get("slot"))
	if !slot.Valid() {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "slot must be morning, afternoon, or evening")
		return
	}
	kind := models.PackageType(q.Get("kind"))
	if !kind.SlotAttachable() {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "kind must be activity or transfer")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := b.RemoveItem(ctx, itemID, dayIndex, slot, kind); err != nil {
		writeError(w, err, "remove item")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, b.Snapshot())
}

// UpdateDay handles PATCH /api/itineraries/{id}/builder/days/{dayIndex}
// @Summary Edit a day
// @Description Changes a day's city, date, notes or slot start times.
// @Tags builder
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Itinerary ID"
// @Param dayIndex path int true "Zero-based day index"
// @Param payload body dto.UpdateDayRequest true "Fields to change"
// @Success 200 {object} dto.UpdateDayResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 423 {object} dto.ErrorResponse
// @Router /api/itineraries/{id}/builder/days/{dayIndex} [patch]
func (h *BuilderHandler) UpdateDay(w http.ResponseWriter, r *http.Request) {
	b, ok := h.session(w, r)
	if !ok {
		return
	}
	dayIndex, err := strconv.Atoi(r.PathValue("dayIndex"))
	if err != nil || dayIndex < 0 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid day index", "dayIndex must be a non-negative integer")
		return
	}
	var req dto.UpdateDayRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	patch := itinerary.DayPatch{CityName: req.CityName, Notes: req.Notes}
	if req.Date != nil {
		date, err := time.Parse(time.DateOnly, *req.Date)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "date must be YYYY-MM-DD")
			return
		}
		patch.Date = &date
	}
	if len(req.TimeSlots) > 0 {
		patch.SlotTimes = make(map[models.SlotName]string, len(req.TimeSlots))
		for slot, at := range req.TimeSlots {
			patch.SlotTimes[models.SlotName(slot)] = at
		}
	}
	if patch.Empty() {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "No update fields provided")
		return
	}

	day, err := b.UpdateDay(dayIndex, patch)
	if err != nil {
		writeError(w, err, "update day")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.UpdateDayResponse{Day: *day, Builder: b.Snapshot()})
}

// parseLimit reads ?limit=, defaulting to def and capping at 100
func parseLimit(w http.ResponseWriter, r *http.Request, def int) (int, bool) {
	v := r.URL.Query().Get("limit")
	if v == "" {
		return def, true
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid limit", "limit must be a positive integer")
		return 0, false
	}
	if n > 100 {
		n = 100
	}
	return n, true
}
