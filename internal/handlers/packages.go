package handlers

import (
	"context"
	"net/http"
	"strings"

	"ITINERARY_BACK-END/internal/dto"
	"ITINERARY_BACK-END/internal/itinerary"
	"ITINERARY_BACK-END/internal/utils"
)

// PackagesHandler searches the operator catalog
type PackagesHandler struct {
	catalog itinerary.Catalog
	limit   int
}

// NewPackagesHandler creates a new PackagesHandler
func NewPackagesHandler(catalog itinerary.Catalog, limit int) *PackagesHandler {
	if limit <= 0 {
		limit = itinerary.DefaultOptionsLimit
	}
	return &PackagesHandler{catalog: catalog, limit: limit}
}

// Search handles GET /api/packages/search
// @Summary Search catalog packages
// @Tags packages
// @Produce json
// @Security BearerAuth
// @Param type query string true "activity|transfer"
// @Param city query string false "destination city"
// @Param limit query int false "default 50 (max 100)"
// @Success 200 {object} dto.PackageSearchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/packages/search [get]
func (h *PackagesHandler) Search(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireActor(w, r); !ok {
		return
	}
	q := r.URL.Query()
	typ := strings.ToLower(strings.TrimSpace(q.Get("type")))
	city := strings.TrimSpace(q.Get("city"))
	limit, ok := parseLimit(w, r, h.limit)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	resp := dto.PackageSearchResponse{Type: typ, City: city}
	switch typ {
	case "activity":
		acts, err := h.catalog.SearchActivities(ctx, city, limit)
		if err != nil {
			writeError(w, err, "search activities")
			return
		}
		resp.Activities, resp.Count = acts, len(acts)
	case "transfer":
		transfers, err := h.catalog.SearchTransfers(ctx, city, limit)
		if err != nil {
			writeError(w, err, "search transfers")
			return
		}
		resp.Transfers, resp.Count = transfers, len(transfers)
	default:
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid type", "type must be activity or transfer")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, resp)
}
