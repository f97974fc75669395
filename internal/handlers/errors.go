package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"ITINERARY_BACK-END/internal/itinerary"
	"ITINERARY_BACK-END/internal/utils"
)

// writeError maps builder and storage errors to HTTP responses
func writeError(w http.ResponseWriter, err error, action string) {
	status, kind, msg := http.StatusInternalServerError, "Internal error", "Failed to "+action

	switch {
	case errors.Is(err, itinerary.ErrNotFound):
		status, kind, msg = http.StatusNotFound, "Not Found", err.Error()
	case errors.Is(err, itinerary.ErrUnknownPackage):
		status, kind, msg = http.StatusNotFound, "Not Found", err.Error()
	case errors.Is(err, itinerary.ErrForbidden):
		status, kind, msg = http.StatusForbidden, "Forbidden", err.Error()
	case errors.Is(err, itinerary.ErrLocked):
		status, kind, msg = http.StatusLocked, "Locked", err.Error()
	case errors.Is(err, itinerary.ErrDaysExist),
		errors.Is(err, itinerary.ErrNotReady),
		errors.Is(err, itinerary.ErrNoSelection):
		status, kind, msg = http.StatusConflict, "Conflict", err.Error()
	case errors.Is(err, itinerary.ErrNoDestinations):
		status, kind, msg = http.StatusUnprocessableEntity, "Unprocessable", err.Error()
	case errors.Is(err, itinerary.ErrInvalidSelection),
		errors.Is(err, itinerary.ErrInvalidDay),
		errors.Is(err, itinerary.ErrUnknownPricingTier):
		status, kind, msg = http.StatusBadRequest, "Validation error", err.Error()
	case errors.Is(err, itinerary.ErrClosed):
		status, kind, msg = http.StatusGone, "Gone", err.Error()
	case errors.Is(err, context.DeadlineExceeded):
		status, kind, msg = http.StatusGatewayTimeout, "Timeout", "Timed out trying to "+action
	default:
		log.Printf("Error trying to %s: %v", action, err)
	}

	utils.WriteErrorResponse(w, status, kind, msg)
}
