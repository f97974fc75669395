package itinerary

import "errors"

var (
	ErrNoDestinations     = errors.New("days require destinations")
	ErrDaysExist          = errors.New("itinerary already has days")
	ErrUnknownPricingTier = errors.New("pricing tier does not belong to the activity")
	ErrUnknownPackage     = errors.New("package not found")
	ErrNotFound           = errors.New("not found")
	ErrLocked             = errors.New("itinerary is locked")
	ErrForbidden          = errors.New("itinerary belongs to another agent")
	ErrNotReady           = errors.New("builder is not ready")
	ErrNoSelection        = errors.New("no slot selection is open")
	ErrInvalidSelection   = errors.New("invalid slot selection")
	ErrClosed             = errors.New("builder session is closed")
	ErrInvalidDay         = errors.New("invalid day update")
)
