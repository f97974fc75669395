package dto

import (
	"ITINERARY_BACK-END/internal/itinerary"
	"ITINERARY_BACK-END/internal/models"
)

// OpenSelectionRequest opens the package picker for a day slot
type OpenSelectionRequest struct {
	DayIndex *int   `json:"day_index" validate:"required,min=0"`
	Slot     string `json:"slot" validate:"required,timeslot"`
	Kind     string `json:"kind" validate:"required,oneof=activity transfer"`
}

// CommitSelectionRequest attaches a package to the open selection
type CommitSelectionRequest struct {
	PackageID     string  `json:"package_id" validate:"required,uuid"`
	PricingTierID *string `json:"pricing_tier_id,omitempty" validate:"omitempty,uuid"`
}

// UpdateDayRequest edits a day. Omitted fields are kept; time_slots maps
// slot names to new start times.
type UpdateDayRequest struct {
	CityName  *string           `json:"city_name,omitempty" validate:"omitempty,max=255"`
	Date      *string           `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Notes     *string           `json:"notes,omitempty" validate:"omitempty,max=2000"`
	TimeSlots map[string]string `json:"time_slots,omitempty" validate:"omitempty,dive,keys,timeslot,endkeys,clock"`
}

// UpdateDayResponse returns the edited day and the session after the edit
type UpdateDayResponse struct {
	Day     models.Day         `json:"day"`
	Builder itinerary.Snapshot `json:"builder"`
}

// BuilderResponse is a builder session snapshot
type BuilderResponse = itinerary.Snapshot

// SelectionResponse echoes the open selection
type SelectionResponse struct {
	Selection itinerary.Selection `json:"selection"`
	State     itinerary.State     `json:"state"`
}

// CommitResponse returns the created item and the session after the commit
type CommitResponse struct {
	Item    models.ItineraryItem `json:"item"`
	Builder itinerary.Snapshot   `json:"builder"`
}

// OptionsResponse lists packages for the open selection
type OptionsResponse = itinerary.SelectionOptions
