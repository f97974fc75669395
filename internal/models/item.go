package models

import (
	"time"

	"github.com/google/uuid"
)

// PackageType is the catalog category an itinerary item was built from
type PackageType string

const (
	PackageTypeActivity       PackageType = "activity"
	PackageTypeTransfer       PackageType = "transfer"
	PackageTypeMultiCity      PackageType = "multi_city"
	PackageTypeMultiCityHotel PackageType = "multi_city_hotel"
	PackageTypeFixedDeparture PackageType = "fixed_departure"
)

// SlotAttachable reports whether items of this type live in day slots
func (t PackageType) SlotAttachable() bool {
	return t == PackageTypeActivity || t == PackageTypeTransfer
}

// ItineraryItem is a priced catalog package attached to an itinerary
type ItineraryItem struct {
	ID              uuid.UUID      `json:"id" db:"id"`
	ItineraryID     uuid.UUID      `json:"itinerary_id" db:"itinerary_id"`
	DayID           *uuid.UUID     `json:"day_id,omitempty" db:"day_id"`
	PackageType     PackageType    `json:"package_type" db:"package_type"`
	PackageID       uuid.UUID      `json:"package_id" db:"package_id"`
	OperatorID      uuid.UUID      `json:"operator_id" db:"operator_id"`
	PackageTitle    string         `json:"package_title" db:"package_title"`
	PackageImageURL *string        `json:"package_image_url,omitempty" db:"package_image_url"`
	Configuration   map[string]any `json:"configuration" db:"configuration"`
	UnitPrice       *float64       `json:"unit_price" db:"unit_price"`
	Quantity        int            `json:"quantity" db:"quantity"`
	TotalPrice      *float64       `json:"total_price" db:"total_price"`
	DisplayOrder    int            `json:"display_order" db:"display_order"`
	Notes           *string        `json:"notes,omitempty" db:"notes"`
	CreatedAt       time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at" db:"updated_at"`
}

// Configuration keys written by the builder
const (
	ConfigPricingTierID = "pricing_package_id"
	ConfigTimeSlot      = "time_slot"
)

// ConfiguredSlot returns the slot recorded in the item configuration
func (i *ItineraryItem) ConfiguredSlot() (SlotName, bool) {
	raw, ok := i.Configuration[ConfigTimeSlot].(string)
	if !ok {
		return "", false
	}
	slot := SlotName(raw)
	return slot, slot.Valid()
}
