package itinerary

import (
	"math"

	"github.com/google/uuid"

	"ITINERARY_BACK-END/internal/models"
)

func numeric(v *float64) (float64, bool) {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0, false
	}
	return *v, true
}

// NormalizeItem fills in the price fields of a fetched item: a missing
// total falls back to the unit price, a missing unit price to zero.
func NormalizeItem(item models.ItineraryItem) models.ItineraryItem {
	unit, hasUnit := numeric(item.UnitPrice)
	total, hasTotal := numeric(item.TotalPrice)
	if !hasTotal {
		total = unit
	}
	if !hasUnit {
		unit = 0
	}
	item.UnitPrice = &unit
	item.TotalPrice = &total
	if item.Configuration == nil {
		item.Configuration = map[string]any{}
	}
	return item
}

// Normalize returns a normalized copy of every item
func Normalize(items []models.ItineraryItem) []models.ItineraryItem {
	out := make([]models.ItineraryItem, len(items))
	for i, item := range items {
		out[i] = NormalizeItem(item)
	}
	return out
}

func itemTotal(item *models.ItineraryItem) float64 {
	if total, ok := numeric(item.TotalPrice); ok {
		return total
	}
	unit, _ := numeric(item.UnitPrice)
	return unit
}

// Aggregate sums item totals
func Aggregate(items []models.ItineraryItem) float64 {
	sum := 0.0
	for i := range items {
		sum += itemTotal(&items[i])
	}
	return sum
}

// DaySubtotal sums the totals of items attached to one day
func DaySubtotal(items []models.ItineraryItem, dayID uuid.UUID) float64 {
	sum := 0.0
	for i := range items {
		if items[i].DayID != nil && *items[i].DayID == dayID {
			sum += itemTotal(&items[i])
		}
	}
	return sum
}

func removeItem(items []models.ItineraryItem, id uuid.UUID) []models.ItineraryItem {
	kept := make([]models.ItineraryItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	return kept
}
