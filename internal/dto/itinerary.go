package dto

import (
	"ITINERARY_BACK-END/internal/itinerary"
	"ITINERARY_BACK-END/internal/models"
)

// DaysResponse lists an itinerary's days in order
type DaysResponse struct {
	Days []models.Day `json:"days"`
}

// ItemsResponse lists normalized items and their aggregate
type ItemsResponse struct {
	Items      []models.ItineraryItem `json:"items"`
	TotalPrice float64                `json:"total_price"`
}

// SummaryResponse is the priced overview of an itinerary
type SummaryResponse = itinerary.Summary

// LockResponse reports the lock state after lock or unlock
type LockResponse struct {
	ItineraryID string  `json:"itinerary_id"`
	Locked      bool    `json:"locked"`
	LockedAt    *string `json:"locked_at,omitempty"`
	LockedBy    *string `json:"locked_by,omitempty"`
	Status      string  `json:"status"`
}
