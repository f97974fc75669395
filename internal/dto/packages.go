package dto

import "ITINERARY_BACK-END/internal/models"

// PackageSearchResponse is a catalog search result
type PackageSearchResponse struct {
	Type       string                   `json:"type"`
	City       string                   `json:"city,omitempty"`
	Activities []models.ActivityPackage `json:"activities,omitempty"`
	Transfers  []models.TransferPackage `json:"transfers,omitempty"`
	Count      int                      `json:"count"`
}
