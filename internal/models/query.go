package models

import (
	"time"

	"github.com/google/uuid"
)

// Destination is one leg of a lead's trip
type Destination struct {
	City   string `json:"city"`
	Nights int    `json:"nights"`
}

// Query is the lead's travel request an itinerary is seeded from
type Query struct {
	ID               uuid.UUID     `json:"id" db:"id"`
	LeadID           uuid.UUID     `json:"lead_id" db:"lead_id"`
	Destinations     []Destination `json:"destinations" db:"destinations"`
	Origin           string        `json:"origin,omitempty" db:"origin"`
	Nationality      string        `json:"nationality,omitempty" db:"nationality"`
	LeavingOn        *time.Time    `json:"leaving_on,omitempty" db:"leaving_on"`
	Travelers        Travelers     `json:"travelers" db:"travelers"`
	StarRating       *int          `json:"star_rating,omitempty" db:"star_rating"`
	IncludeTransfers bool          `json:"include_transfers" db:"include_transfers"`
	CreatedAt        time.Time     `json:"created_at" db:"created_at"`
}

// TotalNights sums the nights over all destinations
func (q *Query) TotalNights() int {
	total := 0
	for _, d := range q.Destinations {
		if d.Nights > 0 {
			total += d.Nights
		}
	}
	return total
}
