package models

import (
	"time"

	"github.com/google/uuid"
)

// Itinerary statuses
const (
	ItineraryStatusDraft     = "draft"
	ItineraryStatusCompleted = "completed"
	ItineraryStatusSent      = "sent"
	ItineraryStatusConfirmed = "confirmed"
	ItineraryStatusLocked    = "locked"
)

// Itinerary is the trip plan an agent assembles for a lead
type Itinerary struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	LeadID        uuid.UUID  `json:"lead_id" db:"lead_id"`
	AgentID       uuid.UUID  `json:"agent_id" db:"agent_id"`
	QueryID       *uuid.UUID `json:"query_id,omitempty" db:"query_id"`
	Name          string     `json:"name" db:"name"`
	Status        string     `json:"status" db:"status"`
	AdultsCount   int        `json:"adults_count" db:"adults_count"`
	ChildrenCount int        `json:"children_count" db:"children_count"`
	InfantsCount  int        `json:"infants_count" db:"infants_count"`
	StartDate     *time.Time `json:"start_date,omitempty" db:"start_date"`
	EndDate       *time.Time `json:"end_date,omitempty" db:"end_date"`
	TotalPrice    float64    `json:"total_price" db:"total_price"`
	Currency      string     `json:"currency" db:"currency"`
	LeadBudgetMin *float64   `json:"lead_budget_min,omitempty" db:"lead_budget_min"`
	LeadBudgetMax *float64   `json:"lead_budget_max,omitempty" db:"lead_budget_max"`
	IsLocked      bool       `json:"is_locked" db:"is_locked"`
	LockedAt      *time.Time `json:"locked_at,omitempty" db:"locked_at"`
	LockedBy      *uuid.UUID `json:"locked_by,omitempty" db:"locked_by"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// Locked reports whether the itinerary rejects further edits
func (i *Itinerary) Locked() bool {
	return i.IsLocked || i.Status == ItineraryStatusLocked
}

// Travelers returns the party size stored on the itinerary
func (i *Itinerary) Travelers() Travelers {
	return Travelers{
		Adults:   i.AdultsCount,
		Children: i.ChildrenCount,
		Infants:  i.InfantsCount,
	}
}

// Travelers counts the people an itinerary is priced for
type Travelers struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
	Rooms    int `json:"rooms,omitempty"`
}

// Roles carried in the access token
const (
	RoleAgent    = "agent"
	RoleOperator = "operator"
	RoleAdmin    = "admin"
)

// Actor is the authenticated user acting on an itinerary
type Actor struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role,omitempty"`
}

// CanEdit reports whether the actor may modify the itinerary
func (a Actor) CanEdit(it *Itinerary) bool {
	return a.Role == RoleAdmin || it.AgentID == a.UserID
}
