package itinerary

import (
	"github.com/google/uuid"

	"ITINERARY_BACK-END/internal/models"
)

// DaySummary totals one day
type DaySummary struct {
	DayID      uuid.UUID `json:"day_id"`
	DayNumber  int       `json:"day_number"`
	CityName   string    `json:"city_name"`
	Activities int       `json:"activities"`
	Transfers  int       `json:"transfers"`
	Subtotal   float64   `json:"subtotal"`
}

// Summary is the priced overview of an itinerary
type Summary struct {
	ItineraryID uuid.UUID        `json:"itinerary_id"`
	Name        string           `json:"name"`
	Status      string           `json:"status"`
	Locked      bool             `json:"locked"`
	Currency    string           `json:"currency"`
	Travelers   models.Travelers `json:"travelers"`
	DayCount    int              `json:"day_count"`
	ItemCount   int              `json:"item_count"`
	TotalPrice  float64          `json:"total_price"`
	StoredTotal float64          `json:"stored_total"`
	Days        []DaySummary     `json:"days"`
	Budget      *Budget          `json:"budget,omitempty"`
}

// Summarize totals items per day and overall. TotalPrice is recomputed
// from the items; StoredTotal is what the itinerary row holds.
func Summarize(it *models.Itinerary, days []models.Day, items []models.ItineraryItem) Summary {
	total := Aggregate(items)
	s := Summary{
		ItineraryID: it.ID,
		Name:        it.Name,
		Status:      it.Status,
		Locked:      it.Locked(),
		Currency:    it.Currency,
		Travelers:   it.Travelers(),
		DayCount:    len(days),
		ItemCount:   len(items),
		TotalPrice:  total,
		StoredTotal: it.TotalPrice,
		Days:        make([]DaySummary, 0, len(days)),
		Budget:      CompareBudget(total, it.LeadBudgetMin, it.LeadBudgetMax),
	}
	for _, day := range days {
		ds := DaySummary{
			DayID:     day.ID,
			DayNumber: day.DayNumber,
			CityName:  day.CityName,
			Subtotal:  DaySubtotal(items, day.ID),
		}
		for _, item := range items {
			if item.DayID == nil || *item.DayID != day.ID {
				continue
			}
			switch item.PackageType {
			case models.PackageTypeActivity:
				ds.Activities++
			case models.PackageTypeTransfer:
				ds.Transfers++
			}
		}
		s.Days = append(s.Days, ds)
	}
	return s
}
