package itinerary

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ITINERARY_BACK-END/internal/models"
)

func TestSummarize(t *testing.T) {
	min, max := 100.0, 500.0
	it := &models.Itinerary{
		ID: uuid.New(), Name: "Paris & Rome", Status: models.ItineraryStatusDraft, Currency: "EUR",
		AdultsCount: 2, ChildrenCount: 1, TotalPrice: 10,
		LeadBudgetMin: &min, LeadBudgetMax: &max,
	}
	d1 := models.Day{ID: uuid.New(), DayNumber: 1, CityName: "Paris"}
	d2 := models.Day{ID: uuid.New(), DayNumber: 2, CityName: "Rome"}
	p := func(v float64) *float64 { return &v }
	items := []models.ItineraryItem{
		{ID: uuid.New(), DayID: &d1.ID, PackageType: models.PackageTypeActivity, TotalPrice: p(270)},
		{ID: uuid.New(), DayID: &d1.ID, PackageType: models.PackageTypeTransfer, UnitPrice: p(60)},
		{ID: uuid.New(), PackageType: models.PackageTypeMultiCity, TotalPrice: p(20)},
	}

	s := Summarize(it, []models.Day{d1, d2}, items)
	assert.Equal(t, 350.0, s.TotalPrice)
	assert.Equal(t, 10.0, s.StoredTotal)
	assert.Equal(t, 2, s.DayCount)
	assert.Equal(t, 3, s.ItemCount)
	assert.Equal(t, models.Travelers{Adults: 2, Children: 1}, s.Travelers)
	require.Len(t, s.Days, 2)
	assert.Equal(t, DaySummary{DayID: d1.ID, DayNumber: 1, CityName: "Paris", Activities: 1, Transfers: 1, Subtotal: 330}, s.Days[0])
	assert.Equal(t, 0.0, s.Days[1].Subtotal)
	require.NotNil(t, s.Budget)
	assert.Equal(t, BudgetWithin, s.Budget.Status)
	assert.InDelta(t, 62.5, s.Budget.Progress, 1e-9)
}

func TestSummarizeWithoutBudget(t *testing.T) {
	s := Summarize(&models.Itinerary{ID: uuid.New()}, nil, nil)
	assert.Nil(t, s.Budget)
	assert.Empty(t, s.Days)
	assert.Zero(t, s.TotalPrice)
}
