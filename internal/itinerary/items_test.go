package itinerary

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"ITINERARY_BACK-END/internal/models"
)

func TestNormalizeItem(t *testing.T) {
	tests := []struct {
		name      string
		unit      *float64
		total     *float64
		wantUnit  float64
		wantTotal float64
	}{
		{"both present", ptr(10.0), ptr(30.0), 10, 30},
		{"total falls back to unit", ptr(25.0), nil, 25, 25},
		{"nothing present", nil, nil, 0, 0},
		{"total only", nil, ptr(12.5), 0, 12.5},
		{"non numeric total", ptr(8.0), ptr(math.NaN()), 8, 8},
		{"non numeric unit", ptr(math.Inf(1)), nil, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeItem(models.ItineraryItem{UnitPrice: tt.unit, TotalPrice: tt.total})
			if assert.NotNil(t, got.UnitPrice) && assert.NotNil(t, got.TotalPrice) {
				assert.Equal(t, tt.wantUnit, *got.UnitPrice)
				assert.Equal(t, tt.wantTotal, *got.TotalPrice)
			}
			assert.NotNil(t, got.Configuration)
		})
	}
}

func TestAggregateOrderInvariant(t *testing.T) {
	items := []models.ItineraryItem{
		{ID: uuid.New(), TotalPrice: ptr(100.0)},
		{ID: uuid.New(), UnitPrice: ptr(40.0)},
		{ID: uuid.New()},
		{ID: uuid.New(), UnitPrice: ptr(5.0), TotalPrice: ptr(15.0)},
	}
	want := 0.0
	for _, item := range Normalize(items) {
		want += *item.TotalPrice
	}
	assert.Equal(t, 155.0, want)
	assert.Equal(t, want, Aggregate(items))

	reversed := make([]models.ItineraryItem, len(items))
	for i := range items {
		reversed[len(items)-1-i] = items[i]
	}
	assert.Equal(t, want, Aggregate(reversed))
	assert.Zero(t, Aggregate(nil))
}

func TestDaySubtotal(t *testing.T) {
	day1, day2 := uuid.New(), uuid.New()
	items := []models.ItineraryItem{
		{DayID: &day1, TotalPrice: ptr(10.0)},
		{DayID: &day2, TotalPrice: ptr(20.0)},
		{DayID: &day1, UnitPrice: ptr(5.0)},
		{TotalPrice: ptr(99.0)},
	}
	assert.Equal(t, 15.0, DaySubtotal(items, day1))
	assert.Equal(t, 20.0, DaySubtotal(items, day2))
	assert.Zero(t, DaySubtotal(items, uuid.New()))
}
