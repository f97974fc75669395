package itinerary

import (
	"time"

	"github.com/google/uuid"

	"ITINERARY_BACK-END/internal/models"
)

// GenerateDays expands destinations into one day per night in order.
// Dates count from start when it is set.
func GenerateDays(itineraryID uuid.UUID, destinations []models.Destination, start *time.Time) ([]models.Day, error) {
	if len(destinations) == 0 {
		return nil, ErrNoDestinations
	}

	days := make([]models.Day, 0)
	dayNumber := 0
	for _, dest := range destinations {
		for night := 0; night < dest.Nights; night++ {
			dayNumber++
			day := models.Day{
				ItineraryID:  itineraryID,
				DayNumber:    dayNumber,
				CityName:     dest.City,
				DisplayOrder: dayNumber,
				TimeSlots:    models.DefaultTimeSlots(),
			}
			if start != nil {
				date := start.AddDate(0, 0, dayNumber-1)
				day.Date = &date
			}
			days = append(days, day)
		}
	}
	return days, nil
}
