package itinerary

import (
	"strconv"
	"strings"

	"ITINERARY_BACK-END/internal/models"
)

// Latest minute of the day each slot can still host an activity
var slotEndMinutes = map[models.SlotName]int{
	models.SlotMorning:   12 * 60,
	models.SlotAfternoon: 17 * 60,
	models.SlotEvening:   23*60 + 59,
}

// ParseClock converts "HH:MM" into minutes after midnight. Unparseable
// parts count as zero.
func ParseClock(hhmm string) int {
	hours, minutes, _ := strings.Cut(strings.TrimSpace(hhmm), ":")
	h, _ := strconv.Atoi(hours)
	m, _ := strconv.Atoi(minutes)
	return h*60 + m
}

// AvailableSlots returns the slots still usable on an arrival day.
// Travelers landing before noon get afternoon and evening, before 17:00
// only evening, later nothing. No arrival time means the whole day.
func AvailableSlots(arrival string) []models.SlotName {
	if strings.TrimSpace(arrival) == "" {
		return append([]models.SlotName{}, models.SlotNames...)
	}
	switch at := ParseClock(arrival); {
	case at < 12*60:
		return []models.SlotName{models.SlotAfternoon, models.SlotEvening}
	case at < 17*60:
		return []models.SlotName{models.SlotEvening}
	default:
		return []models.SlotName{}
	}
}

// FitsSlot reports whether an activity of the given length, started at
// current, ends before the slot closes. An empty current always fits.
func FitsSlot(durationMinutes int, slot models.SlotName, current string) bool {
	if strings.TrimSpace(current) == "" {
		return true
	}
	end, ok := slotEndMinutes[slot]
	if !ok {
		return false
	}
	return ParseClock(current)+durationMinutes <= end
}

// OperatesIn reports whether the activity's operational hours allow the
// slot. Activities without restrictions run in every slot.
func OperatesIn(a *models.ActivityPackage, slot models.SlotName) bool {
	if a.OperationalHours == nil || len(a.OperationalHours.TimeSlots) == 0 {
		return true
	}
	for _, s := range a.OperationalHours.TimeSlots {
		if strings.EqualFold(s.Slot, string(slot)) {
			return true
		}
	}
	return false
}
