package itinerary

import (
	"fmt"
	"strings"
	"time"

	"ITINERARY_BACK-END/internal/models"
)

// DayPatch holds the editable fields of a day. Nil fields are kept.
type DayPatch struct {
	CityName  *string
	Date      *time.Time
	Notes     *string
	SlotTimes map[models.SlotName]string
}

// Empty reports whether the patch changes nothing
func (p DayPatch) Empty() bool {
	return p.CityName == nil && p.Date == nil && p.Notes == nil && len(p.SlotTimes) == 0
}

func (p DayPatch) validate() error {
	if p.Empty() {
		return fmt.Errorf("no fields to update: %w", ErrInvalidDay)
	}
	if p.CityName != nil && strings.TrimSpace(*p.CityName) == "" {
		return fmt.Errorf("city name is empty: %w", ErrInvalidDay)
	}
	for slot, at := range p.SlotTimes {
		if !slot.Valid() {
			return fmt.Errorf("slot %q: %w", slot, ErrInvalidDay)
		}
		if !models.ValidClock(at) {
			return fmt.Errorf("%s time %q must be HH:MM: %w", slot, at, ErrInvalidDay)
		}
	}
	return nil
}

func (p DayPatch) apply(day *models.Day) {
	if p.CityName != nil {
		day.CityName = strings.TrimSpace(*p.CityName)
	}
	if p.Date != nil {
		date := *p.Date
		day.Date = &date
	}
	if p.Notes != nil {
		if notes := strings.TrimSpace(*p.Notes); notes != "" {
			day.Notes = &notes
		} else {
			day.Notes = nil
		}
	}
	for slot, at := range p.SlotTimes {
		day.TimeSlots.Slot(slot).Time = at
	}
}

// UpdateDay edits a day's city, date, notes or slot start times. The
// session's view changes right away; the write to storage is best effort.
func (b *Builder) UpdateDay(dayIndex int, patch DayPatch) (*models.Day, error) {
	if err := patch.validate(); err != nil {
		return nil, err
	}

	b.opMu.Lock()
	defer b.opMu.Unlock()

	b.mu.Lock()
	if err := b.editableLocked(); err != nil {
		b.mu.Unlock()
		return nil, err
	}
	if b.state != StateReady && b.state != StateSelecting {
		b.mu.Unlock()
		return nil, ErrNotReady
	}
	if dayIndex < 0 || dayIndex >= len(b.days) {
		b.mu.Unlock()
		return nil, fmt.Errorf("day index %d out of range: %w", dayIndex, ErrInvalidDay)
	}
	day := b.days[dayIndex].Clone()
	patch.apply(&day)
	b.days[dayIndex] = day
	b.mu.Unlock()

	b.persistDay(day.Clone())
	b.notify(NoticeSuccess, fmt.Sprintf("Day %d updated", day.DayNumber))
	return &day, nil
}
