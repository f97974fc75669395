package models

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// SlotName identifies one of the three fixed parts of a day
type SlotName string

const (
	SlotMorning   SlotName = "morning"
	SlotAfternoon SlotName = "afternoon"
	SlotEvening   SlotName = "evening"
)

// SlotNames lists the slots in chronological order
var SlotNames = []SlotName{SlotMorning, SlotAfternoon, SlotEvening}

// Valid reports whether s is one of the fixed slots
func (s SlotName) Valid() bool {
	return slices.Contains(SlotNames, s)
}

// Default start times per slot
const (
	DefaultMorningTime   = "08:00"
	DefaultAfternoonTime = "12:30"
	DefaultEveningTime   = "17:00"
)

// ValidClock reports whether s is a 24-hour "HH:MM" time
func ValidClock(s string) bool {
	if len(s) != 5 {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}

// SlotEntry holds the start time and attached item ids of one slot
type SlotEntry struct {
	Time       string      `json:"time"`
	Activities []uuid.UUID `json:"activities"`
	Transfers  []uuid.UUID `json:"transfers"`
}

// TimeSlots is the per-day slot map persisted as JSON on the day row
type TimeSlots struct {
	Morning   SlotEntry `json:"morning"`
	Afternoon SlotEntry `json:"afternoon"`
	Evening   SlotEntry `json:"evening"`
}

// DefaultTimeSlots returns empty slots with the default start times
func DefaultTimeSlots() TimeSlots {
	return TimeSlots{
		Morning:   SlotEntry{Time: DefaultMorningTime, Activities: []uuid.UUID{}, Transfers: []uuid.UUID{}},
		Afternoon: SlotEntry{Time: DefaultAfternoonTime, Activities: []uuid.UUID{}, Transfers: []uuid.UUID{}},
		Evening:   SlotEntry{Time: DefaultEveningTime, Activities: []uuid.UUID{}, Transfers: []uuid.UUID{}},
	}
}

// Normalized fills in missing times and nil id lists
func (ts TimeSlots) Normalized() TimeSlots {
	def := DefaultTimeSlots()
	fix := func(e, d SlotEntry) SlotEntry {
		if e.Time == "" {
			e.Time = d.Time
		}
		if e.Activities == nil {
			e.Activities = []uuid.UUID{}
		}
		if e.Transfers == nil {
			e.Transfers = []uuid.UUID{}
		}
		return e
	}
	return TimeSlots{
		Morning:   fix(ts.Morning, def.Morning),
		Afternoon: fix(ts.Afternoon, def.Afternoon),
		Evening:   fix(ts.Evening, def.Evening),
	}
}

// Clone returns a copy that shares no id slices with ts
func (ts TimeSlots) Clone() TimeSlots {
	cp := func(e SlotEntry) SlotEntry {
		return SlotEntry{
			Time:       e.Time,
			Activities: append([]uuid.UUID{}, e.Activities...),
			Transfers:  append([]uuid.UUID{}, e.Transfers...),
		}
	}
	return TimeSlots{Morning: cp(ts.Morning), Afternoon: cp(ts.Afternoon), Evening: cp(ts.Evening)}
}

// Slot returns a pointer to the named slot, or nil for an unknown name
func (ts *TimeSlots) Slot(name SlotName) *SlotEntry {
	switch name {
	case SlotMorning:
		return &ts.Morning
	case SlotAfternoon:
		return &ts.Afternoon
	case SlotEvening:
		return &ts.Evening
	}
	return nil
}

func (e *SlotEntry) ids(kind PackageType) *[]uuid.UUID {
	switch kind {
	case PackageTypeActivity:
		return &e.Activities
	case PackageTypeTransfer:
		return &e.Transfers
	}
	return nil
}

// Add appends id to the slot's list for kind. It reports false when the
// slot or kind cannot hold items.
func (ts *TimeSlots) Add(name SlotName, kind PackageType, id uuid.UUID) bool {
	slot := ts.Slot(name)
	if slot == nil {
		return false
	}
	list := slot.ids(kind)
	if list == nil {
		return false
	}
	*list = append(*list, id)
	return true
}

// Remove filters id out of the slot's list for kind
func (ts *TimeSlots) Remove(name SlotName, kind PackageType, id uuid.UUID) bool {
	slot := ts.Slot(name)
	if slot == nil {
		return false
	}
	list := slot.ids(kind)
	if list == nil {
		return false
	}
	kept := make([]uuid.UUID, 0, len(*list))
	removed := false
	for _, existing := range *list {
		if existing == id {
			removed = true
			continue
		}
		kept = append(kept, existing)
	}
	*list = kept
	return removed
}

// Contains reports whether id sits in the slot's list for kind
func (ts *TimeSlots) Contains(name SlotName, kind PackageType, id uuid.UUID) bool {
	slot := ts.Slot(name)
	if slot == nil {
		return false
	}
	list := slot.ids(kind)
	return list != nil && slices.Contains(*list, id)
}

// ItemIDs returns every id referenced by any slot
func (ts *TimeSlots) ItemIDs() []uuid.UUID {
	var out []uuid.UUID
	for _, name := range SlotNames {
		slot := ts.Slot(name)
		out = append(out, slot.Activities...)
		out = append(out, slot.Transfers...)
	}
	return out
}

// Day is one calendar day of an itinerary
type Day struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	ItineraryID  uuid.UUID  `json:"itinerary_id" db:"itinerary_id"`
	DayNumber    int        `json:"day_number" db:"day_number"`
	Date         *time.Time `json:"date,omitempty" db:"date"`
	CityName     string     `json:"city_name" db:"city_name"`
	Notes        *string    `json:"notes,omitempty" db:"notes"`
	DisplayOrder int        `json:"display_order" db:"display_order"`
	TimeSlots    TimeSlots  `json:"time_slots" db:"time_slots"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// Clone returns a deep copy of the day
func (d Day) Clone() Day {
	d.TimeSlots = d.TimeSlots.Clone()
	return d
}
