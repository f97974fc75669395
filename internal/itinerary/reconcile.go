package itinerary

import (
	"github.com/google/uuid"

	"ITINERARY_BACK-END/internal/models"
)

// ReconcileSlots repairs slot references after partial writes. Ids that
// no longer name an item of the slot's kind on that day are dropped, and
// items whose configuration names a slot they are missing from are put
// back. It returns only the days that changed.
func ReconcileSlots(days []models.Day, items []models.ItineraryItem) []models.Day {
	byID := make(map[uuid.UUID]*models.ItineraryItem, len(items))
	for i := range items {
		byID[items[i].ID] = &items[i]
	}

	var changed []models.Day
	for _, day := range days {
		fixed := day.Clone()
		fixed.TimeSlots = fixed.TimeSlots.Normalized()
		dirty := false

		for _, name := range models.SlotNames {
			slot := fixed.TimeSlots.Slot(name)
			for _, kind := range []models.PackageType{models.PackageTypeActivity, models.PackageTypeTransfer} {
				list := &slot.Activities
				if kind == models.PackageTypeTransfer {
					list = &slot.Transfers
				}
				kept := make([]uuid.UUID, 0, len(*list))
				for _, id := range *list {
					item, ok := byID[id]
					if !ok || item.PackageType != kind || (item.DayID != nil && *item.DayID != day.ID) {
						dirty = true
						continue
					}
					kept = append(kept, id)
				}
				*list = kept
			}
		}

		for i := range items {
			item := &items[i]
			if item.DayID == nil || *item.DayID != day.ID || !item.PackageType.SlotAttachable() {
				continue
			}
			slot, ok := item.ConfiguredSlot()
			if !ok || fixed.TimeSlots.Contains(slot, item.PackageType, item.ID) {
				continue
			}
			if referencedElsewhere(&fixed.TimeSlots, item.ID) {
				continue
			}
			fixed.TimeSlots.Add(slot, item.PackageType, item.ID)
			dirty = true
		}

		if dirty {
			changed = append(changed, fixed)
		}
	}
	return changed
}

func referencedElsewhere(ts *models.TimeSlots, id uuid.UUID) bool {
	for _, ref := range ts.ItemIDs() {
		if ref == id {
			return true
		}
	}
	return false
}
