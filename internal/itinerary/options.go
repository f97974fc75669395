package itinerary

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"ITINERARY_BACK-END/internal/models"
)

// DefaultOptionsLimit caps catalog results for a selection
const DefaultOptionsLimit = 50

// SelectionOptions lists candidate packages for an open selection
type SelectionOptions struct {
	Selection  Selection                `json:"selection"`
	City       string                   `json:"city"`
	Activities []models.ActivityPackage `json:"activities,omitempty"`
	Transfers  []models.TransferPackage `json:"transfers,omitempty"`
}

// Options returns catalog packages that fit the open selection: packages
// for the day's city and, for activities, ones operating in the slot and
// short enough to end before it closes. With an arrival time, slots the
// travelers cannot reach get no activities and durations count from the
// arrival.
func (b *Builder) Options(ctx context.Context, limit int, arrival string) (*SelectionOptions, error) {
	if arrival != "" && !models.ValidClock(arrival) {
		return nil, fmt.Errorf("arrival %q must be HH:MM: %w", arrival, ErrInvalidSelection)
	}
	sel, day, err := b.SelectionContext()
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultOptionsLimit
	}

	out := &SelectionOptions{Selection: *sel, City: day.CityName}
	start := day.TimeSlots.Slot(sel.Slot).Time

	switch sel.Kind {
	case models.PackageTypeActivity:
		if arrival != "" {
			if !slices.Contains(AvailableSlots(arrival), sel.Slot) {
				out.Activities = []models.ActivityPackage{}
				break
			}
			start = arrival
		}
		acts, err := b.catalog.SearchActivities(ctx, day.CityName, limit)
		if err != nil {
			return nil, fmt.Errorf("search activities: %w", err)
		}
		out.Activities = FilterActivities(acts, day.CityName, sel.Slot, start)
	case models.PackageTypeTransfer:
		transfers, err := b.catalog.SearchTransfers(ctx, day.CityName, limit)
		if err != nil {
			return nil, fmt.Errorf("search transfers: %w", err)
		}
		out.Transfers = FilterTransfers(transfers, day.CityName)
	}
	return out, nil
}

// FilterActivities keeps activities in city that operate in the slot and
// fit between start and the slot's end
func FilterActivities(acts []models.ActivityPackage, city string, slot models.SlotName, start string) []models.ActivityPackage {
	out := make([]models.ActivityPackage, 0, len(acts))
	for i := range acts {
		a := &acts[i]
		if city != "" && !strings.EqualFold(strings.TrimSpace(a.DestinationCity), strings.TrimSpace(city)) {
			continue
		}
		if !OperatesIn(a, slot) || !FitsSlot(a.DurationTotalMinutes(), slot, start) {
			continue
		}
		out = append(out, *a)
	}
	return out
}

// FilterTransfers keeps transfers that start or end in city
func FilterTransfers(transfers []models.TransferPackage, city string) []models.TransferPackage {
	needle := strings.ToLower(strings.TrimSpace(city))
	out := make([]models.TransferPackage, 0, len(transfers))
	for _, t := range transfers {
		if needle == "" || mentions(t.FromLocation, needle) || mentions(t.ToLocation, needle) {
			out = append(out, t)
		}
	}
	return out
}

func mentions(location *string, needle string) bool {
	return location != nil && strings.Contains(strings.ToLower(*location), needle)
}
