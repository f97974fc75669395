package itinerary

// BudgetStatus compares a total with the lead's budget range
type BudgetStatus string

const (
	BudgetUnder  BudgetStatus = "under"
	BudgetWithin BudgetStatus = "within"
	BudgetOver   BudgetStatus = "over"
)

// Budget is the outcome of comparing a total with a budget range
type Budget struct {
	Min      float64      `json:"min"`
	Max      float64      `json:"max"`
	Status   BudgetStatus `json:"status"`
	Progress float64      `json:"progress"`
}

// CompareBudget places total within [min, max]. It returns nil unless both
// bounds are set. Progress runs 0..100 across the range.
func CompareBudget(total float64, min, max *float64) *Budget {
	if min == nil || max == nil {
		return nil
	}
	b := &Budget{Min: *min, Max: *max, Status: BudgetWithin}
	switch {
	case total < *min:
		b.Status = BudgetUnder
	case total > *max:
		b.Status = BudgetOver
	}

	if span := *max - *min; span > 0 {
		b.Progress = (total - *min) / span * 100
	} else if total >= *max {
		b.Progress = 100
	}
	if b.Progress < 0 {
		b.Progress = 0
	}
	if b.Progress > 100 {
		b.Progress = 100
	}
	return b
}
