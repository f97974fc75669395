package itinerary

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"ITINERARY_BACK-END/internal/models"
)

func nonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func count(n int) float64 {
	if n < 0 {
		return 0
	}
	return float64(n)
}

// PriceTier prices a tier for the travelers, transfers included
func PriceTier(t *models.PricingTier, tr models.Travelers) float64 {
	adults, children, infants := count(tr.Adults), count(tr.Children), count(tr.Infants)
	return nonNegative(t.AdultPrice)*adults +
		nonNegative(t.ChildPrice)*children +
		nonNegative(t.InfantPrice)*infants +
		nonNegative(t.TransferPriceAdult)*adults +
		nonNegative(t.TransferPriceChild)*children +
		nonNegative(t.TransferPriceInfant)*infants
}

// PriceActivity prices an activity for the travelers. With a tier id the
// tier prices apply; otherwise the base price is charged per adult and
// child, infants travel free.
func PriceActivity(a *models.ActivityPackage, tierID *uuid.UUID, tr models.Travelers) (float64, error) {
	if tierID != nil {
		tier, ok := a.Tier(*tierID)
		if !ok {
			return 0, fmt.Errorf("activity %s tier %s: %w", a.ID, *tierID, ErrUnknownPricingTier)
		}
		return PriceTier(tier, tr), nil
	}
	if a.BasePrice == nil {
		return 0, nil
	}
	return nonNegative(*a.BasePrice) * (count(tr.Adults) + count(tr.Children)), nil
}

// PriceTransfer returns the flat transfer price
func PriceTransfer(t *models.TransferPackage) float64 {
	if t.BasePrice == nil {
		return 0
	}
	return nonNegative(*t.BasePrice)
}
