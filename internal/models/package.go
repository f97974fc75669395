package models

import "github.com/google/uuid"

// PricingTier is a named price option of an activity package
type PricingTier struct {
	ID                  uuid.UUID `json:"id" db:"id"`
	PackageID           uuid.UUID `json:"package_id" db:"package_id"`
	Name                string    `json:"package_name" db:"package_name"`
	AdultPrice          float64   `json:"adult_price" db:"adult_price"`
	ChildPrice          float64   `json:"child_price" db:"child_price"`
	InfantPrice         float64   `json:"infant_price" db:"infant_price"`
	TransferIncluded    bool      `json:"transfer_included" db:"transfer_included"`
	TransferPriceAdult  float64   `json:"transfer_price_adult" db:"transfer_price_adult"`
	TransferPriceChild  float64   `json:"transfer_price_child" db:"transfer_price_child"`
	TransferPriceInfant float64   `json:"transfer_price_infant" db:"transfer_price_infant"`
	IsActive            bool      `json:"is_active" db:"is_active"`
	DisplayOrder        int       `json:"display_order" db:"display_order"`
}

// OperationalSlot names one slot an activity operates in
type OperationalSlot struct {
	Slot string `json:"slot"`
}

// OperationalHours restricts when an activity runs
type OperationalHours struct {
	TimeSlots []OperationalSlot `json:"timeSlots,omitempty"`
}

// ActivityPackage is a bookable activity in the operator catalog
type ActivityPackage struct {
	ID                 uuid.UUID         `json:"id" db:"id"`
	OperatorID         uuid.UUID         `json:"operator_id" db:"operator_id"`
	Title              string            `json:"title" db:"title"`
	DestinationCity    string            `json:"destination_city" db:"destination_city"`
	DestinationCountry string            `json:"destination_country" db:"destination_country"`
	BasePrice          *float64          `json:"base_price,omitempty" db:"base_price"`
	Currency           string            `json:"currency" db:"currency"`
	DurationHours      int               `json:"duration_hours" db:"duration_hours"`
	DurationMinutes    int               `json:"duration_minutes" db:"duration_minutes"`
	OperationalHours   *OperationalHours `json:"operational_hours,omitempty" db:"operational_hours"`
	FeaturedImageURL   *string           `json:"featured_image_url,omitempty" db:"featured_image_url"`
	PricingPackages    []PricingTier     `json:"pricing_packages" db:"-"`
}

// DurationTotalMinutes returns the activity length in minutes
func (a *ActivityPackage) DurationTotalMinutes() int {
	return a.DurationHours*60 + a.DurationMinutes
}

// Tier finds a pricing tier by id
func (a *ActivityPackage) Tier(id uuid.UUID) (*PricingTier, bool) {
	for i := range a.PricingPackages {
		if a.PricingPackages[i].ID == id {
			return &a.PricingPackages[i], true
		}
	}
	return nil, false
}

// TransferPackage is a point-to-point transfer in the operator catalog
type TransferPackage struct {
	ID           uuid.UUID `json:"id" db:"id"`
	OperatorID   uuid.UUID `json:"operator_id" db:"operator_id"`
	Title        string    `json:"title" db:"title"`
	FromLocation *string   `json:"from_location,omitempty" db:"from_location"`
	ToLocation   *string   `json:"to_location,omitempty" db:"to_location"`
	PricingMode  string    `json:"pricing_mode" db:"pricing_mode"`
	BasePrice    *float64  `json:"base_price,omitempty" db:"base_price"`
	Currency     string    `json:"currency" db:"currency"`
}
