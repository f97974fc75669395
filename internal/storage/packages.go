package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"ITINERARY_BACK-END/internal/itinerary"
	"ITINERARY_BACK-END/internal/models"
)

func unknownPackage(err error, what string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, itinerary.ErrUnknownPackage)
	}
	return fmt.Errorf("load %s: %w", what, err)
}

const activityColumns = `id, operator_id, title, destination_city, destination_country,
	base_price, currency, duration_hours, duration_minutes, operational_hours, featured_image_url`

func scanActivity(row rowScanner) (models.ActivityPackage, error) {
	var (
		a   models.ActivityPackage
		raw []byte
	)
	if err := row.Scan(&a.ID, &a.OperatorID, &a.Title, &a.DestinationCity, &a.DestinationCountry,
		&a.BasePrice, &a.Currency, &a.DurationHours, &a.DurationMinutes, &raw, &a.FeaturedImageURL); err != nil {
		return a, err
	}
	if len(raw) > 0 && string(raw) != "null" {
		var hours models.OperationalHours
		if err := json.Unmarshal(raw, &hours); err != nil {
			log.Printf("Warning: failed to decode operational hours: %v (package_id=%s)", err, a.ID)
		} else {
			a.OperationalHours = &hours
		}
	}
	a.PricingPackages = []models.PricingTier{}
	return a, nil
}

// GetActivity loads a published activity with its active pricing tiers
func (s *Store) GetActivity(ctx context.Context, id uuid.UUID) (*models.ActivityPackage, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	a, err := scanActivity(s.db.QueryRow(ctx,
		`SELECT `+activityColumns+` FROM activity_packages WHERE id = $1 AND status = 'published'`, id))
	if err != nil {
		return nil, unknownPackage(err, "activity "+id.String())
	}
	acts := []models.ActivityPackage{a}
	if err := s.attachTiers(ctx, acts); err != nil {
		return nil, err
	}
	return &acts[0], nil
}

// SearchActivities lists published activities, optionally in one city
func (s *Store) SearchActivities(ctx context.Context, city string, limit int) ([]models.ActivityPackage, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.db.Query(ctx, `
		SELECT `+activityColumns+`
		FROM activity_packages
		WHERE status = 'published'
		  AND ($1 = '' OR destination_city ILIKE '%' || $1 || '%')
		ORDER BY title
		LIMIT $2
	`, city, limit)
	if err != nil {
		return nil, fmt.Errorf("search activities: %w", err)
	}
	defer rows.Close()

	acts := make([]models.ActivityPackage, 0)
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		acts = append(acts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := s.attachTiers(ctx, acts); err != nil {
		return nil, err
	}
	return acts, nil
}

func (s *Store) attachTiers(ctx context.Context, acts []models.ActivityPackage) error {
	if len(acts) == 0 {
		return nil
	}
	ids := make([]string, len(acts))
	index := make(map[uuid.UUID]int, len(acts))
	for i, a := range acts {
		ids[i] = a.ID.String()
		index[a.ID] = i
	}

	rows, err := s.db.Query(ctx, `
		SELECT id, package_id, package_name, adult_price, child_price,
		       COALESCE(infant_price, 0), transfer_included,
		       COALESCE(transfer_price_adult, 0), COALESCE(transfer_price_child, 0),
		       COALESCE(transfer_price_infant, 0), is_active, display_order
		FROM activity_pricing_packages
		WHERE package_id = ANY($1::uuid[]) AND is_active
		ORDER BY display_order
	`, ids)
	if err != nil {
		return fmt.Errorf("load pricing tiers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t models.PricingTier
		if err := rows.Scan(&t.ID, &t.PackageID, &t.Name, &t.AdultPrice, &t.ChildPrice,
			&t.InfantPrice, &t.TransferIncluded, &t.TransferPriceAdult, &t.TransferPriceChild,
			&t.TransferPriceInfant, &t.IsActive, &t.DisplayOrder); err != nil {
			return fmt.Errorf("scan pricing tier: %w", err)
		}
		if i, ok := index[t.PackageID]; ok {
			acts[i].PricingPackages = append(acts[i].PricingPackages, t)
		}
	}
	return rows.Err()
}

const transferColumns = `id, operator_id, title, from_location, to_location, pricing_mode, base_price, currency`

func scanTransfer(row rowScanner) (models.TransferPackage, error) {
	var t models.TransferPackage
	err := row.Scan(&t.ID, &t.OperatorID, &t.Title, &t.FromLocation, &t.ToLocation,
		&t.PricingMode, &t.BasePrice, &t.Currency)
	return t, err
}

// GetTransfer loads a published transfer
func (s *Store) GetTransfer(ctx context.Context, id uuid.UUID) (*models.TransferPackage, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	t, err := scanTransfer(s.db.QueryRow(ctx,
		`SELECT `+transferColumns+` FROM transfer_packages WHERE id = $1 AND status = 'published'`, id))
	if err != nil {
		return nil, unknownPackage(err, "transfer "+id.String())
	}
	return &t, nil
}

// SearchTransfers lists published transfers touching a city
func (s *Store) SearchTransfers(ctx context.Context, city string, limit int) ([]models.TransferPackage, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.db.Query(ctx, `
		SELECT `+transferColumns+`
		FROM transfer_packages
		WHERE status = 'published'
		  AND ($1 = '' OR from_location ILIKE '%' || $1 || '%' OR to_location ILIKE '%' || $1 || '%')
		ORDER BY title
		LIMIT $2
	`, city, limit)
	if err != nil {
		return nil, fmt.Errorf("search transfers: %w", err)
	}
	defer rows.Close()

	transfers := make([]models.TransferPackage, 0)
	for rows.Next() {
		t, err := scanTransfer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		transfers = append(transfers, t)
	}
	return transfers, rows.Err()
}
