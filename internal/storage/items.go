package storage

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"ITINERARY_BACK-END/internal/itinerary"
	"ITINERARY_BACK-END/internal/models"
)

const itemColumns = `id, itinerary_id, day_id, package_type, package_id, operator_id,
	package_title, package_image_url, configuration, unit_price, quantity,
	total_price, display_order, notes, created_at, updated_at`

func scanItem(row rowScanner) (models.ItineraryItem, error) {
	var (
		item models.ItineraryItem
		typ  string
		raw  []byte
	)
	err := row.Scan(&item.ID, &item.ItineraryID, &item.DayID, &typ, &item.PackageID, &item.OperatorID,
		&item.PackageTitle, &item.PackageImageURL, &raw, &item.UnitPrice, &item.Quantity,
		&item.TotalPrice, &item.DisplayOrder, &item.Notes, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return item, err
	}
	item.PackageType = models.PackageType(typ)
	item.Configuration = decodeConfiguration(raw)
	return item, nil
}

// ListItems returns an itinerary's items in display order
func (s *Store) ListItems(ctx context.Context, itineraryID uuid.UUID) ([]models.ItineraryItem, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.db.Query(ctx,
		`SELECT `+itemColumns+` FROM itinerary_items WHERE itinerary_id = $1 ORDER BY display_order, created_at`,
		itineraryID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := make([]models.ItineraryItem, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// CreateItem inserts an item. A zero display order appends after the
// itinerary's current last item; a missing total is unit × quantity.
func (s *Store) CreateItem(ctx context.Context, item models.ItineraryItem) (*models.ItineraryItem, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var exists bool
	if err := s.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM itineraries WHERE id = $1)`, item.ItineraryID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("check itinerary: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("itinerary %s: %w", item.ItineraryID, itinerary.ErrNotFound)
	}

	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	if item.TotalPrice == nil && item.UnitPrice != nil {
		total := *item.UnitPrice * float64(item.Quantity)
		item.TotalPrice = &total
	}
	if item.Configuration == nil {
		item.Configuration = map[string]any{}
	}
	config, err := encodeJSON(item.Configuration)
	if err != nil {
		return nil, fmt.Errorf("encode configuration: %w", err)
	}

	row := s.db.QueryRow(ctx, `
		INSERT INTO itinerary_items (
			itinerary_id, day_id, package_type, package_id, operator_id, package_title,
			package_image_url, configuration, unit_price, quantity, total_price, display_order, notes
		)
		VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8::jsonb, $9, $10, $11,
			CASE WHEN $12::int > 0 THEN $12::int
			     ELSE (SELECT COALESCE(MAX(display_order), 0) + 1 FROM itinerary_items WHERE itinerary_id = $1)
			END,
			$13
		)
		RETURNING `+itemColumns,
		item.ItineraryID, item.DayID, string(item.PackageType), item.PackageID, item.OperatorID, item.PackageTitle,
		item.PackageImageURL, config, item.UnitPrice, item.Quantity, item.TotalPrice, item.DisplayOrder, item.Notes)

	created, err := scanItem(row)
	if err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}
	s.touchItinerary(ctx, item.ItineraryID)
	return &created, nil
}

// DeleteItem removes one item of an itinerary
func (s *Store) DeleteItem(ctx context.Context, itineraryID, itemID uuid.UUID) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	tag, err := s.db.Exec(ctx, `DELETE FROM itinerary_items WHERE id = $1 AND itinerary_id = $2`, itemID, itineraryID)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("item %s: %w", itemID, itinerary.ErrNotFound)
	}
	s.touchItinerary(ctx, itineraryID)
	return nil
}

// touchItinerary bumps updated_at so the reconciler picks the itinerary
// up even when the follow-up day write fails
func (s *Store) touchItinerary(ctx context.Context, itineraryID uuid.UUID) {
	if _, err := s.db.Exec(ctx, `UPDATE itineraries SET updated_at = NOW() WHERE id = $1`, itineraryID); err != nil {
		log.Printf("Warning: touching itinerary failed: %v (itinerary_id=%s)", err, itineraryID)
	}
}
