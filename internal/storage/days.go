package storage

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"ITINERARY_BACK-END/internal/itinerary"
	"ITINERARY_BACK-END/internal/models"
)

const dayColumns = `id, itinerary_id, day_number, date, city_name, notes,
	display_order, time_slots, created_at, updated_at`

func scanDay(row rowScanner) (models.Day, error) {
	var (
		d   models.Day
		raw []byte
	)
	if err := row.Scan(&d.ID, &d.ItineraryID, &d.DayNumber, &d.Date, &d.CityName, &d.Notes,
		&d.DisplayOrder, &raw, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return d, err
	}
	ts, err := decodeTimeSlots(raw)
	if err != nil {
		log.Printf("Warning: %v (day_id=%s)", err, d.ID)
	}
	d.TimeSlots = ts
	return d, nil
}

// ListDays returns an itinerary's days ordered by day number
func (s *Store) ListDays(ctx context.Context, itineraryID uuid.UUID) ([]models.Day, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows, err := s.db.Query(ctx,
		`SELECT `+dayColumns+` FROM itinerary_days WHERE itinerary_id = $1 ORDER BY day_number, display_order`,
		itineraryID)
	if err != nil {
		return nil, fmt.Errorf("list days: %w", err)
	}
	defer rows.Close()

	days := make([]models.Day, 0)
	for rows.Next() {
		d, err := scanDay(rows)
		if err != nil {
			return nil, fmt.Errorf("scan day: %w", err)
		}
		days = append(days, d)
	}
	return days, rows.Err()
}

// CreateDays inserts generated days in one transaction. It refuses to
// add days to an itinerary that already has some.
func (s *Store) CreateDays(ctx context.Context, itineraryID uuid.UUID, days []models.Day) ([]models.Day, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// Serialize concurrent generators on the itinerary row.
	var lockedID uuid.UUID
	if err := tx.QueryRow(ctx, `SELECT id FROM itineraries WHERE id = $1 FOR UPDATE`, itineraryID).Scan(&lockedID); err != nil {
		return nil, notFound(err, "itinerary "+itineraryID.String())
	}

	var existing int
	if err := tx.QueryRow(ctx, `SELECT COUNT(1) FROM itinerary_days WHERE itinerary_id = $1`, itineraryID).Scan(&existing); err != nil {
		return nil, fmt.Errorf("count days: %w", err)
	}
	if existing > 0 {
		return nil, itinerary.ErrDaysExist
	}

	created := make([]models.Day, 0, len(days))
	for _, d := range days {
		slots, err := encodeJSON(d.TimeSlots.Normalized())
		if err != nil {
			return nil, fmt.Errorf("encode time slots: %w", err)
		}
		row := tx.QueryRow(ctx, `
			INSERT INTO itinerary_days (itinerary_id, day_number, date, city_name, notes, display_order, time_slots)
			VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb)
			RETURNING `+dayColumns,
			itineraryID, d.DayNumber, d.Date, d.CityName, d.Notes, d.DisplayOrder, slots)
		day, err := scanDay(row)
		if err != nil {
			return nil, fmt.Errorf("insert day %d: %w", d.DayNumber, err)
		}
		created = append(created, day)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateDay writes a day's city, date, notes and slots
func (s *Store) UpdateDay(ctx context.Context, day models.Day) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	slots, err := encodeJSON(day.TimeSlots.Normalized())
	if err != nil {
		return fmt.Errorf("encode time slots: %w", err)
	}
	tag, err := s.db.Exec(ctx, `
		UPDATE itinerary_days
		SET city_name = $3, date = $4, notes = $5, time_slots = $6::jsonb, updated_at = NOW()
		WHERE id = $1 AND itinerary_id = $2
	`, day.ID, day.ItineraryID, day.CityName, day.Date, day.Notes, slots)
	if err != nil {
		return fmt.Errorf("update day: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("day %s: %w", day.ID, itinerary.ErrNotFound)
	}
	return nil
}
