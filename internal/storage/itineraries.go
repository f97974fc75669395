package storage

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"ITINERARY_BACK-END/internal/itinerary"
	"ITINERARY_BACK-END/internal/models"
)

const itineraryColumns = `id, lead_id, agent_id, query_id, name, status,
	adults_count, children_count, infants_count, start_date, end_date,
	total_price, currency, lead_budget_min, lead_budget_max,
	is_locked, locked_at, locked_by, created_at, updated_at`

func scanItinerary(row rowScanner) (*models.Itinerary, error) {
	var it models.Itinerary
	err := row.Scan(
		&it.ID, &it.LeadID, &it.AgentID, &it.QueryID, &it.Name, &it.Status,
		&it.AdultsCount, &it.ChildrenCount, &it.InfantsCount, &it.StartDate, &it.EndDate,
		&it.TotalPrice, &it.Currency, &it.LeadBudgetMin, &it.LeadBudgetMax,
		&it.IsLocked, &it.LockedAt, &it.LockedBy, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// GetItinerary loads one itinerary
func (s *Store) GetItinerary(ctx context.Context, id uuid.UUID) (*models.Itinerary, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	it, err := scanItinerary(s.db.QueryRow(ctx,
		`SELECT `+itineraryColumns+` FROM itineraries WHERE id = $1`, id))
	if err != nil {
		return nil, notFound(err, "itinerary "+id.String())
	}
	return it, nil
}

// UpdateTotalPrice persists the aggregate total of an itinerary
func (s *Store) UpdateTotalPrice(ctx context.Context, itineraryID uuid.UUID, total float64) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	tag, err := s.db.Exec(ctx,
		`UPDATE itineraries SET total_price = $2, updated_at = NOW() WHERE id = $1`,
		itineraryID, total)
	if err != nil {
		return fmt.Errorf("update total price: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("itinerary %s: %w", itineraryID, itinerary.ErrNotFound)
	}
	return nil
}

// SetLocked locks or unlocks an itinerary on behalf of userID
func (s *Store) SetLocked(ctx context.Context, itineraryID, userID uuid.UUID, locked bool) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var (
		lockedAt *time.Time
		lockedBy *uuid.UUID
	)
	if locked {
		now := time.Now().UTC()
		lockedAt, lockedBy = &now, &userID
	}

	tag, err := s.db.Exec(ctx, `
		UPDATE itineraries
		SET is_locked = $2,
		    locked_at = $3,
		    locked_by = $4,
		    status = CASE WHEN NOT $2 AND status = 'locked' THEN 'draft' ELSE status END,
		    updated_at = NOW()
		WHERE id = $1
	`, itineraryID, locked, lockedAt, lockedBy)
	if err != nil {
		return fmt.Errorf("set lock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("itinerary %s: %w", itineraryID, itinerary.ErrNotFound)
	}
	log.Printf("Itinerary lock changed (itinerary_id=%s, user_id=%s, locked=%t)", itineraryID, userID, locked)
	return nil
}

// RecentlyEdited lists itineraries whose row, days or items changed since t
func (s *Store) RecentlyEdited(ctx context.Context, since time.Time) ([]uuid.UUID, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	// Deleted items leave no row behind, so item writes also touch the
	// itinerary row.
	rows, err := s.db.Query(ctx, `
		SELECT id FROM itineraries WHERE updated_at >= $1
		UNION
		SELECT itinerary_id FROM itinerary_items WHERE updated_at >= $1
		UNION
		SELECT itinerary_id FROM itinerary_days WHERE updated_at >= $1
	`, since)
	if err != nil {
		return nil, fmt.Errorf("recently edited: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
