package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"ITINERARY_BACK-END/internal/models"
)

// GetQuery loads the lead query an itinerary was created from
func (s *Store) GetQuery(ctx context.Context, id uuid.UUID) (*models.Query, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var (
		q            models.Query
		destinations []byte
		travelers    []byte
	)
	err := s.db.QueryRow(ctx, `
		SELECT id, lead_id, destinations, origin, nationality, leaving_on,
		       travelers, star_rating, include_transfers, created_at
		FROM itinerary_queries WHERE id = $1
	`, id).Scan(&q.ID, &q.LeadID, &destinations, &q.Origin, &q.Nationality, &q.LeavingOn,
		&travelers, &q.StarRating, &q.IncludeTransfers, &q.CreatedAt)
	if err != nil {
		return nil, notFound(err, "query "+id.String())
	}

	if len(destinations) > 0 {
		if err := json.Unmarshal(destinations, &q.Destinations); err != nil {
			return nil, fmt.Errorf("decode destinations: %w", err)
		}
	}
	if len(travelers) > 0 {
		if err := json.Unmarshal(travelers, &q.Travelers); err != nil {
			return nil, fmt.Errorf("decode travelers: %w", err)
		}
	}
	return &q, nil
}
