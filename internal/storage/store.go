// Package storage persists itineraries, days, items and the package
// catalog in Postgres.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ITINERARY_BACK-END/internal/itinerary"
	"ITINERARY_BACK-END/internal/models"
)

// Store implements the builder's data layer and catalog on a pgx pool
type Store struct {
	db           *pgxpool.Pool
	queryTimeout time.Duration
}

// NewStore wraps a pool. A non-positive timeout disables per-query limits.
func NewStore(db *pgxpool.Pool, queryTimeout time.Duration) *Store {
	return &Store{db: db, queryTimeout: queryTimeout}
}

// Ping checks database connectivity
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *Store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func notFound(err error, what string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, itinerary.ErrNotFound)
	}
	return err
}

// decodeTimeSlots reads a day's slot JSON, falling back to defaults
func decodeTimeSlots(raw []byte) (models.TimeSlots, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return models.DefaultTimeSlots(), nil
	}
	var ts models.TimeSlots
	if err := json.Unmarshal(raw, &ts); err != nil {
		return models.DefaultTimeSlots(), fmt.Errorf("decode time slots: %w", err)
	}
	return ts.Normalized(), nil
}

// decodeConfiguration reads an item's configuration JSON
func decodeConfiguration(raw []byte) map[string]any {
	config := map[string]any{}
	if len(raw) == 0 || string(raw) == "null" {
		return config
	}
	if err := json.Unmarshal(raw, &config); err != nil {
		return map[string]any{}
	}
	return config
}

func encodeJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
