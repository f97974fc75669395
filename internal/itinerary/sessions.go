package itinerary

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"ITINERARY_BACK-END/internal/models"
)

// Sessions keeps one builder per itinerary and user
type Sessions struct {
	data    DataLayer
	catalog Catalog
	opts    Options

	mu       sync.Mutex
	builders map[string]*Builder
}

// NewSessions creates an empty registry
func NewSessions(data DataLayer, catalog Catalog, opts Options) *Sessions {
	return &Sessions{
		data:     data,
		catalog:  catalog,
		opts:     opts,
		builders: make(map[string]*Builder),
	}
}

// Open returns the actor's builder for the itinerary, creating it when
// needed, and loads it. A load that fails on a new session drops it.
func (s *Sessions) Open(ctx context.Context, itineraryID uuid.UUID, actor models.Actor) (*Builder, error) {
	key := SessionKey(itineraryID, actor.UserID)

	s.mu.Lock()
	b, ok := s.builders[key]
	if !ok || b.Closed() {
		b = NewBuilder(s.data, s.catalog, itineraryID, actor, s.opts)
		s.builders[key] = b
		ok = false
	}
	s.mu.Unlock()

	if err := b.Load(ctx); err != nil {
		if !ok {
			s.drop(key, b)
			b.Close()
		}
		return nil, err
	}
	return b, nil
}

// Get returns an open builder
func (s *Sessions) Get(itineraryID, userID uuid.UUID) (*Builder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.builders[SessionKey(itineraryID, userID)]
	if !ok || b.Closed() {
		return nil, false
	}
	return b, true
}

// Close ends and forgets a session
func (s *Sessions) Close(itineraryID, userID uuid.UUID) bool {
	key := SessionKey(itineraryID, userID)
	s.mu.Lock()
	b, ok := s.builders[key]
	delete(s.builders, key)
	s.mu.Unlock()
	if !ok {
		return false
	}
	b.Close()
	return true
}

// CloseAll ends every session
func (s *Sessions) CloseAll() {
	s.mu.Lock()
	builders := s.builders
	s.builders = make(map[string]*Builder)
	s.mu.Unlock()
	for _, b := range builders {
		b.Close()
	}
}

// ForItinerary returns every open builder editing the itinerary
func (s *Sessions) ForItinerary(itineraryID uuid.UUID) []*Builder {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*Builder
	for _, b := range s.builders {
		if b.ItineraryID() == itineraryID && !b.Closed() {
			out = append(out, b)
		}
	}
	return out
}

// Active reports whether any session edits the itinerary
func (s *Sessions) Active(itineraryID uuid.UUID) bool {
	return len(s.ForItinerary(itineraryID)) > 0
}

func (s *Sessions) drop(key string, b *Builder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.builders[key] == b {
		delete(s.builders, key)
	}
}
