// Package itinerarytest provides an in-memory data layer and catalog for
// exercising the builder without a database.
package itinerarytest

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"ITINERARY_BACK-END/internal/itinerary"
	"ITINERARY_BACK-END/internal/models"
)

// ErrInjected is returned by operations configured to fail
var ErrInjected = errors.New("injected failure")

// Store is a concurrency-safe in-memory DataLayer and Catalog
type Store struct {
	mu sync.Mutex

	Itineraries map[uuid.UUID]*models.Itinerary
	Queries     map[uuid.UUID]*models.Query
	Days        map[uuid.UUID][]models.Day
	Items       map[uuid.UUID][]models.ItineraryItem
	Activities  map[uuid.UUID]*models.ActivityPackage
	Transfers   map[uuid.UUID]*models.TransferPackage

	// Fail makes the named operation return ErrInjected
	Fail map[string]bool
	// Gate, when set for an operation, blocks it until the channel is closed
	Gate map[string]chan struct{}

	calls         map[string]int
	edited        map[uuid.UUID]time.Time
	totals        []float64
	notifications []models.Notification
	dayUpdates    []models.Day
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		Itineraries: make(map[uuid.UUID]*models.Itinerary),
		Queries:     make(map[uuid.UUID]*models.Query),
		Days:        make(map[uuid.UUID][]models.Day),
		Items:       make(map[uuid.UUID][]models.ItineraryItem),
		Activities:  make(map[uuid.UUID]*models.ActivityPackage),
		Transfers:   make(map[uuid.UUID]*models.TransferPackage),
		Fail:        make(map[string]bool),
		Gate:        make(map[string]chan struct{}),
		calls:       make(map[string]int),
		edited:      make(map[uuid.UUID]time.Time),
	}
}

// touch records an edit of the itinerary; callers hold mu
func (s *Store) touch(itineraryID uuid.UUID) {
	s.edited[itineraryID] = time.Now().UTC()
}

// SetEditedAt backdates the last edit of an itinerary
func (s *Store) SetEditedAt(itineraryID uuid.UUID, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.edited[itineraryID] = at
}

func (s *Store) enter(op string) error {
	s.mu.Lock()
	s.calls[op]++
	gate := s.Gate[op]
	fail := s.Fail[op]
	s.mu.Unlock()
	if gate != nil {
		<-gate
	}
	if fail {
		return fmt.Errorf("%s: %w", op, ErrInjected)
	}
	return nil
}

// SetFail toggles failure injection for an operation
func (s *Store) SetFail(op string, fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Fail[op] = fail
}

// Calls returns how often an operation ran
func (s *Store) Calls(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[op]
}

// PersistedTotals returns every total written through UpdateTotalPrice
func (s *Store) PersistedTotals() []float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]float64{}, s.totals...)
}

// DayUpdates returns every day written through UpdateDay
func (s *Store) DayUpdates() []models.Day {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Day{}, s.dayUpdates...)
}

// AddItinerary seeds an itinerary
func (s *Store) AddItinerary(it models.Itinerary) *models.Itinerary {
	s.mu.Lock()
	defer s.mu.Unlock()
	if it.ID == uuid.Nil {
		it.ID = uuid.New()
	}
	if it.Status == "" {
		it.Status = models.ItineraryStatusDraft
	}
	if it.Currency == "" {
		it.Currency = "USD"
	}
	s.Itineraries[it.ID] = &it
	s.touch(it.ID)
	return &it
}

// AddQuery seeds a query
func (s *Store) AddQuery(q models.Query) *models.Query {
	s.mu.Lock()
	defer s.mu.Unlock()
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	s.Queries[q.ID] = &q
	return &q
}

// AddDay seeds a day
func (s *Store) AddDay(d models.Day) models.Day {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	s.Days[d.ItineraryID] = append(s.Days[d.ItineraryID], d)
	s.touch(d.ItineraryID)
	return d
}

// AddItem seeds an item
func (s *Store) AddItem(item models.ItineraryItem) models.ItineraryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	s.Items[item.ItineraryID] = append(s.Items[item.ItineraryID], item)
	s.touch(item.ItineraryID)
	return item
}

// AddActivity seeds a catalog activity
func (s *Store) AddActivity(a models.ActivityPackage) *models.ActivityPackage {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	s.Activities[a.ID] = &a
	return &a
}

// AddTransfer seeds a catalog transfer
func (s *Store) AddTransfer(t models.TransferPackage) *models.TransferPackage {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	s.Transfers[t.ID] = &t
	return &t
}

// Ping reports the store as reachable unless told to fail
func (s *Store) Ping(ctx context.Context) error {
	return s.enter("Ping")
}

func (s *Store) GetItinerary(ctx context.Context, id uuid.UUID) (*models.Itinerary, error) {
	if err := s.enter("GetItinerary"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.Itineraries[id]
	if !ok {
		return nil, itinerary.ErrNotFound
	}
	cp := *it
	return &cp, nil
}

func (s *Store) GetQuery(ctx context.Context, id uuid.UUID) (*models.Query, error) {
	if err := s.enter("GetQuery"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.Queries[id]
	if !ok {
		return nil, itinerary.ErrNotFound
	}
	cp := *q
	return &cp, nil
}

func (s *Store) ListDays(ctx context.Context, itineraryID uuid.UUID) ([]models.Day, error) {
	if err := s.enter("ListDays"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Day, 0, len(s.Days[itineraryID]))
	for _, d := range s.Days[itineraryID] {
		out = append(out, d.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DayNumber < out[j].DayNumber })
	return out, nil
}

func (s *Store) CreateDays(ctx context.Context, itineraryID uuid.UUID, days []models.Day) ([]models.Day, error) {
	if err := s.enter("CreateDays"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Days[itineraryID]) > 0 {
		return nil, itinerary.ErrDaysExist
	}
	now := time.Now().UTC()
	out := make([]models.Day, len(days))
	for i, d := range days {
		d.ID = uuid.New()
		d.ItineraryID = itineraryID
		d.CreatedAt, d.UpdatedAt = now, now
		out[i] = d.Clone()
		s.Days[itineraryID] = append(s.Days[itineraryID], d.Clone())
	}
	s.touch(itineraryID)
	return out, nil
}

func (s *Store) UpdateDay(ctx context.Context, day models.Day) error {
	if err := s.enter("UpdateDay"); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dayUpdates = append(s.dayUpdates, day.Clone())
	days := s.Days[day.ItineraryID]
	for i := range days {
		if days[i].ID == day.ID {
			days[i] = day.Clone()
			s.touch(day.ItineraryID)
			return nil
		}
	}
	return itinerary.ErrNotFound
}

func (s *Store) ListItems(ctx context.Context, itineraryID uuid.UUID) ([]models.ItineraryItem, error) {
	if err := s.enter("ListItems"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ItineraryItem{}, s.Items[itineraryID]...), nil
}

func (s *Store) CreateItem(ctx context.Context, item models.ItineraryItem) (*models.ItineraryItem, error) {
	if err := s.enter("CreateItem"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.Itineraries[item.ItineraryID]; !ok {
		return nil, itinerary.ErrNotFound
	}
	item.ID = uuid.New()
	item.CreatedAt = time.Now().UTC()
	item.UpdatedAt = item.CreatedAt
	if item.DisplayOrder <= 0 {
		for _, existing := range s.Items[item.ItineraryID] {
			if existing.DisplayOrder > item.DisplayOrder {
				item.DisplayOrder = existing.DisplayOrder
			}
		}
		item.DisplayOrder++
	}
	s.Items[item.ItineraryID] = append(s.Items[item.ItineraryID], item)
	s.touch(item.ItineraryID)
	return &item, nil
}

func (s *Store) DeleteItem(ctx context.Context, itineraryID, itemID uuid.UUID) error {
	if err := s.enter("DeleteItem"); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.Items[itineraryID]
	for i := range items {
		if items[i].ID == itemID {
			s.Items[itineraryID] = append(items[:i:i], items[i+1:]...)
			s.touch(itineraryID)
			return nil
		}
	}
	return itinerary.ErrNotFound
}

// UpdateTotalPrice records the persisted total
func (s *Store) UpdateTotalPrice(ctx context.Context, itineraryID uuid.UUID, total float64) error {
	if err := s.enter("UpdateTotalPrice"); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.totals = append(s.totals, total)
	if it, ok := s.Itineraries[itineraryID]; ok {
		it.TotalPrice = total
		s.touch(itineraryID)
	}
	return nil
}

// SetLocked flips the lock flag of an itinerary
func (s *Store) SetLocked(ctx context.Context, itineraryID, userID uuid.UUID, locked bool) error {
	if err := s.enter("SetLocked"); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.Itineraries[itineraryID]
	if !ok {
		return itinerary.ErrNotFound
	}
	it.IsLocked = locked
	s.touch(itineraryID)
	if locked {
		now := time.Now().UTC()
		it.LockedAt = &now
		it.LockedBy = &userID
	} else {
		it.LockedAt = nil
		it.LockedBy = nil
		if it.Status == models.ItineraryStatusLocked {
			it.Status = models.ItineraryStatusDraft
		}
	}
	return nil
}

// RecentlyEdited returns itineraries whose itinerary row, days or items
// changed at or after since
func (s *Store) RecentlyEdited(ctx context.Context, since time.Time) ([]uuid.UUID, error) {
	if err := s.enter("RecentlyEdited"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []uuid.UUID
	for id, at := range s.edited {
		if !at.Before(since) {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out, nil
}

func (s *Store) GetActivity(ctx context.Context, id uuid.UUID) (*models.ActivityPackage, error) {
	if err := s.enter("GetActivity"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.Activities[id]
	if !ok {
		return nil, itinerary.ErrUnknownPackage
	}
	cp := *a
	return &cp, nil
}

func (s *Store) GetTransfer(ctx context.Context, id uuid.UUID) (*models.TransferPackage, error) {
	if err := s.enter("GetTransfer"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.Transfers[id]
	if !ok {
		return nil, itinerary.ErrUnknownPackage
	}
	cp := *t
	return &cp, nil
}

func (s *Store) SearchActivities(ctx context.Context, city string, limit int) ([]models.ActivityPackage, error) {
	if err := s.enter("SearchActivities"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.ActivityPackage
	for _, a := range s.Activities {
		if city == "" || strings.Contains(strings.ToLower(a.DestinationCity), strings.ToLower(city)) {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Store) SearchTransfers(ctx context.Context, city string, limit int) ([]models.TransferPackage, error) {
	if err := s.enter("SearchTransfers"); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.TransferPackage, 0, len(s.Transfers))
	for _, t := range s.Transfers {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	if city != "" {
		out = itinerary.FilterTransfers(out, city)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// CreateNotification records an inbox notification
func (s *Store) CreateNotification(ctx context.Context, n models.Notification) error {
	if err := s.enter("CreateNotification"); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	s.notifications = append(s.notifications, n)
	return nil
}

// Notifications returns every recorded notification
func (s *Store) Notifications() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Notification{}, s.notifications...)
}

// Listener records builder notifications and persists totals to a Store
type Listener struct {
	Store *Store

	mu       sync.Mutex
	prices   []float64
	days     [][]models.Day
	failures []error
	notices  []itinerary.Notice
}

func (l *Listener) PriceUpdated(ctx context.Context, itineraryID uuid.UUID, total float64) error {
	l.mu.Lock()
	l.prices = append(l.prices, total)
	l.mu.Unlock()
	if l.Store != nil {
		return l.Store.UpdateTotalPrice(ctx, itineraryID, total)
	}
	return nil
}

func (l *Listener) DaysGenerated(itineraryID uuid.UUID, days []models.Day) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.days = append(l.days, days)
}

func (l *Listener) GenerationFailed(itineraryID uuid.UUID, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failures = append(l.failures, err)
}

func (l *Listener) Noticed(itineraryID uuid.UUID, n itinerary.Notice) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.notices = append(l.notices, n)
}

// Prices returns every delivered total
func (l *Listener) Prices() []float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]float64{}, l.prices...)
}

// Generated returns how many generation events were delivered
func (l *Listener) Generated() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.days)
}

// Failures returns every reported generation error
func (l *Listener) Failures() []error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]error{}, l.failures...)
}

// Notices returns every delivered notice
func (l *Listener) Notices() []itinerary.Notice {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]itinerary.Notice{}, l.notices...)
}
