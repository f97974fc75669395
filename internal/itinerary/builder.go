package itinerary

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"ITINERARY_BACK-END/internal/models"
)

// DataLayer is the persistence the builder reads from and writes to
type DataLayer interface {
	GetItinerary(ctx context.Context, id uuid.UUID) (*models.Itinerary, error)
	GetQuery(ctx context.Context, id uuid.UUID) (*models.Query, error)
	ListDays(ctx context.Context, itineraryID uuid.UUID) ([]models.Day, error)
	CreateDays(ctx context.Context, itineraryID uuid.UUID, days []models.Day) ([]models.Day, error)
	UpdateDay(ctx context.Context, day models.Day) error
	ListItems(ctx context.Context, itineraryID uuid.UUID) ([]models.ItineraryItem, error)
	CreateItem(ctx context.Context, item models.ItineraryItem) (*models.ItineraryItem, error)
	DeleteItem(ctx context.Context, itineraryID, itemID uuid.UUID) error
}

// Catalog looks up bookable packages
type Catalog interface {
	GetActivity(ctx context.Context, id uuid.UUID) (*models.ActivityPackage, error)
	GetTransfer(ctx context.Context, id uuid.UUID) (*models.TransferPackage, error)
	SearchActivities(ctx context.Context, city string, limit int) ([]models.ActivityPackage, error)
	SearchTransfers(ctx context.Context, city string, limit int) ([]models.TransferPackage, error)
}

// Listener receives the builder's outward notifications
type Listener interface {
	PriceUpdated(ctx context.Context, itineraryID uuid.UUID, total float64) error
	DaysGenerated(itineraryID uuid.UUID, days []models.Day)
	GenerationFailed(itineraryID uuid.UUID, err error)
	Noticed(itineraryID uuid.UUID, n Notice)
}

// State is the builder's position in its lifecycle
type State string

const (
	StateLoading    State = "loading"
	StateIdleEmpty  State = "idle-empty"
	StateGenerating State = "generating"
	StateReady      State = "ready"
	StateSelecting  State = "selecting"
)

// Notice levels
const (
	NoticeSuccess = "success"
	NoticeWarning = "warning"
	NoticeError   = "error"
)

// Notice is a short user-facing message about an operation's outcome
type Notice struct {
	Level   string    `json:"level"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Selection is the slot the agent is currently picking a package for
type Selection struct {
	DayIndex int                `json:"day_index"`
	DayID    uuid.UUID          `json:"day_id"`
	Slot     models.SlotName    `json:"slot"`
	Kind     models.PackageType `json:"kind"`
}

// Snapshot is a consistent copy of the builder's view
type Snapshot struct {
	ItineraryID uuid.UUID              `json:"itinerary_id"`
	State       State                  `json:"state"`
	Locked      bool                   `json:"locked"`
	Currency    string                 `json:"currency"`
	Travelers   models.Travelers       `json:"travelers"`
	Days        []models.Day           `json:"days"`
	Items       []models.ItineraryItem `json:"items"`
	TotalPrice  float64                `json:"total_price"`
	Selection   *Selection             `json:"selection,omitempty"`
	Budget      *Budget                `json:"budget,omitempty"`
	LastNotice  *Notice                `json:"last_notice,omitempty"`
}

// Options tune a builder session
type Options struct {
	PriceDebounce time.Duration
	WriteTimeout  time.Duration
	Listener      Listener
}

const defaultWriteTimeout = 10 * time.Second

// Builder drives the day-by-day assembly of one itinerary for one agent.
// Mutations are serialized; snapshots may be taken at any time.
type Builder struct {
	data     DataLayer
	catalog  Catalog
	listener Listener
	actor    models.Actor

	itineraryID  uuid.UUID
	writeTimeout time.Duration
	notifier     *PriceNotifier

	opMu sync.Mutex

	mu            sync.Mutex
	state         State
	itinerary     *models.Itinerary
	days          []models.Day
	items         []models.ItineraryItem
	total         float64
	selection     *Selection
	lastNotice    *Notice
	loading       bool
	generating    bool
	autoGenerated bool
	closed        bool

	writes sync.WaitGroup
}

// NewBuilder creates a builder session; call Load before using it
func NewBuilder(data DataLayer, catalog Catalog, itineraryID uuid.UUID, actor models.Actor, opts Options) *Builder {
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = defaultWriteTimeout
	}
	if opts.Listener == nil {
		opts.Listener = nopListener{}
	}
	b := &Builder{
		data:         data,
		catalog:      catalog,
		listener:     opts.Listener,
		actor:        actor,
		itineraryID:  itineraryID,
		writeTimeout: opts.WriteTimeout,
		state:        StateLoading,
	}
	b.notifier = NewPriceNotifier(opts.PriceDebounce, 0, b.sendPrice)
	return b
}

// SessionKey identifies a builder by itinerary and user
func SessionKey(itineraryID, userID uuid.UUID) string {
	return itineraryID.String() + ":" + userID.String()
}

// Key returns the builder's session key
func (b *Builder) Key() string {
	return SessionKey(b.itineraryID, b.actor.UserID)
}

// ItineraryID returns the itinerary the builder edits
func (b *Builder) ItineraryID() uuid.UUID {
	return b.itineraryID
}

// Load fetches the itinerary, days and items, then generates days from
// the query once when there are none. A Load issued while another is in
// flight returns immediately.
func (b *Builder) Load(ctx context.Context) error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return ErrClosed
	}
	if b.loading {
		b.mu.Unlock()
		return nil
	}
	b.loading = true
	prevState := b.state
	b.state = StateLoading
	b.mu.Unlock()

	b.opMu.Lock()
	defer b.opMu.Unlock()

	it, days, items, err := b.fetch(ctx)

	b.mu.Lock()
	b.loading = false
	if b.closed {
		b.mu.Unlock()
		return ErrClosed
	}
	if err != nil {
		log.Printf("[Builder] Error loading itinerary: %v (itinerary_id=%s)", err, b.itineraryID)
		// Keep what we had; a first load with nothing to show settles on ready.
		if prevState == StateLoading {
			prevState = StateReady
		}
		b.state = prevState
		b.mu.Unlock()
		if !errors.Is(err, ErrForbidden) {
			b.notify(NoticeError, "Failed to load itinerary")
		}
		return err
	}

	first := b.itinerary == nil
	b.itinerary = it
	b.days = days
	b.items = items
	b.selection = nil
	if first {
		b.total = Aggregate(items)
		b.notifier.Seed(it.TotalPrice)
		if b.total != it.TotalPrice {
			b.notifier.Notify(b.total)
		}
	} else {
		b.recomputeLocked()
	}

	if len(days) > 0 {
		b.state = StateReady
		b.mu.Unlock()
		return nil
	}
	b.state = StateIdleEmpty
	eligible := it.QueryID != nil && !it.Locked() && !b.autoGenerated && !b.generating
	b.mu.Unlock()

	if eligible {
		b.generate(ctx)
	}
	return nil
}

func (b *Builder) fetch(ctx context.Context) (*models.Itinerary, []models.Day, []models.ItineraryItem, error) {
	it, err := b.data.GetItinerary(ctx, b.itineraryID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("fetch itinerary: %w", err)
	}
	if !b.actor.CanEdit(it) {
		return nil, nil, nil, ErrForbidden
	}
	days, err := b.data.ListDays(ctx, b.itineraryID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("fetch days: %w", err)
	}
	for i := range days {
		days[i].TimeSlots = days[i].TimeSlots.Normalized()
	}
	items, err := b.data.ListItems(ctx, b.itineraryID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("fetch items: %w", err)
	}
	return it, days, Normalize(items), nil
}

// Generate creates days from the itinerary's query when it has none yet.
// It is the manual retry for a failed automatic generation.
func (b *Builder) Generate(ctx context.Context) error {
	b.opMu.Lock()
	defer b.opMu.Unlock()

	b.mu.Lock()
	switch {
	case b.closed:
		b.mu.Unlock()
		return ErrClosed
	case b.itinerary == nil:
		b.mu.Unlock()
		return ErrNotReady
	case b.itinerary.Locked():
		b.mu.Unlock()
		return ErrLocked
	case len(b.days) > 0:
		b.mu.Unlock()
		return ErrDaysExist
	case b.itinerary.QueryID == nil:
		b.mu.Unlock()
		return fmt.Errorf("itinerary has no query: %w", ErrNoDestinations)
	}
	b.mu.Unlock()

	return b.generate(ctx)
}

// generate runs with opMu held
func (b *Builder) generate(ctx context.Context) error {
	b.mu.Lock()
	if b.generating {
		b.mu.Unlock()
		return nil
	}
	b.generating = true
	b.autoGenerated = true
	b.state = StateGenerating
	queryID := *b.itinerary.QueryID
	b.mu.Unlock()

	created, err := b.generateDays(ctx, queryID)

	b.mu.Lock()
	b.generating = false
	if b.closed {
		b.mu.Unlock()
		return ErrClosed
	}
	b.state = StateReady
	if err != nil {
		b.mu.Unlock()
		if errors.Is(err, ErrNoDestinations) {
			log.Printf("[Builder] Query has no destinations (itinerary_id=%s, query_id=%s)", b.itineraryID, queryID)
			b.notify(NoticeWarning, "Days require destinations in the query")
		} else {
			log.Printf("[Builder] Error generating days: %v (itinerary_id=%s)", err, b.itineraryID)
			b.notify(NoticeError, "Failed to generate days from query")
		}
		b.listener.GenerationFailed(b.itineraryID, err)
		return err
	}
	b.days = created
	days := cloneDays(created)
	b.mu.Unlock()

	b.listener.DaysGenerated(b.itineraryID, days)
	b.notify(NoticeSuccess, fmt.Sprintf("Generated %d days from query", len(days)))
	return nil
}

func (b *Builder) generateDays(ctx context.Context, queryID uuid.UUID) ([]models.Day, error) {
	q, err := b.data.GetQuery(ctx, queryID)
	if err != nil {
		return nil, fmt.Errorf("fetch query: %w", err)
	}
	b.mu.Lock()
	start := b.itinerary.StartDate
	b.mu.Unlock()
	if q.LeavingOn != nil {
		start = q.LeavingOn
	}
	days, err := GenerateDays(b.itineraryID, q.Destinations, start)
	if err != nil {
		return nil, err
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("no destination has nights: %w", ErrNoDestinations)
	}
	created, err := b.data.CreateDays(ctx, b.itineraryID, days)
	if err != nil {
		return nil, fmt.Errorf("create days: %w", err)
	}
	for i := range created {
		created[i].TimeSlots = created[i].TimeSlots.Normalized()
	}
	return created, nil
}

// BeginSelection opens the package picker for one slot of one day
func (b *Builder) BeginSelection(dayIndex int, slot models.SlotName, kind models.PackageType) (*Selection, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.editableLocked(); err != nil {
		return nil, err
	}
	if b.state != StateReady && b.state != StateSelecting {
		return nil, ErrNotReady
	}
	if err := b.checkSlotLocked(dayIndex, slot, kind); err != nil {
		return nil, err
	}

	b.selection = &Selection{DayIndex: dayIndex, DayID: b.days[dayIndex].ID, Slot: slot, Kind: kind}
	b.state = StateSelecting
	sel := *b.selection
	return &sel, nil
}

// CancelSelection closes the package picker without changes
func (b *Builder) CancelSelection() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == StateSelecting {
		b.state = StateReady
	}
	b.selection = nil
}

// SelectionContext returns the open selection and the day it targets
func (b *Builder) SelectionContext() (*Selection, *models.Day, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state != StateSelecting || b.selection == nil {
		return nil, nil, ErrNoSelection
	}
	sel := *b.selection
	day := b.days[sel.DayIndex].Clone()
	return &sel, &day, nil
}

// Commit prices the chosen package for the open selection, stores it as
// an item and attaches it to the selected slot. A failed store leaves
// the selection open.
func (b *Builder) Commit(ctx context.Context, packageID uuid.UUID, tierID *uuid.UUID) (*models.ItineraryItem, error) {
	b.opMu.Lock()
	defer b.opMu.Unlock()

	b.mu.Lock()
	if err := b.editableLocked(); err != nil {
		b.mu.Unlock()
		return nil, err
	}
	if b.state != StateSelecting || b.selection == nil {
		b.mu.Unlock()
		return nil, ErrNoSelection
	}
	sel := *b.selection
	travelers := b.itinerary.Travelers()
	displayOrder := len(b.items) + 1
	b.mu.Unlock()

	item, err := b.buildItem(ctx, sel, packageID, tierID, travelers)
	if err != nil {
		return nil, err
	}
	item.DisplayOrder = displayOrder

	created, err := b.data.CreateItem(ctx, *item)
	if err != nil {
		log.Printf("[Builder] Error creating item: %v (itinerary_id=%s, package_id=%s)", err, b.itineraryID, packageID)
		b.notify(NoticeError, "Failed to add "+string(sel.Kind))
		return nil, fmt.Errorf("create item: %w", err)
	}
	stored := NormalizeItem(*created)
	if created.TotalPrice == nil && created.UnitPrice == nil {
		stored.UnitPrice, stored.TotalPrice = item.UnitPrice, item.TotalPrice
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return &stored, nil
	}
	b.items = append(b.items, stored)
	day := b.days[sel.DayIndex].Clone()
	day.TimeSlots.Add(sel.Slot, sel.Kind, stored.ID)
	b.days[sel.DayIndex] = day
	// a selection opened while the item was being stored stays open
	if b.selection != nil && *b.selection == sel {
		b.selection = nil
		b.state = StateReady
	}
	b.recomputeLocked()
	b.mu.Unlock()

	b.persistDay(day.Clone())
	b.refreshItems(ctx)

	if sel.Kind == models.PackageTypeTransfer {
		b.notify(NoticeSuccess, "Transfer added successfully")
	} else {
		b.notify(NoticeSuccess, "Activity added successfully")
	}
	return &stored, nil
}

func (b *Builder) buildItem(ctx context.Context, sel Selection, packageID uuid.UUID, tierID *uuid.UUID, tr models.Travelers) (*models.ItineraryItem, error) {
	config := map[string]any{models.ConfigTimeSlot: string(sel.Slot)}
	item := &models.ItineraryItem{
		ItineraryID: b.itineraryID,
		DayID:       &sel.DayID,
		PackageType: sel.Kind,
		PackageID:   packageID,
		Quantity:    1,
	}

	var price float64
	switch sel.Kind {
	case models.PackageTypeActivity:
		act, err := b.catalog.GetActivity(ctx, packageID)
		if err != nil {
			return nil, fmt.Errorf("activity %s: %w", packageID, err)
		}
		price, err = PriceActivity(act, tierID, tr)
		if err != nil {
			return nil, err
		}
		if tierID != nil {
			config[models.ConfigPricingTierID] = tierID.String()
		}
		item.OperatorID = act.OperatorID
		item.PackageTitle = act.Title
		item.PackageImageURL = act.FeaturedImageURL
	case models.PackageTypeTransfer:
		transfer, err := b.catalog.GetTransfer(ctx, packageID)
		if err != nil {
			return nil, fmt.Errorf("transfer %s: %w", packageID, err)
		}
		price = PriceTransfer(transfer)
		item.OperatorID = transfer.OperatorID
		item.PackageTitle = transfer.Title
	default:
		return nil, ErrInvalidSelection
	}

	total := price * float64(item.Quantity)
	item.UnitPrice = &price
	item.TotalPrice = &total
	item.Configuration = config
	return item, nil
}

// RemoveItem deletes an item and detaches it from its slot. The slot is
// only touched once the delete succeeded.
func (b *Builder) RemoveItem(ctx context.Context, itemID uuid.UUID, dayIndex int, slot models.SlotName, kind models.PackageType) error {
	b.opMu.Lock()
	defer b.opMu.Unlock()

	b.mu.Lock()
	if err := b.editableLocked(); err != nil {
		b.mu.Unlock()
		return err
	}
	if b.state != StateReady && b.state != StateSelecting {
		b.mu.Unlock()
		return ErrNotReady
	}
	if err := b.checkSlotLocked(dayIndex, slot, kind); err != nil {
		b.mu.Unlock()
		return err
	}
	b.mu.Unlock()

	if err := b.data.DeleteItem(ctx, b.itineraryID, itemID); err != nil {
		log.Printf("[Builder] Error deleting item: %v (itinerary_id=%s, item_id=%s)", err, b.itineraryID, itemID)
		b.notify(NoticeError, "Failed to remove item")
		return fmt.Errorf("delete item: %w", err)
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	day := b.days[dayIndex].Clone()
	day.TimeSlots.Remove(slot, kind, itemID)
	b.days[dayIndex] = day
	b.items = removeItem(b.items, itemID)
	b.recomputeLocked()
	b.mu.Unlock()

	b.persistDay(day.Clone())
	b.refreshItems(ctx)
	b.notify(NoticeSuccess, "Item removed successfully")
	return nil
}

// Snapshot returns a copy of the builder's current view
func (b *Builder) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	snap := Snapshot{
		ItineraryID: b.itineraryID,
		State:       b.state,
		Days:        cloneDays(b.days),
		Items:       append([]models.ItineraryItem{}, b.items...),
		TotalPrice:  b.total,
	}
	if b.itinerary != nil {
		snap.Locked = b.itinerary.Locked()
		snap.Currency = b.itinerary.Currency
		snap.Travelers = b.itinerary.Travelers()
		snap.Budget = CompareBudget(b.total, b.itinerary.LeadBudgetMin, b.itinerary.LeadBudgetMax)
	}
	if b.selection != nil {
		sel := *b.selection
		snap.Selection = &sel
	}
	if b.lastNotice != nil {
		n := *b.lastNotice
		snap.LastNotice = &n
	}
	return snap
}

// State returns the current lifecycle state
func (b *Builder) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Closed reports whether Close has been called
func (b *Builder) Closed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed
}

// SetLocked mirrors a lock change made outside the session
func (b *Builder) SetLocked(locked bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.itinerary == nil {
		return
	}
	b.itinerary.IsLocked = locked
	if !locked && b.itinerary.Status == models.ItineraryStatusLocked {
		b.itinerary.Status = models.ItineraryStatusDraft
	}
	if locked {
		b.selection = nil
		if b.state == StateSelecting {
			b.state = StateReady
		}
	}
}

// WaitWrites blocks until pending day writes have finished
func (b *Builder) WaitWrites() {
	b.writes.Wait()
}

// Close ends the session. Late results of in-flight calls are discarded;
// a pending price update is delivered first.
func (b *Builder) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	b.selection = nil
	b.mu.Unlock()

	b.notifier.Flush()
	b.writes.Wait()
}

func (b *Builder) editableLocked() error {
	switch {
	case b.closed:
		return ErrClosed
	case b.itinerary == nil:
		return ErrNotReady
	case b.itinerary.Locked():
		return ErrLocked
	}
	return nil
}

func (b *Builder) checkSlotLocked(dayIndex int, slot models.SlotName, kind models.PackageType) error {
	if dayIndex < 0 || dayIndex >= len(b.days) {
		return fmt.Errorf("day index %d out of range: %w", dayIndex, ErrInvalidSelection)
	}
	if !slot.Valid() {
		return fmt.Errorf("slot %q: %w", slot, ErrInvalidSelection)
	}
	if !kind.SlotAttachable() {
		return fmt.Errorf("kind %q: %w", kind, ErrInvalidSelection)
	}
	return nil
}

// recomputeLocked refreshes the total after the item list changed
func (b *Builder) recomputeLocked() {
	total := Aggregate(b.items)
	if total == b.total {
		return
	}
	b.total = total
	b.notifier.Notify(total)
}

func (b *Builder) refreshItems(ctx context.Context) {
	items, err := b.data.ListItems(ctx, b.itineraryID)
	if err != nil {
		log.Printf("[Builder] Error refreshing items: %v (itinerary_id=%s)", err, b.itineraryID)
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.items = Normalize(items)
	b.recomputeLocked()
}

// persistDay writes a day's slots in the background. Failures are logged
// and never rolled back.
func (b *Builder) persistDay(day models.Day) {
	b.writes.Add(1)
	go func() {
		defer b.writes.Done()
		ctx, cancel := context.WithTimeout(context.Background(), b.writeTimeout)
		defer cancel()
		if err := b.data.UpdateDay(ctx, day); err != nil {
			log.Printf("[Builder] Error updating day time slots: %v (itinerary_id=%s, day_id=%s)", err, b.itineraryID, day.ID)
		}
	}()
}

func (b *Builder) sendPrice(total float64) error {
	ctx, cancel := context.WithTimeout(context.Background(), b.writeTimeout)
	defer cancel()
	if err := b.listener.PriceUpdated(ctx, b.itineraryID, total); err != nil {
		log.Printf("[Builder] Error publishing total price: %v (itinerary_id=%s, total=%.2f)", err, b.itineraryID, total)
		return err
	}
	return nil
}

func (b *Builder) notify(level, message string) {
	n := Notice{Level: level, Message: message, At: time.Now().UTC()}
	b.mu.Lock()
	b.lastNotice = &n
	b.mu.Unlock()
	b.listener.Noticed(b.itineraryID, n)
}

func cloneDays(days []models.Day) []models.Day {
	out := make([]models.Day, len(days))
	for i, d := range days {
		out[i] = d.Clone()
	}
	return out
}

type nopListener struct{}

func (nopListener) PriceUpdated(context.Context, uuid.UUID, float64) error { return nil }
func (nopListener) DaysGenerated(uuid.UUID, []models.Day)                  {}
func (nopListener) GenerationFailed(uuid.UUID, error)                      {}
func (nopListener) Noticed(uuid.UUID, Notice)                              {}
