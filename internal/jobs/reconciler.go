// Package jobs runs periodic maintenance over persisted itineraries.
package jobs

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"

	"ITINERARY_BACK-END/internal/itinerary"
	"ITINERARY_BACK-END/internal/models"
)

const (
	DefaultInterval = 5 * time.Minute
	DefaultLookback = time.Hour
	runTimeout      = 2 * time.Minute
)

// Store is the persistence the reconciler reads and repairs
type Store interface {
	RecentlyEdited(ctx context.Context, since time.Time) ([]uuid.UUID, error)
	GetItinerary(ctx context.Context, id uuid.UUID) (*models.Itinerary, error)
	ListDays(ctx context.Context, itineraryID uuid.UUID) ([]models.Day, error)
	ListItems(ctx context.Context, itineraryID uuid.UUID) ([]models.ItineraryItem, error)
	UpdateDay(ctx context.Context, day models.Day) error
	UpdateTotalPrice(ctx context.Context, itineraryID uuid.UUID, total float64) error
}

// ActiveSessions reports itineraries that are being edited right now
type ActiveSessions interface {
	Active(itineraryID uuid.UUID) bool
}

// Result summarises one reconciliation pass
type Result struct {
	Scanned     int
	Skipped     int
	DaysFixed   int
	TotalsFixed int
	Failed      int
}

// Reconciler heals slot references and stored totals left inconsistent by
// best-effort day writes
type Reconciler struct {
	store    Store
	active   ActiveSessions
	interval time.Duration
	lookback time.Duration
	now      func() time.Time

	sched gocron.Scheduler
}

func NewReconciler(store Store, active ActiveSessions, interval, lookback time.Duration) *Reconciler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if lookback <= 0 {
		lookback = DefaultLookback
	}
	return &Reconciler{
		store:    store,
		active:   active,
		interval: interval,
		lookback: lookback,
		now:      time.Now,
	}
}

// Start schedules the pass on a gocron duration job
func (r *Reconciler) Start() error {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("create scheduler: %w", err)
	}
	_, err = sched.NewJob(
		gocron.DurationJob(r.interval),
		gocron.NewTask(r.tick),
		gocron.WithName("reconcile-slots"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		sched.Shutdown()
		return fmt.Errorf("schedule reconciler: %w", err)
	}
	r.sched = sched
	sched.Start()
	log.Printf("[jobs] Slot reconciler scheduled every %s (lookback %s)", r.interval, r.lookback)
	return nil
}

// Stop waits for a running pass and removes the job
func (r *Reconciler) Stop() error {
	if r.sched == nil {
		return nil
	}
	err := r.sched.Shutdown()
	r.sched = nil
	return err
}

func (r *Reconciler) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()
	res, err := r.RunOnce(ctx)
	if err != nil {
		log.Printf("[jobs] Error reconciling itineraries: %v", err)
		return
	}
	if res.DaysFixed > 0 || res.TotalsFixed > 0 || res.Failed > 0 {
		log.Printf("[jobs] Reconciled %d itineraries: %d days fixed, %d totals fixed, %d skipped, %d failed",
			res.Scanned, res.DaysFixed, res.TotalsFixed, res.Skipped, res.Failed)
	}
}

// RunOnce reconciles every itinerary edited within the lookback window.
// Itineraries with an open builder session are left alone.
func (r *Reconciler) RunOnce(ctx context.Context) (Result, error) {
	var res Result
	ids, err := r.store.RecentlyEdited(ctx, r.now().Add(-r.lookback))
	if err != nil {
		return res, fmt.Errorf("list recent itineraries: %w", err)
	}
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		res.Scanned++
		if r.active != nil && r.active.Active(id) {
			res.Skipped++
			continue
		}
		days, totals, err := r.reconcile(ctx, id)
		res.DaysFixed += days
		res.TotalsFixed += totals
		if err != nil {
			res.Failed++
			log.Printf("[jobs] Error reconciling itinerary: %v (itinerary_id=%s)", err, id)
		}
	}
	return res, nil
}

func (r *Reconciler) reconcile(ctx context.Context, id uuid.UUID) (int, int, error) {
	it, err := r.store.GetItinerary(ctx, id)
	if err != nil {
		return 0, 0, err
	}
	days, err := r.store.ListDays(ctx, id)
	if err != nil {
		return 0, 0, err
	}
	items, err := r.store.ListItems(ctx, id)
	if err != nil {
		return 0, 0, err
	}

	fixedDays := 0
	for _, day := range itinerary.ReconcileSlots(days, items) {
		if err := r.store.UpdateDay(ctx, day); err != nil {
			return fixedDays, 0, fmt.Errorf("update day %d: %w", day.DayNumber, err)
		}
		fixedDays++
	}

	total := itinerary.Aggregate(items)
	if math.Abs(total-it.TotalPrice) < 0.005 {
		return fixedDays, 0, nil
	}
	if err := r.store.UpdateTotalPrice(ctx, id, total); err != nil {
		return fixedDays, 0, fmt.Errorf("update total: %w", err)
	}
	return fixedDays, 1, nil
}
