package itinerary_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ITINERARY_BACK-END/internal/itinerary"
	"ITINERARY_BACK-END/internal/itinerary/itinerarytest"
	"ITINERARY_BACK-END/internal/models"
)

func ptr[T any](v T) *T { return &v }

type fixture struct {
	store    *itinerarytest.Store
	listener *itinerarytest.Listener
	agent    models.Actor
	it       *models.Itinerary
}

func newFixture(t *testing.T, destinations ...models.Destination) *fixture {
	t.Helper()
	store := itinerarytest.NewStore()
	agent := models.Actor{UserID: uuid.New(), Role: models.RoleAgent}

	var queryID *uuid.UUID
	if destinations != nil {
		q := store.AddQuery(models.Query{Destinations: destinations})
		queryID = &q.ID
	}
	it := store.AddItinerary(models.Itinerary{
		AgentID:       agent.UserID,
		QueryID:       queryID,
		Name:          "Europe spring",
		AdultsCount:   2,
		ChildrenCount: 1,
		InfantsCount:  1,
		LeadBudgetMin: ptr(100.0),
		LeadBudgetMax: ptr(500.0),
	})
	return &fixture{
		store:    store,
		listener: &itinerarytest.Listener{Store: store},
		agent:    agent,
		it:       it,
	}
}

func (f *fixture) builder(debounce time.Duration) *itinerary.Builder {
	return itinerary.NewBuilder(f.store, f.store, f.it.ID, f.agent, itinerary.Options{
		PriceDebounce: debounce,
		Listener:      f.listener,
	})
}

func TestLoadGeneratesDaysOnce(t *testing.T) {
	f := newFixture(t, models.Destination{City: "Paris", Nights: 2}, models.Destination{City: "Rome", Nights: 1})
	b := f.builder(10 * time.Millisecond)
	defer b.Close()

	require.NoError(t, b.Load(context.Background()))

	snap := b.Snapshot()
	assert.Equal(t, itinerary.StateReady, snap.State)
	require.Len(t, snap.Days, 3)
	assert.Equal(t, "Paris", snap.Days[0].CityName)
	assert.Equal(t, "Paris", snap.Days[1].CityName)
	assert.Equal(t, "Rome", snap.Days[2].CityName)
	assert.Equal(t, 1, f.store.Calls("CreateDays"))
	assert.Equal(t, 1, f.listener.Generated())

	require.NoError(t, b.Load(context.Background()))
	assert.Equal(t, 1, f.store.Calls("CreateDays"))
}

func TestLoadWithoutQueryStaysEmpty(t *testing.T) {
	f := newFixture(t)
	b := f.builder(10 * time.Millisecond)
	defer b.Close()

	require.NoError(t, b.Load(context.Background()))
	assert.Equal(t, itinerary.StateIdleEmpty, b.State())
	assert.Zero(t, f.store.Calls("GetQuery"))
}

func TestGenerationWithoutDestinationsWarns(t *testing.T) {
	f := newFixture(t, []models.Destination{}...)
	b := f.builder(10 * time.Millisecond)
	defer b.Close()

	require.NoError(t, b.Load(context.Background()))

	snap := b.Snapshot()
	assert.Equal(t, itinerary.StateReady, snap.State)
	assert.Empty(t, snap.Days)
	require.NotNil(t, snap.LastNotice)
	assert.Equal(t, itinerary.NoticeWarning, snap.LastNotice.Level)
	assert.Zero(t, f.store.Calls("CreateDays"))
}

func TestGenerationFailureDoesNotRetry(t *testing.T) {
	f := newFixture(t, models.Destination{City: "Oslo", Nights: 2})
	f.store.SetFail("CreateDays", true)
	b := f.builder(10 * time.Millisecond)
	defer b.Close()

	require.NoError(t, b.Load(context.Background()))
	assert.Equal(t, itinerary.StateReady, b.State())
	require.NotNil(t, b.Snapshot().LastNotice)
	assert.Equal(t, itinerary.NoticeError, b.Snapshot().LastNotice.Level)
	require.Len(t, f.listener.Failures(), 1)
	assert.ErrorIs(t, f.listener.Failures()[0], itinerarytest.ErrInjected)

	require.NoError(t, b.Load(context.Background()))
	assert.Equal(t, 1, f.store.Calls("CreateDays"))

	f.store.SetFail("CreateDays", false)
	require.NoError(t, b.Generate(context.Background()))
	assert.Len(t, b.Snapshot().Days, 2)
	assert.ErrorIs(t, b.Generate(context.Background()), itinerary.ErrDaysExist)
}

func TestLoadFailureKeepsPriorState(t *testing.T) {
	f := newFixture(t, models.Destination{City: "Paris", Nights: 1})
	b := f.builder(10 * time.Millisecond)
	defer b.Close()
	require.NoError(t, b.Load(context.Background()))

	f.store.SetFail("ListItems", true)
	err := b.Load(context.Background())
	assert.ErrorIs(t, err, itinerarytest.ErrInjected)

	snap := b.Snapshot()
	assert.Equal(t, itinerary.StateReady, snap.State)
	assert.Len(t, snap.Days, 1)
}

func TestLoadRejectsOtherAgents(t *testing.T) {
	f := newFixture(t)
	stranger := models.Actor{UserID: uuid.New(), Role: models.RoleAgent}
	b := itinerary.NewBuilder(f.store, f.store, f.it.ID, stranger, itinerary.Options{})
	defer b.Close()

	assert.ErrorIs(t, b.Load(context.Background()), itinerary.ErrForbidden)
}

func TestOverlappingLoadsAreCollapsed(t *testing.T) {
	f := newFixture(t)
	gate := make(chan struct{})
	f.store.Gate["GetItinerary"] = gate
	b := f.builder(10 * time.Millisecond)
	defer b.Close()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, b.Load(context.Background()))
	}()
	assert.Eventually(t, func() bool { return f.store.Calls("GetItinerary") == 1 }, time.Second, time.Millisecond)

	require.NoError(t, b.Load(context.Background()))
	close(gate)
	wg.Wait()

	assert.Equal(t, 1, f.store.Calls("GetItinerary"))
}

func TestCommitActivityPricesAndAttaches(t *testing.T) {
	f := newFixture(t, models.Destination{City: "Paris", Nights: 2})
	tierID := uuid.New()
	act := f.store.AddActivity(models.ActivityPackage{
		OperatorID:      uuid.New(),
		Title:           "Louvre guided tour",
		DestinationCity: "Paris",
		PricingPackages: []models.PricingTier{
			{ID: tierID, AdultPrice: 100, ChildPrice: 50, TransferPriceAdult: 10, IsActive: true},
		},
	})
	b := f.builder(10 * time.Millisecond)
	require.NoError(t, b.Load(context.Background()))

	_, err := b.BeginSelection(1, models.SlotAfternoon, models.PackageTypeActivity)
	require.NoError(t, err)
	assert.Equal(t, itinerary.StateSelecting, b.State())

	item, err := b.Commit(context.Background(), act.ID, &tierID)
	require.NoError(t, err)
	b.WaitWrites()

	assert.Equal(t, 270.0, *item.UnitPrice)
	assert.Equal(t, 270.0, *item.TotalPrice)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, act.OperatorID, item.OperatorID)
	assert.Equal(t, "afternoon", item.Configuration[models.ConfigTimeSlot])

	snap := b.Snapshot()
	assert.Equal(t, itinerary.StateReady, snap.State)
	assert.Nil(t, snap.Selection)
	assert.Equal(t, []uuid.UUID{item.ID}, snap.Days[1].TimeSlots.Afternoon.Activities)
	assert.Equal(t, 270.0, snap.TotalPrice)
	assert.Equal(t, itinerary.BudgetWithin, snap.Budget.Status)

	updates := f.store.DayUpdates()
	require.Len(t, updates, 1)
	assert.Equal(t, []uuid.UUID{item.ID}, updates[0].TimeSlots.Afternoon.Activities)

	b.Close()
	assert.Equal(t, []float64{270}, f.store.PersistedTotals())
}

func TestCommitTransferIsFlat(t *testing.T) {
	f := newFixture(t, models.Destination{City: "Rome", Nights: 1})
	tr := f.store.AddTransfer(models.TransferPackage{Title: "Airport pickup", BasePrice: ptr(60.0), ToLocation: ptr("Rome")})
	b := f.builder(10 * time.Millisecond)
	defer b.Close()
	require.NoError(t, b.Load(context.Background()))

	_, err := b.BeginSelection(0, models.SlotMorning, models.PackageTypeTransfer)
	require.NoError(t, err)
	item, err := b.Commit(context.Background(), tr.ID, nil)
	require.NoError(t, err)
	b.WaitWrites()

	assert.Equal(t, 60.0, *item.TotalPrice)
	assert.Equal(t, []uuid.UUID{item.ID}, b.Snapshot().Days[0].TimeSlots.Morning.Transfers)
}

func TestCommitFailureKeepsSelection(t *testing.T) {
	f := newFixture(t, models.Destination{City: "Paris", Nights: 1})
	act := f.store.AddActivity(models.ActivityPackage{Title: "Seine cruise", BasePrice: ptr(30.0)})
	f.store.SetFail("CreateItem", true)
	b := f.builder(10 * time.Millisecond)
	defer b.Close()
	require.NoError(t, b.Load(context.Background()))

	_, err := b.BeginSelection(0, models.SlotEvening, models.PackageTypeActivity)
	require.NoError(t, err)
	_, err = b.Commit(context.Background(), act.ID, nil)
	assert.ErrorIs(t, err, itinerarytest.ErrInjected)

	snap := b.Snapshot()
	assert.Equal(t, itinerary.StateSelecting, snap.State)
	assert.Empty(t, snap.Items)
	assert.Empty(t, snap.Days[0].TimeSlots.Evening.Activities)
	assert.Zero(t, f.store.Calls("UpdateDay"))
}

func TestCommitSurvivesFailedDayWrite(t *testing.T) {
	f := newFixture(t, models.Destination{City: "Paris", Nights: 1})
	act := f.store.AddActivity(models.ActivityPackage{Title: "Seine cruise", BasePrice: ptr(30.0)})
	f.store.SetFail("UpdateDay", true)
	b := f.builder(10 * time.Millisecond)
	defer b.Close()
	require.NoError(t, b.Load(context.Background()))

	_, err := b.BeginSelection(0, models.SlotEvening, models.PackageTypeActivity)
	require.NoError(t, err)
	item, err := b.Commit(context.Background(), act.ID, nil)
	require.NoError(t, err)
	b.WaitWrites()

	snap := b.Snapshot()
	assert.Equal(t, []uuid.UUID{item.ID}, snap.Days[0].TimeSlots.Evening.Activities)
	assert.Equal(t, 90.0, snap.TotalPrice)
}

func TestRemoveItemStripsSlotAndLowersTotal(t *testing.T) {
	f := newFixture(t)
	day1 := f.store.AddDay(models.Day{ItineraryID: f.it.ID, DayNumber: 1, CityName: "Paris", TimeSlots: models.DefaultTimeSlots()})
	day2 := models.Day{ItineraryID: f.it.ID, DayNumber: 2, CityName: "Paris", TimeSlots: models.DefaultTimeSlots()}
	f.store.AddItem(models.ItineraryItem{ItineraryID: f.it.ID, DayID: &day1.ID, PackageType: models.PackageTypeActivity, TotalPrice: ptr(80.0)})
	gone := f.store.AddItem(models.ItineraryItem{ItineraryID: f.it.ID, PackageType: models.PackageTypeActivity, UnitPrice: ptr(45.0)})
	day2.TimeSlots.Add(models.SlotAfternoon, models.PackageTypeActivity, gone.ID)
	f.store.AddDay(day2)

	b := f.builder(10 * time.Millisecond)
	defer b.Close()
	require.NoError(t, b.Load(context.Background()))
	before := b.Snapshot().TotalPrice
	assert.Equal(t, 125.0, before)

	require.NoError(t, b.RemoveItem(context.Background(), gone.ID, 1, models.SlotAfternoon, models.PackageTypeActivity))
	b.WaitWrites()

	snap := b.Snapshot()
	assert.NotContains(t, snap.Days[1].TimeSlots.Afternoon.Activities, gone.ID)
	assert.Equal(t, before-45.0, snap.TotalPrice)
	assert.Len(t, snap.Items, 1)
}

func TestRemoveFailureLeavesSlot(t *testing.T) {
	f := newFixture(t)
	item := f.store.AddItem(models.ItineraryItem{ItineraryID: f.it.ID, PackageType: models.PackageTypeActivity, TotalPrice: ptr(20.0)})
	day := models.Day{ItineraryID: f.it.ID, DayNumber: 1, TimeSlots: models.DefaultTimeSlots()}
	day.TimeSlots.Add(models.SlotMorning, models.PackageTypeActivity, item.ID)
	f.store.AddDay(day)
	f.store.SetFail("DeleteItem", true)

	b := f.builder(10 * time.Millisecond)
	defer b.Close()
	require.NoError(t, b.Load(context.Background()))

	err := b.RemoveItem(context.Background(), item.ID, 0, models.SlotMorning, models.PackageTypeActivity)
	assert.ErrorIs(t, err, itinerarytest.ErrInjected)

	snap := b.Snapshot()
	assert.Equal(t, []uuid.UUID{item.ID}, snap.Days[0].TimeSlots.Morning.Activities)
	assert.Equal(t, 20.0, snap.TotalPrice)
	assert.Zero(t, f.store.Calls("UpdateDay"))
}

func TestLockedItineraryRejectsMutations(t *testing.T) {
	f := newFixture(t)
	f.it.IsLocked = true
	f.store.AddDay(models.Day{ItineraryID: f.it.ID, DayNumber: 1, TimeSlots: models.DefaultTimeSlots()})

	b := f.builder(10 * time.Millisecond)
	defer b.Close()
	require.NoError(t, b.Load(context.Background()))

	_, err := b.BeginSelection(0, models.SlotMorning, models.PackageTypeActivity)
	assert.ErrorIs(t, err, itinerary.ErrLocked)
	err = b.RemoveItem(context.Background(), uuid.New(), 0, models.SlotMorning, models.PackageTypeActivity)
	assert.ErrorIs(t, err, itinerary.ErrLocked)
	assert.True(t, b.Snapshot().Locked)
}

func TestBeginSelectionValidates(t *testing.T) {
	f := newFixture(t, models.Destination{City: "Paris", Nights: 1})
	b := f.builder(10 * time.Millisecond)
	defer b.Close()
	require.NoError(t, b.Load(context.Background()))

	_, err := b.BeginSelection(3, models.SlotMorning, models.PackageTypeActivity)
	assert.ErrorIs(t, err, itinerary.ErrInvalidSelection)
	_, err = b.BeginSelection(0, models.SlotName("night"), models.PackageTypeActivity)
	assert.ErrorIs(t, err, itinerary.ErrInvalidSelection)
	_, err = b.BeginSelection(0, models.SlotMorning, models.PackageTypeMultiCity)
	assert.ErrorIs(t, err, itinerary.ErrInvalidSelection)

	_, err = b.Commit(context.Background(), uuid.New(), nil)
	assert.ErrorIs(t, err, itinerary.ErrNoSelection)

	_, err = b.BeginSelection(0, models.SlotMorning, models.PackageTypeActivity)
	require.NoError(t, err)
	b.CancelSelection()
	assert.Equal(t, itinerary.StateReady, b.State())
}

func TestPriceCallbackDebouncedAndDeduplicated(t *testing.T) {
	f := newFixture(t, models.Destination{City: "Paris", Nights: 1})
	act := f.store.AddActivity(models.ActivityPackage{Title: "Bike tour", BasePrice: ptr(10.0)})
	b := f.builder(200 * time.Millisecond)
	require.NoError(t, b.Load(context.Background()))

	var added []uuid.UUID
	for i := 0; i < 3; i++ {
		_, err := b.BeginSelection(0, models.SlotMorning, models.PackageTypeActivity)
		require.NoError(t, err)
		item, err := b.Commit(context.Background(), act.ID, nil)
		require.NoError(t, err)
		added = append(added, item.ID)
	}
	require.NoError(t, b.RemoveItem(context.Background(), added[2], 0, models.SlotMorning, models.PackageTypeActivity))
	b.WaitWrites()

	assert.Eventually(t, func() bool { return len(f.listener.Prices()) == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []float64{60}, f.listener.Prices())

	// A burst that returns to the delivered total delivers nothing new.
	_, err := b.BeginSelection(0, models.SlotMorning, models.PackageTypeActivity)
	require.NoError(t, err)
	item, err := b.Commit(context.Background(), act.ID, nil)
	require.NoError(t, err)
	require.NoError(t, b.RemoveItem(context.Background(), item.ID, 0, models.SlotMorning, models.PackageTypeActivity))
	b.Close()

	assert.Equal(t, []float64{60}, f.listener.Prices())
	assert.Equal(t, []float64{60}, f.store.PersistedTotals())
}

func TestClosedBuilderDiscardsLateResults(t *testing.T) {
	f := newFixture(t, models.Destination{City: "Paris", Nights: 1})
	gate := make(chan struct{})
	f.store.Gate["ListDays"] = gate
	b := f.builder(10 * time.Millisecond)

	done := make(chan error, 1)
	go func() { done <- b.Load(context.Background()) }()
	assert.Eventually(t, func() bool { return f.store.Calls("ListDays") == 1 }, time.Second, time.Millisecond)

	b.Close()
	close(gate)

	assert.ErrorIs(t, <-done, itinerary.ErrClosed)
	assert.Empty(t, b.Snapshot().Days)
	assert.Zero(t, f.store.Calls("CreateDays"))
	assert.ErrorIs(t, b.Load(context.Background()), itinerary.ErrClosed)
}

func TestOptionsFilterBySlotAndCity(t *testing.T) {
	f := newFixture(t, models.Destination{City: "Paris", Nights: 1})
	f.store.AddActivity(models.ActivityPackage{Title: "Louvre", DestinationCity: "paris", DurationHours: 3})
	f.store.AddActivity(models.ActivityPackage{Title: "Full day Versailles", DestinationCity: "Paris", DurationHours: 5})
	f.store.AddActivity(models.ActivityPackage{Title: "Night show", DestinationCity: "Paris", DurationHours: 1,
		OperationalHours: &models.OperationalHours{TimeSlots: []models.OperationalSlot{{Slot: "evening"}}}})
	b := f.builder(10 * time.Millisecond)
	defer b.Close()
	require.NoError(t, b.Load(context.Background()))

	_, err := b.BeginSelection(0, models.SlotMorning, models.PackageTypeActivity)
	require.NoError(t, err)

	opts, err := b.Options(context.Background(), 0, "")
	require.NoError(t, err)
	require.Len(t, opts.Activities, 1)
	assert.Equal(t, "Louvre", opts.Activities[0].Title)
	assert.Equal(t, "Paris", opts.City)
}

func TestGenerationWithoutNightsWarns(t *testing.T) {
	f := newFixture(t, models.Destination{City: "Paris", Nights: 0}, models.Destination{City: "Rome", Nights: -1})
	b := f.builder(10 * time.Millisecond)
	defer b.Close()

	require.NoError(t, b.Load(context.Background()))

	snap := b.Snapshot()
	assert.Equal(t, itinerary.StateReady, snap.State)
	assert.Empty(t, snap.Days)
	require.NotNil(t, snap.LastNotice)
	assert.Equal(t, itinerary.NoticeWarning, snap.LastNotice.Level)
	assert.Zero(t, f.listener.Generated())
	require.Len(t, f.listener.Failures(), 1)
	assert.ErrorIs(t, f.listener.Failures()[0], itinerary.ErrNoDestinations)
	assert.Zero(t, f.store.Calls("CreateDays"))
	assert.ErrorIs(t, b.Generate(context.Background()), itinerary.ErrNoDestinations)
}

func TestSelectionOpenedDuringCommitStaysOpen(t *testing.T) {
	f := newFixture(t, models.Destination{City: "Rome", Nights: 2})
	tr := f.store.AddTransfer(models.TransferPackage{Title: "Termini shuttle", BasePrice: ptr(25.0)})
	gate := make(chan struct{})
	f.store.Gate["CreateItem"] = gate
	b := f.builder(time.Hour)
	defer b.Close()
	require.NoError(t, b.Load(context.Background()))

	_, err := b.BeginSelection(0, models.SlotMorning, models.PackageTypeTransfer)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := b.Commit(context.Background(), tr.ID, nil)
		done <- err
	}()
	assert.Eventually(t, func() bool { return f.store.Calls("CreateItem") == 1 }, time.Second, time.Millisecond)

	next, err := b.BeginSelection(1, models.SlotEvening, models.PackageTypeTransfer)
	require.NoError(t, err)
	close(gate)
	require.NoError(t, <-done)
	b.WaitWrites()

	snap := b.Snapshot()
	assert.Equal(t, itinerary.StateSelecting, snap.State)
	require.NotNil(t, snap.Selection)
	assert.Equal(t, *next, *snap.Selection)
	assert.Len(t, snap.Days[0].TimeSlots.Morning.Transfers, 1)
	assert.Empty(t, snap.Days[1].TimeSlots.Evening.Transfers)
}

func TestCommitAppendsDisplayOrder(t *testing.T) {
	f := newFixture(t, models.Destination{City: "Paris", Nights: 1})
	act := f.store.AddActivity(models.ActivityPackage{Title: "Seine cruise", BasePrice: ptr(30.0)})
	b := f.builder(time.Hour)
	defer b.Close()
	require.NoError(t, b.Load(context.Background()))

	for _, slot := range []models.SlotName{models.SlotMorning, models.SlotEvening} {
		_, err := b.BeginSelection(0, slot, models.PackageTypeActivity)
		require.NoError(t, err)
		_, err = b.Commit(context.Background(), act.ID, nil)
		require.NoError(t, err)
	}
	b.WaitWrites()

	items, err := f.store.ListItems(context.Background(), f.it.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].DisplayOrder)
	assert.Equal(t, 2, items[1].DisplayOrder)
}

func TestFailedPriceDeliveryIsRetried(t *testing.T) {
	f := newFixture(t, models.Destination{City: "Paris", Nights: 1})
	act := f.store.AddActivity(models.ActivityPackage{Title: "Seine cruise", BasePrice: ptr(30.0)})
	extra := f.store.AddActivity(models.ActivityPackage{Title: "Louvre", BasePrice: ptr(10.0)})
	f.store.SetFail("UpdateTotalPrice", true)
	b := f.builder(10 * time.Millisecond)
	require.NoError(t, b.Load(context.Background()))

	_, err := b.BeginSelection(0, models.SlotMorning, models.PackageTypeActivity)
	require.NoError(t, err)
	_, err = b.Commit(context.Background(), act.ID, nil)
	require.NoError(t, err)
	assert.Eventually(t, func() bool { return len(f.listener.Prices()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Empty(t, f.store.PersistedTotals())

	// back to the same total; it was never stored so it goes out again
	f.store.SetFail("UpdateTotalPrice", false)
	_, err = b.BeginSelection(0, models.SlotEvening, models.PackageTypeActivity)
	require.NoError(t, err)
	item, err := b.Commit(context.Background(), extra.ID, nil)
	require.NoError(t, err)
	require.NoError(t, b.RemoveItem(context.Background(), item.ID, 0, models.SlotEvening, models.PackageTypeActivity))
	b.Close()

	persisted := f.store.PersistedTotals()
	require.NotEmpty(t, persisted)
	assert.Equal(t, 90.0, persisted[len(persisted)-1])
}

func TestUpdateDayEditsSlotTimes(t *testing.T) {
	f := newFixture(t, models.Destination{City: "Paris", Nights: 2})
	b := f.builder(time.Hour)
	defer b.Close()
	require.NoError(t, b.Load(context.Background()))

	day, err := b.UpdateDay(1, itinerary.DayPatch{
		CityName:  ptr(" Lyon "),
		Notes:     ptr("train at 7"),
		SlotTimes: map[models.SlotName]string{models.SlotAfternoon: "14:00"},
	})
	require.NoError(t, err)
	b.WaitWrites()

	assert.Equal(t, "Lyon", day.CityName)
	assert.Equal(t, "14:00", day.TimeSlots.Afternoon.Time)
	assert.Equal(t, models.DefaultMorningTime, day.TimeSlots.Morning.Time)

	snap := b.Snapshot()
	assert.Equal(t, "Lyon", snap.Days[1].CityName)
	assert.Equal(t, "Paris", snap.Days[0].CityName)
	assert.Equal(t, itinerary.NoticeSuccess, snap.LastNotice.Level)

	updates := f.store.DayUpdates()
	require.Len(t, updates, 1)
	assert.Equal(t, "14:00", updates[0].TimeSlots.Afternoon.Time)
	assert.Equal(t, "train at 7", *updates[0].Notes)

	// clearing notes
	day, err = b.UpdateDay(1, itinerary.DayPatch{Notes: ptr("")})
	require.NoError(t, err)
	assert.Nil(t, day.Notes)
}

func TestUpdateDayRejectsBadInput(t *testing.T) {
	f := newFixture(t, models.Destination{City: "Paris", Nights: 1})
	b := f.builder(time.Hour)
	defer b.Close()
	require.NoError(t, b.Load(context.Background()))

	tests := []struct {
		name  string
		index int
		patch itinerary.DayPatch
	}{
		{"empty", 0, itinerary.DayPatch{}},
		{"bad time", 0, itinerary.DayPatch{SlotTimes: map[models.SlotName]string{models.SlotMorning: "8:00"}}},
		{"unknown slot", 0, itinerary.DayPatch{SlotTimes: map[models.SlotName]string{"night": "22:00"}}},
		{"blank city", 0, itinerary.DayPatch{CityName: ptr(" ")}},
		{"out of range", 1, itinerary.DayPatch{Notes: ptr("x")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := b.UpdateDay(tt.index, tt.patch)
			assert.ErrorIs(t, err, itinerary.ErrInvalidDay)
		})
	}

	b.SetLocked(true)
	_, err := b.UpdateDay(0, itinerary.DayPatch{Notes: ptr("x")})
	assert.ErrorIs(t, err, itinerary.ErrLocked)

	b.WaitWrites()
	assert.Zero(t, f.store.Calls("UpdateDay"))
}

func TestUpdateDaySurvivesFailedWrite(t *testing.T) {
	f := newFixture(t, models.Destination{City: "Paris", Nights: 1})
	f.store.SetFail("UpdateDay", true)
	b := f.builder(time.Hour)
	defer b.Close()
	require.NoError(t, b.Load(context.Background()))

	_, err := b.UpdateDay(0, itinerary.DayPatch{SlotTimes: map[models.SlotName]string{models.SlotEvening: "19:30"}})
	require.NoError(t, err)
	b.WaitWrites()

	assert.Equal(t, 1, f.store.Calls("UpdateDay"))
	assert.Equal(t, "19:30", b.Snapshot().Days[0].TimeSlots.Evening.Time)
}

func TestOptionsHonourArrival(t *testing.T) {
	f := newFixture(t, models.Destination{City: "Paris", Nights: 1})
	f.store.AddActivity(models.ActivityPackage{Title: "Orsay", DestinationCity: "Paris", DurationHours: 2})
	b := f.builder(time.Hour)
	defer b.Close()
	require.NoError(t, b.Load(context.Background()))

	_, err := b.BeginSelection(0, models.SlotEvening, models.PackageTypeActivity)
	require.NoError(t, err)

	opts, err := b.Options(context.Background(), 0, "22:30")
	require.NoError(t, err)
	assert.Empty(t, opts.Activities)
	assert.Zero(t, f.store.Calls("SearchActivities"))

	opts, err = b.Options(context.Background(), 0, "16:00")
	require.NoError(t, err)
	require.Len(t, opts.Activities, 1)

	_, err = b.Options(context.Background(), 0, "4pm")
	assert.ErrorIs(t, err, itinerary.ErrInvalidSelection)
}
