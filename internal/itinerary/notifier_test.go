package itinerary

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	mu     sync.Mutex
	values []float64
	fail   int
}

func (r *recorder) send(v float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v)
	if r.fail > 0 {
		r.fail--
		return errors.New("listener down")
	}
	return nil
}

func (r *recorder) got() []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]float64{}, r.values...)
}

func TestPriceNotifierCollapsesBurst(t *testing.T) {
	rec := &recorder{}
	n := NewPriceNotifier(20*time.Millisecond, 0, rec.send)

	n.Notify(10)
	n.Notify(20)
	n.Notify(30)

	assert.Eventually(t, func() bool { return len(rec.got()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []float64{30}, rec.got())
	assert.False(t, n.Pending())
}

func TestPriceNotifierSkipsRepeatedValue(t *testing.T) {
	rec := &recorder{}
	n := NewPriceNotifier(10*time.Millisecond, 0, rec.send)

	n.Notify(50)
	assert.Eventually(t, func() bool { return len(rec.got()) == 1 }, time.Second, 5*time.Millisecond)

	n.Notify(50)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, []float64{50}, rec.got())
}

func TestPriceNotifierSeedIsTreatedAsSent(t *testing.T) {
	rec := &recorder{}
	n := NewPriceNotifier(10*time.Millisecond, 75, rec.send)

	n.Notify(75)
	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, rec.got())
}

func TestPriceNotifierFlushAndStop(t *testing.T) {
	rec := &recorder{}
	n := NewPriceNotifier(time.Hour, 0, rec.send)

	n.Notify(12)
	assert.True(t, n.Pending())
	n.Flush()
	assert.Equal(t, []float64{12}, rec.got())

	n.Notify(99)
	assert.False(t, n.Pending())

	stopped := NewPriceNotifier(time.Hour, 0, rec.send)
	stopped.Notify(5)
	stopped.Stop()
	stopped.Flush()
	assert.Equal(t, []float64{12}, rec.got())
}

func TestPriceNotifierRetriesValueAfterFailedDelivery(t *testing.T) {
	rec := &recorder{fail: 1}
	n := NewPriceNotifier(10*time.Millisecond, 0, rec.send)

	n.Notify(40)
	assert.Eventually(t, func() bool { return len(rec.got()) == 1 }, time.Second, 5*time.Millisecond)

	n.Notify(40)
	assert.Eventually(t, func() bool { return len(rec.got()) == 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []float64{40, 40}, rec.got())

	n.Notify(40)
	time.Sleep(50 * time.Millisecond)
	assert.Len(t, rec.got(), 2)
}
