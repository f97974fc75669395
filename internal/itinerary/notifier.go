package itinerary

import (
	"sync"
	"time"
)

// DefaultPriceDebounce is how long a total must stay unchanged before the
// owner is told about it.
const DefaultPriceDebounce = time.Second

// PriceNotifier coalesces a burst of totals into one delivery of the last
// value and never delivers the same value twice in a row. A failed delivery
// does not count as delivered.
type PriceNotifier struct {
	mu       sync.Mutex
	delay    time.Duration
	send     func(total float64) error
	timer    *time.Timer
	gen      uint64
	pending  float64
	armed    bool
	lastSent float64
	stopped  bool
}

// NewPriceNotifier creates a notifier that treats seed as already delivered
func NewPriceNotifier(delay time.Duration, seed float64, send func(total float64) error) *PriceNotifier {
	if delay <= 0 {
		delay = DefaultPriceDebounce
	}
	return &PriceNotifier{delay: delay, send: send, lastSent: seed}
}

// Seed records total as the last delivered value
func (n *PriceNotifier) Seed(total float64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.lastSent = total
}

// Notify schedules delivery of total, superseding any pending value
func (n *PriceNotifier) Notify(total float64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.stopped {
		return
	}
	if n.timer != nil {
		n.timer.Stop()
	}
	n.gen++
	gen := n.gen
	n.pending = total
	n.armed = true
	n.timer = time.AfterFunc(n.delay, func() { n.fire(gen) })
}

func (n *PriceNotifier) fire(gen uint64) {
	n.mu.Lock()
	if gen != n.gen || !n.armed {
		n.mu.Unlock()
		return
	}
	n.armed = false
	n.timer = nil
	value := n.pending
	if value == n.lastSent {
		n.mu.Unlock()
		return
	}
	n.mu.Unlock()

	if err := n.send(value); err != nil {
		return
	}

	n.mu.Lock()
	n.lastSent = value
	n.mu.Unlock()
}

// Pending reports whether a delivery is scheduled
func (n *PriceNotifier) Pending() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.armed
}

// Flush delivers a pending value immediately and stops the notifier
func (n *PriceNotifier) Flush() {
	n.mu.Lock()
	if n.timer != nil {
		n.timer.Stop()
	}
	gen := n.gen
	n.stopped = true
	n.mu.Unlock()

	n.fire(gen)
}

// Stop drops any pending value and stops the notifier
func (n *PriceNotifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.armed = false
	n.stopped = true
}
