// Package schedule provides a restartable periodic timer for loops that
// select over several event sources.
package schedule

import (
	"sync"
	"time"
)

// Interval wraps a time.Ticker that can be stopped and restarted.
// The zero value is stopped; C returns nil until Restart is called, so a
// select on it blocks forever.
type Interval struct {
	mu     sync.Mutex
	ticker *time.Ticker
	period time.Duration
}

// NewInterval returns a running interval with the given period.
func NewInterval(d time.Duration) *Interval {
	iv := &Interval{}
	iv.Restart(d)
	return iv
}

// C returns the channel of the current ticker, or nil when stopped.
// Read it again after every Restart.
func (iv *Interval) C() <-chan time.Time {
	iv.mu.Lock()
	defer iv.mu.Unlock()

	if iv.ticker == nil {
		return nil
	}
	return iv.ticker.C
}

// Restart stops the current ticker, if any, and starts a new one.
// Ticks of the old ticker are never delivered on the new channel.
func (iv *Interval) Restart(d time.Duration) {
	if d <= 0 {
		panic("schedule: non-positive interval")
	}

	iv.mu.Lock()
	defer iv.mu.Unlock()

	iv.stopLocked()
	iv.ticker = time.NewTicker(d)
	iv.period = d
}

// Stop stops the ticker. Calling Stop on a stopped interval is a no-op.
func (iv *Interval) Stop() {
	iv.mu.Lock()
	defer iv.mu.Unlock()

	iv.stopLocked()
}

func (iv *Interval) stopLocked() {
	if iv.ticker != nil {
		iv.ticker.Stop()
		iv.ticker = nil
	}
}

// Running reports whether a ticker is active.
func (iv *Interval) Running() bool {
	iv.mu.Lock()
	defer iv.mu.Unlock()

	return iv.ticker != nil
}

// Period returns the period of the last Restart.
func (iv *Interval) Period() time.Duration {
	iv.mu.Lock()
	defer iv.mu.Unlock()

	return iv.period
}
