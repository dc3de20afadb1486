package blob

import (
	"sync"
	"time"
)

// Scheduler runs callbacks at a regular cadence.
//
// Schedule arranges for fn to be called repeatedly, roughly every interval,
// until the returned cancel function is called. Cancel must be idempotent and
// must not return before any in-flight call of fn has returned; fn must never
// be called after cancel has returned. Calls of fn for a single subscription
// must not overlap. fn may run before Schedule returns.
type Scheduler interface {
	Schedule(fn func(), interval time.Duration) (cancel func())
}

// TickerScheduler schedules callbacks in real time, using one goroutine and
// one [time.Ticker] per subscription. Ticks that are missed because fn took
// too long are dropped.
//
// Cancel waits for the subscription's goroutine to exit and therefore must not
// be called from within fn.
type TickerScheduler struct{}

var _ Scheduler = TickerScheduler{}

func (TickerScheduler) Schedule(fn func(), interval time.Duration) (cancel func()) {
	ticker := time.NewTicker(interval)
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				// Both channels may be ready; stopping takes precedence.
				select {
				case <-stop:
					return
				default:
				}
				fn()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(stop)
			wg.Wait()
		})
	}
}
