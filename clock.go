package blob

import (
	"sync"
	"time"
)

// Clock provides the current time. Implementations must be monotonic.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the monotonic system clock.
type SystemClock struct{}

var _ Clock = SystemClock{}

func (SystemClock) Now() time.Time { return time.Now() }

// VirtualClock is a manually advanced clock that doubles as a [Scheduler].
// Nothing happens unless [VirtualClock.Advance] is called, which makes it
// suitable for tests and for rendering animations offline.
type VirtualClock struct {
	mu   sync.Mutex
	now  time.Time
	subs []*virtualSub
}

type virtualSub struct {
	fn       func()
	interval time.Duration
	next     time.Time
}

var (
	_ Clock     = (*VirtualClock)(nil)
	_ Scheduler = (*VirtualClock)(nil)
)

// NewVirtualClock returns a clock whose current time is start.
func NewVirtualClock(start time.Time) *VirtualClock {
	return &VirtualClock{now: start}
}

// Now returns the clock's current time.
func (c *VirtualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Schedule implements [Scheduler]. fn is first called once interval has
// elapsed on the clock.
func (c *VirtualClock) Schedule(fn func(), interval time.Duration) (cancel func()) {
	if interval <= 0 {
		panic("blob: schedule interval must be positive")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	sub := &virtualSub{fn: fn, interval: interval, next: c.now.Add(interval)}
	c.subs = append(c.subs, sub)
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, s := range c.subs {
			if s == sub {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				break
			}
		}
	}
}

// Advance moves the clock forward by d. Every subscription that becomes due is
// run, in deadline order, with the clock set to the subscription's deadline.
// Callbacks may cancel subscriptions; a cancelled subscription is never run
// again, even within the same call to Advance.
func (c *VirtualClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	for {
		var due *virtualSub
		for _, s := range c.subs {
			if s.next.After(target) {
				continue
			}
			if due == nil || s.next.Before(due.next) {
				due = s
			}
		}
		if due == nil {
			break
		}
		c.now = due.next
		due.next = due.next.Add(due.interval)

		c.mu.Unlock()
		due.fn()
		c.mu.Lock()
	}
	if target.After(c.now) {
		c.now = target
	}
	c.mu.Unlock()
}

// Subscriptions returns the number of active subscriptions.
func (c *VirtualClock) Subscriptions() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs)
}
