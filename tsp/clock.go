package tsp

import "time"

// deadline polls the monotonic clock at a fixed cadence.
// time.Since on a time.Now() instant uses the monotonic reading, so wall-clock
// adjustments never shorten or extend a budget.
type deadline struct {
	start time.Time
	limit time.Duration // 0 disables expiry
	every int           // clock reads happen on every every-th tick
	ticks int
	now   func() time.Time
}

func newDeadline(start time.Time, limit time.Duration, every int) *deadline {
	if every < 1 {
		every = 1
	}

	return &deadline{start: start, limit: limit, every: every, now: time.Now}
}

// expired counts one tick and reports whether the budget is spent.
// The clock is read only on ticks that are a multiple of the cadence.
func (d *deadline) expired() bool {
	if d.limit <= 0 {
		return false
	}
	d.ticks++
	if d.ticks < d.every {
		return false
	}
	d.ticks = 0

	return d.now().Sub(d.start) >= d.limit
}

// elapsed returns the time since start.
func (d *deadline) elapsed() time.Duration { return d.now().Sub(d.start) }
