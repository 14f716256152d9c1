// Package clock provides time helpers shared by the index and audit runs.
package clock

import (
	"context"
	"time"
)

// SleepWithContext blocks for d or until ctx is done, whichever comes first.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Throttle reports at most once per interval, used for periodic progress logs.
type Throttle struct {
	every time.Duration
	next  time.Time
	now   func() time.Time
}

// NewThrottle returns a Throttle whose first report is due one interval from now.
func NewThrottle(every time.Duration) *Throttle {
	return newThrottle(every, time.Now)
}

func newThrottle(every time.Duration, now func() time.Time) *Throttle {
	return &Throttle{every: every, next: now().Add(every), now: now}
}

// Due reports whether the interval elapsed since the last report and, if so,
// schedules the next one.
func (t *Throttle) Due() bool {
	current := t.now()
	if current.Before(t.next) {
		return false
	}
	for !current.Before(t.next) {
		t.next = t.next.Add(t.every)
	}
	return true
}
