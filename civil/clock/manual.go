package clock

import (
	"context"
	"sync"
	"time"
)

// Manual is a Clock that only moves when Set, Advance, or Sleep is called.
// It is safe for concurrent use.
type Manual struct {
	mu  sync.Mutex
	now float64
	loc *time.Location
}

// NewManual creates a Manual clock set to the Unix time sec, with a local
// time zone of UTC.
func NewManual(sec float64) *Manual {
	return &Manual{now: sec, loc: time.UTC}
}

// NewManualIn creates a Manual clock set to the Unix time sec, with local
// readings made at the fixed offset (seconds east of UTC).
func NewManualIn(sec float64, offset int) *Manual {
	return &Manual{now: sec, loc: time.FixedZone("", offset)}
}

// Set sets the clock to the Unix time sec.
func (m *Manual) Set(sec float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = sec
}

// Advance moves the clock forward by d, or backward if d is negative.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now += d.Seconds()
}

// Now returns the clock's Unix time.
func (m *Manual) Now() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Local returns the clock's civil time in its local time zone.
func (m *Manual) Local() Reading {
	return ReadingOf(fromUnixSeconds(m.Now()).In(m.loc))
}

// UTC returns the clock's civil time in UTC.
func (m *Manual) UTC() Reading {
	return ReadingOf(fromUnixSeconds(m.Now()).UTC())
}

// Sleep advances the clock by d without blocking, unless ctx is already
// done.
func (m *Manual) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.Advance(d)
	return nil
}
