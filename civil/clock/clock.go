// Package clock provides the wall clock capability consumed by the civil time
// types, along with a manual clock for deterministic tests and a stopwatch
// Timer.
//
// Production code uses System:
//
//	c := clock.NewSystem()
//	now := types.NowIn(c, types.UTC)
//
// Tests use Manual, which only moves when told to:
//
//	c := clock.NewManual(1339024087)
//	c.Advance(time.Hour)
package clock

import (
	"context"
	"time"
)

// Reading is a civil time tuple read from a clock.
type Reading struct {
	Second  int
	Minute  int
	Hour    int
	Day     int
	Month   int
	Year    int
	Weekday int  // 0 (Sunday) to 6 (Saturday)
	YearDay int  // 1-based
	DST     bool // daylight saving time in effect
	Offset  int  // seconds east of UTC
}

// ReadingOf returns the Reading for t in its location.
func ReadingOf(t time.Time) Reading {
	_, off := t.Zone()
	return Reading{
		Second:  t.Second(),
		Minute:  t.Minute(),
		Hour:    t.Hour(),
		Day:     t.Day(),
		Month:   int(t.Month()),
		Year:    t.Year(),
		Weekday: int(t.Weekday()),
		YearDay: t.YearDay(),
		DST:     t.IsDST(),
		Offset:  off,
	}
}

// Clock defines the interface for reading the current time.
type Clock interface {
	// Local returns the current civil time in the clock's local time zone.
	Local() Reading

	// UTC returns the current civil time in UTC.
	UTC() Reading

	// Now returns the current Unix time in seconds, with sub-second
	// precision.
	Now() float64

	// Sleep blocks for d or until ctx is done, in which case it returns the
	// context's error.
	Sleep(ctx context.Context, d time.Duration) error
}

// unixSeconds converts t to fractional Unix seconds.
func unixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

// fromUnixSeconds converts fractional Unix seconds to a time.Time.
func fromUnixSeconds(sec float64) time.Time {
	return time.Unix(0, int64(sec*float64(time.Second)))
}

// Option defines an option for configuring a System clock.
type Option func(*System)

// WithLocation sets the location used by System.Local. Defaults to
// time.Local.
func WithLocation(loc *time.Location) Option {
	return func(s *System) { s.loc = loc }
}

// System is a Clock that reads the operating system's wall clock. It is
// safe for concurrent use.
type System struct {
	loc *time.Location
}

// NewSystem creates a System clock configured by opts.
func NewSystem(opts ...Option) *System {
	s := &System{loc: time.Local}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Local returns the current civil time in the clock's location.
func (s *System) Local() Reading { return ReadingOf(time.Now().In(s.loc)) }

// UTC returns the current civil time in UTC.
func (s *System) UTC() Reading { return ReadingOf(time.Now().UTC()) }

// Now returns the current Unix time.
func (s *System) Now() float64 { return unixSeconds(time.Now()) }

// Sleep blocks for d or until ctx is done.
func (s *System) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// frozen is a Clock whose readings were captured once.
type frozen struct {
	local Reading
	utc   Reading
	now   float64
	base  Clock
}

// Freeze returns a Clock that always reports the readings c had when Freeze
// was called. Sleeping on it sleeps on c without changing the readings.
func Freeze(c Clock) Clock {
	return &frozen{local: c.Local(), utc: c.UTC(), now: c.Now(), base: c}
}

func (f *frozen) Local() Reading { return f.local }
func (f *frozen) UTC() Reading   { return f.utc }
func (f *frozen) Now() float64   { return f.now }

func (f *frozen) Sleep(ctx context.Context, d time.Duration) error {
	return f.base.Sleep(ctx, d)
}

// Suspend calls fn with a frozen copy of c, so that every reading fn makes
// reports the same instant. Readings of c itself resume once fn returns.
// Returns the error returned by fn.
func Suspend(c Clock, fn func(c Clock) error) error {
	return fn(Freeze(c))
}
