// Package interval provides ordered ranges between two civil time points.
// An Interval stores its endpoints, while Year and Month derive theirs from
// calendar ordinals. All three implement Bounded, so they can be compared,
// tested for containment and intersection, and iterated over by package seq.
//
// Intervals are closed for containment: both the start and the end are
// contained. Iterators in package seq treat the end as exclusive.
package interval

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/theory/civiltime/civil/types"
)

var (
	// ErrInvalidInterval errors are returned when an interval's start falls
	// after its end, or when an endpoint is missing.
	ErrInvalidInterval = errors.New("invalid interval")

	// ErrParse wraps errors returned when an interval, year, or month string
	// cannot be parsed.
	ErrParse = errors.New("parse")
)

// Bounded defines the interface for values that span the range between two
// time points. Start must never come after End.
type Bounded interface {
	// Start returns the first time point in the range.
	Start() types.TimePoint

	// End returns the last time point in the range.
	End() types.TimePoint
}

// Interval represents the range between two time points. The zero Interval
// has no endpoints. It is empty, sorts before every other interval, and
// neither contains nor intersects anything.
type Interval struct {
	start types.TimePoint
	end   types.TimePoint
}

// New creates a new Interval from start to end. It returns
// ErrInvalidInterval if start is after end or either is nil.
func New(start, end types.TimePoint) (Interval, error) {
	if start == nil || end == nil {
		return Interval{}, fmt.Errorf("%w: missing endpoint", ErrInvalidInterval)
	}
	if start.Compare(end) > 0 {
		return Interval{}, fmt.Errorf(
			"%w: start %v is after end %v", ErrInvalidInterval, start, end,
		)
	}
	return Interval{start: start, end: end}, nil
}

// MustNew is like New but panics on error. Use to create intervals from
// known-ordered endpoints.
func MustNew(start, end types.TimePoint) Interval {
	iv, err := New(start, end)
	if err != nil {
		panic(err)
	}
	return iv
}

// FromSpan resolves span against anchor and returns the interval between
// them. A negative span yields the interval from the resolved point to
// anchor.
func FromSpan(anchor types.TimePoint, span types.TimeSpan) (Interval, error) {
	if anchor == nil || span == nil {
		return Interval{}, fmt.Errorf("%w: missing anchor or span", ErrInvalidInterval)
	}
	end := span.ResolveToTimePoint(anchor)
	if anchor.Compare(end) > 0 {
		return New(end, anchor)
	}
	return New(anchor, end)
}

// Of returns b as an Interval.
func Of(b Bounded) Interval {
	if iv, ok := b.(Interval); ok {
		return iv
	}
	return Interval{start: b.Start(), end: b.End()}
}

// Parse parses an ISO-8601 interval of the form "start/end", where each
// endpoint is a date, time of day, or date and time. Endpoints without an
// offset use the time zone stored in ctx.
func Parse(ctx context.Context, src string) (Interval, error) {
	startSrc, endSrc, ok := strings.Cut(src, "/")
	if !ok {
		return Interval{}, fmt.Errorf("%w: cannot parse %q as an interval", ErrParse, src)
	}

	start, err := types.ParseTimePoint(ctx, startSrc)
	if err != nil {
		return Interval{}, fmt.Errorf("%w: interval start: %w", ErrParse, err)
	}
	end, err := types.ParseTimePoint(ctx, endSrc)
	if err != nil {
		return Interval{}, fmt.Errorf("%w: interval end: %w", ErrParse, err)
	}
	return New(start, end)
}

// Start returns the start of the interval.
func (iv Interval) Start() types.TimePoint { return iv.start }

// End returns the end of the interval.
func (iv Interval) End() types.TimePoint { return iv.end }

// IsZero returns true for the zero Interval.
func (iv Interval) IsZero() bool { return unbounded(iv) }

// unbounded returns true if b is missing an endpoint, as the zero Interval
// is.
func unbounded(b Bounded) bool { return b.Start() == nil || b.End() == nil }

// IsEmpty returns true if the interval starts and ends at the same instant,
// or is the zero Interval.
func (iv Interval) IsEmpty() bool {
	return iv.IsZero() || iv.start.Compare(iv.end) == 0
}

// Contains returns true if point falls within the interval, inclusive of
// both endpoints.
func (iv Interval) Contains(point types.TimePoint) bool {
	if iv.IsZero() || point == nil {
		return false
	}
	return iv.start.Compare(point) <= 0 && iv.end.Compare(point) >= 0
}

// Encompasses returns true if other starts no earlier and ends no later than
// the interval.
func (iv Interval) Encompasses(other Bounded) bool {
	if iv.IsZero() || unbounded(other) {
		return false
	}
	return iv.start.Compare(other.Start()) <= 0 && iv.end.Compare(other.End()) >= 0
}

// Intersects returns true if the interval and other share at least one
// instant.
func (iv Interval) Intersects(other Bounded) bool {
	if iv.IsZero() || unbounded(other) {
		return false
	}
	return iv.start.Compare(other.End()) <= 0 && iv.end.Compare(other.Start()) >= 0
}

// Compare compares the interval to other by start and then by end. It
// returns -1 if the interval sorts before other, +1 if it sorts after, and 0
// if both start and end at the same instants. Zero intervals sort first.
func (iv Interval) Compare(other Bounded) int {
	switch zero, otherZero := iv.IsZero(), unbounded(other); {
	case zero && otherZero:
		return 0
	case zero:
		return -1
	case otherZero:
		return 1
	}
	if c := iv.start.Compare(other.Start()); c != 0 {
		return c
	}
	return iv.end.Compare(other.End())
}

// Equal returns true if the interval and other start and end at the same
// instants.
func (iv Interval) Equal(other Bounded) bool { return iv.Compare(other) == 0 }

// Duration returns the exact number of seconds between start and end.
func (iv Interval) Duration() types.Duration {
	if iv.IsZero() {
		return types.Duration{}
	}
	return types.NewDuration(iv.end.UnixTime() - iv.start.UnixTime())
}

// Period returns the field-wise difference between end and start, with
// start first converted to the end's time zone.
func (iv Interval) Period() types.Period {
	if iv.IsZero() {
		return types.Period{}
	}
	return iv.end.ToDateTime().DifferenceAsPeriod(iv.start)
}

// String returns the interval as "start/end", with each endpoint in its ISO
// format.
func (iv Interval) String() string {
	if iv.IsZero() {
		return "/"
	}
	return iv.start.ISOString() + "/" + iv.end.ISOString()
}
