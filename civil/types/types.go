// Package types provides immutable civil time values: the time points Date,
// TimeOfDay, and DateTime, the spans Duration and Period, and the fixed-offset
// TimeZone they are expressed in.
//
// Time points compare by the instant they identify, not by their civil
// fields, so 2012-06-07T10:00:00+01:00 and 2012-06-07T09:00:00+00:00 are
// equal. Spans resolve against a time point: a Duration adds a fixed number
// of seconds, while a Period adds calendar units and then normalizes the
// result, so that 2012-01-31 plus one month is 2012-03-02.
package types

import (
	"cmp"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrParse wraps errors returned when an ISO-8601 string cannot be
	// parsed.
	ErrParse = errors.New("parse")

	// ErrNotComparable errors are returned when a value outside the
	// comparable variant set is passed to CompareValues or CompareSpans.
	ErrNotComparable = errors.New("not comparable")
)

// TimePoint defines the interface for the time point types Date, TimeOfDay,
// and DateTime. The set of implementations is closed.
type TimePoint interface {
	// UnixTime returns the number of seconds since 1970-01-01T00:00:00Z.
	UnixTime() int64

	// TimeZone returns the offset the civil fields are expressed in.
	TimeZone() TimeZone

	// Compare compares the instant of the time point with other. It returns
	// -1 if it's before other, +1 if it's after, and 0 if they identify the
	// same instant.
	Compare(other TimePoint) int

	// Shift returns the time point that results from resolving span against
	// it. The result has the same concrete type as the receiver.
	Shift(span TimeSpan) TimePoint

	// ToDateTime returns the time point as a DateTime in the same time zone.
	// Dates fall at midnight and times of day on 1970-01-01.
	ToDateTime() DateTime

	// ISOString returns the ISO-8601 representation of the time point.
	ISOString() string

	// GoTime returns the equivalent time.Time in a fixed-offset location.
	GoTime() time.Time

	timePoint()
}

// TimeSpan defines the interface for the span types Duration and Period. The
// set of implementations is closed.
type TimeSpan interface {
	// IsEmpty returns true if every component of the span is zero.
	IsEmpty() bool

	// ApproximateSeconds returns the length of the span in seconds, using
	// nominal month and year lengths for calendar units.
	ApproximateSeconds() int64

	// ResolveToTimePoint adds the span to anchor and returns the result as
	// the same concrete type as anchor.
	ResolveToTimePoint(anchor TimePoint) TimePoint

	// ResolveToSeconds returns the exact number of seconds the span covers
	// when started at anchor.
	ResolveToSeconds(anchor TimePoint) int64

	// ResolveToDuration returns the exact Duration the span covers when
	// started at anchor.
	ResolveToDuration(anchor TimePoint) Duration

	// ResolveToPeriod returns the span as a Period when started at anchor.
	ResolveToPeriod(anchor TimePoint) Period

	// String returns a string representation of the span.
	String() string

	timeSpan()
}

// fromDateTime converts dt into the same concrete type as like.
func fromDateTime(like TimePoint, dt DateTime) TimePoint {
	switch like.(type) {
	case Date:
		return dt.Date()
	case TimeOfDay:
		return dt.TimeOfDay()
	default:
		return dt
	}
}

// compareInstants compares the Unix times of a and b.
func compareInstants(a, b TimePoint) int {
	return cmp.Compare(a.UnixTime(), b.UnixTime())
}

// asTimePoint returns val as a TimePoint if it's one of the closed set of
// time point types.
func asTimePoint(val any) (TimePoint, bool) {
	switch val := val.(type) {
	case Date:
		return val, true
	case TimeOfDay:
		return val, true
	case DateTime:
		return val, true
	default:
		return nil, false
	}
}

// CompareValues compares two time points of any variant by instant. Returns
// an error wrapping ErrNotComparable if either value is not a Date,
// TimeOfDay, or DateTime.
func CompareValues(a, b any) (int, error) {
	x, ok := asTimePoint(a)
	if !ok {
		return 0, notComparable(a)
	}
	y, ok := asTimePoint(b)
	if !ok {
		return 0, notComparable(b)
	}
	return x.Compare(y), nil
}

// CompareSpans compares two spans of the same variant: Durations by length
// and Periods field by field. Returns an error wrapping ErrNotComparable if
// the values are not both Durations or both Periods.
func CompareSpans(a, b any) (int, error) {
	switch a := a.(type) {
	case Duration:
		if b, ok := b.(Duration); ok {
			return a.Compare(b), nil
		}
	case Period:
		if b, ok := b.(Period); ok {
			return a.Compare(b), nil
		}
	default:
		return 0, notComparable(a)
	}
	return 0, fmt.Errorf("%w: %T and %T", ErrNotComparable, a, b)
}

// notComparable returns an error reporting that val is not a comparable
// civil time value.
func notComparable(val any) error {
	return fmt.Errorf("%w: unrecognized civil time type %T", ErrNotComparable, val)
}
