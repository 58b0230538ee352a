// Package civil provides calendar and civil time arithmetic over fixed UTC
// offsets. It models the time points Date, TimeOfDay, and DateTime, the
// spans Duration and Period, the intervals Interval, Year, and Month, and
// iterators over them. The value types live in subpackages; this package
// provides entry points for parsing, formatting, and reading the clock.
//
//   - [types] defines the time point, span, and time zone types and the
//     [types.DefaultFormatter] pattern language.
//   - [interval] defines ranges between time points.
//   - [seq] iterates over time points and intervals.
//   - [calendar] provides the underlying calendar arithmetic.
//   - [clock] abstracts the system clock and provides a Timer.
//
// Periods resolve against a time point by adding each calendar field and
// normalizing the result, so adding one month to January 31 overflows
// February:
//
//	civil.MustParse("2012-01-31").Shift(types.OneMonth) → 2012-03-02
package civil

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/theory/civiltime/civil/clock"
	"github.com/theory/civiltime/civil/types"
)

// ErrCivil wraps parsing errors.
var ErrCivil = errors.New("civil")

// Parse parses src as an ISO-8601 date and time, date, or time of day, in
// that order. Values without an offset are in the time zone stored in ctx
// by [types.ContextWithTimeZone], or UTC.
func Parse(ctx context.Context, src string) (types.TimePoint, error) {
	tp, err := types.ParseTimePoint(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCivil, err)
	}
	return tp, nil
}

// MustParse is like Parse but panics on parse failure. Values without an
// offset are in UTC.
func MustParse(src string) types.TimePoint {
	tp, err := types.ParseTimePoint(context.Background(), src)
	if err != nil {
		panic(err)
	}
	return tp
}

// ParseSpan parses src as an ISO-8601 period such as "P1M2D" when it starts
// with "P" after an optional sign, and otherwise as a Duration string such
// as "1h30m".
func ParseSpan(src string) (types.TimeSpan, error) {
	var (
		span types.TimeSpan
		err  error
	)
	if strings.HasPrefix(strings.TrimLeft(src, "+-"), "P") {
		span, err = types.ParsePeriod(src)
	} else {
		span, err = types.ParseDuration(src)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCivil, err)
	}
	return span, nil
}

// MustParseSpan is like ParseSpan but panics on parse failure.
func MustParseSpan(src string) types.TimeSpan {
	span, err := ParseSpan(src)
	if err != nil {
		panic(err)
	}
	return span
}

// Format formats tp with pattern using the [types.DefaultFormatter]
// specifiers.
func Format(tp types.TimePoint, pattern string) string {
	return types.DefaultFormatter{}.Format(tp, pattern)
}

// Now returns the current time read from c as a DateTime in tz.
func Now(c clock.Clock, tz types.TimeZone) types.DateTime {
	return types.NowIn(c, tz)
}

// Today returns the current date read from c in tz.
func Today(c clock.Clock, tz types.TimeZone) types.Date {
	return types.Today(c, tz)
}

// Difference returns the exact Duration and the field-wise Period from start
// to end. The Period is computed in end's time zone.
func Difference(start, end types.TimePoint) (types.Duration, types.Period) {
	return types.NewDuration(end.UnixTime() - start.UnixTime()),
		end.ToDateTime().DifferenceAsPeriod(start)
}
