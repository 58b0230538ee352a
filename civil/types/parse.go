package types

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/theory/civiltime/civil/calendar"
)

const (
	// dateFormat represents the canonical string format for Date values.
	dateFormat = "2006-01-02"

	// timeFormat represents the canonical string format for TimeOfDay
	// values.
	timeFormat = "15:04:05"

	// dateTimeFormat represents the canonical string format for DateTime
	// values, without the offset.
	dateTimeFormat = dateFormat + "T" + timeFormat
)

// zoneFormats lists the offset formats accepted after a date, time, or date
// and time, most specific first.
//
//nolint:gochecknoglobals
var zoneFormats = []string{"Z07:00", "Z0700", "Z07"}

// parseTime parses src with base, first followed by each of zoneFormats and
// then alone. Values parsed without an offset are placed in the time zone
// tz. Fractional seconds are rejected.
func parseTime(base, src string, tz TimeZone) (time.Time, TimeZone, bool) {
	for _, zone := range zoneFormats {
		value, err := time.Parse(base+zone, src)
		if err == nil && value.Nanosecond() == 0 {
			return value, parsedZone(value), true
		}
	}

	value, err := time.Parse(base, src)
	if err == nil && value.Nanosecond() == 0 {
		return value, tz, true
	}
	return time.Time{}, tz, false
}

// CutYear cuts an ISO-8601 year, an optional sign followed by four or more
// digits, from the front of src. It returns the year and the rest of src,
// or false if src does not start with a year.
func CutYear(src string) (year int, rest string, ok bool) {
	digits := src
	if src != "" && (src[0] == '+' || src[0] == '-') {
		digits = src[1:]
	}
	n := strings.IndexFunc(digits, func(r rune) bool { return r < '0' || r > '9' })
	if n < 0 {
		n = len(digits)
	}
	if n < 4 {
		return 0, src, false
	}

	end := len(src) - len(digits) + n
	year, err := strconv.Atoi(src[:end])
	if err != nil {
		return 0, src, false
	}
	return year, src[end:], true
}

// parseDated is like parseTime for bases that start with a year. The year
// is cut from src and time.Parse sees a stand-in year with the same leap
// status, so expanded years parse and February 29 is still checked.
func parseDated(base, src string, tz TimeZone) (int, time.Time, TimeZone, bool) {
	year, rest, ok := CutYear(src)
	if !ok {
		return 0, time.Time{}, tz, false
	}
	standIn := "2001"
	if calendar.IsLeapYear(year) {
		standIn = "2000"
	}
	value, tz, ok := parseTime(base, standIn+rest, tz)
	return year, value, tz, ok
}

// parsedZone returns the TimeZone for the offset parsed into t. The DST
// flag is always false, since time.Parse may have matched the local zone.
func parsedZone(t time.Time) TimeZone {
	_, off := t.Zone()
	return NewTimeZone(off, false)
}

// parseError returns an error wrapping ErrParse that reports that src could
// not be parsed as kind.
func parseError(src, kind string) error {
	return fmt.Errorf("%w: cannot parse %q as %v", ErrParse, src, kind)
}

// ParseDate parses an ISO-8601 date of the form "YYYY-MM-DD", optionally
// followed by an offset. Years outside 0000-9999 take a sign, as in
// "-0044-03-15" or "+10000-01-01". Dates without an offset are in UTC.
func ParseDate(src string) (Date, error) {
	return parseDateIn(src, UTC)
}

func parseDateIn(src string, tz TimeZone) (Date, error) {
	year, value, tz, ok := parseDated(dateFormat, src, tz)
	if !ok {
		return Date{}, parseError(src, "date")
	}
	return NewDateIn(year, int(value.Month()), value.Day(), tz), nil
}

// ParseTimeOfDay parses an ISO-8601 time of the form "hh:mm:ss", optionally
// followed by an offset. Times without an offset are in UTC.
func ParseTimeOfDay(src string) (TimeOfDay, error) {
	return parseTimeOfDayIn(src, UTC)
}

func parseTimeOfDayIn(src string, tz TimeZone) (TimeOfDay, error) {
	value, tz, ok := parseTime(timeFormat, src, tz)
	if !ok {
		return TimeOfDay{}, parseError(src, "time of day")
	}
	return NewTimeOfDayIn(value.Hour(), value.Minute(), value.Second(), tz), nil
}

// ParseDateTime parses an ISO-8601 date and time of the form
// "YYYY-MM-DDThh:mm:ss", optionally followed by an offset. Values without an
// offset are in UTC.
func ParseDateTime(src string) (DateTime, error) {
	return parseDateTimeIn(src, UTC)
}

func parseDateTimeIn(src string, tz TimeZone) (DateTime, error) {
	year, value, tz, ok := parseDated(dateTimeFormat, src, tz)
	if !ok {
		return DateTime{}, parseError(src, "date and time")
	}
	return NewDateTimeIn(
		year, int(value.Month()), value.Day(),
		value.Hour(), value.Minute(), value.Second(),
		tz,
	), nil
}

// ParseTimePoint parses src into a Date, TimeOfDay, or DateTime, whichever
// format it matches. Values without an offset are placed in the time zone
// in ctx, which defaults to UTC.
func ParseTimePoint(ctx context.Context, src string) (TimePoint, error) {
	tz := TimeZoneFromContext(ctx)

	// Date and time first, as it's the most common.
	if dt, err := parseDateTimeIn(src, tz); err == nil {
		return dt, nil
	}

	if d, err := parseDateIn(src, tz); err == nil {
		return d, nil
	}

	if t, err := parseTimeOfDayIn(src, tz); err == nil {
		return t, nil
	}

	// Not found.
	return nil, parseError(src, "date, time, or date and time")
}
