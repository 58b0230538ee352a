package types

import (
	"cmp"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/theory/civiltime/civil/calendar"
)

// TimeZone represents a fixed offset from UTC with a daylight saving flag.
// The zero value is UTC.
type TimeZone struct {
	offset int
	dst    bool
}

// UTC is the zero offset time zone.
//
//nolint:gochecknoglobals
var UTC = TimeZone{}

// NewTimeZone creates a TimeZone from offset, in seconds east of UTC. The
// offset is rounded to the nearest minute, with half-minutes rounding away
// from zero, and wrapped into the range [-24h, +24h).
func NewTimeZone(offset int, dst bool) TimeZone {
	minutes := offset / calendar.SecondsPerMinute
	switch rem := offset % calendar.SecondsPerMinute; {
	case rem >= calendar.SecondsPerMinute/2:
		minutes++
	case rem <= -calendar.SecondsPerMinute/2:
		minutes--
	}
	offset = minutes * calendar.SecondsPerMinute
	offset = calendar.FloorMod(offset+calendar.SecondsPerDay, 2*calendar.SecondsPerDay) - calendar.SecondsPerDay
	return TimeZone{offset: offset, dst: dst}
}

// ParseTimeZone parses an ISO-8601 offset: "Z", "±hh", "±hhmm", or "±hh:mm".
func ParseTimeZone(src string) (TimeZone, error) {
	for _, format := range zoneFormats {
		value, err := time.Parse(format, src)
		if err == nil {
			return parsedZone(value), nil
		}
	}
	return UTC, fmt.Errorf("%w: cannot parse %q as a time zone offset", ErrParse, src)
}

// timeZoneOf returns the TimeZone for the offset of t's location.
func timeZoneOf(t time.Time) TimeZone {
	_, off := t.Zone()
	return NewTimeZone(off, t.IsDST())
}

// Offset returns the offset in seconds east of UTC.
func (tz TimeZone) Offset() int { return tz.offset }

// IsDST returns true if the zone is flagged as daylight saving time.
func (tz TimeZone) IsDST() bool { return tz.dst }

// IsUTC returns true if the offset is zero.
func (tz TimeZone) IsUTC() bool { return tz.offset == 0 }

// Compare compares the offset of tz to that of other, and then the DST
// flags, with standard time sorting before daylight saving time. It returns
// -1, 0, or +1.
func (tz TimeZone) Compare(other TimeZone) int {
	if c := cmp.Compare(tz.offset, other.offset); c != 0 {
		return c
	}
	switch {
	case tz.dst == other.dst:
		return 0
	case other.dst:
		return -1
	default:
		return 1
	}
}

// Location returns an offset-only time.Location for tz.
func (tz TimeZone) Location() *time.Location {
	if tz.offset == 0 {
		return offsetZero
	}
	return time.FixedZone("", tz.offset)
}

// ISOString returns the offset formatted as "±hh:mm".
func (tz TimeZone) ISOString() string {
	return string(tz.appendOffset(make([]byte, 0, len("+00:00")), true))
}

// String returns the ISO string representation of tz.
func (tz TimeZone) String() string {
	return tz.ISOString()
}

// Format formats tz using pattern and DefaultFormatter. Only the time zone
// specifiers "e", "I", "O", "P", "T", and "Z" are replaced.
func (tz TimeZone) Format(pattern string) string {
	return DefaultFormatter{}.FormatTimeZone(tz, pattern)
}

// MarshalText encodes tz as its ISO string.
func (tz TimeZone) MarshalText() ([]byte, error) {
	return []byte(tz.ISOString()), nil
}

// UnmarshalText decodes an ISO offset into tz.
func (tz *TimeZone) UnmarshalText(data []byte) error {
	val, err := ParseTimeZone(string(data))
	if err != nil {
		return err
	}
	*tz = val
	return nil
}

// appendOffset appends the offset to buf as "±hh:mm", or as "±hhmm" when
// colon is false.
func (tz TimeZone) appendOffset(buf []byte, colon bool) []byte {
	off := tz.offset
	sign := byte('+')
	if off < 0 {
		sign = '-'
		off = -off
	}
	buf = append(buf, sign)
	buf = appendPadded(buf, off/calendar.SecondsPerHour, 2)
	if colon {
		buf = append(buf, ':')
	}
	return appendPadded(buf, off%calendar.SecondsPerHour/calendar.SecondsPerMinute, 2)
}

// appendPadded appends the decimal value of n to buf, left-padded with
// zeros to width digits. Negative values get a leading minus sign.
func appendPadded(buf []byte, n, width int) []byte {
	if n < 0 {
		buf = append(buf, '-')
		n = -n
	}
	digits := strconv.Itoa(n)
	for i := len(digits); i < width; i++ {
		buf = append(buf, '0')
	}
	return append(buf, digits...)
}

// key is an unexported type for keys defined in this package. This prevents
// collisions with keys defined in other packages.
type key int

//nolint:gochecknoglobals
var (
	// offsetZero represents time zone offset zero.
	offsetZero = time.FixedZone("", 0)

	// tzKey is the key for TimeZone values in Contexts. It is unexported;
	// clients use ContextWithTimeZone and TimeZoneFromContext instead of
	// using this key directly.
	tzKey key
)

// ContextWithTimeZone returns a new Context that carries tz. Parsing
// functions that take a Context use it for values without an offset.
func ContextWithTimeZone(ctx context.Context, tz TimeZone) context.Context {
	return context.WithValue(ctx, tzKey, tz)
}

// TimeZoneFromContext returns the TimeZone stored in ctx or UTC.
func TimeZoneFromContext(ctx context.Context) TimeZone {
	if tz, ok := ctx.Value(tzKey).(TimeZone); ok {
		return tz
	}
	return UTC
}
