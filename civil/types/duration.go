package types

import (
	"cmp"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/theory/civiltime/civil/calendar"
)

// Duration represents an exact, signed number of seconds.
type Duration struct {
	seconds int64
}

// NewDuration creates a Duration of seconds.
func NewDuration(seconds int64) Duration {
	return Duration{seconds: seconds}
}

// DurationOf creates a Duration from its components, each of which may be
// negative or out of range: DurationOf(1, 2, 3, 4, 5) is 788645 seconds.
func DurationOf(weeks, days, hours, minutes, seconds int) Duration {
	return Duration{seconds: calendar.ApproximateTotalSeconds(0, 0, weeks, days, hours, minutes, seconds)}
}

// DurationFromGo converts d into a Duration, truncating sub-second
// precision.
func DurationFromGo(d time.Duration) Duration {
	return Duration{seconds: int64(d / time.Second)}
}

func (Duration) timeSpan() {}

// TotalSeconds returns the number of seconds in d.
func (d Duration) TotalSeconds() int64 { return d.seconds }

// Components decomposes the magnitude of d into weeks, days, hours, minutes,
// and seconds, and applies the sign of d to each.
func (d Duration) Components() (weeks, days, hours, minutes, seconds int) {
	total := d.seconds
	sign := int64(1)
	if total < 0 {
		sign = -1
		total = -total
	}

	const secondsPerWeek = calendar.DaysPerWeek * calendar.SecondsPerDay
	weeks = int(sign * (total / secondsPerWeek))
	days = int(sign * (total % secondsPerWeek / calendar.SecondsPerDay))
	hours = int(sign * (total % calendar.SecondsPerDay / calendar.SecondsPerHour))
	minutes = int(sign * (total % calendar.SecondsPerHour / calendar.SecondsPerMinute))
	seconds = int(sign * (total % calendar.SecondsPerMinute))
	return weeks, days, hours, minutes, seconds
}

// IsEmpty returns true if d is zero seconds.
func (d Duration) IsEmpty() bool { return d.seconds == 0 }

// Compare compares the length of d to other, returning -1, 0, or +1.
func (d Duration) Compare(other Duration) int {
	return cmp.Compare(d.seconds, other.seconds)
}

// Inverse returns d with the opposite sign.
func (d Duration) Inverse() Duration { return Duration{seconds: -d.seconds} }

// Add returns the sum of d and other.
func (d Duration) Add(other Duration) Duration {
	return Duration{seconds: d.seconds + other.seconds}
}

// GoDuration returns d as a time.Duration. Durations longer than about 292
// years overflow.
func (d Duration) GoDuration() time.Duration {
	return time.Duration(d.seconds) * time.Second
}

// ApproximateSeconds returns the number of seconds in d, which is exact.
func (d Duration) ApproximateSeconds() int64 { return d.seconds }

// ResolveToTimePoint returns the time point d seconds after anchor, in the
// time zone of anchor and of the same concrete type.
func (d Duration) ResolveToTimePoint(anchor TimePoint) TimePoint {
	return fromDateTime(anchor, DateTimeFromUnix(anchor.UnixTime()+d.seconds, anchor.TimeZone()))
}

// ResolveToSeconds returns the number of seconds in d. The anchor is
// ignored.
func (d Duration) ResolveToSeconds(TimePoint) int64 { return d.seconds }

// ResolveToDuration returns d. The anchor is ignored.
func (d Duration) ResolveToDuration(TimePoint) Duration { return d }

// ResolveToPeriod returns the field-wise Period from anchor to the time
// point d seconds after it.
func (d Duration) ResolveToPeriod(anchor TimePoint) Period {
	start := anchor.ToDateTime()
	end := DateTimeFromUnix(start.UnixTime()+d.seconds, start.tz)
	return end.DifferenceAsPeriod(start)
}

// String returns d formatted like time.Duration, for example "219h4m5s".
// Unlike time.Duration, it covers the full int64 range of seconds.
func (d Duration) String() string {
	if d.seconds == 0 {
		return "0s"
	}

	buf := make([]byte, 0, len("-2562047788015215h30m7s"))
	abs := uint64(d.seconds)
	if d.seconds < 0 {
		buf = append(buf, '-')
		abs = -abs
	}

	hours := abs / calendar.SecondsPerHour
	minutes := abs % calendar.SecondsPerHour / calendar.SecondsPerMinute
	if hours > 0 {
		buf = strconv.AppendUint(buf, hours, 10)
		buf = append(buf, 'h')
	}
	if hours > 0 || minutes > 0 {
		buf = strconv.AppendUint(buf, minutes, 10)
		buf = append(buf, 'm')
	}
	buf = strconv.AppendUint(buf, abs%calendar.SecondsPerMinute, 10)
	return string(append(buf, 's'))
}

// MarshalText encodes d as its String.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a time.Duration string into d.
func (d *Duration) UnmarshalText(data []byte) error {
	val, err := ParseDuration(string(data))
	if err != nil {
		return err
	}
	*d = val
	return nil
}

// ParseDuration parses a string accepted by time.ParseDuration, such as
// "1h30m" or "-90s", into a Duration. Sub-second precision is truncated.
// Whole-second strings in the form written by String, such as
// "17628000h0m0s", parse even when too long for a time.Duration.
func ParseDuration(src string) (Duration, error) {
	if d, err := time.ParseDuration(src); err == nil {
		return DurationFromGo(d), nil
	}
	if secs, ok := parseLongDuration(src); ok {
		return NewDuration(secs), nil
	}
	return Duration{}, parseError(src, "duration")
}

// parseLongDuration parses an optionally signed sequence of integers
// followed by h, m, and s, in that order, into seconds. It returns false
// on any other input or if the total overflows int64.
func parseLongDuration(src string) (int64, bool) {
	rest := src
	limit := uint64(math.MaxInt64)
	neg := false
	if rest != "" && (rest[0] == '+' || rest[0] == '-') {
		if rest[0] == '-' {
			neg = true
			limit++
		}
		rest = rest[1:]
	}
	if rest == "" {
		return 0, false
	}

	var total uint64
	units := "hms"
	for rest != "" {
		n := strings.IndexFunc(rest, func(r rune) bool { return r < '0' || r > '9' })
		if n <= 0 {
			return 0, false
		}
		unit := strings.IndexByte(units, rest[n])
		if unit < 0 {
			return 0, false
		}
		val, err := strconv.ParseUint(rest[:n], 10, 64)
		if err != nil {
			return 0, false
		}
		scale := uint64(1)
		switch units[unit] {
		case 'h':
			scale = calendar.SecondsPerHour
		case 'm':
			scale = calendar.SecondsPerMinute
		}
		if val > (limit-total)/scale {
			return 0, false
		}
		total += val * scale
		units = units[unit+1:]
		rest = rest[n+1:]
	}

	if neg {
		return int64(-total), true
	}
	return int64(total), true
}
