package types

import (
	"time"

	"github.com/theory/civiltime/civil/calendar"
)

// TimeOfDay represents a wall clock time in a time zone, without a date. Its
// instant falls on 1970-01-01, and arithmetic wraps around midnight.
type TimeOfDay struct {
	hour   int
	minute int
	second int
	tz     TimeZone
}

// NewTimeOfDay creates a UTC TimeOfDay, normalizing out-of-range values and
// wrapping whole days: NewTimeOfDay(25, 0, 0) returns 01:00:00.
func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return NewTimeOfDayIn(hour, minute, second, UTC)
}

// NewTimeOfDayIn creates a TimeOfDay in tz, normalizing out-of-range values.
func NewTimeOfDayIn(hour, minute, second int, tz TimeZone) TimeOfDay {
	h, m, s, _ := calendar.NormalizeTime(hour, minute, second)
	return TimeOfDay{hour: h, minute: m, second: s, tz: tz}
}

// TimeOfDayFromUnix returns the wall clock time of the instant sec in tz.
func TimeOfDayFromUnix(sec int64, tz TimeZone) TimeOfDay {
	return DateTimeFromUnix(sec, tz).TimeOfDay()
}

// MustParseTimeOfDay is like ParseTimeOfDay but panics on parse failure.
func MustParseTimeOfDay(src string) TimeOfDay {
	t, err := ParseTimeOfDay(src)
	if err != nil {
		panic(err)
	}
	return t
}

func (TimeOfDay) timePoint() {}

// Hour returns the hour, from 0 to 23.
func (t TimeOfDay) Hour() int { return t.hour }

// Minute returns the minute, from 0 to 59.
func (t TimeOfDay) Minute() int { return t.minute }

// Second returns the second, from 0 to 59.
func (t TimeOfDay) Second() int { return t.second }

// TimeZone returns the time zone of the time.
func (t TimeOfDay) TimeZone() TimeZone { return t.tz }

// SecondsSinceMidnight returns the number of seconds since midnight in the
// time zone of t.
func (t TimeOfDay) SecondsSinceMidnight() int {
	return t.hour*calendar.SecondsPerHour + t.minute*calendar.SecondsPerMinute + t.second
}

// UnixTime returns the number of seconds from the Unix epoch to t on
// 1970-01-01.
func (t TimeOfDay) UnixTime() int64 {
	return int64(t.SecondsSinceMidnight() - t.tz.offset)
}

// Compare compares the instant of t with other. If t is before other, it
// returns -1; if t is after other, it returns +1; if they're the same, it
// returns 0.
func (t TimeOfDay) Compare(other TimePoint) int { return compareInstants(t, other) }

// Equal returns true if t and other identify the same instant.
func (t TimeOfDay) Equal(other TimePoint) bool { return t.Compare(other) == 0 }

// Before returns true if t is before other.
func (t TimeOfDay) Before(other TimePoint) bool { return t.Compare(other) < 0 }

// After returns true if t is after other.
func (t TimeOfDay) After(other TimePoint) bool { return t.Compare(other) > 0 }

// Add resolves span against t. The result wraps around midnight, so any
// whole days in span are lost.
func (t TimeOfDay) Add(span TimeSpan) TimeOfDay {
	return t.ToDateTime().Add(span).TimeOfDay()
}

// Shift returns t.Add(span) as a TimePoint.
func (t TimeOfDay) Shift(span TimeSpan) TimePoint { return t.Add(span) }

// ToTimeZone returns the wall clock time of the instant of t in tz.
func (t TimeOfDay) ToTimeZone(tz TimeZone) TimeOfDay {
	return TimeOfDayFromUnix(t.UnixTime(), tz)
}

// ToUTC returns t.ToTimeZone(UTC).
func (t TimeOfDay) ToUTC() TimeOfDay { return t.ToTimeZone(UTC) }

// ToDateTime returns t on 1970-01-01.
func (t TimeOfDay) ToDateTime() DateTime {
	return DateTime{
		year: 1970, month: 1, day: 1,
		hour: t.hour, minute: t.minute, second: t.second,
		tz: t.tz,
	}
}

// On combines t with the date d, after converting t to the time zone of d.
func (t TimeOfDay) On(d Date) DateTime { return d.At(t) }

// DifferenceAsSeconds returns the number of seconds from other to t.
func (t TimeOfDay) DifferenceAsSeconds(other TimePoint) int64 {
	return t.UnixTime() - other.UnixTime()
}

// DifferenceAsDuration returns the Duration from other to t.
func (t TimeOfDay) DifferenceAsDuration(other TimePoint) Duration {
	return NewDuration(t.DifferenceAsSeconds(other))
}

// DifferenceAsPeriod converts other to the time zone of t and returns the
// field-wise difference of the hours, minutes, and seconds, without
// borrowing.
func (t TimeOfDay) DifferenceAsPeriod(other TimePoint) Period {
	o := other.ToDateTime().ToTimeZone(t.tz)
	return Period{
		hours:   t.hour - o.hour,
		minutes: t.minute - o.minute,
		seconds: t.second - o.second,
	}
}

// GoTime returns t on 1970-01-01 as a time.Time.
func (t TimeOfDay) GoTime() time.Time {
	return time.Date(1970, time.January, 1, t.hour, t.minute, t.second, 0, t.tz.Location())
}

// ISOString returns t formatted as "hh:mm:ss", followed by the "±hh:mm"
// offset unless t is in UTC.
func (t TimeOfDay) ISOString() string {
	buf := appendClock(make([]byte, 0, len(timeFormat)+len("+00:00")), t.hour, t.minute, t.second)
	if !t.tz.IsUTC() {
		buf = t.tz.appendOffset(buf, true)
	}
	return string(buf)
}

// String returns the ISO string representation of t.
func (t TimeOfDay) String() string { return t.ISOString() }

// Format formats t using pattern and DefaultFormatter.
func (t TimeOfDay) Format(pattern string) string {
	return DefaultFormatter{}.Format(t, pattern)
}

// FormatWith formats t using pattern and f.
func (t TimeOfDay) FormatWith(f Formatter, pattern string) string {
	return f.Format(t, pattern)
}

// MarshalText encodes t as its ISO string.
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.ISOString()), nil
}

// UnmarshalText decodes an ISO time into t.
func (t *TimeOfDay) UnmarshalText(data []byte) error {
	val, err := ParseTimeOfDay(string(data))
	if err != nil {
		return err
	}
	*t = val
	return nil
}

// appendClock appends "hh:mm:ss" to buf.
func appendClock(buf []byte, hour, minute, second int) []byte {
	buf = appendPadded(buf, hour, 2)
	buf = append(buf, ':')
	buf = appendPadded(buf, minute, 2)
	buf = append(buf, ':')
	return appendPadded(buf, second, 2)
}
