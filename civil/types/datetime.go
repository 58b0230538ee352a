package types

import (
	"time"

	"github.com/theory/civiltime/civil/calendar"
)

// DateTime represents a civil date and wall clock time in a time zone.
type DateTime struct {
	year   int
	month  int
	day    int
	hour   int
	minute int
	second int
	tz     TimeZone
}

// NewDateTime creates a UTC DateTime, normalizing out-of-range values in
// every field: NewDateTime(2012, 12, 31, 24, 0, 0) returns
// 2013-01-01T00:00:00.
func NewDateTime(year, month, day, hour, minute, second int) DateTime {
	return NewDateTimeIn(year, month, day, hour, minute, second, UTC)
}

// NewDateTimeIn creates a DateTime in tz, normalizing out-of-range values.
func NewDateTimeIn(year, month, day, hour, minute, second int, tz TimeZone) DateTime {
	y, mo, d, h, mi, s := calendar.NormalizeDateTime(year, month, day, hour, minute, second)
	return DateTime{year: y, month: mo, day: d, hour: h, minute: mi, second: s, tz: tz}
}

// DateTimeFromUnix returns the civil date and time of the instant sec in tz.
func DateTimeFromUnix(sec int64, tz TimeZone) DateTime {
	local := sec + int64(tz.offset)
	days := calendar.FloorDiv(local, calendar.SecondsPerDay)
	secs := int(local - days*calendar.SecondsPerDay)
	y, m, d := calendar.CivilFromDays(days)
	return DateTime{
		year: y, month: m, day: d,
		hour:   secs / calendar.SecondsPerHour,
		minute: secs % calendar.SecondsPerHour / calendar.SecondsPerMinute,
		second: secs % calendar.SecondsPerMinute,
		tz:     tz,
	}
}

// FromGoTime converts t into a DateTime in a time zone with the offset and
// DST flag of t's location. Sub-second precision is truncated.
func FromGoTime(t time.Time) DateTime {
	return NewDateTimeIn(
		t.Year(), int(t.Month()), t.Day(),
		t.Hour(), t.Minute(), t.Second(),
		timeZoneOf(t),
	)
}

// MustParseDateTime is like ParseDateTime but panics on parse failure.
func MustParseDateTime(src string) DateTime {
	dt, err := ParseDateTime(src)
	if err != nil {
		panic(err)
	}
	return dt
}

func (DateTime) timePoint() {}

// Year returns the year.
func (dt DateTime) Year() int { return dt.year }

// Month returns the month, from 1 to 12.
func (dt DateTime) Month() int { return dt.month }

// Day returns the day of the month, from 1 to 31.
func (dt DateTime) Day() int { return dt.day }

// Hour returns the hour, from 0 to 23.
func (dt DateTime) Hour() int { return dt.hour }

// Minute returns the minute, from 0 to 59.
func (dt DateTime) Minute() int { return dt.minute }

// Second returns the second, from 0 to 59.
func (dt DateTime) Second() int { return dt.second }

// TimeZone returns the time zone of dt.
func (dt DateTime) TimeZone() TimeZone { return dt.tz }

// Date returns the date component of dt.
func (dt DateTime) Date() Date {
	return Date{year: dt.year, month: dt.month, day: dt.day, tz: dt.tz}
}

// TimeOfDay returns the time component of dt.
func (dt DateTime) TimeOfDay() TimeOfDay {
	return TimeOfDay{hour: dt.hour, minute: dt.minute, second: dt.second, tz: dt.tz}
}

// DayOfWeek returns the day of the week, from 1 (Monday) to 7 (Sunday) when
// iso is true and from 0 (Sunday) to 6 (Saturday) otherwise.
func (dt DateTime) DayOfWeek(iso bool) int { return dt.Date().DayOfWeek(iso) }

// DayOfYear returns the 1-based day of the year.
func (dt DateTime) DayOfYear() int { return dt.Date().DayOfYear() }

// ISOWeek returns the ISO 8601 week-numbering year and week of dt.
func (dt DateTime) ISOWeek() (year, week int) { return dt.Date().ISOWeek() }

// UnixTime returns the number of seconds from the Unix epoch to dt.
func (dt DateTime) UnixTime() int64 {
	return calendar.DaysFromCivil(dt.year, dt.month, dt.day)*calendar.SecondsPerDay +
		int64(dt.TimeOfDay().SecondsSinceMidnight()) -
		int64(dt.tz.offset)
}

// Compare compares the instant of dt with other. If dt is before other, it
// returns -1; if dt is after other, it returns +1; if they're the same, it
// returns 0.
func (dt DateTime) Compare(other TimePoint) int { return compareInstants(dt, other) }

// Equal returns true if dt and other identify the same instant.
func (dt DateTime) Equal(other TimePoint) bool { return dt.Compare(other) == 0 }

// Before returns true if dt is before other.
func (dt DateTime) Before(other TimePoint) bool { return dt.Compare(other) < 0 }

// After returns true if dt is after other.
func (dt DateTime) After(other TimePoint) bool { return dt.Compare(other) > 0 }

// Add resolves span against dt. A Duration adds exactly its number of
// seconds; a Period adds each of its fields to the civil fields of dt and
// normalizes the result.
func (dt DateTime) Add(span TimeSpan) DateTime {
	//nolint:forcetypeassert
	return span.ResolveToTimePoint(dt).(DateTime)
}

// Shift returns dt.Add(span) as a TimePoint.
func (dt DateTime) Shift(span TimeSpan) TimePoint { return dt.Add(span) }

// ToTimeZone returns the civil date and time of the instant of dt in tz.
func (dt DateTime) ToTimeZone(tz TimeZone) DateTime {
	if tz == dt.tz {
		return dt
	}
	return DateTimeFromUnix(dt.UnixTime(), tz)
}

// ToUTC returns dt.ToTimeZone(UTC).
func (dt DateTime) ToUTC() DateTime { return dt.ToTimeZone(UTC) }

// ToDateTime returns dt.
func (dt DateTime) ToDateTime() DateTime { return dt }

// DifferenceAsSeconds returns the number of seconds from other to dt.
func (dt DateTime) DifferenceAsSeconds(other TimePoint) int64 {
	return dt.UnixTime() - other.UnixTime()
}

// DifferenceAsDuration returns the Duration from other to dt.
func (dt DateTime) DifferenceAsDuration(other TimePoint) Duration {
	return NewDuration(dt.DifferenceAsSeconds(other))
}

// DifferenceAsPeriod converts other to the time zone of dt and returns the
// field-wise difference of all six fields, without borrowing. Thus the
// difference from 2012-01-31T00:00:00 to 2012-03-01T00:00:00 is P2M-30D.
func (dt DateTime) DifferenceAsPeriod(other TimePoint) Period {
	o := other.ToDateTime().ToTimeZone(dt.tz)
	return Period{
		years:   dt.year - o.year,
		months:  dt.month - o.month,
		days:    dt.day - o.day,
		hours:   dt.hour - o.hour,
		minutes: dt.minute - o.minute,
		seconds: dt.second - o.second,
	}
}

// GoTime returns dt as a time.Time in a fixed-offset location.
func (dt DateTime) GoTime() time.Time {
	return time.Date(
		dt.year, time.Month(dt.month), dt.day,
		dt.hour, dt.minute, dt.second, 0,
		dt.tz.Location(),
	)
}

// ISOString returns dt formatted as "YYYY-MM-DDThh:mm:ss±hh:mm". The offset
// is always included.
func (dt DateTime) ISOString() string {
	buf := make([]byte, 0, len(dateTimeFormat)+len("+00:00"))
	buf = appendDate(buf, dt.year, dt.month, dt.day)
	buf = append(buf, 'T')
	buf = appendClock(buf, dt.hour, dt.minute, dt.second)
	return string(dt.tz.appendOffset(buf, true))
}

// String returns the ISO string representation of dt.
func (dt DateTime) String() string { return dt.ISOString() }

// Format formats dt using pattern and DefaultFormatter.
func (dt DateTime) Format(pattern string) string {
	return DefaultFormatter{}.Format(dt, pattern)
}

// FormatWith formats dt using pattern and f.
func (dt DateTime) FormatWith(f Formatter, pattern string) string {
	return f.Format(dt, pattern)
}

// MarshalText encodes dt as its ISO string.
func (dt DateTime) MarshalText() ([]byte, error) {
	return []byte(dt.ISOString()), nil
}

// UnmarshalText decodes an ISO date and time into dt.
func (dt *DateTime) UnmarshalText(data []byte) error {
	val, err := ParseDateTime(string(data))
	if err != nil {
		return err
	}
	*dt = val
	return nil
}
