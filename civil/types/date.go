package types

import (
	"time"

	"github.com/theory/civiltime/civil/calendar"
)

// Date represents a civil calendar date in a time zone. Its instant is
// midnight at the start of the day.
type Date struct {
	year  int
	month int
	day   int
	tz    TimeZone
}

// NewDate creates a UTC Date, normalizing out-of-range values: NewDate(2011,
// 2, 29) returns 2011-03-01.
func NewDate(year, month, day int) Date {
	return NewDateIn(year, month, day, UTC)
}

// NewDateIn creates a Date in tz, normalizing out-of-range values.
func NewDateIn(year, month, day int, tz TimeZone) Date {
	y, m, d := calendar.NormalizeDate(year, month, day)
	return Date{year: y, month: m, day: d, tz: tz}
}

// DateFromUnix returns the Date on which the instant sec falls in tz.
func DateFromUnix(sec int64, tz TimeZone) Date {
	return DateTimeFromUnix(sec, tz).Date()
}

// MustParseDate is like ParseDate but panics on parse failure.
func MustParseDate(src string) Date {
	d, err := ParseDate(src)
	if err != nil {
		panic(err)
	}
	return d
}

func (Date) timePoint() {}

// Year returns the year.
func (d Date) Year() int { return d.year }

// Month returns the month, from 1 to 12.
func (d Date) Month() int { return d.month }

// Day returns the day of the month, from 1 to 31.
func (d Date) Day() int { return d.day }

// TimeZone returns the time zone of the date.
func (d Date) TimeZone() TimeZone { return d.tz }

// DayOfWeek returns the day of the week, from 1 (Monday) to 7 (Sunday) when
// iso is true and from 0 (Sunday) to 6 (Saturday) otherwise.
func (d Date) DayOfWeek(iso bool) int {
	return calendar.DayOfWeek(d.year, d.month, d.day, iso)
}

// DayOfYear returns the 1-based day of the year.
func (d Date) DayOfYear() int {
	return calendar.DayOfYear(d.year, d.month, d.day)
}

// ISOWeek returns the ISO 8601 week-numbering year and week of d.
func (d Date) ISOWeek() (year, week int) {
	return calendar.ISOWeek(d.year, d.month, d.day)
}

// IsLeapYear returns true if d falls in a leap year.
func (d Date) IsLeapYear() bool {
	return calendar.IsLeapYear(d.year)
}

// DaysInMonth returns the number of days in the month of d.
func (d Date) DaysInMonth() int {
	return calendar.DaysInMonth(d.year, d.month)
}

// UnixTime returns the number of seconds from the Unix epoch to midnight at
// the start of d.
func (d Date) UnixTime() int64 {
	return calendar.DaysFromCivil(d.year, d.month, d.day)*calendar.SecondsPerDay - int64(d.tz.offset)
}

// Compare compares the instant of d with other. If d is before other, it
// returns -1; if d is after other, it returns +1; if they're the same, it
// returns 0.
func (d Date) Compare(other TimePoint) int { return compareInstants(d, other) }

// Equal returns true if d and other identify the same instant.
func (d Date) Equal(other TimePoint) bool { return d.Compare(other) == 0 }

// Before returns true if d is before other.
func (d Date) Before(other TimePoint) bool { return d.Compare(other) < 0 }

// After returns true if d is after other.
func (d Date) After(other TimePoint) bool { return d.Compare(other) > 0 }

// Add resolves span against d. Any time component is resolved from
// midnight and then dropped, so adding PT25H moves to the following day.
func (d Date) Add(span TimeSpan) Date {
	return d.ToDateTime().Add(span).Date()
}

// Shift returns d.Add(span) as a TimePoint.
func (d Date) Shift(span TimeSpan) TimePoint { return d.Add(span) }

// ToTimeZone returns the date on which the instant of d falls in tz.
func (d Date) ToTimeZone(tz TimeZone) Date {
	return DateFromUnix(d.UnixTime(), tz)
}

// ToUTC returns d.ToTimeZone(UTC).
func (d Date) ToUTC() Date { return d.ToTimeZone(UTC) }

// ToDateTime returns midnight at the start of d.
func (d Date) ToDateTime() DateTime {
	return DateTime{year: d.year, month: d.month, day: d.day, tz: d.tz}
}

// At combines d with the civil time of t, after converting t to the time
// zone of d.
func (d Date) At(t TimeOfDay) DateTime {
	t = t.ToTimeZone(d.tz)
	return DateTime{
		year: d.year, month: d.month, day: d.day,
		hour: t.hour, minute: t.minute, second: t.second,
		tz: d.tz,
	}
}

// DifferenceAsSeconds returns the number of seconds from other to d.
func (d Date) DifferenceAsSeconds(other TimePoint) int64 {
	return d.UnixTime() - other.UnixTime()
}

// DifferenceAsDuration returns the Duration from other to d.
func (d Date) DifferenceAsDuration(other TimePoint) Duration {
	return NewDuration(d.DifferenceAsSeconds(other))
}

// DifferenceAsPeriod converts other to the time zone of d and returns the
// field-wise difference of the years, months, and days, without borrowing.
func (d Date) DifferenceAsPeriod(other TimePoint) Period {
	o := other.ToDateTime().ToTimeZone(d.tz)
	return Period{
		years:  d.year - o.year,
		months: d.month - o.month,
		days:   d.day - o.day,
	}
}

// GoTime returns midnight at the start of d as a time.Time.
func (d Date) GoTime() time.Time {
	return time.Date(d.year, time.Month(d.month), d.day, 0, 0, 0, 0, d.tz.Location())
}

// ISOString returns d formatted as "YYYY-MM-DD", followed by the "±hh:mm"
// offset unless d is in UTC.
func (d Date) ISOString() string {
	buf := appendDate(make([]byte, 0, len(dateFormat)+len("+00:00")), d.year, d.month, d.day)
	if !d.tz.IsUTC() {
		buf = d.tz.appendOffset(buf, true)
	}
	return string(buf)
}

// String returns the ISO string representation of d.
func (d Date) String() string { return d.ISOString() }

// Format formats d using pattern and DefaultFormatter.
func (d Date) Format(pattern string) string {
	return DefaultFormatter{}.Format(d, pattern)
}

// FormatWith formats d using pattern and f.
func (d Date) FormatWith(f Formatter, pattern string) string {
	return f.Format(d, pattern)
}

// MarshalText encodes d as its ISO string.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.ISOString()), nil
}

// UnmarshalText decodes an ISO date into d.
func (d *Date) UnmarshalText(data []byte) error {
	val, err := ParseDate(string(data))
	if err != nil {
		return err
	}
	*d = val
	return nil
}

// appendDate appends "YYYY-MM-DD" to buf, expanding the year as
// appendYear does.
func appendDate(buf []byte, year, month, day int) []byte {
	buf = appendYear(buf, year)
	buf = append(buf, '-')
	buf = appendPadded(buf, month, 2)
	buf = append(buf, '-')
	return appendPadded(buf, day, 2)
}

// maxPlainYear is the largest year written without a sign.
const maxPlainYear = 9999

// appendYear appends year to buf as at least four digits. Years outside
// 0000-9999 use the ISO-8601 expanded form with an explicit sign, as in
// "-0044" and "+10000".
func appendYear(buf []byte, year int) []byte {
	if year > maxPlainYear {
		buf = append(buf, '+')
	}
	return appendPadded(buf, year, 4)
}

// FormatYear formats year as four or more digits, prefixed with a sign
// when outside 0000-9999.
func FormatYear(year int) string {
	return string(appendYear(make([]byte, 0, len("+10000")), year))
}
