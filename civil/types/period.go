package types

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"

	"github.com/rickb777/period"
	"github.com/theory/civiltime/civil/calendar"
)

// Period represents a span of signed calendar units. Unlike a Duration, its
// length in seconds depends on the time point it is resolved against: P1M
// starting in February is shorter than P1M starting in March.
type Period struct {
	years   int
	months  int
	days    int
	hours   int
	minutes int
	seconds int
}

//nolint:gochecknoglobals
var (
	// OneSecond is the Period PT1S.
	OneSecond = Period{seconds: 1}

	// OneMinute is the Period PT1M.
	OneMinute = Period{minutes: 1}

	// OneHour is the Period PT1H.
	OneHour = Period{hours: 1}

	// OneDay is the Period P1D.
	OneDay = Period{days: 1}

	// OneWeek is the Period P7D.
	OneWeek = Period{days: calendar.DaysPerWeek}

	// OneMonth is the Period P1M.
	OneMonth = Period{months: 1}

	// OneYear is the Period P1Y.
	OneYear = Period{years: 1}
)

// NewPeriod creates a Period. The fields are kept exactly as given, without
// normalization, so NewPeriod(0, 0, 0, 0, 0, 90) stays PT90S.
func NewPeriod(years, months, days, hours, minutes, seconds int) Period {
	return Period{
		years: years, months: months, days: days,
		hours: hours, minutes: minutes, seconds: seconds,
	}
}

// ParsePeriod parses an ISO-8601 period such as "P1Y2M3DT4H5M6S" or "P2W".
// A leading sign negates the entire period and any field may be negative,
// as in "P1M-3D". Fractional values and weeks combined with other fields
// are not supported.
func ParsePeriod(src string) (Period, error) {
	if strings.ContainsAny(src, ".,") {
		return Period{}, fmt.Errorf("%w: cannot parse %q as a period: fractions are not supported", ErrParse, src)
	}

	p, err := period.Parse(src)
	if err != nil {
		return Period{}, fmt.Errorf("%w: %w", ErrParse, err)
	}

	if p.Weeks() != 0 && (p.Years() != 0 || p.Months() != 0 || p.Days() != 0 ||
		p.Hours() != 0 || p.Minutes() != 0 || p.Seconds() != 0) {
		return Period{}, fmt.Errorf("%w: cannot parse %q as a period: weeks cannot be combined with other fields", ErrParse, src)
	}

	return NewPeriod(p.Years(), p.Months(), p.DaysIncWeeks(), p.Hours(), p.Minutes(), p.Seconds()), nil
}

// MustParsePeriod is like ParsePeriod but panics on parse failure.
func MustParsePeriod(src string) Period {
	p, err := ParsePeriod(src)
	if err != nil {
		panic(err)
	}
	return p
}

func (Period) timeSpan() {}

// Years returns the years field.
func (p Period) Years() int { return p.years }

// Months returns the months field.
func (p Period) Months() int { return p.months }

// Days returns the days field.
func (p Period) Days() int { return p.days }

// Hours returns the hours field.
func (p Period) Hours() int { return p.hours }

// Minutes returns the minutes field.
func (p Period) Minutes() int { return p.minutes }

// Seconds returns the seconds field.
func (p Period) Seconds() int { return p.seconds }

// IsEmpty returns true if every field of p is zero.
func (p Period) IsEmpty() bool { return p == Period{} }

// Compare compares p to other field by field, from years to seconds, and
// returns the result of the first field that differs: -1, 0, or +1. It does
// not compare lengths, so PT1000H sorts before P1D.
func (p Period) Compare(other Period) int {
	for _, pair := range [][2]int{
		{p.years, other.years},
		{p.months, other.months},
		{p.days, other.days},
		{p.hours, other.hours},
		{p.minutes, other.minutes},
		{p.seconds, other.seconds},
	} {
		if c := cmp.Compare(pair[0], pair[1]); c != 0 {
			return c
		}
	}
	return 0
}

// Inverse returns p with every field negated.
func (p Period) Inverse() Period {
	return Period{
		years: -p.years, months: -p.months, days: -p.days,
		hours: -p.hours, minutes: -p.minutes, seconds: -p.seconds,
	}
}

// Add returns the field-wise sum of p and other.
func (p Period) Add(other Period) Period {
	return Period{
		years:   p.years + other.years,
		months:  p.months + other.months,
		days:    p.days + other.days,
		hours:   p.hours + other.hours,
		minutes: p.minutes + other.minutes,
		seconds: p.seconds + other.seconds,
	}
}

// Scale returns p with every field multiplied by n.
func (p Period) Scale(n int) Period {
	return Period{
		years: p.years * n, months: p.months * n, days: p.days * n,
		hours: p.hours * n, minutes: p.minutes * n, seconds: p.seconds * n,
	}
}

// ApproximateSeconds returns the nominal length of p in seconds, counting
// 365 days per year and 30 days per month.
func (p Period) ApproximateSeconds() int64 {
	return calendar.ApproximateTotalSeconds(p.years, p.months, 0, p.days, p.hours, p.minutes, p.seconds)
}

// addTo adds each field of p to the matching field of dt and normalizes the
// result.
func (p Period) addTo(dt DateTime) DateTime {
	return NewDateTimeIn(
		dt.year+p.years, dt.month+p.months, dt.day+p.days,
		dt.hour+p.hours, dt.minute+p.minutes, dt.second+p.seconds,
		dt.tz,
	)
}

// ResolveToTimePoint adds p to anchor and returns the result as the same
// concrete type as anchor.
func (p Period) ResolveToTimePoint(anchor TimePoint) TimePoint {
	return fromDateTime(anchor, p.addTo(anchor.ToDateTime()))
}

// ResolveToSeconds returns the exact number of seconds p covers when added
// to anchor.
func (p Period) ResolveToSeconds(anchor TimePoint) int64 {
	start := anchor.ToDateTime()
	return p.addTo(start).UnixTime() - start.UnixTime()
}

// ResolveToDuration returns the exact Duration p covers when added to
// anchor.
func (p Period) ResolveToDuration(anchor TimePoint) Duration {
	return NewDuration(p.ResolveToSeconds(anchor))
}

// ResolveToPeriod returns p. The anchor is ignored.
func (p Period) ResolveToPeriod(TimePoint) Period { return p }

// ISOString returns p in ISO-8601 format, omitting zero fields, for example
// "P1Y2M3DT4H5M6S". The empty period is "PT0S". Negative fields keep their
// sign, as in "P1M-3D".
func (p Period) ISOString() string {
	if p.IsEmpty() {
		return "PT0S"
	}

	buf := make([]byte, 0, 32)
	buf = append(buf, 'P')
	buf = appendField(buf, p.years, 'Y')
	buf = appendField(buf, p.months, 'M')
	buf = appendField(buf, p.days, 'D')
	if p.hours != 0 || p.minutes != 0 || p.seconds != 0 {
		buf = append(buf, 'T')
		buf = appendField(buf, p.hours, 'H')
		buf = appendField(buf, p.minutes, 'M')
		buf = appendField(buf, p.seconds, 'S')
	}
	return string(buf)
}

// appendField appends n and designator to buf unless n is zero.
func appendField(buf []byte, n int, designator byte) []byte {
	if n == 0 {
		return buf
	}
	buf = strconv.AppendInt(buf, int64(n), 10)
	return append(buf, designator)
}

// String returns the ISO string representation of p.
func (p Period) String() string { return p.ISOString() }

// MarshalText encodes p as its ISO string.
func (p Period) MarshalText() ([]byte, error) {
	return []byte(p.ISOString()), nil
}

// UnmarshalText decodes an ISO period into p.
func (p *Period) UnmarshalText(data []byte) error {
	val, err := ParsePeriod(string(data))
	if err != nil {
		return err
	}
	*p = val
	return nil
}
