package interval

import (
	"fmt"
	"time"

	"github.com/theory/civiltime/civil/calendar"
	"github.com/theory/civiltime/civil/types"
)

// monthFormat is the time.Parse layout for the month after an ISO year.
const monthFormat = "-01"

// Month represents a calendar month in a time zone. It starts at midnight
// on the first of the month and ends at midnight on the first of the
// following month.
type Month struct {
	year  int
	month int
	tz    types.TimeZone
}

// NewMonth returns the month of year with the given ordinal, where 1 is
// January. Ordinals outside 1-12 roll into adjacent years, so month 13 of
// 2012 is January 2013 and month 0 is December 2011.
func NewMonth(year Year, ordinal int) Month {
	return Month{
		year:  year.year + calendar.FloorDiv(ordinal-1, calendar.MonthsPerYear),
		month: calendar.FloorMod(ordinal-1, calendar.MonthsPerYear) + 1,
		tz:    year.tz,
	}
}

// MonthOf returns the month containing tp's civil date, in tp's time zone.
func MonthOf(tp types.TimePoint) Month {
	dt := tp.ToDateTime()
	return Month{year: dt.Year(), month: dt.Month(), tz: dt.TimeZone()}
}

// ParseMonth parses an ISO month such as "2012-02" or "-0044-03" into a UTC
// Month.
func ParseMonth(src string) (Month, error) {
	year, rest, ok := types.CutYear(src)
	if ok {
		if t, err := time.Parse(monthFormat, rest); err == nil {
			return Month{year: year, month: int(t.Month())}, nil
		}
	}
	return Month{}, fmt.Errorf("%w: cannot parse %q as a month", ErrParse, src)
}

// Year returns the year the month falls in.
func (m Month) Year() Year { return Year{year: m.year, tz: m.tz} }

// Ordinal returns the month number, where 1 is January.
func (m Month) Ordinal() int { return m.month }

// TimeZone returns the time zone of the month's endpoints.
func (m Month) TimeZone() types.TimeZone { return m.tz }

// Start returns the types.Date of the first of the month.
func (m Month) Start() types.TimePoint { return types.NewDateIn(m.year, m.month, 1, m.tz) }

// End returns the types.Date of the first of the following month.
func (m Month) End() types.TimePoint { return types.NewDateIn(m.year, m.month+1, 1, m.tz) }

// NumberOfDays returns the number of days in the month.
func (m Month) NumberOfDays() int { return calendar.DaysInMonth(m.year, m.month) }

// Next returns the following month.
func (m Month) Next() Month { return NewMonth(m.Year(), m.month+1) }

// Prev returns the preceding month.
func (m Month) Prev() Month { return NewMonth(m.Year(), m.month-1) }

// Contains returns true if point falls within m, inclusive of both ends.
func (m Month) Contains(point types.TimePoint) bool { return Of(m).Contains(point) }

// IsEmpty always returns false for a month.
func (m Month) IsEmpty() bool { return Of(m).IsEmpty() }

// Encompasses returns true if other falls entirely within m.
func (m Month) Encompasses(other Bounded) bool { return Of(m).Encompasses(other) }

// Intersects returns true if m and other share at least one instant.
func (m Month) Intersects(other Bounded) bool { return Of(m).Intersects(other) }

// Compare compares m to other by start and then by end.
func (m Month) Compare(other Bounded) int { return Of(m).Compare(other) }

// String returns the month as "YYYY-MM".
func (m Month) String() string {
	return fmt.Sprintf("%s-%02d", types.FormatYear(m.year), m.month)
}

// MarshalText implements encoding.TextMarshaler.
func (m Month) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Month) UnmarshalText(data []byte) error {
	month, err := ParseMonth(string(data))
	if err != nil {
		return err
	}
	*m = month
	return nil
}
