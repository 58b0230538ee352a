package interval

import (
	"fmt"

	"github.com/theory/civiltime/civil/calendar"
	"github.com/theory/civiltime/civil/types"
)

// Year represents a calendar year in a time zone. It starts at midnight on
// January 1 and ends at midnight on January 1 of the following year.
type Year struct {
	year int
	tz   types.TimeZone
}

// NewYear returns the UTC calendar year year.
func NewYear(year int) Year { return Year{year: year} }

// NewYearIn returns the calendar year year in tz.
func NewYearIn(year int, tz types.TimeZone) Year { return Year{year: year, tz: tz} }

// YearOf returns the year containing tp's civil date, in tp's time zone.
func YearOf(tp types.TimePoint) Year {
	dt := tp.ToDateTime()
	return Year{year: dt.Year(), tz: dt.TimeZone()}
}

// ParseYear parses an ISO year such as "2012", "-0044", or "+10000" into a
// UTC Year.
func ParseYear(src string) (Year, error) {
	year, rest, ok := types.CutYear(src)
	if !ok || rest != "" {
		return Year{}, fmt.Errorf("%w: cannot parse %q as a year", ErrParse, src)
	}
	return NewYear(year), nil
}

// Number returns the year number.
func (y Year) Number() int { return y.year }

// TimeZone returns the time zone of the year's endpoints.
func (y Year) TimeZone() types.TimeZone { return y.tz }

// Start returns the types.Date of January 1.
func (y Year) Start() types.TimePoint { return types.NewDateIn(y.year, 1, 1, y.tz) }

// End returns the types.Date of January 1 of the following year.
func (y Year) End() types.TimePoint { return types.NewDateIn(y.year+1, 1, 1, y.tz) }

// NumberOfDays returns 366 in leap years and 365 otherwise.
func (y Year) NumberOfDays() int { return calendar.DaysInYear(y.year) }

// IsLeap returns true if y is a leap year.
func (y Year) IsLeap() bool { return calendar.IsLeapYear(y.year) }

// Month returns the month of y with the given ordinal, where 1 is January.
// Ordinals outside 1-12 roll into adjacent years.
func (y Year) Month(ordinal int) Month { return NewMonth(y, ordinal) }

// Months returns the twelve months of y.
func (y Year) Months() []Month {
	months := make([]Month, calendar.MonthsPerYear)
	for i := range months {
		months[i] = y.Month(i + 1)
	}
	return months
}

// Next returns the following year.
func (y Year) Next() Year { return Year{year: y.year + 1, tz: y.tz} }

// Prev returns the preceding year.
func (y Year) Prev() Year { return Year{year: y.year - 1, tz: y.tz} }

// Contains returns true if point falls within y, inclusive of both ends.
func (y Year) Contains(point types.TimePoint) bool { return Of(y).Contains(point) }

// IsEmpty always returns false for a year.
func (y Year) IsEmpty() bool { return Of(y).IsEmpty() }

// Encompasses returns true if other falls entirely within y.
func (y Year) Encompasses(other Bounded) bool { return Of(y).Encompasses(other) }

// Intersects returns true if y and other share at least one instant.
func (y Year) Intersects(other Bounded) bool { return Of(y).Intersects(other) }

// Compare compares y to other by start and then by end.
func (y Year) Compare(other Bounded) int { return Of(y).Compare(other) }

// String returns the year as four or more digits, as in "2012", with a
// sign outside 0000-9999.
func (y Year) String() string { return types.FormatYear(y.year) }

// MarshalText implements encoding.TextMarshaler.
func (y Year) MarshalText() ([]byte, error) { return []byte(y.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (y *Year) UnmarshalText(data []byte) error {
	year, err := ParseYear(string(data))
	if err != nil {
		return err
	}
	*y = year
	return nil
}
