// Package calendar provides proleptic Gregorian calendar arithmetic: leap
// years, month lengths, weekday and ISO-8601 week numbering, and the
// normalization of out-of-range civil date and time components.
//
// Every function is total over its integer inputs; none of them fail.
package calendar

import "golang.org/x/exp/constraints"

const (
	// SecondsPerMinute contains the number of seconds in a minute (excluding
	// leap seconds).
	SecondsPerMinute = 60

	// SecondsPerHour contains the number of seconds in an hour.
	SecondsPerHour = 60 * SecondsPerMinute

	// SecondsPerDay contains the number of seconds in a day.
	SecondsPerDay = 24 * SecondsPerHour

	// DaysPerWeek contains the number of days in a week.
	DaysPerWeek = 7

	// MonthsPerYear contains the number of months in a year.
	MonthsPerYear = 12

	// daysPer400Years is the length of a full Gregorian cycle.
	daysPer400Years = 365*400 + 97

	// epochShift is the number of days from 0000-03-01 to 1970-01-01.
	epochShift = 719468
)

// daysBefore[m] counts the number of days in a non-leap year before month m
// begins. There is an entry for m=13, counting the number of days before
// January of next year (365).
//
//nolint:gochecknoglobals
var daysBefore = [...]int{
	0,
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31,
}

// FloorDiv returns a divided by b rounded toward negative infinity, so that
// FloorDiv(-1, 60) is -1 rather than 0. Panics if b is zero.
func FloorDiv[T constraints.Integer](a, b T) T {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// FloorMod returns the remainder of FloorDiv(a, b), which always has the
// sign of b.
func FloorMod[T constraints.Integer](a, b T) T {
	return a - FloorDiv(a, b)*b
}

// IsLeapYear reports whether year is a Gregorian leap year: divisible by 4
// and either not divisible by 100 or divisible by 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the number of days in month of year, from 28 to 31.
// Callers are expected to pass a month from 1 to 12; other values are
// carried into the year first.
func DaysInMonth(year, month int) int {
	if month < 1 || month > MonthsPerYear {
		year += FloorDiv(month-1, MonthsPerYear)
		month = FloorMod(month-1, MonthsPerYear) + 1
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return daysBefore[month+1] - daysBefore[month]
}

// DaysFromCivil returns the number of days from 1970-01-01 to the given
// civil date. The month must be from 1 to 12, but day may be any value: the
// result moves linearly with it, so DaysFromCivil(y, m, 1) + n - 1 equals
// DaysFromCivil(y, m, n).
func DaysFromCivil(year, month, day int) int64 {
	y := int64(year)
	if month <= 2 {
		y--
	}
	era := FloorDiv(y, 400)
	yoe := y - era*400
	mp := int64(month+9) % MonthsPerYear
	doy := (153*mp+2)/5 + int64(day) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*daysPer400Years + doe - epochShift
}

// CivilFromDays converts a number of days since 1970-01-01 into a civil
// date. It is the inverse of DaysFromCivil.
func CivilFromDays(days int64) (year, month, day int) {
	z := days + epochShift
	era := FloorDiv(z, daysPer400Years)
	doe := z - era*daysPer400Years
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153

	day = int(doy - (153*mp+2)/5 + 1)
	if mp < 10 {
		month = int(mp + 3)
	} else {
		month = int(mp - 9)
	}
	year = int(yoe + era*400)
	if month <= 2 {
		year++
	}
	return year, month, day
}

// DayOfWeek returns the day of the week of the given date. With iso true it
// returns 1 (Monday) through 7 (Sunday); otherwise it returns 0 (Sunday)
// through 6 (Saturday).
func DayOfWeek(year, month, day int, iso bool) int {
	// 1970-01-01 was a Thursday.
	wd := int(FloorMod(DaysFromCivil(year, month, day)+4, DaysPerWeek))
	if iso && wd == 0 {
		return DaysPerWeek
	}
	return wd
}

// DayOfYear returns the 1-based ordinal day of the date within its year.
func DayOfYear(year, month, day int) int {
	return int(DaysFromCivil(year, month, day)-DaysFromCivil(year, 1, 1)) + 1
}

// ISOWeek returns the ISO 8601 year and week number in which the date
// occurs. Week ranges from 1 to 53. Jan 01 to Jan 03 of year n might belong
// to week 52 or 53 of year n-1, and Dec 29 to Dec 31 might belong to week 1
// of year n+1.
func ISOWeek(year, month, day int) (isoYear, week int) {
	// Weeks belong to the year that contains their Thursday.
	days := DaysFromCivil(year, month, day)
	thursday := days + int64(4-DayOfWeek(year, month, day, true))
	isoYear, _, _ = CivilFromDays(thursday)
	week = int((thursday-DaysFromCivil(isoYear, 1, 1))/DaysPerWeek) + 1
	return isoYear, week
}

// ISOWeekNumber returns the ISO 8601 week number of the date.
func ISOWeekNumber(year, month, day int) int {
	_, week := ISOWeek(year, month, day)
	return week
}

// ISOYearNumber returns the ISO 8601 week-numbering year of the date.
func ISOYearNumber(year, month, day int) int {
	isoYear, _ := ISOWeek(year, month, day)
	return isoYear
}

// ApproximateTotalSeconds converts calendar units into seconds using nominal
// lengths of 365 days per year and 30 days per month. The result is only
// suitable for comparing unanchored spans, never for resolving them.
func ApproximateTotalSeconds(years, months, weeks, days, hours, minutes, seconds int) int64 {
	totalDays := int64(years)*365 + int64(months)*30 + int64(weeks)*DaysPerWeek + int64(days)
	return totalDays*SecondsPerDay +
		int64(hours)*SecondsPerHour +
		int64(minutes)*SecondsPerMinute +
		int64(seconds)
}
