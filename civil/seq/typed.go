package seq

import (
	"github.com/theory/civiltime/civil/interval"
	"github.com/theory/civiltime/civil/types"
)

func toDate(tp types.TimePoint) types.Date { return tp.ToDateTime().Date() }

func toDateTime(tp types.TimePoint) types.DateTime { return tp.ToDateTime() }

// Days returns an iterator over the dates starting with start's civil date.
func Days(start types.TimePoint, bound Bound) *Iterator[types.Date] {
	return newIterator(toDate(start), types.OneDay, bound, toDate)
}

// DaysIn returns an iterator over the dates from the start of iv until the
// end of iv, exclusive.
func DaysIn(iv interval.Bounded) *Iterator[types.Date] {
	return Days(iv.Start(), Before(iv.End()))
}

// Hours returns an iterator over hourly date times starting with start.
func Hours(start types.TimePoint, bound Bound) *Iterator[types.DateTime] {
	return newIterator(start.ToDateTime(), types.OneHour, bound, toDateTime)
}

// HoursIn returns an iterator over hourly date times from the start of iv
// until the end of iv, exclusive.
func HoursIn(iv interval.Bounded) *Iterator[types.DateTime] {
	return Hours(iv.Start(), Before(iv.End()))
}

// Minutes returns an iterator over date times a minute apart starting with
// start.
func Minutes(start types.TimePoint, bound Bound) *Iterator[types.DateTime] {
	return newIterator(start.ToDateTime(), types.OneMinute, bound, toDateTime)
}

// MinutesIn returns an iterator over date times a minute apart from the
// start of iv until the end of iv, exclusive.
func MinutesIn(iv interval.Bounded) *Iterator[types.DateTime] {
	return Minutes(iv.Start(), Before(iv.End()))
}

// Seconds returns an iterator over date times a second apart starting with
// start.
func Seconds(start types.TimePoint, bound Bound) *Iterator[types.DateTime] {
	return newIterator(start.ToDateTime(), types.OneSecond, bound, toDateTime)
}

// SecondsIn returns an iterator over date times a second apart from the
// start of iv until the end of iv, exclusive.
func SecondsIn(iv interval.Bounded) *Iterator[types.DateTime] {
	return Seconds(iv.Start(), Before(iv.End()))
}

// Months returns an iterator over calendar months, starting with the month
// that contains start. A Before or Through bound applies to the start of
// each month.
func Months(start types.TimePoint, bound Bound) *Iterator[interval.Month] {
	return newIterator(interval.MonthOf(start).Start(), types.OneMonth, bound, interval.MonthOf)
}

// MonthsIn returns an iterator over the calendar months that begin before
// the end of iv, starting with the month that contains the start of iv.
func MonthsIn(iv interval.Bounded) *Iterator[interval.Month] {
	return Months(iv.Start(), Before(iv.End()))
}

// Years returns an iterator over calendar years, starting with the year that
// contains start. A Before or Through bound applies to the start of each
// year.
func Years(start types.TimePoint, bound Bound) *Iterator[interval.Year] {
	return newIterator(interval.YearOf(start).Start(), types.OneYear, bound, interval.YearOf)
}

// YearsIn returns an iterator over the calendar years that begin before the
// end of iv, starting with the year that contains the start of iv.
func YearsIn(iv interval.Bounded) *Iterator[interval.Year] {
	return Years(iv.Start(), Before(iv.End()))
}
