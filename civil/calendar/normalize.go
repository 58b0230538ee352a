package calendar

// NormalizeTime carries out-of-range time components upward, seconds into
// minutes, minutes into hours, and hours into days, using floor division so
// that negative values borrow rather than truncate: NormalizeTime(0, 0, -1)
// returns 23:59:59 with a day carry of -1.
func NormalizeTime(hour, minute, second int) (h, m, s, dayCarry int) {
	minute += FloorDiv(second, SecondsPerMinute)
	s = FloorMod(second, SecondsPerMinute)

	hour += FloorDiv(minute, 60)
	m = FloorMod(minute, 60)

	dayCarry = FloorDiv(hour, 24)
	h = FloorMod(hour, 24)
	return h, m, s, dayCarry
}

// NormalizeDate converts arbitrary year, month, and day values into a
// canonical civil date. Month overflow is carried into the year first. Day
// overflow is then resolved by stepping one month at a time, forward or
// backward, by the actual length of each month until the day falls within
// the month. Thus 2011-02-29 becomes 2011-03-01 and 2012-01-00 becomes
// 2011-12-31.
func NormalizeDate(year, month, day int) (y, m, d int) {
	year += FloorDiv(month-1, MonthsPerYear)
	month = FloorMod(month-1, MonthsPerYear) + 1

	// Every 400-year cycle has the same number of days, so whole cycles can
	// be skipped without changing the result.
	if cycles := day / daysPer400Years; cycles != 0 {
		year += cycles * 400
		day -= cycles * daysPer400Years
	}

	for day > DaysInMonth(year, month) {
		day -= DaysInMonth(year, month)
		if month++; month > MonthsPerYear {
			month = 1
			year++
		}
	}

	for day < 1 {
		if month--; month < 1 {
			month = MonthsPerYear
			year--
		}
		day += DaysInMonth(year, month)
	}

	return year, month, day
}

// NormalizeDateTime normalizes all six civil components together: the time
// first, with any day carry added to day before the date is normalized.
func NormalizeDateTime(year, month, day, hour, minute, second int) (y, mo, d, h, mi, s int) {
	h, mi, s, carry := NormalizeTime(hour, minute, second)
	y, mo, d = NormalizeDate(year, month, day+carry)
	return y, mo, d, h, mi, s
}
