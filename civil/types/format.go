package types

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/smasher164/xid"
	"github.com/theory/civiltime/civil/calendar"
	"golang.org/x/exp/maps"
)

// Formatter defines the interface for formatting time points and time zones
// with a pattern string.
type Formatter interface {
	// Format formats tp according to pattern.
	Format(tp TimePoint, pattern string) string

	// FormatTimeZone formats tz according to pattern.
	FormatTimeZone(tz TimeZone, pattern string) string
}

// DefaultFormatter formats values using the single-letter specifiers of the
// PHP date() function. Each specifier in the pattern is replaced by the
// field it names, and any other character is copied unchanged. A backslash
// copies the character after it without interpretation; use Escape to
// protect literal text. Specifiers lists the supported letters.
//
// Date values format with a time of midnight, and TimeOfDay values with a
// date of 1970-01-01.
type DefaultFormatter struct{}

var _ Formatter = DefaultFormatter{}

// Format formats tp according to pattern.
func (DefaultFormatter) Format(tp TimePoint, pattern string) string {
	dt := tp.ToDateTime()
	return expand(pattern, func(r rune) (string, bool) {
		if fn, ok := zoneSpecifiers[r]; ok {
			return fn(dt.tz), true
		}
		if fn, ok := pointSpecifiers[r]; ok {
			return fn(dt), true
		}
		return "", false
	})
}

// FormatTimeZone formats tz according to pattern. Only the time zone
// specifiers "e", "I", "O", "P", "T", and "Z" are replaced.
func (DefaultFormatter) FormatTimeZone(tz TimeZone, pattern string) string {
	return expand(pattern, func(r rune) (string, bool) {
		if fn, ok := zoneSpecifiers[r]; ok {
			return fn(tz), true
		}
		return "", false
	})
}

// expand walks pattern and replaces every rune for which replace returns
// true, honoring backslash escapes.
func expand(pattern string, replace func(r rune) (string, bool)) string {
	var buf strings.Builder
	buf.Grow(len(pattern) * 2)
	escaped := false
	for _, r := range pattern {
		switch {
		case escaped:
			escaped = false
			buf.WriteRune(r)
		case r == '\\':
			escaped = true
		default:
			if str, ok := replace(r); ok {
				buf.WriteString(str)
			} else {
				buf.WriteRune(r)
			}
		}
	}

	// A trailing backslash escapes nothing.
	if escaped {
		buf.WriteByte('\\')
	}
	return buf.String()
}

// Escape returns str with a backslash inserted before every backslash and
// every character that could start an identifier, so that formatting the
// result with DefaultFormatter returns str unchanged.
func Escape(str string) string {
	var buf strings.Builder
	buf.Grow(len(str) * 2)
	for _, r := range str {
		if r == '\\' || xid.Start(r) {
			buf.WriteByte('\\')
		}
		buf.WriteRune(r)
	}
	return buf.String()
}

// Specifiers returns the sorted list of pattern letters DefaultFormatter
// replaces.
func Specifiers() []rune {
	keys := append(maps.Keys(pointSpecifiers), maps.Keys(zoneSpecifiers)...)
	slices.Sort(keys)
	return keys
}

// zoneSpecifiers maps time zone pattern letters to their formatters.
//
//nolint:gochecknoglobals
var zoneSpecifiers = map[rune]func(tz TimeZone) string{
	// Time zone identifier
	'e': zoneName,
	// Whether or not the time zone is in daylight saving time
	'I': func(tz TimeZone) string { return boolDigit(tz.dst) },
	// Difference to UTC without a colon, e.g. +0200
	'O': func(tz TimeZone) string { return string(tz.appendOffset(nil, false)) },
	// Difference to UTC with a colon, e.g. +02:00
	'P': func(tz TimeZone) string { return string(tz.appendOffset(nil, true)) },
	// Time zone abbreviation
	'T': zoneName,
	// Offset in seconds, negative west of UTC
	'Z': func(tz TimeZone) string { return strconv.Itoa(tz.offset) },
}

// pointSpecifiers maps date and time pattern letters to their formatters.
//
//nolint:gochecknoglobals
var pointSpecifiers = map[rune]func(dt DateTime) string{
	// Day of the month, 2 digits with leading zeros
	'd': func(dt DateTime) string { return padded(dt.day, 2) },
	// Three letter day name
	'D': func(dt DateTime) string { return weekdayName(dt)[:3] },
	// Day of the month without leading zeros
	'j': func(dt DateTime) string { return strconv.Itoa(dt.day) },
	// Full day name
	'l': weekdayName,
	// ISO 8601 day of the week, 1 (Monday) to 7 (Sunday)
	'N': func(dt DateTime) string { return strconv.Itoa(dt.DayOfWeek(true)) },
	// English ordinal suffix for the day of the month
	'S': func(dt DateTime) string { return ordinalSuffix(dt.day) },
	// Day of the week, 0 (Sunday) to 6 (Saturday)
	'w': func(dt DateTime) string { return strconv.Itoa(dt.DayOfWeek(false)) },
	// Day of the year, starting from 0
	'z': func(dt DateTime) string { return strconv.Itoa(dt.DayOfYear() - 1) },
	// ISO 8601 week number of the year
	'W': func(dt DateTime) string {
		_, week := dt.ISOWeek()
		return padded(week, 2)
	},
	// Full month name
	'F': monthName,
	// Month, 2 digits with leading zeros
	'm': func(dt DateTime) string { return padded(dt.month, 2) },
	// Three letter month name
	'M': func(dt DateTime) string { return monthName(dt)[:3] },
	// Month without leading zeros
	'n': func(dt DateTime) string { return strconv.Itoa(dt.month) },
	// Number of days in the month
	't': func(dt DateTime) string { return strconv.Itoa(calendar.DaysInMonth(dt.year, dt.month)) },
	// Whether it's a leap year
	'L': func(dt DateTime) string { return boolDigit(calendar.IsLeapYear(dt.year)) },
	// ISO 8601 week-numbering year
	'o': func(dt DateTime) string {
		year, _ := dt.ISOWeek()
		return padded(year, 4)
	},
	// Year, at least 4 digits
	'Y': func(dt DateTime) string { return padded(dt.year, 4) },
	// Year, 2 digits
	'y': func(dt DateTime) string { return padded(calendar.FloorMod(dt.year, 100), 2) },
	// Lowercase am or pm
	'a': func(dt DateTime) string { return strings.ToLower(meridiem(dt)) },
	// Uppercase AM or PM
	'A': meridiem,
	// 12-hour format of an hour without leading zeros
	'g': func(dt DateTime) string { return strconv.Itoa(hour12(dt)) },
	// 24-hour format of an hour without leading zeros
	'G': func(dt DateTime) string { return strconv.Itoa(dt.hour) },
	// 12-hour format of an hour with leading zeros
	'h': func(dt DateTime) string { return padded(hour12(dt), 2) },
	// 24-hour format of an hour with leading zeros
	'H': func(dt DateTime) string { return padded(dt.hour, 2) },
	// Minutes with leading zeros
	'i': func(dt DateTime) string { return padded(dt.minute, 2) },
	// Seconds with leading zeros
	's': func(dt DateTime) string { return padded(dt.second, 2) },
	// Microseconds, always zero
	'u': func(DateTime) string { return "000000" },
	// ISO 8601 date
	'c': func(dt DateTime) string { return dt.ISOString() },
	// RFC 2822 date
	'r': rfc2822,
	// Seconds since the Unix epoch
	'U': func(dt DateTime) string { return strconv.FormatInt(dt.UnixTime(), 10) },
}

// rfc2822 formats dt like "Thu, 07 Jun 2012 09:08:07 +1000".
func rfc2822(dt DateTime) string {
	buf := make([]byte, 0, len("Mon, 02 Jan 2006 15:04:05 -0700"))
	buf = append(buf, weekdayName(dt)[:3]...)
	buf = append(buf, ", "...)
	buf = appendPadded(buf, dt.day, 2)
	buf = append(buf, ' ')
	buf = append(buf, monthName(dt)[:3]...)
	buf = append(buf, ' ')
	buf = appendPadded(buf, dt.year, 4)
	buf = append(buf, ' ')
	buf = appendClock(buf, dt.hour, dt.minute, dt.second)
	buf = append(buf, ' ')
	return string(dt.tz.appendOffset(buf, false))
}

func padded(n, width int) string {
	return string(appendPadded(nil, n, width))
}

func boolDigit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func zoneName(tz TimeZone) string {
	if tz.offset == 0 {
		return "UTC"
	}
	return tz.ISOString()
}

func weekdayName(dt DateTime) string {
	return time.Weekday(dt.DayOfWeek(false)).String()
}

func monthName(dt DateTime) string {
	return time.Month(dt.month).String()
}

func meridiem(dt DateTime) string {
	if dt.hour < 12 {
		return "AM"
	}
	return "PM"
}

func hour12(dt DateTime) int {
	if h := dt.hour % 12; h != 0 {
		return h
	}
	return 12
}

// ordinalSuffix returns the English ordinal suffix for day.
func ordinalSuffix(day int) string {
	if day%100 >= 11 && day%100 <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
