package types

import (
	"math"

	"github.com/theory/civiltime/civil/clock"
)

// NowIn returns the current time read from c as a DateTime in tz.
func NowIn(c clock.Clock, tz TimeZone) DateTime {
	return DateTimeFromUnix(int64(math.Floor(c.Now())), tz)
}

// LocalNow returns the current time read from c as a DateTime in the
// clock's local time zone.
func LocalNow(c clock.Clock) DateTime {
	r := c.Local()
	return NewDateTimeIn(r.Year, r.Month, r.Day, r.Hour, r.Minute, r.Second, NewTimeZone(r.Offset, r.DST))
}

// Today returns the current date read from c in tz.
func Today(c clock.Clock, tz TimeZone) Date {
	return NowIn(c, tz).Date()
}
