package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/theory/civiltime/civil/clock"
)

func TestNow(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	plus10 := NewTimeZone(36000, false)
	c := clock.NewManual(1339024087.75)
	a.Equal("2012-06-07T09:08:07+10:00", NowIn(c, plus10).ISOString())
	a.Equal("2012-06-06T23:08:07+00:00", NowIn(c, UTC).ISOString())
	a.Equal(NewDateIn(2012, 6, 7, plus10), Today(c, plus10))

	c = clock.NewManualIn(1339024087, -16200)
	a.Equal("2012-06-06T18:38:07-04:30", LocalNow(c).ISOString())

	c.Advance(-time.Hour)
	a.Equal("2012-06-06T17:38:07-04:30", LocalNow(c).ISOString())

	// The system clock works too.
	sys := clock.NewSystem(clock.WithLocation(time.UTC))
	now := time.Now().Unix()
	a.InDelta(now, NowIn(sys, UTC).UnixTime(), 5)
	a.InDelta(now, LocalNow(sys).UnixTime(), 5)
}
