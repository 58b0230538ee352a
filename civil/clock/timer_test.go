package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerState(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		state TimerState
		exp   string
	}{
		{Idle, "idle"},
		{Running, "running"},
		{Stopped, "stopped"},
		{TimerState(9), "TimerState(9)"},
	} {
		t.Run(tc.exp, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.exp, tc.state.String())
		})
	}
}

func TestTimer(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	c := NewManual(0)
	timer := NewTimer(c)
	a.Equal(Idle, timer.State())
	a.Zero(timer.Elapsed())

	// Cannot stop or resume an idle timer.
	_, err := timer.Stop()
	r.ErrorIs(err, ErrTimerState)
	r.EqualError(err, "timer state: cannot stop a timer that is idle")
	r.ErrorIs(timer.Resume(), ErrTimerState)

	r.NoError(timer.Start())
	a.Equal(Running, timer.State())
	c.Advance(2 * time.Second)
	a.Equal(2*time.Second, timer.Elapsed())

	// Cannot start a running timer.
	r.ErrorIs(timer.Start(), ErrTimerState)

	elapsed, err := timer.Stop()
	r.NoError(err)
	a.Equal(2*time.Second, elapsed)
	a.Equal(Stopped, timer.State())

	// Time passing while stopped does not count.
	c.Advance(time.Hour)
	a.Equal(2*time.Second, timer.Elapsed())
	r.ErrorIs(timer.Start(), ErrTimerState)

	r.NoError(timer.Resume())
	c.Advance(3 * time.Second)
	elapsed, err = timer.Stop()
	r.NoError(err)
	a.Equal(5*time.Second, elapsed)

	timer.Reset()
	a.Equal(Idle, timer.State())
	a.Zero(timer.Elapsed())
	r.NoError(timer.Start())
}
