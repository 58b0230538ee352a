package clock

import (
	"errors"
	"fmt"
	"time"
)

// ErrTimerState errors are returned when a Timer method is called in a
// state that does not allow it.
var ErrTimerState = errors.New("timer state")

// TimerState identifies the state of a Timer.
type TimerState uint8

const (
	// Idle timers have not been started, or have been reset.
	Idle TimerState = iota

	// Running timers accumulate elapsed time.
	Running

	// Stopped timers keep their elapsed time until resumed or reset.
	Stopped
)

// String returns the name of the state.
func (s TimerState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("TimerState(%d)", uint8(s))
	}
}

// Timer is a stopwatch that measures elapsed time on a Clock. It moves from
// Idle to Running with Start, from Running to Stopped with Stop, back to
// Running with Resume, and to Idle with Reset. Timer is not safe for
// concurrent use.
type Timer struct {
	clock   Clock
	state   TimerState
	started float64
	elapsed float64
}

// NewTimer creates an idle Timer that reads c.
func NewTimer(c Clock) *Timer {
	return &Timer{clock: c}
}

// State returns the current state of the timer.
func (t *Timer) State() TimerState { return t.state }

// Start starts an idle timer.
func (t *Timer) Start() error {
	if t.state != Idle {
		return t.stateError("start")
	}
	t.started = t.clock.Now()
	t.state = Running
	return nil
}

// Stop stops a running timer and returns the total elapsed time.
func (t *Timer) Stop() (time.Duration, error) {
	if t.state != Running {
		return 0, t.stateError("stop")
	}
	t.elapsed += t.clock.Now() - t.started
	t.state = Stopped
	return seconds(t.elapsed), nil
}

// Resume restarts a stopped timer, keeping the time already elapsed.
func (t *Timer) Resume() error {
	if t.state != Stopped {
		return t.stateError("resume")
	}
	t.started = t.clock.Now()
	t.state = Running
	return nil
}

// Reset returns the timer to Idle and discards the elapsed time. It may be
// called in any state.
func (t *Timer) Reset() {
	t.state = Idle
	t.started = 0
	t.elapsed = 0
}

// Elapsed returns the time accumulated while running, including the current
// run if the timer is running.
func (t *Timer) Elapsed() time.Duration {
	elapsed := t.elapsed
	if t.state == Running {
		elapsed += t.clock.Now() - t.started
	}
	return seconds(elapsed)
}

func (t *Timer) stateError(op string) error {
	return fmt.Errorf("%w: cannot %v a timer that is %v", ErrTimerState, op, t.state)
}

// seconds converts fractional seconds to a time.Duration.
func seconds(sec float64) time.Duration {
	return time.Duration(sec * float64(time.Second))
}
