package seq

import (
	"errors"
	"fmt"
	"strings"

	"github.com/teambition/rrule-go"
	"github.com/theory/civiltime/civil/types"
)

// ErrRule errors are returned by FromRule for recurrence rules it cannot
// parse or does not support.
var ErrRule = errors.New("rule")

//nolint:gochecknoglobals
var frequencySteps = map[rrule.Frequency]types.Period{
	rrule.YEARLY:   types.OneYear,
	rrule.MONTHLY:  types.OneMonth,
	rrule.WEEKLY:   types.OneWeek,
	rrule.DAILY:    types.OneDay,
	rrule.HOURLY:   types.OneHour,
	rrule.MINUTELY: types.OneMinute,
	rrule.SECONDLY: types.OneSecond,
}

// FromRule returns an iterator over the date times produced by an RFC 5545
// recurrence rule such as "FREQ=WEEKLY;INTERVAL=2;COUNT=10". The FREQ,
// INTERVAL, COUNT, UNTIL, and DTSTART parts are supported; BY* and WKST
// parts return ErrRule. A DTSTART part overrides start, which may be nil
// only when the rule includes DTSTART. Times without an offset in the rule
// are read in the time zone of start, or UTC.
//
// Unlike RFC 5545, each occurrence is derived from the one before it, so
// monthly and yearly rules normalize overflowing days instead of skipping
// them.
func FromRule(rule string, start types.TimePoint) (*Iterator[types.DateTime], error) {
	if err := checkRuleParts(rule); err != nil {
		return nil, err
	}

	tz := types.UTC
	if start != nil {
		tz = start.TimeZone()
	}

	opt, err := rrule.StrToROptionInLocation(rule, tz.Location())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRule, err)
	}

	step, ok := frequencySteps[opt.Freq]
	if !ok {
		return nil, fmt.Errorf("%w: unknown frequency %v", ErrRule, opt.Freq)
	}
	switch {
	case opt.Interval < 0:
		return nil, fmt.Errorf("%w: INTERVAL must be positive", ErrRule)
	case opt.Interval > 1:
		step = step.Scale(opt.Interval)
	}

	var first types.DateTime
	switch {
	case !opt.Dtstart.IsZero():
		first = types.FromGoTime(opt.Dtstart)
	case start != nil:
		first = start.ToDateTime()
	default:
		return nil, fmt.Errorf("%w: DTSTART is required without a start", ErrRule)
	}

	bound := Unbounded()
	switch {
	case opt.Count > 0 && !opt.Until.IsZero():
		return nil, fmt.Errorf("%w: COUNT and UNTIL cannot both be set", ErrRule)
	case opt.Count > 0:
		bound = Count(opt.Count)
	case !opt.Until.IsZero():
		bound = Through(types.FromGoTime(opt.Until))
	}

	return newIterator(first, step, bound, toDateTime), nil
}

// checkRuleParts returns ErrRule for any BY* or WKST part of rule, or when
// rule has no FREQ part.
func checkRuleParts(rule string) error {
	hasFreq := false
	for _, line := range strings.Split(strings.TrimSpace(rule), "\n") {
		line = strings.TrimPrefix(strings.TrimSpace(line), "RRULE:")
		for _, part := range strings.Split(line, ";") {
			key, _, _ := strings.Cut(part, "=")
			key = strings.ToUpper(strings.TrimSpace(key))
			switch {
			case key == "FREQ":
				hasFreq = true
			case strings.HasPrefix(key, "BY") || key == "WKST":
				return fmt.Errorf("%w: %v is not supported", ErrRule, key)
			}
		}
	}
	if !hasFreq {
		return fmt.Errorf("%w: FREQ is required", ErrRule)
	}
	return nil
}
