package types

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name  string
		dur   Duration
		total int64
		comps [5]int
		str   string
	}{
		{"zero", NewDuration(0), 0, [5]int{}, "0s"},
		{"components", DurationOf(1, 2, 3, 4, 5), 788645, [5]int{1, 2, 3, 4, 5}, "219h4m5s"},
		{"negative", DurationOf(-1, -2, -3, -4, -5), -788645, [5]int{-1, -2, -3, -4, -5}, "-219h4m5s"},
		{"minus_one", NewDuration(-1), -1, [5]int{0, 0, 0, 0, -1}, "-1s"},
		{"carry", DurationOf(0, 0, 0, 0, 3600), 3600, [5]int{0, 0, 1, 0, 0}, "1h0m0s"},
		{"mixed_signs", DurationOf(0, 1, -1, 0, 0), 82800, [5]int{0, 0, 23, 0, 0}, "23h0m0s"},
		{"from_go", DurationFromGo(90*time.Second + 999*time.Millisecond), 90, [5]int{0, 0, 0, 1, 30}, "1m30s"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			a.Equal(tc.total, tc.dur.TotalSeconds())
			a.Equal(tc.total, tc.dur.ApproximateSeconds())
			w, d, h, m, s := tc.dur.Components()
			a.Equal(tc.comps, [5]int{w, d, h, m, s})
			a.Equal(tc.str, tc.dur.String())
			a.Equal(tc.total == 0, tc.dur.IsEmpty())
			a.Equal(time.Duration(tc.total)*time.Second, tc.dur.GoDuration())

			// Components recompose into the same duration.
			a.Equal(tc.dur, DurationOf(w, d, h, m, s))
		})
	}
}

func TestDurationArithmetic(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	d := NewDuration(90)
	a.Equal(NewDuration(-90), d.Inverse())
	a.Equal(d, d.Inverse().Inverse())
	a.Equal(NewDuration(0), d.Add(d.Inverse()))
	a.Equal(NewDuration(150), d.Add(NewDuration(60)))

	a.Equal(0, d.Compare(NewDuration(90)))
	a.Equal(-1, d.Compare(NewDuration(91)))
	a.Equal(1, d.Compare(d.Inverse()))
}

func TestDurationResolve(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	hour := NewDuration(3600)
	a.Equal(NewDate(2012, 6, 7), hour.ResolveToTimePoint(NewDate(2012, 6, 7)))
	a.Equal(NewTimeOfDay(1, 0, 0), NewDuration(7200).ResolveToTimePoint(NewTimeOfDay(23, 0, 0)))
	a.Equal(
		NewDateTimeIn(2012, 6, 7, 10, 8, 7, NewTimeZone(36000, false)),
		hour.ResolveToTimePoint(NewDateTimeIn(2012, 6, 7, 9, 8, 7, NewTimeZone(36000, false))),
	)

	anchor := NewDateTime(2012, 1, 31, 0, 0, 0)
	month := NewDuration(30 * 86400)
	a.Equal(int64(30*86400), month.ResolveToSeconds(anchor))
	a.Equal(month, month.ResolveToDuration(anchor))
	a.Equal("P2M-30D", month.ResolveToPeriod(anchor).ISOString())
	a.Equal("PT1H", hour.ResolveToPeriod(anchor).ISOString())
}

func TestParseDuration(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	d, err := ParseDuration("1h30m")
	r.NoError(err)
	a.Equal(NewDuration(5400), d)

	d, err = ParseDuration("-90s")
	r.NoError(err)
	a.Equal(NewDuration(-90), d)

	_, err = ParseDuration("bogus")
	r.EqualError(err, `parse: cannot parse "bogus" as duration`)
	r.ErrorIs(err, ErrParse)

	text, err := DurationOf(1, 2, 3, 4, 5).MarshalText()
	r.NoError(err)
	a.Equal("219h4m5s", string(text))
	var d2 Duration
	r.NoError(d2.UnmarshalText(text))
	a.Equal(NewDuration(788645), d2)
	r.ErrorIs(d2.UnmarshalText([]byte("P1D")), ErrParse)
}

func TestLongDuration(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		dur  Duration
		str  string
	}{
		{
			name: "common_era",
			dur:  NewDate(2012, 1, 1).DifferenceAsDuration(NewDate(1, 1, 1)),
			str:  "17628048h0m0s",
		},
		{
			name: "negative",
			dur:  NewDate(1, 1, 1).DifferenceAsDuration(NewDate(2012, 1, 1)),
			str:  "-17628048h0m0s",
		},
		{"max", NewDuration(math.MaxInt64), "2562047788015215h30m7s"},
		{"min", NewDuration(math.MinInt64), "-2562047788015215h30m8s"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			r := require.New(t)

			a.Equal(tc.str, tc.dur.String())
			got, err := ParseDuration(tc.str)
			r.NoError(err)
			a.Equal(tc.dur, got)

			data, err := json.Marshal(map[string]Duration{"d": tc.dur})
			r.NoError(err)
			a.JSONEq(`{"d": "`+tc.str+`"}`, string(data))
			var decoded map[string]Duration
			r.NoError(json.Unmarshal(data, &decoded))
			a.Equal(tc.dur, decoded["d"])
		})
	}

	a := assert.New(t)
	a.Equal(int64(63460972800), NewDate(2012, 1, 1).DifferenceAsDuration(NewDate(1, 1, 1)).TotalSeconds())

	for _, src := range []string{
		"2562047788015215h30m8s",
		"-2562047788015215h30m9s",
		"99999999999999999999h",
		"1h2x",
		"-",
		"12",
		"h",
	} {
		_, err := ParseDuration(src)
		a.ErrorIs(err, ErrParse, src)
	}
}
