//nolint:godot
package civil_test

import (
	"context"
	"fmt"
	"log"

	"github.com/theory/civiltime/civil"
	"github.com/theory/civiltime/civil/clock"
	"github.com/theory/civiltime/civil/interval"
	"github.com/theory/civiltime/civil/seq"
	"github.com/theory/civiltime/civil/types"
)

// Periods add calendar fields and then normalize, so one month after
// January 31 falls in March. Durations add exact seconds.
func Example() {
	start := civil.MustParse("2012-01-31")
	for _, src := range []string{"P1M", "P1Y1M", "-P1M", "36h"} {
		span, err := civil.ParseSpan(src)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%v + %v = %v\n", start, span, start.Shift(span))
	}
	// Output:
	// 2012-01-31 + P1M = 2012-03-02
	// 2012-01-31 + P1Y1M = 2013-03-03
	// 2012-01-31 + P-1M = 2011-12-31
	// 2012-01-31 + 36h0m0s = 2012-02-01
}

// Parse reads values without an offset in the time zone stored in the
// context.
func ExampleParse() {
	ctx := types.ContextWithTimeZone(context.Background(), types.NewTimeZone(36000, false))
	tp, err := civil.Parse(ctx, "2012-06-07T09:08:07")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(tp)
	fmt.Println(civil.Format(tp, "U"))
	fmt.Println(civil.Format(tp, `l, F jS Y \a\t g:i A T`))
	// Output:
	// 2012-06-07T09:08:07+10:00
	// 1339024087
	// Thursday, June 7th 2012 at 9:08 AM +10:00
}

func ExampleDifference() {
	d, p := civil.Difference(civil.MustParse("2012-01-31"), civil.MustParse("2012-03-01"))
	fmt.Println(d)
	fmt.Println(p)
	// Output:
	// 720h0m0s
	// P2M-30D
}

func ExampleNow() {
	c := clock.NewManual(1339024087)
	fmt.Println(civil.Now(c, types.UTC))
	fmt.Println(civil.Today(c, types.NewTimeZone(36000, false)))
	// Output:
	// 2012-06-06T23:08:07+00:00
	// 2012-06-07+10:00
}

// Iterate over the days of an interval. The end is excluded.
func Example_iterate() {
	iv, err := interval.Parse(context.Background(), "2012-12-20/2012-12-25")
	if err != nil {
		log.Fatal(err)
	}
	for i, day := range seq.DaysIn(iv).All() {
		fmt.Println(i, day.Format("D j M"))
	}
	// Output:
	// 0 Thu 20 Dec
	// 1 Fri 21 Dec
	// 2 Sat 22 Dec
	// 3 Sun 23 Dec
	// 4 Mon 24 Dec
}

func Example_months() {
	for m := range seq.MonthsIn(interval.NewYear(2012)).Values() {
		if m.Ordinal() > 3 {
			break
		}
		fmt.Println(m, m.NumberOfDays())
	}
	// Output:
	// 2012-01 31
	// 2012-02 29
	// 2012-03 31
}
