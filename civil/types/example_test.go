//nolint:godot
package types_test

import (
	"context"
	"fmt"
	"log"

	"github.com/theory/civiltime/civil/types"
)

// Adding a month to January 31 overflows February and normalizes into
// March.
func ExamplePeriod_ResolveToTimePoint() {
	jan31 := types.NewDate(2012, 1, 31)
	fmt.Println(types.OneMonth.ResolveToTimePoint(jan31))
	fmt.Println(jan31.Add(types.OneMonth.Scale(2)))
	// Output:
	// 2012-03-02
	// 2012-03-31
}

func ExampleDurationOf() {
	d := types.DurationOf(1, 2, 3, 4, 5)
	fmt.Println(d.TotalSeconds())
	fmt.Println(d.Components())
	// Output:
	// 788645
	// 1 2 3 4 5
}

func ExampleDateTime_Format() {
	dt := types.MustParseDateTime("2012-06-07T09:08:07+10:00")
	fmt.Println(dt.Format("c"))
	fmt.Println(dt.Format("U"))
	fmt.Println(dt.Format(`l \t\h\e jS \o\f F Y, g:i A`))
	// Output:
	// 2012-06-07T09:08:07+10:00
	// 1339024087
	// Thursday the 7th of June 2012, 9:08 AM
}

func ExampleEscape() {
	dt := types.NewDate(2012, 6, 7)
	pattern := types.Escape("Today is ") + "l"
	fmt.Println(dt.Format(pattern))
	// Output: Today is Thursday
}

func ExamplePeriod_Inverse() {
	p, err := types.ParsePeriod("P1Y2M3DT4H5M6S")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(p.Inverse())
	fmt.Println(p.Inverse().Inverse() == p)
	// Output:
	// P-1Y-2M-3DT-4H-5M-6S
	// true
}

func ExampleParseTimePoint() {
	ctx := types.ContextWithTimeZone(context.Background(), types.NewTimeZone(-5*3600, false))
	for _, src := range []string{
		"2012-06-07",
		"09:08:07+10:00",
		"2012-06-07T09:08:07Z",
	} {
		tp, err := types.ParseTimePoint(ctx, src)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%T %v\n", tp, tp)
	}
	// Output:
	// types.Date 2012-06-07-05:00
	// types.TimeOfDay 09:08:07+10:00
	// types.DateTime 2012-06-07T09:08:07+00:00
}

func ExampleDateTime_ToTimeZone() {
	dt := types.NewDateTime(2012, 6, 6, 23, 8, 7)
	local := dt.ToTimeZone(types.NewTimeZone(10*3600, false))
	fmt.Println(local)
	fmt.Println(local.Equal(dt))
	// Output:
	// 2012-06-07T09:08:07+10:00
	// true
}
