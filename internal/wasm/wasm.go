// Package main shifts and formats a date in order to test WASM compilation.
package main

import (
	"fmt"

	"github.com/theory/civiltime/civil"
)

func main() {
	// Parse a date and add a month to it.
	tp := civil.MustParse("2012-01-31").Shift(civil.MustParseSpan("P1M"))

	// Show the result.
	//nolint:forbidigo
	fmt.Println(civil.Format(tp, "c l jS F Y"))
}
