//go:build js && wasm

// package main provides the Wasm playground app.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"strings"
	"syscall/js"
	"time"

	"github.com/theory/civiltime/civil"
	"github.com/theory/civiltime/civil/clock"
	"github.com/theory/civiltime/civil/types"
)

const (
	optLocalTZ int = 1 << iota
	optIndent
)

func evaluate(_ js.Value, args []js.Value) any {
	value := args[0].String()
	spans := args[1].String()
	pattern := args[2].String()
	opts := args[3].Int()

	return execute(value, spans, pattern, opts)
}

func main() {
	stream := make(chan struct{})

	js.Global().Set("evaluate", js.FuncOf(evaluate))
	js.Global().Set("optLocalTZ", js.ValueOf(optLocalTZ))
	js.Global().Set("optIndent", js.ValueOf(optIndent))

	<-stream
}

func execute(value, spans, pattern string, opts int) string {
	// Use the browser offset if requested.
	tz := types.UTC
	if opts&optLocalTZ == optLocalTZ {
		//nolint:gosmopolitan // We want the browser time.
		_, offset := time.Now().Zone()
		tz = types.NewTimeZone(offset, false)
	}
	ctx := types.ContextWithTimeZone(context.Background(), tz)

	// An empty value means now.
	var tp types.TimePoint = civil.Now(clock.NewSystem(), tz)
	if value != "" {
		var err error
		if tp, err = civil.Parse(ctx, value); err != nil {
			return fmt.Sprintf("Error %v", err)
		}
	}

	// Shift by each span in turn.
	for _, src := range strings.Fields(spans) {
		span, err := civil.ParseSpan(src)
		if err != nil {
			return fmt.Sprintf("Error %v", err)
		}
		tp = tp.Shift(span)
	}

	res := map[string]any{
		"value": tp.ISOString(),
		"utc":   tp.ToDateTime().ToUTC().ISOString(),
		"unix":  tp.UnixTime(),
	}
	if pattern != "" {
		res["formatted"] = civil.Format(tp, pattern)
	}

	// Serialize the result
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if opts&optIndent == optIndent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(res); err != nil {
		return fmt.Sprintf("Error encoding results: %v", err)
	}

	return html.EscapeString(buf.String())
}
