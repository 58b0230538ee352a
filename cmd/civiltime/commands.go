package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/theory/civiltime/civil"
	"github.com/theory/civiltime/civil/interval"
	"github.com/theory/civiltime/civil/seq"
	"github.com/theory/civiltime/civil/types"
)

// errUsage wraps invalid flag combinations.
var errUsage = errors.New("usage")

// kindOf returns the name of the concrete type of tp.
func kindOf(tp types.TimePoint) string {
	switch tp.(type) {
	case types.Date:
		return "date"
	case types.TimeOfDay:
		return "time"
	default:
		return "datetime"
	}
}

// describe returns the record for tp.
func describe(tp types.TimePoint) record {
	return record{
		"kind":  kindOf(tp),
		"value": tp.ISOString(),
		"utc":   tp.ToDateTime().ToUTC().ISOString(),
		"unix":  tp.UnixTime(),
	}
}

func (a *app) parseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse VALUE...",
		Short: "Parse ISO-8601 dates, times of day, and date times",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.withZone(cmd.Context())
			lines := make([]string, 0, len(args))
			results := make([]record, 0, len(args))
			for _, src := range args {
				tp, err := civil.Parse(ctx, src)
				if err != nil {
					return err
				}
				a.logger.Debug("parsed", "source", src, "kind", kindOf(tp))
				rec := describe(tp)
				results = append(results, rec)
				lines = append(lines, fmt.Sprintf("%v\t%v\t%v", rec["value"], rec["kind"], rec["unix"]))
			}
			return a.write(cmd, lines, record{"results": results})
		},
	}
}

func (a *app) addCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add VALUE SPAN...",
		Short: "Add periods or durations to a time point",
		Long: "Add each SPAN in turn to VALUE. Spans starting with P are ISO-8601\n" +
			"periods such as P1M2D; others are durations such as 1h30m. Flags\n" +
			"must precede VALUE, so negative spans such as -P1D are not read as\n" +
			"flags. Use -- before a VALUE with a negative year.",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tp, err := civil.Parse(a.withZone(cmd.Context()), args[0])
			if err != nil {
				return err
			}
			for _, src := range args[1:] {
				span, err := civil.ParseSpan(src)
				if err != nil {
					return err
				}
				next := tp.Shift(span)
				a.logger.Debug("shifted", "from", tp.ISOString(), "span", span.String(), "to", next.ISOString())
				tp = next
			}
			return a.write(cmd, []string{tp.ISOString()}, describe(tp))
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func (a *app) diffCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "diff START END",
		Short: "Show the duration and period between two time points",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.withZone(cmd.Context())
			start, err := civil.Parse(ctx, args[0])
			if err != nil {
				return err
			}
			end, err := civil.Parse(ctx, args[1])
			if err != nil {
				return err
			}
			d, p := civil.Difference(start, end)
			return a.write(cmd, []string{
				"period   " + p.ISOString(),
				"duration " + d.String(),
				fmt.Sprintf("seconds  %d", d.TotalSeconds()),
			}, record{
				"period":   p.ISOString(),
				"duration": d.String(),
				"seconds":  d.TotalSeconds(),
			})
		},
	}
}

// seqOptions holds the flags of the seq command.
type seqOptions struct {
	step    string
	unit    string
	rule    string
	count   int
	before  string
	through string
	limit   int
}

func (a *app) seqCommand() *cobra.Command {
	var opts seqOptions
	cmd := &cobra.Command{
		Use:   "seq START|INTERVAL",
		Short: "List time points from a start by a fixed step",
		Long: "List time points starting at START and adding a step until a bound\n" +
			"stops them. An INTERVAL such as 2012-12-20/2012-12-25 lists points\n" +
			"before its end. A --rule uses an RFC 5545 recurrence rule instead.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := a.sequence(cmd, args[0], opts)
			if err != nil {
				return err
			}
			results := make([]record, len(values))
			for i, v := range values {
				results[i] = record{"index": i, "value": v}
			}
			return a.write(cmd, values, record{"results": results})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.step, "step", "P1D", "`span` to add at each step")
	flags.StringVar(&opts.unit, "unit", "", "iterate by `unit`: day, hour, minute, second, month, or year")
	flags.StringVar(&opts.rule, "rule", "", "RFC 5545 recurrence `rule`")
	flags.IntVarP(&opts.count, "count", "n", 0, "stop after `n` values")
	flags.StringVar(&opts.before, "before", "", "stop before `end`")
	flags.StringVar(&opts.through, "through", "", "stop after `end`")
	flags.IntVar(&opts.limit, "limit", 1000, "list at most `n` values")
	return cmd
}

// sequence lists the values selected by opts, starting at src.
func (a *app) sequence(cmd *cobra.Command, src string, opts seqOptions) ([]string, error) {
	ctx := a.withZone(cmd.Context())

	var (
		start  types.TimePoint
		bounds []seq.Bound
	)
	if strings.Contains(src, "/") {
		iv, err := interval.Parse(ctx, src)
		if err != nil {
			return nil, err
		}
		start = iv.Start()
		bounds = append(bounds, seq.Before(iv.End()))
	} else {
		tp, err := civil.Parse(ctx, src)
		if err != nil {
			return nil, err
		}
		start = tp
	}

	if opts.count > 0 {
		bounds = append(bounds, seq.Count(opts.count))
	}
	for _, b := range []struct {
		src   string
		bound func(types.TimePoint) seq.Bound
	}{
		{opts.before, seq.Before},
		{opts.through, seq.Through},
	} {
		if b.src == "" {
			continue
		}
		end, err := civil.Parse(ctx, b.src)
		if err != nil {
			return nil, err
		}
		bounds = append(bounds, b.bound(end))
	}

	if opts.rule != "" {
		if len(bounds) > 0 {
			return nil, fmt.Errorf("%w: --rule cannot be combined with an interval or bound", errUsage)
		}
		it, err := seq.FromRule(opts.rule, start)
		if err != nil {
			return nil, err
		}
		a.logger.Debug("iterating", "rule", opts.rule, "bound", it.Bound())
		return collect(it, opts.limit), nil
	}

	bound := seq.Unbounded()
	switch len(bounds) {
	case 0:
	case 1:
		bound = bounds[0]
	default:
		return nil, fmt.Errorf("%w: use only one of an interval, --count, --before, or --through", errUsage)
	}
	a.logger.Debug("iterating", "start", start.ISOString(), "bound", bound, "unit", opts.unit, "step", opts.step)

	switch opts.unit {
	case "":
		step, err := civil.ParseSpan(opts.step)
		if err != nil {
			return nil, err
		}
		if step.IsEmpty() {
			return nil, fmt.Errorf("%w: --step cannot be empty", errUsage)
		}
		return collect(seq.NewTimeSpan(start, step, bound), opts.limit), nil
	case "day":
		return collect(seq.Days(start, bound), opts.limit), nil
	case "hour":
		return collect(seq.Hours(start, bound), opts.limit), nil
	case "minute":
		return collect(seq.Minutes(start, bound), opts.limit), nil
	case "second":
		return collect(seq.Seconds(start, bound), opts.limit), nil
	case "month":
		return collect(seq.Months(start, bound), opts.limit), nil
	case "year":
		return collect(seq.Years(start, bound), opts.limit), nil
	default:
		return nil, fmt.Errorf("%w: unknown unit %q", errUsage, opts.unit)
	}
}

// collect returns the string forms of up to limit values from it.
func collect[T any](it *seq.Iterator[T], limit int) []string {
	values := it.Take(limit)
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = fmt.Sprint(v)
	}
	return out
}

func (a *app) formatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "format VALUE PATTERN",
		Short: "Format a time point with a date pattern",
		Long: "Format VALUE with PATTERN, where letters such as Y, m, d, H, i, s,\n" +
			"and c are replaced by the corresponding fields. Precede a letter\n" +
			"with a backslash to write it literally. Supported letters:\n  " +
			string(types.Specifiers()),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tp, err := civil.Parse(a.withZone(cmd.Context()), args[0])
			if err != nil {
				return err
			}
			out := civil.Format(tp, args[1])
			return a.write(cmd, []string{out}, record{"value": out})
		},
	}
}

func (a *app) nowCommand() *cobra.Command {
	var pattern string
	cmd := &cobra.Command{
		Use:   "now",
		Short: "Show the current date and time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dt := civil.Now(a.clock, a.tz)
			rec := describe(dt)
			line := dt.ISOString()
			if pattern != "" {
				line = dt.Format(pattern)
				rec["formatted"] = line
			}
			return a.write(cmd, []string{line}, rec)
		},
	}
	cmd.Flags().StringVarP(&pattern, "format", "f", "", "format with `pattern`")
	return cmd
}

func (a *app) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration and the environment variables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			desc, err := describeEnv()
			if err != nil {
				return err
			}
			return a.write(cmd, []string{
				"output  " + a.cfg.Output,
				"offset  " + a.tz.ISOString(),
				fmt.Sprintf("verbose %v", a.cfg.Verbose),
				"",
				strings.TrimSpace(desc),
			}, record{
				"output":  a.cfg.Output,
				"offset":  a.tz.ISOString(),
				"verbose": a.cfg.Verbose,
			})
		},
	}
}
