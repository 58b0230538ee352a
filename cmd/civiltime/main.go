// Command civiltime parses, shifts, compares, formats, and iterates over
// civil dates and times from the command line.
//
//	civiltime parse 2012-06-07T09:08:07+10:00
//	civiltime add 2012-01-31 P1M
//	civiltime diff 2012-01-31 2012-03-01
//	civiltime seq 2012-12-20/2012-12-25
//	civiltime seq 2012-01-15T09:00:00Z --rule 'FREQ=WEEKLY;COUNT=4'
//	civiltime format 2012-06-07T09:08:07+10:00 'l, F jS Y'
//	civiltime now --offset +10:00
//
// Set the output format and default offset with the --output and --offset
// flags, the CIVILTIME_OUTPUT and CIVILTIME_OFFSET environment variables,
// or a YAML or TOML file passed to --config.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/theory/civiltime/civil/clock"
	"github.com/theory/civiltime/civil/types"
)

func main() {
	if err := newRootCommand(clock.NewSystem()).Execute(); err != nil {
		os.Exit(1)
	}
}

// app holds the state shared by all commands.
type app struct {
	clock   clock.Clock
	cfgFile string
	output  string
	offset  string
	verbose bool
	cfg     Config
	tz      types.TimeZone
	logger  *slog.Logger
	timer   *clock.Timer
}

// newRootCommand creates the civiltime command and its subcommands, reading
// the current time from c.
func newRootCommand(c clock.Clock) *cobra.Command {
	a := &app{clock: c, timer: clock.NewTimer(c)}
	root := &cobra.Command{
		Use:               "civiltime",
		Short:             "Civil date and time arithmetic",
		Long:              "civiltime parses, shifts, compares, formats, and iterates over\nISO-8601 dates, times of day, and date times with fixed UTC offsets.",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: a.finish,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "YAML or TOML config `file`")
	flags.StringVarP(&a.output, "output", "o", "", "output `format`: text, json, yaml, or toml")
	flags.StringVar(&a.offset, "offset", "", "default UTC `offset` for values without one")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log debug messages")

	root.AddCommand(
		a.parseCommand(),
		a.addCommand(),
		a.diffCommand(),
		a.seqCommand(),
		a.formatCommand(),
		a.nowCommand(),
		a.configCommand(),
	)
	return root
}

// setup loads the configuration, applies flag overrides, and configures
// logging.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(a.cfgFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = a.output
	}
	if flags.Changed("offset") {
		cfg.Offset = a.offset
	}
	if flags.Changed("verbose") {
		cfg.Verbose = a.verbose
	}

	a.logger = slog.New(slog.NewTextHandler(
		cmd.ErrOrStderr(),
		&slog.HandlerOptions{Level: cfg.logLevel()},
	))

	tz, err := cfg.validate()
	if err != nil {
		a.logger.Error("invalid configuration", "error", err)
		return err
	}
	a.cfg = cfg
	a.tz = tz

	a.logger.Debug("configured",
		"command", cmd.Name(),
		"output", cfg.Output,
		"offset", tz.ISOString(),
		"config", a.cfgFile,
	)
	a.timer.Reset()
	return a.timer.Start()
}

// finish logs how long the command took.
func (a *app) finish(cmd *cobra.Command, _ []string) {
	elapsed, err := a.timer.Stop()
	if err != nil {
		a.logger.Warn("timer", "error", err)
		return
	}
	a.logger.Debug("done", "command", cmd.Name(), "elapsed", elapsed)
}

// withZone returns ctx with the configured default time zone.
func (a *app) withZone(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return types.ContextWithTimeZone(ctx, a.tz)
}

// write writes the result of cmd.
func (a *app) write(cmd *cobra.Command, lines []string, data record) error {
	return writeResult(cmd.OutOrStdout(), a.cfg.Output, lines, data)
}
