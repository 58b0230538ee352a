package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theory/civiltime/civil/clock"
	"gopkg.in/yaml.v3"
)

// run executes the civiltime command with args and returns its output.
func run(c clock.Clock, args ...string) (string, string, error) {
	cmd := newRootCommand(c)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// fixed returns a manual clock set to 2012-06-06T23:08:07Z.
func fixed() clock.Clock { return clock.NewManual(1339024087) }

func TestCommands(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		args []string
		exp  string
	}{
		{
			name: "parse",
			args: []string{"parse", "2012-06-07", "09:08:07+10:00", "2012-06-07T09:08:07Z"},
			exp: "2012-06-07\tdate\t1339027200\n" +
				"09:08:07+10:00\ttime\t-3113\n" +
				"2012-06-07T09:08:07+00:00\tdatetime\t1339060087\n",
		},
		{
			name: "parse_offset",
			args: []string{"parse", "--offset", "+10:00", "2012-06-07"},
			exp:  "2012-06-07+10:00\tdate\t1338991200\n",
		},
		{
			name: "add_month",
			args: []string{"add", "2012-01-31", "P1M"},
			exp:  "2012-03-02\n",
		},
		{
			name: "add_many",
			args: []string{"add", "2012-01-31T12:00:00Z", "P1M", "-P1D", "36h"},
			exp:  "2012-03-03T00:00:00+00:00\n",
		},
		{
			name: "add_negative",
			args: []string{"add", "2012-03-01", "-P1D"},
			exp:  "2012-02-29\n",
		},
		{
			name: "add_negative_duration",
			args: []string{"add", "-o", "text", "2012-03-01T00:00:00Z", "-90m", "P1D"},
			exp:  "2012-03-01T22:30:00+00:00\n",
		},
		{
			name: "add_bce",
			args: []string{"add", "--", "-0044-03-15", "P1D"},
			exp:  "-0044-03-16\n",
		},
		{
			name: "add_time_wraps",
			args: []string{"add", "23:30:00", "PT1H"},
			exp:  "00:30:00\n",
		},
		{
			name: "diff",
			args: []string{"diff", "2012-01-31", "2012-03-01"},
			exp:  "period   P2M-30D\nduration 720h0m0s\nseconds  2592000\n",
		},
		{
			name: "diff_long",
			args: []string{"diff", "0001-01-01", "2012-01-01"},
			exp:  "period   P2011Y\nduration 17628048h0m0s\nseconds  63460972800\n",
		},
		{
			name: "seq_interval",
			args: []string{"seq", "2012-12-20/2012-12-25"},
			exp:  "2012-12-20\n2012-12-21\n2012-12-22\n2012-12-23\n2012-12-24\n",
		},
		{
			name: "seq_step_count",
			args: []string{"seq", "2012-01-31", "--step", "P1M", "-n", "3"},
			exp:  "2012-01-31\n2012-03-02\n2012-04-02\n",
		},
		{
			name: "seq_duration_step",
			args: []string{"seq", "2012-01-01T00:00:00Z", "--step", "90m", "--before", "2012-01-01T04:00:00Z"},
			exp: "2012-01-01T00:00:00+00:00\n" +
				"2012-01-01T01:30:00+00:00\n" +
				"2012-01-01T03:00:00+00:00\n",
		},
		{
			name: "seq_unit_month",
			args: []string{"seq", "2012-11-15", "--unit", "month", "-n", "3"},
			exp:  "2012-11\n2012-12\n2013-01\n",
		},
		{
			name: "seq_unit_year_interval",
			args: []string{"seq", "2010-06-01/2013-01-01", "--unit", "year"},
			exp:  "2010\n2011\n2012\n",
		},
		{
			name: "seq_unit_hour_through",
			args: []string{"seq", "2012-01-01", "--unit", "hour", "--through", "2012-01-01T02:00:00Z"},
			exp: "2012-01-01T00:00:00+00:00\n" +
				"2012-01-01T01:00:00+00:00\n" +
				"2012-01-01T02:00:00+00:00\n",
		},
		{
			name: "seq_unit_day",
			args: []string{"seq", "2012-02-28T18:00:00Z", "--unit", "day", "-n", "2"},
			exp:  "2012-02-28\n2012-02-29\n",
		},
		{
			name: "seq_unit_minute",
			args: []string{"seq", "2012-01-01T23:59:00Z", "--unit", "minute", "-n", "2"},
			exp:  "2012-01-01T23:59:00+00:00\n2012-01-02T00:00:00+00:00\n",
		},
		{
			name: "seq_unit_second",
			args: []string{"seq", "23:59:59", "--unit", "second", "-n", "2"},
			exp:  "1970-01-01T23:59:59+00:00\n1970-01-02T00:00:00+00:00\n",
		},
		{
			name: "seq_limit",
			args: []string{"seq", "2012-01-01", "--limit", "2"},
			exp:  "2012-01-01\n2012-01-02\n",
		},
		{
			name: "seq_rule",
			args: []string{"seq", "2012-01-01T09:00:00+10:00", "--rule", "FREQ=WEEKLY;INTERVAL=2;COUNT=3"},
			exp: "2012-01-01T09:00:00+10:00\n" +
				"2012-01-15T09:00:00+10:00\n" +
				"2012-01-29T09:00:00+10:00\n",
		},
		{
			name: "format",
			args: []string{"format", "2012-06-07T09:08:07+10:00", `l, F jS Y \a\t g:i A`},
			exp:  "Thursday, June 7th 2012 at 9:08 AM\n",
		},
		{
			name: "format_iso",
			args: []string{"format", "2012-06-07T09:08:07+10:00", "c U"},
			exp:  "2012-06-07T09:08:07+10:00 1339024087\n",
		},
		{
			name: "now",
			args: []string{"now"},
			exp:  "2012-06-06T23:08:07+00:00\n",
		},
		{
			name: "now_offset",
			args: []string{"now", "--offset", "+10:00"},
			exp:  "2012-06-07T09:08:07+10:00\n",
		},
		{
			name: "now_format",
			args: []string{"now", "--offset", "+10:00", "-f", "D, d M Y H:i:s"},
			exp:  "Thu, 07 Jun 2012 09:08:07\n",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			r := require.New(t)

			stdout, stderr, err := run(fixed(), tc.args...)
			r.NoError(err)
			a.Equal(tc.exp, stdout)
			a.Empty(stderr)
		})
	}
}

func TestEncodedOutput(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		args []string
		exp  string
	}{
		{
			name: "parse_json",
			args: []string{"parse", "-o", "json", "--offset", "+10:00", "2012-06-07"},
			exp:  `{"results": [{"kind": "date", "unix": 1338991200, "utc": "2012-06-06T14:00:00+00:00", "value": "2012-06-07+10:00"}]}`,
		},
		{
			name: "diff_json",
			args: []string{"diff", "-o", "json", "2012-01-31", "2012-03-01"},
			exp:  `{"duration": "720h0m0s", "period": "P2M-30D", "seconds": 2592000}`,
		},
		{
			name: "now_json",
			args: []string{"now", "-o", "json", "-f", "U"},
			exp:  `{"formatted": "1339024087", "kind": "datetime", "unix": 1339024087, "utc": "2012-06-06T23:08:07+00:00", "value": "2012-06-06T23:08:07+00:00"}`,
		},
		{
			name: "format_json",
			args: []string{"format", "--output=json", "2012-06-07", `\Y\e\a\r: Y`},
			exp:  `{"value": "Year: 2012"}`,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r := require.New(t)

			stdout, _, err := run(fixed(), tc.args...)
			r.NoError(err)
			r.JSONEq(tc.exp, stdout)
		})
	}
}

func TestYAMLOutput(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	stdout, _, err := run(fixed(), "diff", "-o", "yaml", "2012-01-31", "2012-03-01")
	r.NoError(err)
	a.Equal("duration: 720h0m0s\nperiod: P2M-30D\nseconds: 2592000\n", stdout)

	stdout, _, err = run(fixed(), "seq", "-o", "yaml", "2012-12-20/2012-12-22")
	r.NoError(err)
	var got struct {
		Results []struct {
			Index int    `yaml:"index"`
			Value string `yaml:"value"`
		} `yaml:"results"`
	}
	r.NoError(yaml.Unmarshal([]byte(stdout), &got))
	r.Len(got.Results, 2)
	a.Equal(1, got.Results[1].Index)
	a.Equal("2012-12-21", got.Results[1].Value)
}

func TestTOMLOutput(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	stdout, _, err := run(fixed(), "seq", "-o", "toml", "2012-12-20/2012-12-23")
	r.NoError(err)
	var got struct {
		Results []struct {
			Index int    `toml:"index"`
			Value string `toml:"value"`
		} `toml:"results"`
	}
	_, err = toml.Decode(stdout, &got)
	r.NoError(err)
	r.Len(got.Results, 3)
	for i, exp := range []string{"2012-12-20", "2012-12-21", "2012-12-22"} {
		a.Equal(i, got.Results[i].Index)
		a.Equal(exp, got.Results[i].Value)
	}

	stdout, _, err = run(fixed(), "add", "--output", "toml", "2012-01-31", "P1M")
	r.NoError(err)
	var rec map[string]any
	_, err = toml.Decode(stdout, &rec)
	r.NoError(err)
	a.Equal("2012-03-02", rec["value"])
	a.Equal("date", rec["kind"])
	a.Equal(int64(1330646400), rec["unix"])
}

func TestErrors(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		args []string
		err  string
	}{
		{
			name: "bad_value",
			args: []string{"parse", "2012-02-30"},
			err:  `civil: parse: cannot parse "2012-02-30" as date, time, or date and time`,
		},
		{
			name: "bad_span",
			args: []string{"add", "2012-01-01", "P1.5D"},
			err:  `civil: parse: cannot parse "P1.5D" as a period: fractions are not supported`,
		},
		{
			name: "bad_interval",
			args: []string{"seq", "2012-01-05/2012-01-01"},
			err:  "invalid interval: start 2012-01-05 is after end 2012-01-01",
		},
		{
			name: "two_bounds",
			args: []string{"seq", "2012-01-01", "-n", "3", "--before", "2012-02-01"},
			err:  "usage: use only one of an interval, --count, --before, or --through",
		},
		{
			name: "interval_and_count",
			args: []string{"seq", "2012-01-01/2012-02-01", "-n", "3"},
			err:  "usage: use only one of an interval, --count, --before, or --through",
		},
		{
			name: "rule_and_bound",
			args: []string{"seq", "2012-01-01", "-n", "3", "--rule", "FREQ=DAILY"},
			err:  "usage: --rule cannot be combined with an interval or bound",
		},
		{
			name: "unsupported_rule",
			args: []string{"seq", "2012-01-01", "--rule", "FREQ=WEEKLY;BYDAY=MO"},
			err:  "rule: BYDAY is not supported",
		},
		{
			name: "unknown_unit",
			args: []string{"seq", "2012-01-01", "--unit", "fortnight"},
			err:  `usage: unknown unit "fortnight"`,
		},
		{
			name: "empty_step",
			args: []string{"seq", "2012-01-01", "--step", "PT0S"},
			err:  "usage: --step cannot be empty",
		},
		{
			name: "bad_output",
			args: []string{"now", "-o", "xml"},
			err:  `config: unknown output format "xml"; expected one of [text json yaml toml]`,
		},
		{
			name: "bad_offset",
			args: []string{"now", "--offset", "nope"},
			err:  `config: parse: cannot parse "nope" as a time zone offset`,
		},
		{
			name: "missing_config",
			args: []string{"now", "--config", filepath.Join("nonesuch", "civiltime.yaml")},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			r := require.New(t)

			stdout, stderr, err := run(fixed(), tc.args...)
			r.Error(err)
			if tc.err != "" {
				r.EqualError(err, tc.err)
				a.Contains(stderr, "Error: "+tc.err)
			}
			a.Empty(stdout)
		})
	}
}

func TestConfigFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	for _, tc := range []struct {
		name string
		file string
		body string
		args []string
		exp  string
	}{
		{
			name: "yaml",
			file: "civiltime.yaml",
			body: "output: json\noffset: '+05:30'\n",
			exp:  `{"offset": "+05:30", "output": "json", "verbose": false}`,
		},
		{
			name: "toml",
			file: "civiltime.toml",
			body: "output = \"json\"\noffset = \"-04:00\"\n",
			exp:  `{"offset": "-04:00", "output": "json", "verbose": false}`,
		},
		{
			name: "defaults",
			file: "partial.yaml",
			body: "output: json\n",
			exp:  `{"offset": "+00:00", "output": "json", "verbose": false}`,
		},
		{
			name: "flags_override",
			file: "override.yaml",
			body: "output: yaml\noffset: '+01:00'\n",
			args: []string{"--output", "json", "--offset", "Z"},
			exp:  `{"offset": "+00:00", "output": "json", "verbose": false}`,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r := require.New(t)

			path := filepath.Join(dir, tc.file)
			r.NoError(os.WriteFile(path, []byte(tc.body), 0o600))
			args := append([]string{"config", "--config", path}, tc.args...)
			stdout, _, err := run(fixed(), args...)
			r.NoError(err)
			r.JSONEq(tc.exp, stdout)
		})
	}
}

func TestConfigText(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	stdout, _, err := run(fixed(), "config", "--offset", "+10:00")
	r.NoError(err)
	a.Contains(stdout, "output  text\noffset  +10:00\nverbose false\n")
	a.Contains(stdout, "CIVILTIME_OUTPUT")
	a.Contains(stdout, "CIVILTIME_OFFSET")
	a.Contains(stdout, "CIVILTIME_VERBOSE")
	a.Contains(stdout, `(default "text")`)
	a.Contains(stdout, `(default "Z")`)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	cfg, err := loadConfig("")
	r.NoError(err)
	a.Equal(Config{Output: formatText, Offset: "Z"}, cfg)

	path := filepath.Join(t.TempDir(), "civiltime.toml")
	r.NoError(os.WriteFile(path, []byte("offset = \"+10:00\"\nverbose = true\n"), 0o600))
	cfg, err = loadConfig(path)
	r.NoError(err)
	a.Equal(Config{Output: formatText, Offset: "+10:00", Verbose: true}, cfg)
}

//nolint:paralleltest // sets the environment
func TestEnvironment(t *testing.T) {
	a := assert.New(t)
	r := require.New(t)

	path := filepath.Join(t.TempDir(), "civiltime.yaml")
	r.NoError(os.WriteFile(path, []byte("output: json\noffset: '+05:30'\n"), 0o600))

	t.Setenv("CIVILTIME_OUTPUT", "yaml")
	t.Setenv("CIVILTIME_OFFSET", "-03:00")

	// The environment overrides the file.
	stdout, _, err := run(fixed(), "config", "--config", path)
	r.NoError(err)
	a.Equal("offset: \"-03:00\"\noutput: yaml\nverbose: false\n", stdout)

	// And applies without a file.
	stdout, _, err = run(fixed(), "now")
	r.NoError(err)
	a.Contains(stdout, "value: \"2012-06-06T20:08:07-03:00\"\n")

	t.Setenv("CIVILTIME_OUTPUT", "csv")
	_, _, err = run(fixed(), "now")
	r.ErrorIs(err, errConfig)
}

func TestVerbose(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	c := clock.NewManual(1339024087)
	stdout, stderr, err := run(c, "-v", "parse", "2012-06-07")
	r.NoError(err)
	a.Equal("2012-06-07\tdate\t1339027200\n", stdout)
	a.Contains(stderr, "level=DEBUG msg=configured command=parse output=text offset=+00:00")
	a.Contains(stderr, "level=DEBUG msg=parsed source=2012-06-07 kind=date")
	a.Contains(stderr, "level=DEBUG msg=done command=parse elapsed=0s")

	// Quiet by default.
	_, stderr, err = run(c, "parse", "2012-06-07")
	r.NoError(err)
	a.Empty(stderr)
}
