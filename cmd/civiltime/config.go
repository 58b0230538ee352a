package main

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/theory/civiltime/civil/types"
)

// errConfig wraps configuration errors.
var errConfig = errors.New("config")

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
	formatTOML = "toml"
)

//nolint:gochecknoglobals
var outputFormats = []string{formatText, formatJSON, formatYAML, formatTOML}

// Config holds the command settings read from an optional config file and
// the environment. Environment variables override the file.
type Config struct {
	Output  string `env:"CIVILTIME_OUTPUT"  env-default:"text" json:"output"  toml:"output"  yaml:"output"  env-description:"Output format: text, json, yaml, or toml"`
	Offset  string `env:"CIVILTIME_OFFSET"  env-default:"Z"    json:"offset"  toml:"offset"  yaml:"offset"  env-description:"Default UTC offset for values without one, such as Z or +10:00"`
	Verbose bool   `env:"CIVILTIME_VERBOSE"                    json:"verbose" toml:"verbose" yaml:"verbose" env-description:"Log debug messages to standard error"`
}

// loadConfig reads the config file at path, if path is not empty, and then
// the environment into a Config. The env-default tags fill in values set by
// neither.
func loadConfig(path string) (Config, error) {
	var (
		cfg Config
		err error
	)
	if path == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(path, &cfg)
	}
	if err != nil {
		return cfg, fmt.Errorf("%w: %w", errConfig, err)
	}
	return cfg, nil
}

// validate checks the output format and returns the configured time zone.
func (cfg Config) validate() (types.TimeZone, error) {
	if !slices.Contains(outputFormats, cfg.Output) {
		return types.UTC, fmt.Errorf(
			"%w: unknown output format %q; expected one of %v",
			errConfig, cfg.Output, outputFormats,
		)
	}
	tz, err := types.ParseTimeZone(cfg.Offset)
	if err != nil {
		return types.UTC, fmt.Errorf("%w: %w", errConfig, err)
	}
	return tz, nil
}

// logLevel returns the slog level for cfg.
func (cfg Config) logLevel() slog.Level {
	if cfg.Verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// describeEnv returns a description of the environment variables that
// configure the command.
func describeEnv() (string, error) {
	header := "Environment variables:"
	desc, err := cleanenv.GetDescription(&Config{}, &header)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errConfig, err)
	}
	return desc, nil
}
