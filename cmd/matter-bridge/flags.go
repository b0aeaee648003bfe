package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pion/logging"
)

// Options holds the CLI flags.
type Options struct {
	// ConfigPath is the YAML device list. Empty runs a single demo light.
	ConfigPath string

	// EnvFile is loaded into the environment before the config is read.
	EnvFile string

	// DeviceName names the demo light when no config is given.
	DeviceName string

	// ToggleInterval flips every on/off device periodically. Zero disables.
	ToggleInterval time.Duration

	// LogLevel overrides the configured log level when set.
	LogLevel string
}

// DefaultOptions returns Options with the defaults used by ParseFlags.
func DefaultOptions() Options {
	return Options{
		EnvFile:    ".env",
		DeviceName: "Light1",
	}
}

// ParseFlags parses the CLI flags:
//
//	-config   YAML device list (default: single demo light)
//	-env      .env file to load (default: .env)
//	-name     demo light name (default: "Light1")
//	-toggle   toggle on/off devices every interval (default: off)
//	-log      log level: trace, debug, info, warn, error, disabled
func ParseFlags() Options {
	defaults := DefaultOptions()
	o := Options{}

	flag.StringVar(&o.ConfigPath, "config", "", "YAML device list (empty = single demo light)")
	flag.StringVar(&o.EnvFile, "env", defaults.EnvFile, "Environment file to load")
	flag.StringVar(&o.DeviceName, "name", defaults.DeviceName, "Demo light name")
	flag.DurationVar(&o.ToggleInterval, "toggle", 0, "Toggle on/off devices every interval (0 = never)")
	flag.Func("log", "Log level (trace, debug, info, warn, error, disabled)", func(s string) error {
		if _, err := parseLogLevel(s); err != nil {
			return err
		}
		o.LogLevel = s
		return nil
	})
	flag.Usage = PrintUsage

	flag.Parse()
	return o
}

// parseLogLevel maps a level name onto a pion log level.
func parseLogLevel(s string) (logging.LogLevel, error) {
	switch strings.ToLower(s) {
	case "trace":
		return logging.LogLevelTrace, nil
	case "debug":
		return logging.LogLevelDebug, nil
	case "info", "":
		return logging.LogLevelInfo, nil
	case "warn":
		return logging.LogLevelWarn, nil
	case "error":
		return logging.LogLevelError, nil
	case "disabled":
		return logging.LogLevelDisabled, nil
	default:
		return logging.LogLevelDisabled, fmt.Errorf("unknown log level %q", s)
	}
}

// PrintUsage prints usage information to stderr.
func PrintUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "\nOptions:\n")
	flag.PrintDefaults()
}
