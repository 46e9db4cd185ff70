// Package quick provides zero-configuration convenience functions for the
// conlog facade, configured through simple "key=value" string arguments.
package quick

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/LixenWraith/conlog"
)

var (
	mu     sync.Mutex
	facade *conlog.Facade
)

// Configure initializes the shared facade from "key=value" arguments.
// Recognized keys: console.enabled, console.level, replicants.
// Calling Configure again replaces the shared facade; loggers obtained
// before the call keep the previous one.
func Configure(args ...string) error {
	cfg, err := config(args...)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	facade = conlog.New(cfg)
	return nil
}

// Reconfigure applies a partial "key=value" update to the shared facade,
// initializing it with defaults first when needed.
func Reconfigure(args ...string) error {
	cfg, err := config(args...)
	if err != nil {
		return err
	}
	ensure().Reconfigure(cfg)
	return nil
}

// Logger returns a named logger from the shared facade, initializing the
// facade with defaults when needed.
func Logger(name string) *conlog.Logger {
	return ensure().Logger(name)
}

func ensure() *conlog.Facade {
	mu.Lock()
	defer mu.Unlock()
	if facade == nil {
		facade = conlog.New(nil)
	}
	return facade
}

// config parses configuration strings into a partial Config. Each argument
// must be in "key=value" format where keys follow the configuration value
// shape: console.enabled, console.level, replicants.
func config(args ...string) (*conlog.Config, error) {
	cfg := &conlog.Config{}
	for _, arg := range args {
		key, value, err := parseKeyValue(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid config format: %s", arg)
		}

		if err := setValue(cfg, key, value); err != nil {
			return nil, fmt.Errorf("config error: %s", err)
		}
	}
	return cfg, nil
}

// parseKeyValue splits a configuration string into key and value parts.
// Input format must be "key=value". Leading and trailing spaces are removed
// from both parts. Returns error if format is invalid.
func parseKeyValue(arg string) (string, string, error) {
	parts := strings.Split(strings.TrimSpace(arg), "=")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid format")
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
}

// setValue updates a Config field. Key matching is case-insensitive.
// The level value is stored as given: the facade ranks unknown level
// strings as silent rather than rejecting them.
func setValue(cfg *conlog.Config, key, value string) error {
	switch strings.ToLower(key) {
	case "console.enabled":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid bool value for %s: %s", key, value)
		}
		ensureConsole(cfg).Enabled = &v

	case "console.level":
		lv := conlog.Level(strings.ToLower(value))
		ensureConsole(cfg).Level = &lv

	case "replicants":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid bool value for %s: %s", key, value)
		}
		cfg.Replicants = &v

	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

func ensureConsole(cfg *conlog.Config) *conlog.ConsoleConfig {
	if cfg.Console == nil {
		cfg.Console = &conlog.ConsoleConfig{}
	}
	return cfg.Console
}
