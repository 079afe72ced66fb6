package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CURSORCORE_"

// LookupFunc reports the value of an environment variable.
// os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

type envBinding struct {
	key string
	set func(c *Config, value string) error
}

// envBindings maps CURSORCORE_<SECTION>_<KEY> to settings.
var envBindings = []envBinding{
	{"VIEWPORT_MARGIN_TOP", intSetting(func(c *Config) *int { return &c.Viewport.MarginTop })},
	{"VIEWPORT_MARGIN_BOTTOM", intSetting(func(c *Config) *int { return &c.Viewport.MarginBottom })},
	{"VIEWPORT_MARGIN_LEFT", intSetting(func(c *Config) *int { return &c.Viewport.MarginLeft })},
	{"VIEWPORT_MARGIN_RIGHT", intSetting(func(c *Config) *int { return &c.Viewport.MarginRight })},
	{"VIEWPORT_REVEAL", stringSetting(func(c *Config) *string { return &c.Viewport.Reveal })},
	{"VIEWPORT_VISIBLE_LINES", intSetting(func(c *Config) *int { return &c.Viewport.VisibleLines })},
	{"VIEWPORT_VISIBLE_COLUMNS", intSetting(func(c *Config) *int { return &c.Viewport.VisibleColumns })},
	{"MOTION_SMART_HOME", boolSetting(func(c *Config) *bool { return &c.Motion.SmartHome })},
	{"MOTION_PAGE_OVERLAP", intSetting(func(c *Config) *int { return &c.Motion.PageOverlap })},
	{"MOTION_PUNCTUATION", stringSetting(func(c *Config) *string { return &c.Motion.Punctuation })},
	{"LOGGING_LEVEL", stringSetting(func(c *Config) *string { return &c.Logging.Level })},
}

// EnvKeys returns the names of all recognized environment variables.
func EnvKeys() []string {
	keys := make([]string, len(envBindings))
	for i, b := range envBindings {
		keys[i] = EnvPrefix + b.key
	}
	return keys
}

// ApplyEnv overrides cfg with every CURSORCORE_* variable lookup reports.
// Malformed values are collected and returned together; well-formed ones
// are still applied.
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	var errs []error
	for _, b := range envBindings {
		value, ok := lookup(EnvPrefix + b.key)
		if !ok {
			continue
		}
		if err := b.set(cfg, value); err != nil {
			errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, b.key, err))
		}
	}
	return errors.Join(errs...)
}

func intSetting(field func(*Config) *int) func(*Config, string) error {
	return func(c *Config, value string) error {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%w: %q is not an integer", ErrInvalidValue, value)
		}
		*field(c) = n
		return nil
	}
}

func boolSetting(field func(*Config) *bool) func(*Config, string) error {
	return func(c *Config, value string) error {
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%w: %q is not a boolean", ErrInvalidValue, value)
		}
		*field(c) = b
		return nil
	}
}

func stringSetting(field func(*Config) *string) func(*Config, string) error {
	return func(c *Config, value string) error {
		*field(c) = value
		return nil
	}
}
