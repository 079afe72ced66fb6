// Package config holds the typed cursorcore settings.
//
// Settings come from three places, later ones winning:
//
//  1. Built-in defaults (Default)
//  2. A TOML or YAML file (Load)
//  3. CURSORCORE_* environment variables
//
// A Watcher reloads the file when it changes on disk.
package config

import (
	"errors"
	"strings"

	"github.com/dshills/cursorcore/internal/renderer/viewport"
)

// Config is the complete cursorcore configuration.
type Config struct {
	Viewport ViewportConfig `toml:"viewport" yaml:"viewport"`
	Motion   MotionConfig   `toml:"motion" yaml:"motion"`
	Logging  LoggingConfig  `toml:"logging" yaml:"logging"`
}

// ViewportConfig controls scrolling around the primary cursor.
type ViewportConfig struct {
	MarginTop    int `toml:"margin_top" yaml:"margin_top"`
	MarginBottom int `toml:"margin_bottom" yaml:"margin_bottom"`
	MarginLeft   int `toml:"margin_left" yaml:"margin_left"`
	MarginRight  int `toml:"margin_right" yaml:"margin_right"`

	// Reveal is one of minimal, top, bottom or centered.
	Reveal string `toml:"reveal" yaml:"reveal"`

	// VisibleLines and VisibleColumns fix the viewport size.
	// Zero lets the host size the viewport.
	VisibleLines   int `toml:"visible_lines" yaml:"visible_lines"`
	VisibleColumns int `toml:"visible_columns" yaml:"visible_columns"`
}

// MotionConfig tunes cursor motions.
type MotionConfig struct {
	// SmartHome makes line-start toggle with the first non-blank column
	// and line-end with the last.
	SmartHome bool `toml:"smart_home" yaml:"smart_home"`

	// PageOverlap is the number of lines kept on screen by a page motion.
	PageOverlap int `toml:"page_overlap" yaml:"page_overlap"`

	// Punctuation replaces the characters that break words.
	// Empty keeps the built-in set.
	Punctuation string `toml:"punctuation" yaml:"punctuation"`
}

// LoggingConfig controls the logger.
type LoggingConfig struct {
	Level string `toml:"level" yaml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	m := viewport.DefaultMargins()
	return Config{
		Viewport: ViewportConfig{
			MarginTop:      m.Top,
			MarginBottom:   m.Bottom,
			MarginLeft:     m.Left,
			MarginRight:    m.Right,
			Reveal:         viewport.RevealMinimal.String(),
			VisibleLines:   0,
			VisibleColumns: 0,
		},
		Motion: MotionConfig{
			SmartHome:   true,
			PageOverlap: 1,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks every setting and returns all failures joined.
// Each failure is a *ValidationError matching ErrInvalidValue.
func (c Config) Validate() error {
	var errs []error
	nonNegative := func(path string, v int) {
		if v < 0 {
			errs = append(errs, &ValidationError{Path: path, Value: v, Message: "must not be negative"})
		}
	}

	nonNegative("viewport.margin_top", c.Viewport.MarginTop)
	nonNegative("viewport.margin_bottom", c.Viewport.MarginBottom)
	nonNegative("viewport.margin_left", c.Viewport.MarginLeft)
	nonNegative("viewport.margin_right", c.Viewport.MarginRight)
	nonNegative("viewport.visible_lines", c.Viewport.VisibleLines)
	nonNegative("viewport.visible_columns", c.Viewport.VisibleColumns)
	nonNegative("motion.page_overlap", c.Motion.PageOverlap)

	if _, err := viewport.ParseRevealMode(c.Viewport.Reveal); err != nil {
		errs = append(errs, &ValidationError{
			Path:    "viewport.reveal",
			Value:   c.Viewport.Reveal,
			Message: "want minimal, top, bottom or centered",
		})
	}

	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, &ValidationError{
			Path:    "logging.level",
			Value:   c.Logging.Level,
			Message: "want debug, info, warn or error",
		})
	}

	return errors.Join(errs...)
}
