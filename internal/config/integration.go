package config

import (
	"github.com/dshills/cursorcore/internal/engine/buffer"
	"github.com/dshills/cursorcore/internal/logging"
	"github.com/dshills/cursorcore/internal/renderer/viewport"
	"github.com/dshills/cursorcore/internal/view"
)

// Margins returns the viewport margins.
func (c ViewportConfig) Margins() viewport.MarginConfig {
	return viewport.MarginConfig{
		Top:    c.MarginTop,
		Bottom: c.MarginBottom,
		Left:   c.MarginLeft,
		Right:  c.MarginRight,
	}
}

// RevealMode returns the parsed reveal mode, falling back to minimal.
func (c ViewportConfig) RevealMode() viewport.RevealMode {
	mode, err := viewport.ParseRevealMode(c.Reveal)
	if err != nil {
		return viewport.RevealMinimal
	}
	return mode
}

// ViewSettings converts the configuration into view settings.
func (c Config) ViewSettings() view.Settings {
	return view.Settings{
		Margins:     c.Viewport.Margins(),
		Reveal:      c.Viewport.RevealMode(),
		PageOverlap: c.Motion.PageOverlap,
	}
}

// ViewOptions returns the options for view.New. The viewport size is only
// set when the configuration fixes it.
func (c Config) ViewOptions() []view.Option {
	opts := []view.Option{view.WithSettings(c.ViewSettings())}
	if c.Viewport.VisibleLines > 0 || c.Viewport.VisibleColumns > 0 {
		lines := c.Viewport.VisibleLines
		if lines == 0 {
			lines = view.DefaultVisibleLines
		}
		cols := c.Viewport.VisibleColumns
		if cols == 0 {
			cols = view.DefaultVisibleColumns
		}
		opts = append(opts, view.WithViewportSize(lines, cols))
	}
	return opts
}

// BufferOptions returns the options for buffer.NewBufferFromString.
func (c Config) BufferOptions() []buffer.Option {
	if c.Motion.Punctuation == "" {
		return nil
	}
	return []buffer.Option{buffer.WithPunctuation(c.Motion.Punctuation)}
}

// LogLevel returns the configured logging level.
func (c Config) LogLevel() logging.Level {
	return logging.ParseLevel(c.Logging.Level)
}
