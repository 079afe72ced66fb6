package dispatcher

// Config holds dispatcher configuration options.
type Config struct {
	// SmartHome makes cursor.lineStart toggle between column 0 and the
	// first non-whitespace column, and cursor.lineEnd between the line end
	// and the end of the last non-whitespace character.
	SmartHome bool

	// EnableMetrics enables dispatch timing and statistics collection.
	EnableMetrics bool

	// RecoverFromPanic wraps handler execution in panic recovery.
	RecoverFromPanic bool
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		SmartHome:        true,
		EnableMetrics:    false,
		RecoverFromPanic: true,
	}
}

// WithSmartHome returns a copy of the config with smart home set.
func (c Config) WithSmartHome(on bool) Config {
	c.SmartHome = on
	return c
}

// WithMetrics returns a copy of the config with metrics enabled.
func (c Config) WithMetrics() Config {
	c.EnableMetrics = true
	return c
}

// WithPanicRecovery returns a copy of the config with panic recovery set.
func (c Config) WithPanicRecovery(recover bool) Config {
	c.RecoverFromPanic = recover
	return c
}
