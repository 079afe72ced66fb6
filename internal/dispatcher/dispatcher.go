package dispatcher

import (
	"fmt"
	"runtime"
	"time"

	"github.com/dshills/cursorcore/internal/logging"
	"github.com/dshills/cursorcore/internal/view"
)

// Dispatcher routes actions to handlers for one view.
type Dispatcher struct {
	registry *Registry
	view     *view.State
	doc      Document
	config   Config
	logger   *logging.Logger
	metrics  *Metrics
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *logging.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = l
	}
}

// New creates a dispatcher for v over doc with every built-in command
// registered.
func New(v *view.State, doc Document, config Config, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry: NewRegistry(),
		view:     v,
		doc:      doc,
		config:   config,
		logger:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.logger = d.logger.WithComponent("dispatcher").WithField("view", v.ID())

	if config.EnableMetrics {
		d.metrics = NewMetrics()
	}

	registerBuiltins(d.registry)
	return d
}

// View returns the view state the dispatcher drives.
func (d *Dispatcher) View() *view.State {
	return d.view
}

// Registry returns the command registry.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Metrics returns the metrics collector, or nil when disabled.
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// Config returns the current configuration.
func (d *Dispatcher) Config() Config {
	return d.config
}

// SetConfig replaces the configuration. Metrics collection is created or
// dropped to match.
func (d *Dispatcher) SetConfig(config Config) {
	d.config = config
	switch {
	case config.EnableMetrics && d.metrics == nil:
		d.metrics = NewMetrics()
	case !config.EnableMetrics:
		d.metrics = nil
	}
}

// Register adds or replaces the handler for cmd.
func (d *Dispatcher) Register(cmd Command, h HandlerFunc) {
	d.registry.Register(cmd, h)
}

// Execute runs one action against the view and document.
func (d *Dispatcher) Execute(action Action) Result {
	start := time.Now()

	var result Result
	h := d.registry.Get(action.Command)
	if h == nil {
		result = Error(fmt.Errorf("%w: %s", ErrUnknownCommand, action.Command))
	} else {
		ctx := &Context{
			View:   d.view,
			Doc:    d.doc,
			Action: action,
			Config: d.config,
		}
		if d.config.RecoverFromPanic {
			result = d.executeWithRecovery(h, ctx)
		} else {
			result = h(ctx)
		}
	}

	if d.metrics != nil {
		d.metrics.RecordDispatch(action.Command, time.Since(start), result.Status)
	}

	if result.IsError() {
		d.logger.Warn("%s failed: %v", action, result.Error)
	} else {
		d.logger.Debug("%s -> %s cursors=%d", action, result.Status, d.view.Len())
	}
	return result
}

// executeWithRecovery executes a handler with panic recovery.
func (d *Dispatcher) executeWithRecovery(h HandlerFunc, ctx *Context) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)

			result = Error(fmt.Errorf("%w: %s: %v\n%s", ErrPanic, ctx.Action.Command, r, stack[:n]))

			if d.metrics != nil {
				d.metrics.RecordPanic(ctx.Action.Command)
			}
		}
	}()

	return h(ctx)
}

func missing(cmd Command, what string) error {
	return fmt.Errorf("%w: %s needs a %s", ErrMissingArgument, cmd, what)
}
