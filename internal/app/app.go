package app

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sync/atomic"

	"github.com/dshills/cursorcore/internal/config"
	"github.com/dshills/cursorcore/internal/dispatcher"
	"github.com/dshills/cursorcore/internal/engine/buffer"
	"github.com/dshills/cursorcore/internal/logging"
	"github.com/dshills/cursorcore/internal/renderer"
	"github.com/dshills/cursorcore/internal/renderer/backend"
	"github.com/dshills/cursorcore/internal/renderer/statusline"
	"github.com/dshills/cursorcore/internal/view"
)

// Application is the demo host: one document, one view and a terminal.
// All state is owned by the goroutine running Run; other goroutines talk to
// it only through backend interrupts.
type Application struct {
	opts   Options
	config config.Config
	logger *logging.Logger
	logOut io.Closer

	doc        *buffer.Buffer
	filename   string
	savedRev   uint64
	view       *view.State
	dispatcher *dispatcher.Dispatcher

	backend  backend.Backend
	renderer *renderer.Renderer
	watcher  *config.Watcher

	mouse         mouseState
	quitRequested bool
	startupErr    error

	running atomic.Bool
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file. It is watched for
	// changes while the application runs.
	ConfigPath string

	// LogPath is the file log messages are appended to. Empty discards
	// them.
	LogPath string

	// LogLevel overrides the configured logging level when set.
	LogLevel string

	// Metrics enables dispatcher metrics, logged at shutdown.
	Metrics bool

	// Files are files to open on startup. Only the first is used.
	Files []string

	// Lookup reads environment overrides. Nil uses os.LookupEnv.
	Lookup config.LookupFunc
}

// configReload carries a watcher callback to the event loop.
type configReload struct {
	config config.Config
	err    error
}

// quitRequest asks the event loop to stop.
type quitRequest struct{}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	app := &Application{opts: opts}
	if err := app.bootstrap(); err != nil {
		app.closeLog()
		return nil, err
	}
	return app, nil
}

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Configuration. A bad file is reported once the screen is up.
	lookup := app.opts.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	cfg, err := config.LoadWithEnv(app.opts.ConfigPath, lookup)
	if err != nil {
		app.startupErr = err
	}
	app.config = cfg

	// 2. Logging
	if err := app.openLog(); err != nil {
		return &InitError{Component: "logging", Err: err}
	}
	if app.startupErr != nil {
		app.logger.Warn("config: %v", app.startupErr)
	}

	// 3. Document
	if err := app.openDocument(); err != nil {
		return &InitError{Component: "document", Err: err}
	}

	// 4. View and dispatcher
	app.view = view.New(cfg.ViewOptions()...)
	dcfg := dispatcher.DefaultConfig().WithSmartHome(cfg.Motion.SmartHome)
	if app.opts.Metrics {
		dcfg = dcfg.WithMetrics()
	}
	app.dispatcher = dispatcher.New(app.view, app.doc, dcfg, dispatcher.WithLogger(app.logger))
	app.registerCommands()

	app.logger.Info("view %s ready: %d lines", app.view.ID(), app.doc.LineCount())
	return nil
}

func (app *Application) openLog() error {
	if app.opts.LogPath == "" {
		app.logger = logging.Discard()
		return nil
	}
	f, err := os.OpenFile(app.opts.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	app.logOut = f
	app.logger = logging.New(logging.Config{
		Level:  app.logLevel(),
		Output: f,
		Prefix: "cursorcore",
	})
	return nil
}

func (app *Application) logLevel() logging.Level {
	if app.opts.LogLevel != "" {
		return logging.ParseLevel(app.opts.LogLevel)
	}
	return app.config.LogLevel()
}

func (app *Application) closeLog() {
	if app.logOut != nil {
		app.logOut.Close()
		app.logOut = nil
	}
}

// openDocument loads the first file, or starts an empty document. A file
// that does not exist yet is created on first save.
func (app *Application) openDocument() error {
	opts := app.config.BufferOptions()
	if len(app.opts.Files) == 0 {
		app.doc = buffer.NewBuffer(opts...)
		app.savedRev = app.doc.Revision()
		return nil
	}

	app.filename = app.opts.Files[0]
	data, err := os.ReadFile(app.filename)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		app.doc = buffer.NewBuffer(opts...)
	case err != nil:
		return err
	default:
		text := string(data)
		opts = append(opts, buffer.WithDetectedLineEnding(text))
		app.doc = buffer.NewBufferFromString(text, opts...)
	}
	app.savedRev = app.doc.Revision()
	return nil
}

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.backend = b
	return nil
}

// Run starts the application main loop.
// Blocks until quit is requested and returns ErrQuit.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)
	defer app.shutdown()

	if app.backend == nil {
		return ErrNoBackend
	}
	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer app.backend.Shutdown()

	app.quitRequested = false
	app.renderer = renderer.New(app.backend, renderer.DefaultOptions())
	app.renderer.StatusLine().SetFilename(app.filename)
	app.handleResize(app.backend.Size())
	if app.startupErr != nil {
		app.renderer.StatusLine().SetMessage(fmt.Sprintf("config: %v", app.startupErr), statusline.MessageError)
	}

	if app.opts.ConfigPath != "" {
		if err := app.startWatcher(); err != nil {
			app.logger.Warn("config watch: %v", err)
		}
	}

	return app.eventLoop()
}

func (app *Application) startWatcher() error {
	var opts []config.WatcherOption
	if app.opts.Lookup != nil {
		opts = append(opts, config.WithLookup(app.opts.Lookup))
	}
	b := app.backend
	w, err := config.Watch(app.opts.ConfigPath, func(cfg config.Config, err error) {
		b.PostEvent(backend.Interrupt(configReload{config: cfg, err: err}))
	}, opts...)
	if err != nil {
		return err
	}
	app.watcher = w
	return nil
}

// eventLoop renders, then blocks for the next event, until a handler
// returns an error.
func (app *Application) eventLoop() error {
	for {
		app.render()
		if err := app.handleBackendEvent(app.backend.PollEvent()); err != nil {
			return err
		}
	}
}

// Shutdown asks a running event loop to stop. It is safe to call from any
// goroutine.
func (app *Application) Shutdown() {
	if !app.running.Load() || app.backend == nil {
		return
	}
	app.backend.PostEvent(backend.Interrupt(quitRequest{}))
}

// shutdown releases resources in reverse initialization order.
func (app *Application) shutdown() {
	if app.watcher != nil {
		if err := app.watcher.Close(); err != nil {
			app.logger.Warn("config watch close: %v", err)
		}
		app.watcher = nil
	}
	if m := app.dispatcher.Metrics(); m != nil {
		app.logger.Info("dispatched %d commands, %d errors, %d panics", m.TotalDispatches(), m.TotalErrors(), m.TotalPanics())
		for _, cm := range m.Snapshot() {
			app.logger.Info("  %s: count=%d noop=%d errors=%d avg=%s", cm.Command, cm.Count, cm.NoOps, cm.Errors, cm.AverageDuration())
		}
	}
	app.closeLog()
}

// IsRunning returns true if the application is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Config returns the active configuration.
func (app *Application) Config() config.Config {
	return app.config
}

// View returns the view state.
func (app *Application) View() *view.State {
	return app.view
}

// Document returns the document.
func (app *Application) Document() *buffer.Buffer {
	return app.doc
}

// Dispatcher returns the command dispatcher.
func (app *Application) Dispatcher() *dispatcher.Dispatcher {
	return app.dispatcher
}

// Renderer returns the renderer, or nil before Run.
func (app *Application) Renderer() *renderer.Renderer {
	return app.renderer
}

// Modified reports whether the document changed since it was opened or
// saved.
func (app *Application) Modified() bool {
	return app.doc.Revision() != app.savedRev
}

// Save writes the document to the file it was opened from.
func (app *Application) Save() error {
	if app.filename == "" {
		return ErrNoFilename
	}
	if err := os.WriteFile(app.filename, []byte(app.doc.Text()), 0o644); err != nil {
		return fmt.Errorf("save %s: %w", app.filename, err)
	}
	app.savedRev = app.doc.Revision()
	app.logger.Info("saved %s", app.filename)
	return nil
}
