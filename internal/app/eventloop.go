package app

import (
	"fmt"

	"github.com/dshills/cursorcore/internal/config"
	"github.com/dshills/cursorcore/internal/dispatcher"
	"github.com/dshills/cursorcore/internal/engine/buffer"
	"github.com/dshills/cursorcore/internal/renderer/backend"
	"github.com/dshills/cursorcore/internal/renderer/statusline"
)

// handleBackendEvent processes a backend event and routes it appropriately.
// Returns ErrQuit if the application should exit.
func (app *Application) handleBackendEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventResize:
		app.handleResize(ev.Width, ev.Height)
	case backend.EventKey:
		app.handleKeyEvent(ev)
	case backend.EventMouse:
		app.handleMouseEvent(ev)
	case backend.EventInterrupt:
		app.handleInterrupt(ev.Data)
	}
	if app.quitRequested {
		return ErrQuit
	}
	return nil
}

// handleResize processes terminal resize events.
func (app *Application) handleResize(width, height int) {
	app.renderer.Resize(width, height)
	app.syncViewport()
}

// syncViewport resizes the view to the renderer's text area. The gutter
// grows with the line count, so this also runs before every frame.
func (app *Application) syncViewport() {
	lines, cols := app.renderer.TextArea(app.doc)
	vp := app.view.Viewport()
	if vp.VisibleLines == lines && vp.VisibleColumns == cols {
		return
	}
	app.execute(dispatcher.Action{
		Command: dispatcher.CmdViewResize,
		Args:    dispatcher.Args{Lines: lines, Columns: cols},
	})
}

// handleKeyEvent processes keyboard input events.
func (app *Application) handleKeyEvent(ev backend.Event) {
	action, ok := translateKey(ev)
	if !ok {
		return
	}
	app.execute(action)
}

// handleMouseEvent processes mouse input events.
func (app *Application) handleMouseEvent(ev backend.Event) {
	action, ok := app.mouse.translate(ev, func(x, y int) (buffer.Position, bool) {
		return app.renderer.PositionAt(app.view, app.doc, x, y)
	})
	if !ok {
		return
	}
	app.execute(action)
}

func (app *Application) handleInterrupt(data any) {
	switch d := data.(type) {
	case quitRequest:
		app.quitRequested = true
	case configReload:
		app.applyConfig(d.config, d.err)
	}
}

// applyConfig installs a reloaded configuration. The punctuation set is
// fixed when the document is opened and is not reapplied.
func (app *Application) applyConfig(cfg config.Config, err error) {
	status := app.renderer.StatusLine()
	if err != nil {
		app.logger.Warn("config reload: %v", err)
		status.SetMessage(fmt.Sprintf("config: %v", err), statusline.MessageError)
		return
	}

	app.config = cfg
	app.view.SetSettings(app.doc, cfg.ViewSettings())
	app.dispatcher.SetConfig(app.dispatcher.Config().WithSmartHome(cfg.Motion.SmartHome))
	if app.opts.LogLevel == "" {
		app.logger.SetLevel(cfg.LogLevel())
	}
	app.logger.Info("config reloaded from %s", app.opts.ConfigPath)
	status.SetMessage("config reloaded", statusline.MessageInfo)
}

// execute dispatches one action and reports failures on the status line.
func (app *Application) execute(action dispatcher.Action) dispatcher.Result {
	result := app.dispatcher.Execute(action)
	if app.renderer == nil {
		return result
	}
	status := app.renderer.StatusLine()
	switch {
	case result.IsError():
		status.SetMessage(result.Error.Error(), statusline.MessageError)
	case result.Message != "":
		status.SetMessage(result.Message, statusline.MessageInfo)
	case result.IsOK():
		status.ClearMessage()
	}
	return result
}

// render draws the current frame.
func (app *Application) render() {
	app.syncViewport()
	status := app.renderer.StatusLine()
	status.SetFilename(app.filename)
	status.SetModified(app.Modified())
	app.renderer.Render(app.view, app.doc)
}
