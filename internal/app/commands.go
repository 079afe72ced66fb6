package app

import (
	"github.com/dshills/cursorcore/internal/dispatcher"
)

// Commands the host adds to the dispatcher.
const (
	CmdQuit   dispatcher.Command = "app.quit"
	CmdSave   dispatcher.Command = "app.save"
	CmdEscape dispatcher.Command = "app.escape"
)

func (app *Application) registerCommands() {
	app.dispatcher.Register(CmdQuit, func(_ *dispatcher.Context) dispatcher.Result {
		app.quitRequested = true
		return dispatcher.Success()
	})

	app.dispatcher.Register(CmdSave, func(_ *dispatcher.Context) dispatcher.Result {
		if err := app.Save(); err != nil {
			return dispatcher.Error(err)
		}
		return dispatcher.Success().WithMessage("saved " + app.filename)
	})

	// Escape unwinds one level: a rectangle drag, then extra cursors, then
	// the primary selection.
	app.dispatcher.Register(CmdEscape, func(ctx *dispatcher.Context) dispatcher.Result {
		v := ctx.View
		switch _, rect := v.Rectangle(); {
		case rect:
			return dispatcher.Changed(v.CancelRectangle())
		case v.Len() > 1:
			v.CollapseToPrimary()
			return dispatcher.Success()
		case v.Primary().HasSelection():
			v.ClearSelection()
			return dispatcher.Success()
		default:
			return dispatcher.NoOp()
		}
	})
}
