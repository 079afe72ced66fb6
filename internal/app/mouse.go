package app

import (
	"github.com/dshills/cursorcore/internal/dispatcher"
	"github.com/dshills/cursorcore/internal/engine/buffer"
	"github.com/dshills/cursorcore/internal/renderer/backend"
)

// dragKind is what a held left button is doing.
type dragKind int

const (
	dragNone dragKind = iota
	dragSelect
	dragRectangle
	dragToggle
)

// mouseState tracks the left button between events. Terminals report a
// press, then motion with the button still held, then a release with no
// button.
type mouseState struct {
	drag dragKind
}

// locateFunc converts a screen cell to a document position.
type locateFunc func(x, y int) (buffer.Position, bool)

// translate maps a mouse event to a dispatcher action.
//
// A plain click places the cursor and a drag extends from it. Shift+click
// extends the primary selection. Ctrl+click toggles a cursor. Alt+drag
// selects a rectangle, committed on release.
func (m *mouseState) translate(ev backend.Event, locate locateFunc) (dispatcher.Action, bool) {
	switch ev.MouseButton {
	case backend.MouseWheelUp:
		return scroll(dispatcher.CmdViewScroll, -scrollLines), true
	case backend.MouseWheelDown:
		return scroll(dispatcher.CmdViewScroll, scrollLines), true
	case backend.MouseWheelLeft:
		return scroll(dispatcher.CmdViewScrollHorizontal, -scrollColumns), true
	case backend.MouseWheelRight:
		return scroll(dispatcher.CmdViewScrollHorizontal, scrollColumns), true

	case backend.MouseNone:
		return m.release()

	case backend.MouseLeft:
		p, ok := locate(ev.MouseX, ev.MouseY)
		if !ok {
			return dispatcher.Action{}, false
		}
		if m.drag != dragNone {
			return m.motion(p)
		}
		return m.press(ev.Mod, p), true
	}
	return dispatcher.Action{}, false
}

func (m *mouseState) press(mod backend.ModMask, p buffer.Position) dispatcher.Action {
	switch {
	case mod.Has(backend.ModAlt):
		m.drag = dragRectangle
		return dispatcher.At(dispatcher.CmdRectangleBegin, p)
	case mod.Has(backend.ModCtrl):
		m.drag = dragToggle
		return dispatcher.At(dispatcher.CmdCursorToggle, p)
	case mod.Has(backend.ModShift):
		m.drag = dragSelect
		return dispatcher.At(dispatcher.CmdCursorExtendTo, p)
	default:
		m.drag = dragSelect
		return dispatcher.At(dispatcher.CmdCursorSet, p)
	}
}

func (m *mouseState) motion(p buffer.Position) (dispatcher.Action, bool) {
	switch m.drag {
	case dragRectangle:
		return dispatcher.At(dispatcher.CmdRectangleDrag, p), true
	case dragSelect:
		return dispatcher.At(dispatcher.CmdCursorExtendTo, p), true
	}
	return dispatcher.Action{}, false
}

func (m *mouseState) release() (dispatcher.Action, bool) {
	drag := m.drag
	m.drag = dragNone
	if drag == dragRectangle {
		return dispatcher.Do(dispatcher.CmdRectangleCommit), true
	}
	return dispatcher.Action{}, false
}
