package app

import (
	"github.com/dshills/cursorcore/internal/dispatcher"
	"github.com/dshills/cursorcore/internal/renderer/backend"
)

// Lines and columns moved by one scroll step.
const (
	scrollLines   = 3
	scrollColumns = 4
)

// ctrlBindings maps control keys to commands.
var ctrlBindings = map[backend.Key]dispatcher.Command{
	backend.KeyCtrlA: dispatcher.CmdSelectAll,
	backend.KeyCtrlD: dispatcher.CmdOccurrenceNext,
	backend.KeyCtrlU: dispatcher.CmdOccurrenceUnselect,
	backend.KeyCtrlG: dispatcher.CmdOccurrenceAll,
	backend.KeyCtrlK: dispatcher.CmdSelectWord,
	backend.KeyCtrlL: dispatcher.CmdSelectLine,
	backend.KeyCtrlW: dispatcher.CmdSelectExpand,
	backend.KeyCtrlR: dispatcher.CmdSelectShrink,
	backend.KeyCtrlQ: CmdQuit,
	backend.KeyCtrlS: CmdSave,
}

// altRunes maps Alt+letter to view commands.
var altRunes = map[rune]dispatcher.Command{
	'c': dispatcher.CmdViewCenter,
	't': dispatcher.CmdViewCursorTop,
	'b': dispatcher.CmdViewCursorBottom,
}

// translateKey maps a key event to a dispatcher action. Shift on a motion
// key extends the selections.
func translateKey(ev backend.Event) (dispatcher.Action, bool) {
	shift := ev.Mod.Has(backend.ModShift)
	ctrl := ev.Mod.Has(backend.ModCtrl)
	alt := ev.Mod.Has(backend.ModAlt)

	motion := func(plain, withCtrl dispatcher.Command) (dispatcher.Action, bool) {
		cmd := plain
		if ctrl {
			cmd = withCtrl
		}
		return dispatcher.Action{Command: cmd, Modifiers: dispatcher.Modifiers{Shift: shift}}, true
	}

	switch ev.Key {
	case backend.KeyLeft:
		return motion(dispatcher.CmdCursorLeft, dispatcher.CmdCursorWordLeft)
	case backend.KeyRight:
		return motion(dispatcher.CmdCursorRight, dispatcher.CmdCursorWordRight)
	case backend.KeyHome:
		return motion(dispatcher.CmdCursorLineStart, dispatcher.CmdCursorDocumentStart)
	case backend.KeyEnd:
		return motion(dispatcher.CmdCursorLineEnd, dispatcher.CmdCursorDocumentEnd)
	case backend.KeyPageUp:
		return motion(dispatcher.CmdCursorPageUp, dispatcher.CmdCursorPageUp)
	case backend.KeyPageDown:
		return motion(dispatcher.CmdCursorPageDown, dispatcher.CmdCursorPageDown)

	case backend.KeyUp:
		switch {
		case alt:
			return dispatcher.Do(dispatcher.CmdCursorAddAbove), true
		case ctrl:
			return scroll(dispatcher.CmdViewScroll, -1), true
		}
		return motion(dispatcher.CmdCursorUp, dispatcher.CmdCursorUp)
	case backend.KeyDown:
		switch {
		case alt:
			return dispatcher.Do(dispatcher.CmdCursorAddBelow), true
		case ctrl:
			return scroll(dispatcher.CmdViewScroll, 1), true
		}
		return motion(dispatcher.CmdCursorDown, dispatcher.CmdCursorDown)

	case backend.KeyEscape:
		return dispatcher.Do(CmdEscape), true
	case backend.KeyEnter:
		return insert("\n"), true
	case backend.KeyTab:
		return insert("\t"), true
	case backend.KeyBackspace:
		return dispatcher.Do(dispatcher.CmdEditBackspace), true
	case backend.KeyDelete:
		return dispatcher.Do(dispatcher.CmdEditDeleteForward), true

	case backend.KeyRune:
		if alt {
			cmd, ok := altRunes[ev.Rune]
			return dispatcher.Do(cmd), ok
		}
		if ev.Rune == 0 {
			return dispatcher.Action{}, false
		}
		return insert(string(ev.Rune)), true
	}

	if cmd, ok := ctrlBindings[ev.Key]; ok {
		return dispatcher.Do(cmd), true
	}
	return dispatcher.Action{}, false
}

func insert(text string) dispatcher.Action {
	return dispatcher.Action{Command: dispatcher.CmdEditInsert, Args: dispatcher.Args{Text: text}}
}

func scroll(cmd dispatcher.Command, delta int) dispatcher.Action {
	return dispatcher.Action{Command: cmd, Args: dispatcher.Args{Delta: delta}}
}
