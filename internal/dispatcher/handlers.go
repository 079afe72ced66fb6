package dispatcher

import (
	"slices"

	"github.com/dshills/cursorcore/internal/engine/buffer"
	"github.com/dshills/cursorcore/internal/engine/cursor"
	"github.com/dshills/cursorcore/internal/engine/motion"
	"github.com/dshills/cursorcore/internal/engine/rectangle"
	"github.com/dshills/cursorcore/internal/renderer/viewport"
	"github.com/dshills/cursorcore/internal/view"
)

var motionCommands = map[Command]motion.Kind{
	CmdCursorLeft:          motion.CharLeft,
	CmdCursorRight:         motion.CharRight,
	CmdCursorUp:            motion.LineUp,
	CmdCursorDown:          motion.LineDown,
	CmdCursorWordLeft:      motion.WordLeft,
	CmdCursorWordRight:     motion.WordRight,
	CmdCursorLineStart:     motion.LineStart,
	CmdCursorLineEnd:       motion.LineEnd,
	CmdCursorPageUp:        motion.PageUp,
	CmdCursorPageDown:      motion.PageDown,
	CmdCursorDocumentStart: motion.DocumentStart,
	CmdCursorDocumentEnd:   motion.DocumentEnd,
}

func registerBuiltins(r *Registry) {
	for cmd, k := range motionCommands {
		r.Register(cmd, moveHandler(k))
	}

	r.Register(CmdCursorSet, func(ctx *Context) Result {
		p, err := ctx.Position()
		if err != nil {
			return Error(err)
		}
		return observe(ctx.View, func() {
			if ctx.Action.Modifiers.Shift {
				ctx.View.ExtendSelectionToPosition(ctx.Doc, p)
			} else {
				ctx.View.SetCursorPosition(ctx.Doc, p)
			}
		})
	})
	r.Register(CmdCursorExtendTo, func(ctx *Context) Result {
		p, err := ctx.Position()
		if err != nil {
			return Error(err)
		}
		return observe(ctx.View, func() { ctx.View.ExtendSelectionToPosition(ctx.Doc, p) })
	})
	r.Register(CmdCursorAdd, positional(func(ctx *Context, p buffer.Position) bool {
		return ctx.View.AddCursorAt(ctx.Doc, p)
	}))
	r.Register(CmdCursorToggle, positional(func(ctx *Context, p buffer.Position) bool {
		return ctx.View.ToggleCursorAt(ctx.Doc, p)
	}))
	r.Register(CmdCursorRemove, func(ctx *Context) Result {
		return Changed(ctx.View.RemoveCursor(ctx.Action.Args.Index))
	})
	r.Register(CmdCursorAddAbove, func(ctx *Context) Result {
		return Changed(ctx.View.AddCursorAbove(ctx.Doc))
	})
	r.Register(CmdCursorAddBelow, func(ctx *Context) Result {
		return Changed(ctx.View.AddCursorBelow(ctx.Doc))
	})
	r.Register(CmdCursorCollapse, func(ctx *Context) Result {
		return observe(ctx.View, ctx.View.CollapseToPrimary)
	})

	r.Register(CmdSelectWord, viewOp((*view.State).SelectWord))
	r.Register(CmdSelectLine, viewOp((*view.State).SelectLine))
	r.Register(CmdSelectAll, viewOp((*view.State).SelectAll))
	r.Register(CmdSelectExpand, viewOp((*view.State).ExpandSelection))
	r.Register(CmdSelectShrink, viewOp((*view.State).ShrinkSelection))
	r.Register(CmdSelectClear, func(ctx *Context) Result {
		return observe(ctx.View, ctx.View.ClearSelection)
	})

	r.Register(CmdOccurrenceNext, func(ctx *Context) Result {
		return Changed(ctx.View.SelectNextOccurrence(ctx.Doc, ctx.Doc))
	})
	r.Register(CmdOccurrenceUnselect, func(ctx *Context) Result {
		return Changed(ctx.View.UnselectOccurrence())
	})
	r.Register(CmdOccurrenceAll, func(ctx *Context) Result {
		return Changed(ctx.View.SelectAllOccurrences(ctx.Doc, ctx.Doc))
	})

	r.Register(CmdRectangleBegin, func(ctx *Context) Result {
		p, err := ctx.Position()
		if err != nil {
			return Error(err)
		}
		ctx.View.BeginRectangle(ctx.Doc, p)
		return Success()
	})
	r.Register(CmdRectangleDrag, func(ctx *Context) Result {
		p, err := ctx.Position()
		if err != nil {
			return Error(err)
		}
		return observe(ctx.View, func() { ctx.View.DragRectangle(ctx.Doc, p) })
	})
	r.Register(CmdRectangleCommit, func(ctx *Context) Result {
		return Changed(ctx.View.CommitRectangle(ctx.Doc))
	})
	r.Register(CmdRectangleCancel, func(ctx *Context) Result {
		return Changed(ctx.View.CancelRectangle())
	})

	r.Register(CmdViewScroll, func(ctx *Context) Result {
		return observe(ctx.View, func() { ctx.View.Scroll(ctx.Doc, ctx.Action.Args.Delta) })
	})
	r.Register(CmdViewScrollHorizontal, func(ctx *Context) Result {
		return observe(ctx.View, func() { ctx.View.ScrollHorizontal(ctx.Doc, ctx.Action.Args.Delta) })
	})
	r.Register(CmdViewResize, func(ctx *Context) Result {
		a := ctx.Action.Args
		if a.Lines <= 0 || a.Columns <= 0 {
			return Error(missing(ctx.Action.Command, "size"))
		}
		return observe(ctx.View, func() { ctx.View.Resize(ctx.Doc, a.Lines, a.Columns) })
	})
	r.Register(CmdViewCenter, alignHandler(viewport.RevealCentered))
	r.Register(CmdViewCursorTop, alignHandler(viewport.RevealTop))
	r.Register(CmdViewCursorBottom, alignHandler(viewport.RevealBottom))

	r.Register(CmdEditInsert, func(ctx *Context) Result {
		text := ctx.Action.Args.Text
		if text == "" {
			return Error(missing(ctx.Action.Command, "text"))
		}
		return edit(ctx, func(_ int, p cursor.Pair) (buffer.Edit, bool) {
			return buffer.NewEdit(p.Selection.Range(), text), true
		})
	})
	r.Register(CmdEditBackspace, deleteHandler(motion.CharLeft))
	r.Register(CmdEditDeleteForward, deleteHandler(motion.CharRight))
}

// moveHandler applies k to every cursor. Shift extends the selections.
func moveHandler(k motion.Kind) HandlerFunc {
	return func(ctx *Context) Result {
		kind := k
		if ctx.Config.SmartHome {
			switch kind {
			case motion.LineStart:
				kind = motion.LineStartSmart
			case motion.LineEnd:
				kind = motion.LineEndSmart
			}
		}
		return observe(ctx.View, func() { ctx.View.MoveAll(ctx.Doc, kind, ctx.Mode()) })
	}
}

func viewOp(op func(*view.State, buffer.Reader)) HandlerFunc {
	return func(ctx *Context) Result {
		return observe(ctx.View, func() { op(ctx.View, ctx.Doc) })
	}
}

func positional(op func(ctx *Context, p buffer.Position) bool) HandlerFunc {
	return func(ctx *Context) Result {
		p, err := ctx.Position()
		if err != nil {
			return Error(err)
		}
		return Changed(op(ctx, p))
	}
}

func alignHandler(mode viewport.RevealMode) HandlerFunc {
	return func(ctx *Context) Result {
		return observe(ctx.View, func() { ctx.View.Align(ctx.Doc, mode) })
	}
}

// deleteHandler deletes every selection, or the character the motion k
// steps over at an empty selection.
func deleteHandler(k motion.Kind) HandlerFunc {
	return func(ctx *Context) Result {
		return edit(ctx, func(_ int, p cursor.Pair) (buffer.Edit, bool) {
			if p.HasSelection() {
				return buffer.NewDelete(p.Selection.Range()), true
			}
			to := motion.Apply(ctx.Doc, p.Cursor, k, motion.Options{}).Position()
			if to == p.Position() {
				return buffer.Edit{}, false
			}
			return buffer.NewDelete(buffer.NewRange(p.Position(), to)), true
		})
	}
}

// edit runs fn through the view's edit ordering and reports NoOp when fn
// produced no edit.
func edit(ctx *Context, fn view.EditFunc) Result {
	edited := false
	err := ctx.View.ApplyEdits(ctx.Doc, ctx.Doc, func(i int, p cursor.Pair) (buffer.Edit, bool) {
		e, ok := fn(i, p)
		edited = edited || ok
		return e, ok
	})
	if err != nil {
		return Error(err)
	}
	return Changed(edited)
}

// observation is the part of a view a command can change.
type observation struct {
	pairs  []cursor.Pair
	active int
	vp     viewport.Viewport
	rect   rectangle.State
	inRect bool
}

func observeState(v *view.State) observation {
	o := observation{pairs: v.Pairs(), active: v.ActiveIndex(), vp: v.Viewport()}
	o.rect, o.inRect = v.Rectangle()
	return o
}

func (o observation) equal(other observation) bool {
	return o.active == other.active &&
		o.vp == other.vp &&
		o.rect == other.rect &&
		o.inRect == other.inRect &&
		slices.Equal(o.pairs, other.pairs)
}

// observe runs op and reports Success if it changed the view.
func observe(v *view.State, op func()) Result {
	before := observeState(v)
	op()
	return Changed(!before.equal(observeState(v)))
}
