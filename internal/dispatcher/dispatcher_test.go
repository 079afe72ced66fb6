package dispatcher_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/cursorcore/internal/dispatcher"
	"github.com/dshills/cursorcore/internal/engine/buffer"
	"github.com/dshills/cursorcore/internal/engine/cursor"
	"github.com/dshills/cursorcore/internal/logging"
	"github.com/dshills/cursorcore/internal/view"
)

func pos(line, col int) buffer.Position {
	return buffer.Pos(line, col)
}

func newDispatcher(text string, opts ...view.Option) (*dispatcher.Dispatcher, *buffer.Buffer) {
	b := buffer.NewBufferFromString(text)
	v := view.New(opts...)
	return dispatcher.New(v, b, dispatcher.DefaultConfig()), b
}

func cursorsAt(ps ...buffer.Position) view.Option {
	pairs := make([]cursor.Pair, len(ps))
	for i, p := range ps {
		pairs[i] = cursor.PairAt(p)
	}
	return view.WithPairs(pairs, 0)
}

func positions(v *view.State) []buffer.Position {
	var out []buffer.Position
	for _, c := range v.Cursors() {
		out = append(out, c.Position())
	}
	return out
}

func numbered(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	return strings.Join(lines, "\n")
}

var builtinCommands = []dispatcher.Command{
	dispatcher.CmdCursorLeft, dispatcher.CmdCursorRight, dispatcher.CmdCursorUp, dispatcher.CmdCursorDown,
	dispatcher.CmdCursorWordLeft, dispatcher.CmdCursorWordRight, dispatcher.CmdCursorLineStart,
	dispatcher.CmdCursorLineEnd, dispatcher.CmdCursorPageUp, dispatcher.CmdCursorPageDown,
	dispatcher.CmdCursorDocumentStart, dispatcher.CmdCursorDocumentEnd,
	dispatcher.CmdCursorSet, dispatcher.CmdCursorExtendTo, dispatcher.CmdCursorAdd, dispatcher.CmdCursorToggle,
	dispatcher.CmdCursorRemove, dispatcher.CmdCursorAddAbove, dispatcher.CmdCursorAddBelow, dispatcher.CmdCursorCollapse,
	dispatcher.CmdSelectWord, dispatcher.CmdSelectLine, dispatcher.CmdSelectAll, dispatcher.CmdSelectClear,
	dispatcher.CmdSelectExpand, dispatcher.CmdSelectShrink,
	dispatcher.CmdOccurrenceNext, dispatcher.CmdOccurrenceUnselect, dispatcher.CmdOccurrenceAll,
	dispatcher.CmdRectangleBegin, dispatcher.CmdRectangleDrag, dispatcher.CmdRectangleCommit, dispatcher.CmdRectangleCancel,
	dispatcher.CmdViewScroll, dispatcher.CmdViewScrollHorizontal, dispatcher.CmdViewResize,
	dispatcher.CmdViewCenter, dispatcher.CmdViewCursorTop, dispatcher.CmdViewCursorBottom,
	dispatcher.CmdEditInsert, dispatcher.CmdEditBackspace, dispatcher.CmdEditDeleteForward,
}

func TestNewRegistersBuiltins(t *testing.T) {
	d, _ := newDispatcher("")

	for _, cmd := range builtinCommands {
		assert.True(t, d.Registry().Has(cmd), "missing handler for %s", cmd)
	}
	assert.Equal(t, len(builtinCommands), d.Registry().Count())
	assert.Nil(t, d.Metrics(), "metrics are off by default")
}

func TestExecuteUnknownCommand(t *testing.T) {
	d, _ := newDispatcher("abc")

	res := d.Execute(dispatcher.Do("cursor.teleport"))
	require.True(t, res.IsError())
	assert.ErrorIs(t, res.Error, dispatcher.ErrUnknownCommand)
	assert.Contains(t, res.Error.Error(), "cursor.teleport")
}

func TestExecuteMissingArguments(t *testing.T) {
	for _, cmd := range []dispatcher.Command{
		dispatcher.CmdCursorSet,
		dispatcher.CmdCursorExtendTo,
		dispatcher.CmdCursorAdd,
		dispatcher.CmdCursorToggle,
		dispatcher.CmdRectangleBegin,
		dispatcher.CmdRectangleDrag,
		dispatcher.CmdViewResize,
		dispatcher.CmdEditInsert,
	} {
		t.Run(string(cmd), func(t *testing.T) {
			d, _ := newDispatcher("abc")
			res := d.Execute(dispatcher.Do(cmd))
			assert.Equal(t, dispatcher.StatusError, res.Status)
			assert.ErrorIs(t, res.Error, dispatcher.ErrMissingArgument)
		})
	}
}

func TestCursorMotion(t *testing.T) {
	d, _ := newDispatcher("hello world\nsecond")

	res := d.Execute(dispatcher.Do(dispatcher.CmdCursorRight))
	assert.Equal(t, dispatcher.StatusOK, res.Status)
	assert.Equal(t, pos(0, 1), d.View().Primary().Position())

	d.Execute(dispatcher.Do(dispatcher.CmdCursorWordRight))
	assert.Equal(t, pos(0, 5), d.View().Primary().Position())

	d.Execute(dispatcher.Do(dispatcher.CmdCursorDocumentStart))
	res = d.Execute(dispatcher.Do(dispatcher.CmdCursorLeft))
	assert.Equal(t, dispatcher.StatusNoOp, res.Status, "left at document start changes nothing")
}

func TestShiftExtendsSelection(t *testing.T) {
	d, _ := newDispatcher("abcdefgh", cursorsAt(pos(0, 5)))

	d.Execute(dispatcher.Extend(dispatcher.CmdCursorLeft))
	d.Execute(dispatcher.Extend(dispatcher.CmdCursorLeft))
	d.Execute(dispatcher.Extend(dispatcher.CmdCursorLeft))
	sel := d.View().Primary().Selection
	assert.Equal(t, pos(0, 5), sel.Anchor)
	assert.Equal(t, pos(0, 2), sel.Head)

	for i := 0; i < 6; i++ {
		d.Execute(dispatcher.Extend(dispatcher.CmdCursorRight))
	}
	sel = d.View().Primary().Selection
	assert.Equal(t, pos(0, 5), sel.Anchor, "extending never moves the anchor")
	assert.Equal(t, pos(0, 8), sel.Head)
	assert.True(t, sel.IsForward())

	// A plain motion collapses to the selection end and stops there.
	d.Execute(dispatcher.Do(dispatcher.CmdCursorLeft))
	assert.False(t, d.View().HasSelection())
	assert.Equal(t, pos(0, 5), d.View().Primary().Position())
}

func TestSmartHome(t *testing.T) {
	d, _ := newDispatcher("    indented", cursorsAt(pos(0, 8)))

	d.Execute(dispatcher.Do(dispatcher.CmdCursorLineStart))
	assert.Equal(t, pos(0, 4), d.View().Primary().Position())
	d.Execute(dispatcher.Do(dispatcher.CmdCursorLineStart))
	assert.Equal(t, pos(0, 0), d.View().Primary().Position())
	d.Execute(dispatcher.Do(dispatcher.CmdCursorLineStart))
	assert.Equal(t, pos(0, 4), d.View().Primary().Position())

	d.SetConfig(d.Config().WithSmartHome(false))
	d.Execute(dispatcher.Do(dispatcher.CmdCursorLineStart))
	assert.Equal(t, pos(0, 0), d.View().Primary().Position())
	res := d.Execute(dispatcher.Do(dispatcher.CmdCursorLineStart))
	assert.Equal(t, dispatcher.StatusNoOp, res.Status)
}

func TestSmartEnd(t *testing.T) {
	d, _ := newDispatcher("hello    ", cursorsAt(pos(0, 3)))

	d.Execute(dispatcher.Do(dispatcher.CmdCursorLineEnd))
	assert.Equal(t, pos(0, 5), d.View().Primary().Position())
	d.Execute(dispatcher.Do(dispatcher.CmdCursorLineEnd))
	assert.Equal(t, pos(0, 9), d.View().Primary().Position())
	d.Execute(dispatcher.Do(dispatcher.CmdCursorLineEnd))
	assert.Equal(t, pos(0, 5), d.View().Primary().Position())

	d.SetConfig(d.Config().WithSmartHome(false))
	d.Execute(dispatcher.Do(dispatcher.CmdCursorLineEnd))
	assert.Equal(t, pos(0, 9), d.View().Primary().Position())
	res := d.Execute(dispatcher.Do(dispatcher.CmdCursorLineEnd))
	assert.Equal(t, dispatcher.StatusNoOp, res.Status)
}

func TestPointerCommands(t *testing.T) {
	d, _ := newDispatcher("first line\nsecond line\nthird")

	res := d.Execute(dispatcher.At(dispatcher.CmdCursorSet, pos(1, 3)))
	assert.True(t, res.IsOK())
	assert.Equal(t, pos(1, 3), d.View().Primary().Position())

	shifted := dispatcher.At(dispatcher.CmdCursorSet, pos(2, 2))
	shifted.Modifiers.Shift = true
	d.Execute(shifted)
	sel := d.View().Primary().Selection
	assert.Equal(t, pos(1, 3), sel.Anchor)
	assert.Equal(t, pos(2, 2), sel.Head)

	d.Execute(dispatcher.At(dispatcher.CmdCursorSet, pos(9, 99)))
	assert.Equal(t, pos(2, 5), d.View().Primary().Position(), "pointer positions clamp to the document")
}

func TestMultiCursorCommands(t *testing.T) {
	d, _ := newDispatcher("aaaa\nbb\ncccc", cursorsAt(pos(1, 1)))

	assert.True(t, d.Execute(dispatcher.Do(dispatcher.CmdCursorAddAbove)).IsOK())
	assert.True(t, d.Execute(dispatcher.Do(dispatcher.CmdCursorAddBelow)).IsOK())
	assert.Equal(t, 3, d.View().Len())
	assert.Equal(t, dispatcher.StatusNoOp, d.Execute(dispatcher.Do(dispatcher.CmdCursorAddAbove)).Status,
		"no line above the top cursor")

	assert.True(t, d.Execute(dispatcher.At(dispatcher.CmdCursorToggle, pos(0, 1))).IsOK())
	assert.Equal(t, 2, d.View().Len())

	assert.Equal(t, dispatcher.StatusNoOp, d.Execute(dispatcher.At(dispatcher.CmdCursorAdd, pos(1, 1))).Status,
		"adding a cursor where one exists is a no-op")

	assert.True(t, d.Execute(dispatcher.Do(dispatcher.CmdCursorCollapse)).IsOK())
	assert.Equal(t, 1, d.View().Len())
	assert.Equal(t, dispatcher.StatusNoOp, d.Execute(dispatcher.Do(dispatcher.CmdCursorCollapse)).Status)

	assert.Equal(t, dispatcher.StatusNoOp, d.Execute(dispatcher.Do(dispatcher.CmdCursorRemove)).Status,
		"the last cursor is never removed")
}

func TestSelectionCommands(t *testing.T) {
	d, b := newDispatcher("foo bar\nbaz", cursorsAt(pos(0, 1), pos(1, 0)))

	d.Execute(dispatcher.Do(dispatcher.CmdSelectWord))
	require.Equal(t, 2, d.View().Len())
	assert.Equal(t, "foo", b.TextRange(d.View().Selections()[0].Range()))

	d.Execute(dispatcher.Do(dispatcher.CmdSelectAll))
	require.Equal(t, 1, d.View().Len())
	sel := d.View().Primary().Selection
	assert.Equal(t, pos(0, 0), sel.Start())
	assert.Equal(t, pos(1, 3), sel.End())

	assert.True(t, d.Execute(dispatcher.Do(dispatcher.CmdSelectClear)).IsOK())
	assert.False(t, d.View().HasSelection())
	assert.Equal(t, dispatcher.StatusNoOp, d.Execute(dispatcher.Do(dispatcher.CmdSelectClear)).Status)
}

func TestExpandShrink(t *testing.T) {
	d, b := newDispatcher("one two\nthree", cursorsAt(pos(0, 5)))

	d.Execute(dispatcher.Do(dispatcher.CmdSelectExpand))
	assert.Equal(t, "two", b.TextRange(d.View().Primary().Selection.Range()))
	d.Execute(dispatcher.Do(dispatcher.CmdSelectExpand))
	assert.Equal(t, "one two\n", b.TextRange(d.View().Primary().Selection.Range()))

	d.Execute(dispatcher.Do(dispatcher.CmdSelectShrink))
	assert.Equal(t, "two", b.TextRange(d.View().Primary().Selection.Range()))
}

func TestOccurrenceCommands(t *testing.T) {
	d, _ := newDispatcher("foo bar foo baz foo")

	assert.True(t, d.Execute(dispatcher.Do(dispatcher.CmdOccurrenceNext)).IsOK())
	assert.Equal(t, 1, d.View().Len(), "the first call selects the word under the cursor")

	d.Execute(dispatcher.Do(dispatcher.CmdOccurrenceNext))
	d.Execute(dispatcher.Do(dispatcher.CmdOccurrenceNext))
	assert.Equal(t, []buffer.Position{pos(0, 3), pos(0, 11), pos(0, 19)}, positions(d.View()))

	res := d.Execute(dispatcher.Do(dispatcher.CmdOccurrenceNext))
	assert.Equal(t, dispatcher.StatusNoOp, res.Status, "every match is already selected")

	assert.True(t, d.Execute(dispatcher.Do(dispatcher.CmdOccurrenceUnselect)).IsOK())
	assert.Equal(t, 2, d.View().Len())

	assert.True(t, d.Execute(dispatcher.Do(dispatcher.CmdOccurrenceAll)).IsOK())
	assert.Equal(t, 3, d.View().Len())
}

func TestRectangleCommands(t *testing.T) {
	d, _ := newDispatcher("abcdef\nab\nabcdef")

	assert.Equal(t, dispatcher.StatusNoOp, d.Execute(dispatcher.Do(dispatcher.CmdRectangleCommit)).Status)
	assert.Equal(t, dispatcher.StatusNoOp, d.Execute(dispatcher.At(dispatcher.CmdRectangleDrag, pos(1, 1))).Status)

	require.True(t, d.Execute(dispatcher.At(dispatcher.CmdRectangleBegin, pos(0, 1))).IsOK())
	require.True(t, d.Execute(dispatcher.At(dispatcher.CmdRectangleDrag, pos(2, 4))).IsOK())
	require.True(t, d.Execute(dispatcher.Do(dispatcher.CmdRectangleCommit)).IsOK())

	assert.ElementsMatch(t, []buffer.Position{pos(0, 4), pos(1, 2), pos(2, 4)}, positions(d.View()))
	assert.NoError(t, d.View().CheckInvariants(buffer.NewBufferFromString("abcdef\nab\nabcdef")))

	d.Execute(dispatcher.At(dispatcher.CmdRectangleBegin, pos(0, 0)))
	d.Execute(dispatcher.At(dispatcher.CmdRectangleDrag, pos(2, 0)))
	assert.True(t, d.Execute(dispatcher.Do(dispatcher.CmdRectangleCancel)).IsOK())
	assert.ElementsMatch(t, []buffer.Position{pos(0, 4), pos(1, 2), pos(2, 4)}, positions(d.View()),
		"cancel restores the pairs held before the drag")
}

func TestViewCommands(t *testing.T) {
	d, b := newDispatcher(numbered(100), view.WithViewportSize(10, 80))

	res := d.Execute(dispatcher.Action{Command: dispatcher.CmdViewScroll, Args: dispatcher.Args{Delta: 5}})
	assert.True(t, res.IsOK())
	assert.Equal(t, 5, d.View().Viewport().TopLine)
	assert.Equal(t, pos(0, 0), d.View().Primary().Position(), "scrolling leaves the cursor alone")

	res = d.Execute(dispatcher.Action{Command: dispatcher.CmdViewScroll})
	assert.Equal(t, dispatcher.StatusNoOp, res.Status)

	d.Execute(dispatcher.At(dispatcher.CmdCursorSet, pos(50, 0)))
	d.Execute(dispatcher.Do(dispatcher.CmdViewCenter))
	assert.Equal(t, 45, d.View().Viewport().TopLine)
	d.Execute(dispatcher.Do(dispatcher.CmdViewCursorTop))
	assert.Equal(t, 49, d.View().Viewport().TopLine)
	d.Execute(dispatcher.Do(dispatcher.CmdViewCursorBottom))
	assert.Equal(t, 42, d.View().Viewport().TopLine)

	res = d.Execute(dispatcher.Action{Command: dispatcher.CmdViewResize, Args: dispatcher.Args{Lines: 20, Columns: 40}})
	assert.True(t, res.IsOK())
	assert.Equal(t, 20, d.View().Viewport().VisibleLines)
	assert.Equal(t, 40, d.View().Viewport().VisibleColumns)

	start, end := d.View().VisibleLines(b)
	assert.True(t, start <= 50 && 50 < end, "cursor line stays visible after resize")
}

func TestInsertAtEveryCursor(t *testing.T) {
	d, b := newDispatcher("abcdefgh", cursorsAt(pos(0, 2), pos(0, 5)))

	res := d.Execute(dispatcher.Action{Command: dispatcher.CmdEditInsert, Args: dispatcher.Args{Text: "X"}})
	require.True(t, res.IsOK())
	assert.Equal(t, "abXcdeXfgh", b.Text())
	assert.Equal(t, []buffer.Position{pos(0, 3), pos(0, 7)}, positions(d.View()))
}

func TestInsertReplacesSelections(t *testing.T) {
	d, b := newDispatcher("one two")
	d.Execute(dispatcher.Do(dispatcher.CmdSelectWord))

	d.Execute(dispatcher.Action{Command: dispatcher.CmdEditInsert, Args: dispatcher.Args{Text: "1"}})
	assert.Equal(t, "1 two", b.Text())
	assert.Equal(t, pos(0, 1), d.View().Primary().Position())
}

func TestBackspace(t *testing.T) {
	d, b := newDispatcher("abcdefgh", cursorsAt(pos(0, 3), pos(0, 6)))

	require.True(t, d.Execute(dispatcher.Do(dispatcher.CmdEditBackspace)).IsOK())
	assert.Equal(t, "abdegh", b.Text())
	assert.Equal(t, []buffer.Position{pos(0, 2), pos(0, 4)}, positions(d.View()))
}

func TestBackspaceConvergingCursors(t *testing.T) {
	d, b := newDispatcher("abcdef", cursorsAt(pos(0, 3), pos(0, 4)))

	d.Execute(dispatcher.Do(dispatcher.CmdEditBackspace))
	assert.Equal(t, "abef", b.Text())
	assert.Equal(t, []buffer.Position{pos(0, 2)}, positions(d.View()), "converged cursors are deduplicated")
}

func TestBackspaceJoinsLines(t *testing.T) {
	d, b := newDispatcher("ab\ncd", cursorsAt(pos(1, 0)))

	d.Execute(dispatcher.Do(dispatcher.CmdEditBackspace))
	assert.Equal(t, "abcd", b.Text())
	assert.Equal(t, pos(0, 2), d.View().Primary().Position())
}

func TestDeleteAtDocumentBounds(t *testing.T) {
	d, b := newDispatcher("abc")

	assert.Equal(t, dispatcher.StatusNoOp, d.Execute(dispatcher.Do(dispatcher.CmdEditBackspace)).Status)

	d.Execute(dispatcher.Do(dispatcher.CmdCursorDocumentEnd))
	assert.Equal(t, dispatcher.StatusNoOp, d.Execute(dispatcher.Do(dispatcher.CmdEditDeleteForward)).Status)

	d.Execute(dispatcher.Do(dispatcher.CmdCursorDocumentStart))
	assert.True(t, d.Execute(dispatcher.Do(dispatcher.CmdEditDeleteForward)).IsOK())
	assert.Equal(t, "bc", b.Text())
}

func TestRegisterCustomCommand(t *testing.T) {
	d, _ := newDispatcher("abc")

	called := false
	d.Register("test.command", func(ctx *dispatcher.Context) dispatcher.Result {
		called = true
		assert.Equal(t, view.Extend, ctx.Mode())
		return dispatcher.Success().WithMessage("done")
	})

	res := d.Execute(dispatcher.Extend("test.command"))
	assert.True(t, called)
	assert.Equal(t, "done", res.Message)
}

func TestPanicRecovery(t *testing.T) {
	b := buffer.NewBufferFromString("abc")
	d := dispatcher.New(view.New(), b, dispatcher.DefaultConfig().WithMetrics())
	d.Register("test.panic", func(*dispatcher.Context) dispatcher.Result {
		panic("boom")
	})

	res := d.Execute(dispatcher.Do("test.panic"))
	require.True(t, res.IsError())
	assert.ErrorIs(t, res.Error, dispatcher.ErrPanic)
	assert.Contains(t, res.Error.Error(), "boom")
	assert.Equal(t, uint64(1), d.Metrics().TotalPanics())

	d.SetConfig(d.Config().WithPanicRecovery(false))
	assert.Panics(t, func() { d.Execute(dispatcher.Do("test.panic")) })
}

func TestMetrics(t *testing.T) {
	b := buffer.NewBufferFromString("abc")
	d := dispatcher.New(view.New(), b, dispatcher.DefaultConfig().WithMetrics())

	d.Execute(dispatcher.Do(dispatcher.CmdCursorRight))
	d.Execute(dispatcher.Do(dispatcher.CmdCursorRight))
	d.Execute(dispatcher.Do(dispatcher.CmdCursorDocumentStart))
	d.Execute(dispatcher.Do(dispatcher.CmdCursorLeft))
	d.Execute(dispatcher.Do("nope"))

	m := d.Metrics()
	assert.Equal(t, uint64(5), m.TotalDispatches())
	assert.Equal(t, uint64(1), m.TotalErrors())

	right, ok := m.Command(dispatcher.CmdCursorRight)
	require.True(t, ok)
	assert.Equal(t, uint64(2), right.Count)

	left, ok := m.Command(dispatcher.CmdCursorLeft)
	require.True(t, ok)
	assert.Equal(t, uint64(1), left.NoOps)

	snap := m.Snapshot()
	require.Len(t, snap, 4)
	assert.Equal(t, dispatcher.CmdCursorRight, snap[0].Command, "most executed first")

	d.SetConfig(d.Config())
	assert.Same(t, m, d.Metrics(), "keeping metrics enabled keeps the collector")

	m.Reset()
	assert.Zero(t, m.TotalDispatches())

	cfg := d.Config()
	cfg.EnableMetrics = false
	d.SetConfig(cfg)
	assert.Nil(t, d.Metrics())
}

func TestExecuteLogs(t *testing.T) {
	var out bytes.Buffer
	logger := logging.New(logging.Config{Level: logging.LevelDebug, Output: &out})

	v := view.New()
	d := dispatcher.New(v, buffer.NewBufferFromString("abc"), dispatcher.DefaultConfig(), dispatcher.WithLogger(logger))

	d.Execute(dispatcher.Extend(dispatcher.CmdCursorRight))
	d.Execute(dispatcher.Do("nope"))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "[DEBUG]")
	assert.Contains(t, lines[0], "shift+cursor.right -> ok cursors=1")
	assert.Contains(t, lines[0], "component=dispatcher")
	assert.Contains(t, lines[0], "view="+v.ID().String())
	assert.Contains(t, lines[1], "[WARN]")
	assert.Contains(t, lines[1], "unknown command")
}

func TestResultHelpers(t *testing.T) {
	assert.Equal(t, dispatcher.StatusOK, dispatcher.Changed(true).Status)
	assert.Equal(t, dispatcher.StatusNoOp, dispatcher.Changed(false).Status)
	assert.Equal(t, "no-op", dispatcher.StatusNoOp.String())
	assert.Equal(t, "unknown", dispatcher.ResultStatus(42).String())

	res := dispatcher.Errorf("bad %d", 7)
	assert.True(t, res.IsError())
	assert.EqualError(t, res.Error, "bad 7")
}

func TestActionString(t *testing.T) {
	a := dispatcher.At(dispatcher.CmdCursorSet, pos(1, 2))
	a.Modifiers.Shift = true
	assert.Equal(t, "shift+cursor.set @"+pos(1, 2).String(), a.String())
}
