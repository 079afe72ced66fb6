package dispatcher

import (
	"fmt"

	"github.com/dshills/cursorcore/internal/engine/buffer"
)

// Command names a motion or selection command.
type Command string

// Cursor motions. With Shift they extend the selections instead.
const (
	CmdCursorLeft          Command = "cursor.left"
	CmdCursorRight         Command = "cursor.right"
	CmdCursorUp            Command = "cursor.up"
	CmdCursorDown          Command = "cursor.down"
	CmdCursorWordLeft      Command = "cursor.wordLeft"
	CmdCursorWordRight     Command = "cursor.wordRight"
	CmdCursorLineStart     Command = "cursor.lineStart"
	CmdCursorLineEnd       Command = "cursor.lineEnd"
	CmdCursorPageUp        Command = "cursor.pageUp"
	CmdCursorPageDown      Command = "cursor.pageDown"
	CmdCursorDocumentStart Command = "cursor.documentStart"
	CmdCursorDocumentEnd   Command = "cursor.documentEnd"
)

// Pointer and multi-cursor commands.
const (
	CmdCursorSet      Command = "cursor.set"      // Args.Position; Shift extends
	CmdCursorExtendTo Command = "cursor.extendTo" // Args.Position
	CmdCursorAdd      Command = "cursor.add"      // Args.Position
	CmdCursorToggle   Command = "cursor.toggle"   // Args.Position
	CmdCursorRemove   Command = "cursor.remove"   // Args.Index
	CmdCursorAddAbove Command = "cursor.addAbove"
	CmdCursorAddBelow Command = "cursor.addBelow"
	CmdCursorCollapse Command = "cursor.collapse"
)

// Selection commands.
const (
	CmdSelectWord   Command = "selection.word"
	CmdSelectLine   Command = "selection.line"
	CmdSelectAll    Command = "selection.all"
	CmdSelectClear  Command = "selection.clear"
	CmdSelectExpand Command = "selection.expand"
	CmdSelectShrink Command = "selection.shrink"
)

// Occurrence commands.
const (
	CmdOccurrenceNext     Command = "occurrence.next"
	CmdOccurrenceUnselect Command = "occurrence.unselect"
	CmdOccurrenceAll      Command = "occurrence.all"
)

// Rectangle selection commands.
const (
	CmdRectangleBegin  Command = "rectangle.begin" // Args.Position
	CmdRectangleDrag   Command = "rectangle.drag"  // Args.Position
	CmdRectangleCommit Command = "rectangle.commit"
	CmdRectangleCancel Command = "rectangle.cancel"
)

// View commands.
const (
	CmdViewScroll           Command = "view.scroll"           // Args.Delta lines
	CmdViewScrollHorizontal Command = "view.scrollHorizontal" // Args.Delta columns
	CmdViewResize           Command = "view.resize"           // Args.Lines, Args.Columns
	CmdViewCenter           Command = "view.center"
	CmdViewCursorTop        Command = "view.cursorTop"
	CmdViewCursorBottom     Command = "view.cursorBottom"
)

// Edit commands. They route through the multi-cursor edit ordering.
const (
	CmdEditInsert        Command = "edit.insert" // Args.Text
	CmdEditBackspace     Command = "edit.backspace"
	CmdEditDeleteForward Command = "edit.deleteForward"
)

// Modifiers carry the modifier state of the input that produced a command.
type Modifiers struct {
	// Shift turns motions into selection extensions.
	Shift bool
}

// Args carries command arguments. Only the fields a command documents
// are read.
type Args struct {
	// Position is a document position, e.g. from a pointer event.
	Position *buffer.Position
	// Index is a cursor index.
	Index int
	// Delta is a scroll amount.
	Delta int
	// Lines and Columns are a viewport size.
	Lines, Columns int
	// Text is text to insert.
	Text string
}

// Action is one command invocation.
type Action struct {
	Command   Command
	Modifiers Modifiers
	Args      Args
}

// String returns a short description of the action for logs.
func (a Action) String() string {
	s := string(a.Command)
	if a.Modifiers.Shift {
		s = "shift+" + s
	}
	if a.Args.Position != nil {
		s += fmt.Sprintf(" @%s", *a.Args.Position)
	}
	return s
}

// Do builds an action without arguments.
func Do(cmd Command) Action {
	return Action{Command: cmd}
}

// Extend builds a shifted action without arguments.
func Extend(cmd Command) Action {
	return Action{Command: cmd, Modifiers: Modifiers{Shift: true}}
}

// At builds an action targeting p.
func At(cmd Command, p buffer.Position) Action {
	return Action{Command: cmd, Args: Args{Position: &p}}
}
