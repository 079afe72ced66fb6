package motion

import (
	"fmt"

	"github.com/dshills/cursorcore/internal/engine/buffer"
	"github.com/dshills/cursorcore/internal/engine/cursor"
)

// Kind identifies a motion.
type Kind uint8

// Motion kinds.
const (
	CharLeft Kind = iota
	CharRight
	LineUp
	LineDown
	WordLeft
	WordRight
	LineStart
	LineEnd
	LineStartSmart
	LineEndSmart
	PageUp
	PageDown
	DocumentStart
	DocumentEnd
)

var kindNames = [...]string{
	CharLeft:       "charLeft",
	CharRight:      "charRight",
	LineUp:         "lineUp",
	LineDown:       "lineDown",
	WordLeft:       "wordLeft",
	WordRight:      "wordRight",
	LineStart:      "lineStart",
	LineEnd:        "lineEnd",
	LineStartSmart: "lineStartSmart",
	LineEndSmart:   "lineEndSmart",
	PageUp:         "pageUp",
	PageDown:       "pageDown",
	DocumentStart:  "documentStart",
	DocumentEnd:    "documentEnd",
}

// String returns the motion name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// ParseKind returns the motion with the given name.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// Kinds returns every motion kind.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// Backward reports whether the motion heads toward the document start.
// A selection collapsed by a backward motion collapses to its start.
func (k Kind) Backward() bool {
	switch k {
	case CharLeft, LineUp, WordLeft, LineStart, LineStartSmart, PageUp, DocumentStart:
		return true
	}
	return false
}

// Vertical reports whether the motion keeps the desired column.
func (k Kind) Vertical() bool {
	switch k {
	case LineUp, LineDown, PageUp, PageDown:
		return true
	}
	return false
}

// Options tune motions that depend on the view.
type Options struct {
	// PageSize is the number of lines PageUp/PageDown travel.
	// Values below 1 are treated as 1.
	PageSize int
}

// PageSize returns the page travel for a viewport showing visibleLines with
// overlap lines of context kept on screen.
func PageSize(visibleLines, overlap int) int {
	return max(visibleLines-overlap, 1)
}

// Apply returns c moved by the motion k over r.
func Apply(r buffer.Reader, c cursor.Cursor, k Kind, opts Options) cursor.Cursor {
	c = c.Clamp(r)
	line, col := c.Line, c.Column

	switch k {
	case CharLeft:
		return c.MoveTo(charLeft(r, line, col))
	case CharRight:
		return c.MoveTo(charRight(r, line, col))
	case LineUp:
		if line == 0 {
			return c
		}
		return vertical(r, c, line-1)
	case LineDown:
		if line >= buffer.LastLine(r) {
			return c
		}
		return vertical(r, c, line+1)
	case PageUp:
		return vertical(r, c, max(line-max(opts.PageSize, 1), 0))
	case PageDown:
		return vertical(r, c, min(line+max(opts.PageSize, 1), buffer.LastLine(r)))
	case WordLeft:
		return c.MoveTo(wordLeft(r, line, col))
	case WordRight:
		return c.MoveTo(wordRight(r, line, col))
	case LineStart:
		return c.MoveTo(buffer.Pos(line, 0))
	case LineEnd:
		return c.MoveTo(buffer.Pos(line, r.LineLength(line)))
	case LineStartSmart:
		return c.MoveTo(buffer.Pos(line, smartHome(r, line, col)))
	case LineEndSmart:
		return c.MoveTo(buffer.Pos(line, smartEnd(r, line, col)))
	case DocumentStart:
		return c.MoveTo(buffer.Pos(0, 0))
	case DocumentEnd:
		return c.MoveTo(buffer.DocumentEnd(r))
	}
	return c
}

// vertical moves to line aiming for the cursor's target column.
func vertical(r buffer.Reader, c cursor.Cursor, line int) cursor.Cursor {
	col := buffer.ClampColumn(r, line, c.TargetColumn())
	return c.MoveVertical(buffer.Pos(line, col))
}

func charLeft(r buffer.Reader, line, col int) buffer.Position {
	if col > 0 {
		return buffer.Pos(line, col-1)
	}
	if line > 0 {
		return buffer.Pos(line-1, r.LineLength(line-1))
	}
	return buffer.Pos(0, 0)
}

func charRight(r buffer.Reader, line, col int) buffer.Position {
	if col < r.LineLength(line) {
		return buffer.Pos(line, col+1)
	}
	if line < buffer.LastLine(r) {
		return buffer.Pos(line+1, 0)
	}
	return buffer.Pos(line, col)
}

// smartHome toggles between column 0 and the first non-whitespace column.
func smartHome(r buffer.Reader, line, col int) int {
	first := r.FirstNonWhitespaceColumn(line)
	switch col {
	case 0:
		return first
	case first:
		return 0
	default:
		return first
	}
}

// smartEnd toggles between the column after the last non-whitespace
// character and the line length.
func smartEnd(r buffer.Reader, line, col int) int {
	last := r.LastNonWhitespaceColumn(line)
	if col == last {
		return r.LineLength(line)
	}
	return last
}
