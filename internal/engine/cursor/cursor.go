package cursor

import (
	"fmt"

	"github.com/dshills/cursorcore/internal/engine/buffer"
)

// Position is an alias for buffer.Position for convenience.
type Position = buffer.Position

// Cursor represents an insertion point in the buffer.
// Cursor is an immutable value type.
type Cursor struct {
	Line   int
	Column int

	desired    int
	hasDesired bool
}

// NewCursor creates a cursor at the given line and column.
func NewCursor(line, column int) Cursor {
	if line < 0 {
		line = 0
	}
	if column < 0 {
		column = 0
	}
	return Cursor{Line: line, Column: column}
}

// At creates a cursor at the given position.
func At(p Position) Cursor {
	return NewCursor(p.Line, p.Column)
}

// Position returns the cursor's document position.
func (c Cursor) Position() Position {
	return Position{Line: c.Line, Column: c.Column}
}

// DesiredColumn returns the column vertical motion is aiming for, if any.
func (c Cursor) DesiredColumn() (int, bool) {
	return c.desired, c.hasDesired
}

// WithDesiredColumn returns a copy remembering column as the vertical target.
func (c Cursor) WithDesiredColumn(column int) Cursor {
	c.desired = column
	c.hasDesired = true
	return c
}

// ClearDesiredColumn returns a copy with no vertical target.
func (c Cursor) ClearDesiredColumn() Cursor {
	c.desired = 0
	c.hasDesired = false
	return c
}

// TargetColumn returns the desired column if set, else the current column.
func (c Cursor) TargetColumn() int {
	if c.hasDesired {
		return c.desired
	}
	return c.Column
}

// MoveTo returns a new cursor at p. The desired column is cleared.
func (c Cursor) MoveTo(p Position) Cursor {
	return At(p)
}

// MoveVertical returns a cursor at p that keeps (or captures) the vertical
// target column of c.
func (c Cursor) MoveVertical(p Position) Cursor {
	return At(p).WithDesiredColumn(c.TargetColumn())
}

// Clamp returns a cursor clamped to positions that exist in r.
// The desired column is kept.
func (c Cursor) Clamp(r buffer.Reader) Cursor {
	p := buffer.Clamp(r, c.Position())
	c.Line, c.Column = p.Line, p.Column
	return c
}

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	if c.hasDesired {
		return fmt.Sprintf("Cursor(%d:%d want %d)", c.Line, c.Column, c.desired)
	}
	return fmt.Sprintf("Cursor(%d:%d)", c.Line, c.Column)
}

// Equals returns true if two cursors are at the same position.
func (c Cursor) Equals(other Cursor) bool {
	return c.Line == other.Line && c.Column == other.Column
}

// Compare returns -1 if c < other, 0 if c == other, 1 if c > other.
func (c Cursor) Compare(other Cursor) int {
	return c.Position().Compare(other.Position())
}

// Before returns true if c is before other.
func (c Cursor) Before(other Cursor) bool {
	return c.Compare(other) < 0
}

// After returns true if c is after other.
func (c Cursor) After(other Cursor) bool {
	return c.Compare(other) > 0
}

// ToSelection converts this cursor to a selection with no extent.
func (c Cursor) ToSelection() Selection {
	return NewCursorSelection(c.Position())
}
