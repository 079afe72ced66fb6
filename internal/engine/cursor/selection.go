package cursor

import (
	"fmt"

	"github.com/dshills/cursorcore/internal/engine/buffer"
)

// Range is an alias for buffer.Range for convenience.
type Range = buffer.Range

// Selection represents a range of selected text.
// Anchor is where the selection started; Head is the current cursor position.
// When Anchor == Head, this represents a cursor with no selection.
// Selection is an immutable value type.
type Selection struct {
	Anchor Position // Where selection started
	Head   Position // Current cursor position (where typing occurs)
}

// NewSelection creates a selection from anchor to head.
func NewSelection(anchor, head Position) Selection {
	return Selection{Anchor: anchor, Head: head}
}

// NewCursorSelection creates a selection representing just a cursor (no extent).
func NewCursorSelection(p Position) Selection {
	return Selection{Anchor: p, Head: p}
}

// NewRangeSelection creates a forward selection covering the given range.
func NewRangeSelection(r Range) Selection {
	return Selection{Anchor: r.Start, Head: r.End}
}

// IsEmpty returns true if the selection has no extent (just a cursor).
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Head
}

// Range returns the selection as a range (always Start <= End).
func (s Selection) Range() Range {
	return Range{Start: s.Start(), End: s.End()}
}

// Start returns the lower bound of the selection.
func (s Selection) Start() Position {
	return buffer.MinPosition(s.Anchor, s.Head)
}

// End returns the upper bound of the selection.
func (s Selection) End() Position {
	return buffer.MaxPosition(s.Anchor, s.Head)
}

// IsForward returns true if the selection extends forward (head >= anchor).
func (s Selection) IsForward() bool {
	return !s.Head.Before(s.Anchor)
}

// IsBackward returns true if the selection extends backward (head < anchor).
func (s Selection) IsBackward() bool {
	return s.Head.Before(s.Anchor)
}

// Extend returns a new selection with the head moved to p.
// The anchor remains fixed.
func (s Selection) Extend(p Position) Selection {
	return Selection{Anchor: s.Anchor, Head: p}
}

// MoveTo returns a new collapsed selection (cursor) at p.
func (s Selection) MoveTo(p Position) Selection {
	return NewCursorSelection(p)
}

// Collapse collapses the selection to a cursor at the head.
func (s Selection) Collapse() Selection {
	return NewCursorSelection(s.Head)
}

// CollapseToStart collapses the selection to its start position.
func (s Selection) CollapseToStart() Selection {
	return NewCursorSelection(s.Start())
}

// CollapseToEnd collapses the selection to its end position.
func (s Selection) CollapseToEnd() Selection {
	return NewCursorSelection(s.End())
}

// Flip returns a selection with anchor and head swapped.
func (s Selection) Flip() Selection {
	return Selection{Anchor: s.Head, Head: s.Anchor}
}

// Normalize returns a forward selection (anchor <= head).
func (s Selection) Normalize() Selection {
	return Selection{Anchor: s.Start(), Head: s.End()}
}

// Contains returns true if p is within the selection.
// For empty selections (cursors), this always returns false.
func (s Selection) Contains(p Position) bool {
	return s.Range().Contains(p)
}

// ContainsInclusive returns true if p is within [start, end].
func (s Selection) ContainsInclusive(p Position) bool {
	return p.Compare(s.Start()) >= 0 && p.Compare(s.End()) <= 0
}

// Overlaps returns true if this selection overlaps with another.
func (s Selection) Overlaps(other Selection) bool {
	return s.Range().Overlaps(other.Range())
}

// Touches returns true if selections overlap or are adjacent.
func (s Selection) Touches(other Selection) bool {
	return s.Range().Touches(other.Range())
}

// Merge merges two overlapping or adjacent selections into one.
// The result is always forward, with the head at the merged end.
func (s Selection) Merge(other Selection) Selection {
	return NewRangeSelection(s.Range().Union(other.Range()))
}

// Clamp returns a selection with both ends clamped to r.
func (s Selection) Clamp(r buffer.Reader) Selection {
	return Selection{
		Anchor: buffer.Clamp(r, s.Anchor),
		Head:   buffer.Clamp(r, s.Head),
	}
}

// String returns a string representation of the selection.
func (s Selection) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("Cursor%s", s.Head)
	}
	dir := "→"
	if s.IsBackward() {
		dir = "←"
	}
	return fmt.Sprintf("Selection(%s%s%s)", s.Anchor, dir, s.Head)
}

// Equals returns true if two selections have the same anchor and head.
func (s Selection) Equals(other Selection) bool {
	return s.Anchor == other.Anchor && s.Head == other.Head
}

// SameRange returns true if two selections cover the same range,
// regardless of direction.
func (s Selection) SameRange(other Selection) bool {
	return s.Start() == other.Start() && s.End() == other.End()
}
