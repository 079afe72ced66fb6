// Package rectangle implements block selection: a drag between two corners
// that yields one cursor/selection pair per covered line.
//
// A drag is held in a Session. While it is in progress the caller's cursor
// set is untouched and Preview reports where cursors would land. Commit
// replaces the set with the rectangle's pairs; Cancel restores the pairs
// saved when the drag began.
package rectangle

import (
	"fmt"

	"github.com/dshills/cursorcore/internal/engine/buffer"
	"github.com/dshills/cursorcore/internal/engine/cursor"
)

// State holds the two opposite corners of a rectangle in document
// coordinates. Current is the corner under the pointer.
type State struct {
	Anchor  buffer.Position
	Current buffer.Position
}

// New returns a zero-size rectangle at p.
func New(p buffer.Position) State {
	return State{Anchor: p, Current: p}
}

// DragTo returns the rectangle with its current corner moved to p.
func (s State) DragTo(p buffer.Position) State {
	s.Current = p
	return s
}

// TopLeft returns the corner with the smallest line and column.
func (s State) TopLeft() buffer.Position {
	return buffer.Pos(min(s.Anchor.Line, s.Current.Line), min(s.Anchor.Column, s.Current.Column))
}

// BottomRight returns the corner with the largest line and column.
func (s State) BottomRight() buffer.Position {
	return buffer.Pos(max(s.Anchor.Line, s.Current.Line), max(s.Anchor.Column, s.Current.Column))
}

// Height returns the number of lines covered.
func (s State) Height() int {
	return s.BottomRight().Line - s.TopLeft().Line + 1
}

// String returns a string representation of the rectangle.
func (s State) String() string {
	return fmt.Sprintf("Rect[%s-%s]", s.TopLeft(), s.BottomRight())
}

// Update returns one pair per line between the corners. Columns are
// clamped to each line's length; lines too short for the rectangle get a
// shorter selection or a bare cursor. The cursor sits on the right edge when
// current is right of anchor, else on the left edge, and the selection
// anchor is the opposite edge.
func Update(anchor, current buffer.Position, r buffer.Reader) []cursor.Pair {
	return State{Anchor: anchor, Current: current}.Pairs(r)
}

// Pairs returns the pairs the rectangle covers in r.
func (s State) Pairs(r buffer.Reader) []cursor.Pair {
	tl, br := s.TopLeft(), s.BottomRight()
	last := buffer.LastLine(r)
	top, bottom := min(max(tl.Line, 0), last), min(max(br.Line, 0), last)
	rightward := s.Current.Column > s.Anchor.Column

	pairs := make([]cursor.Pair, 0, bottom-top+1)
	for line := top; line <= bottom; line++ {
		left := buffer.ClampColumn(r, line, tl.Column)
		right := buffer.ClampColumn(r, line, br.Column)

		head, tail := left, right
		if rightward {
			head, tail = right, left
		}
		sel := cursor.NewSelection(buffer.Pos(line, tail), buffer.Pos(line, head))
		pairs = append(pairs, cursor.PairFromSelection(sel))
	}
	return pairs
}

// Preview returns where the cursors would sit if the drag ended now: on
// every covered line at the current column, clamped to the line.
func (s State) Preview(r buffer.Reader) []buffer.Position {
	tl, br := s.TopLeft(), s.BottomRight()
	last := buffer.LastLine(r)
	top, bottom := min(max(tl.Line, 0), last), min(max(br.Line, 0), last)

	out := make([]buffer.Position, 0, bottom-top+1)
	for line := top; line <= bottom; line++ {
		out = append(out, buffer.Pos(line, buffer.ClampColumn(r, line, s.Current.Column)))
	}
	return out
}

// Contains reports whether p falls inside the rectangle's column span on a
// covered line, ignoring line lengths.
func (s State) Contains(p buffer.Position) bool {
	tl, br := s.TopLeft(), s.BottomRight()
	return p.Line >= tl.Line && p.Line <= br.Line &&
		p.Column >= tl.Column && p.Column < br.Column
}
