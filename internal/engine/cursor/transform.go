package cursor

import (
	"github.com/dshills/cursorcore/internal/engine/buffer"
)

// Edit is an alias for buffer.Edit for convenience.
type Edit = buffer.Edit

// TransformPosition updates a position after an edit.
//
// Transformation rules:
//   - If edit is entirely before the position: shift by the edit's delta
//   - If edit starts at or after the position: unchanged
//   - If edit spans the position: move to end of new text
func TransformPosition(p Position, edit Edit) Position {
	return edit.Translate(p)
}

// TransformCursor updates a cursor after an edit.
// The desired column is dropped when the cursor moves.
func TransformCursor(c Cursor, edit Edit) Cursor {
	p := edit.Translate(c.Position())
	if p == c.Position() {
		return c
	}
	return At(p)
}

// TransformSelection updates a selection after an edit.
// Both anchor and head are transformed independently.
func TransformSelection(sel Selection, edit Edit) Selection {
	return Selection{
		Anchor: edit.Translate(sel.Anchor),
		Head:   edit.Translate(sel.Head),
	}
}

// TransformPair updates a pair after an edit, keeping the head on the cursor.
func TransformPair(p Pair, edit Edit) Pair {
	c := TransformCursor(p.Cursor, edit)
	sel := TransformSelection(p.Selection, edit)
	sel.Head = c.Position()
	return Pair{Cursor: c, Selection: sel}
}

// TranslateSet updates every pair except skip after an edit. Pass skip = -1
// to translate all pairs. The edited pair itself is normally positioned by
// the caller from the edit result.
func TranslateSet(s *Set, edit Edit, skip int) {
	for i := range s.pairs {
		if i != skip {
			s.pairs[i] = TransformPair(s.pairs[i], edit)
		}
	}
}
