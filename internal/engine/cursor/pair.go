package cursor

import "fmt"

// Pair couples a cursor with its selection. The selection head always sits
// at the cursor position; the constructors and methods maintain that.
type Pair struct {
	Cursor    Cursor
	Selection Selection
}

// PairAt returns a pair with a cursor and an empty selection at p.
func PairAt(p Position) Pair {
	return Pair{Cursor: At(p), Selection: NewCursorSelection(p)}
}

// PairFromSelection returns a pair whose cursor sits at sel.Head.
func PairFromSelection(sel Selection) Pair {
	return Pair{Cursor: At(sel.Head), Selection: sel}
}

// Position returns the cursor position.
func (p Pair) Position() Position {
	return p.Cursor.Position()
}

// HasSelection returns true if the selection is not empty.
func (p Pair) HasSelection() bool {
	return !p.Selection.IsEmpty()
}

// MoveTo moves the cursor to c and collapses the selection onto it.
func (p Pair) MoveTo(c Cursor) Pair {
	return Pair{Cursor: c, Selection: NewCursorSelection(c.Position())}
}

// ExtendTo moves the cursor to c and drags the selection head along,
// leaving the anchor in place.
func (p Pair) ExtendTo(c Cursor) Pair {
	return Pair{Cursor: c, Selection: p.Selection.Extend(c.Position())}
}

// Select replaces the selection and puts the cursor at its head.
func (p Pair) Select(sel Selection) Pair {
	return PairFromSelection(sel)
}

// Collapse drops the selection, keeping the cursor where it is.
func (p Pair) Collapse() Pair {
	return Pair{Cursor: p.Cursor, Selection: NewCursorSelection(p.Position())}
}

// IsConsistent reports whether the selection head equals the cursor position.
func (p Pair) IsConsistent() bool {
	return p.Selection.Head == p.Position()
}

// String returns a string representation of the pair.
func (p Pair) String() string {
	if p.Selection.IsEmpty() {
		return p.Cursor.String()
	}
	return fmt.Sprintf("%s %s", p.Cursor, p.Selection)
}
