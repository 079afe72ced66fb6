package buffer

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// Edit represents a text edit operation.
// It specifies a range to replace and the new text.
type Edit struct {
	Range   Range  // The range to replace
	NewText string // The replacement text, may span lines
}

// NewEdit creates a new Edit.
func NewEdit(r Range, newText string) Edit {
	return Edit{Range: r, NewText: newText}
}

// NewInsert creates an Edit that inserts text at a position.
func NewInsert(at Position, text string) Edit {
	return Edit{Range: Range{Start: at, End: at}, NewText: text}
}

// NewDelete creates an Edit that deletes a range of text.
func NewDelete(r Range) Edit {
	return Edit{Range: r}
}

// String returns a human-readable representation of the edit.
func (e Edit) String() string {
	if e.Range.IsEmpty() {
		return fmt.Sprintf("Insert(%s, %q)", e.Range.Start, e.NewText)
	}
	if e.NewText == "" {
		return fmt.Sprintf("Delete%s", e.Range)
	}
	return fmt.Sprintf("Replace%s with %q", e.Range, e.NewText)
}

// IsInsert returns true if this is a pure insertion (empty range).
func (e Edit) IsInsert() bool {
	return e.Range.IsEmpty() && e.NewText != ""
}

// IsDelete returns true if this is a pure deletion (empty replacement).
func (e Edit) IsDelete() bool {
	return !e.Range.IsEmpty() && e.NewText == ""
}

// IsReplace returns true if this replaces existing text with new text.
func (e Edit) IsReplace() bool {
	return !e.Range.IsEmpty() && e.NewText != ""
}

// IsNoOp returns true if this edit does nothing.
func (e Edit) IsNoOp() bool {
	return e.Range.IsEmpty() && e.NewText == ""
}

// InsertedEnd returns the position just after the new text once the edit
// has been applied.
func (e Edit) InsertedEnd() Position {
	lines := strings.Split(e.NewText, "\n")
	if len(lines) == 1 {
		return Position{
			Line:   e.Range.Start.Line,
			Column: e.Range.Start.Column + CharCount(e.NewText),
		}
	}
	return Position{
		Line:   e.Range.Start.Line + len(lines) - 1,
		Column: CharCount(lines[len(lines)-1]),
	}
}

// Translate maps a position recorded before the edit to where the same
// character sits after it.
//
// Translation rules:
//   - Position before the edit: unchanged
//   - Position at or after the edit's end: shifted by the edit's delta
//     (an insertion exactly at the position pushes it right)
//   - Position inside the replaced range: moved to the end of the new text
func (e Edit) Translate(p Position) Position {
	if e.Range.End.Compare(p) <= 0 {
		return e.shift(p)
	}
	if e.Range.Start.Compare(p) >= 0 {
		return p
	}
	return e.InsertedEnd()
}

// TranslateSticky is like Translate, except that when sticky is true a pure
// insertion exactly at p leaves p in front of the inserted text.
func (e Edit) TranslateSticky(p Position, sticky bool) Position {
	if sticky && e.Range.IsEmpty() && e.Range.Start == p {
		return p
	}
	return e.Translate(p)
}

// shift moves a position at or after the edit's end by the edit's delta.
func (e Edit) shift(p Position) Position {
	end := e.InsertedEnd()
	if p.Line == e.Range.End.Line {
		return Position{
			Line:   end.Line,
			Column: end.Column + p.Column - e.Range.End.Column,
		}
	}
	return Position{
		Line:   p.Line + end.Line - e.Range.End.Line,
		Column: p.Column,
	}
}

// CharCount returns the number of characters (grapheme clusters) in s.
func CharCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}
