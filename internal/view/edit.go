package view

import (
	"fmt"

	"github.com/dshills/cursorcore/internal/engine/buffer"
	"github.com/dshills/cursorcore/internal/engine/cursor"
	"github.com/dshills/cursorcore/internal/renderer/viewport"
)

// Editor applies edits to the text store. *buffer.Buffer implements it.
type Editor interface {
	// ApplyEdit performs edit and returns the position after the new text.
	ApplyEdit(edit buffer.Edit) (buffer.Position, error)
}

// EditFunc returns the edit to perform for the pair at index, or false to
// leave the pair alone.
type EditFunc func(index int, p cursor.Pair) (buffer.Edit, bool)

// ApplyEdits performs one edit per pair through ed.
//
// Overlapping selections are merged first and a rectangle drag in
// progress ends, keeping the current pairs. Pairs are then visited in
// descending position order. After each edit the
// edited pair is collapsed at the end of its new text and every other pair
// is translated by the edit, so pairs still waiting are never disturbed.
// Cursors that converge are deduplicated. On error, edits already applied
// stay applied and the pairs reflect them.
func (s *State) ApplyEdits(r buffer.Reader, ed Editor, fn EditFunc) error {
	s.clearHistory()
	s.occ = nil
	s.rect = nil
	s.cursors.MergeOverlapping()

	var err error
	for _, i := range s.cursors.EditOrder() {
		edit, ok := fn(i, s.cursors.Get(i))
		if !ok {
			continue
		}
		var end buffer.Position
		end, err = ed.ApplyEdit(edit)
		if err != nil {
			err = fmt.Errorf("edit %s at cursor %d: %w", edit, i, err)
			break
		}
		cursor.TranslateSet(s.cursors, edit, i)
		s.cursors.Set(i, cursor.PairAt(end))
	}

	s.cursors.Deduplicate()
	s.reveal(r, viewport.RevealMinimal)
	return err
}

// InsertText inserts text at every cursor, replacing any selection.
func (s *State) InsertText(r buffer.Reader, ed Editor, text string) error {
	return s.ApplyEdits(r, ed, func(_ int, p cursor.Pair) (buffer.Edit, bool) {
		return buffer.NewEdit(p.Selection.Range(), text), true
	})
}

// DeleteSelections deletes the text of every non-empty selection.
func (s *State) DeleteSelections(r buffer.Reader, ed Editor) error {
	return s.ApplyEdits(r, ed, func(_ int, p cursor.Pair) (buffer.Edit, bool) {
		if !p.HasSelection() {
			return buffer.Edit{}, false
		}
		return buffer.NewDelete(p.Selection.Range()), true
	})
}
