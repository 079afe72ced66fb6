package view

import (
	"github.com/dshills/cursorcore/internal/engine/buffer"
	"github.com/dshills/cursorcore/internal/engine/cursor"
)

// AddCursorAbove adds a cursor one line above the top-most cursor at the
// same column, clamped to that line. The new cursor becomes primary.
// Nothing happens on the first line.
func (s *State) AddCursorAbove(r buffer.Reader) bool {
	top := s.extremeCursor(func(a, b cursor.Cursor) bool { return a.Line < b.Line })
	if top.Line == 0 {
		return false
	}
	return s.addAdjacent(r, top, top.Line-1)
}

// AddCursorBelow adds a cursor one line below the bottom-most cursor at the
// same column, clamped to that line. The new cursor becomes primary.
// Nothing happens on the last line.
func (s *State) AddCursorBelow(r buffer.Reader) bool {
	bottom := s.extremeCursor(func(a, b cursor.Cursor) bool { return a.Line > b.Line })
	if bottom.Line >= buffer.LastLine(r) {
		return false
	}
	return s.addAdjacent(r, bottom, bottom.Line+1)
}

// extremeCursor returns the first cursor for which better beats all others.
func (s *State) extremeCursor(better func(a, b cursor.Cursor) bool) cursor.Cursor {
	cursors := s.cursors.Cursors()
	best := cursors[0]
	for _, c := range cursors[1:] {
		if better(c, best) {
			best = c
		}
	}
	return best
}

func (s *State) addAdjacent(r buffer.Reader, from cursor.Cursor, line int) bool {
	p := buffer.Pos(line, buffer.ClampColumn(r, line, from.Column))
	if !s.AddCursorAt(r, p) {
		return false
	}
	s.cursors.SetActive(s.cursors.IndexAt(p))
	s.reveal(r, s.settings.Reveal)
	return true
}

// AddCursorAt adds a collapsed cursor at p, clamped to the document.
// Pairs are kept in document order. Returns false if a cursor is already
// there.
func (s *State) AddCursorAt(r buffer.Reader, p buffer.Position) bool {
	p = buffer.Clamp(r, p)
	if s.cursors.IndexAt(p) >= 0 {
		return false
	}
	s.occ = nil
	s.cursors.Add(cursor.PairAt(p))
	s.cursors.SortByPosition()
	return true
}

// ToggleCursorAt removes the cursor at p if there is one and it is not the
// only cursor; otherwise it adds a cursor at p. Returns true if a cursor was
// added.
func (s *State) ToggleCursorAt(r buffer.Reader, p buffer.Position) bool {
	p = buffer.Clamp(r, p)
	if i := s.cursors.IndexAt(p); i >= 0 {
		if s.cursors.Remove(i) {
			s.occ = nil
		}
		return false
	}
	return s.AddCursorAt(r, p)
}

// RemoveCursor removes the pair at index unless it is the last one.
func (s *State) RemoveCursor(index int) bool {
	if !s.cursors.Remove(index) {
		return false
	}
	s.occ = nil
	return true
}

// CollapseToPrimary drops every pair but the primary one.
func (s *State) CollapseToPrimary() {
	s.clearHistory()
	s.occ = nil
	s.cursors.CollapseToActive()
}
