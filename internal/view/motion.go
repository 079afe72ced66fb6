package view

import (
	"github.com/dshills/cursorcore/internal/engine/buffer"
	"github.com/dshills/cursorcore/internal/engine/cursor"
	"github.com/dshills/cursorcore/internal/engine/motion"
	"github.com/dshills/cursorcore/internal/renderer/viewport"
)

// MoveAll applies motion k to every pair.
//
// In Move mode a pair with a selection collapses to the selection's start
// (backward motions) or end (forward motions) and does not move further;
// other pairs move and stay collapsed. In Extend mode the head moves and
// the anchor stays and occurrence pairs stay recorded at their new heads.
// Cursors that converge are deduplicated, keeping the lowest index.
//
// Page motions also shift the viewport by a page.
func (s *State) MoveAll(r buffer.Reader, k motion.Kind, mode SelectionMode) {
	s.clearHistory()
	if mode == Move {
		s.occ = nil
	}

	opts := motion.Options{PageSize: s.viewport.PageSize(s.settings.PageOverlap)}
	backward := k.Backward()

	tracked := s.occurrenceIndices()
	s.cursors.Map(func(_ int, p cursor.Pair) cursor.Pair {
		if mode == Extend {
			return p.ExtendTo(motion.Apply(r, p.Cursor, k, opts))
		}
		if p.HasSelection() {
			if backward {
				return cursor.PairAt(p.Selection.Start())
			}
			return cursor.PairAt(p.Selection.End())
		}
		return p.MoveTo(motion.Apply(r, p.Cursor, k, opts))
	})
	s.retargetOccurrences(tracked)
	s.cursors.Deduplicate()
	s.pruneOccurrences()

	lineCount := buffer.LineCount(r)
	switch k {
	case motion.PageUp:
		s.viewport = s.viewport.PageUp(s.settings.PageOverlap, lineCount)
	case motion.PageDown:
		s.viewport = s.viewport.PageDown(s.settings.PageOverlap, lineCount)
	}
	s.reveal(r, s.revealFor(k))
}

// revealFor picks the reveal mode after motion k: line motions up reveal
// at the top of the safe zone and line motions down at the bottom.
func (s *State) revealFor(k motion.Kind) viewport.RevealMode {
	switch k {
	case motion.LineUp:
		return viewport.RevealTop
	case motion.LineDown:
		return viewport.RevealBottom
	}
	return s.settings.Reveal
}

// SetCursorPosition moves the primary cursor to p, clamped to the
// document, and collapses its selection. Other cursors are kept unless
// they sit at p.
func (s *State) SetCursorPosition(r buffer.Reader, p buffer.Position) {
	s.clearHistory()
	s.occ = nil

	p = buffer.Clamp(r, p)
	s.cursors.SetActivePair(cursor.PairAt(p))
	s.dedupKeepingActive()
	s.reveal(r, s.settings.Reveal)
}

// ExtendSelectionToPosition collapses to the primary pair and extends its
// selection head to p. The anchor stays where it was.
func (s *State) ExtendSelectionToPosition(r buffer.Reader, p buffer.Position) {
	s.clearHistory()
	s.occ = nil

	p = buffer.Clamp(r, p)
	s.cursors.CollapseToActive()
	s.cursors.SetActivePair(s.cursors.Active().ExtendTo(cursor.At(p)))
	s.reveal(r, s.settings.Reveal)
}

// dedupKeepingActive drops pairs sharing the primary cursor's position
// before the usual deduplication, so the primary pair survives.
func (s *State) dedupKeepingActive() {
	active := s.cursors.ActiveIndex()
	pos := s.cursors.Active().Position()
	for i := s.cursors.Len() - 1; i >= 0; i-- {
		if i != active && s.cursors.Get(i).Position() == pos {
			s.cursors.Remove(i)
			if i < active {
				active--
			}
		}
	}
	s.cursors.Deduplicate()
}
