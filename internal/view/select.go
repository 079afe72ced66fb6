package view

import (
	"github.com/dshills/cursorcore/internal/engine/buffer"
	"github.com/dshills/cursorcore/internal/engine/cursor"
	"github.com/dshills/cursorcore/internal/engine/motion"
)

// SelectWord selects the word under every cursor, then merges overlapping
// selections. Cursors on whitespace or empty lines are left unchanged.
func (s *State) SelectWord(r buffer.Reader) {
	s.clearHistory()
	s.occ = nil
	s.cursors.Map(func(_ int, p cursor.Pair) cursor.Pair {
		if w, ok := motion.WordAt(r, p.Position()); ok {
			return cursor.PairFromSelection(cursor.NewRangeSelection(w))
		}
		return p
	})
	s.cursors.MergeOverlapping()
	s.reveal(r, s.settings.Reveal)
}

// SelectLine selects the line under every cursor including its line break,
// then merges overlapping selections.
func (s *State) SelectLine(r buffer.Reader) {
	s.clearHistory()
	s.occ = nil
	s.cursors.Map(func(_ int, p cursor.Pair) cursor.Pair {
		return cursor.PairFromSelection(cursor.NewRangeSelection(motion.LineRange(r, p.Position().Line)))
	})
	s.cursors.MergeOverlapping()
	s.reveal(r, s.settings.Reveal)
}

// SelectAll replaces every pair with one selection over the whole document.
func (s *State) SelectAll(r buffer.Reader) {
	s.clearHistory()
	s.occ = nil
	s.selectAll(r)
	s.reveal(r, s.settings.Reveal)
}

func (s *State) selectAll(r buffer.Reader) {
	s.cursors.Reset(cursor.PairFromSelection(cursor.NewRangeSelection(motion.DocumentRange(r))))
}

// ClearSelection collapses the primary selection onto its cursor.
func (s *State) ClearSelection() {
	s.clearHistory()
	s.occ = nil
	s.cursors.SetActivePair(s.cursors.Active().Collapse())
}

// ExpandSelection grows every selection one step up the ladder
// cursor, word, line, document. If any pair would reach the whole document,
// all pairs collapse into a single document selection. The previous pairs
// are pushed onto the history for ShrinkSelection. Nothing happens when no
// selection can grow, as on an empty document.
func (s *State) ExpandSelection(r buffer.Reader) {
	pairs := s.cursors.Pairs()
	next := make([]cursor.Pair, len(pairs))
	grows := false
	for i, p := range pairs {
		rng, all := expandRange(r, p.Selection)
		if all {
			if len(pairs) == 1 && p.Selection.Range() == motion.DocumentRange(r) {
				return
			}
			s.pushHistory()
			s.occ = nil
			s.selectAll(r)
			s.reveal(r, s.settings.Reveal)
			return
		}
		grows = grows || rng != p.Selection.Range()
		next[i] = cursor.PairFromSelection(cursor.NewRangeSelection(rng))
	}
	if !grows {
		return
	}

	s.pushHistory()
	s.occ = nil
	s.cursors.Replace(next, s.cursors.ActiveIndex())
	s.cursors.MergeOverlapping()
	s.reveal(r, s.settings.Reveal)
}

// expandRange returns the next range up the ladder from sel, or true when
// the next step is the whole document.
func expandRange(r buffer.Reader, sel cursor.Selection) (buffer.Range, bool) {
	rng := sel.Range()
	if rng.IsEmpty() {
		if w, ok := motion.WordAt(r, sel.Head); ok {
			return w, false
		}
		return motion.LineRange(r, sel.Head.Line), false
	}

	// A line selection is checked first: a line holding a single word
	// is both.
	line := motion.LineRange(r, rng.Start.Line)
	if rng == line {
		return buffer.Range{}, true
	}
	if w, ok := motion.WordAt(r, rng.Start); ok && w == rng {
		return line, false
	}
	if rng.IsSingleLine() {
		return line, false
	}
	return buffer.Range{}, true
}

// ShrinkSelection restores the pairs saved by the last ExpandSelection.
// With no history it collapses the primary selection.
func (s *State) ShrinkSelection(r buffer.Reader) {
	n := len(s.history)
	if n == 0 {
		s.cursors.SetActivePair(s.cursors.Active().Collapse())
		return
	}
	prev := s.history[n-1]
	s.history = s.history[:n-1]
	s.occ = nil
	s.cursors.Replace(prev.pairs, prev.active)
	s.reveal(r, s.settings.Reveal)
}
