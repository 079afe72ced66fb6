package view

import (
	"slices"

	"github.com/dshills/cursorcore/internal/engine/buffer"
	"github.com/dshills/cursorcore/internal/engine/cursor"
	"github.com/dshills/cursorcore/internal/engine/motion"
)

// Finder is the host's search facility. *buffer.Buffer implements it.
type Finder interface {
	TextRange(r buffer.Range) string
	FindNext(text string, from buffer.Position) (buffer.Range, bool)
	FindAll(text string) []buffer.Range
}

// occurrences records the pairs added by occurrence commands, oldest first,
// by cursor position. Commands that move pairs keep it in step or drop it.
type occurrences struct {
	text  string
	added []buffer.Position
	next  buffer.Position
}

// OccurrenceCount returns how many pairs UnselectOccurrence can remove.
func (s *State) OccurrenceCount() int {
	if s.occ == nil {
		return 0
	}
	return len(s.occ.added)
}

// searchText returns the text occurrence commands look for: the primary
// selection, or the word under the primary cursor. The second result is
// the word's range when the primary selection was empty.
func (s *State) searchText(r buffer.Reader, f Finder) (string, buffer.Range, bool) {
	primary := s.cursors.Active()
	if primary.HasSelection() {
		return f.TextRange(primary.Selection.Range()), buffer.Range{}, false
	}
	if w, ok := motion.WordAt(r, primary.Position()); ok {
		return f.TextRange(w), w, true
	}
	return "", buffer.Range{}, false
}

// SelectNextOccurrence adds a pair at the next match of the primary
// selection's text. With an empty primary selection it first selects the
// word under the cursor and stops. Matches already holding a cursor are
// skipped. Returns true if the pairs changed.
func (s *State) SelectNextOccurrence(r buffer.Reader, f Finder) bool {
	s.clearHistory()

	text, word, selectedWord := s.searchText(r, f)
	if selectedWord {
		s.cursors.SetActivePair(cursor.PairFromSelection(cursor.NewRangeSelection(word)))
		s.reveal(r, s.settings.Reveal)
		return true
	}
	if text == "" {
		return false
	}

	from := s.cursors.Active().Selection.End()
	if s.occ != nil && s.occ.text == text {
		from = s.occ.next
	}

	// Each already-selected match holds one cursor, so after Len()+1 hits
	// the search has wrapped.
	for i, hits := 0, s.cursors.Len()+1; i < hits; i++ {
		m, ok := f.FindNext(text, from)
		if !ok {
			return false
		}
		if s.AddOccurrence(r, text, m) {
			return true
		}
		from = m.End
	}
	return false
}

// AddOccurrence adds a pair selecting rng, found by searching for text, and
// records it for UnselectOccurrence. Overlapping selections are merged
// afterwards. Returns false if rng is already selected or a cursor already
// sits at its end.
func (s *State) AddOccurrence(r buffer.Reader, text string, rng buffer.Range) bool {
	rng = buffer.NewRange(buffer.Clamp(r, rng.Start), buffer.Clamp(r, rng.End))
	if s.cursors.IndexAt(rng.End) >= 0 || slices.ContainsFunc(s.cursors.Pairs(), func(p cursor.Pair) bool {
		return p.Selection.Range() == rng
	}) {
		return false
	}

	if s.occ == nil || s.occ.text != text {
		s.occ = &occurrences{text: text}
	}
	s.occ.added = append(s.occ.added, rng.End)
	s.occ.next = rng.End

	s.cursors.Add(cursor.PairFromSelection(cursor.NewRangeSelection(rng)))
	s.cursors.MergeOverlapping()
	s.pruneOccurrences()
	s.revealPosition(r, rng.End)
	return true
}

// UnselectOccurrence removes the most recently added occurrence pair.
// It is a no-op when nothing was added; the last pair is never removed.
func (s *State) UnselectOccurrence() bool {
	if s.occ == nil || len(s.occ.added) == 0 {
		return false
	}
	n := len(s.occ.added)
	pos := s.occ.added[n-1]
	s.occ.added = s.occ.added[:n-1]
	if len(s.occ.added) == 0 {
		s.occ = nil
	}

	i := s.cursors.IndexAt(pos)
	return i >= 0 && s.cursors.Remove(i)
}

// SelectAllOccurrences replaces the pairs with one selection per match of
// the primary selection's text, or of the word under the primary cursor.
func (s *State) SelectAllOccurrences(r buffer.Reader, f Finder) bool {
	text, _, _ := s.searchText(r, f)
	if text == "" {
		return false
	}
	return s.ReplaceWithOccurrences(r, text, f.FindAll(text))
}

// ReplaceWithOccurrences replaces the pairs with one selection per range,
// each recorded as an occurrence. The match containing the old primary
// cursor becomes primary. Returns false, leaving the pairs untouched, when
// ranges is empty.
func (s *State) ReplaceWithOccurrences(r buffer.Reader, text string, ranges []buffer.Range) bool {
	if len(ranges) == 0 {
		return false
	}
	s.clearHistory()

	primary := s.cursors.Active().Position()
	pairs := make([]cursor.Pair, len(ranges))
	active := 0
	for i, rng := range ranges {
		rng = buffer.NewRange(buffer.Clamp(r, rng.Start), buffer.Clamp(r, rng.End))
		pairs[i] = cursor.PairFromSelection(cursor.NewRangeSelection(rng))
		if rng.Start.Compare(primary) <= 0 && primary.Compare(rng.End) <= 0 {
			active = i
		}
	}
	s.cursors.Replace(pairs, active)
	s.cursors.Deduplicate()
	s.cursors.MergeOverlapping()

	positions := make([]buffer.Position, 0, s.cursors.Len())
	for _, c := range s.cursors.Cursors() {
		positions = append(positions, c.Position())
	}
	s.occ = &occurrences{
		text:  text,
		added: positions,
		next:  slices.MaxFunc(positions, buffer.Position.Compare),
	}
	s.reveal(r, s.settings.Reveal)
	return true
}

// occurrenceIndices returns the pair index of each recorded position, or
// -1 where no cursor sits there.
func (s *State) occurrenceIndices() []int {
	if s.occ == nil {
		return nil
	}
	idx := make([]int, len(s.occ.added))
	for j, p := range s.occ.added {
		idx[j] = s.cursors.IndexAt(p)
	}
	return idx
}

// retargetOccurrences rewrites the record to the positions now held by the
// pairs at idx. Pairs must have moved in place since occurrenceIndices.
func (s *State) retargetOccurrences(idx []int) {
	if s.occ == nil {
		return
	}
	added := s.occ.added[:0]
	for _, i := range idx {
		if i >= 0 {
			added = append(added, s.cursors.Get(i).Position())
		}
	}
	s.occ.added = added
}

// pruneOccurrences drops recorded positions that no longer hold a cursor,
// and repeats left behind when pairs merged.
func (s *State) pruneOccurrences() {
	if s.occ == nil {
		return
	}
	seen := make(map[buffer.Position]struct{}, len(s.occ.added))
	added := s.occ.added[:0]
	for _, p := range s.occ.added {
		if _, dup := seen[p]; dup || s.cursors.IndexAt(p) < 0 {
			continue
		}
		seen[p] = struct{}{}
		added = append(added, p)
	}
	s.occ.added = added
	if len(added) == 0 {
		s.occ = nil
	}
}
