package cursor

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvariant is returned by Validate when a Set is inconsistent.
var ErrInvariant = errors.New("cursor invariant violated")

// Set manages multiple cursor/selection pairs.
// It always holds at least one pair; the pair at ActiveIndex is the
// primary cursor.
type Set struct {
	pairs  []Pair
	active int
}

// NewSet creates a set holding a single pair.
func NewSet(initial Pair) *Set {
	return &Set{pairs: []Pair{initial}}
}

// NewSetAt creates a set with a single cursor at p.
func NewSetAt(p Position) *Set {
	return NewSet(PairAt(p))
}

// NewSetFromPairs creates a set from a slice of pairs.
// An empty slice yields a single cursor at the origin. The active index is
// clamped into range.
func NewSetFromPairs(pairs []Pair, active int) *Set {
	s := &Set{}
	s.Replace(pairs, active)
	return s
}

// Len returns the number of pairs.
func (s *Set) Len() int {
	return len(s.pairs)
}

// IsMulti returns true if there are multiple cursors.
func (s *Set) IsMulti() bool {
	return len(s.pairs) > 1
}

// Get returns the pair at index.
// Returns the zero pair if index is out of range.
func (s *Set) Get(index int) Pair {
	if index < 0 || index >= len(s.pairs) {
		return Pair{}
	}
	return s.pairs[index]
}

// Pairs returns a copy of all pairs.
// The returned slice is safe to modify without affecting the Set.
func (s *Set) Pairs() []Pair {
	return slices.Clone(s.pairs)
}

// Cursors returns the cursors in pair order.
func (s *Set) Cursors() []Cursor {
	out := make([]Cursor, len(s.pairs))
	for i, p := range s.pairs {
		out[i] = p.Cursor
	}
	return out
}

// Selections returns the selections in pair order.
func (s *Set) Selections() []Selection {
	out := make([]Selection, len(s.pairs))
	for i, p := range s.pairs {
		out[i] = p.Selection
	}
	return out
}

// ActiveIndex returns the index of the primary pair.
func (s *Set) ActiveIndex() int {
	return s.active
}

// SetActive makes index the primary pair. Out-of-range indices are ignored.
func (s *Set) SetActive(index int) {
	if index >= 0 && index < len(s.pairs) {
		s.active = index
	}
}

// Active returns the primary pair.
func (s *Set) Active() Pair {
	return s.pairs[s.active]
}

// Set replaces the pair at index. Out-of-range indices are ignored.
func (s *Set) Set(index int, p Pair) {
	if index >= 0 && index < len(s.pairs) {
		s.pairs[index] = p
	}
}

// SetActivePair replaces the primary pair.
func (s *Set) SetActivePair(p Pair) {
	s.pairs[s.active] = p
}

// Replace swaps in a new list of pairs.
func (s *Set) Replace(pairs []Pair, active int) {
	if len(pairs) == 0 {
		s.pairs = []Pair{PairAt(Position{})}
		s.active = 0
		return
	}
	s.pairs = slices.Clone(pairs)
	s.active = min(max(active, 0), len(s.pairs)-1)
}

// Reset replaces everything with a single pair.
func (s *Set) Reset(p Pair) {
	s.pairs = []Pair{p}
	s.active = 0
}

// Add appends a pair and returns its index. Duplicates are not checked;
// call Deduplicate afterwards if needed.
func (s *Set) Add(p Pair) int {
	s.pairs = append(s.pairs, p)
	return len(s.pairs) - 1
}

// Remove removes the pair at index.
// The last remaining pair can never be removed; returns false in that case.
func (s *Set) Remove(index int) bool {
	if index < 0 || index >= len(s.pairs) || len(s.pairs) == 1 {
		return false
	}
	s.pairs = slices.Delete(s.pairs, index, index+1)
	switch {
	case s.active > index:
		s.active--
	case s.active >= len(s.pairs):
		s.active = len(s.pairs) - 1
	}
	return true
}

// IndexAt returns the index of the pair whose cursor is at p, or -1.
func (s *Set) IndexAt(p Position) int {
	return slices.IndexFunc(s.pairs, func(pair Pair) bool {
		return pair.Position() == p
	})
}

// CollapseToActive drops every pair except the primary one.
// It is a no-op when only one pair exists.
func (s *Set) CollapseToActive() {
	if len(s.pairs) > 1 {
		s.Reset(s.pairs[s.active])
	}
}

// Map applies f to each pair in place.
func (s *Set) Map(f func(index int, p Pair) Pair) {
	for i, p := range s.pairs {
		s.pairs[i] = f(i, p)
	}
}

// HasSelection returns true if any selection is non-empty (has extent).
func (s *Set) HasSelection() bool {
	return slices.ContainsFunc(s.pairs, Pair.HasSelection)
}

// CollapseAll drops every selection, keeping cursors in place.
func (s *Set) CollapseAll() {
	for i, p := range s.pairs {
		s.pairs[i] = p.Collapse()
	}
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() *Set {
	return &Set{pairs: slices.Clone(s.pairs), active: s.active}
}

// SortByPosition orders pairs by cursor position. The active index follows
// the primary pair.
func (s *Set) SortByPosition() {
	primary := s.pairs[s.active]
	slices.SortStableFunc(s.pairs, func(a, b Pair) int {
		return a.Position().Compare(b.Position())
	})
	s.active = s.IndexAt(primary.Position())
}

// Deduplicate drops pairs whose cursor shares a position with a pair at a
// lower index. Survivors keep their relative order, so index 0 is never
// dropped. If the primary pair is dropped, the survivor at its position
// becomes primary.
func (s *Set) Deduplicate() {
	if len(s.pairs) <= 1 {
		return
	}
	activePos := s.pairs[s.active].Position()
	seen := make(map[Position]struct{}, len(s.pairs))
	kept := s.pairs[:0]
	for _, p := range s.pairs {
		if _, dup := seen[p.Position()]; dup {
			continue
		}
		seen[p.Position()] = struct{}{}
		kept = append(kept, p)
	}
	s.pairs = kept
	s.active = s.IndexAt(activePos)
}

// MergeOverlapping merges selections that overlap or touch.
//
// Selections are swept in (start, end) order; a selection joins the running
// group while its start is at or before the group's end. A group of two or
// more becomes one forward selection with the cursor at its end. The result
// is in document order and the primary pair is the group that absorbed it.
func (s *Set) MergeOverlapping() {
	if len(s.pairs) <= 1 {
		return
	}
	order := make([]int, len(s.pairs))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		ra, rb := s.pairs[a].Selection.Range(), s.pairs[b].Selection.Range()
		if c := ra.Start.Compare(rb.Start); c != 0 {
			return c
		}
		return ra.End.Compare(rb.End)
	})

	merged := make([]Pair, 0, len(s.pairs))
	active := 0
	var running Pair
	size := 0
	for _, idx := range order {
		next := s.pairs[idx]
		if size > 0 && !next.Selection.Start().After(running.Selection.End()) {
			running = PairFromSelection(running.Selection.Merge(next.Selection))
			size++
		} else {
			if size > 0 {
				merged = append(merged, running)
			}
			running, size = next, 1
		}
		if idx == s.active {
			active = len(merged)
		}
	}
	merged = append(merged, running)

	s.pairs = merged
	s.active = active
}

// EditOrder returns pair indices sorted by descending cursor position.
// Buffer edits must be applied in this order so that an edit never moves a
// position still waiting to be edited.
func (s *Set) EditOrder() []int {
	order := make([]int, len(s.pairs))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return s.pairs[b].Position().Compare(s.pairs[a].Position())
	})
	return order
}

// LinesCovered returns every line touched by a cursor or selection,
// in descending order without duplicates.
func (s *Set) LinesCovered() []int {
	var lines []int
	for _, p := range s.pairs {
		r := p.Selection.Range()
		end := r.End.Line
		// A selection ending at column 0 does not cover that line.
		if end > r.Start.Line && r.End.Column == 0 {
			end--
		}
		for l := r.Start.Line; l <= end; l++ {
			lines = append(lines, l)
		}
	}
	slices.Sort(lines)
	lines = slices.Compact(lines)
	slices.Reverse(lines)
	return lines
}

// Validate checks the structural invariants of the set:
// at least one pair, an in-range active index, each selection head at its
// cursor and no two cursors at the same position.
func (s *Set) Validate() error {
	if len(s.pairs) == 0 {
		return fmt.Errorf("%w: no cursors", ErrInvariant)
	}
	if s.active < 0 || s.active >= len(s.pairs) {
		return fmt.Errorf("%w: active index %d out of range [0,%d)", ErrInvariant, s.active, len(s.pairs))
	}
	seen := make(map[Position]int, len(s.pairs))
	for i, p := range s.pairs {
		if !p.IsConsistent() {
			return fmt.Errorf("%w: selection %d head %s differs from cursor %s",
				ErrInvariant, i, p.Selection.Head, p.Position())
		}
		if j, dup := seen[p.Position()]; dup {
			return fmt.Errorf("%w: cursors %d and %d both at %s", ErrInvariant, j, i, p.Position())
		}
		seen[p.Position()] = i
	}
	return nil
}

// Equals returns true if two sets have the same pairs in the same order.
func (s *Set) Equals(other *Set) bool {
	if other == nil || s.active != other.active {
		return false
	}
	return slices.EqualFunc(s.pairs, other.pairs, func(a, b Pair) bool {
		return a.Cursor.Equals(b.Cursor) && a.Selection.Equals(b.Selection)
	})
}
