package rectangle

import (
	"github.com/dshills/cursorcore/internal/engine/buffer"
	"github.com/dshills/cursorcore/internal/engine/cursor"
)

// Session is an in-progress rectangle drag over a cursor set.
type Session struct {
	State

	saved       []cursor.Pair
	savedActive int
}

// Begin starts a drag at p, remembering the current pairs of set.
func Begin(set *cursor.Set, p buffer.Position) *Session {
	return &Session{
		State:       New(p),
		saved:       set.Pairs(),
		savedActive: set.ActiveIndex(),
	}
}

// Drag moves the current corner to p.
func (s *Session) Drag(p buffer.Position) {
	s.State = s.DragTo(p)
}

// Commit replaces the pairs of set with the rectangle's pairs.
// The top line's pair becomes primary.
func (s *Session) Commit(set *cursor.Set, r buffer.Reader) {
	set.Replace(s.Pairs(r), 0)
}

// Cancel restores the pairs set held when the drag began.
func (s *Session) Cancel(set *cursor.Set) {
	set.Replace(s.saved, s.savedActive)
}
