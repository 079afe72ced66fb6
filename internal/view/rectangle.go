package view

import (
	"github.com/dshills/cursorcore/internal/engine/buffer"
	"github.com/dshills/cursorcore/internal/engine/rectangle"
)

// BeginRectangle starts a rectangle drag with both corners at p.
// Columns may lie past the end of their line; lines are clamped to the
// document. A drag already in progress is restarted.
func (s *State) BeginRectangle(r buffer.Reader, p buffer.Position) {
	s.clearHistory()
	s.occ = nil
	if s.rect != nil {
		s.rect.Cancel(s.cursors)
	}
	s.rect = rectangle.Begin(s.cursors, clampRectCorner(r, p))
}

// DragRectangle moves the current corner of the drag to p.
func (s *State) DragRectangle(r buffer.Reader, p buffer.Position) {
	if s.rect == nil {
		return
	}
	s.rect.Drag(clampRectCorner(r, p))
	s.revealPosition(r, buffer.Clamp(r, s.rect.Current))
}

// CommitRectangle replaces the pairs with one pair per line of the
// rectangle and ends the drag. Returns false if no drag is in progress.
func (s *State) CommitRectangle(r buffer.Reader) bool {
	if s.rect == nil {
		return false
	}
	s.rect.Commit(s.cursors, r)
	s.rect = nil
	s.reveal(r, s.settings.Reveal)
	return true
}

// CancelRectangle ends the drag and restores the pairs held before it.
func (s *State) CancelRectangle() bool {
	if s.rect == nil {
		return false
	}
	s.rect.Cancel(s.cursors)
	s.rect = nil
	return true
}

// Rectangle returns the in-progress drag, if any.
func (s *State) Rectangle() (rectangle.State, bool) {
	if s.rect == nil {
		return rectangle.State{}, false
	}
	return s.rect.State, true
}

// RectanglePreview returns the cursor positions a commit would create.
func (s *State) RectanglePreview(r buffer.Reader) []buffer.Position {
	if s.rect == nil {
		return nil
	}
	return s.rect.Preview(r)
}

func clampRectCorner(r buffer.Reader, p buffer.Position) buffer.Position {
	return buffer.Pos(min(max(p.Line, 0), buffer.LastLine(r)), max(p.Column, 0))
}
