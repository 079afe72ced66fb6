package view

import (
	"github.com/dshills/cursorcore/internal/engine/buffer"
	"github.com/dshills/cursorcore/internal/renderer/viewport"
)

// Viewport returns the current viewport.
func (s *State) Viewport() viewport.Viewport {
	return s.viewport
}

// VisibleLines returns the half-open range of document lines on screen.
func (s *State) VisibleLines(r buffer.Reader) (start, end int) {
	return s.viewport.VisibleLineRange(buffer.LineCount(r))
}

// Resize changes the viewport size and keeps the primary cursor in view.
func (s *State) Resize(r buffer.Reader, lines, columns int) {
	s.viewport = s.viewport.Resize(lines, columns)
	s.reveal(r, viewport.RevealMinimal)
}

// Scroll moves the viewport by delta lines without touching the cursors.
func (s *State) Scroll(r buffer.Reader, delta int) {
	s.viewport = s.viewport.Scroll(delta, r)
}

// ScrollHorizontal moves the viewport by delta columns without touching
// the cursors.
func (s *State) ScrollHorizontal(r buffer.Reader, delta int) {
	s.viewport = s.viewport.ScrollHorizontal(delta, r)
}

// Reveal scrolls so the primary cursor is inside the safe zone.
func (s *State) Reveal(r buffer.Reader, mode viewport.RevealMode) {
	s.reveal(r, mode)
}

// Align scrolls so the primary cursor's line sits at the top, bottom or
// middle of the screen, even when it is already visible.
func (s *State) Align(r buffer.Reader, mode viewport.RevealMode) {
	line := s.cursors.Active().Position().Line
	s.viewport = viewport.Align(s.viewport, line, s.settings.Margins, mode, buffer.LineCount(r))
}

func (s *State) reveal(r buffer.Reader, mode viewport.RevealMode) {
	p := s.cursors.Active().Position()
	s.viewport = viewport.EnsureVisible(s.viewport, p.Line, p.Column, s.settings.Margins, mode, buffer.LineCount(r))
}

func (s *State) revealPosition(r buffer.Reader, p buffer.Position) {
	s.viewport = viewport.EnsureVisible(s.viewport, p.Line, p.Column, s.settings.Margins, s.settings.Reveal, buffer.LineCount(r))
}
