// Package statusline renders the bottom status row of the demo host.
package statusline

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/dshills/cursorcore/internal/renderer/backend"
)

// StatusLine renders the cursor summary or a transient message.
type StatusLine struct {
	mode     string // e.g. "EDIT", "RECT"
	filename string
	modified bool
	line     int // 1-indexed
	col      int // 1-indexed
	cursors  int

	message     string
	messageType MessageType

	width int
}

// MessageType indicates the type of status message.
type MessageType int

const (
	MessageNone MessageType = iota
	MessageInfo
	MessageError
)

// New creates a new status line.
func New() *StatusLine {
	return &StatusLine{mode: "EDIT", cursors: 1}
}

// SetMode updates the displayed mode label.
func (s *StatusLine) SetMode(mode string) {
	s.mode = mode
}

// SetFilename updates the displayed filename.
func (s *StatusLine) SetFilename(filename string) {
	s.filename = filename
}

// SetModified updates the modified indicator.
func (s *StatusLine) SetModified(modified bool) {
	s.modified = modified
}

// SetPosition updates the primary cursor position (1-indexed).
func (s *StatusLine) SetPosition(line, col int) {
	s.line = line
	s.col = col
}

// SetCursorCount updates the number of cursors.
func (s *StatusLine) SetCursorCount(n int) {
	s.cursors = n
}

// SetMessage displays a status message until the next ClearMessage.
func (s *StatusLine) SetMessage(msg string, msgType MessageType) {
	s.message = msg
	s.messageType = msgType
}

// ClearMessage clears the status message.
func (s *StatusLine) ClearMessage() {
	s.message = ""
	s.messageType = MessageNone
}

// Message returns the current message.
func (s *StatusLine) Message() (string, MessageType) {
	return s.message, s.messageType
}

// Resize updates the status line width.
func (s *StatusLine) Resize(width int) {
	s.width = max(width, 0)
}

// Render draws the status line to the backend at the given row.
func (s *StatusLine) Render(b backend.Backend, row int) {
	if s.message != "" {
		s.renderMessage(b, row)
		return
	}
	s.renderStatusBar(b, row)
}

func (s *StatusLine) renderStatusBar(b backend.Backend, row int) {
	fill(b, row, 0, s.width, backend.StyleStatus)

	col := drawString(b, 0, row, s.width, " "+s.mode+" ", backend.StyleSelection)
	col++

	right := s.formatPosition()
	rightStart := s.width - runewidth.StringWidth(right) - 1

	filename := s.filename
	if filename == "" {
		filename = "[No Name]"
	}
	if s.modified {
		filename += " [+]"
	}
	// Leave room for position info
	avail := rightStart - col - 1
	if avail > 0 {
		drawString(b, col, row, col+avail, runewidth.Truncate(filename, avail, "…"), backend.StyleStatus)
	}
	if rightStart > col {
		drawString(b, rightStart, row, s.width, right, backend.StyleStatus)
	}
}

func (s *StatusLine) renderMessage(b backend.Backend, row int) {
	style := backend.StyleStatus
	if s.messageType == MessageError {
		style = backend.StyleError
	}
	fill(b, row, 0, s.width, style)
	drawString(b, 0, row, s.width, runewidth.Truncate(s.message, s.width, "…"), style)
}

// formatPosition formats the position info for the right side.
func (s *StatusLine) formatPosition() string {
	line, col := max(s.line, 1), max(s.col, 1)
	pos := fmt.Sprintf("Ln %d, Col %d", line, col)
	if s.cursors > 1 {
		return fmt.Sprintf("%d cursors | %s", s.cursors, pos)
	}
	return pos
}

func fill(b backend.Backend, row, from, to int, style backend.Style) {
	blank := backend.Cell{Text: " ", Width: 1, Style: style}
	for x := from; x < to; x++ {
		b.SetCell(x, row, blank)
	}
}

// drawString draws s one grapheme cluster at a time starting at x and stops
// before limit. It returns the column after the last cell drawn.
func drawString(b backend.Backend, x, row, limit int, s string, style backend.Style) int {
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		text := g.Str()
		w := runewidth.StringWidth(text)
		if w <= 0 {
			continue
		}
		if x+w > limit {
			break
		}
		b.SetCell(x, row, backend.Cell{Text: text, Width: w, Style: style})
		for i := 1; i < w; i++ {
			b.SetCell(x+i, row, backend.ContinuationCell(style))
		}
		x += w
	}
	return x
}
