// Package layout maps the character columns of a line to terminal cells.
//
// Columns are grapheme clusters, as counted by the buffer. A cluster takes
// as many cells as go-runewidth reports; a tab expands to the next tab stop.
package layout

import (
	"github.com/mattn/go-runewidth"

	"github.com/dshills/cursorcore/internal/renderer/backend"
)

// Source is the text a layout is computed from. *buffer.Buffer implements it.
type Source interface {
	LineLength(line int) int
	CharAt(line, column int) (string, bool)
}

// Placeholder is drawn for clusters with no display width, such as
// control characters.
const Placeholder = "?"

// DefaultTabWidth is used when a non-positive tab width is given.
const DefaultTabWidth = 4

// LineLayout represents the visual layout of a single document line.
type LineLayout struct {
	Line int

	// Cells are the visual cells after tab expansion.
	Cells []backend.Cell

	// VisualCols maps a visual column to its character column.
	VisualCols []int
	// BufferCols maps a character column to its first visual column. It
	// has one extra entry for the end of the line.
	BufferCols []int

	Width   int // total visual width in cells
	HasTabs bool
	HasWide bool
}

// VisualColumn converts a character column to a visual column.
// Columns beyond the line extrapolate one cell per column.
func (l *LineLayout) VisualColumn(col int) int {
	if col < 0 {
		return 0
	}
	if col >= len(l.BufferCols) {
		return l.Width + col - (len(l.BufferCols) - 1)
	}
	return l.BufferCols[col]
}

// BufferColumn converts a visual column to the character column drawn
// there. Columns beyond the line extrapolate one column per cell.
func (l *LineLayout) BufferColumn(visCol int) int {
	if visCol < 0 {
		return 0
	}
	if visCol >= len(l.VisualCols) {
		return len(l.BufferCols) - 1 + visCol - l.Width
	}
	return l.VisualCols[visCol]
}

// Length returns the line length in characters.
func (l *LineLayout) Length() int {
	return len(l.BufferCols) - 1
}

// Engine computes line layouts.
type Engine struct {
	tabWidth int
}

// NewEngine creates a layout engine with the given tab width.
func NewEngine(tabWidth int) *Engine {
	e := &Engine{}
	e.SetTabWidth(tabWidth)
	return e
}

// TabWidth returns the current tab width.
func (e *Engine) TabWidth() int {
	return e.tabWidth
}

// SetTabWidth sets the tab width.
func (e *Engine) SetTabWidth(width int) {
	if width < 1 {
		width = DefaultTabWidth
	}
	e.tabWidth = width
}

// Layout computes the visual layout of one line of src.
func (e *Engine) Layout(src Source, line int) *LineLayout {
	n := max(src.LineLength(line), 0)
	l := &LineLayout{
		Line:       line,
		Cells:      make([]backend.Cell, 0, n),
		VisualCols: make([]int, 0, n),
		BufferCols: make([]int, 0, n+1),
	}

	visCol := 0
	for col := 0; col < n; col++ {
		l.BufferCols = append(l.BufferCols, visCol)
		text, _ := src.CharAt(line, col)

		if text == "\t" {
			l.HasTabs = true
			stop := e.tabWidth - visCol%e.tabWidth
			for i := 0; i < stop; i++ {
				l.Cells = append(l.Cells, backend.EmptyCell())
				l.VisualCols = append(l.VisualCols, col)
				visCol++
			}
			continue
		}

		width := runewidth.StringWidth(text)
		if width <= 0 {
			text, width = Placeholder, 1
		}
		l.Cells = append(l.Cells, backend.Cell{Text: text, Width: width})
		l.VisualCols = append(l.VisualCols, col)
		visCol++
		for i := 0; i < width-1; i++ {
			l.HasWide = true
			l.Cells = append(l.Cells, backend.ContinuationCell(backend.StyleDefault))
			l.VisualCols = append(l.VisualCols, col)
			visCol++
		}
	}
	l.BufferCols = append(l.BufferCols, visCol)
	l.Width = visCol
	return l
}
