// Package viewport tracks which lines and columns of a document are on
// screen and scrolls to keep the primary cursor inside a safe zone.
//
// Viewport is a value type in line/column units. Operations return a new
// Viewport; the caller owns the stored copy. Mapping to pixels or terminal
// cells is the renderer's concern.
package viewport

import "fmt"

// Viewport represents the visible portion of the document.
type Viewport struct {
	TopLine        int // first visible line
	LeftColumn     int // first visible column
	VisibleLines   int
	VisibleColumns int
}

// LineMeasurer is the part of a text store the viewport needs to clamp
// scrolling to content.
type LineMeasurer interface {
	LineCount() int
	LineLength(line int) int
}

// New creates a viewport of the given size at the document origin.
// Sizes are clamped to a minimum of 1.
func New(visibleLines, visibleColumns int) Viewport {
	return Viewport{}.Resize(visibleLines, visibleColumns)
}

// Resize returns the viewport with a new size.
// Sizes are clamped to a minimum of 1.
func (v Viewport) Resize(visibleLines, visibleColumns int) Viewport {
	v.VisibleLines = max(visibleLines, 1)
	v.VisibleColumns = max(visibleColumns, 1)
	return v
}

// String returns a string representation of the viewport.
func (v Viewport) String() string {
	return fmt.Sprintf("Viewport(top=%d left=%d %dx%d)", v.TopLine, v.LeftColumn, v.VisibleLines, v.VisibleColumns)
}

// BottomLine returns the last line position on screen, whether or not the
// document reaches it.
func (v Viewport) BottomLine() int {
	return v.TopLine + max(v.VisibleLines, 1) - 1
}

// RightColumn returns the column just past the right edge (exclusive).
func (v Viewport) RightColumn() int {
	return v.LeftColumn + v.VisibleColumns
}

// VisibleLineRange returns the half-open range [start, end) of document
// lines on screen for a document with lineCount lines.
func (v Viewport) VisibleLineRange(lineCount int) (start, end int) {
	start = min(v.TopLine, max(lineCount, 0))
	end = min(v.TopLine+v.VisibleLines, max(lineCount, 0))
	return start, end
}

// IsLineVisible returns true if the line is within the viewport.
func (v Viewport) IsLineVisible(line int) bool {
	return line >= v.TopLine && line <= v.BottomLine()
}

// IsColumnVisible returns true if the column is within the viewport.
func (v Viewport) IsColumnVisible(col int) bool {
	return col >= v.LeftColumn && col < v.RightColumn()
}

// IsPositionVisible returns true if both line and column are visible.
func (v Viewport) IsPositionVisible(line, col int) bool {
	return v.IsLineVisible(line) && v.IsColumnVisible(col)
}

// LineToScreenRow converts a document line to a screen row.
// Returns -1 if the line is not visible.
func (v Viewport) LineToScreenRow(line int) int {
	if !v.IsLineVisible(line) {
		return -1
	}
	return line - v.TopLine
}

// ScreenRowToLine converts a screen row to a document line.
func (v Viewport) ScreenRowToLine(row int) int {
	return v.TopLine + max(row, 0)
}

// ColumnToScreenCol converts a document column to a screen column.
// Returns -1 if the column is not visible.
func (v Viewport) ColumnToScreenCol(col int) int {
	if !v.IsColumnVisible(col) {
		return -1
	}
	return col - v.LeftColumn
}

// ScreenColToColumn converts a screen column to a document column.
func (v Viewport) ScreenColToColumn(screenCol int) int {
	return v.LeftColumn + max(screenCol, 0)
}

// ScreenToDocument converts a screen cell to a document line and column.
// The result is not clamped to the document.
func (v Viewport) ScreenToDocument(row, col int) (line, column int) {
	return v.ScreenRowToLine(row), v.ScreenColToColumn(col)
}

// maxTop returns the highest top line that still fills the screen.
func (v Viewport) maxTop(lineCount int) int {
	return max(lineCount-v.VisibleLines, 0)
}

// ScrollTo returns the viewport with its top line set to line, clamped so
// the screen stays filled with content where possible.
func (v Viewport) ScrollTo(line, lineCount int) Viewport {
	v.TopLine = min(max(line, 0), v.maxTop(lineCount))
	return v
}

// ScrollToTop returns the viewport scrolled to the first line.
func (v Viewport) ScrollToTop() Viewport {
	v.TopLine = 0
	return v
}

// ScrollToBottom returns the viewport scrolled so the last line is at the
// bottom of the screen.
func (v Viewport) ScrollToBottom(lineCount int) Viewport {
	v.TopLine = v.maxTop(lineCount)
	return v
}

// CenterOn returns the viewport with line in the middle of the screen.
func (v Viewport) CenterOn(line, lineCount int) Viewport {
	return v.ScrollTo(line-v.VisibleLines/2, lineCount)
}
