// Package renderer draws one view of a document onto a backend.
//
// The renderer maps character columns to terminal cells with the layout
// package and paints, in priority order, secondary cursors, selections and
// an in-progress rectangle drag. The primary cursor is shown with the
// backend's hardware cursor. The bottom row holds the status line.
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term, renderer.DefaultOptions())
//	r.Render(state, buf)
package renderer

import (
	"fmt"

	"github.com/dshills/cursorcore/internal/engine/buffer"
	"github.com/dshills/cursorcore/internal/engine/rectangle"
	"github.com/dshills/cursorcore/internal/renderer/backend"
	"github.com/dshills/cursorcore/internal/renderer/layout"
	"github.com/dshills/cursorcore/internal/renderer/statusline"
	"github.com/dshills/cursorcore/internal/view"
)

// Source is the document a renderer draws. *buffer.Buffer implements it.
type Source interface {
	buffer.Reader
	CharAt(line, column int) (string, bool)
}

// Options configures the renderer.
type Options struct {
	ShowLineNumbers bool
	TabWidth        int
}

// DefaultOptions returns the options used by the demo host.
func DefaultOptions() Options {
	return Options{
		ShowLineNumbers: true,
		TabWidth:        layout.DefaultTabWidth,
	}
}

// Renderer draws a view.State and its document.
type Renderer struct {
	opts    Options
	backend backend.Backend
	width   int
	height  int

	layout *layout.Engine
	status *statusline.StatusLine

	gutterWidth int
	frameCount  uint64
}

// New creates a renderer sized to the backend.
func New(b backend.Backend, opts Options) *Renderer {
	width, height := b.Size()
	return &Renderer{
		opts:    opts,
		backend: b,
		width:   width,
		height:  height,
		layout:  layout.NewEngine(opts.TabWidth),
		status:  statusline.New(),
	}
}

// Resize updates the screen size in cells.
func (r *Renderer) Resize(width, height int) {
	r.width = max(width, 0)
	r.height = max(height, 0)
}

// Size returns the screen size in cells.
func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

// Options returns the renderer options.
func (r *Renderer) Options() Options {
	return r.opts
}

// StatusLine returns the status line so the host can set the filename and
// messages.
func (r *Renderer) StatusLine() *statusline.StatusLine {
	return r.status
}

// FrameCount returns the number of frames rendered.
func (r *Renderer) FrameCount() uint64 {
	return r.frameCount
}

// TextArea returns the number of text rows and columns available for src,
// which is the size the view's viewport should have.
func (r *Renderer) TextArea(src Source) (lines, columns int) {
	return r.textRows(), max(r.width-r.calculateGutterWidth(src), 1)
}

func (r *Renderer) textRows() int {
	return max(r.height-1, 1)
}

func (r *Renderer) calculateGutterWidth(src Source) int {
	if !r.opts.ShowLineNumbers {
		return 0
	}
	return len(fmt.Sprint(buffer.LineCount(src))) + 1
}

// decorations is everything painted over the text for one frame.
type decorations struct {
	cursors    map[buffer.Position]bool
	selections []buffer.Range
	rect       rectangle.State
	inRect     bool
}

// During a rectangle drag the pairs are stale; the cursors a commit would
// create are shown instead.
func collectDecorations(v *view.State, src Source) decorations {
	d := decorations{cursors: make(map[buffer.Position]bool)}
	d.rect, d.inRect = v.Rectangle()
	if d.inRect {
		for _, p := range v.RectanglePreview(src) {
			d.cursors[p] = true
		}
		return d
	}

	active := v.ActiveIndex()
	for i, p := range v.Pairs() {
		if i != active {
			d.cursors[p.Position()] = true
		}
		if p.HasSelection() {
			d.selections = append(d.selections, p.Selection.Range())
		}
	}
	return d
}

func (d decorations) styleAt(p buffer.Position, inText bool) backend.Style {
	if d.cursors[p] {
		return backend.StyleCursor
	}
	for _, sel := range d.selections {
		if sel.Contains(p) {
			return backend.StyleSelection
		}
	}
	if inText && d.inRect && d.rect.Contains(p) {
		return backend.StyleRectangle
	}
	return backend.StyleDefault
}

// Render draws one frame.
func (r *Renderer) Render(v *view.State, src Source) {
	r.gutterWidth = r.calculateGutterWidth(src)
	r.backend.Clear()

	vp := v.Viewport()
	deco := collectDecorations(v, src)
	lineCount := buffer.LineCount(src)

	for row, rows := 0, r.textRows(); row < rows; row++ {
		line := vp.TopLine + row
		r.renderGutter(line, lineCount, row)
		if line < lineCount {
			r.renderLine(line, row, vp.LeftColumn, src, deco)
		} else {
			r.backend.SetCell(r.gutterWidth, row, backend.Cell{Text: "~", Width: 1})
		}
	}

	r.renderCursor(v, src)
	r.renderStatus(v)

	r.backend.Show()
	r.frameCount++
}

func (r *Renderer) renderGutter(line, lineCount, row int) {
	if r.gutterWidth == 0 || line >= lineCount {
		return
	}
	num := fmt.Sprintf("%*d", r.gutterWidth-1, line+1)
	for x, ch := range num {
		r.backend.SetCell(x, row, backend.Cell{Text: string(ch), Width: 1})
	}
}

func (r *Renderer) renderLine(line, row, leftColumn int, src Source, deco decorations) {
	ll := r.layout.Layout(src, line)
	origin := ll.VisualColumn(leftColumn)
	contentWidth := r.width - r.gutterWidth

	for x := 0; x < contentWidth; x++ {
		vis := origin + x
		var cell backend.Cell
		switch {
		case vis < ll.Width:
			cell = ll.Cells[vis]
			col := ll.VisualCols[vis]
			cell.Style = deco.styleAt(buffer.Pos(line, col), true)
			// Half of a wide character cut by either edge.
			if (x == 0 && cell.IsContinuation()) || x+cell.Width > contentWidth {
				cell = backend.Cell{Text: " ", Width: 1, Style: cell.Style}
			}
		case vis == ll.Width:
			cell = backend.EmptyCell()
			cell.Style = deco.styleAt(buffer.Pos(line, ll.Length()), false)
		default:
			continue
		}
		r.backend.SetCell(r.gutterWidth+x, row, cell)
	}
}

func (r *Renderer) renderCursor(v *view.State, src Source) {
	p := v.Primary().Position()
	vp := v.Viewport()
	row := p.Line - vp.TopLine
	if row < 0 || row >= r.textRows() {
		r.backend.HideCursor()
		return
	}

	ll := r.layout.Layout(src, p.Line)
	x := ll.VisualColumn(p.Column) - ll.VisualColumn(vp.LeftColumn)
	if x < 0 || x >= r.width-r.gutterWidth {
		r.backend.HideCursor()
		return
	}
	r.backend.ShowCursor(r.gutterWidth+x, row)
}

func (r *Renderer) renderStatus(v *view.State) {
	p := v.Primary().Position()
	r.status.SetPosition(p.Line+1, p.Column+1)
	r.status.SetCursorCount(v.Len())
	switch _, rect := v.Rectangle(); {
	case rect:
		r.status.SetMode("RECT")
	case v.Len() > 1:
		r.status.SetMode("MULTI")
	default:
		r.status.SetMode("EDIT")
	}
	r.status.Resize(r.width)
	r.status.Render(r.backend, r.height-1)
}

// PositionAt converts a screen cell to a document position. It returns false
// for cells outside the text area. Cells past the end of a line or below the
// last line map to the nearest position in the document.
func (r *Renderer) PositionAt(v *view.State, src Source, x, y int) (buffer.Position, bool) {
	if y < 0 || y >= r.textRows() {
		return buffer.Position{}, false
	}
	vp := v.Viewport()
	line := vp.TopLine + y
	if line > buffer.LastLine(src) {
		return buffer.DocumentEnd(src), true
	}

	ll := r.layout.Layout(src, line)
	vis := ll.VisualColumn(vp.LeftColumn) + max(x-r.calculateGutterWidth(src), 0)
	return buffer.Pos(line, min(ll.BufferColumn(vis), ll.Length())), true
}
