package backend

import "strings"

// Memory is an in-memory backend for tests and headless runs.
type Memory struct {
	width, height int
	cells         [][]Cell
	cursorX       int
	cursorY       int
	cursorVisible bool
	shows         int
	events        chan Event
}

// NewMemory creates a memory backend with the given dimensions.
func NewMemory(width, height int) *Memory {
	return &Memory{
		width:  width,
		height: height,
		events: make(chan Event, 100),
	}
}

func (b *Memory) Init() error {
	b.allocate()
	return nil
}

func (b *Memory) allocate() {
	b.cells = make([][]Cell, b.height)
	for i := range b.cells {
		b.cells[i] = make([]Cell, b.width)
		for j := range b.cells[i] {
			b.cells[i][j] = EmptyCell()
		}
	}
}

func (b *Memory) Shutdown() {}

func (b *Memory) Size() (int, int) {
	return b.width, b.height
}

func (b *Memory) SetCell(x, y int, cell Cell) {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		b.cells[y][x] = cell
	}
}

// Cell returns the cell at the given position, or an empty cell outside
// the surface.
func (b *Memory) Cell(x, y int) Cell {
	if x >= 0 && x < b.width && y >= 0 && y < b.height {
		return b.cells[y][x]
	}
	return EmptyCell()
}

// Row returns the text of row y with continuation cells skipped.
func (b *Memory) Row(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for _, c := range b.cells[y] {
		if !c.IsContinuation() {
			sb.WriteString(c.Text)
		}
	}
	return sb.String()
}

func (b *Memory) Clear() {
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = EmptyCell()
		}
	}
}

func (b *Memory) Show() {
	b.shows++
}

// Shows returns how many times Show was called.
func (b *Memory) Shows() int {
	return b.shows
}

func (b *Memory) ShowCursor(x, y int) {
	b.cursorX = x
	b.cursorY = y
	b.cursorVisible = true
}

func (b *Memory) HideCursor() {
	b.cursorVisible = false
}

// CursorPosition returns the hardware cursor state for testing.
func (b *Memory) CursorPosition() (x, y int, visible bool) {
	return b.cursorX, b.cursorY, b.cursorVisible
}

func (b *Memory) PollEvent() Event {
	return <-b.events
}

func (b *Memory) PostEvent(event Event) {
	select {
	case b.events <- event:
	default:
		// Event dropped if queue is full (non-blocking for testing)
	}
}

// Resize simulates a terminal resize: the surface is reallocated and a
// resize event is queued.
func (b *Memory) Resize(width, height int) {
	b.width = width
	b.height = height
	b.allocate()
	b.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}
