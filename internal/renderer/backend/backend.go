// Package backend provides the terminal surface the demo host draws on.
package backend

// Style identifies how a cell is highlighted. The backend decides the
// actual colors.
type Style int

const (
	StyleDefault Style = iota
	StyleSelection
	StyleCursor
	StyleRectangle
	StyleStatus
	StyleError
)

// String returns the style name.
func (s Style) String() string {
	switch s {
	case StyleDefault:
		return "default"
	case StyleSelection:
		return "selection"
	case StyleCursor:
		return "cursor"
	case StyleRectangle:
		return "rectangle"
	case StyleStatus:
		return "status"
	case StyleError:
		return "error"
	default:
		return "unknown"
	}
}

// Cell represents a single terminal cell.
type Cell struct {
	// Text is the grapheme cluster to display.
	// Empty indicates a continuation cell (for wide characters).
	Text string

	// Width is the display width of this cell.
	// 0 for continuation cells, 1 for normal chars, 2 for wide CJK chars.
	Width int

	Style Style
}

// EmptyCell returns a blank cell with the default style.
func EmptyCell() Cell {
	return Cell{Text: " ", Width: 1}
}

// ContinuationCell returns the cell covered by the right half of a wide
// character.
func ContinuationCell(style Style) Cell {
	return Cell{Style: style}
}

// IsContinuation returns true for the second cell of a wide character.
func (c Cell) IsContinuation() bool {
	return c.Width == 0 && c.Text == ""
}

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	EventInterrupt
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key  Key
	Rune rune
	Mod  ModMask

	// Mouse event fields
	MouseX, MouseY int
	MouseButton    MouseButton

	// Resize event fields
	Width, Height int

	// Data is the payload of an interrupt posted with PostEvent.
	Data any
}

// Key represents a keyboard key.
type Key int

// Key constants for special keys.
const (
	KeyNone Key = iota
	KeyRune     // Regular character (use Rune field)
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Control chords. Only the ones the editor binds are reported.
	KeyCtrlA
	KeyCtrlD
	KeyCtrlG
	KeyCtrlK
	KeyCtrlL
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlU
	KeyCtrlW
)

// ModMask represents modifier key state.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
)

// Has returns true if the mask contains the given modifier.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}

// MouseButton represents mouse button state.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
	MouseWheelLeft
	MouseWheelRight
)

// Backend defines the interface for display surfaces.
type Backend interface {
	// Init initializes the backend for use.
	// Must be called before any other methods.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	Shutdown()

	// Size returns the current dimensions in cells.
	Size() (width, height int)

	// SetCell sets a single cell at the given position.
	// Positions outside the surface are silently ignored.
	SetCell(x, y int, cell Cell)

	// Clear blanks the entire surface.
	Clear()

	// Show flushes pending changes to the display.
	Show()

	// ShowCursor positions and displays the hardware cursor.
	ShowCursor(x, y int)

	// HideCursor hides the hardware cursor.
	HideCursor()

	// PollEvent waits for and returns the next event.
	PollEvent() Event

	// PostEvent queues a synthetic event. It is safe to call from any
	// goroutine.
	PostEvent(event Event)
}

// Interrupt returns an interrupt event carrying data.
func Interrupt(data any) Event {
	return Event{Type: EventInterrupt, Data: data}
}
