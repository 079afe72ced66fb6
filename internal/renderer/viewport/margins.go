package viewport

// MarginConfig holds scroll margin configuration.
type MarginConfig struct {
	Top    int // Lines to keep above cursor
	Bottom int // Lines to keep below cursor
	Left   int // Columns to keep left of cursor
	Right  int // Columns to keep right of cursor
}

// DefaultMargins returns the default margins: one line of context
// vertically and four columns horizontally.
func DefaultMargins() MarginConfig {
	return MarginConfig{
		Top:    1,
		Bottom: 1,
		Left:   4,
		Right:  4,
	}
}

// CompactMargins returns smaller margins for small views.
func CompactMargins() MarginConfig {
	return MarginConfig{
		Top:    0,
		Bottom: 0,
		Left:   2,
		Right:  2,
	}
}

// NoMargins returns zero margins (cursor can go to edge).
func NoMargins() MarginConfig {
	return MarginConfig{}
}

// maxMarginRatio limits margins to 1/3 of viewport dimension to ensure
// there's always usable space in the center.
const maxMarginRatio = 3

// Effective returns m adjusted for the size of v: negative margins become
// zero and no margin exceeds a third of the viewport dimension.
func (m MarginConfig) Effective(v Viewport) MarginConfig {
	maxVertical := v.VisibleLines / maxMarginRatio
	maxHorizontal := v.VisibleColumns / maxMarginRatio
	return MarginConfig{
		Top:    clamp(m.Top, 0, maxVertical),
		Bottom: clamp(m.Bottom, 0, maxVertical),
		Left:   clamp(m.Left, 0, maxHorizontal),
		Right:  clamp(m.Right, 0, maxHorizontal),
	}
}

func clamp(n, lo, hi int) int {
	return min(max(n, lo), hi)
}

// CursorZone represents where the cursor is relative to margins.
type CursorZone uint8

const (
	ZoneCenter       CursorZone = iota // Cursor is in comfortable zone
	ZoneTopMargin                      // Cursor is in top margin
	ZoneBottomMargin                   // Cursor is in bottom margin
	ZoneLeftMargin                     // Cursor is in left margin
	ZoneRightMargin                    // Cursor is in right margin
	ZoneAbove                          // Cursor is above viewport
	ZoneBelow                          // Cursor is below viewport
	ZoneLeft                           // Cursor is left of viewport
	ZoneRight                          // Cursor is right of viewport
)

// String returns the zone name.
func (z CursorZone) String() string {
	switch z {
	case ZoneCenter:
		return "center"
	case ZoneTopMargin:
		return "top-margin"
	case ZoneBottomMargin:
		return "bottom-margin"
	case ZoneLeftMargin:
		return "left-margin"
	case ZoneRightMargin:
		return "right-margin"
	case ZoneAbove:
		return "above"
	case ZoneBelow:
		return "below"
	case ZoneLeft:
		return "left"
	case ZoneRight:
		return "right"
	default:
		return "unknown"
	}
}

// CursorZones returns the zones where a cursor at (line, col) falls.
func (v Viewport) CursorZones(line, col int, m MarginConfig) (vertical, horizontal CursorZone) {
	m = m.Effective(v)

	switch row := line - v.TopLine; {
	case row < 0:
		vertical = ZoneAbove
	case row >= v.VisibleLines:
		vertical = ZoneBelow
	case row < m.Top:
		vertical = ZoneTopMargin
	case row >= v.VisibleLines-m.Bottom:
		vertical = ZoneBottomMargin
	default:
		vertical = ZoneCenter
	}

	switch screenCol := col - v.LeftColumn; {
	case screenCol < 0:
		horizontal = ZoneLeft
	case screenCol >= v.VisibleColumns:
		horizontal = ZoneRight
	case screenCol < m.Left:
		horizontal = ZoneLeftMargin
	case screenCol >= v.VisibleColumns-m.Right:
		horizontal = ZoneRightMargin
	default:
		horizontal = ZoneCenter
	}
	return vertical, horizontal
}

// ContentArea is the part of the viewport inside all margins: the safe zone
// where the cursor can be without triggering a scroll.
type ContentArea struct {
	StartLine   int // Inclusive
	EndLine     int // Inclusive
	StartColumn int // Inclusive
	EndColumn   int // Exclusive
}

// SafeZone returns the content area of v inside margins m.
func (v Viewport) SafeZone(m MarginConfig) ContentArea {
	m = m.Effective(v)
	area := ContentArea{
		StartLine:   v.TopLine + m.Top,
		EndLine:     v.BottomLine() - m.Bottom,
		StartColumn: v.LeftColumn + m.Left,
		EndColumn:   v.RightColumn() - m.Right,
	}
	area.EndLine = max(area.EndLine, area.StartLine)
	area.EndColumn = max(area.EndColumn, area.StartColumn)
	return area
}
