package viewport

import "fmt"

// RevealMode selects where a cursor that left the safe zone is placed.
type RevealMode uint8

const (
	// RevealMinimal scrolls just enough to bring the cursor back inside the
	// safe zone.
	RevealMinimal RevealMode = iota
	// RevealTop puts the cursor at the top of the safe zone.
	RevealTop
	// RevealBottom puts the cursor at the bottom of the safe zone.
	RevealBottom
	// RevealCentered puts the cursor in the middle of the screen.
	RevealCentered
)

// String returns the mode name as used in configuration.
func (m RevealMode) String() string {
	switch m {
	case RevealMinimal:
		return "minimal"
	case RevealTop:
		return "top"
	case RevealBottom:
		return "bottom"
	case RevealCentered:
		return "centered"
	default:
		return fmt.Sprintf("RevealMode(%d)", m)
	}
}

// ParseRevealMode parses a reveal mode name.
func ParseRevealMode(s string) (RevealMode, error) {
	switch s {
	case "", "minimal":
		return RevealMinimal, nil
	case "top":
		return RevealTop, nil
	case "bottom":
		return RevealBottom, nil
	case "centered", "center":
		return RevealCentered, nil
	}
	return RevealMinimal, fmt.Errorf("unknown reveal mode %q", s)
}

// EnsureVisible returns v scrolled so that (line, col) sits inside the safe
// zone defined by m. A viewport already showing the cursor inside the safe
// zone is returned unchanged. Vertical and horizontal scrolling are
// independent; vertical scrolling is clamped to the document and disabled
// when all lineCount lines fit.
func EnsureVisible(v Viewport, line, col int, m MarginConfig, mode RevealMode, lineCount int) Viewport {
	m = m.Effective(v)

	if lineCount > v.VisibleLines {
		safeTop := v.TopLine + m.Top
		safeBottom := v.TopLine + v.VisibleLines - m.Bottom - 1
		above, below := line < safeTop, line > safeBottom

		if above || below {
			var top int
			switch mode {
			case RevealTop:
				top = line - m.Top
			case RevealBottom:
				top = line + m.Bottom + 1 - v.VisibleLines
			case RevealCentered:
				top = line - v.VisibleLines/2
			default:
				if above {
					top = line - m.Top
				} else {
					top = line + m.Bottom + 1 - v.VisibleLines
				}
			}
			v.TopLine = clamp(top, 0, v.maxTop(lineCount))
		}
	} else {
		v.TopLine = 0
	}

	leftSafe := v.LeftColumn + m.Left
	rightSafe := v.RightColumn() - m.Right
	switch {
	case col < leftSafe:
		v.LeftColumn = max(col-m.Left, 0)
	case col >= rightSafe:
		v.LeftColumn = max(col+m.Right+1-v.VisibleColumns, 0)
	}
	return v
}

// Align returns v scrolled so line sits at the edge of the safe zone named
// by mode, or in the middle for RevealCentered, even when line is already
// visible. RevealMinimal behaves like EnsureVisible. Columns are untouched.
func Align(v Viewport, line int, m MarginConfig, mode RevealMode, lineCount int) Viewport {
	m = m.Effective(v)
	switch mode {
	case RevealTop:
		return v.ScrollTo(line-m.Top, lineCount)
	case RevealBottom:
		return v.ScrollTo(line+m.Bottom+1-v.VisibleLines, lineCount)
	case RevealCentered:
		return v.CenterOn(line, lineCount)
	}
	return EnsureVisible(v, line, v.LeftColumn+m.Left, m, RevealMinimal, lineCount)
}

// Scroll returns v with the top line moved by delta lines, clamped so the
// screen never scrolls past the last line. The cursor is not involved.
func (v Viewport) Scroll(delta int, doc LineMeasurer) Viewport {
	return v.ScrollTo(v.TopLine+delta, doc.LineCount())
}

// ScrollHorizontal returns v with the left column moved by delta columns,
// clamped to the longest line on screen. When every visible line fits the
// left column resets to 0.
func (v Viewport) ScrollHorizontal(delta int, doc LineMeasurer) Viewport {
	longest := v.LongestVisibleLine(doc)
	if longest <= v.VisibleColumns {
		v.LeftColumn = 0
		return v
	}
	v.LeftColumn = clamp(v.LeftColumn+delta, 0, longest-v.VisibleColumns)
	return v
}

// LongestVisibleLine returns the length of the longest line on screen.
func (v Viewport) LongestVisibleLine(doc LineMeasurer) int {
	start, end := v.VisibleLineRange(doc.LineCount())
	longest := 0
	for line := start; line < end; line++ {
		longest = max(longest, doc.LineLength(line))
	}
	return longest
}

// PageSize returns the number of lines a page motion travels, keeping
// overlap lines of context on screen.
func (v Viewport) PageSize(overlap int) int {
	return max(v.VisibleLines-max(overlap, 0), 1)
}

// PageUp returns v scrolled up by one page.
func (v Viewport) PageUp(overlap, lineCount int) Viewport {
	return v.ScrollTo(v.TopLine-v.PageSize(overlap), lineCount)
}

// PageDown returns v scrolled down by one page.
func (v Viewport) PageDown(overlap, lineCount int) Viewport {
	return v.ScrollTo(v.TopLine+v.PageSize(overlap), lineCount)
}
