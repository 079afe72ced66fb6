package motion

import "github.com/dshills/cursorcore/internal/engine/buffer"

// wordLeft moves to the start of the run of same-class characters before
// col. Whitespace is a run of its own. At column 0 it steps to the end of
// the previous line.
func wordLeft(r buffer.Reader, line, col int) buffer.Position {
	if col == 0 {
		if line > 0 {
			return buffer.Pos(line-1, r.LineLength(line-1))
		}
		return buffer.Pos(0, 0)
	}

	class, _ := r.CharTypeAt(line, col-1)
	for col > 0 {
		if t, _ := r.CharTypeAt(line, col-1); t != class {
			break
		}
		col--
	}
	return buffer.Pos(line, col)
}

// wordRight moves to the end of the run of same-class characters at col.
// At the end of a line it steps to the start of the next line.
func wordRight(r buffer.Reader, line, col int) buffer.Position {
	n := r.LineLength(line)
	if col >= n {
		if line < buffer.LastLine(r) {
			return buffer.Pos(line+1, 0)
		}
		return buffer.Pos(line, n)
	}

	class, _ := r.CharTypeAt(line, col)
	for col < n {
		if t, _ := r.CharTypeAt(line, col); t != class {
			break
		}
		col++
	}
	return buffer.Pos(line, col)
}

// WordAt returns the run of same-class characters under p.
// A cursor at the end of a line looks at the last character.
// Whitespace runs and empty lines have no word.
func WordAt(r buffer.Reader, p buffer.Position) (buffer.Range, bool) {
	p = buffer.Clamp(r, p)
	n := r.LineLength(p.Line)
	if n == 0 {
		return buffer.Range{}, false
	}
	col := min(p.Column, n-1)

	class, _ := r.CharTypeAt(p.Line, col)
	if class == buffer.Whitespace {
		return buffer.Range{}, false
	}

	start, end := col, col
	for start > 0 {
		if t, _ := r.CharTypeAt(p.Line, start-1); t != class {
			break
		}
		start--
	}
	for end < n {
		if t, _ := r.CharTypeAt(p.Line, end); t != class {
			break
		}
		end++
	}
	return buffer.NewRange(buffer.Pos(p.Line, start), buffer.Pos(p.Line, end)), true
}

// LineRange returns the range covering line including its line break.
// The last line ends at its length instead.
func LineRange(r buffer.Reader, line int) buffer.Range {
	line = min(max(line, 0), buffer.LastLine(r))
	start := buffer.Pos(line, 0)
	if line < buffer.LastLine(r) {
		return buffer.Range{Start: start, End: buffer.Pos(line+1, 0)}
	}
	return buffer.Range{Start: start, End: buffer.Pos(line, r.LineLength(line))}
}

// DocumentRange returns the range covering the whole document.
func DocumentRange(r buffer.Reader) buffer.Range {
	return buffer.Range{End: buffer.DocumentEnd(r)}
}
