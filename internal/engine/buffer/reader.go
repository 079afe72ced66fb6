package buffer

// Reader is the read-only view of a text store that the cursor engine needs.
// Implementations must answer every query in O(1) or O(log n) in the number
// of lines; motions call them on every key repeat.
//
// A store with no lines behaves as a single empty line.
type Reader interface {
	// LineCount returns the number of lines.
	LineCount() int

	// LineLength returns the length of a line in characters, excluding the
	// line terminator. Out-of-range lines have length 0.
	LineLength(line int) int

	// CharTypeAt classifies the character at (line, column).
	// It returns false past the end of the line.
	CharTypeAt(line, column int) (CharType, bool)

	// FirstNonWhitespaceColumn returns the column of the first
	// non-whitespace character, or the line length for blank lines.
	FirstNonWhitespaceColumn(line int) int

	// LastNonWhitespaceColumn returns the column just after the last
	// non-whitespace character, or 0 for blank lines.
	LastNonWhitespaceColumn(line int) int
}

// LineCount returns r.LineCount(), treating an empty store as one line.
func LineCount(r Reader) int {
	n := r.LineCount()
	if n < 1 {
		return 1
	}
	return n
}

// LastLine returns the index of the final line.
func LastLine(r Reader) int {
	return LineCount(r) - 1
}

// DocumentEnd returns the position after the last character.
func DocumentEnd(r Reader) Position {
	last := LastLine(r)
	return Position{Line: last, Column: r.LineLength(last)}
}

// Clamp returns p moved to the nearest valid position in r.
func Clamp(r Reader, p Position) Position {
	if p.Line < 0 {
		return Position{}
	}
	last := LastLine(r)
	if p.Line > last {
		return DocumentEnd(r)
	}
	if p.Column < 0 {
		p.Column = 0
	}
	if n := r.LineLength(p.Line); p.Column > n {
		p.Column = n
	}
	return p
}

// ClampColumn limits column to [0, LineLength(line)].
func ClampColumn(r Reader, line, column int) int {
	if column < 0 {
		return 0
	}
	if n := r.LineLength(line); column > n {
		return n
	}
	return column
}
