package buffer

import "fmt"

// Position is a document coordinate in character units.
// Both Line and Column are 0-indexed and never negative once clamped.
type Position struct {
	Line   int
	Column int
}

// Pos is shorthand for Position{Line: line, Column: column}.
func Pos(line, column int) Position {
	return Position{Line: line, Column: column}
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Column)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Position) Compare(other Position) int {
	if p.Line < other.Line {
		return -1
	}
	if p.Line > other.Line {
		return 1
	}
	if p.Column < other.Column {
		return -1
	}
	if p.Column > other.Column {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}

// IsZero returns true if this is the document start (0:0).
func (p Position) IsZero() bool {
	return p.Line == 0 && p.Column == 0
}

// MinPosition returns the earlier of two positions.
func MinPosition(a, b Position) Position {
	if b.Before(a) {
		return b
	}
	return a
}

// MaxPosition returns the later of two positions.
func MaxPosition(a, b Position) Position {
	if b.After(a) {
		return b
	}
	return a
}
