package buffer

import "fmt"

// Range is a span of the document between two positions.
// Start is inclusive, End is exclusive: [Start, End).
type Range struct {
	Start Position
	End   Position
}

// NewRange creates a range from two positions, ordering them so Start <= End.
func NewRange(a, b Position) Range {
	if b.Before(a) {
		a, b = b, a
	}
	return Range{Start: a, End: b}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%s:%s)", r.Start.String(), r.End.String())
}

// IsEmpty returns true if start equals end.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// IsValid returns true if start <= end.
func (r Range) IsValid() bool {
	return r.Start.Compare(r.End) <= 0
}

// Contains returns true if the given position is within the range.
func (r Range) Contains(p Position) bool {
	return p.Compare(r.Start) >= 0 && p.Compare(r.End) < 0
}

// Overlaps returns true if the ranges share at least one character.
func (r Range) Overlaps(other Range) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// Touches returns true if the ranges overlap or are adjacent.
func (r Range) Touches(other Range) bool {
	return r.Start.Compare(other.End) <= 0 && other.Start.Compare(r.End) <= 0
}

// Union returns the smallest range that contains both ranges.
func (r Range) Union(other Range) Range {
	return Range{
		Start: MinPosition(r.Start, other.Start),
		End:   MaxPosition(r.End, other.End),
	}
}

// IsSingleLine returns true if the range spans only one line.
func (r Range) IsSingleLine() bool {
	return r.Start.Line == r.End.Line
}
