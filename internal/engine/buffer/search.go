package buffer

import "strings"

// FindNext returns the first occurrence of text starting at or after from,
// wrapping around to the document start. Matching is exact and may span lines.
func (b *Buffer) FindNext(text string, from Position) (Range, bool) {
	if text == "" {
		return Range{}, false
	}
	b.mu.RLock()
	defer b.mu.RUnlock()

	doc := b.joined("\n")
	off := b.offsetOf(b.clamp(from))
	if i := strings.Index(doc[off:], text); i >= 0 {
		return b.rangeAt(doc, off+i, len(text)), true
	}
	if i := strings.Index(doc, text); i >= 0 {
		return b.rangeAt(doc, i, len(text)), true
	}
	return Range{}, false
}

// FindAll returns every non-overlapping occurrence of text in document order.
func (b *Buffer) FindAll(text string) []Range {
	if text == "" {
		return nil
	}
	b.mu.RLock()
	defer b.mu.RUnlock()

	doc := b.joined("\n")
	var out []Range
	for off := 0; off <= len(doc); {
		i := strings.Index(doc[off:], text)
		if i < 0 {
			break
		}
		out = append(out, b.rangeAt(doc, off+i, len(text)))
		off += i + len(text)
	}
	return out
}

// offsetOf converts a position into a byte offset of the LF-joined text
// (internal, no lock).
func (b *Buffer) offsetOf(p Position) int {
	off := 0
	for line := 0; line < p.Line; line++ {
		for _, c := range b.lines[line] {
			off += len(c)
		}
		off++
	}
	for _, c := range b.lines[p.Line][:p.Column] {
		off += len(c)
	}
	return off
}

// rangeAt converts a byte span of the LF-joined text into a Range.
func (b *Buffer) rangeAt(doc string, off, n int) Range {
	return Range{Start: positionAt(doc, off), End: positionAt(doc, off+n)}
}

// positionAt converts a byte offset of LF-joined text into a Position.
func positionAt(doc string, off int) Position {
	prefix := doc[:off]
	lineStart := strings.LastIndexByte(prefix, '\n') + 1
	return Position{
		Line:   strings.Count(prefix, "\n"),
		Column: CharCount(prefix[lineStart:]),
	}
}
