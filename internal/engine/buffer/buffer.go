package buffer

import (
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/rivo/uniseg"
)

// Errors returned by buffer operations.
var (
	ErrPositionOutOfRange = errors.New("position out of range")
	ErrRangeInvalid       = errors.New("invalid range")
)

// LineEnding specifies the line ending style used when serializing.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
	LineEndingCR                     // Old Mac: \r
)

// String returns the string representation of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingCRLF:
		return "\\r\\n"
	case LineEndingCR:
		return "\\r"
	default:
		return "\\n"
	}
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// Buffer is a line-oriented text store whose columns are grapheme clusters.
// It implements Reader and accepts Edits expressed in the same coordinates.
// All methods are thread-safe.
type Buffer struct {
	mu         sync.RWMutex
	lines      [][]string
	lineEnding LineEnding
	classifier Classifier
	revision   uint64
}

var _ Reader = (*Buffer)(nil)

// NewBuffer creates a new buffer holding a single empty line.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{
		lines:      [][]string{nil},
		lineEnding: LineEndingLF,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NewBufferFromString creates a buffer with initial content.
// Any line ending style in s is accepted.
func NewBufferFromString(s string, opts ...Option) *Buffer {
	b := NewBuffer(opts...)
	b.lines = splitLines(normalizeLineEndings(s))
	return b
}

// NewBufferFromReader creates a buffer from an io.Reader.
func NewBufferFromReader(r io.Reader, opts ...Option) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewBufferFromString(string(data), opts...), nil
}

// normalizeLineEndings converts CRLF and CR to LF.
func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// splitLines segments LF-separated text into lines of grapheme clusters.
func splitLines(s string) [][]string {
	parts := strings.Split(s, "\n")
	lines := make([][]string, len(parts))
	for i, part := range parts {
		lines[i] = splitClusters(part)
	}
	return lines
}

// splitClusters returns the grapheme clusters of a single line.
func splitClusters(s string) []string {
	if s == "" {
		return nil
	}
	clusters := make([]string, 0, len(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}
	return clusters
}

// Read Operations

// Text returns the full buffer content using the buffer's line ending.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.joined(b.lineEnding.Sequence())
}

func (b *Buffer) joined(sep string) string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteString(sep)
		}
		for _, c := range line {
			sb.WriteString(c)
		}
	}
	return sb.String()
}

// LineCount returns the number of lines (always >= 1).
func (b *Buffer) LineCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lines)
}

// LineText returns the text of a line without its terminator.
func (b *Buffer) LineText(line int) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if line < 0 || line >= len(b.lines) {
		return ""
	}
	return strings.Join(b.lines[line], "")
}

// LineLength returns the number of characters on a line.
func (b *Buffer) LineLength(line int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if line < 0 || line >= len(b.lines) {
		return 0
	}
	return len(b.lines[line])
}

// CharAt returns the grapheme cluster at (line, column).
func (b *Buffer) CharAt(line, column int) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if line < 0 || line >= len(b.lines) || column < 0 || column >= len(b.lines[line]) {
		return "", false
	}
	return b.lines[line][column], true
}

// CharTypeAt classifies the character at (line, column).
func (b *Buffer) CharTypeAt(line, column int) (CharType, bool) {
	c, ok := b.CharAt(line, column)
	if !ok {
		return Whitespace, false
	}
	return b.classifier.ClassifyCluster(c), true
}

// FirstNonWhitespaceColumn returns the first column holding a
// non-whitespace character, or the line length for blank lines.
func (b *Buffer) FirstNonWhitespaceColumn(line int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if line < 0 || line >= len(b.lines) {
		return 0
	}
	for i, c := range b.lines[line] {
		if b.classifier.ClassifyCluster(c) != Whitespace {
			return i
		}
	}
	return len(b.lines[line])
}

// LastNonWhitespaceColumn returns the column after the last non-whitespace
// character, or 0 for blank lines.
func (b *Buffer) LastNonWhitespaceColumn(line int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if line < 0 || line >= len(b.lines) {
		return 0
	}
	l := b.lines[line]
	for i := len(l) - 1; i >= 0; i-- {
		if b.classifier.ClassifyCluster(l[i]) != Whitespace {
			return i + 1
		}
	}
	return 0
}

// TextRange returns the text covered by r, joined with LF.
func (b *Buffer) TextRange(r Range) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	r = NewRange(b.clamp(r.Start), b.clamp(r.End))

	var sb strings.Builder
	for line := r.Start.Line; line <= r.End.Line; line++ {
		l := b.lines[line]
		from, to := 0, len(l)
		if line == r.Start.Line {
			from = r.Start.Column
		}
		if line == r.End.Line {
			to = r.End.Column
		}
		for _, c := range l[from:to] {
			sb.WriteString(c)
		}
		if line < r.End.Line {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// clamp limits p to the buffer (internal, no lock).
func (b *Buffer) clamp(p Position) Position {
	if p.Line < 0 {
		return Position{}
	}
	if p.Line >= len(b.lines) {
		last := len(b.lines) - 1
		return Position{Line: last, Column: len(b.lines[last])}
	}
	if p.Column < 0 {
		p.Column = 0
	}
	if p.Column > len(b.lines[p.Line]) {
		p.Column = len(b.lines[p.Line])
	}
	return p
}

// valid reports whether p addresses an existing position (internal, no lock).
func (b *Buffer) valid(p Position) bool {
	return p.Line >= 0 && p.Line < len(b.lines) &&
		p.Column >= 0 && p.Column <= len(b.lines[p.Line])
}

// Write Operations

// Insert inserts text at the given position.
// Returns the position just after the inserted text.
func (b *Buffer) Insert(at Position, text string) (Position, error) {
	return b.ApplyEdit(NewInsert(at, text))
}

// Delete removes the text in r.
func (b *Buffer) Delete(r Range) error {
	_, err := b.ApplyEdit(NewDelete(r))
	return err
}

// ApplyEdit applies a single edit.
// Returns the position just after the new text.
func (b *Buffer) ApplyEdit(edit Edit) (Position, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	start, end := edit.Range.Start, edit.Range.End
	if !b.valid(start) || !b.valid(end) {
		return Position{}, ErrPositionOutOfRange
	}
	if end.Before(start) {
		return Position{}, ErrRangeInvalid
	}

	head := strings.Join(b.lines[start.Line][:start.Column], "")
	tail := strings.Join(b.lines[end.Line][end.Column:], "")
	prefix := head + normalizeLineEndings(edit.NewText)

	replacement := splitLines(prefix + tail)

	lines := make([][]string, 0, len(b.lines)-(end.Line-start.Line)+len(replacement)-1)
	lines = append(lines, b.lines[:start.Line]...)
	lines = append(lines, replacement...)
	lines = append(lines, b.lines[end.Line+1:]...)
	b.lines = lines
	b.revision++

	lastBreak := strings.LastIndexByte(prefix, '\n')
	return Position{
		Line:   start.Line + strings.Count(prefix, "\n"),
		Column: CharCount(prefix[lastBreak+1:]),
	}, nil
}

// Revision returns a counter incremented by every applied edit.
func (b *Buffer) Revision() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revision
}

// LineEnding returns the buffer's serialization line ending.
func (b *Buffer) LineEnding() LineEnding {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lineEnding
}
