package motion

import (
	"testing"

	"github.com/dshills/cursorcore/internal/engine/buffer"
)

func TestWordAt(t *testing.T) {
	b := buffer.NewBufferFromString("foo.bar  baz\n\n  ")

	tests := []struct {
		name string
		at   buffer.Position
		want buffer.Range
		ok   bool
	}{
		{"inside word", buffer.Pos(0, 1), buffer.NewRange(buffer.Pos(0, 0), buffer.Pos(0, 3)), true},
		{"word start", buffer.Pos(0, 4), buffer.NewRange(buffer.Pos(0, 4), buffer.Pos(0, 7)), true},
		{"punctuation", buffer.Pos(0, 3), buffer.NewRange(buffer.Pos(0, 3), buffer.Pos(0, 4)), true},
		{"whitespace", buffer.Pos(0, 7), buffer.Range{}, false},
		{"line end looks back", buffer.Pos(0, 12), buffer.NewRange(buffer.Pos(0, 9), buffer.Pos(0, 12)), true},
		{"empty line", buffer.Pos(1, 0), buffer.Range{}, false},
		{"blank line", buffer.Pos(2, 2), buffer.Range{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := WordAt(b, tt.at)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestWordAtGraphemes(t *testing.T) {
	b := buffer.NewBufferFromString("café au")

	got, ok := WordAt(b, buffer.Pos(0, 2))
	if !ok || got != buffer.NewRange(buffer.Pos(0, 0), buffer.Pos(0, 4)) {
		t.Errorf("expected 4-character word, got %s ok=%v", got, ok)
	}
}

func TestLineRange(t *testing.T) {
	b := buffer.NewBufferFromString("one\ntwo\nthree")

	if got := LineRange(b, 1); got != buffer.NewRange(buffer.Pos(1, 0), buffer.Pos(2, 0)) {
		t.Errorf("middle line should include its break, got %s", got)
	}
	if got := LineRange(b, 2); got != buffer.NewRange(buffer.Pos(2, 0), buffer.Pos(2, 5)) {
		t.Errorf("last line should end at its length, got %s", got)
	}
	if got := LineRange(b, 9); got.Start.Line != 2 {
		t.Errorf("line should be clamped, got %s", got)
	}
}

func TestDocumentRange(t *testing.T) {
	b := buffer.NewBufferFromString("ab\ncde")

	if got := DocumentRange(b); got != buffer.NewRange(buffer.Pos(0, 0), buffer.Pos(1, 3)) {
		t.Errorf("unexpected document range %s", got)
	}
}
