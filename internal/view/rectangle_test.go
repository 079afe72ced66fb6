package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/cursorcore/internal/engine/buffer"
)

func TestRectangleCommitClampsShortLines(t *testing.T) {
	b := newDoc("abcdefghij", "abc", "abcdefghijkl")
	s := New()

	s.BeginRectangle(b, pos(0, 0))
	s.DragRectangle(b, pos(2, 10))

	rect, ok := s.Rectangle()
	require.True(t, ok)
	assert.Equal(t, 3, rect.Height())
	assert.Equal(t, []buffer.Position{pos(0, 10), pos(1, 3), pos(2, 10)}, s.RectanglePreview(b))
	assert.Equal(t, 1, s.Len(), "pairs untouched during the drag")

	require.True(t, s.CommitRectangle(b))
	require.Equal(t, 3, s.Len())

	line1 := s.Pairs()[1]
	assert.Equal(t, pos(1, 0), line1.Selection.Anchor)
	assert.Equal(t, pos(1, 3), line1.Selection.Head)
	assert.Equal(t, pos(1, 3), line1.Position())
	assert.Equal(t, 0, s.ActiveIndex())

	_, ok = s.Rectangle()
	assert.False(t, ok)
	assert.NoError(t, s.CheckInvariants(b))
}

func TestRectangleLeftwardDrag(t *testing.T) {
	b := newDoc("abcdef", "abcdef")
	s := New()

	s.BeginRectangle(b, pos(0, 4))
	s.DragRectangle(b, pos(1, 1))
	require.True(t, s.CommitRectangle(b))

	for i, p := range s.Pairs() {
		assert.Equal(t, pos(i, 1), p.Position(), "cursor on the left edge")
		assert.Equal(t, pos(i, 4), p.Selection.Anchor)
	}
}

func TestRectangleZeroWidth(t *testing.T) {
	b := newDoc("abc", "abc", "abc")
	s := New()

	s.BeginRectangle(b, pos(0, 2))
	s.DragRectangle(b, pos(2, 2))
	require.True(t, s.CommitRectangle(b))

	require.Equal(t, 3, s.Len(), "every covered line gets a cursor")
	assert.False(t, s.HasSelection())
}

func TestRectangleCancelRestores(t *testing.T) {
	b := newDoc("abc", "def", "ghi")
	s := New(WithPairs(cursorsAt(pos(0, 1), pos(2, 2)), 1))
	before := s.Pairs()

	s.BeginRectangle(b, pos(0, 0))
	s.DragRectangle(b, pos(2, 3))
	require.True(t, s.CancelRectangle())

	assert.Equal(t, before, s.Pairs())
	assert.Equal(t, 1, s.ActiveIndex())
	assert.False(t, s.CancelRectangle(), "no drag left to cancel")
	assert.False(t, s.CommitRectangle(b))
}

func TestRectangleLinesClampedToDocument(t *testing.T) {
	b := newDoc("abc", "def")
	s := New()

	s.BeginRectangle(b, pos(-3, 0))
	s.DragRectangle(b, pos(40, 2))
	require.True(t, s.CommitRectangle(b))

	assert.Equal(t, []buffer.Position{pos(0, 2), pos(1, 2)}, positions(s))
}
