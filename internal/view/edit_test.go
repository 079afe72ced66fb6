package view

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/cursorcore/internal/engine/buffer"
	"github.com/dshills/cursorcore/internal/engine/cursor"
)

func TestInsertTextAtEveryCursor(t *testing.T) {
	b := newDoc("abcdefgh")
	s := New(WithPairs(cursorsAt(pos(0, 2), pos(0, 5)), 0))

	assert.Equal(t, []int{1, 0}, s.EditOrder())
	require.NoError(t, s.InsertText(b, b, "X"))

	assert.Equal(t, "abXcdeXfgh", b.Text())
	assert.Equal(t, []buffer.Position{pos(0, 3), pos(0, 7)}, positions(s))
	assert.NoError(t, s.CheckInvariants(b))
}

func TestInsertMultilineText(t *testing.T) {
	b := newDoc("ab", "cd")
	s := New(WithPairs(cursorsAt(pos(0, 1), pos(1, 1)), 0))

	require.NoError(t, s.InsertText(b, b, "1\n2"))

	assert.Equal(t, "a1\n2b\nc1\n2d", b.Text())
	assert.Equal(t, []buffer.Position{pos(1, 1), pos(3, 1)}, positions(s))
}

func TestDeleteSelections(t *testing.T) {
	b := newDoc("one two three")
	s := New(WithPairs([]cursor.Pair{
		sel(pos(0, 0), pos(0, 4)),
		sel(pos(0, 13), pos(0, 8)),
	}, 0))

	require.NoError(t, s.DeleteSelections(b, b))

	assert.Equal(t, "two ", b.Text())
	assert.Equal(t, []buffer.Position{pos(0, 0), pos(0, 4)}, positions(s))
	assert.False(t, s.HasSelection())
}

func TestApplyEditsMergesConvergingCursors(t *testing.T) {
	b := newDoc("abcdef")
	s := New(WithPairs([]cursor.Pair{
		sel(pos(0, 0), pos(0, 3)),
		cursor.PairAt(pos(0, 2)),
	}, 1))

	require.NoError(t, s.InsertText(b, b, ""))

	assert.Equal(t, "def", b.Text())
	require.Equal(t, 1, s.Len())
	assert.Equal(t, pos(0, 0), s.Primary().Position())
}

type failingEditor struct{}

var errReadOnly = errors.New("read only")

func (failingEditor) ApplyEdit(buffer.Edit) (buffer.Position, error) {
	return buffer.Position{}, errReadOnly
}

func TestApplyEditsError(t *testing.T) {
	b := newDoc("abc")
	s := New(WithPairs(cursorsAt(pos(0, 1)), 0))

	err := s.InsertText(b, failingEditor{}, "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, errReadOnly)
	assert.Equal(t, pos(0, 1), s.Primary().Position())
}
