// Package view holds the cursor state of one open document view and the
// commands that change it.
//
// A State owns a cursor.Set (one or more cursor/selection pairs with a
// primary index), the viewport, the expand/shrink history and the record of
// pairs added by occurrence commands. The text store is never held; every
// command that reads text takes a buffer.Reader for the current snapshot.
//
// Every exported command leaves the State satisfying CheckInvariants.
package view

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dshills/cursorcore/internal/engine/buffer"
	"github.com/dshills/cursorcore/internal/engine/cursor"
	"github.com/dshills/cursorcore/internal/engine/rectangle"
	"github.com/dshills/cursorcore/internal/renderer/viewport"
)

// SelectionMode controls whether a motion moves or extends selections.
type SelectionMode uint8

const (
	// Move collapses selections and moves cursors.
	Move SelectionMode = iota
	// Extend moves selection heads and keeps anchors.
	Extend
)

// String returns the mode name.
func (m SelectionMode) String() string {
	if m == Extend {
		return "extend"
	}
	return "move"
}

// Settings are the tunable parts of a view.
type Settings struct {
	Margins     viewport.MarginConfig
	Reveal      viewport.RevealMode
	PageOverlap int // lines of context kept by PageUp/PageDown
}

// DefaultSettings returns the settings used by New.
func DefaultSettings() Settings {
	return Settings{
		Margins:     viewport.DefaultMargins(),
		Reveal:      viewport.RevealMinimal,
		PageOverlap: 1,
	}
}

// Default viewport size before the host reports one.
const (
	DefaultVisibleLines   = 24
	DefaultVisibleColumns = 80
)

// State is the cursor and viewport state of a single document view.
// It is not safe for concurrent use.
type State struct {
	id       uuid.UUID
	cursors  *cursor.Set
	viewport viewport.Viewport
	settings Settings

	rect    *rectangle.Session
	history []snapshot
	occ     *occurrences
}

// snapshot is one entry of the expand/shrink history.
type snapshot struct {
	pairs  []cursor.Pair
	active int
}

// Option configures a State.
type Option func(*State)

// WithViewportSize sets the initial viewport size.
func WithViewportSize(lines, columns int) Option {
	return func(s *State) {
		s.viewport = s.viewport.Resize(lines, columns)
	}
}

// WithSettings replaces the default settings.
func WithSettings(settings Settings) Option {
	return func(s *State) {
		s.settings = settings
	}
}

// WithPairs starts the view with the given pairs. Duplicate cursors are
// dropped.
func WithPairs(pairs []cursor.Pair, active int) Option {
	return func(s *State) {
		s.cursors.Replace(pairs, active)
		s.cursors.Deduplicate()
	}
}

// New creates a view with a single cursor at the document origin.
func New(opts ...Option) *State {
	s := &State{
		id:       uuid.New(),
		cursors:  cursor.NewSetAt(buffer.Position{}),
		viewport: viewport.New(DefaultVisibleLines, DefaultVisibleColumns),
		settings: DefaultSettings(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the view's identity, stable for its lifetime.
func (s *State) ID() uuid.UUID {
	return s.id
}

// Len returns the number of cursors.
func (s *State) Len() int {
	return s.cursors.Len()
}

// Pairs returns a copy of the cursor/selection pairs.
func (s *State) Pairs() []cursor.Pair {
	return s.cursors.Pairs()
}

// Cursors returns the cursors in pair order.
func (s *State) Cursors() []cursor.Cursor {
	return s.cursors.Cursors()
}

// Selections returns the selections in pair order.
func (s *State) Selections() []cursor.Selection {
	return s.cursors.Selections()
}

// ActiveIndex returns the index of the primary pair.
func (s *State) ActiveIndex() int {
	return s.cursors.ActiveIndex()
}

// Primary returns the primary pair.
func (s *State) Primary() cursor.Pair {
	return s.cursors.Active()
}

// HasSelection reports whether any pair has a non-empty selection.
func (s *State) HasSelection() bool {
	return s.cursors.HasSelection()
}

// EditOrder returns pair indices in the order buffer edits must be applied.
func (s *State) EditOrder() []int {
	return s.cursors.EditOrder()
}

// LinesCovered returns the lines touched by any pair, descending.
func (s *State) LinesCovered() []int {
	return s.cursors.LinesCovered()
}

// Settings returns the current settings.
func (s *State) Settings() Settings {
	return s.settings
}

// SetSettings replaces the settings and re-reveals the primary cursor.
func (s *State) SetSettings(r buffer.Reader, settings Settings) {
	s.settings = settings
	s.reveal(r, settings.Reveal)
}

// HistoryDepth returns the number of expand steps ShrinkSelection can undo.
func (s *State) HistoryDepth() int {
	return len(s.history)
}

// CheckInvariants returns an error wrapping cursor.ErrInvariant describing
// the first violated invariant, or nil. Positions are checked against r.
func (s *State) CheckInvariants(r buffer.Reader) error {
	if err := s.cursors.Validate(); err != nil {
		return err
	}
	for i, p := range s.cursors.Pairs() {
		for _, pos := range []buffer.Position{p.Selection.Anchor, p.Selection.Head} {
			if buffer.Clamp(r, pos) != pos {
				return fmt.Errorf("%w: pair %d position %s outside document", cursor.ErrInvariant, i, pos)
			}
		}
	}
	return nil
}

func (s *State) clearHistory() {
	s.history = nil
}

func (s *State) pushHistory() {
	s.history = append(s.history, snapshot{
		pairs:  s.cursors.Pairs(),
		active: s.cursors.ActiveIndex(),
	})
}
