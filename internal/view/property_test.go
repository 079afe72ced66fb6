package view

import (
	"slices"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/dshills/cursorcore/internal/engine/buffer"
	"github.com/dshills/cursorcore/internal/engine/cursor"
	"github.com/dshills/cursorcore/internal/engine/motion"
)

// requireMerged fails if any two selections overlap or touch.
func requireMerged(t *rapid.T, s *State) {
	sels := s.Selections()
	slices.SortFunc(sels, func(a, b cursor.Selection) int {
		return a.Start().Compare(b.Start())
	})
	for i := 1; i < len(sels); i++ {
		if !sels[i].Start().After(sels[i-1].End()) {
			t.Fatalf("selections %s and %s overlap or touch", sels[i-1], sels[i])
		}
	}
}

func TestCommandSequencesKeepInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOfN(rapid.StringMatching(`[ab .]{0,8}`), 1, 8).Draw(t, "lines")
		b := buffer.NewBufferFromString(strings.Join(lines, "\n"))
		s := New(WithViewportSize(rapid.IntRange(1, 6).Draw(t, "height"), 20))

		drawPos := func(label string) buffer.Position {
			return buffer.Pos(
				rapid.IntRange(-1, 9).Draw(t, label+"Line"),
				rapid.IntRange(-1, 10).Draw(t, label+"Column"),
			)
		}

		steps := rapid.IntRange(1, 40).Draw(t, "steps")
		for step := 0; step < steps; step++ {
			merges := false
			switch rapid.IntRange(0, 19).Draw(t, "op") {
			case 0, 1, 2:
				k := rapid.SampledFrom(motion.Kinds()).Draw(t, "motion")
				mode := SelectionMode(rapid.IntRange(0, 1).Draw(t, "mode"))
				s.MoveAll(b, k, mode)
			case 3:
				s.SelectWord(b)
				merges = true
			case 4:
				s.SelectLine(b)
				merges = true
			case 5:
				s.SelectAll(b)
				merges = true
			case 6:
				s.AddCursorAbove(b)
			case 7:
				s.AddCursorBelow(b)
			case 8:
				s.ToggleCursorAt(b, drawPos("toggle"))
			case 9:
				s.ExpandSelection(b)
			case 10:
				s.ShrinkSelection(b)
			case 11:
				s.CollapseToPrimary()
			case 12:
				s.ExtendSelectionToPosition(b, drawPos("extend"))
			case 13:
				s.SetCursorPosition(b, drawPos("set"))
			case 14:
				s.BeginRectangle(b, drawPos("rectStart"))
				s.DragRectangle(b, drawPos("rectEnd"))
				if rapid.Bool().Draw(t, "commit") {
					s.CommitRectangle(b)
				} else {
					s.CancelRectangle()
				}
			case 15:
				text := rapid.SampledFrom([]string{"", "x", "ab", "\n", "a\nb"}).Draw(t, "text")
				if err := s.InsertText(b, b, text); err != nil {
					t.Fatalf("step %d: insert: %v", step, err)
				}
			case 16:
				if err := s.DeleteSelections(b, b); err != nil {
					t.Fatalf("step %d: delete: %v", step, err)
				}
			case 17:
				s.SelectNextOccurrence(b, b)
			case 18:
				s.UnselectOccurrence()
			case 19:
				s.Scroll(b, rapid.IntRange(-5, 5).Draw(t, "scroll"))
			}

			if err := s.CheckInvariants(b); err != nil {
				t.Fatalf("step %d: %v", step, err)
			}
			if s.occ != nil {
				for _, p := range s.occ.added {
					if s.cursors.IndexAt(p) < 0 {
						t.Fatalf("step %d: occurrence at %s holds no cursor", step, p)
					}
				}
			}
			if merges {
				requireMerged(t, s)
			}
		}
	})
}
