// Package cursor provides cursors, selections and the multi-cursor set.
//
// The cursor package handles:
//
//   - Line/column cursors that remember a desired column for vertical motion
//   - Text selections with an anchor/head model via Selection
//   - Cursor/selection pairs held in a Set with an active index
//   - Deduplication, merging and edit ordering across cursors
//   - Translating pairs through buffer edits
//
// Selection Model:
//
// Selections use an anchor/head model where:
//   - Anchor: The position where the selection started
//   - Head: The current cursor position (where typing would occur)
//
// When Anchor == Head, the selection represents just a cursor with no
// selected text. The head of every selection in a Set always equals the
// position of its paired cursor.
//
// Multi-Cursor Support:
//
// Set keeps its pairs in insertion order. Callers decide when to run
// Deduplicate (after motions and edits) and MergeOverlapping (after word,
// line and occurrence selection). EditOrder returns the indices in the order
// edits must be applied: descending document position.
//
// Basic usage:
//
//	set := cursor.NewSetAt(buffer.Pos(0, 0))
//	set.Add(cursor.PairAt(buffer.Pos(3, 4)))
//
//	for _, i := range set.EditOrder() {
//		edit := buffer.NewInsert(set.Get(i).Position(), "x")
//		// apply edit to the buffer, then
//		cursor.TranslateSet(set, edit, i)
//	}
//	set.Deduplicate()
//
// Thread Safety:
//
// Cursor, Selection and Pair are immutable value types and safe for
// concurrent use. Set is not thread-safe and should be protected
// by external synchronization if accessed concurrently.
package cursor
