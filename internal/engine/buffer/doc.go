// Package buffer defines the document coordinates and the read-only query
// contract the cursor engine consumes, plus a line-oriented text store that
// satisfies it.
//
// The package provides:
//
//   - Position and Range in line/column character units
//   - CharType classification for word motions
//   - Reader, the five read-only queries motions and selections are built on
//   - Edit and its position translation rule for multi-cursor editing
//   - Buffer, a grapheme-aware line store implementing Reader
//
// Columns count grapheme clusters, not bytes, so "é" is one column.
//
// Basic usage:
//
//	buf := buffer.NewBufferFromString("hello\nworld")
//	buf.LineLength(1)              // 5
//	buf.CharTypeAt(0, 0)           // Word, true
//
//	edit := buffer.NewInsert(buffer.Position{Line: 0, Column: 5}, "!")
//	end, _ := buf.ApplyEdit(edit)  // (0:6)
//
//	// Shift a position that was recorded before the edit
//	p := edit.Translate(buffer.Position{Line: 1, Column: 0})
//
// Thread Safety:
//
// Position, Range and Edit are immutable value types. Buffer methods are
// safe for concurrent use; the cursor engine itself only ever reads through
// the Reader interface from a single goroutine.
package buffer
