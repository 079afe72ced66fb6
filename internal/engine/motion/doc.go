// Package motion computes where a single cursor lands after a motion.
//
// Apply is a pure function of a buffer.Reader snapshot, a cursor and a
// motion Kind. It never mutates shared state and never returns a position
// outside the document: every result is clamped to existing lines and to
// [0, LineLength(line)].
//
// Vertical motions (LineUp, LineDown, PageUp, PageDown) keep the cursor's
// desired column so that passing through a short line does not lose the
// horizontal position. Every other motion clears it.
//
// Word motions classify characters as whitespace, word or punctuation
// through the Reader and stop at the first class change, so a run of
// whitespace is a stop of its own. Line boundaries are crossed one step at
// a time.
//
// LineStartSmart and LineEndSmart toggle between the line bounds and the
// first or last non-whitespace column.
//
// WordAt and LineRange expose the same boundaries for word and line
// selection.
package motion
