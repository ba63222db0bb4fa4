// Package cursor provides an encoding-agnostic character cursor: a
// read-and-advance position over caller-owned, terminator-delimited text
// storage.
//
// A cursor is a view, never a container. It does not allocate, does not own
// its buffer, and is mutated only by its own Advance and Write operations.
// Dereferencing at the terminator yields the code point zero and never
// advances past it, so every algorithm built on a cursor is bounded by the
// end of its buffer.
//
// Four concrete encodings implement the same contract:
//
//   - UTF8:  8-bit code units over []byte
//   - UTF16: 16-bit code units over []uint16, surrogate-pair aware
//   - UTF32: 32-bit code units over []rune
//   - ASCII: single-byte code units where code point == code unit
//
// Because every implementation satisfies the same Cursor interface, one
// algorithm body serves all encodings, and two-cursor operations (compare,
// transcode) may freely mix encodings on either side.
//
// Basic usage:
//
//	c := cursor.NewUTF8("3.14 apples")
//	for c.IsDigit() || c.Current() == '.' {
//	    c.Advance()
//	}
//	rest := cursor.Text(c) // " apples"
//
// Thread safety: a cursor value has no internal synchronization. Multiple
// independent cursors over the same immutable buffer may be used
// concurrently; a single cursor must not be advanced from two goroutines,
// and a buffer must not be mutated while any cursor is reading it.
package cursor
