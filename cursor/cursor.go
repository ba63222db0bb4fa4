package cursor

import (
	"strings"
	"unicode"
)

// Cursor is a position in terminator-delimited text storage. Every
// implementation is total: no operation panics for any position within the
// cursor's buffer, and no operation raises an error.
type Cursor interface {
	// Current returns the code point at the cursor without consuming it.
	// It returns 0 at or after the terminator.
	Current() rune

	// Advance returns the code point at the cursor, then moves to the next
	// code point. At the terminator it returns 0 and does not move.
	Advance() rune

	// IsDigit reports whether Current is an ASCII decimal digit ('0'-'9').
	IsDigit() bool

	// IsWhitespace reports whether Current is a whitespace code point.
	IsWhitespace() bool

	// ToUpper returns the upper-case fold of Current without consuming it.
	ToUpper() rune

	// ToLower returns the lower-case fold of Current without consuming it.
	ToLower() rune

	// RuneLen returns the number of bytes required to store r in this
	// cursor's encoding.
	RuneLen(r rune) int

	// Write encodes r at the cursor position and advances past it. When the
	// remaining buffer cannot hold the encoded code point, Write does
	// nothing.
	Write(r rune)

	// Clone returns an independent cursor at the same position over the
	// same storage.
	Clone() Cursor
}

// isDigit matches ASCII decimal digits only. Numeric parsing is defined
// over ASCII digits regardless of encoding, so this deliberately excludes
// the wider Unicode Nd category.
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isWhitespace(r rune) bool {
	return unicode.IsSpace(r)
}

// Text decodes the remaining code points of c into a string. The cursor is
// not consumed. Intended for callers bridging back into native strings;
// the parsing and comparison algorithms never need it.
func Text(c Cursor) string {
	var sb strings.Builder
	p := c.Clone()
	for {
		r := p.Advance()
		if r == 0 {
			return sb.String()
		}
		sb.WriteRune(r)
	}
}
