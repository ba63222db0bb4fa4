package cursor

import "unicode"

// UTF32 is a cursor over text stored as one 32-bit code unit per code
// point.
type UTF32 struct {
	buf []rune
	pos int
}

// NewUTF32 returns a cursor at the start of a fresh terminated UTF-32
// encoding of s.
func NewUTF32(s string) *UTF32 {
	runes := []rune(s)
	buf := make([]rune, len(runes)+1)
	copy(buf, runes)
	return &UTF32{buf: buf}
}

// ForUTF32 returns a cursor at the start of caller-owned storage. The
// slice is not copied; a zero unit (or the end of the slice) terminates
// the text.
func ForUTF32(buf []rune) *UTF32 {
	return &UTF32{buf: buf}
}

// Current returns the code point at the cursor, or 0 at the terminator.
func (c *UTF32) Current() rune {
	if c.pos >= len(c.buf) {
		return 0
	}
	return c.buf[c.pos]
}

// Advance returns the code point at the cursor and moves past it. At the
// terminator it returns 0 and does not move.
func (c *UTF32) Advance() rune {
	r := c.Current()
	if r != 0 {
		c.pos++
	}
	return r
}

// IsDigit reports whether the current code point is an ASCII digit.
func (c *UTF32) IsDigit() bool { return isDigit(c.Current()) }

// IsWhitespace reports whether the current code point is whitespace.
func (c *UTF32) IsWhitespace() bool { return isWhitespace(c.Current()) }

// ToUpper returns the upper-case fold of the current code point.
func (c *UTF32) ToUpper() rune { return unicode.ToUpper(c.Current()) }

// ToLower returns the lower-case fold of the current code point.
func (c *UTF32) ToLower() rune { return unicode.ToLower(c.Current()) }

// RuneLen returns the bytes required to store any code point in UTF-32,
// which is always 4.
func (c *UTF32) RuneLen(rune) int { return 4 }

// Write stores r at the cursor position and advances past it. It does
// nothing when the buffer is exhausted.
func (c *UTF32) Write(r rune) {
	if c.pos >= len(c.buf) {
		return
	}
	c.buf[c.pos] = r
	c.pos++
}

// Clone returns an independent cursor at the same position.
func (c *UTF32) Clone() Cursor {
	clone := *c
	return &clone
}
