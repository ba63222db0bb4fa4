package cursor

import (
	"unicode"
	"unicode/utf8"
)

// UTF8 is a cursor over UTF-8 encoded text with 8-bit code units.
type UTF8 struct {
	buf []byte
	pos int
}

// NewUTF8 returns a cursor at the start of a fresh terminated copy of s.
func NewUTF8(s string) *UTF8 {
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return &UTF8{buf: buf}
}

// ForUTF8 returns a cursor at the start of caller-owned storage. The slice
// is not copied; a zero byte (or the end of the slice) terminates the text.
func ForUTF8(buf []byte) *UTF8 {
	return &UTF8{buf: buf}
}

// decode returns the code point at the cursor and its size in code units,
// or (0, 0) at the terminator.
func (c *UTF8) decode() (rune, int) {
	if c.pos >= len(c.buf) || c.buf[c.pos] == 0 {
		return 0, 0
	}
	return utf8.DecodeRune(c.buf[c.pos:])
}

// Current returns the code point at the cursor, or 0 at the terminator.
func (c *UTF8) Current() rune {
	r, _ := c.decode()
	return r
}

// Advance returns the code point at the cursor and moves past it. At the
// terminator it returns 0 and does not move.
func (c *UTF8) Advance() rune {
	r, size := c.decode()
	c.pos += size
	return r
}

// IsDigit reports whether the current code point is an ASCII digit.
func (c *UTF8) IsDigit() bool { return isDigit(c.Current()) }

// IsWhitespace reports whether the current code point is whitespace.
func (c *UTF8) IsWhitespace() bool { return isWhitespace(c.Current()) }

// ToUpper returns the upper-case fold of the current code point.
func (c *UTF8) ToUpper() rune { return unicode.ToUpper(c.Current()) }

// ToLower returns the lower-case fold of the current code point.
func (c *UTF8) ToLower() rune { return unicode.ToLower(c.Current()) }

// RuneLen returns the bytes required to store r in UTF-8. Invalid code
// points cost the size of the replacement character, which is what Write
// stores for them.
func (c *UTF8) RuneLen(r rune) int {
	if n := utf8.RuneLen(r); n > 0 {
		return n
	}
	return utf8.RuneLen(utf8.RuneError)
}

// Write encodes r at the cursor position and advances past it. It does
// nothing when the encoded code point does not fit in the remaining buffer.
func (c *UTF8) Write(r rune) {
	if c.pos+c.RuneLen(r) > len(c.buf) {
		return
	}
	c.pos += utf8.EncodeRune(c.buf[c.pos:], r)
}

// Clone returns an independent cursor at the same position.
func (c *UTF8) Clone() Cursor {
	clone := *c
	return &clone
}
