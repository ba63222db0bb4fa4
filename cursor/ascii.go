package cursor

import "unicode"

// asciiSub replaces code points outside the 7-bit range when they are
// stored into an ASCII buffer. A zero byte would read as the terminator,
// so substitution is used instead of truncation.
const asciiSub = '?'

// ASCII is a cursor over single-byte text where every code point is its
// own code unit. Writing a code point above 0x7F stores '?'.
type ASCII struct {
	buf []byte
	pos int
}

// NewASCII returns a cursor at the start of a fresh terminated buffer
// holding the ASCII code points of s, with '?' substituted for anything
// outside the 7-bit range.
func NewASCII(s string) *ASCII {
	runes := []rune(s)
	buf := make([]byte, len(runes)+1)
	for i, r := range runes {
		if r > 0x7F {
			r = asciiSub
		}
		buf[i] = byte(r)
	}
	return &ASCII{buf: buf}
}

// ForASCII returns a cursor at the start of caller-owned storage. The
// slice is not copied; a zero byte (or the end of the slice) terminates
// the text.
func ForASCII(buf []byte) *ASCII {
	return &ASCII{buf: buf}
}

// Current returns the code point at the cursor, or 0 at the terminator.
func (c *ASCII) Current() rune {
	if c.pos >= len(c.buf) {
		return 0
	}
	return rune(c.buf[c.pos])
}

// Advance returns the code point at the cursor and moves past it. At the
// terminator it returns 0 and does not move.
func (c *ASCII) Advance() rune {
	r := c.Current()
	if r != 0 {
		c.pos++
	}
	return r
}

// IsDigit reports whether the current code point is an ASCII digit.
func (c *ASCII) IsDigit() bool { return isDigit(c.Current()) }

// IsWhitespace reports whether the current code point is whitespace.
func (c *ASCII) IsWhitespace() bool { return isWhitespace(c.Current()) }

// ToUpper returns the upper-case fold of the current code point.
func (c *ASCII) ToUpper() rune { return unicode.ToUpper(c.Current()) }

// ToLower returns the lower-case fold of the current code point.
func (c *ASCII) ToLower() rune { return unicode.ToLower(c.Current()) }

// RuneLen returns the bytes required to store any code point in this
// encoding, which is always 1.
func (c *ASCII) RuneLen(rune) int { return 1 }

// Write stores r at the cursor position and advances past it, substituting
// '?' for code points outside the 7-bit range. It does nothing when the
// buffer is exhausted.
func (c *ASCII) Write(r rune) {
	if c.pos >= len(c.buf) {
		return
	}
	if r > 0x7F {
		r = asciiSub
	}
	c.buf[c.pos] = byte(r)
	c.pos++
}

// Clone returns an independent cursor at the same position.
func (c *ASCII) Clone() Cursor {
	clone := *c
	return &clone
}
