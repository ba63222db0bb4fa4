package cursor

import (
	"unicode"
	"unicode/utf16"
)

// UTF16 is a cursor over UTF-16 encoded text with 16-bit code units.
// Code points outside the basic multilingual plane occupy a surrogate
// pair; an unpaired surrogate unit is yielded as-is.
type UTF16 struct {
	buf []uint16
	pos int
}

// NewUTF16 returns a cursor at the start of a fresh terminated UTF-16
// encoding of s.
func NewUTF16(s string) *UTF16 {
	units := utf16.Encode([]rune(s))
	buf := make([]uint16, len(units)+1)
	copy(buf, units)
	return &UTF16{buf: buf}
}

// ForUTF16 returns a cursor at the start of caller-owned storage. The
// slice is not copied; a zero unit (or the end of the slice) terminates
// the text.
func ForUTF16(buf []uint16) *UTF16 {
	return &UTF16{buf: buf}
}

func (c *UTF16) decode() (rune, int) {
	if c.pos >= len(c.buf) || c.buf[c.pos] == 0 {
		return 0, 0
	}
	u := rune(c.buf[c.pos])
	if utf16.IsSurrogate(u) && c.pos+1 < len(c.buf) {
		if r := utf16.DecodeRune(u, rune(c.buf[c.pos+1])); r != unicode.ReplacementChar {
			return r, 2
		}
	}
	return u, 1
}

// Current returns the code point at the cursor, or 0 at the terminator.
func (c *UTF16) Current() rune {
	r, _ := c.decode()
	return r
}

// Advance returns the code point at the cursor and moves past it. At the
// terminator it returns 0 and does not move.
func (c *UTF16) Advance() rune {
	r, size := c.decode()
	c.pos += size
	return r
}

// IsDigit reports whether the current code point is an ASCII digit.
func (c *UTF16) IsDigit() bool { return isDigit(c.Current()) }

// IsWhitespace reports whether the current code point is whitespace.
func (c *UTF16) IsWhitespace() bool { return isWhitespace(c.Current()) }

// ToUpper returns the upper-case fold of the current code point.
func (c *UTF16) ToUpper() rune { return unicode.ToUpper(c.Current()) }

// ToLower returns the lower-case fold of the current code point.
func (c *UTF16) ToLower() rune { return unicode.ToLower(c.Current()) }

// RuneLen returns the bytes required to store r in UTF-16: 2 for the
// basic multilingual plane, 4 for a surrogate pair.
func (c *UTF16) RuneLen(r rune) int {
	if r >= 0x10000 && r <= unicode.MaxRune {
		return 4
	}
	return 2
}

// Write encodes r at the cursor position and advances past it. It does
// nothing when the encoded code point does not fit in the remaining buffer.
func (c *UTF16) Write(r rune) {
	if r >= 0x10000 && r <= unicode.MaxRune {
		if c.pos+2 > len(c.buf) {
			return
		}
		hi, lo := utf16.EncodeRune(r)
		c.buf[c.pos] = uint16(hi)
		c.buf[c.pos+1] = uint16(lo)
		c.pos += 2
		return
	}
	if c.pos+1 > len(c.buf) {
		return
	}
	c.buf[c.pos] = uint16(r)
	c.pos++
}

// Clone returns an independent cursor at the same position.
func (c *UTF16) Clone() Cursor {
	clone := *c
	return &clone
}
