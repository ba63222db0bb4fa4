package lexical

import (
	"unicode"

	"github.com/dshills/textcore/cursor"
)

// IndexOf returns the zero-based code-point offset of the first position
// where the remaining text of haystack matches needle for needle's full
// length, or -1 when the haystack is exhausted first. The comparison is
// case-sensitive; an empty needle matches at offset 0.
func IndexOf(haystack, needle cursor.Cursor) int {
	index := 0
	needleLength := Length(needle)

	for {
		if CompareUpTo(haystack.Clone(), needle.Clone(), needleLength) == 0 {
			return index
		}
		if haystack.Advance() == 0 {
			return -1
		}
		index++
	}
}

// IndexOfChar returns the code-point offset of the first occurrence of
// target in text, or -1 when absent.
func IndexOfChar(text cursor.Cursor, target rune) int {
	i := 0
	for text.Current() != 0 {
		if text.Advance() == target {
			return i
		}
		i++
	}
	return -1
}

// IndexOfCharIgnoreCase is IndexOfChar with both sides lower-case folded.
func IndexOfCharIgnoreCase(text cursor.Cursor, target rune) int {
	target = unicode.ToLower(target)
	i := 0
	for text.Current() != 0 {
		if text.ToLower() == target {
			return i
		}
		text.Advance()
		i++
	}
	return -1
}

// FindEndOfWhitespace returns a new cursor advanced past all leading
// whitespace. The input cursor is not moved.
func FindEndOfWhitespace(text cursor.Cursor) cursor.Cursor {
	p := text.Clone()
	for p.IsWhitespace() {
		p.Advance()
	}
	return p
}

// Length returns the number of code points remaining before the
// terminator. The input cursor is not moved.
func Length(text cursor.Cursor) int {
	n := 0
	p := text.Clone()
	for p.Advance() != 0 {
		n++
	}
	return n
}
