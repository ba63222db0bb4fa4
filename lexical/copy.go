package lexical

import "github.com/dshills/textcore/cursor"

// Copy transcodes code points from src into dst, one at a time, until the
// source terminator has been copied. The terminator is always written.
// Source and destination may use different encodings.
func Copy(dst, src cursor.Cursor) {
	for {
		c := src.Advance()
		dst.Write(c)
		if c == 0 {
			return
		}
	}
}

// CopyUpToBytes transcodes code points from src into dst until writing the
// next one would exceed maxBytes in dst's encoding, and returns the number
// of bytes written. The terminator is written when it fits within the
// budget. A code point that does not fit is still consumed from src.
func CopyUpToBytes(dst, src cursor.Cursor, maxBytes int) int {
	numBytesDone := 0

	for {
		c := src.Advance()
		bytesNeeded := dst.RuneLen(c)

		maxBytes -= bytesNeeded
		if maxBytes < 0 {
			break
		}

		numBytesDone += bytesNeeded
		dst.Write(c)
		if c == 0 {
			break
		}
	}

	return numBytesDone
}

// CopyUpToChars transcodes at most maxChars code points from src into dst.
// Hitting the source terminator early stops the copy and writes the
// terminator; when the count runs out first no terminator is written.
func CopyUpToChars(dst, src cursor.Cursor, maxChars int) {
	for ; maxChars > 0; maxChars-- {
		c := src.Advance()
		dst.Write(c)
		if c == 0 {
			return
		}
	}
}
