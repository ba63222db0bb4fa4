package lexical

import "github.com/dshills/textcore/cursor"

// Compare consumes s1 and s2 in lockstep and returns the sign of the first
// differing pair of code points, or 0 when both reach their terminator
// without a difference. Ordering is by code point value, independent of
// either side's encoding.
func Compare(s1, s2 cursor.Cursor) int {
	for {
		c1 := s1.Advance()
		c2 := s2.Advance()

		if diff := c1 - c2; diff != 0 {
			if diff < 0 {
				return -1
			}
			return 1
		}
		if c1 == 0 {
			return 0
		}
	}
}

// CompareUpTo is Compare bounded to at most maxChars code points; an
// exhausted bound counts as equality.
func CompareUpTo(s1, s2 cursor.Cursor, maxChars int) int {
	for ; maxChars > 0; maxChars-- {
		c1 := s1.Advance()
		c2 := s2.Advance()

		if diff := c1 - c2; diff != 0 {
			if diff < 0 {
				return -1
			}
			return 1
		}
		if c1 == 0 {
			break
		}
	}
	return 0
}

// CompareIgnoreCase compares upper-case folds of each pair of code points.
// Both cursors still advance by one raw code point per step.
func CompareIgnoreCase(s1, s2 cursor.Cursor) int {
	for {
		c1 := s1.ToUpper()
		c2 := s2.ToUpper()
		s1.Advance()
		s2.Advance()

		if diff := c1 - c2; diff != 0 {
			if diff < 0 {
				return -1
			}
			return 1
		}
		if c1 == 0 {
			return 0
		}
	}
}

// CompareIgnoreCaseUpTo is CompareIgnoreCase bounded to at most maxChars
// code points; an exhausted bound counts as equality.
func CompareIgnoreCaseUpTo(s1, s2 cursor.Cursor, maxChars int) int {
	for ; maxChars > 0; maxChars-- {
		c1 := s1.ToUpper()
		c2 := s2.ToUpper()
		s1.Advance()
		s2.Advance()

		if diff := c1 - c2; diff != 0 {
			if diff < 0 {
				return -1
			}
			return 1
		}
		if c1 == 0 {
			break
		}
	}
	return 0
}
