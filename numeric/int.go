package numeric

import (
	"golang.org/x/exp/constraints"

	"github.com/dshills/textcore/cursor"
)

// ParseInt reads a decimal integer token from s into a caller-chosen
// fixed-width signed type. Leading whitespace and an optional '-' are
// consumed (a leading '+' is not recognized), then ASCII digits until the
// first non-digit. The cursor stops at the first unconsumed code point.
// No digits yields 0.
//
// Overflow is not detected: digits keep folding in with T's native
// two's-complement wraparound, so ParseInt[int32] of "2147483648" returns
// math.MinInt32. Callers that need range checking must validate the token
// themselves; this wraparound is observable behavior that existing callers
// rely on.
func ParseInt[T constraints.Signed](s cursor.Cursor) T {
	var v T

	for s.IsWhitespace() {
		s.Advance()
	}

	isNeg := s.Current() == '-'
	if isNeg {
		s.Advance()
	}

	for s.IsDigit() {
		v = v*10 + T(s.Advance()-'0')
	}

	if isNeg {
		return -v
	}
	return v
}
