package numeric

import (
	"math"
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/dshills/textcore/cursor"
)

// FuzzParseFloat checks that parsing arbitrary text never panics, that all
// encodings agree, and that plain short integers match the platform parser
// exactly (they are exactly representable, so both sides must be exact).
func FuzzParseFloat(f *testing.F) {
	f.Add("")
	f.Add("0")
	f.Add("-0")
	f.Add("3.14159")
	f.Add("1e10")
	f.Add("-2.5e-3")
	f.Add("nan")
	f.Add("INF")
	f.Add("  +12.5e-3")
	f.Add("abc")
	f.Add(".5")
	f.Add("1e999")
	f.Add("00000000000000000000.00000000000000001")
	f.Add("99999999999999999999999999999999999999")

	f.Fuzz(func(t *testing.T, s string) {
		if !utf8.ValidString(s) || strings.ContainsRune(s, 0) {
			return
		}

		got := ParseFloat(cursor.NewUTF8(s))

		if g16 := ParseFloat(cursor.NewUTF16(s)); !sameFloat(got, g16) {
			t.Errorf("UTF8/UTF16 disagree on %q: %v vs %v", s, got, g16)
		}
		if g32 := ParseFloat(cursor.NewUTF32(s)); !sameFloat(got, g32) {
			t.Errorf("UTF8/UTF32 disagree on %q: %v vs %v", s, got, g32)
		}

		if isShortInteger(s) {
			want, err := strconv.ParseFloat(s, 64)
			if err == nil && got != want {
				t.Errorf("ParseFloat(%q) = %v, want %v", s, got, want)
			}
		}
	})
}

// FuzzParseInt checks panic-freedom and agreement with the platform parser
// on inputs that fit the token grammar without overflowing.
func FuzzParseInt(f *testing.F) {
	f.Add("")
	f.Add("0")
	f.Add("-1")
	f.Add("2147483648")
	f.Add("  42tail")

	f.Fuzz(func(t *testing.T, s string) {
		if !utf8.ValidString(s) || strings.ContainsRune(s, 0) {
			return
		}

		got := ParseInt[int64](cursor.NewUTF8(s))

		trimmed := strings.TrimLeft(s, " \t\n\r")
		if isShortInteger(trimmed) {
			want, err := strconv.ParseInt(trimmed, 10, 64)
			if err == nil && got != want {
				t.Errorf("ParseInt(%q) = %d, want %d", s, got, want)
			}
		}
	})
}

// isShortInteger matches an optionally negated run of at most 15 digits,
// which both parsers convert exactly.
func isShortInteger(s string) bool {
	digits := s
	if strings.HasPrefix(digits, "-") {
		digits = digits[1:]
	}
	if len(digits) == 0 || len(digits) > 15 {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func sameFloat(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return math.Float64bits(a) == math.Float64bits(b)
}
