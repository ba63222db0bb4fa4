package numeric

import (
	"math"

	"github.com/dshills/textcore/cursor"
)

// maxSignificantDigits caps full-precision accumulation at the 15 decimal
// digits a float64 guarantees plus two guard digits. Digits beyond the cap
// only adjust the exponent and round the last retained digit.
const maxSignificantDigits = 15 + 2

// maxAccumulatorValue is the largest lane value that can take one more
// decimal digit without overflowing uint32; above it the lane is flushed
// into its float64 partial result first.
const maxAccumulatorValue = (math.MaxUint32 - 9) / 10

// ParseFloat reads a decimal floating-point token from s and returns its
// value. Leading whitespace and an optional sign are consumed, then either
// a case-insensitive "nan"/"inf" prefix or digits with an optional decimal
// point and exponent. The cursor is advanced in place and stops at the
// first code point that is not part of the token. Unparsable input yields
// 0 (a bare sign yields signed zero); the function never fails.
//
// Digits are folded into two exact integer lanes, one for the integer part
// and one for the fraction, each flushed into a float64 partial result
// before the lane can overflow. Once 17 significant digits have been seen,
// the last retained digit is rounded (up when the overflow digit is
// greater than 5, or equal to 5 with an odd last digit) and further digits
// contribute only to the effective exponent.
func ParseFloat(s cursor.Cursor) float64 {
	var result [2]float64
	var accumulator [2]uint32
	var exponentAdjustment [2]int
	exponentAccumulator := [2]int{-1, -1}

	var exponent, decPointIndex, digit, lastDigit, numSignificantDigits int
	var isNegative, digitsFound bool

	for s.IsWhitespace() {
		s.Advance()
	}

	switch s.Current() {
	case '-':
		isNegative = true
		s.Advance()
	case '+':
		s.Advance()
	}

	switch s.ToLower() {
	case 'n':
		if consumeToken(s, "nan") {
			return math.NaN()
		}
	case 'i':
		if consumeToken(s, "inf") {
			if isNegative {
				return math.Inf(-1)
			}
			return math.Inf(1)
		}
	}

	for {
		if s.IsDigit() {
			lastDigit = digit
			digit = int(s.Advance() - '0')
			digitsFound = true

			if decPointIndex != 0 {
				exponentAdjustment[1]++
			}

			// Leading zeros cost no significant-digit budget.
			if numSignificantDigits == 0 && digit == 0 {
				continue
			}

			numSignificantDigits++
			if numSignificantDigits > maxSignificantDigits {
				if digit > 5 || (digit == 5 && lastDigit&1 != 0) {
					accumulator[decPointIndex]++
				}

				if decPointIndex > 0 {
					exponentAdjustment[1]--
				} else {
					exponentAdjustment[0]++
				}

				// Remaining digits only shift magnitude.
				for s.IsDigit() {
					s.Advance()
					if decPointIndex == 0 {
						exponentAdjustment[0]++
					}
				}
			} else {
				if accumulator[decPointIndex] > maxAccumulatorValue {
					result[decPointIndex] = mulexp10(result[decPointIndex], exponentAccumulator[decPointIndex]) +
						float64(accumulator[decPointIndex])
					accumulator[decPointIndex] = 0
					exponentAccumulator[decPointIndex] = 0
				}

				accumulator[decPointIndex] = accumulator[decPointIndex]*10 + uint32(digit)
				exponentAccumulator[decPointIndex]++
			}
		} else if decPointIndex == 0 && s.Current() == '.' {
			s.Advance()
			decPointIndex = 1

			if numSignificantDigits > maxSignificantDigits {
				for s.IsDigit() {
					s.Advance()
				}
				break
			}
		} else {
			break
		}
	}

	result[0] = mulexp10(result[0], exponentAccumulator[0]) + float64(accumulator[0])

	if decPointIndex != 0 {
		result[1] = mulexp10(result[1], exponentAccumulator[1]) + float64(accumulator[1])
	}

	if c := s.Current(); (c == 'e' || c == 'E') && digitsFound {
		s.Advance()
		negativeExponent := false

		switch s.Current() {
		case '-':
			negativeExponent = true
			s.Advance()
		case '+':
			s.Advance()
		}

		for s.IsDigit() {
			exponent = exponent*10 + int(s.Advance()-'0')
		}

		if negativeExponent {
			exponent = -exponent
		}
	}

	r := mulexp10(result[0], exponent+exponentAdjustment[0])
	if decPointIndex != 0 {
		r += mulexp10(result[1], exponent-exponentAdjustment[1])
	}

	if isNegative {
		return -r
	}
	return r
}

// consumeToken reports whether the text at s case-insensitively begins
// with token, consuming it when it does. Anything following the token is
// left for the caller.
func consumeToken(s cursor.Cursor, token string) bool {
	p := s.Clone()
	for _, want := range token {
		if p.ToLower() != want {
			return false
		}
		p.Advance()
	}
	for range token {
		s.Advance()
	}
	return true
}

// mulexp10 returns value * 10^exponent using binary exponentiation, with a
// division for negative exponents so small magnitudes keep full precision.
func mulexp10(value float64, exponent int) float64 {
	if exponent == 0 {
		return value
	}
	if value == 0 {
		return 0
	}

	negative := exponent < 0
	if negative {
		exponent = -exponent
	}

	result, power := 1.0, 10.0
	for bit := 1; exponent != 0; bit <<= 1 {
		if exponent&bit != 0 {
			exponent ^= bit
			result *= power
			if exponent == 0 {
				break
			}
		}
		power *= power
	}

	if negative {
		return value / result
	}
	return value * result
}
