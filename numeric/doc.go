// Package numeric converts decimal text into numeric values without
// depending on the platform's numeric-parsing routines.
//
// Both parsers are pure functions over a character cursor: they consume as
// much of the cursor as forms a valid numeric token and leave it positioned
// at the first unconsumed code point. Neither parser can fail — malformed
// input degrades to zero, partial tokens are parsed up to the point of
// invalidity, and integer overflow wraps with native two's-complement
// arithmetic. Callers that need strict validation must check the token
// shape themselves.
//
// ParseFloat trades exact correct rounding for a bounded, allocation-free
// single pass: it retains 17 significant digits (15 guaranteed digits of a
// float64 plus two guard digits) in exact integer accumulators and folds
// everything beyond that into exponent bookkeeping and a final rounding of
// the last retained digit.
//
//	c := cursor.NewUTF8("-2.5e-3 remainder")
//	v := numeric.ParseFloat(c) // -0.0025, cursor at " remainder"
//	n := numeric.ParseInt[int32](cursor.NewUTF16("42"))
package numeric
