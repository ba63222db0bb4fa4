// Package lexical provides comparison, search, and transcoding primitives
// that work uniformly across text encodings.
//
// Every primitive is a free function over the cursor contract, so the two
// sides of any comparison or copy may use different encodings. Operations
// consume the cursors they are given (code point by code point, in
// lockstep for two-cursor operations) except FindEndOfWhitespace and
// Length, which work on clones and leave their input untouched.
//
// Nothing in this package can fail: comparisons return -1, 0, or 1,
// searches report absence with -1, and the copy family stops at the
// terminator or the given bound.
//
//	h := cursor.NewUTF8("abcdef")
//	n := cursor.NewUTF16("cd")
//	lexical.IndexOf(h, n) // 2
package lexical
