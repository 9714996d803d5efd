package rule

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Predicate helpers: stateless single-element classifiers, used as
// arguments to the predicate terminals Pred, While and WhileN. They
// are not rules themselves.
//
// Classes are backed by Unicode range tables; composite classes are
// merged once at package initialization.

var alnumTable = rangetable.Merge(unicode.L, unicode.Nd)

// IsAlpha reports whether r is an alphabetic code-point (Unicode
// category L).
func IsAlpha(r rune) bool {
	return unicode.Is(unicode.L, r)
}

// IsAlnum reports whether r is alphabetic or a decimal digit.
func IsAlnum(r rune) bool {
	return unicode.Is(alnumTable, r)
}

// IsDigit reports whether r is a decimal digit (Unicode category Nd).
func IsDigit(r rune) bool {
	return unicode.Is(unicode.Nd, r)
}

// IsHexDigit reports whether r is an ASCII hexadecimal digit.
func IsHexDigit(r rune) bool {
	return r >= '0' && r <= '9' || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F'
}

// IsSpace reports whether r is white space (Unicode White_Space).
func IsSpace(r rune) bool {
	return unicode.Is(unicode.White_Space, r)
}
