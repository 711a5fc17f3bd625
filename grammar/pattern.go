// This file implements the matched-count witness language: generation and
// recognition of n opening symbols followed by n closing symbols.
package grammar

import "strings"

// Surface symbols of the witness language.
const (
	OpeningSymbol = "a"
	ClosingSymbol = "b"
)

// GenerateMatchedPattern returns the witness string with exactly n opening
// symbols followed by n closing symbols, as whitespace-separated tokens.
// Construction is recursive center embedding: each level wraps the level
// below in one opening/closing pair. n ≤ 0 yields the empty string.
func GenerateMatchedPattern(n int) string {
	if n <= 0 {
		return ""
	}
	inner := GenerateMatchedPattern(n - 1)
	if inner == "" {
		return OpeningSymbol + " " + ClosingSymbol
	}

	return OpeningSymbol + " " + inner + " " + ClosingSymbol
}

// IsMatchedPattern reports whether s is a witness string: some n ≥ 0
// opening symbols followed by exactly n closing symbols, tokenized on
// whitespace. The empty string is the n = 0 member.
func IsMatchedPattern(s string) bool {
	toks := strings.Fields(s)
	if len(toks)%2 != 0 {
		return false
	}
	n := len(toks) / 2
	var i int
	for i = 0; i < n; i++ {
		if toks[i] != OpeningSymbol {
			return false
		}
	}
	for i = n; i < len(toks); i++ {
		if toks[i] != ClosingSymbol {
			return false
		}
	}

	return true
}
