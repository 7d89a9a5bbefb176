package textops

import "strings"

// ToUpper returns s with all letters mapped to upper case.
func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// ToLower returns s with all letters mapped to lower case.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// Reverse returns s with its runes in reverse order. Reversal is
// rune-correct, not byte-correct: multi-byte UTF-8 sequences stay
// intact. Combining characters are not reordered.
// Complexity: O(len(s)).
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// WordCount returns the number of whitespace-delimited words in s,
// where whitespace is defined by unicode.IsSpace. The empty string and
// all-whitespace strings count zero words.
// Complexity: O(len(s)).
func WordCount(s string) int {
	return len(strings.Fields(s))
}
