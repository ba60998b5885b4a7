package naming

import "strings"

// Tokenize trims surrounding whitespace and splits on the single space
// character. Runs of spaces are not collapsed: each extra space produces an
// empty token that the validity filter later rejects. Empty input yields a
// single empty token.
func Tokenize(raw string) []string {
	return strings.Split(strings.TrimSpace(raw), " ")
}
