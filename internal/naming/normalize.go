package naming

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/backmassage/adsoyad/internal/alphabet"
)

// CellStep is one named transformation of a single token. Steps are applied
// in table order by [NormalizeFragment].
type CellStep struct {
	Name  string
	Apply func(a *alphabet.Alphabet, s string) string
}

// CellSteps is the ordered cell-normalization table. Order matters: NFC (a
// no-op unless the alphabet composes) must precede lowercasing, and letter
// filtering must follow it. Without composition a decomposed I + U+0307
// lowercases to ı and then loses the mark.
var CellSteps = []CellStep{
	{"nfc", composeNFC},
	{"strip-tags", func(_ *alphabet.Alphabet, s string) string { return StripTags(s) }},
	{"lowercase", func(a *alphabet.Alphabet, s string) string { return a.Lower(s) }},
	{"letters-only", func(_ *alphabet.Alphabet, s string) string { return RemoveNonLetters(s) }},
	{"trim", func(_ *alphabet.Alphabet, s string) string { return strings.TrimSpace(s) }},
	{"doubled-initial", func(_ *alphabet.Alphabet, s string) string { return RemoveRepeatingStartingLetter(s) }},
}

func composeNFC(a *alphabet.Alphabet, s string) string {
	if !a.Composes() {
		return s
	}
	return norm.NFC.String(s)
}

// NormalizeFragment runs every step of [CellSteps] over token and returns the
// possibly empty result.
func NormalizeFragment(a *alphabet.Alphabet, token string) string {
	for _, step := range CellSteps {
		token = step.Apply(a, token)
	}
	return token
}

// reTags matches markup-like <...> spans.
var reTags = regexp.MustCompile(`<[^>]*>`)

// StripTags removes every <...> span. A lone '<' is left for the letter
// filter to drop.
func StripTags(s string) string {
	return reTags.ReplaceAllString(s, "")
}

// RemoveNonLetters drops every rune that is not a Unicode letter: digits,
// punctuation, symbols, spaces and combining marks.
func RemoveNonLetters(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return r
		}
		return -1
	}, s)
}

// RemoveRepeatingStartingLetter drops the first rune when the first two runes
// are identical ("aahmet" -> "ahmet"). Turkish has no names that start with
// a doubled letter. Applied once, not recursively.
func RemoveRepeatingStartingLetter(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	second, _ := utf8.DecodeRuneInString(s[size:])
	if len(s) > size && first == second {
		return s[size:]
	}
	return s
}
