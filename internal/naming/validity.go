package naming

import (
	"unicode/utf8"

	"github.com/backmassage/adsoyad/internal/alphabet"
)

// IsPlausible reports whether a normalized fragment can be part of a name:
// it needs at least one letter, at least one vowel, and at least one
// non-vowel. Empty strings, single vowels and consonant clusters such as
// "sdfg" all fail.
func IsPlausible(a *alphabet.Alphabet, fragment string) bool {
	letters := utf8.RuneCountInString(fragment)
	vowels := a.CountVowels(fragment)
	return letters >= 1 && vowels >= 1 && letters != vowels
}

// Partition splits fragments into those passing [IsPlausible] and those
// failing it in a single pass. Both outputs keep input order; rejects are
// never deduplicated. Neither slice is nil.
func Partition(a *alphabet.Alphabet, fragments []string) (survivors, rejects []string) {
	survivors = make([]string, 0, len(fragments))
	rejects = []string{}
	for _, f := range fragments {
		if IsPlausible(a, f) {
			survivors = append(survivors, f)
		} else {
			rejects = append(rejects, f)
		}
	}
	return survivors, rejects
}
