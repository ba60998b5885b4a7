// Package alphabet holds the casing and vowel rules of one alphabet as plain
// data, so the name pipeline in package naming never hard-codes a language.
//
// Turkish distinguishes dotted and dotless I as separate letter pairs:
//   - I (U+0049) and i (U+0069) lowercase to ı (U+0131)
//   - İ (U+0130) lowercases to i (U+0069)
//   - a leading i titles to İ, a leading ı titles to I
//
// Generic Unicode case mapping gets these wrong, so they are listed as
// explicit overrides. All other runes use the case rules of the alphabet's
// language tag via golang.org/x/text/cases.
//
// An *Alphabet is immutable after construction and safe for concurrent use.
// Its tag-bound casers are not, so each call borrows one from a pool.
package alphabet

import (
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Alphabet is the rule set for one target alphabet.
type Alphabet struct {
	Name string
	Tag  language.Tag

	vowels  map[rune]bool
	lower   map[rune]rune
	title   map[rune]rune
	compose bool
	builtin bool
	pool    *sync.Pool // of *casers bound to Tag
}

type casers struct {
	lower cases.Caser
	title cases.Caser
}

// TurkishName is the name of the built-in Turkish alphabet.
const TurkishName = "turkish"

// turkishVowels enumerates both cases explicitly instead of deriving one from
// the other, since case folding of I is locale dependent.
const turkishVowels = "aeıioöuüAEIİOÖUÜ"

// Turkish returns the built-in Turkish rule set.
func Turkish() *Alphabet {
	a := New(TurkishName, language.Turkish, turkishVowels,
		map[rune]rune{'I': 'ı', 'i': 'ı', 'İ': 'i'},
		map[rune]rune{'i': 'İ', 'ı': 'I'},
	)
	a.builtin = true
	return a
}

// New builds an Alphabet. vowels lists every rune counted as a vowel; lower
// and title map single runes to their replacement during lowercasing and
// first-letter capitalization. The maps are copied.
func New(name string, tag language.Tag, vowels string, lower, title map[rune]rune) *Alphabet {
	a := &Alphabet{
		Name:   name,
		Tag:    tag,
		vowels: make(map[rune]bool, utf8.RuneCountInString(vowels)),
		lower:  make(map[rune]rune, len(lower)),
		title:  make(map[rune]rune, len(title)),
	}
	a.pool = &sync.Pool{New: func() any {
		return &casers{lower: cases.Lower(tag), title: cases.Title(tag)}
	}}
	for _, r := range vowels {
		a.vowels[r] = true
	}
	for k, v := range lower {
		a.lower[k] = v
	}
	for k, v := range title {
		a.title[k] = v
	}
	return a
}

// Builtin reports whether a is the built-in Turkish alphabet rather than one
// loaded from a definition, even one that is also named "turkish".
func (a *Alphabet) Builtin() bool { return a.builtin }

// Composes reports whether tokens are composed to Unicode NFC before
// lowercasing. Off unless a definition sets compose = true, in which case a
// decomposed I + U+0307 is read as İ instead of losing its dot.
func (a *Alphabet) Composes() bool { return a.compose }

func (a *Alphabet) lowerString(s string) string {
	c := a.pool.Get().(*casers)
	defer a.pool.Put(c)
	return c.lower.String(s)
}

func (a *Alphabet) titleString(s string) string {
	c := a.pool.Get().(*casers)
	defer a.pool.Put(c)
	return c.title.String(s)
}

// Lower applies the lowercase overrides first, then the language's standard
// lowercase mapping to everything else.
func (a *Alphabet) Lower(s string) string {
	s = strings.Map(func(r rune) rune {
		if to, ok := a.lower[r]; ok {
			return to
		}
		return r
	}, s)
	return a.lowerString(s)
}

// Title capitalizes the first letter and lowercases the rest. When the first
// rune has a title override, the whole leading run of that rune is replaced
// by a single override rune.
func (a *Alphabet) Title(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	if to, ok := a.title[first]; ok {
		rest := strings.TrimLeft(s[size:], string(first))
		return string(to) + a.lowerString(rest)
	}
	return a.titleString(s)
}

// IsVowel reports exact membership in the vowel set; no case folding.
func (a *Alphabet) IsVowel(r rune) bool { return a.vowels[r] }

// CountVowels returns the number of runes in s that are vowels.
func (a *Alphabet) CountVowels(s string) int {
	n := 0
	for _, r := range s {
		if a.vowels[r] {
			n++
		}
	}
	return n
}
