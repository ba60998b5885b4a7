package alphabet

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
)

// Sentinel errors returned by LoadFile and Decode for malformed definitions.
var (
	ErrNoName     = errors.New("alphabet name must not be empty")
	ErrNoVowels   = errors.New("alphabet must define at least one vowel")
	ErrBadMapping = errors.New("case mapping keys and values must be single runes")
)

// definition is the on-disk TOML shape of an alphabet:
//
//	name     = "turkish"
//	language = "tr"
//	vowels   = "aeıioöuüAEIİOÖUÜ"
//	compose  = false
//
//	[lower]
//	"I" = "ı"
//
//	[title]
//	"i" = "İ"
type definition struct {
	Name     string            `toml:"name"`
	Language string            `toml:"language"`
	Vowels   string            `toml:"vowels"`
	Compose  bool              `toml:"compose"`
	Lower    map[string]string `toml:"lower"`
	Title    map[string]string `toml:"title"`
}

// LoadFile reads an alphabet definition from a TOML file.
func LoadFile(path string) (*Alphabet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	a, err := Decode(string(data))
	if err != nil {
		return nil, fmt.Errorf("alphabet %s: %w", path, err)
	}
	return a, nil
}

// Decode parses an alphabet definition from TOML text.
func Decode(data string) (*Alphabet, error) {
	var def definition
	if _, err := toml.Decode(data, &def); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(def.Name)
	if name == "" {
		return nil, ErrNoName
	}
	tag := language.Und
	if lang := strings.TrimSpace(def.Language); lang != "" {
		t, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("invalid language %q: %w", lang, err)
		}
		tag = t
	}
	if strings.TrimSpace(def.Vowels) == "" {
		return nil, ErrNoVowels
	}

	lower, err := runeMap(def.Lower)
	if err != nil {
		return nil, fmt.Errorf("[lower]: %w", err)
	}
	title, err := runeMap(def.Title)
	if err != nil {
		return nil, fmt.Errorf("[title]: %w", err)
	}
	a := New(name, tag, def.Vowels, lower, title)
	a.compose = def.Compose
	return a, nil
}

func runeMap(m map[string]string) (map[rune]rune, error) {
	out := make(map[rune]rune, len(m))
	for k, v := range m {
		from, ok := singleRune(k)
		if !ok {
			return nil, fmt.Errorf("%w (got %q)", ErrBadMapping, k)
		}
		to, ok := singleRune(v)
		if !ok {
			return nil, fmt.Errorf("%w (got %q)", ErrBadMapping, v)
		}
		out[from] = to
	}
	return out, nil
}

func singleRune(s string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r == utf8.RuneError {
		return 0, false
	}
	return r, true
}
