package naming

import (
	"github.com/backmassage/adsoyad/internal/alphabet"
)

// Result is the immutable record of one parse. A new parse always produces
// a new Result; nothing carries over between calls.
type Result struct {
	Raw     string   // input exactly as given
	Tokens  []string // Tokenize(Raw)
	Invalid []string // rejected fragments, lowercase letters-only form
	Name    *Name    // nil unless Valid
	Valid   bool
}

// RawName returns the input exactly as it was passed to Parse.
func (r Result) RawName() string { return r.Raw }

// RawArray returns the tokenizer output.
func (r Result) RawArray() []string { return r.Tokens }

// InvalidChunks returns the fragments rejected by the vowel heuristic in the
// order they were found. Empty, never nil, after a parse.
func (r Result) InvalidChunks() []string { return r.Invalid }

// IsValid reports whether at least two fragments survived filtering.
func (r Result) IsValid() bool { return r.Valid }

// AsMap returns the slots keyed by first_name, middle_name and last_name.
// middle_name is present only when the name has one. Nil when invalid.
func (r Result) AsMap() map[string]string {
	if r.Name == nil {
		return nil
	}
	m := map[string]string{KeyFirst: r.Name.First, KeyLast: r.Name.Last}
	if r.Name.Middle != "" {
		m[KeyMiddle] = r.Name.Middle
	}
	return m
}

// String joins the slots in field order with single spaces; empty when the
// parse was invalid.
func (r Result) String() string {
	if r.Name == nil {
		return ""
	}
	return r.Name.String()
}

// Parser normalizes names with one alphabet. It holds no per-parse state and
// is safe for concurrent use.
type Parser struct {
	alpha *alphabet.Alphabet
}

// NewParser returns a Parser for a. A nil a selects [alphabet.Turkish].
func NewParser(a *alphabet.Alphabet) *Parser {
	if a == nil {
		a = alphabet.Turkish()
	}
	return &Parser{alpha: a}
}

// Alphabet returns the rule set the parser uses.
func (p *Parser) Alphabet() *alphabet.Alphabet { return p.alpha }

// Parse runs the full pipeline over raw. It accepts any string, including an
// empty one, and never fails.
func (p *Parser) Parse(raw string) Result {
	tokens := Tokenize(raw)

	normalized := make([]string, len(tokens))
	for i, tok := range tokens {
		normalized[i] = NormalizeFragment(p.alpha, tok)
	}

	survivors, rejects := Partition(p.alpha, normalized)
	for i, s := range survivors {
		survivors[i] = p.alpha.Title(s)
	}

	res := Result{Raw: raw, Tokens: tokens, Invalid: rejects}
	name, ok := AssignRoles(survivors)
	if !ok {
		return res
	}
	name = CollapseDuplicate(name)
	res.Name = &name
	res.Valid = true
	return res
}

var defaultParser = NewParser(nil)

// Parse parses raw with the built-in Turkish alphabet.
func Parse(raw string) Result { return defaultParser.Parse(raw) }
