// Package check provides the --check self test: it reports the active
// alphabet and runs its casing rules and a sample table through the parser.
package check

import (
	"github.com/backmassage/adsoyad/internal/alphabet"
	"github.com/backmassage/adsoyad/internal/naming"
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
}

// sample is one raw input and the normalized string it must produce
// ("" for an invalid name).
type sample struct {
	raw  string
	want string
}

// turkishSamples only apply to the built-in Turkish rules.
var turkishSamples = []sample{
	{"John Doe", "John Doe"},
	{"Cem Cem Ünalan", "Cem Ünalan"},
	{"Cem sdf Ünalan", "Cem Ünalan"},
	{"İLHAN IRMAK", "İlhan Irmak"},
	{"KAZIM aahmet", "Kazım Ahmet"},
	{"ahmet can tok uysal", "Ahmet Can Tok Uysal"},
	{"A.", ""},
}

// titleProbes are fragments whose title case must be stable under a second
// Title call for any alphabet.
var titleProbes = []string{"cem", "ilhan", "ırmak", "ünalan", "özgür", "şule", "çağrı"}

// RunCheck runs the self test against a and logs each result. It returns
// false if any check failed.
func RunCheck(a *alphabet.Alphabet, log Logger) bool {
	log.Info("=== Self Check ===")
	log.Info("Alphabet: %s (%s)", a.Name, a.Tag)

	ok := checkTitleStable(a, log)
	if a.Builtin() {
		ok = checkSamples(naming.NewParser(a), log) && ok
	} else {
		log.Warn("Custom alphabet: built-in samples skipped")
	}

	if ok {
		log.Success("All checks passed")
	} else {
		log.Error("Self check failed")
	}
	return ok
}

// checkTitleStable verifies Title(Title(s)) == Title(s) for every probe.
func checkTitleStable(a *alphabet.Alphabet, log Logger) bool {
	ok := true
	for _, p := range titleProbes {
		once := a.Title(p)
		if twice := a.Title(once); twice != once {
			log.Error("Title not stable: %q -> %q -> %q", p, once, twice)
			ok = false
		}
	}
	if ok {
		log.Success("Title casing stable (%d probes)", len(titleProbes))
	}
	return ok
}

// checkSamples parses every sample and compares the normalized string.
func checkSamples(p *naming.Parser, log Logger) bool {
	failed := 0
	for _, s := range turkishSamples {
		if got := p.Parse(s.raw).String(); got != s.want {
			log.Error("Parse(%q) = %q, want %q", s.raw, got, s.want)
			failed++
		}
	}
	if failed > 0 {
		return false
	}
	log.Success("Samples parsed (%d/%d)", len(turkishSamples), len(turkishSamples))
	return true
}
