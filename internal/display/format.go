// Package display renders parse results and run summaries as text.
package display

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mozillazg/go-unidecode"

	"github.com/backmassage/adsoyad/internal/config"
	"github.com/backmassage/adsoyad/internal/naming"
)

// Options controls how a single result is rendered.
type Options struct {
	Format      config.Format
	ASCII       bool // transliterate name slots with unidecode
	ShowInvalid bool // text format: append rejected fragments
}

// OptionsFromConfig picks the rendering options out of cfg.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{Format: cfg.Format, ASCII: cfg.ASCII, ShowInvalid: cfg.ShowInvalid}
}

// record is the JSON shape of one result.
type record struct {
	Raw        string   `json:"raw"`
	Valid      bool     `json:"valid"`
	FirstName  string   `json:"first_name,omitempty"`
	MiddleName string   `json:"middle_name,omitempty"`
	LastName   string   `json:"last_name,omitempty"`
	Invalid    []string `json:"invalid"`
}

// FormatResult renders res as one output line (without the trailing
// newline). Invalid names render as an empty text line so output stays
// aligned with input lines.
func FormatResult(res naming.Result, opts Options) (string, error) {
	var name naming.Name
	if res.Name != nil {
		name = *res.Name
		if opts.ASCII {
			name = Transliterate(name)
		}
	}
	invalid := res.InvalidChunks()
	if invalid == nil {
		invalid = []string{}
	}

	switch opts.Format {
	case config.FormatTSV:
		return strings.Join([]string{
			tsvField(res.RawName()),
			name.First,
			name.Middle,
			name.Last,
			fmt.Sprint(res.IsValid()),
			strings.Join(invalid, ","),
		}, "\t"), nil

	case config.FormatJSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		err := enc.Encode(record{
			Raw:        res.RawName(),
			Valid:      res.IsValid(),
			FirstName:  name.First,
			MiddleName: name.Middle,
			LastName:   name.Last,
			Invalid:    invalid,
		})
		if err != nil {
			return "", err
		}
		return strings.TrimRight(buf.String(), "\n"), nil

	default:
		line := ""
		if res.Name != nil {
			line = name.String()
		}
		if opts.ShowInvalid && len(invalid) > 0 {
			line += "\t[invalid: " + strings.Join(quoteAll(invalid), ", ") + "]"
		}
		return line, nil
	}
}

// Transliterate returns n with every slot converted to ASCII
// ("Çağrı Ünalan" -> "Cagri Unalan").
func Transliterate(n naming.Name) naming.Name {
	return naming.Name{
		First:  unidecode.Unidecode(n.First),
		Middle: unidecode.Unidecode(n.Middle),
		Last:   unidecode.Unidecode(n.Last),
	}
}

// FormatRatio returns "n/total (p%)", or "0/0" when total is zero.
func FormatRatio(n, total int) string {
	if total == 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d (%.1f%%)", n, total, float64(n)*100/float64(total))
}

func tsvField(s string) string {
	return strings.NewReplacer("\t", " ", "\n", " ", "\r", " ").Replace(s)
}

func quoteAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = fmt.Sprintf("%q", s)
	}
	return out
}
