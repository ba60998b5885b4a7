package naming

import (
	"reflect"
	"strings"
	"testing"

	"github.com/backmassage/adsoyad/internal/alphabet"
)

var tr = alphabet.Turkish()

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"two words", "John Doe", []string{"John", "Doe"}},
		{"surrounding space", "  John Doe \t", []string{"John", "Doe"}},
		{"double space keeps empty token", "Cem  Ünalan", []string{"Cem", "", "Ünalan"}},
		{"empty", "", []string{""}},
		{"whitespace only", "   ", []string{""}},
		{"case preserved", "cEM ünALAN", []string{"cEM", "ünALAN"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeFragment(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"punctuation and digits", "John+0", "john"},
		{"markup", "<b>Cem</b>", "cem"},
		{"doubled initial", "AAhmet", "ahmet"},
		{"dotted capital I", "İLHAN", "ilhan"},
		{"dotless capital I", "KAZIM,", "kazım"},
		{"digits only", "12", ""},
		{"empty", "", ""},
		{"decomposed dotted I loses its dot", "I\u0307lhan", "ılhan"},
		{"decomposed u umlaut loses its mark", "U\u0308nalan", "unalan"},
		{"unclosed tag", "<Cem", "cem"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeFragment(tr, tt.in)
			if got != tt.want {
				t.Errorf("NormalizeFragment(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRemoveNonLetters(t *testing.T) {
	if got := RemoveNonLetters("John+0"); got != "John" {
		t.Errorf("RemoveNonLetters(%q) = %q, want %q", "John+0", got, "John")
	}
	if got := RemoveNonLetters("Ş-ü.k_r'ü 3"); got != "Şükrü" {
		t.Errorf("RemoveNonLetters = %q, want %q", got, "Şükrü")
	}
}

func TestRemoveRepeatingStartingLetter(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"aahmet", "ahmet"},
		{"ahmet", "ahmet"},
		{"aaahmet", "aahmet"},
		{"üüzeyir", "üzeyir"},
		{"a", "a"},
		{"aa", "a"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := RemoveRepeatingStartingLetter(tt.in)
			if got != tt.want {
				t.Errorf("RemoveRepeatingStartingLetter(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsPlausible(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"sdfg", false},
		{"aei", false},
		{"a", false},
		{"b", false},
		{"", false},
		{"ab", true},
		{"cem", true},
		{"ünalan", true},
		{"ırmak", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := IsPlausible(tr, tt.in); got != tt.want {
				t.Errorf("IsPlausible(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPartition(t *testing.T) {
	survivors, rejects := Partition(tr, []string{"cem", "sdf", "ünalan", "", "sdf"})
	if want := []string{"cem", "ünalan"}; !reflect.DeepEqual(survivors, want) {
		t.Errorf("survivors = %q, want %q", survivors, want)
	}
	if want := []string{"sdf", "", "sdf"}; !reflect.DeepEqual(rejects, want) {
		t.Errorf("rejects = %q, want %q", rejects, want)
	}

	survivors, rejects = Partition(tr, nil)
	if survivors == nil || rejects == nil || len(survivors)+len(rejects) != 0 {
		t.Errorf("Partition(nil) = %q, %q; want two empty non-nil slices", survivors, rejects)
	}
}

func TestAssignRoles(t *testing.T) {
	tests := []struct {
		name   string
		in     []string
		want   Name
		wantOK bool
	}{
		{"none", nil, Name{}, false},
		{"one", []string{"Cem"}, Name{}, false},
		{"two", []string{"John", "Doe"}, Name{First: "John", Last: "Doe"}, true},
		{"three", []string{"Ahmet", "Can", "Uysal"}, Name{First: "Ahmet", Middle: "Can", Last: "Uysal"}, true},
		{"five", []string{"Ahmet", "Can", "Tok", "Uysal", "Baş"}, Name{First: "Ahmet", Middle: "Can", Last: "Tok Uysal Baş"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AssignRoles(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("AssignRoles(%q) = %+v, %v; want %+v, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestCollapseDuplicate(t *testing.T) {
	got := CollapseDuplicate(Name{First: "Cem", Middle: "Cem", Last: "Ünalan"})
	if want := (Name{First: "Cem", Last: "Ünalan"}); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
	// Case-sensitive comparison.
	in := Name{First: "Cem", Middle: "CEM", Last: "Ünalan"}
	if got := CollapseDuplicate(in); got != in {
		t.Errorf("got %+v, want unchanged %+v", got, in)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantValid   bool
		wantMap     map[string]string
		wantInvalid []string
	}{
		{
			name: "first and last", raw: "John Doe",
			wantValid: true, wantMap: map[string]string{"first_name": "John", "last_name": "Doe"},
			wantInvalid: []string{},
		},
		{
			name: "repeated middle collapsed", raw: "Cem Cem Ünalan",
			wantValid: true, wantMap: map[string]string{"first_name": "Cem", "last_name": "Ünalan"},
			wantInvalid: []string{},
		},
		{
			name: "single letter", raw: "A.",
			wantValid: false, wantMap: nil,
			wantInvalid: []string{"a"},
		},
		{
			name: "invalid chunk dropped", raw: "Cem sdf Ünalan",
			wantValid: true, wantMap: map[string]string{"first_name": "Cem", "last_name": "Ünalan"},
			wantInvalid: []string{"sdf"},
		},
		{
			name: "middle name", raw: "ahmet CAN uysal",
			wantValid:   true,
			wantMap:     map[string]string{"first_name": "Ahmet", "middle_name": "Can", "last_name": "Uysal"},
			wantInvalid: []string{},
		},
		{
			name: "surname folding", raw: "Ahmet Can Tok Uysal",
			wantValid:   true,
			wantMap:     map[string]string{"first_name": "Ahmet", "middle_name": "Can", "last_name": "Tok Uysal"},
			wantInvalid: []string{},
		},
		{
			name: "turkish capitals", raw: "İLHAN IRMAK",
			wantValid: true, wantMap: map[string]string{"first_name": "İlhan", "last_name": "Irmak"},
			wantInvalid: []string{},
		},
		{
			name: "doubled initial and markup", raw: "<b>aahmet</b> yılmaz!",
			wantValid: true, wantMap: map[string]string{"first_name": "Ahmet", "last_name": "Yılmaz"},
			wantInvalid: []string{},
		},
		{
			name: "double space", raw: "Cem  Ünalan",
			wantValid: true, wantMap: map[string]string{"first_name": "Cem", "last_name": "Ünalan"},
			wantInvalid: []string{""},
		},
		{
			name: "single name", raw: "Cem",
			wantValid: false, wantMap: nil,
			wantInvalid: []string{},
		},
		{
			name: "empty", raw: "",
			wantValid: false, wantMap: nil,
			wantInvalid: []string{""},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Parse(tt.raw)
			if res.IsValid() != tt.wantValid {
				t.Errorf("IsValid() = %v, want %v", res.IsValid(), tt.wantValid)
			}
			if got := res.AsMap(); !reflect.DeepEqual(got, tt.wantMap) {
				t.Errorf("AsMap() = %v, want %v", got, tt.wantMap)
			}
			if got := res.InvalidChunks(); !reflect.DeepEqual(got, tt.wantInvalid) {
				t.Errorf("InvalidChunks() = %q, want %q", got, tt.wantInvalid)
			}
			if res.RawName() != tt.raw {
				t.Errorf("RawName() = %q, want %q", res.RawName(), tt.raw)
			}
			if (res.Name != nil) != res.Valid {
				t.Errorf("Name presence %v disagrees with Valid %v", res.Name != nil, res.Valid)
			}
		})
	}
}

func TestParse_RawArray(t *testing.T) {
	for _, raw := range []string{"John Doe", " a  b ", "", "Cem sdf Ünalan"} {
		res := Parse(raw)
		want := strings.Split(strings.TrimSpace(raw), " ")
		if !reflect.DeepEqual(res.RawArray(), want) {
			t.Errorf("RawArray() for %q = %q, want %q", raw, res.RawArray(), want)
		}
	}
}

func TestParse_StringMatchesMap(t *testing.T) {
	for _, raw := range []string{"John Doe", "Ahmet Can Uysal", "Ahmet Can Tok Uysal", "Cem Cem Ünalan"} {
		res := Parse(raw)
		m := res.AsMap()
		var parts []string
		for _, k := range []string{KeyFirst, KeyMiddle, KeyLast} {
			if v, ok := m[k]; ok {
				parts = append(parts, v)
			}
		}
		if got, want := res.String(), strings.Join(parts, " "); got != want {
			t.Errorf("String() for %q = %q, want %q", raw, got, want)
		}
	}
	if got := Parse("A.").String(); got != "" {
		t.Errorf("String() of invalid parse = %q, want empty", got)
	}
}

func TestParse_EveryTokenAccountedFor(t *testing.T) {
	tests := []struct {
		raw       string
		survivors int
	}{
		{"Cem sdf Ünalan", 2},
		{"a b c d e", 0},
		{"Ahmet  Can x Uysal Tok", 4},
	}
	for _, tt := range tests {
		res := Parse(tt.raw)
		if tt.survivors+len(res.Invalid) != len(res.Tokens) {
			t.Errorf("%q: %d survivors + %d invalid != %d tokens", tt.raw, tt.survivors, len(res.Invalid), len(res.Tokens))
		}
		if res.Name != nil {
			if got := len(strings.Fields(res.String())); got != tt.survivors {
				t.Errorf("%q: name has %d parts, want %d", tt.raw, got, tt.survivors)
			}
		}
	}
}

func TestNormalizeFragment_Composing(t *testing.T) {
	a, err := alphabet.Decode(`
name     = "turkish-nfc"
language = "tr"
vowels   = "aeıioöuüAEIİOÖUÜ"
compose  = true

[lower]
"I" = "ı"
"i" = "ı"
"İ" = "i"
`)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		in   string
		want string
	}{
		{"I\u0307lhan", "ilhan"},
		{"U\u0308nalan", "ünalan"},
		{"KAZIM", "kazım"},
	}
	for _, tt := range tests {
		if got := NormalizeFragment(a, tt.in); got != tt.want {
			t.Errorf("NormalizeFragment(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParser_CustomAlphabet(t *testing.T) {
	a, err := alphabet.Decode("name = \"plain\"\nlanguage = \"en\"\nvowels = \"aeiouAEIOU\"\n")
	if err != nil {
		t.Fatal(err)
	}
	res := NewParser(a).Parse("ali veli")
	if got, want := res.String(), "Ali Veli"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if NewParser(nil).Alphabet().Name != "turkish" {
		t.Errorf("NewParser(nil) should default to the Turkish alphabet")
	}
}
