package locale

import (
	"testing"
)

func TestLookup_MatchesSupportedLanguages(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"en", "en", true},
		{"en-US", "en", true},
		{"de_AT", "de", true},
		{"fr-CA", "fr", true},
		{"pt-BR", "pt", true},
		{"nb-NO", "nb", true},
		{"  sv  ", "sv", true},
		{"", "en", false},
		{"not a tag!", "en", false},
		{"ja", "en", false},
	}
	for _, tc := range cases {
		l, ok := Match(tc.in)
		if l.String() != tc.want || ok != tc.wantOK {
			t.Fatalf("Match(%q) = (%s, %v), want (%s, %v)", tc.in, l, ok, tc.want, tc.wantOK)
		}
	}
}

func TestZeroLocaleIsEnglish(t *testing.T) {
	t.Parallel()

	var l Locale
	if l.String() != "en" {
		t.Fatalf("expected zero Locale to be English, got %s", l)
	}
	if l.BCEra() != "bc" {
		t.Fatalf("BCEra() = %q, want %q", l.BCEra(), "bc")
	}
}

func TestSupported_EnglishFirst(t *testing.T) {
	t.Parallel()

	got := Supported()
	if len(got) != len(builtin) {
		t.Fatalf("expected %d languages, got %d", len(builtin), len(got))
	}
	if got[0] != "en" {
		t.Fatalf("expected English first, got %v", got)
	}
	for i := 2; i < len(got); i++ {
		if got[i-1] > got[i] {
			t.Fatalf("expected sorted languages after English, got %v", got)
		}
	}
}

func TestTablesAreComplete(t *testing.T) {
	t.Parallel()

	for _, code := range Supported() {
		l := Lookup(code)
		s := l.Symbols()
		for name, xs := range map[string][]string{
			"Months":        s.Months,
			"ShortMonths":   s.ShortMonths,
			"Weekdays":      s.Weekdays,
			"ShortWeekdays": s.ShortWeekdays,
			"Eras":          s.Eras,
			"LongEras":      s.LongEras,
			"NarrowEras":    s.NarrowEras,
			"AmPm":          s.AmPm,
		} {
			want := map[string]int{"Months": 12, "ShortMonths": 12, "Weekdays": 7, "ShortWeekdays": 7}[name]
			if want == 0 {
				want = 2
			}
			if len(xs) != want {
				t.Fatalf("%s: %s has %d entries, want %d", code, name, len(xs), want)
			}
			for i, x := range xs {
				if x == "" {
					t.Fatalf("%s: %s[%d] is empty", code, name, i)
				}
			}
		}
		p := l.Patterns()
		if p.Short == "" || p.Medium == "" || p.Long == "" || p.Full == "" {
			t.Fatalf("%s: missing localized patterns: %+v", code, p)
		}
	}
}

func TestLowerUsesLanguageRules(t *testing.T) {
	t.Parallel()

	if got := Lookup("de").Lower("1. MÄRZ 2019"); got != "1. märz 2019" {
		t.Fatalf("Lower() = %q", got)
	}
	if got := Lookup("de").LowerSymbols().Eras[0]; got != "v. chr." {
		t.Fatalf("lowered BC era = %q", got)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	l := Lookup("fr")
	s := l.Symbols()
	s.Months[0] = "changed"
	if l.Symbols().Months[0] != "janvier" {
		t.Fatalf("Symbols() leaked the shared table")
	}
	p := l.Patterns()
	p.Extra[0] = "changed"
	if Lookup("de").Patterns().Extra[0] == "changed" {
		t.Fatalf("Patterns() leaked the shared extra list")
	}
}
