// Package locale resolves a language tag to the immutable month, weekday and
// era vocabulary plus the localized date patterns used by the date and time
// fields.
package locale

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Symbols holds the text a pattern renders and parses. Every slice is indexed
// from zero: Months[0] is January, Weekdays[0] is Sunday, Eras[0] is BC.
type Symbols struct {
	Months        []string
	ShortMonths   []string
	Weekdays      []string
	ShortWeekdays []string
	Eras          []string
	LongEras      []string
	NarrowEras    []string
	AmPm          []string
}

// Patterns holds the localized date patterns in the pattern package's letter
// syntax.
type Patterns struct {
	Short  string
	Medium string
	Long   string
	Full   string
	// Extra are additional patterns accepted when parsing typed text.
	Extra []string
}

type table struct {
	tag      language.Tag
	symbols  Symbols
	patterns Patterns
	// lower is symbols folded with the tag's case rules.
	lower Symbols
}

// Locale is a resolved language. The zero Locale behaves as English.
type Locale struct {
	t *table
}

var (
	English = Lookup("en")

	registry = sync.OnceValue(buildRegistry)
)

type tables struct {
	// ordered matches the matcher's index order; English is first and is the
	// matcher's fallback.
	ordered []*table
	matcher language.Matcher
}

func buildRegistry() *tables {
	codes := make([]string, 0, len(builtin))
	for code := range builtin {
		codes = append(codes, code)
	}
	sortCodes(codes)
	out := &tables{ordered: make([]*table, 0, len(codes))}
	tags := make([]language.Tag, 0, len(codes))
	for _, code := range codes {
		tag := language.MustParse(code)
		def := builtin[code]
		out.ordered = append(out.ordered, &table{
			tag:      tag,
			symbols:  def.symbols,
			patterns: def.patterns,
			lower:    foldSymbols(tag, def.symbols),
		})
		tags = append(tags, tag)
	}
	out.matcher = language.NewMatcher(tags)
	return out
}

func sortCodes(codes []string) {
	sort.Slice(codes, func(i, j int) bool {
		if codes[i] == "en" || codes[j] == "en" {
			return codes[i] == "en"
		}
		return codes[i] < codes[j]
	})
}

func foldSymbols(tag language.Tag, s Symbols) Symbols {
	c := cases.Lower(tag)
	fold := func(xs []string) []string {
		out := make([]string, len(xs))
		for i, x := range xs {
			out[i] = c.String(x)
		}
		return out
	}
	return Symbols{
		Months:        fold(s.Months),
		ShortMonths:   fold(s.ShortMonths),
		Weekdays:      fold(s.Weekdays),
		ShortWeekdays: fold(s.ShortWeekdays),
		Eras:          fold(s.Eras),
		LongEras:      fold(s.LongEras),
		NarrowEras:    fold(s.NarrowEras),
		AmPm:          fold(s.AmPm),
	}
}

// Lookup resolves a BCP 47 tag ("en-US", "de", "pt_BR") to the closest
// supported language. Unparseable or unsupported tags resolve to English.
func Lookup(tag string) Locale {
	l, _ := Match(tag)
	return l
}

// Match is like Lookup but also reports whether tag matched a supported
// language rather than falling back to English.
func Match(tag string) (Locale, bool) {
	reg := registry()
	en := Locale{t: reg.ordered[0]}
	tag = strings.ReplaceAll(strings.TrimSpace(tag), "_", "-")
	if tag == "" {
		return en, false
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		return en, false
	}
	_, idx, conf := reg.matcher.Match(parsed)
	if conf == language.No || idx < 0 || idx >= len(reg.ordered) {
		return en, false
	}
	return Locale{t: reg.ordered[idx]}, true
}

// Supported lists the supported language codes, English first.
func Supported() []string {
	reg := registry()
	out := make([]string, 0, len(reg.ordered))
	for _, t := range reg.ordered {
		out = append(out, t.tag.String())
	}
	return out
}

func (l Locale) table() *table {
	if l.t != nil {
		return l.t
	}
	return registry().ordered[0]
}

func (l Locale) Tag() language.Tag { return l.table().tag }

func (l Locale) String() string { return l.table().tag.String() }

// Lower folds s with the language's lower-casing rules. Safe for concurrent
// use: a fresh Caser is built per call since Casers carry state.
func (l Locale) Lower(s string) string {
	if isASCII(s) {
		// None of the supported languages folds ASCII specially.
		return strings.ToLower(s)
	}
	return cases.Lower(l.table().tag).String(s)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// Symbols returns a copy of the display vocabulary.
func (l Locale) Symbols() Symbols {
	return cloneSymbols(l.table().symbols)
}

// LowerSymbols returns a copy of the vocabulary folded with Lower.
func (l Locale) LowerSymbols() Symbols {
	return cloneSymbols(l.table().lower)
}

// Patterns returns a copy of the localized patterns.
func (l Locale) Patterns() Patterns {
	p := l.table().patterns
	p.Extra = append([]string(nil), p.Extra...)
	return p
}

// BCEra returns the lower-cased short era designator for dates before year 1.
func (l Locale) BCEra() string {
	return l.table().lower.Eras[0]
}

func cloneSymbols(s Symbols) Symbols {
	cp := func(xs []string) []string { return append([]string(nil), xs...) }
	return Symbols{
		Months:        cp(s.Months),
		ShortMonths:   cp(s.ShortMonths),
		Weekdays:      cp(s.Weekdays),
		ShortWeekdays: cp(s.ShortWeekdays),
		Eras:          cp(s.Eras),
		LongEras:      cp(s.LongEras),
		NarrowEras:    cp(s.NarrowEras),
		AmPm:          cp(s.AmPm),
	}
}
