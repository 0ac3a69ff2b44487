package datefield

import (
	"fmt"
	"strings"

	"datepicker/internal/calendar"
	"datepicker/internal/locale"
	"datepicker/internal/pattern"
)

// ISOPattern is always accepted when parsing, after the localized patterns.
const ISOPattern = "uuuu-MM-dd"

// Settings hold the display and parsing formats of a date field. Settings are
// immutable; the With methods return modified copies.
type Settings struct {
	loc      locale.Locale
	ad       *pattern.FormatSpec
	bc       *pattern.FormatSpec
	fallback []*pattern.FormatSpec
}

// NewSettings builds the default formats for loc:
//
//   - AD display: the localized long pattern with a four digit year-of-era;
//   - BC display: the same pattern followed by the era;
//   - fallback: the short, medium and full patterns, ISO-8601, then the
//     language's extra patterns, without duplicates.
func NewSettings(loc locale.Locale) (*Settings, error) {
	p := loc.Patterns()
	adPattern := withYearOfEra(p.Long)
	s := &Settings{loc: loc}

	var err error
	if s.ad, err = pattern.Compile(adPattern, loc); err != nil {
		return nil, fmt.Errorf("AD format: %w", err)
	}
	if s.bc, err = pattern.Compile(adPattern+" G", loc); err != nil {
		return nil, fmt.Errorf("BC format: %w", err)
	}

	candidates := append([]string{p.Short, p.Medium, p.Full, ISOPattern}, p.Extra...)
	seen := map[string]bool{adPattern: true, adPattern + " G": true}
	for _, c := range candidates {
		if seen[c] {
			continue
		}
		seen[c] = true
		f, err := pattern.Compile(c, loc)
		if err != nil {
			return nil, fmt.Errorf("fallback format: %w", err)
		}
		s.fallback = append(s.fallback, f)
	}
	return s, nil
}

// withYearOfEra rewrites every unquoted run of 'y' or 'u' as "yyyy".
func withYearOfEra(p string) string {
	var b strings.Builder
	quoted := false
	for i := 0; i < len(p); i++ {
		c := p[i]
		if c == '\'' {
			quoted = !quoted
			b.WriteByte(c)
			continue
		}
		if !quoted && (c == 'y' || c == 'u') {
			for i+1 < len(p) && p[i+1] == c {
				i++
			}
			b.WriteString("yyyy")
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// WithDisplayFormats returns a copy using the given AD and BC patterns. An
// empty pattern keeps the current one.
func (s *Settings) WithDisplayFormats(ad, bc string) (*Settings, error) {
	cp := s.clone()
	var err error
	if strings.TrimSpace(ad) != "" {
		if cp.ad, err = pattern.Compile(ad, s.loc); err != nil {
			return nil, fmt.Errorf("AD format: %w", err)
		}
	}
	if strings.TrimSpace(bc) != "" {
		if cp.bc, err = pattern.Compile(bc, s.loc); err != nil {
			return nil, fmt.Errorf("BC format: %w", err)
		}
	}
	return cp, nil
}

// WithFallbackFormats returns a copy whose fallback list is exactly patterns,
// in order. No patterns leaves an empty list.
func (s *Settings) WithFallbackFormats(patterns ...string) (*Settings, error) {
	cp := s.clone()
	cp.fallback = make([]*pattern.FormatSpec, 0, len(patterns))
	for _, p := range patterns {
		f, err := pattern.Compile(p, s.loc)
		if err != nil {
			return nil, fmt.Errorf("fallback format: %w", err)
		}
		cp.fallback = append(cp.fallback, f)
	}
	return cp, nil
}

func (s *Settings) clone() *Settings {
	cp := *s
	cp.fallback = append([]*pattern.FormatSpec(nil), s.fallback...)
	return &cp
}

func (s *Settings) Locale() locale.Locale        { return s.loc }
func (s *Settings) ADFormat() *pattern.FormatSpec { return s.ad }
func (s *Settings) BCFormat() *pattern.FormatSpec { return s.bc }

// FallbackFormats returns a copy of the fallback list.
func (s *Settings) FallbackFormats() []*pattern.FormatSpec {
	return append([]*pattern.FormatSpec(nil), s.fallback...)
}

// Format renders d with the AD format, or the BC format for years before 1.
func (s *Settings) Format(d calendar.Date) string {
	if d.Year < 1 {
		return s.bc.FormatDate(d)
	}
	return s.ad.FormatDate(d)
}

// Parse parses text with these settings' formats.
func (s *Settings) Parse(text string) (calendar.Date, bool) {
	return Parse(text, s.ad, s.bc, s.fallback, s.loc)
}
