// Package timefield validates text typed into a time field.
//
// Times are not lenient: an hour, minute or second out of range rejects the
// pattern outright, so no corroboration against the typed digits is needed.
package timefield

import (
	"fmt"
	"strings"

	"datepicker/internal/calendar"
	"datepicker/internal/locale"
	"datepicker/internal/pattern"
)

// DefaultFallbacks are tried after the display format, in order.
var DefaultFallbacks = []string{"h:mma", "h:mm a", "ha", "h a", "HH:mm", "H:mm", "HHmm", "HH:mm:ss"}

// Parse returns the time of day named by text, trying display and then each
// fallback in order. Blank text and text no format reads report false. Nil
// formats are skipped.
func Parse(text string, display *pattern.FormatSpec, fallback []*pattern.FormatSpec, loc locale.Locale) (calendar.TimeOfDay, bool) {
	t, _, ok := parseWith(text, display, fallback, loc)
	return t, ok
}

func parseWith(text string, display *pattern.FormatSpec, fallback []*pattern.FormatSpec, loc locale.Locale) (calendar.TimeOfDay, *pattern.FormatSpec, bool) {
	text = loc.Lower(strings.TrimSpace(text))
	if text == "" {
		return calendar.TimeOfDay{}, nil, false
	}
	for _, f := range append([]*pattern.FormatSpec{display}, fallback...) {
		if f == nil {
			continue
		}
		if t, err := f.ParseTime(text); err == nil {
			return t, f, true
		}
	}
	return calendar.TimeOfDay{}, nil, false
}

// Settings hold the display and parsing formats of a time field.
type Settings struct {
	loc      locale.Locale
	display  *pattern.FormatSpec
	fallback []*pattern.FormatSpec
}

// NewSettings uses a 12 hour clock for English and a 24 hour clock elsewhere.
func NewSettings(loc locale.Locale) (*Settings, error) {
	display := "HH:mm"
	if loc.Tag().String() == "en" {
		display = "h:mma"
	}
	s := &Settings{loc: loc}
	var err error
	if s.display, err = pattern.Compile(display, loc); err != nil {
		return nil, fmt.Errorf("time format: %w", err)
	}
	for _, p := range DefaultFallbacks {
		if p == display {
			continue
		}
		f, err := pattern.Compile(p, loc)
		if err != nil {
			return nil, fmt.Errorf("time fallback format: %w", err)
		}
		s.fallback = append(s.fallback, f)
	}
	return s, nil
}

// WithDisplayFormat returns a copy rendering with p. Patterns with date
// letters are rejected.
func (s *Settings) WithDisplayFormat(p string) (*Settings, error) {
	f, err := pattern.Compile(p, s.loc)
	if err != nil {
		return nil, fmt.Errorf("time format: %w", err)
	}
	if f.HasDateFields() || !f.HasTimeFields() {
		return nil, fmt.Errorf("time format %q: must use only time letters", p)
	}
	cp := *s
	cp.display = f
	cp.fallback = append([]*pattern.FormatSpec(nil), s.fallback...)
	return &cp, nil
}

func (s *Settings) Locale() locale.Locale             { return s.loc }
func (s *Settings) DisplayFormat() *pattern.FormatSpec { return s.display }

// FallbackFormats returns a copy of the fallback list.
func (s *Settings) FallbackFormats() []*pattern.FormatSpec {
	return append([]*pattern.FormatSpec(nil), s.fallback...)
}

func (s *Settings) Format(t calendar.TimeOfDay) string { return s.display.FormatTime(t) }

func (s *Settings) Parse(text string) (calendar.TimeOfDay, bool) {
	return Parse(text, s.display, s.fallback, s.loc)
}

// Result is the verdict for one piece of time text.
type Result struct {
	Input   string              `json:"input"`
	Valid   bool                `json:"valid"`
	Time    *calendar.TimeOfDay `json:"time,omitempty"`
	Display string              `json:"display,omitempty"`
	Pattern string              `json:"pattern,omitempty"`
}

// Check parses text and reports the canonical display when it is a time.
func (s *Settings) Check(text string) Result {
	res := Result{Input: text}
	t, f, ok := parseWith(text, s.display, s.fallback, s.loc)
	if !ok {
		return res
	}
	res.Valid = true
	res.Time = &t
	res.Display = s.Format(t)
	res.Pattern = f.Pattern()
	return res
}
