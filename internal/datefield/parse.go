// Package datefield validates text typed into a date field.
//
// Text is parsed with an ordered list of patterns; the first pattern that
// reads the whole text wins. Because pattern resolution is lenient about
// impossible days ("April 31" reads as April 30), every candidate is then
// corroborated against the digits the user actually typed, and rejected when
// its day or year cannot be found there.
package datefield

import (
	"strconv"
	"strings"

	"datepicker/internal/calendar"
	"datepicker/internal/locale"
	"datepicker/internal/pattern"
)

// Parse returns the date named by text, trying ad, then bc, then each
// fallback format in order. It reports false for blank text, for text no
// format reads, and for text whose parsed day or year is not literally in
// the text. Nil formats are skipped.
func Parse(text string, ad, bc *pattern.FormatSpec, fallback []*pattern.FormatSpec, loc locale.Locale) (calendar.Date, bool) {
	d, _, ok := parseWith(text, ad, bc, fallback, loc)
	return d, ok
}

// parseWith is Parse that also returns the pattern that produced the date,
// for logging.
func parseWith(text string, ad, bc *pattern.FormatSpec, fallback []*pattern.FormatSpec, loc locale.Locale) (calendar.Date, *pattern.FormatSpec, bool) {
	text = loc.Lower(strings.TrimSpace(text))
	if text == "" {
		return calendar.Date{}, nil, false
	}

	formats := make([]*pattern.FormatSpec, 0, len(fallback)+2)
	formats = append(formats, ad, bc)
	formats = append(formats, fallback...)

	for _, f := range formats {
		if f == nil {
			continue
		}
		fs, err := f.Parse(text)
		if err != nil {
			continue
		}
		d, err := pattern.ResolveDate(fs)
		if err != nil {
			continue
		}
		// Digits the pattern read as separate fields count as separate runs.
		if !MatchesText(d, fs.Text(), loc) {
			return calendar.Date{}, f, false
		}
		return d, f, true
	}
	return calendar.Date{}, nil, false
}

// MatchesText reports whether the day-of-month and year of d both appear as
// separate digit runs in text. Numbers compare on their last two digits, so a
// typed "2019" corroborates the year 2019 and "5" corroborates day 5.
//
// For a date before year 1 typed with the locale's BC era designator, the
// year is compared in year-of-era form (year 0 is "1 BC").
func MatchesText(d calendar.Date, text string, loc locale.Locale) bool {
	text = loc.Lower(text)
	tokens := digitRuns(text)

	if !tokens.take(twoDigits(strconv.Itoa(d.Day))) {
		return false
	}

	year := d.Year
	if year < 1 && strings.Contains(text, loc.BCEra()) {
		year--
	}
	return tokens.take(twoDigits(strings.TrimPrefix(strconv.Itoa(year), "-")))
}

// tokenBag is a multiset of canonical two-digit tokens.
type tokenBag []string

// take removes one occurrence of tok and reports whether it was present.
func (b *tokenBag) take(tok string) bool {
	for i, t := range *b {
		if t == tok {
			*b = append((*b)[:i], (*b)[i+1:]...)
			return true
		}
	}
	return false
}

// digitRuns collects the maximal runs of ASCII digits in s, left to right.
func digitRuns(s string) tokenBag {
	var out tokenBag
	start := -1
	for i := 0; i <= len(s); i++ {
		isDigit := i < len(s) && s[i] >= '0' && s[i] <= '9'
		switch {
		case isDigit && start < 0:
			start = i
		case !isDigit && start >= 0:
			out = append(out, twoDigits(s[start:i]))
			start = -1
		}
	}
	return out
}

// twoDigits left-pads a digit string to two digits or keeps its last two.
func twoDigits(s string) string {
	switch {
	case len(s) < 2:
		return strings.Repeat("0", 2-len(s)) + s
	case len(s) > 2:
		return s[len(s)-2:]
	}
	return s
}
