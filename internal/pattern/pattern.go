// Package pattern compiles date and time patterns written with the familiar
// letter syntax ("MMMM d, yyyy", "dd.MM.yy", "h:mma") into a FormatSpec that
// can render calendar values and parse text back into raw fields.
//
// Parsing is lenient about field widths and text styles (a "dd" field
// accepts "5", a "MMM" field accepts "february") and case-insensitive; range
// checks are left to ResolveDate and ResolveTime.
package pattern

import (
	"fmt"
	"strings"

	"datepicker/internal/locale"
)

type letterInfo struct {
	maxCount int
	date     bool
}

var letters = map[byte]letterInfo{
	'G': {maxCount: 5, date: true},
	'y': {maxCount: 9, date: true},
	'u': {maxCount: 9, date: true},
	'M': {maxCount: 5, date: true},
	'L': {maxCount: 5, date: true},
	'd': {maxCount: 2, date: true},
	'E': {maxCount: 4, date: true},
	'H': {maxCount: 2},
	'h': {maxCount: 2},
	'm': {maxCount: 2},
	's': {maxCount: 2},
	'a': {maxCount: 1},
}

type numMode int

const (
	// Greedy: reads as many digits as are present.
	numStandalone numMode = iota
	// First field of an adjacent run: leaves `subsequent` digits for the
	// fixed-width fields that follow it.
	numBase
	// Reads exactly its minimum width.
	numFixed
)

type element struct {
	letter byte // 0 for literals
	count  int

	lit      string
	litLower string

	mode       numMode
	subsequent int
}

func (e element) isLiteral() bool { return e.letter == 0 }

func (e element) isNumeric() bool {
	switch e.letter {
	case 'y', 'u', 'd', 'H', 'h', 'm', 's':
		return true
	case 'M', 'L':
		return e.count <= 2
	}
	return false
}

func (e element) isYear() bool { return e.letter == 'y' || e.letter == 'u' }

// widths are the strict minimum and maximum digit counts.
func (e element) widths() (int, int) {
	if e.isYear() {
		if e.count == 2 {
			return 2, 2
		}
		return e.count, maxDigits
	}
	if e.count == 1 {
		return 1, 2
	}
	return e.count, e.count
}

func (e element) fixedWidth() bool {
	lo, hi := e.widths()
	return lo == hi && !e.isYear()
}

// FormatSpec is a compiled, immutable pattern bound to a locale. It is safe for
// concurrent use.
type FormatSpec struct {
	pattern string
	loc     locale.Locale
	elems   []element

	sym   locale.Symbols
	lower locale.Symbols
}

// Compile compiles p for loc.
//
// Letters: G era, y year-of-era, u year, M/L month, d day-of-month, E weekday,
// H hour (0-23), h clock hour (1-12), m minute, s second, a AM/PM. Text in
// single quotes is literal and '' is a literal quote. Any other ASCII letter
// is an error.
func Compile(p string, loc locale.Locale) (*FormatSpec, error) {
	if strings.TrimSpace(p) == "" {
		return nil, ErrEmptyPattern
	}
	elems, err := tokenize(p)
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w", p, err)
	}
	for i := range elems {
		if elems[i].isLiteral() {
			elems[i].litLower = loc.Lower(elems[i].lit)
		}
	}
	planNumbers(elems)
	return &FormatSpec{
		pattern: p,
		loc:     loc,
		elems:   elems,
		sym:     loc.Symbols(),
		lower:   loc.LowerSymbols(),
	}, nil
}

// MustCompile is like Compile but panics if p does not compile.
func MustCompile(p string, loc locale.Locale) *FormatSpec {
	f, err := Compile(p, loc)
	if err != nil {
		panic(err)
	}
	return f
}

func tokenize(p string) ([]element, error) {
	var out []element
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			out = append(out, element{lit: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(p); {
		c := p[i]
		switch {
		case c == '\'':
			if i+1 < len(p) && p[i+1] == '\'' {
				lit.WriteByte('\'')
				i += 2
				continue
			}
			i++
			closed := false
			for i < len(p) {
				if p[i] == '\'' {
					if i+1 < len(p) && p[i+1] == '\'' {
						lit.WriteByte('\'')
						i += 2
						continue
					}
					i++
					closed = true
					break
				}
				lit.WriteByte(p[i])
				i++
			}
			if !closed {
				return nil, ErrUnterminatedQuote
			}
		case isASCIILetter(c):
			info, ok := letters[c]
			if !ok {
				return nil, fmt.Errorf("%w %q", ErrUnknownLetter, c)
			}
			n := 1
			for i+n < len(p) && p[i+n] == c {
				n++
			}
			if n > info.maxCount {
				return nil, fmt.Errorf("%w: %d x %q", ErrTooManyLetters, n, c)
			}
			flush()
			out = append(out, element{letter: c, count: n})
			i += n
		default:
			lit.WriteByte(c)
			i++
		}
	}
	flush()
	return out, nil
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// planNumbers decides how each numeric field reads digits when fields touch
// with no literal between them ("ddMMyyyy", "yyyyMMdd", "HHmm"). The first
// field of a run yields room to the fixed-width fields after it; a
// variable-width field ends the run, fixes the previous base and starts a new
// run of its own.
func planNumbers(elems []element) {
	base := -1
	for i := range elems {
		e := &elems[i]
		if !e.isNumeric() {
			base = -1
			continue
		}
		if base < 0 {
			e.mode = numStandalone
			base = i
			continue
		}
		if e.fixedWidth() {
			e.mode = numFixed
			elems[base].mode = numBase
			lo, _ := e.widths()
			elems[base].subsequent += lo
			continue
		}
		elems[base].mode = numFixed
		elems[base].subsequent = 0
		e.mode = numStandalone
		base = i
	}
}

func (f *FormatSpec) Pattern() string { return f.pattern }

func (f *FormatSpec) Locale() locale.Locale { return f.loc }

func (f *FormatSpec) String() string { return f.pattern }

// HasDateFields reports whether the pattern has any date letter.
func (f *FormatSpec) HasDateFields() bool {
	for _, e := range f.elems {
		if !e.isLiteral() && letters[e.letter].date {
			return true
		}
	}
	return false
}

// HasTimeFields reports whether the pattern has any time letter.
func (f *FormatSpec) HasTimeFields() bool {
	for _, e := range f.elems {
		if !e.isLiteral() && !letters[e.letter].date {
			return true
		}
	}
	return false
}
