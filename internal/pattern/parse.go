package pattern

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxDigits bounds how many digits one numeric field reads.
const maxDigits = 10

// Field names one raw value captured while parsing.
type Field int

const (
	FieldEra Field = iota
	FieldYearOfEra
	FieldYear
	FieldMonth
	FieldDay
	FieldWeekday
	FieldHour
	FieldClockHour
	FieldMinute
	FieldSecond
	FieldAmPm
	numFields
)

var fieldNames = [numFields]string{
	"era", "year-of-era", "year", "month", "day-of-month", "weekday",
	"hour", "clock-hour", "minute", "second", "am-pm",
}

func (f Field) String() string {
	if f < 0 || f >= numFields {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// Fields are the raw values read from text, before any range checks. Era 0
// is BC and 1 is AD; Weekday 0 is Sunday; AmPm 0 is AM and 1 is PM.
type Fields struct {
	vals [numFields]int
	set  [numFields]bool
	// text is the folded input with a space between adjacent numeric fields.
	text string
}

// Text returns the case-folded text that was parsed, with a space inserted
// wherever two numeric fields were read back to back ("30042019" read by
// ddMMyyyy becomes "30 04 2019").
func (fs Fields) Text() string { return fs.text }

func (fs Fields) Get(f Field) (int, bool) {
	if f < 0 || f >= numFields {
		return 0, false
	}
	return fs.vals[f], fs.set[f]
}

func (fs Fields) Has(f Field) bool {
	_, ok := fs.Get(f)
	return ok
}

func (fs *Fields) put(f Field, v int) error {
	if fs.set[f] && fs.vals[f] != v {
		return fmt.Errorf("%w: %s is both %d and %d", ErrFieldConflict, f, fs.vals[f], v)
	}
	fs.vals[f] = v
	fs.set[f] = true
	return nil
}

// Parse reads text against the pattern. The whole text must be consumed.
// Matching is case-insensitive under the pattern's locale.
func (f *FormatSpec) Parse(text string) (Fields, error) {
	var fs Fields
	s := f.loc.Lower(text)
	var out strings.Builder
	pos := 0
	for i, e := range f.elems {
		start := pos
		var err error
		switch {
		case e.isLiteral():
			pos, err = f.matchLiteral(s, pos, e)
		case e.isNumeric():
			pos, err = f.readNumber(s, pos, i, &fs)
		default:
			pos, err = f.readText(s, pos, e, &fs)
		}
		if err != nil {
			return Fields{}, err
		}
		out.WriteString(s[start:pos])
		if e.isNumeric() && i+1 < len(f.elems) && f.elems[i+1].isNumeric() {
			out.WriteByte(' ')
		}
	}
	if pos != len(s) {
		return Fields{}, parseErr(f, text, pos, "unparsed text found")
	}
	fs.text = out.String()
	return fs, nil
}

func (f *FormatSpec) matchLiteral(s string, pos int, e element) (int, error) {
	lit := e.litLower
	for len(lit) > 0 {
		r, n := utf8.DecodeRuneInString(lit)
		lit = lit[n:]
		if unicode.IsSpace(r) {
			// One or more whitespace runes in the text.
			start := pos
			for pos < len(s) {
				tr, tn := utf8.DecodeRuneInString(s[pos:])
				if !unicode.IsSpace(tr) {
					break
				}
				pos += tn
			}
			if pos == start {
				return pos, parseErr(f, s, pos, "expected whitespace")
			}
			// Adjacent whitespace in the pattern is covered by the run above.
			lit = strings.TrimLeftFunc(lit, unicode.IsSpace)
			continue
		}
		tr, tn := utf8.DecodeRuneInString(s[pos:])
		if pos >= len(s) || tr != r {
			return pos, parseErr(f, s, pos, fmt.Sprintf("expected %q", string(r)))
		}
		pos += tn
	}
	return pos, nil
}

func countDigits(s string, pos int) int {
	n := 0
	for pos+n < len(s) && s[pos+n] >= '0' && s[pos+n] <= '9' {
		n++
	}
	return n
}

func (f *FormatSpec) readNumber(s string, pos int, idx int, fs *Fields) (int, error) {
	e := f.elems[idx]
	start := pos
	neg := false
	if e.isYear() && e.mode != numFixed && pos < len(s) && (s[pos] == '-' || s[pos] == '+') {
		neg = s[pos] == '-'
		pos++
	}

	avail := countDigits(s, pos)
	lo, _ := e.widths()
	var width int
	switch e.mode {
	case numFixed:
		width = lo
	case numBase:
		if e.fixedWidth() {
			width = lo
		} else {
			width = min(avail, maxDigits+e.subsequent) - e.subsequent
		}
	default:
		width = min(avail, maxDigits)
	}
	if width < 1 || width > avail {
		return start, parseErr(f, s, pos, fmt.Sprintf("expected digits for %q", strings.Repeat(string(e.letter), e.count)))
	}

	v := 0
	for _, c := range s[pos : pos+width] {
		v = v*10 + int(c-'0')
	}
	if neg {
		v = -v
	}
	// Two-letter years hold the last two digits of a year in 2000..2099 when
	// exactly two unsigned digits were typed.
	if e.isYear() && e.count == 2 && width == 2 && s[start] != '-' && s[start] != '+' {
		v += 2000
	}
	pos += width

	var err error
	switch e.letter {
	case 'y':
		err = fs.put(FieldYearOfEra, v)
	case 'u':
		err = fs.put(FieldYear, v)
	case 'M', 'L':
		err = fs.put(FieldMonth, v)
	case 'd':
		err = fs.put(FieldDay, v)
	case 'H':
		err = fs.put(FieldHour, v)
	case 'h':
		err = fs.put(FieldClockHour, v)
	case 'm':
		err = fs.put(FieldMinute, v)
	case 's':
		err = fs.put(FieldSecond, v)
	}
	if err != nil {
		return start, parseErr(f, s, start, err.Error())
	}
	return pos, nil
}

func (f *FormatSpec) readText(s string, pos int, e element, fs *Fields) (int, error) {
	var (
		field  Field
		groups [][]string
	)
	switch e.letter {
	case 'G':
		field = FieldEra
		groups = [][]string{f.lower.LongEras, f.lower.Eras, f.lower.NarrowEras}
	case 'M', 'L':
		field = FieldMonth
		groups = [][]string{f.lower.Months, f.lower.ShortMonths}
	case 'E':
		field = FieldWeekday
		groups = [][]string{f.lower.Weekdays, f.lower.ShortWeekdays}
	case 'a':
		field = FieldAmPm
		groups = [][]string{f.lower.AmPm}
	}

	best, bestLen := -1, 0
	rest := s[pos:]
	for _, g := range groups {
		for i, name := range g {
			if name != "" && len(name) > bestLen && strings.HasPrefix(rest, name) {
				best, bestLen = i, len(name)
			}
		}
	}
	if best < 0 {
		return pos, parseErr(f, s, pos, "no "+field.String()+" name matched")
	}
	if field == FieldMonth {
		best++
	}
	if err := fs.put(field, best); err != nil {
		return pos, parseErr(f, s, pos, err.Error())
	}
	return pos + bestLen, nil
}
