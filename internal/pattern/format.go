package pattern

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"datepicker/internal/calendar"
)

// FormatDate renders d. Time letters render as midnight.
func (f *FormatSpec) FormatDate(d calendar.Date) string {
	return f.Format(d, calendar.TimeOfDay{})
}

// FormatTime renders t. Date letters render from the zero Date, so patterns
// passed here should only hold time letters.
func (f *FormatSpec) FormatTime(t calendar.TimeOfDay) string {
	return f.Format(calendar.Date{Year: 1, Month: 1, Day: 1}, t)
}

// Format renders d and t with the pattern.
func (f *FormatSpec) Format(d calendar.Date, t calendar.TimeOfDay) string {
	var b strings.Builder
	for _, e := range f.elems {
		if e.isLiteral() {
			b.WriteString(e.lit)
			continue
		}
		switch e.letter {
		case 'G':
			era := 1
			if d.Year < 1 {
				era = 0
			}
			b.WriteString(pickStyle(e.count, f.sym.Eras, f.sym.LongEras, f.sym.NarrowEras)[era])
		case 'y':
			yoe := d.Year
			if yoe < 1 {
				yoe = 1 - yoe
			}
			if e.count == 2 {
				b.WriteString(pad(yoe%100, 2))
			} else {
				b.WriteString(pad(yoe, e.count))
			}
		case 'u':
			if e.count == 2 {
				b.WriteString(pad(floorMod(d.Year, 100), 2))
				break
			}
			if d.Year < 0 {
				b.WriteByte('-')
				b.WriteString(pad(-d.Year, e.count))
			} else {
				b.WriteString(pad(d.Year, e.count))
			}
		case 'M', 'L':
			m := int(d.Month) - 1
			switch {
			case e.count <= 2:
				b.WriteString(pad(int(d.Month), e.count))
			case m < 0 || m > 11:
				b.WriteString(pad(int(d.Month), 2))
			case e.count == 3:
				b.WriteString(f.sym.ShortMonths[m])
			case e.count == 4:
				b.WriteString(f.sym.Months[m])
			default:
				r, _ := utf8.DecodeRuneInString(f.sym.Months[m])
				b.WriteRune(r)
			}
		case 'd':
			b.WriteString(pad(d.Day, e.count))
		case 'E':
			wd := int(d.Weekday())
			if e.count == 4 {
				b.WriteString(f.sym.Weekdays[wd])
			} else {
				b.WriteString(f.sym.ShortWeekdays[wd])
			}
		case 'H':
			b.WriteString(pad(t.Hour, e.count))
		case 'h':
			h := t.Hour % 12
			if h == 0 {
				h = 12
			}
			b.WriteString(pad(h, e.count))
		case 'm':
			b.WriteString(pad(t.Minute, e.count))
		case 's':
			b.WriteString(pad(t.Second, e.count))
		case 'a':
			idx := 0
			if t.Hour >= 12 {
				idx = 1
			}
			b.WriteString(f.sym.AmPm[idx])
		}
	}
	return b.String()
}

// pickStyle selects the short (1-3 letters), long (4) or narrow (5) style.
func pickStyle(count int, short, long, narrow []string) []string {
	switch {
	case count == 4:
		return long
	case count >= 5:
		return narrow
	}
	return short
}

func pad(n, width int) string {
	s := strconv.Itoa(n)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

func floorMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
