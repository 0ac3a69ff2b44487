// Package calendar holds the proleptic Gregorian date and time-of-day values
// produced by the date and time fields.
//
// Years use astronomical numbering: year 0 is 1 BC, year -1 is 2 BC, and so on.
package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date is a calendar date. A Date built with New is always a real date; the
// zero value is not (its month is 0) and is used to mean "no date".
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New returns the date for year, month and day, or an error if the day does
// not exist (e.g. February 30).
func New(year int, month time.Month, day int) (Date, error) {
	d := Date{Year: year, Month: month, Day: day}
	if !d.Valid() {
		return Date{}, fmt.Errorf("invalid date: %s", d)
	}
	return d, nil
}

// MustNew is like New but panics on an invalid date. Intended for tests and
// package-level values.
func MustNew(year int, month time.Month, day int) Date {
	d, err := New(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// FromTime returns the date part of t in t's location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeap(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	case time.January, time.March, time.May, time.July, time.August, time.October, time.December:
		return 31
	}
	return 0
}

// Valid reports whether d names a day that exists.
func (d Date) Valid() bool {
	if d.Month < time.January || d.Month > time.December {
		return false
	}
	return d.Day >= 1 && d.Day <= DaysInMonth(d.Year, d.Month)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// AddDays returns the date n days after d (before, for negative n).
func (d Date) AddDays(n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return cmpInt(d.Year, o.Year)
	case d.Month != o.Month:
		return cmpInt(int(d.Month), int(o.Month))
	default:
		return cmpInt(d.Day, o.Day)
	}
}

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.Compare(o) > 0 }

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// String renders d as an ISO-8601 calendar date. Years outside 0000..9999 use
// the expanded form with an explicit sign ("-0044-03-15", "+10000-01-01").
func (d Date) String() string {
	return fmt.Sprintf("%s-%02d-%02d", isoYear(d.Year), int(d.Month), d.Day)
}

func isoYear(y int) string {
	switch {
	case y < 0:
		return fmt.Sprintf("-%04d", -y)
	case y > 9999:
		return "+" + strconv.Itoa(y)
	}
	return fmt.Sprintf("%04d", y)
}

// ParseISO parses the output of Date.String. A leading sign is optional for
// four digit years.
func ParseISO(s string) (Date, error) {
	s = strings.TrimSpace(s)
	orig := s
	sign := 1
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}
	parts := strings.Split(s, "-")
	if len(parts) != 3 || len(parts[0]) < 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return Date{}, fmt.Errorf("invalid ISO date %q (expected YYYY-MM-DD)", orig)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || strings.ContainsAny(p, "+-") {
			return Date{}, fmt.Errorf("invalid ISO date %q (expected YYYY-MM-DD)", orig)
		}
		nums[i] = n
	}
	return New(sign*nums[0], time.Month(nums[1]), nums[2])
}

func (d Date) MarshalText() ([]byte, error) {
	if d.IsZero() {
		return []byte{}, nil
	}
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	if len(strings.TrimSpace(string(b))) == 0 {
		*d = Date{}
		return nil
	}
	v, err := ParseISO(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
