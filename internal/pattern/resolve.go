package pattern

import (
	"fmt"
	"time"

	"datepicker/internal/calendar"
)

const maxYear = 999_999_999

// ResolveDate turns parsed fields into a date the way a lenient formatter
// does: a day-of-month of 29, 30 or 31 that does not exist in the month is
// pulled back to the month's last day ("February 31, 2019" resolves to
// 2019-02-28). Days outside 1..31, months outside 1..12, a year-of-era below
// 1 and a weekday that disagrees with the date are errors.
func ResolveDate(fs Fields) (calendar.Date, error) {
	year, err := resolveYear(fs)
	if err != nil {
		return calendar.Date{}, err
	}

	month, ok := fs.Get(FieldMonth)
	if !ok {
		return calendar.Date{}, fmt.Errorf("%w: month", ErrMissingField)
	}
	if month < 1 || month > 12 {
		return calendar.Date{}, fmt.Errorf("%w: month %d", ErrInvalidValue, month)
	}

	day, ok := fs.Get(FieldDay)
	if !ok {
		return calendar.Date{}, fmt.Errorf("%w: day-of-month", ErrMissingField)
	}
	if day < 1 || day > 31 {
		return calendar.Date{}, fmt.Errorf("%w: day-of-month %d", ErrInvalidValue, day)
	}
	if last := calendar.DaysInMonth(year, time.Month(month)); day > last {
		day = last
	}

	d := calendar.Date{Year: year, Month: time.Month(month), Day: day}
	if wd, ok := fs.Get(FieldWeekday); ok && time.Weekday(wd) != d.Weekday() {
		return calendar.Date{}, fmt.Errorf("%w: %s is a %s, not a %s", ErrFieldConflict, d, d.Weekday(), time.Weekday(wd))
	}
	return d, nil
}

func resolveYear(fs Fields) (int, error) {
	era, hasEra := fs.Get(FieldEra)
	yoe, hasYoe := fs.Get(FieldYearOfEra)
	year, hasYear := fs.Get(FieldYear)

	if hasYoe {
		if yoe < 1 || yoe > maxYear {
			return 0, fmt.Errorf("%w: year-of-era %d", ErrInvalidValue, yoe)
		}
		fromEra := yoe
		if hasEra && era == 0 {
			fromEra = 1 - yoe
		}
		if hasYear && year != fromEra {
			return 0, fmt.Errorf("%w: year %d and year-of-era %d", ErrFieldConflict, year, yoe)
		}
		return fromEra, nil
	}
	if !hasYear {
		return 0, fmt.Errorf("%w: year", ErrMissingField)
	}
	if year < -maxYear || year > maxYear {
		return 0, fmt.Errorf("%w: year %d", ErrInvalidValue, year)
	}
	if hasEra {
		want := 1
		if year < 1 {
			want = 0
		}
		if era != want {
			return 0, fmt.Errorf("%w: year %d is not in era %d", ErrFieldConflict, year, era)
		}
	}
	return year, nil
}

// ResolveTime turns parsed fields into a time of day. Out of range values are
// errors; times are never rolled over. A clock hour without AM/PM is read as
// AM.
func ResolveTime(fs Fields) (calendar.TimeOfDay, error) {
	hour, hasHour := fs.Get(FieldHour)
	clock, hasClock := fs.Get(FieldClockHour)
	ampm, hasAmPm := fs.Get(FieldAmPm)

	if hasHour && (hour < 0 || hour > 23) {
		return calendar.TimeOfDay{}, fmt.Errorf("%w: hour %d", ErrInvalidValue, hour)
	}
	if hasClock {
		if clock < 1 || clock > 12 {
			return calendar.TimeOfDay{}, fmt.Errorf("%w: clock hour %d", ErrInvalidValue, clock)
		}
		h := clock % 12
		if hasAmPm {
			h += 12 * ampm
		}
		if hasHour && hour != h {
			return calendar.TimeOfDay{}, fmt.Errorf("%w: hour %d and clock hour %d", ErrFieldConflict, hour, clock)
		}
		hour, hasHour = h, true
	} else if hasHour && hasAmPm && hour/12 != ampm {
		return calendar.TimeOfDay{}, fmt.Errorf("%w: hour %d and am/pm", ErrFieldConflict, hour)
	}
	if !hasHour {
		return calendar.TimeOfDay{}, fmt.Errorf("%w: hour", ErrMissingField)
	}

	minute, _ := fs.Get(FieldMinute)
	second, _ := fs.Get(FieldSecond)
	if minute < 0 || minute > 59 {
		return calendar.TimeOfDay{}, fmt.Errorf("%w: minute %d", ErrInvalidValue, minute)
	}
	if second < 0 || second > 59 {
		return calendar.TimeOfDay{}, fmt.Errorf("%w: second %d", ErrInvalidValue, second)
	}
	return calendar.TimeOfDay{Hour: hour, Minute: minute, Second: second}, nil
}

// ParseDate parses text and resolves the date.
func (f *FormatSpec) ParseDate(text string) (calendar.Date, error) {
	fs, err := f.Parse(text)
	if err != nil {
		return calendar.Date{}, err
	}
	return ResolveDate(fs)
}

// ParseTime parses text and resolves the time of day.
func (f *FormatSpec) ParseTime(text string) (calendar.TimeOfDay, error) {
	fs, err := f.Parse(text)
	if err != nil {
		return calendar.TimeOfDay{}, err
	}
	return ResolveTime(fs)
}
