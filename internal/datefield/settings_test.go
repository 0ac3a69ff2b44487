package datefield

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"datepicker/internal/calendar"
	"datepicker/internal/locale"

	"github.com/stretchr/testify/require"
)

func patterns(s *Settings) []string {
	var out []string
	for _, f := range s.FallbackFormats() {
		out = append(out, f.Pattern())
	}
	return out
}

func TestNewSettings_EnglishDefaults(t *testing.T) {
	t.Parallel()

	s, err := NewSettings(en)
	require.NoError(t, err)
	require.Equal(t, "MMMM d, yyyy", s.ADFormat().Pattern())
	require.Equal(t, "MMMM d, yyyy G", s.BCFormat().Pattern())
	require.Equal(t, []string{
		"M/d/yy",
		"MMM d, y",
		"EEEE, MMMM d, y",
		ISOPattern,
		"MMMM d yyyy",
		"MMM d yyyy",
		"d MMMM yyyy",
		"d MMM yyyy",
		"M/d/yyyy",
		"M-d-yyyy",
		"M.d.yyyy",
		"MMddyyyy",
		"yyyy-M-d",
	}, patterns(s))
}

func TestNewSettings_EveryLocaleCompiles(t *testing.T) {
	t.Parallel()

	for _, code := range locale.Supported() {
		s, err := NewSettings(locale.Lookup(code))
		require.NoError(t, err, code)
		require.Contains(t, patterns(s), ISOPattern, code)

		seen := map[string]bool{}
		for _, p := range patterns(s) {
			require.False(t, seen[p], "%s: duplicate fallback %q", code, p)
			seen[p] = true
		}
	}
}

func TestWithYearOfEra(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"MMMM d, y":          "MMMM d, yyyy",
		"d 'de' MMMM 'de' y": "d 'de' MMMM 'de' yyyy",
		"uuuu-MM-dd":         "yyyy-MM-dd",
		"'yy' yy":            "'yy' yyyy",
		"dd.MM.":             "dd.MM.",
	}
	for in, want := range cases {
		require.Equal(t, want, withYearOfEra(in), in)
	}
}

func TestSettings_FormatPicksEra(t *testing.T) {
	t.Parallel()

	s, err := NewSettings(en)
	require.NoError(t, err)
	require.Equal(t, "April 30, 2019", s.Format(calendar.MustNew(2019, time.April, 30)))
	require.Equal(t, "March 15, 0044 BC", s.Format(calendar.MustNew(-43, time.March, 15)))
	require.Equal(t, "January 1, 0001 BC", s.Format(calendar.MustNew(0, time.January, 1)))

	de, err := NewSettings(locale.Lookup("de-DE"))
	require.NoError(t, err)
	require.Equal(t, "15. März 0044 v. Chr.", de.Format(calendar.MustNew(-43, time.March, 15)))
}

func TestSettings_ParseTypedVariants(t *testing.T) {
	t.Parallel()

	s, err := NewSettings(en)
	require.NoError(t, err)
	want := calendar.MustNew(2019, time.April, 30)
	for _, text := range []string{
		"April 30, 2019",
		"april 30, 2019",
		"Apr 30, 2019",
		"4/30/19",
		"4/30/2019",
		"2019-04-30",
		"Tuesday, April 30, 2019",
		"30 April 2019",
		"04302019",
		"  4-30-2019 ",
	} {
		got, ok := s.Parse(text)
		require.True(t, ok, text)
		require.Equal(t, want, got, text)
	}

	bc, ok := s.Parse("March 15, 44 BC")
	require.True(t, ok)
	require.Equal(t, calendar.MustNew(-43, time.March, 15), bc)

	for _, text := range []string{"April 31, 2019", "2/29/2019", "Monday, April 30, 2019", "31 April 2019", "hello"} {
		_, ok := s.Parse(text)
		require.False(t, ok, text)
	}
}

func TestSettings_WithFormatsReturnCopies(t *testing.T) {
	t.Parallel()

	base, err := NewSettings(en)
	require.NoError(t, err)

	custom, err := base.WithDisplayFormats("dd/MM/yyyy", "")
	require.NoError(t, err)
	require.Equal(t, "dd/MM/yyyy", custom.ADFormat().Pattern())
	require.Equal(t, base.BCFormat(), custom.BCFormat())
	require.Equal(t, "MMMM d, yyyy", base.ADFormat().Pattern())

	only, err := custom.WithFallbackFormats("ddMMyyyy")
	require.NoError(t, err)
	require.Equal(t, []string{"ddMMyyyy"}, patterns(only))
	require.Len(t, patterns(custom), len(patterns(base)))

	got, ok := only.Parse("30042019")
	require.True(t, ok)
	require.Equal(t, calendar.MustNew(2019, time.April, 30), got)
	_, ok = only.Parse("2019-04-30")
	require.False(t, ok)

	_, err = base.WithDisplayFormats("yyyy-'MM", "")
	require.Error(t, err)
	_, err = base.WithFallbackFormats("d/M/y", "Q")
	require.Error(t, err)

	none, err := base.WithFallbackFormats()
	require.NoError(t, err)
	require.Empty(t, none.FallbackFormats())
}

func TestValidator_Statuses(t *testing.T) {
	t.Parallel()

	s, err := NewSettings(en)
	require.NoError(t, err)
	limits := RangeLimits{
		First: calendar.MustNew(2000, time.January, 1),
		Last:  calendar.MustNew(2029, time.December, 31),
	}
	v := NewValidator(s, limits)

	res := v.Check("   ")
	require.Equal(t, StatusEmpty, res.Status)
	require.Nil(t, res.Date)

	res = v.Check("4/30/19")
	require.Equal(t, StatusValid, res.Status)
	require.Equal(t, calendar.MustNew(2019, time.April, 30), *res.Date)
	require.Equal(t, "April 30, 2019", res.Display)
	require.Equal(t, "Tuesday", res.Weekday)
	require.Equal(t, "M/d/yy", res.Pattern)

	res = v.Check("April 31, 2019")
	require.Equal(t, StatusInvalid, res.Status)
	require.Nil(t, res.Date)

	res = v.Check("1999-12-31")
	require.Equal(t, StatusVetoed, res.Status)
	require.NotNil(t, res.Date)
	require.Equal(t, "Friday", res.Weekday)
}

func TestValidator_VetoFuncAndLogging(t *testing.T) {
	t.Parallel()

	s, err := NewSettings(en)
	require.NoError(t, err)
	weekdaysOnly := VetoFunc(func(d calendar.Date) bool {
		wd := d.Weekday()
		return wd != time.Saturday && wd != time.Sunday
	})

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	v := NewValidator(s, weekdaysOnly).WithLogger(log)

	require.Equal(t, StatusVetoed, v.Check("Aug 11, 2019").Status)
	require.Equal(t, StatusValid, v.Check("Aug 12, 2019").Status)
	require.Equal(t, StatusInvalid, v.Check("Feb 30, 2019").Status)
	require.Equal(t, StatusInvalid, v.Check("someday").Status)

	out := buf.String()
	require.True(t, strings.Contains(out, "date vetoed"), out)
	require.True(t, strings.Contains(out, "parsed date not found in text"), out)
	require.True(t, strings.Contains(out, "no format matched"), out)
}

func TestRangeLimits_OpenBounds(t *testing.T) {
	t.Parallel()

	d := calendar.MustNew(-500, time.June, 1)
	require.True(t, RangeLimits{}.IsDateAllowed(d))
	require.True(t, RangeLimits{Last: calendar.MustNew(1, time.January, 1)}.IsDateAllowed(d))
	require.False(t, RangeLimits{First: calendar.MustNew(1, time.January, 1)}.IsDateAllowed(d))
}
