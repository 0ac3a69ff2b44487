package timefield

import (
	"testing"

	"datepicker/internal/calendar"
	"datepicker/internal/locale"
)

func TestSettings_ParseEnglish(t *testing.T) {
	t.Parallel()

	s, err := NewSettings(locale.English)
	if err != nil {
		t.Fatalf("NewSettings: %v", err)
	}
	cases := []struct {
		text string
		want calendar.TimeOfDay
	}{
		{"9:30PM", calendar.TimeOfDay{Hour: 21, Minute: 30}},
		{"9:30 pm", calendar.TimeOfDay{Hour: 21, Minute: 30}},
		{" 9pm ", calendar.TimeOfDay{Hour: 21}},
		{"12am", calendar.TimeOfDay{}},
		{"12 PM", calendar.TimeOfDay{Hour: 12}},
		{"9:30", calendar.TimeOfDay{Hour: 9, Minute: 30}},
		{"21:30", calendar.TimeOfDay{Hour: 21, Minute: 30}},
		{"0930", calendar.TimeOfDay{Hour: 9, Minute: 30}},
		{"23:59:58", calendar.TimeOfDay{Hour: 23, Minute: 59, Second: 58}},
	}
	for _, tc := range cases {
		got, ok := s.Parse(tc.text)
		if !ok || got != tc.want {
			t.Fatalf("Parse(%q) = (%v, %v), want %v", tc.text, got, ok, tc.want)
		}
	}

	for _, text := range []string{"", "   ", "25:00", "13pm", "0am", "9:60", "930", "noon", "9.30"} {
		if got, ok := s.Parse(text); ok {
			t.Fatalf("Parse(%q) = %v, want no time", text, got)
		}
	}
}

func TestSettings_DisplayPerLocale(t *testing.T) {
	t.Parallel()

	evening := calendar.TimeOfDay{Hour: 21, Minute: 5}
	cases := map[string]string{"en-GB": "9:05PM", "de": "21:05", "fi": "21:05"}
	for tag, want := range cases {
		s, err := NewSettings(locale.Lookup(tag))
		if err != nil {
			t.Fatalf("%s: NewSettings: %v", tag, err)
		}
		if got := s.Format(evening); got != want {
			t.Fatalf("%s: Format = %q, want %q", tag, got, want)
		}
		for _, f := range s.FallbackFormats() {
			if f.Pattern() == s.DisplayFormat().Pattern() {
				t.Fatalf("%s: display format repeated in fallbacks", tag)
			}
		}
		if got, ok := s.Parse(want); !ok || got != evening {
			t.Fatalf("%s: Parse(%q) = (%v, %v)", tag, want, got, ok)
		}
	}
}

func TestSettings_WithDisplayFormat(t *testing.T) {
	t.Parallel()

	s, err := NewSettings(locale.English)
	if err != nil {
		t.Fatalf("NewSettings: %v", err)
	}
	hms, err := s.WithDisplayFormat("HH:mm:ss")
	if err != nil {
		t.Fatalf("WithDisplayFormat: %v", err)
	}
	if got := hms.Format(calendar.TimeOfDay{Hour: 7, Minute: 8, Second: 9}); got != "07:08:09" {
		t.Fatalf("Format = %q", got)
	}
	if s.DisplayFormat().Pattern() != "h:mma" {
		t.Fatalf("original settings changed")
	}
	for _, bad := range []string{"dd HH:mm", "'at'", "HH:mm X"} {
		if _, err := s.WithDisplayFormat(bad); err == nil {
			t.Fatalf("WithDisplayFormat(%q) should fail", bad)
		}
	}
}

func TestSettings_Check(t *testing.T) {
	t.Parallel()

	s, err := NewSettings(locale.English)
	if err != nil {
		t.Fatalf("NewSettings: %v", err)
	}
	res := s.Check("21:30")
	if !res.Valid || res.Time == nil || res.Display != "9:30PM" || res.Pattern != "HH:mm" {
		t.Fatalf("unexpected result: %+v", res)
	}
	res = s.Check("nope")
	if res.Valid || res.Time != nil || res.Display != "" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestParse_NilFormatsSkipped(t *testing.T) {
	t.Parallel()

	if _, ok := Parse("9:30", nil, nil, locale.English); ok {
		t.Fatalf("expected no time without formats")
	}
}
