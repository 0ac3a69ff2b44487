package pattern

import (
	"testing"

	"datepicker/internal/locale"
)

func FuzzParseDoesNotPanic(f *testing.F) {
	seeds := []string{
		"30042019",
		"august 11, 2019",
		"march 15, 44 bc",
		"-0044-03-15",
		"9:30pm",
		"99999999999999999999",
		"",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	specs := []*FormatSpec{
		MustCompile("ddMMyyyy", locale.English),
		MustCompile("yyyyMMdd", locale.English),
		MustCompile("MMMM d, yyyy G", locale.English),
		MustCompile("uuuu-MM-dd", locale.English),
		MustCompile("EEE, dd MMM yyyy", locale.English),
		MustCompile("h:mma", locale.English),
		MustCompile("d 'de' MMMM 'de' y", locale.Lookup("es")),
	}

	f.Fuzz(func(t *testing.T, text string) {
		if len(text) > 1<<12 {
			t.Skip("input too large")
		}
		for _, spec := range specs {
			if fs, err := spec.Parse(text); err == nil {
				_, _ = ResolveDate(fs)
				_, _ = ResolveTime(fs)
			}
		}
	})
}
