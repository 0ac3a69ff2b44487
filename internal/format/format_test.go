package format

import (
	"bytes"
	"strings"
	"testing"
)

type verdict struct {
	Input  string `json:"input"`
	Status string `json:"status"`
	Year   int    `json:"year,omitempty"`
}

func (v verdict) Text() string { return v.Status + "\t" + v.Input }

func TestWrite_Formats(t *testing.T) {
	t.Parallel()

	v := verdict{Input: "30042019", Status: "valid", Year: -10000}
	cases := []struct {
		format string
		pretty bool
		want   string
	}{
		{"", false, `{"input":"30042019","status":"valid","year":-10000}` + "\n"},
		{"json", false, `{"input":"30042019","status":"valid","year":-10000}` + "\n"},
		{"edn", false, `{:input "30042019" :status "valid" :year -10000}` + "\n"},
		{"edn", true, "{\n  :input \"30042019\"\n  :status \"valid\"\n  :year -10000\n}\n"},
		{"text", false, "valid\t30042019\n"},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		if err := Write(&buf, v, tc.format, tc.pretty); err != nil {
			t.Fatalf("Write(%q): %v", tc.format, err)
		}
		if got := buf.String(); got != tc.want {
			t.Fatalf("Write(%q) = %q, want %q", tc.format, got, tc.want)
		}
	}

	if err := Write(&bytes.Buffer{}, v, "yaml", false); err == nil || !Valid("text") || Valid("yaml") {
		t.Fatalf("expected yaml to be rejected")
	}
}

func TestWriteText_FallsBackToJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteText(&buf, map[string]any{"topics": []string{"patterns"}}, false); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	if strings.TrimSpace(buf.String()) != `{"topics":["patterns"]}` {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestWriteEDN_KeywordsAndNesting(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	v := map[string]any{
		"adFormat":        "MMMM d, yyyy",
		"fallbackFormats": []string{},
		"firstDate":       nil,
		"meta":            map[string]any{"pretty_json": true},
	}
	if err := WriteEDN(&buf, v, false); err != nil {
		t.Fatalf("WriteEDN: %v", err)
	}
	want := `{:ad-format "MMMM d, yyyy" :fallback-formats [] :first-date nil :meta {:pretty-json true}}` + "\n"
	if buf.String() != want {
		t.Fatalf("WriteEDN = %q, want %q", buf.String(), want)
	}
}
