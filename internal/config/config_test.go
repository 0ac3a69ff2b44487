package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"datepicker/internal/calendar"
	"datepicker/internal/locale"
)

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	t.Setenv(EnvDir, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Locale != "" || cfg.Limits() != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestSave_RoundTripAndBackup(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvDir, dir)

	first := &Config{Locale: "de"}
	if err := Save(first); err != nil {
		t.Fatalf("Save: %v", err)
	}
	second := &Config{
		Locale:          "fr-CA",
		ADFormat:        "dd/MM/yyyy",
		FallbackFormats: []string{"ddMMyyyy", "d MMMM yyyy"},
		FirstDate:       calendar.MustNew(-43, time.March, 15),
		TimeFormat:      "HH:mm:ss",
	}
	if err := Save(second); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Locale != "fr-CA" || got.ADFormat != "dd/MM/yyyy" || len(got.FallbackFormats) != 2 {
		t.Fatalf("unexpected config: %+v", got)
	}
	if got.FirstDate != second.FirstDate || !got.LastDate.IsZero() {
		t.Fatalf("range not preserved: %+v", got)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "config.json"))
	if err != nil {
		t.Fatalf("read config.json: %v", err)
	}
	if !strings.Contains(string(raw), `"firstDate": "-0043-03-15"`) || strings.Contains(string(raw), "lastDate") {
		t.Fatalf("unexpected file:\n%s", raw)
	}

	bak, err := os.ReadFile(filepath.Join(dir, "config.json.bak"))
	if err != nil {
		t.Fatalf("read config.json.bak: %v", err)
	}
	var prev Config
	if err := json.Unmarshal(bak, &prev); err != nil || prev.Locale != "de" {
		t.Fatalf("backup = %+v (%v), want previous config", prev, err)
	}
}

func TestSave_ConcurrentWritersLeaveValidJSON(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvDir, dir)

	const n = 32
	errCh := make(chan error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := Save(&Config{Locale: fmt.Sprintf("en-%03d", i)}); err != nil {
				errCh <- err
			}
		}(i)
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Errorf("concurrent Save: %v", err)
	}
	if t.Failed() {
		return
	}

	if _, err := Load(); err != nil {
		t.Fatalf("config.json corrupted: %v", err)
	}
	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	for _, e := range ents {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Fatalf("left temp file behind: %s", e.Name())
		}
	}
}

func TestLoad_RejectsBadJSON(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvDir, dir)
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"firstDate": "2019-02-31"}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid firstDate")
	}
}

func TestConfig_Settings(t *testing.T) {
	t.Parallel()

	cfg := &Config{ADFormat: "d.M.yyyy", FallbackFormats: []string{"ddMMyyyy"}, TimeFormat: "HH:mm"}
	de := locale.Lookup("de")

	ds, err := cfg.DateSettings(de)
	if err != nil {
		t.Fatalf("DateSettings: %v", err)
	}
	if got := ds.Format(calendar.MustNew(2019, time.April, 30)); got != "30.4.2019" {
		t.Fatalf("Format = %q", got)
	}
	if got := ds.BCFormat().Pattern(); got != "d. MMMM yyyy G" {
		t.Fatalf("BC format = %q", got)
	}
	if d, ok := ds.Parse("30042019"); !ok || d != calendar.MustNew(2019, time.April, 30) {
		t.Fatalf("Parse = (%v, %v)", d, ok)
	}

	ts, err := cfg.TimeSettings(locale.English)
	if err != nil {
		t.Fatalf("TimeSettings: %v", err)
	}
	if got := ts.Format(calendar.TimeOfDay{Hour: 21, Minute: 30}); got != "21:30" {
		t.Fatalf("time Format = %q", got)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	ok := &Config{FirstDate: calendar.MustNew(2000, time.January, 1), LastDate: calendar.MustNew(2000, time.January, 1)}
	if err := ok.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if ok.Limits() == nil {
		t.Fatalf("expected range limits")
	}

	bad := []*Config{
		{ADFormat: "dd/MM/yyyy Q"},
		{FallbackFormats: []string{"'open"}},
		{TimeFormat: "dd"},
		{FirstDate: calendar.MustNew(2001, time.January, 1), LastDate: calendar.MustNew(2000, time.January, 1)},
	}
	for _, cfg := range bad {
		if err := cfg.Validate(); err == nil {
			t.Fatalf("Validate(%+v) should fail", cfg)
		}
	}
}
