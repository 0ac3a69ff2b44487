// Package config reads and writes the user's field preferences in
// ~/.datepicker/config.json.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"datepicker/internal/calendar"
	"datepicker/internal/datefield"
	"datepicker/internal/locale"
	"datepicker/internal/timefield"
)

// EnvDir overrides the config directory (tests use it to stay out of $HOME).
const EnvDir = "DATEPICKER_CONFIG_DIR"

type Config struct {
	// Locale is a BCP 47 tag; empty means English.
	Locale string `json:"locale,omitempty"`

	// ADFormat and BCFormat replace the localized display patterns.
	ADFormat string `json:"adFormat,omitempty"`
	BCFormat string `json:"bcFormat,omitempty"`

	// FallbackFormats, when set, replace the localized parsing patterns.
	FallbackFormats []string `json:"fallbackFormats,omitempty"`

	// FirstDate and LastDate bound the dates the field accepts.
	FirstDate calendar.Date `json:"firstDate,omitzero"`
	LastDate  calendar.Date `json:"lastDate,omitzero"`

	TimeFormat string `json:"timeFormat,omitempty"`
}

func Dir() (string, error) {
	if v := strings.TrimSpace(os.Getenv(EnvDir)); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".datepicker"), nil
}

func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load returns the saved config, or an empty one when none was saved.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}

// Save writes cfg atomically and keeps the previous file as config.json.bak.
func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	if prev, err := os.ReadFile(path); err == nil && len(prev) > 0 {
		_ = atomicWriteFile(dir, "config.json.bak.*.tmp", path+".bak", prev, 0o644)
	}
	return atomicWriteFile(dir, "config.json.*.tmp", path, b, 0o600)
}

// DateSettings builds the date field settings for loc with this config's
// pattern overrides applied.
func (c *Config) DateSettings(loc locale.Locale) (*datefield.Settings, error) {
	s, err := datefield.NewSettings(loc)
	if err != nil {
		return nil, err
	}
	if s, err = s.WithDisplayFormats(c.ADFormat, c.BCFormat); err != nil {
		return nil, err
	}
	if len(c.FallbackFormats) > 0 {
		if s, err = s.WithFallbackFormats(c.FallbackFormats...); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// TimeSettings builds the time field settings for loc.
func (c *Config) TimeSettings(loc locale.Locale) (*timefield.Settings, error) {
	s, err := timefield.NewSettings(loc)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(c.TimeFormat) == "" {
		return s, nil
	}
	return s.WithDisplayFormat(c.TimeFormat)
}

// Limits returns the configured range, or nil when neither end is set.
func (c *Config) Limits() datefield.VetoPolicy {
	if c.FirstDate.IsZero() && c.LastDate.IsZero() {
		return nil
	}
	return datefield.RangeLimits{First: c.FirstDate, Last: c.LastDate}
}

// Validate checks that every pattern compiles and the range is ordered.
func (c *Config) Validate() error {
	loc := locale.Lookup(c.Locale)
	if _, err := c.DateSettings(loc); err != nil {
		return err
	}
	if _, err := c.TimeSettings(loc); err != nil {
		return err
	}
	if !c.FirstDate.IsZero() && !c.LastDate.IsZero() && c.LastDate.Before(c.FirstDate) {
		return fmt.Errorf("lastDate %s is before firstDate %s", c.LastDate, c.FirstDate)
	}
	return nil
}
