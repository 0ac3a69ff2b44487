package datefield

import (
	"log/slog"
	"strings"

	"datepicker/internal/calendar"
)

// VetoPolicy decides whether a real date may be chosen.
type VetoPolicy interface {
	IsDateAllowed(d calendar.Date) bool
}

// VetoFunc adapts a function to VetoPolicy.
type VetoFunc func(d calendar.Date) bool

func (f VetoFunc) IsDateAllowed(d calendar.Date) bool { return f(d) }

// RangeLimits allows dates between First and Last inclusive. A zero bound is
// open.
type RangeLimits struct {
	First calendar.Date
	Last  calendar.Date
}

func (r RangeLimits) IsDateAllowed(d calendar.Date) bool {
	if !r.First.IsZero() && d.Before(r.First) {
		return false
	}
	if !r.Last.IsZero() && d.After(r.Last) {
		return false
	}
	return true
}

// Status classifies field text.
type Status string

const (
	StatusEmpty   Status = "empty"
	StatusValid   Status = "valid"
	StatusInvalid Status = "invalid"
	StatusVetoed  Status = "vetoed"
)

// Result is the verdict for one piece of field text.
type Result struct {
	Input   string         `json:"input"`
	Status  Status         `json:"status"`
	Date    *calendar.Date `json:"date,omitempty"`
	Display string         `json:"display,omitempty"`
	Weekday string         `json:"weekday,omitempty"`
	Pattern string         `json:"pattern,omitempty"`
}

// Validator classifies field text against Settings and an optional
// VetoPolicy.
type Validator struct {
	settings *Settings
	policy   VetoPolicy
	log      *slog.Logger
}

// NewValidator returns a Validator. policy may be nil.
func NewValidator(s *Settings, policy VetoPolicy) *Validator {
	return &Validator{settings: s, policy: policy, log: slog.Default()}
}

// WithLogger returns a copy that logs parse decisions to l at debug level.
func (v *Validator) WithLogger(l *slog.Logger) *Validator {
	cp := *v
	cp.log = l
	return &cp
}

// Settings returns the formats the validator parses with.
func (v *Validator) Settings() *Settings { return v.settings }

// Check parses text and returns its verdict. Parsed dates the policy rejects
// are StatusVetoed.
func (v *Validator) Check(text string) Result {
	res := Result{Input: text}
	if strings.TrimSpace(text) == "" {
		res.Status = StatusEmpty
		return res
	}

	s := v.settings
	d, f, ok := parseWith(text, s.ad, s.bc, s.fallback, s.loc)
	if !ok {
		res.Status = StatusInvalid
		if f != nil {
			v.log.Debug("parsed date not found in text", "text", text, "pattern", f.Pattern())
		} else {
			v.log.Debug("no format matched", "text", text, "formats", len(s.fallback)+2)
		}
		return res
	}

	res.Date = &d
	res.Display = s.Format(d)
	res.Weekday = s.loc.Symbols().Weekdays[d.Weekday()]
	res.Pattern = f.Pattern()
	if v.policy != nil && !v.policy.IsDateAllowed(d) {
		res.Status = StatusVetoed
		v.log.Debug("date vetoed", "date", d.String())
		return res
	}
	res.Status = StatusValid
	return res
}
