package cli

import (
	"bufio"
	"fmt"
	"strings"

	"datepicker/internal/calendar"
	"datepicker/internal/datefield"
	"datepicker/internal/locale"

	"github.com/spf13/cobra"
)

// dateFlags override the config's patterns and range for one command.
type dateFlags struct {
	ad       string
	bc       string
	fallback []string
	first    string
	last     string
}

func (f *dateFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.ad, "ad", "", "Display pattern for years 1 and later")
	cmd.Flags().StringVar(&f.bc, "bc", "", "Display pattern for years before 1")
	cmd.Flags().StringArrayVar(&f.fallback, "fallback", nil, "Parsing pattern tried after the display patterns (repeatable; replaces the defaults)")
	cmd.Flags().StringVar(&f.first, "first", "", "Earliest allowed date (YYYY-MM-DD, signed years allowed)")
	cmd.Flags().StringVar(&f.last, "last", "", "Latest allowed date (YYYY-MM-DD)")
}

// validator layers the flags over the config and the locale defaults.
func (f *dateFlags) validator(app *App, loc locale.Locale) (*datefield.Validator, error) {
	s, err := app.conf().DateSettings(loc)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if s, err = s.WithDisplayFormats(f.ad, f.bc); err != nil {
		return nil, err
	}
	if len(f.fallback) > 0 {
		if s, err = s.WithFallbackFormats(f.fallback...); err != nil {
			return nil, err
		}
	}

	policy := app.conf().Limits()
	if f.first != "" || f.last != "" {
		limits, _ := policy.(datefield.RangeLimits)
		if f.first != "" {
			if limits.First, err = calendar.ParseISO(f.first); err != nil {
				return nil, errBadFlag("first", f.first, err)
			}
		}
		if f.last != "" {
			if limits.Last, err = calendar.ParseISO(f.last); err != nil {
				return nil, errBadFlag("last", f.last, err)
			}
		}
		policy = limits
	}
	return datefield.NewValidator(s, policy).WithLogger(app.logger()), nil
}

// dateVerdict renders a datefield.Result for --format text.
type dateVerdict datefield.Result

func (v dateVerdict) Text() string {
	switch v.Status {
	case datefield.StatusValid, datefield.StatusVetoed:
		return string(v.Status) + "\t" + v.Display
	}
	return string(v.Status) + "\t" + v.Input
}

func newParseCmd(app *App) *cobra.Command {
	var flags dateFlags

	cmd := &cobra.Command{
		Use:   "parse <text...>",
		Short: "Check typed date text (arguments are joined with spaces)",
		Example: strings.TrimSpace(`
  datepicker parse April 30, 2019
  datepicker parse --fallback ddMMyyyy 30042019
  datepicker parse --first 2000-01-01 1999-12-31
`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := flags.validator(app, app.locale())
			if err != nil {
				return writeErr(cmd, err)
			}
			res := v.Check(strings.Join(args, " "))
			return writeOut(cmd, app, dateVerdict(res))
		},
	}
	flags.register(cmd)
	return cmd
}

func newCheckCmd(app *App) *cobra.Command {
	var flags dateFlags

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check date text read from stdin, one result per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := flags.validator(app, app.locale())
			if err != nil {
				return writeErr(cmd, err)
			}

			counts := map[datefield.Status]int{}
			sc := bufio.NewScanner(cmd.InOrStdin())
			for sc.Scan() {
				res := v.Check(sc.Text())
				counts[res.Status]++
				if err := writeOut(cmd, app, dateVerdict(res)); err != nil {
					return err
				}
			}
			if err := sc.Err(); err != nil {
				return writeErr(cmd, fmt.Errorf("read stdin: %w", err))
			}
			app.logger().Info("checked input",
				"valid", counts[datefield.StatusValid],
				"invalid", counts[datefield.StatusInvalid],
				"vetoed", counts[datefield.StatusVetoed],
				"empty", counts[datefield.StatusEmpty],
			)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

type formattedDate struct {
	Date    calendar.Date `json:"date"`
	Display string        `json:"display"`
	Weekday string        `json:"weekday"`
	Era     string        `json:"era"`
}

func (f formattedDate) Text() string { return f.Display }

func newFormatCmd(app *App) *cobra.Command {
	var flags dateFlags

	cmd := &cobra.Command{
		Use:   "format <yyyy-mm-dd>",
		Short: "Render an ISO date with the display patterns",
		Example: strings.TrimSpace(`
  datepicker format 2019-04-30
  datepicker --locale de format -- -0043-03-15
`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := calendar.ParseISO(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			loc := app.locale()
			v, err := flags.validator(app, loc)
			if err != nil {
				return writeErr(cmd, err)
			}
			sym := loc.Symbols()
			era := sym.Eras[1]
			if d.Year < 1 {
				era = sym.Eras[0]
			}
			return writeOut(cmd, app, formattedDate{
				Date:    d,
				Display: v.Settings().Format(d),
				Weekday: sym.Weekdays[d.Weekday()],
				Era:     era,
			})
		},
	}
	flags.register(cmd)
	return cmd
}

type formatList struct {
	Locale    string   `json:"locale"`
	Supported []string `json:"supported"`
	AD        string   `json:"ad"`
	BC        string   `json:"bc"`
	Fallback  []string `json:"fallback"`
	Time      string   `json:"time"`
	TimeAlso  []string `json:"timeFallback"`
}

func (l formatList) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "locale\t%s\nad\t%s\nbc\t%s", l.Locale, l.AD, l.BC)
	for _, p := range l.Fallback {
		fmt.Fprintf(&b, "\nfallback\t%s", p)
	}
	fmt.Fprintf(&b, "\ntime\t%s", l.Time)
	return b.String()
}

func newFormatsCmd(app *App) *cobra.Command {
	var flags dateFlags

	cmd := &cobra.Command{
		Use:   "formats",
		Short: "List the patterns in effect and the supported languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loc := app.locale()
			v, err := flags.validator(app, loc)
			if err != nil {
				return writeErr(cmd, err)
			}
			ts, err := app.conf().TimeSettings(loc)
			if err != nil {
				return writeErr(cmd, fmt.Errorf("config: %w", err))
			}

			s := v.Settings()
			out := formatList{
				Locale:    loc.String(),
				Supported: locale.Supported(),
				AD:        s.ADFormat().Pattern(),
				BC:        s.BCFormat().Pattern(),
				Fallback:  []string{},
				Time:      ts.DisplayFormat().Pattern(),
				TimeAlso:  []string{},
			}
			for _, f := range s.FallbackFormats() {
				out.Fallback = append(out.Fallback, f.Pattern())
			}
			for _, f := range ts.FallbackFormats() {
				out.TimeAlso = append(out.TimeAlso, f.Pattern())
			}
			return writeOut(cmd, app, out)
		},
	}
	flags.register(cmd)
	return cmd
}
