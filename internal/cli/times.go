package cli

import (
	"fmt"
	"strings"

	"datepicker/internal/timefield"

	"github.com/spf13/cobra"
)

type timeVerdict timefield.Result

func (v timeVerdict) Text() string {
	if v.Valid {
		return "valid\t" + v.Display
	}
	return "invalid\t" + v.Input
}

func newTimeCmd(app *App) *cobra.Command {
	var display string

	cmd := &cobra.Command{
		Use:   "time <text...>",
		Short: "Check typed time-of-day text",
		Example: strings.TrimSpace(`
  datepicker time 9:30pm
  datepicker --locale de time 2130
`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.conf().TimeSettings(app.locale())
			if err != nil {
				return writeErr(cmd, fmt.Errorf("config: %w", err))
			}
			if display != "" {
				if s, err = s.WithDisplayFormat(display); err != nil {
					return writeErr(cmd, err)
				}
			}
			res := s.Check(strings.Join(args, " "))
			if !res.Valid {
				app.logger().Debug("no time format matched", "text", res.Input)
			}
			return writeOut(cmd, app, timeVerdict(res))
		},
	}
	cmd.Flags().StringVar(&display, "display", "", "Display pattern for the canonical time (e.g. HH:mm:ss)")
	return cmd
}
