package cli

import (
	"errors"

	"datepicker/internal/tui"

	"github.com/spf13/cobra"
)

func newFieldCmd(app *App) *cobra.Command {
	var flags dateFlags
	var value string

	cmd := &cobra.Command{
		Use:   "field",
		Short: "Interactive date field with a live verdict",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFieldWith(cmd, app, &flags, value)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&value, "value", "", "Initial text")
	return cmd
}

func runField(cmd *cobra.Command, app *App, initial string) error {
	return runFieldWith(cmd, app, &dateFlags{}, initial)
}

func runFieldWith(cmd *cobra.Command, app *App, flags *dateFlags, initial string) error {
	v, err := flags.validator(app, app.locale())
	if err != nil {
		return writeErr(cmd, err)
	}
	res, err := tui.RunField(v, initial)
	if err != nil {
		if errors.Is(err, tui.ErrCanceled) {
			return writeErr(cmd, errors.New("field canceled"))
		}
		return writeErr(cmd, err)
	}
	return writeOut(cmd, app, dateVerdict(res))
}
