package cli

import (
	"fmt"
	"sort"
	"strings"

	"datepicker/internal/calendar"
	"datepicker/internal/config"

	"github.com/spf13/cobra"
)

// configKeys maps each settable key to a setter; no values clears the key.
var configKeys = map[string]func(c *config.Config, values []string) error{
	"locale":          func(c *config.Config, v []string) error { c.Locale = joined(v); return nil },
	"adFormat":        func(c *config.Config, v []string) error { c.ADFormat = joined(v); return nil },
	"bcFormat":        func(c *config.Config, v []string) error { c.BCFormat = joined(v); return nil },
	"timeFormat":      func(c *config.Config, v []string) error { c.TimeFormat = joined(v); return nil },
	"fallbackFormats": func(c *config.Config, v []string) error { c.FallbackFormats = v; return nil },
	"firstDate":       func(c *config.Config, v []string) error { return setDate(&c.FirstDate, v) },
	"lastDate":        func(c *config.Config, v []string) error { return setDate(&c.LastDate, v) },
}

func configKeyList() string {
	keys := make([]string, 0, len(configKeys))
	for k := range configKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}

func joined(v []string) string { return strings.Join(v, " ") }

func setDate(d *calendar.Date, v []string) error {
	if len(v) == 0 {
		*d = calendar.Date{}
		return nil
	}
	parsed, err := calendar.ParseISO(joined(v))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

type configView struct {
	Path   string         `json:"path"`
	Config *config.Config `json:"config"`
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change saved preferences",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the saved config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, configView{Path: path, Config: app.conf()})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> [value...]",
		Short: "Set one key (no value clears it)",
		Example: strings.TrimSpace(`
  datepicker config set locale de-AT
  datepicker config set fallbackFormats ddMMyyyy d.M.yyyy
  datepicker config set firstDate -- -0999-01-01
  datepicker config set lastDate
`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			set, ok := configKeys[key]
			if !ok {
				return writeErr(cmd, errUnknownKey(key))
			}

			next := *app.conf()
			next.FallbackFormats = append([]string(nil), next.FallbackFormats...)
			if err := set(&next, args[1:]); err != nil {
				return writeErr(cmd, fmt.Errorf("%s: %w", key, err))
			}
			if err := next.Validate(); err != nil {
				return writeErr(cmd, fmt.Errorf("%s: %w", key, err))
			}
			if err := config.Save(&next); err != nil {
				return writeErr(cmd, err)
			}
			app.cfg = &next
			app.logger().Info("config saved", "key", key)

			path, err := config.Path()
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, configView{Path: path, Config: &next})
		},
	})

	return cmd
}
