package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"datepicker/internal/config"
	"datepicker/internal/format"
	"datepicker/internal/locale"
	"datepicker/internal/logging"

	"github.com/spf13/cobra"
)

type App struct {
	Locale     string
	Format     string
	PrettyJSON bool
	LogLevel   string
	LogFormat  string

	cfg *config.Config
	log *slog.Logger
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "datepicker",
		Short:        "Validate typed dates the way a date picker field does",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive date field
  datepicker

  # Check one piece of text
  datepicker parse 30 April 2019
  datepicker --locale de parse 30.4.2019

  # Check many, one per line
  printf '4/30/19\nApril 31, 2019\n' | datepicker check --format text
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive field.
			if len(args) == 0 {
				return runField(cmd, app, "")
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if !format.Valid(app.Format) {
			return writeErr(cmd, fmt.Errorf("unknown format: %s (want json|edn|text)", app.Format))
		}
		log, err := logging.Install(cmd.ErrOrStderr(), logging.Config{Level: app.LogLevel, Format: app.LogFormat})
		if err != nil {
			return writeErr(cmd, err)
		}
		app.log = log

		cfg, err := config.Load()
		if err != nil {
			return writeErr(cmd, fmt.Errorf("load config: %w", err))
		}
		app.cfg = cfg
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.Locale, "locale", envOr("DATEPICKER_LOCALE", ""), "Language tag, e.g. en-US, de, pt_BR (default: config, then English)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON/EDN output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("DATEPICKER_FORMAT", "json"), "Output format (json|edn|text)")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", envOr("DATEPICKER_LOG_LEVEL", "warn"), "Log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&app.LogFormat, "log-format", envOr("DATEPICKER_LOG_FORMAT", logging.FormatText), "Log format on stderr (text|json)")

	cmd.AddCommand(newParseCmd(app))
	cmd.AddCommand(newCheckCmd(app))
	cmd.AddCommand(newTimeCmd(app))
	cmd.AddCommand(newFormatCmd(app))
	cmd.AddCommand(newFormatsCmd(app))
	cmd.AddCommand(newFieldCmd(app))
	cmd.AddCommand(newDocsCmd(app))
	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newServeCmd(app))

	return cmd
}

// locale resolves --locale, then the config file, then English.
func (app *App) locale() locale.Locale {
	tag := strings.TrimSpace(app.Locale)
	if tag == "" && app.cfg != nil {
		tag = app.cfg.Locale
	}
	loc, ok := locale.Match(tag)
	if !ok && tag != "" {
		app.logger().Warn("unsupported locale, using English", "locale", tag)
	}
	return loc
}

func (app *App) conf() *config.Config {
	if app.cfg == nil {
		return &config.Config{}
	}
	return app.cfg
}

func (app *App) logger() *slog.Logger {
	if app.log == nil {
		return slog.Default()
	}
	return app.log
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

// envelope is the shape of every command's output.
type envelope struct {
	Data any            `json:"data"`
	Meta map[string]any `json:"meta,omitempty"`
}

func (e envelope) Text() string {
	if t, ok := e.Data.(format.Texter); ok {
		return t.Text()
	}
	b, err := json.Marshal(e.Data)
	if err != nil {
		return fmt.Sprint(e.Data)
	}
	return string(b)
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), envelope{Data: v}, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
