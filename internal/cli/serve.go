package cli

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"datepicker/internal/web"

	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the validators as a small JSON API, plus the docs as HTML",
		Long: strings.TrimSpace(`
Serve the date and time validators over HTTP.

  GET /api/parse?text=...    date verdict (same shape as ` + "`datepicker parse`" + `)
  GET /api/time?text=...     time verdict
  GET /api/formats           patterns in effect
  GET /docs, /docs/{topic}   documentation pages

The language comes from ?locale=, then Accept-Language, then the config.
Add ?format=edn for EDN output.
`),
		Example: strings.TrimSpace(`
  datepicker serve --addr 127.0.0.1:3336
  curl '127.0.0.1:3336/api/parse?text=30.4.2019&locale=de'
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			listenAddr := strings.TrimSpace(addr)
			if listenAddr == "" {
				return writeErr(cmd, errors.New("serve: missing --addr"))
			}

			srv, err := web.NewServer(web.ServerConfig{
				Addr:   listenAddr,
				Config: app.conf(),
				Logger: app.logger(),
			})
			if err != nil {
				return writeErr(cmd, err)
			}

			ln, err := net.Listen("tcp", listenAddr)
			if err != nil {
				return writeErr(cmd, err)
			}

			actualAddr := ln.Addr().String()
			url := "http://" + actualAddr + "/"
			_ = writeOut(cmd, app, map[string]any{
				"addr":      actualAddr,
				"url":       url,
				"startedAt": time.Now().UTC().Format(time.RFC3339Nano),
			})
			fmt.Fprintf(cmd.ErrOrStderr(), "datepicker serving at %s\n", url)

			hs := &http.Server{Handler: srv.Handler(), ReadHeaderTimeout: 10 * time.Second}
			return hs.Serve(ln)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:3336", "Bind address (host:port or :port)")
	return cmd
}
