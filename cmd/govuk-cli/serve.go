package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	govuk "github.com/goliatone/go-govuk"
	"github.com/goliatone/go-govuk/internal/logging"
	"github.com/goliatone/go-govuk/internal/preview"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		addr       string
		stylesheet string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a preview site of every component",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := a.generator()
			if err != nil {
				return err
			}
			logger := logging.Component(a.logger, "preview")
			srv, err := preview.New(gen,
				preview.WithLogger(logger),
				preview.WithBinder(govuk.NewBinder(a.cfg)),
				preview.WithStylesheet(stylesheet),
			)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.ListenAndServe(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "listen address")
	cmd.Flags().StringVar(&stylesheet, "stylesheet", "", "URL of a GOV.UK Frontend stylesheet to link")
	return cmd
}
