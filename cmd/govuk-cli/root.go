package main

import (
	"os"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	govuk "github.com/goliatone/go-govuk"
	"github.com/goliatone/go-govuk/internal/logging"
	"github.com/goliatone/go-govuk/internal/prompt"
	"github.com/goliatone/go-govuk/pkg/components"
)

// app carries state shared by the subcommands once flags are parsed.
type app struct {
	configPath string
	verbosity  int

	cfg    govuk.Config
	logger zerolog.Logger
	driver prompt.Driver
}

func newRootCmd(driver prompt.Driver) *cobra.Command {
	a := &app{driver: driver}

	root := &cobra.Command{
		Use:   "govuk-cli",
		Short: "Render GOV.UK Design System components and parse date inputs",
		Long: `govuk-cli renders GOV.UK Design System components from YAML or JSON
options, parses day/month/year date input values the way the form binder
does, and serves a preview site of every component.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.logger = logging.Setup(a.verbosity, cmd.ErrOrStderr())
			cfg := govuk.DefaultConfig()
			if a.configPath != "" {
				loaded, err := govuk.LoadConfig(a.configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			a.cfg = cfg
			a.logger.Debug().Str("command", cmd.Name()).Str("config", a.configPath).Msg("command started")
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file")
	root.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	root.AddCommand(
		newComponentsCmd(a),
		newRenderCmd(a),
		newParseDateCmd(a),
		newServeCmd(a),
	)
	return root
}

func (a *app) generator() (*components.Generator, error) {
	return govuk.NewGenerator(a.cfg, components.WithLogger(logging.Component(a.logger, "components")))
}

func (a *app) promptDriver(cmd *cobra.Command) prompt.Driver {
	if a.driver == nil {
		a.driver = prompt.NewSurveyDriver(terminal.Stdio{In: os.Stdin, Out: os.Stdout, Err: cmd.ErrOrStderr()})
	}
	return a.driver
}
