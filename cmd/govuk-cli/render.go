package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-govuk/pkg/components"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		file   string
		output string
	)
	cmd := &cobra.Command{
		Use:   "render <component>",
		Short: "Render a component from a YAML or JSON options file",
		Long: `Render a component to HTML. Options are read from --file ("-" for stdin);
files ending in .json are decoded as JSON, everything else as YAML. Without
--file the component is rendered with its defaults.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := a.generator()
			if err != nil {
				return err
			}

			data, err := readOptions(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}
			decode := components.YAMLDecoder(data)
			if strings.EqualFold(filepath.Ext(file), ".json") {
				decode = components.JSONDecoder(data)
			}

			markup, err := gen.Render(args[0], decode)
			if err != nil {
				return err
			}

			if output != "" {
				if err := os.WriteFile(output, []byte(markup+"\n"), 0o644); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
				a.logger.Info().Str("component", args[0]).Str("path", output).Msg("component written")
				return nil
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), markup)
			return err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "options file (YAML or JSON, - for stdin)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}

func readOptions(stdin io.Reader, file string) ([]byte, error) {
	switch file {
	case "":
		return nil, nil
	case "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	default:
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read options: %w", err)
		}
		return data, nil
	}
}
