package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newComponentsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "components",
		Short: "List the components that can be rendered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := a.generator()
			if err != nil {
				return err
			}
			registry := gen.Registry()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range registry.Names() {
				descriptor, _ := registry.Descriptor(name)
				fmt.Fprintf(w, "%s\t%s\n", name, descriptor.Description)
			}
			return w.Flush()
		},
	}
}
