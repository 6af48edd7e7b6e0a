package main

import (
	"fmt"

	"github.com/phanxgames/barrage"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newCatalogCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and validate pattern catalogs",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "validate [FILE]",
			Short: "Validate a catalog file (default: --catalog or the built-in catalog)",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				var (
					cat *barrage.Catalog
					err error
				)
				name := "built-in"
				switch {
				case len(args) == 1:
					name = args[0]
					cat, err = barrage.LoadCatalog(name)
				case opts.catalogPath != "":
					name = opts.catalogPath
					cat, err = barrage.LoadCatalog(name)
				default:
					cat = barrage.DefaultCatalog()
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok, %d patterns\n", name, cat.Len())
				return nil
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Print the active catalog as YAML",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cat, err := opts.catalog()
				if err != nil {
					return err
				}
				if cat == nil {
					cat = barrage.DefaultCatalog()
				}
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				defer enc.Close()
				return enc.Encode(cat)
			},
		},
	)
	return cmd
}
