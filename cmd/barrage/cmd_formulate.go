package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/phanxgames/barrage"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// wave is one formulated tree as printed by the formulate command.
type wave struct {
	ID    string            `yaml:"id"`
	Gen   int               `yaml:"gen"`
	Power float64           `yaml:"power"`
	Stats barrage.TreeStats `yaml:"stats"`
	Tree  *barrage.Trigger  `yaml:"tree,omitempty"`
}

func newFormulateCmd(opts *options) *cobra.Command {
	var (
		gen     int
		power   float64
		count   int
		summary bool
	)
	cmd := &cobra.Command{
		Use:   "formulate",
		Short: "Print formulated behavior trees as YAML",
		Long: `Formulate one or more waves and print each as a YAML document.

Consecutive waves use consecutive generation indices starting at --gen.

Examples:
  barrage formulate --power 60 --seed 7
  barrage formulate --gen 2 --power 200 --count 5 --summary`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be >= 1, got %d", count)
			}
			f, err := opts.formulator()
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			defer enc.Close()

			for i := 0; i < count; i++ {
				root, err := f.Formulate(gen+i, power)
				if err != nil {
					return fmt.Errorf("wave %d: %w", i, err)
				}
				w := wave{
					ID:    uuid.NewString(),
					Gen:   gen + i,
					Power: power,
					Stats: root.Stats(),
				}
				if !summary {
					w.Tree = root
				}
				opts.logger.Info("formulated wave", "id", w.ID, "gen", w.Gen, "nodes", w.Stats.Nodes, "bullets", w.Stats.Bullets)
				if err := enc.Encode(w); err != nil {
					return fmt.Errorf("failed to encode wave: %w", err)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&gen, "gen", 0, "generation index of the first wave")
	cmd.Flags().Float64Var(&power, "power", 40, "power budget per wave")
	cmd.Flags().IntVar(&count, "count", 1, "number of waves")
	cmd.Flags().BoolVar(&summary, "summary", false, "print stats only, without the tree")
	return cmd
}
