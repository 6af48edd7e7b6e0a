package main

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/phanxgames/barrage"
	"github.com/spf13/cobra"
)

// eventCounter tallies emitter events by type.
type eventCounter map[barrage.BulletEventType]int

func (c eventCounter) EmitEvent(e barrage.BulletEvent) {
	c[e.Type]++
}

func newSimulateCmd(opts *options) *cobra.Command {
	var (
		gen        int
		power      float64
		frames     int
		every      int
		maxBullets int
		lifetime   int
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a formulated wave through the emitter",
		Long: `Formulate one wave and step it through the emitter headless, printing
the pool state every --every frames and a summary at the end. The run stops
early once every bullet is gone.

Examples:
  barrage simulate --power 120 --seed 3
  barrage simulate --frames 3000 --every 300 --max-bullets 1024`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if frames < 1 {
				return fmt.Errorf("--frames must be >= 1, got %d", frames)
			}
			f, err := opts.formulator()
			if err != nil {
				return err
			}
			root, err := f.Formulate(gen, power)
			if err != nil {
				return err
			}

			counter := eventCounter{}
			em := barrage.NewEmitter(barrage.EmitterConfig{
				MaxBullets: maxBullets,
				Lifetime:   lifetime,
				Sink:       counter,
				Logger:     opts.logger,
			})
			em.Start(root, v3.Vec{})

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%6s %8s %8s\n", "frame", "alive", "dropped")
			for em.IsActive() && em.Frame() < frames {
				em.Update()
				if every > 0 && em.Frame()%every == 0 {
					fmt.Fprintf(out, "%6d %8d %8d\n", em.Frame(), em.AliveCount(), em.Dropped())
				}
			}
			fmt.Fprintf(out, "frames=%d spawned=%d burst=%d expired=%d dropped=%d alive=%d\n",
				em.Frame(),
				counter[barrage.BulletSpawned],
				counter[barrage.BulletBurst],
				counter[barrage.BulletExpired],
				counter[barrage.BulletDropped],
				em.AliveCount())
			return nil
		},
	}
	cmd.Flags().IntVar(&gen, "gen", 0, "generation index")
	cmd.Flags().Float64Var(&power, "power", 40, "power budget")
	cmd.Flags().IntVar(&frames, "frames", 600, "maximum frames to run")
	cmd.Flags().IntVar(&every, "every", 60, "print pool state every N frames (0 disables)")
	cmd.Flags().IntVar(&maxBullets, "max-bullets", barrage.DefaultMaxBullets, "emitter pool size")
	cmd.Flags().IntVar(&lifetime, "lifetime", barrage.DefaultLifetime, "frames a leaf bullet lives")
	return cmd
}
