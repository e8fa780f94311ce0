package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gravfield/internal/sims/gravity"
)

func newRunCmd(st *state) *cobra.Command {
	var (
		steps int
		seed  int64
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the probe simulation headlessly and report where the probes settle.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 0 {
				return fmt.Errorf("steps must not be negative, got %d", steps)
			}
			w := gravity.NewWithConfig(st.cfg.Gravity())
			w.SetLogger(st.log)
			w.Reset(seed)
			for i := 0; i < steps; i++ {
				w.Step()
			}

			probes := w.Probes()
			var sumX, sumY int
			for _, p := range probes {
				sumX += p.X
				sumY += p.Y
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "steps=%d attractors=%d probes=%d\n", w.Steps(), w.Field().Attractors(), len(probes))
			if len(probes) > 0 {
				fmt.Fprintf(out, "mean probe position: (%d,%d)\n", sumX/len(probes), sumY/len(probes))
			}
			st.log.Info("run finished", zap.Int("steps", w.Steps()), zap.Int("probes", len(probes)))
			return nil
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 100, "number of simulation steps")
	cmd.Flags().Int64Var(&seed, "seed", 0, "reset seed (0 uses the configured seed)")
	return cmd
}
