package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gravfield/internal/config"
	"gravfield/internal/field"
	"gravfield/internal/observability"
)

// state is shared by all subcommands once the root pre-run has loaded config.
type state struct {
	cfgFile string
	cfg     config.Config
	log     *zap.Logger
}

func newRootCmd() *cobra.Command {
	st := &state{}
	root := &cobra.Command{
		Use:           "fieldprobe",
		Short:         "Inspect attractor force fields from the command line.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(st.cfgFile)
			if err != nil {
				return err
			}
			st.cfg = cfg
			observability.InitializeLogger(cfg.Logger)
			st.log = observability.GetLogger().Named("fieldprobe")
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&st.cfgFile, "config", "c", "", "config file (default ./gravfield.yaml if present)")
	root.AddCommand(newProbeCmd(st), newRowCmd(st), newRunCmd(st))
	return root
}

// buildField folds the given attractors into the base field of the loaded
// config, in order.
func (st *state) buildField(attractors []field.Attractor) *field.Field {
	layout := field.NewLayout(st.cfg.Field)
	f := layout.Initial()
	for _, a := range attractors {
		f = f.AddAttractor(a)
		st.log.Debug("attractor added",
			zap.Int("x", a.Position.X),
			zap.Int("y", a.Position.Y),
			zap.Int("mass", a.Mass))
	}
	return f
}
