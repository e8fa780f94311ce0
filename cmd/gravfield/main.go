//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"gravfield/internal/app"
	"gravfield/internal/config"
	"gravfield/internal/core"
	"gravfield/internal/observability"
	"gravfield/internal/sims/gravity"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logCfg := config.Default().Logger
	if cfg.Verbose {
		logCfg.Level = "debug"
	}
	observability.InitializeLogger(logCfg)
	defer observability.Sync()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim := factory(nil)
	if w, ok := sim.(*gravity.World); ok {
		w.SetLogger(observability.GetLogger())
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("gravfield - " + sim.Name())
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
