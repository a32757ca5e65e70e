//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"pipemaze/internal/app"
	"pipemaze/internal/core"
	"pipemaze/internal/render"
	_ "pipemaze/internal/sims/pipes"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

type logAware interface {
	SetLogger(logrus.FieldLogger)
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	cfg.BindViewer(flag.CommandLine)
	flag.Parse()

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.WithField("available", core.Names()).Fatalf("unknown sim %q", cfg.Sim)
	}

	sim := factory(cfg.SimConfig())
	if la, ok := sim.(logAware); ok {
		la.SetLogger(log.WithField("component", "sim"))
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.PerFrame, cfg.Seed)
	size := sim.Size()
	w, h := game.Layout(size.W*render.CellPixels*cfg.Scale, size.H*render.CellPixels*cfg.Scale)

	ebiten.SetWindowTitle("pipemaze: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.WithError(err).Error("viewer stopped")
		os.Exit(1)
	}
}
