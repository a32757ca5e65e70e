package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"pipemaze/internal/app"
	"pipemaze/internal/core"
	"pipemaze/internal/network"
	"pipemaze/internal/render"
	"pipemaze/internal/tiles"
	"pipemaze/internal/wfc"
)

var log = logrus.New()

var errUnknownSim = errors.New("unknown sim")

type options struct {
	progressive bool
	ascii       bool
	stats       bool
}

func main() {
	cfg := app.NewConfig()
	// Text output is unpaced unless -tps is given.
	cfg.TPS = 0
	cfg.Bind(flag.CommandLine)
	var opts options
	flag.BoolVar(&opts.progressive, "progressive", false, "print the grid after every collapse (paced by -tps when > 0)")
	flag.BoolVar(&opts.ascii, "ascii", false, "use ASCII glyphs instead of box drawing")
	flag.BoolVar(&opts.stats, "stats", false, "report pipe networks on stderr when done")
	flag.Parse()

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithError(err).Fatal("invalid log level")
	}
	log.SetLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, opts, os.Stdout); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn("interrupted")
			os.Exit(130)
		}
		log.WithError(err).Fatal("generation failed")
	}
}

// engineOptions maps the -sim name onto engine options.
func engineOptions(cfg *app.Config) (wfc.Options, error) {
	opts := wfc.Options{Seed: cfg.Seed, Cascade: cfg.Cascade}
	switch cfg.Sim {
	case "", "pipes":
	case "pipes-cascade":
		opts.Cascade = true
	default:
		return opts, fmt.Errorf("%w %q (available: pipes, pipes-cascade)", errUnknownSim, cfg.Sim)
	}
	return opts, nil
}

func run(ctx context.Context, cfg *app.Config, opts options, out io.Writer) error {
	engineOpts, err := engineOptions(cfg)
	if err != nil {
		return err
	}
	fields := logrus.Fields{"sim": cfg.Sim, "w": cfg.Width, "h": cfg.Height, "seed": cfg.Seed, "cascade": engineOpts.Cascade}
	engine, err := wfc.New(cfg.Width, cfg.Height, engineOpts)
	if err != nil {
		return err
	}
	log.WithFields(fields).Info("generating")

	glyphs := tiles.Glyphs
	if opts.ascii {
		glyphs = render.ASCIIGlyphs
	}

	var (
		observer wfc.Observer
		frameErr error
	)
	if opts.progressive {
		var pace *core.FixedStep
		if cfg.TPS > 0 {
			pace = core.NewFixedStep(cfg.TPS)
		}
		observer = func(step wfc.Step, view wfc.View) {
			if frameErr != nil {
				return
			}
			if pace != nil {
				if frameErr = pace.Wait(ctx); frameErr != nil {
					return
				}
			}
			if frameErr = render.WriteText(out, view, glyphs); frameErr != nil {
				return
			}
			_, frameErr = fmt.Fprintln(out)
		}
	}

	stats, err := engine.Run(ctx, observer)
	if err != nil {
		return fmt.Errorf("after %d steps: %w", stats.Steps, err)
	}
	if frameErr != nil {
		return frameErr
	}
	if !opts.progressive {
		if err := render.WriteText(out, engine.Grid(), glyphs); err != nil {
			return err
		}
	}
	log.WithFields(fields).WithField("steps", stats.Steps).Info("grid collapsed")

	if opts.stats {
		rep, err := network.Analyze(engine.Grid())
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"networks":  rep.Networks(),
			"largest":   rep.Largest(),
			"dead_ends": rep.DeadEnds,
			"junctions": rep.Junctions,
			"empty":     rep.Empty,
		}).Info("pipe networks")
	}
	return nil
}
