// Package pipes exposes the collapse engine as a steppable simulation.
package pipes

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"pipemaze/internal/core"
	"pipemaze/internal/wfc"
)

// Pipes grows a pipe maze one collapse per Step.
type Pipes struct {
	cfg    Config
	name   string
	engine *wfc.Engine

	display *core.ByteGrid
	dirty   bool

	done bool
	err  error

	log logrus.FieldLogger
}

// New returns a generator with the provided dimensions using defaults.
func New(w, h int) *Pipes {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a generator configured from the provided options.
// Non-positive dimensions are clamped to one.
func NewWithConfig(cfg Config) *Pipes {
	if cfg.Width <= 0 {
		cfg.Width = 1
	}
	if cfg.Height <= 0 {
		cfg.Height = 1
	}
	engine, err := wfc.New(cfg.Width, cfg.Height, wfc.Options{Seed: cfg.Seed, Cascade: cfg.Cascade})
	if err != nil {
		// Unreachable after clamping.
		panic(err)
	}
	silent := logrus.New()
	silent.SetOutput(io.Discard)

	p := &Pipes{
		cfg:     cfg,
		name:    "pipes",
		engine:  engine,
		display: core.NewByteGrid(cfg.Width, cfg.Height),
		dirty:   true,
		log:     silent,
	}
	if cfg.Cascade {
		p.name = "pipes-cascade"
	}
	return p
}

// SetLogger routes contradiction reports to l.
func (p *Pipes) SetLogger(l logrus.FieldLogger) {
	if l != nil {
		p.log = l
	}
}

// Name returns the simulation identifier.
func (p *Pipes) Name() string { return p.name }

// Size reports the grid dimensions.
func (p *Pipes) Size() core.Size { return core.Size{W: p.cfg.Width, H: p.cfg.Height} }

// Config returns the active configuration.
func (p *Pipes) Config() Config { return p.cfg }

// View exposes read access to the candidate grid.
func (p *Pipes) View() wfc.View { return p.engine.Grid() }

// Steps returns the number of collapses since the last reset.
func (p *Pipes) Steps() int { return p.engine.Steps() }

// LastStep returns the most recent collapse.
func (p *Pipes) LastStep() wfc.Step { return p.engine.LastStep() }

// Done reports whether every cell has been collapsed.
func (p *Pipes) Done() bool { return p.done }

// Err returns the error that halted generation, if any.
func (p *Pipes) Err() error { return p.err }

// Reset clears the grid. A zero seed falls back to the configured one.
func (p *Pipes) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = p.cfg.Seed
	}
	p.engine.Reset(effective)
	p.done = p.engine.Done()
	p.err = nil
	p.dirty = true
}

// Step performs one collapse. It is a no-op once generation has finished or
// failed.
func (p *Pipes) Step() {
	if p.done || p.err != nil {
		return
	}
	step, err := p.engine.Step()
	if err != nil {
		if errors.Is(err, wfc.ErrNoUndecidedCell) {
			p.done = true
			return
		}
		p.err = err
		p.log.WithFields(logrus.Fields{
			"sim":   p.name,
			"steps": p.engine.Steps(),
		}).WithError(err).Error("generation halted")
		return
	}
	p.dirty = true
	if p.engine.Done() {
		p.done = true
		p.log.WithFields(logrus.Fields{
			"sim":   p.name,
			"steps": step.N,
		}).Debug("grid collapsed")
	}
}

// Cells exposes the display buffer: the variant index of collapsed cells and
// core.Undecided elsewhere.
func (p *Pipes) Cells() []uint8 {
	if p.dirty {
		p.rebuildDisplay()
	}
	return p.display.Cells()
}

func (p *Pipes) rebuildDisplay() {
	g := p.engine.Grid()
	p.display.Fill(core.Undecided)
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			if v, ok := g.Sole(r, c); ok {
				p.display.Set(r, c, uint8(v.Index))
			}
		}
	}
	p.dirty = false
}

// Parameters reports configuration and progress for the HUD.
func (p *Pipes) Parameters() core.ParameterSnapshot {
	g := p.engine.Grid()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("w", "Width", int64(p.cfg.Width)),
				core.IntParam("h", "Height", int64(p.cfg.Height)),
				core.IntParam("seed", "Seed", p.cfg.Seed),
				core.BoolParam("cascade", "Cascade", p.cfg.Cascade),
			},
		},
		{
			Name: "Progress",
			Params: []core.Parameter{
				core.IntParam("steps", "Steps", int64(p.engine.Steps())),
				core.IntParam("collapsed", "Collapsed", int64(g.Collapsed())),
				core.IntParam("remaining", "Remaining", int64(g.Remaining())),
			},
		},
	}}
}

func init() {
	core.Register("pipes", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
	core.Register("pipes-cascade", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		c.Cascade = true
		return NewWithConfig(c)
	})
}
