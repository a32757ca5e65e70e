package pipes

import (
	"errors"
	"slices"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"pipemaze/internal/core"
	"pipemaze/internal/wfc"
)

func runToCompletion(t *testing.T, p *Pipes) int {
	t.Helper()
	size := p.Size()
	limit := size.W*size.H + 1
	steps := 0
	for !p.Done() {
		if steps > limit {
			t.Fatalf("generation did not finish within %d steps", limit)
		}
		p.Step()
		if err := p.Err(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		steps++
	}
	return steps
}

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 24
	cfg.Height = 10
	cfg.Seed = 99

	p := NewWithConfig(cfg)
	runToCompletion(t, p)
	first := append([]uint8(nil), p.Cells()...)

	p.Reset(0)
	if p.Done() {
		t.Fatal("Reset must clear the done flag")
	}
	runToCompletion(t, p)
	if !slices.Equal(first, p.Cells()) {
		t.Fatal("Reset with config seed not deterministic")
	}

	p.Reset(12345)
	runToCompletion(t, p)
	other := append([]uint8(nil), p.Cells()...)
	if slices.Equal(first, other) {
		t.Fatal("different seeds should produce different mazes")
	}
}

func TestCellsTrackCollapse(t *testing.T) {
	p := New(8, 6)
	for _, c := range p.Cells() {
		if c != core.Undecided {
			t.Fatalf("fresh grid has decided cell %d", c)
		}
	}

	p.Step()
	decided := 0
	for _, c := range p.Cells() {
		if c != core.Undecided {
			decided++
		}
	}
	if decided == 0 {
		t.Fatal("expected at least one decided cell after a step")
	}

	steps := runToCompletion(t, p) + 1
	if steps > 8*6 {
		t.Fatalf("took %d steps for %d cells", steps, 8*6)
	}
	for i, c := range p.Cells() {
		if c == core.Undecided || int(c) >= 16 {
			t.Fatalf("cell %d = %d after completion", i, c)
		}
	}

	before := p.Steps()
	p.Step()
	if p.Steps() != before {
		t.Fatal("Step after completion must be a no-op")
	}
}

func TestContradictionHaltsAndLogs(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	p := New(4, 4)
	p.SetLogger(logger)
	p.engine.Grid().Set(2, 2, nil)

	p.Step()
	if !errors.Is(p.Err(), wfc.ErrContradiction) {
		t.Fatalf("expected contradiction, got %v", p.Err())
	}
	if p.Done() {
		t.Fatal("a failed run is not done")
	}
	entry := hook.LastEntry()
	if entry == nil || entry.Level != logrus.ErrorLevel {
		t.Fatalf("expected an error log entry, got %+v", entry)
	}
	if entry.Data["sim"] != "pipes" {
		t.Fatalf("log entry missing sim field: %v", entry.Data)
	}

	p.Step()
	if len(hook.AllEntries()) != 1 {
		t.Fatal("halted sim must not step again")
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"w": "10", "h": "-3", "seed": "7", "cascade": "true"})
	if c.Width != 10 || c.Height != DefaultConfig().Height || c.Seed != 7 || !c.Cascade {
		t.Fatalf("unexpected config %+v", c)
	}
	if got := FromMap(c.Map()); got != c {
		t.Fatalf("Map round trip = %+v, want %+v", got, c)
	}
	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map must yield defaults")
	}
}

func TestRegistered(t *testing.T) {
	for _, name := range []string{"pipes", "pipes-cascade"} {
		f, ok := core.Sims()[name]
		if !ok {
			t.Fatalf("sim %q not registered", name)
		}
		sim := f(map[string]string{"w": "5", "h": "3"})
		if sim.Name() != name {
			t.Fatalf("factory %q built %q", name, sim.Name())
		}
		if sim.Size() != (core.Size{W: 5, H: 3}) {
			t.Fatalf("unexpected size %+v", sim.Size())
		}
		if _, ok := sim.(core.Finisher); !ok {
			t.Fatalf("sim %q does not report completion", name)
		}
	}
}

func TestPipesFactoryHonoursCascade(t *testing.T) {
	sim := core.Sims()["pipes"](map[string]string{"w": "4", "h": "4", "cascade": "true"})
	p, ok := sim.(*Pipes)
	if !ok {
		t.Fatalf("factory built %T", sim)
	}
	if !p.Config().Cascade {
		t.Fatal("cascade=true dropped by the pipes factory")
	}
	if p.Name() != "pipes-cascade" {
		t.Fatalf("name = %q, want pipes-cascade", p.Name())
	}
	runToCompletion(t, p)

	plain := core.Sims()["pipes"](map[string]string{"cascade": "false"}).(*Pipes)
	if plain.Config().Cascade {
		t.Fatal("cascade=false turned cascade on")
	}
}

func TestResetClearsDisplay(t *testing.T) {
	p := New(5, 5)
	runToCompletion(t, p)
	p.Reset(7)
	for i, c := range p.Cells() {
		if c != core.Undecided {
			t.Fatalf("cell %d = %d after reset", i, c)
		}
	}
}

func TestParameters(t *testing.T) {
	p := New(3, 3)
	p.Step()
	snap := p.Parameters()
	if len(snap.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(snap.Groups))
	}
	progress := snap.Groups[1]
	if progress.Params[0].Key != "steps" || progress.Params[0].Value != "1" {
		t.Fatalf("unexpected progress params %+v", progress.Params)
	}
}

func TestClampsSize(t *testing.T) {
	p := NewWithConfig(Config{Width: 0, Height: -2})
	if p.Size() != (core.Size{W: 1, H: 1}) {
		t.Fatalf("unexpected size %+v", p.Size())
	}
	runToCompletion(t, p)
	if p.Cells()[0] != 11 {
		t.Fatalf("1x1 grid collapsed to %d, want the empty tile", p.Cells()[0])
	}
}
