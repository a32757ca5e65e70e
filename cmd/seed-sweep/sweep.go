package main

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"pipemaze/internal/network"
	"pipemaze/internal/wfc"
)

type sweepConfig struct {
	width, height int
	cascade       bool
	from          int64
	count         int
	workers       int
}

type seedResult struct {
	seed   int64
	steps  int
	report network.Report
	err    error
}

func (r seedResult) String() string {
	if r.err != nil {
		return fmt.Sprintf("seed=%d error=%v", r.seed, r.err)
	}
	return fmt.Sprintf("seed=%d steps=%d networks=%d largest=%d deadEnds=%d junctions=%d empty=%d",
		r.seed, r.steps, r.report.Networks(), r.report.Largest(), r.report.DeadEnds, r.report.Junctions, r.report.Empty)
}

// runSeed generates one maze. Each call owns its engine.
func runSeed(ctx context.Context, cfg sweepConfig, seed int64) seedResult {
	res := seedResult{seed: seed}
	engine, err := wfc.New(cfg.width, cfg.height, wfc.Options{Seed: seed, Cascade: cfg.cascade})
	if err != nil {
		res.err = err
		return res
	}
	stats, err := engine.Run(ctx, nil)
	res.steps = stats.Steps
	if err != nil {
		res.err = err
		return res
	}
	res.report, res.err = network.Analyze(engine.Grid())
	return res
}

// sweep runs cfg.count seeds across cfg.workers goroutines and returns the
// results ordered by largest network, then by seed.
func sweep(ctx context.Context, cfg sweepConfig) []seedResult {
	workers := cfg.workers
	if workers <= 0 {
		workers = 1
	}
	jobs := make(chan int64)
	results := make(chan seedResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- runSeed(ctx, cfg, seed)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for i := 0; i < cfg.count; i++ {
			select {
			case jobs <- cfg.from + int64(i):
			case <-ctx.Done():
				return
			}
		}
	}()

	var all []seedResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if (a.err == nil) != (b.err == nil) {
			return a.err == nil
		}
		if a.report.Largest() != b.report.Largest() {
			return a.report.Largest() > b.report.Largest()
		}
		return a.seed < b.seed
	})
	return all
}
