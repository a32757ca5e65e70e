package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func main() {
	var cfg sweepConfig
	flag.IntVar(&cfg.width, "w", 64, "grid width in cells")
	flag.IntVar(&cfg.height, "h", 32, "grid height in cells")
	flag.BoolVar(&cfg.cascade, "cascade", false, "propagate constraints transitively")
	flag.Int64Var(&cfg.from, "from", 1, "first seed")
	flag.IntVar(&cfg.count, "seeds", 200, "number of consecutive seeds to generate")
	flag.IntVar(&cfg.workers, "workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 5, "results to print")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Sweeping %d seeds on %dx%d (%d workers, cascade=%v)\n", cfg.count, cfg.width, cfg.height, cfg.workers, cfg.cascade)

	start := time.Now()
	all := sweep(ctx, cfg)
	elapsed := time.Since(start)

	failed := 0
	for _, res := range all {
		if res.err != nil {
			failed++
			log.WithField("seed", res.seed).WithError(res.err).Error("seed failed")
		}
	}

	fmt.Printf("\nTop %d results (elapsed %s):\n", *top, elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < *top; i++ {
		fmt.Printf("%2d) %s\n", i+1, all[i])
	}
	if failed > 0 {
		os.Exit(1)
	}
}
