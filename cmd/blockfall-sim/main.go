package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"blockfall/internal/game"
	"blockfall/internal/sim"
)

func main() {
	cfg := game.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	steps := flag.Int("steps", sim.DefaultSteps, "ticks to simulate per seed")
	seeds := flag.Int("seeds", 1, "number of consecutive seeds to run, starting at -seed")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	rate := flag.Int("input-rate", sim.DefaultInputRate, "percent of ticks that apply a random action")
	board := flag.Bool("board", true, "print the final board of each run")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if *seeds < 1 {
		*seeds = 1
	}

	list := make([]int64, *seeds)
	for i := range list {
		list[i] = cfg.Seed + int64(i)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	opts := sim.Options{Steps: *steps, InputRate: *rate, Board: *board}
	results := sim.Sweep(ctx, cfg, list, opts, *workers)

	for _, res := range results {
		fmt.Printf("seed=%d steps=%d settled=%d floor=%d height=%d\n",
			res.Seed, res.Steps, res.Settled, res.Floor, res.Height)
		if res.Board != "" {
			fmt.Print(res.Board)
			fmt.Println()
		}
	}
	fmt.Printf("%d runs in %s\n", len(results), time.Since(start).Round(time.Millisecond))
}
