// Package sim plays seeded games headlessly with random input, for smoke
// runs and for checking that piece sequences are reproducible.
package sim

import (
	"context"
	"sort"
	"sync"
	"time"

	"blockfall/internal/core"
	"blockfall/internal/game"
	"blockfall/internal/input"
	"blockfall/internal/render"
	"blockfall/internal/shape"
)

// Frame is the simulated time between ticks.
const Frame = time.Second / 60

// Defaults used by the command-line runner.
const (
	DefaultSteps     = 3600
	DefaultInputRate = 15
)

// Options control one headless run.
type Options struct {
	Steps int
	// InputRate is the chance per tick, in percent, that a random action is
	// applied before the tick.
	InputRate int
	Board     bool
}

// Result summarizes a finished run.
type Result struct {
	Seed    int64
	Steps   int
	Settled int
	Floor   int
	// Height is the number of rows between the highest settled cell and the
	// floor. Stacks that grew above the visible grid report more than Rows.
	Height int
	Board  string
}

var actions = []input.Action{
	input.ActionMoveLeft,
	input.ActionMoveRight,
	input.ActionRotate,
	input.ActionMoveDown,
}

// Run plays cfg for opts.Steps ticks. Inputs come from a second RNG derived
// from the seed so the piece sequence matches an interactive game with the
// same seed.
//
// The game itself lets a piece leave the grid; the runner only picks moves
// that keep the active piece inside the columns, and checks for a landing
// right after a soft drop so gravity cannot carry the piece a second row
// before the check.
func Run(cfg game.Config, opts Options) Result {
	state := game.New(cfg)
	inputs := core.NewRNG(cfg.Seed ^ 0x5eed)

	res := Result{Seed: cfg.Seed, Steps: opts.Steps}
	count := func(tr game.TickResult) {
		if tr.Landed == game.LandedFloor {
			res.Floor++
		}
	}
	for i := 0; i < opts.Steps; i++ {
		if opts.InputRate > 0 && inputs.IntN(100) < opts.InputRate {
			a := actions[inputs.IntN(len(actions))]
			if inColumns(state.Active(), a, cfg.Columns) && state.Apply(a) && a == input.ActionMoveDown {
				count(state.Tick(0))
			}
		}
		count(state.Tick(Frame))
	}

	res.Settled = len(state.Settled())
	res.Height = stackHeight(state)
	if opts.Board {
		res.Board = render.Text(state.Size(), state.Settled(), state.Active())
	}
	return res
}

// inColumns reports whether the piece stays within [0, columns) after a.
func inColumns(p *shape.Piece, a input.Action, columns int) bool {
	switch a {
	case input.ActionMoveLeft:
		return p.Left() > 0
	case input.ActionMoveRight:
		return p.Right() < columns
	}
	return true
}

func stackHeight(state *game.State) int {
	top := state.Floor().Top()
	highest := top
	for _, s := range state.Settled() {
		shape.Cells(s, func(_, y int) {
			if y < highest {
				highest = y
			}
		})
	}
	return top - highest
}

// Sweep runs one game per seed on a pool of workers and returns the results
// ordered by seed. It stops handing out seeds when ctx is cancelled.
func Sweep(ctx context.Context, base game.Config, seeds []int64, opts Options, workers int) []Result {
	if workers <= 0 {
		workers = 1
	}
	jobs := make(chan int64)
	results := make(chan Result)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				cfg := base
				cfg.Seed = seed
				results <- Run(cfg, opts)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for _, seed := range seeds {
			if ctx.Err() != nil {
				return
			}
			select {
			case jobs <- seed:
			case <-ctx.Done():
				return
			}
		}
	}()

	var all []Result
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Seed < all[j].Seed })
	return all
}
