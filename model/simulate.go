package model

import (
	"context"

	"github.com/pkg/errors"
)

// HaltReason describes why a simulation stopped
type HaltReason string

const (
	HaltStable      HaltReason = "stable"
	HaltOscillating HaltReason = "oscillating"
	HaltExtinct     HaltReason = "extinct"
	HaltBudget      HaltReason = "budget exhausted"
)

// Observer is called with every generation, starting at generation 0
type Observer func(generation int, g *Grid) error

// SimulateOptions controls a simulation run
type SimulateOptions struct {
	MaxGenerations int  // 0 means no limit
	HistorySize    int  // generations kept for oscillation detection
	Bounded        bool // step only the active region
	// Pool is optional. With a pool, observers must not keep the grids
	// they are handed; start is never returned to it.
	Pool *GridPool
}

// Result summarises a finished run
type Result struct {
	Final       *Grid
	Generations int // steps taken
	Reason      HaltReason
	Period      int // set for HaltOscillating
}

// Simulate steps start until the universe stops changing, repeats itself,
// dies out or runs out of budget. Cancelling ctx stops between generations.
func Simulate(ctx context.Context, start *Grid, opts SimulateOptions, observe Observer) (Result, error) {
	var (
		cur     = start
		history = NewHistory(opts.HistorySize)
	)

	notify := func(gen int, g *Grid) error {
		if observe == nil {
			return nil
		}
		if err := observe(gen, g); err != nil {
			return errors.Wrapf(err, "[Simulate] observer failed at generation %d", gen)
		}
		return nil
	}

	if err := notify(0, cur); err != nil {
		return Result{Final: cur}, err
	}
	history.Push(cur)

	for gen := 1; ; gen++ {
		if err := ctx.Err(); err != nil {
			return Result{Final: cur, Generations: gen - 1}, err
		}
		if opts.MaxGenerations > 0 && gen > opts.MaxGenerations {
			return Result{Final: cur, Generations: gen - 1, Reason: HaltBudget}, nil
		}

		var next *Grid
		if opts.Bounded {
			next = cur.NextGenerationBounded(opts.Pool)
		} else {
			next = cur.NextGenerationPool(opts.Pool)
		}
		if next.Equal(cur) {
			GridToPool(next, opts.Pool)
			return Result{Final: cur, Generations: gen, Reason: HaltStable}, nil
		}
		if err := notify(gen, next); err != nil {
			return Result{Final: next, Generations: gen}, err
		}

		period := history.Period(next)
		history.Push(next)
		if cur != start {
			GridToPool(cur, opts.Pool)
		}
		cur = next

		switch {
		case cur.CountAlive() == 0:
			return Result{Final: cur, Generations: gen, Reason: HaltExtinct}, nil
		case period > 0:
			return Result{Final: cur, Generations: gen, Reason: HaltOscillating, Period: period}, nil
		}
	}
}
