package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-grid/model"
	"github.com/sheikhrachel/go-gol-grid/utils"
)

func main() {
	config, err := loadConfig()
	if err != nil {
		log.Fatalf("configuration: %v", err)
	}

	grid, pool, err := initializeGame(config)
	if err != nil {
		log.Fatalf("initialize: %v", err)
	}
	displayGameInfo(config, grid)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		stats    = utils.NewStats()
		renderer = &model.TerminalRenderer{Out: os.Stdout, Block: config.BlockGlyphs}
		opts     = model.SimulateOptions{
			MaxGenerations: config.MaxGenerations,
			HistorySize:    config.HistorySize,
			Bounded:        config.UseBoundedGrid,
			Pool:           pool,
		}
	)

	result, err := model.Simulate(ctx, grid, opts, frameObserver(os.Stdout, config, renderer, stats))
	switch {
	case errors.Is(err, context.Canceled):
		log.Println("shutting down gracefully...")
	case err != nil:
		log.Fatalf("simulate: %v", err)
	default:
		log.Println(haltMessage(result))
	}

	log.Printf("final stats: %s", stats.Report())
}
