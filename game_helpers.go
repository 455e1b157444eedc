package main

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-grid/model"
	"github.com/sheikhrachel/go-gol-grid/utils"
)

const configFile = "config.json"

// loadConfig reads config.json when present, then the environment
func loadConfig() (utils.Config, error) {
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		if !os.IsNotExist(errors.Cause(err)) {
			return config, err
		}
		log.Printf("using default configuration (%s not found)", configFile)
		config = utils.DefaultConfig()
	}

	if err = utils.ApplyEnv(&config); err != nil {
		return config, err
	}
	return config, config.Validate()
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (*model.Grid, *model.GridPool, error) {
	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	grid := model.NewGrid(config.Length)
	if err := model.Seed(grid, config.Pattern, rand.New(rand.NewSource(seed)), config.RandomDensity); err != nil {
		return nil, nil, err
	}

	return grid, pool, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, grid *model.Grid) {
	log.Printf("pattern: %s | memory pool: %v | bounded: %v | history: %d",
		config.Pattern, config.UseMemoryPool, config.UseBoundedGrid, config.HistorySize)
	log.Printf("grid: %dx%d | initial living cells: %d",
		grid.Len(), grid.Len(), grid.CountAlive())
}

// frameObserver renders every generation followed by its status line
func frameObserver(
	w io.Writer,
	config utils.Config,
	renderer *model.TerminalRenderer,
	stats *utils.Stats,
) model.Observer {
	lastFrameTime := time.Now()

	return func(generation int, grid *model.Grid) error {
		if generation > 0 {
			time.Sleep(config.FrameRate)
		}

		frameStart := time.Now()
		livingCells := grid.CountAlive()
		stats.Update(generation, livingCells, frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart

		if config.ClearScreen {
			renderer.Clear()
		}
		if _, err := fmt.Fprintf(w, "Game Field Iteration %d\n", generation); err != nil {
			return err
		}
		if err := renderer.Display(grid); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w, statusLine(generation, grid, stats))
		return err
	}
}

// statusLine summarises one generation
func statusLine(generation int, grid *model.Grid, stats *utils.Stats) string {
	var (
		livingCells = grid.CountAlive()
		density     float64
	)
	if grid.Size() > 0 {
		density = float64(livingCells) / float64(grid.Size()) * 100
	}

	boundingInfo := ""
	if lo, hi, ok := grid.BoundingBox(); ok {
		boundingInfo = fmt.Sprintf(" | Bounding box: %v-%v", lo, hi)
	}

	return fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | %.1f gen/sec%s",
		generation, livingCells, density, stats.GenerationsPerSecond, boundingInfo)
}

// haltMessage describes why the run ended
func haltMessage(result model.Result) string {
	switch result.Reason {
	case model.HaltStable:
		return "No more changes"
	case model.HaltOscillating:
		return fmt.Sprintf("Oscillating with period %d", result.Period)
	case model.HaltExtinct:
		return "Extinct"
	case model.HaltBudget:
		return fmt.Sprintf("Reached maximum generations limit (%d)", result.Generations)
	}
	return string(result.Reason)
}
