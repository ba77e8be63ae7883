package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

var (
	errShutdown    = errors.New("shutdown requested")
	errInputClosed = errors.New("input closed")
)

// initializeGame builds the seeded grid and its engine, with the renderer and
// stats registered as observers
func initializeGame(config utils.Config, out io.Writer, logger *slog.Logger) (
	*model.Engine,
	*utils.Stats,
	error,
) {
	if err := config.Validate(); err != nil {
		return nil, nil, errors.Wrap(err, "[initializeGame] invalid configuration")
	}

	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	grid := model.NewGrid(config.Width, config.Height)
	if _, err := utils.SeedGrid(grid, config, logger); err != nil {
		return nil, nil, errors.Wrap(err, "[initializeGame] failed to seed grid")
	}

	engine := model.NewEngine(grid, config.NeighborhoodPolicy(), pool)
	stats := utils.NewStats()
	engine.AddObserver(stats)
	engine.AddObserver(model.NewTerminalRenderer(out, config.ClearScreen))

	return engine, stats, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(out io.Writer, config utils.Config, engine *model.Engine) {
	grid := engine.Grid()
	fmt.Fprintf(out, "Grid: %dx%d | Neighborhood: %s | Initial living cells: %d\n",
		grid.GetWidth(), grid.GetHeight(), engine.Neighborhood(), grid.CountLivingCells())
	if config.AutoProgress {
		fmt.Fprintf(out, "Advancing every %v. Press Ctrl+C to exit gracefully\n",
			time.Duration(config.AutoProgressionTime))
	} else {
		fmt.Fprintln(out, "Press Enter to advance one generation, q then Enter to quit")
	}
	fmt.Fprintln(out)
}

// displayFinalStats prints the summary on exit
func displayFinalStats(out io.Writer, engine *model.Engine, stats *utils.Stats) {
	fmt.Fprintf(out, "Final stats: %d generations in %.1f seconds\n",
		engine.Generation(), stats.Runtime().Seconds())
	fmt.Fprintf(out, "Average: %.1f gen/sec, %.1f avg population, %d born, %d died\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.TotalBorn, stats.TotalDied)
}

// scanAdvanceKeys forwards one advance request per input line until ctx is
// done. A line of "q" requests shutdown.
func scanAdvanceKeys(ctx context.Context, in io.Reader, advance chan<- struct{}) error {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return errInputClosed
			}
			if strings.EqualFold(strings.TrimSpace(line), "q") {
				return errShutdown
			}
			select {
			case advance <- struct{}{}:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

// runSimulation is the only goroutine that touches the engine. It steps on
// each advance request, or on the fixed cadence when auto-progressing, and
// returns once MaxGenerations is reached or ctx is done.
func runSimulation(
	ctx context.Context,
	engine *model.Engine,
	config utils.Config,
	advance <-chan struct{},
) error {
	engine.Publish()
	if reachedLimit(engine, config) {
		return nil
	}

	var (
		ticks   <-chan time.Time
		stepper *utils.FixedStep
	)
	if config.AutoProgress {
		stepper = utils.NewFixedStep(time.Duration(config.AutoProgressionTime))
		ticker := time.NewTicker(utils.MinAutoProgressionTime)
		defer ticker.Stop()
		ticks = ticker.C
		stepper.ShouldStep()
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-advance:
		case <-ticks:
			if !stepper.ShouldStep() {
				continue
			}
		}

		engine.Step()
		if reachedLimit(engine, config) {
			return nil
		}
	}
}

func reachedLimit(engine *model.Engine, config utils.Config) bool {
	return config.MaxGenerations > 0 && engine.Generation() >= config.MaxGenerations
}
