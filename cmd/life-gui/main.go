//go:build ebiten

package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/gui"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	var (
		configPath = flag.String("config", "config.json", "path to JSON configuration")
		scale      = flag.Int("scale", 12, "pixels per cell")
		tps        = flag.Int("tps", 60, "ticks per second")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Error("failed to load configuration", "error", err)
			os.Exit(1)
		}
		logger.Info("using default configuration", "path", *configPath)
		config = utils.DefaultConfig()
	}

	if err := config.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	grid := model.NewGrid(config.Width, config.Height)
	if _, err := utils.SeedGrid(grid, config, logger); err != nil {
		logger.Error("failed to seed grid", "error", err)
		os.Exit(1)
	}

	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}
	engine := model.NewEngine(grid, config.NeighborhoodPolicy(), pool)
	game := gui.New(engine, config, *scale)

	ebiten.SetWindowTitle("go-life")
	ebiten.SetTPS(*tps)
	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game exited", "error", err)
		os.Exit(1)
	}
}
