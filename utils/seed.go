package utils

import (
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// SeedGrid applies the configured start policy to grid: a random draw per
// cell when UseRandomStart is set, the explicit seed list otherwise. It
// returns the random seed used, or 0 for list seeding.
func SeedGrid(grid *model.Grid, config Config, logger *slog.Logger) (int64, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if config.UseRandomStart {
		seed := config.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		logger.Info("seeding grid randomly", "seed", seed, "probability", config.RandomLiveProbability)
		if err := grid.SeedRandom(model.NewRand(seed), config.RandomLiveProbability); err != nil {
			return seed, errors.Wrap(err, "[SeedGrid] random start failed")
		}
		return seed, nil
	}

	coords, err := config.SeedCoords()
	if err != nil {
		return 0, errors.Wrap(err, "[SeedGrid] failed to expand seed list")
	}
	if skipped := grid.SeedFromList(coords, logger); skipped > 0 {
		logger.Warn("some seed coordinates were skipped", "skipped", skipped, "total", len(coords))
	}
	return 0, nil
}
