package utils

import (
	"encoding/json"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/rules"
)

const (
	MinAutoProgressionTime = 10 * time.Millisecond
	MaxAutoProgressionTime = 5 * time.Second
)

// Duration is a time.Duration that reads "1.5s" style strings or nanoseconds from JSON
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		n, convErr := strconv.ParseInt(string(b), 10, 64)
		if convErr != nil {
			return errors.Errorf("[Duration.UnmarshalJSON] invalid duration: %s", b)
		}
		*d = Duration(n)
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return errors.Wrapf(err, "[Duration.UnmarshalJSON] invalid duration: %q", s)
	}
	*d = Duration(parsed)
	return nil
}

// PatternPlacement places a named pattern with its top-left corner at (X, Y)
type PatternPlacement struct {
	Name string `json:"name"`
	X    uint   `json:"x"`
	Y    uint   `json:"y"`
}

// Config holds the configuration for the simulation and its front-end
type Config struct {
	Width                  uint               `json:"width"`
	Height                 uint               `json:"height"`
	UseRandomStart         bool               `json:"use_random_start"`
	InitialLivingGridItems []model.Coord      `json:"initial_living_grid_items"`
	Patterns               []PatternPlacement `json:"patterns"`
	RandomLiveProbability  float64            `json:"random_live_probability"`
	Seed                   int64              `json:"seed"`
	Neighborhood           string             `json:"neighborhood"`
	AutoProgress           bool               `json:"auto_progress"`
	AutoProgressionTime    Duration           `json:"auto_progression_time"`
	MaxGenerations         uint64             `json:"max_generations"`
	UseMemoryPool          bool               `json:"use_memory_pool"`
	ClearScreen            bool               `json:"clear_screen"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:                 40,
		Height:                20,
		UseRandomStart:        true,
		RandomLiveProbability: model.DefaultLiveProbability,
		Neighborhood:          rules.Moore.String(),
		AutoProgress:          true,
		AutoProgressionTime:   Duration(time.Second),
		UseMemoryPool:         true,
		ClearScreen:           true,
	}
}

// LoadConfig loads configuration from JSON file on top of DefaultConfig
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate checks value ranges. Zero width or height is valid and gives an empty grid.
func (c Config) Validate() error {
	if c.RandomLiveProbability < 0 || c.RandomLiveProbability > 1 {
		return errors.Errorf("[Config.Validate] random_live_probability %v outside [0,1]", c.RandomLiveProbability)
	}
	if _, err := rules.ParseNeighborhood(c.Neighborhood); err != nil {
		return errors.Wrap(err, "[Config.Validate] bad neighborhood")
	}
	if d := time.Duration(c.AutoProgressionTime); d < MinAutoProgressionTime || d > MaxAutoProgressionTime {
		return errors.Errorf("[Config.Validate] auto_progression_time %v outside [%v,%v]",
			d, MinAutoProgressionTime, MaxAutoProgressionTime)
	}
	if _, err := c.SeedCoords(); err != nil {
		return errors.Wrap(err, "[Config.Validate] bad pattern")
	}
	return nil
}

// NeighborhoodPolicy returns the parsed neighborhood, Moore if unset
func (c Config) NeighborhoodPolicy() rules.Neighborhood {
	n, _ := rules.ParseNeighborhood(c.Neighborhood)
	return n
}

// SeedCoords returns the explicit seed list with every pattern placement expanded
func (c Config) SeedCoords() ([]model.Coord, error) {
	coords := append([]model.Coord(nil), c.InitialLivingGridItems...)
	for _, p := range c.Patterns {
		pattern, err := model.LookupPattern(p.Name)
		if err != nil {
			return nil, errors.Wrap(err, "[Config.SeedCoords]")
		}
		placed, err := pattern.At(p.X, p.Y)
		if err != nil {
			return nil, errors.Wrapf(err, "[Config.SeedCoords] pattern %q", p.Name)
		}
		coords = append(coords, placed...)
	}
	return coords, nil
}
