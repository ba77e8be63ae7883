package main

import (
	"flag"

	"github.com/sheikhrachel/go-life/utils"
)

// cliFlags are command-line overrides applied on top of the config file
type cliFlags struct {
	ConfigPath     string
	Seed           int64
	Auto           bool
	Neighborhood   string
	MaxGenerations uint64
}

func newCLIFlags() *cliFlags {
	return &cliFlags{ConfigPath: "config.json"}
}

// Bind attaches the flags to the provided FlagSet
func (c *cliFlags) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "path to JSON configuration")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random start (0 picks one from the clock)")
	fs.BoolVar(&c.Auto, "auto", c.Auto, "advance automatically instead of on Enter")
	fs.StringVar(&c.Neighborhood, "neighborhood", c.Neighborhood, "moore or orthogonal")
	fs.Uint64Var(&c.MaxGenerations, "max-generations", c.MaxGenerations, "stop after this many generations (0 = never)")
}

// Apply copies every flag that was set explicitly into config
func (c *cliFlags) Apply(config *utils.Config, fs *flag.FlagSet) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			config.Seed = c.Seed
		case "auto":
			config.AutoProgress = c.Auto
		case "neighborhood":
			config.Neighborhood = c.Neighborhood
		case "max-generations":
			config.MaxGenerations = c.MaxGenerations
		}
	})
}
