package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	cli := newCLIFlags()
	cli.Bind(flag.CommandLine)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(cli.ConfigPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logger.Error("failed to load configuration", "error", err)
			os.Exit(1)
		}
		fmt.Printf("Using default configuration (%s not found)\n", cli.ConfigPath)
		config = utils.DefaultConfig()
	}
	cli.Apply(&config, flag.CommandLine)

	engine, stats, err := initializeGame(config, os.Stdout, logger)
	if err != nil {
		logger.Error("failed to initialize game", "error", err)
		os.Exit(1)
	}
	displayGameInfo(os.Stdout, config, engine)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	eg.Go(func() error {
		select {
		case <-sigChan:
			return errShutdown
		case <-ctx.Done():
			return nil
		}
	})

	advance := make(chan struct{})
	if !config.AutoProgress {
		eg.Go(func() error {
			return scanAdvanceKeys(ctx, os.Stdin, advance)
		})
	}

	eg.Go(func() error {
		defer cancel()
		return runSimulation(ctx, engine, config, advance)
	})

	switch err = eg.Wait(); {
	case err == nil:
		fmt.Printf("\n🏁 Stopped after %d generations\n", engine.Generation())
	case errors.Is(err, errShutdown), errors.Is(err, errInputClosed):
		fmt.Println("\n🛑 Shutting down gracefully...")
	default:
		logger.Error("simulation failed", "error", err)
		os.Exit(1)
	}
	displayFinalStats(os.Stdout, engine, stats)
}
