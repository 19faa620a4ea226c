// Package app turns a loaded configuration into the logger and solver the
// commands run with, independent of how the configuration was obtained.
package app

import (
	"io"
	"log/slog"

	"github.com/YashubuStudio/countdown-solver-go/internal/config"
	"github.com/YashubuStudio/countdown-solver-go/internal/solver"
)

// App holds what a command needs to solve puzzles.
type App struct {
	Config *config.Config
	Logger *slog.Logger
	Solver *solver.Solver
}

// New validates cfg and builds the logger (writing to logW) and solver.
func New(cfg *config.Config, logW io.Writer) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := NewLogger(cfg.Log.Level, cfg.Log.Format, logW)

	earlyExit, err := solver.ParseEarlyExit(cfg.Search.EarlyExit)
	if err != nil {
		return nil, err
	}
	s := solver.New(
		solver.WithLogger(logger),
		solver.WithEarlyExit(earlyExit),
		solver.WithSubsets(cfg.Search.AllowSubsets),
	)
	logger.Debug("App configured.",
		"early_exit", earlyExit.String(),
		"allow_subsets", cfg.Search.AllowSubsets,
		"count", cfg.Game.Count,
		"workers", cfg.Batch.Workers,
	)
	return &App{Config: cfg, Logger: logger, Solver: s}, nil
}
