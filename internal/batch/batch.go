// Package batch solves a file of independent puzzles on a bounded pool of
// workers. Every puzzle gets its own search state; nothing is shared between
// workers except the read-only puzzle list.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/YashubuStudio/countdown-solver-go/internal/config"
	"github.com/YashubuStudio/countdown-solver-go/internal/solver"
)

// Puzzle is one entry of a batch file.
type Puzzle struct {
	Name    string `yaml:"name"`
	Target  int    `yaml:"target"`
	Numbers []int  `yaml:"numbers"`
}

// File is the on-disk batch format.
type File struct {
	Puzzles []Puzzle `yaml:"puzzles" validate:"required,min=1"`
}

// Outcome pairs a puzzle with its result or the error that stopped it.
type Outcome struct {
	Puzzle Puzzle
	Result *solver.Result
	Err    error
}

// Solver is the part of *solver.Solver the pool needs.
type Solver interface {
	Solve(target int, numbers []int) (*solver.Result, error)
}

var validate = validator.New()

// Load reads and parses a batch file. Entries are not checked here; bad
// puzzles surface as per-entry errors from Run.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read the batch file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse the batch file %s: %w", path, err)
	}
	if err := validate.Struct(&f); err != nil {
		return nil, fmt.Errorf("batch file %s has no puzzles", path)
	}
	for i := range f.Puzzles {
		if f.Puzzles[i].Name == "" {
			f.Puzzles[i].Name = fmt.Sprintf("#%d", i+1)
		}
	}
	return &f, nil
}

// Run solves puzzles with at most workers running at once and returns one
// Outcome per puzzle in input order. A failing puzzle does not stop the
// others; only cancellation of ctx makes Run return an error.
func Run(ctx context.Context, puzzles []Puzzle, workers int, s Solver, game config.GameConfig, logger *slog.Logger) ([]Outcome, error) {
	if workers < 1 {
		workers = 1
	}
	out := make([]Outcome, len(puzzles))

	jobCh := make(chan int)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(jobCh)
		for i := range puzzles {
			if err := gctx.Err(); err != nil {
				return err
			}
			select {
			case jobCh <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := range jobCh {
				p := puzzles[i]
				out[i] = solveOne(p, s, game)
				if out[i].Err != nil {
					logger.Debug("Puzzle failed.", "puzzle", p.Name, "error", out[i].Err)
				} else {
					logger.Debug("Puzzle solved.", "puzzle", p.Name, "worker", w, "distance", out[i].Result.Distance)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func solveOne(p Puzzle, s Solver, game config.GameConfig) Outcome {
	if err := game.CheckCount(p.Numbers); err != nil {
		return Outcome{Puzzle: p, Err: err}
	}
	res, err := s.Solve(p.Target, p.Numbers)
	return Outcome{Puzzle: p, Result: res, Err: err}
}
