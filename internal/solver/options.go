package solver

import (
	"fmt"
	"io"
	"log/slog"
)

// EarlyExit selects where the generator stops once it reaches the target.
type EarlyExit int

const (
	// EarlyExitSubsets stops exploring any multiset, including proper
	// sub-multisets, as soon as one of its combinations hits the target. The
	// truncated list is what gets cached, so near misses that depended on the
	// rest of that list can be lost.
	EarlyExitSubsets EarlyExit = iota
	// EarlyExitTop enumerates sub-multisets fully and only stops early on the
	// full input.
	EarlyExitTop
)

func (e EarlyExit) String() string {
	switch e {
	case EarlyExitSubsets:
		return "subsets"
	case EarlyExitTop:
		return "top"
	default:
		return fmt.Sprintf("EarlyExit(%d)", int(e))
	}
}

// ParseEarlyExit maps the config spelling onto an EarlyExit.
func ParseEarlyExit(s string) (EarlyExit, error) {
	switch s {
	case "", "subsets":
		return EarlyExitSubsets, nil
	case "top":
		return EarlyExitTop, nil
	}
	return 0, fmt.Errorf("unknown early exit mode %q: must be 'subsets' or 'top'", s)
}

// Option configures a Solver.
type Option func(*Solver)

// WithLogger sets the logger used for advisories and search statistics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Solver) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithEarlyExit sets the early termination mode. Default EarlyExitSubsets.
func WithEarlyExit(e EarlyExit) Option {
	return func(s *Solver) { s.earlyExit = e }
}

// WithSubsets lets the solver answer with expressions that use only some of
// the numbers. By default every answer uses all of them.
func WithSubsets(on bool) Option {
	return func(s *Solver) { s.subsets = on }
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
