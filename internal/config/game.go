package config

import (
	"fmt"

	"github.com/YashubuStudio/countdown-solver-go/internal/solver"
)

// CheckCount enforces the number count of the classic game. The solver itself
// accepts any non-empty input.
func (g GameConfig) CheckCount(numbers []int) error {
	if g.Count > 0 && len(numbers) != g.Count {
		return fmt.Errorf("%w: exactly %d numbers are required, got %d", solver.ErrInvalidNumbers, g.Count, len(numbers))
	}
	return nil
}
