package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/YashubuStudio/countdown-solver-go/internal/solver"
)

func parseTarget(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: a target is required", solver.ErrInvalidTarget)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", solver.ErrInvalidTarget, s)
	}
	return n, nil
}

// parseNumbers accepts numbers split across arguments, commas or spaces, so
// "25 50", "25,50" and "25, 50" all read the same.
func parseNumbers(args []string) ([]int, error) {
	var out []int
	for _, arg := range args {
		fields := strings.FieldsFunc(arg, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		for _, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: %q is not a whole number", solver.ErrInvalidNumbers, f)
			}
			out = append(out, n)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no numbers given", solver.ErrInvalidNumbers)
	}
	return out, nil
}

// prompt asks for the target and the numbers on in, one line each.
func prompt(in io.Reader, out io.Writer) (target string, numbers string, err error) {
	sc := bufio.NewScanner(in)
	fmt.Fprint(out, "Target: ")
	if !sc.Scan() {
		return "", "", readErr(sc, "target", solver.ErrInvalidTarget)
	}
	target = sc.Text()
	fmt.Fprint(out, "Numbers: ")
	if !sc.Scan() {
		return "", "", readErr(sc, "numbers", solver.ErrInvalidNumbers)
	}
	return target, sc.Text(), nil
}

func readErr(sc *bufio.Scanner, what string, missing error) error {
	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to read the %s: %w", what, err)
	}
	return fmt.Errorf("%w: no %s given on input", missing, what)
}
