package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/YashubuStudio/countdown-solver-go/internal/batch"
	"github.com/YashubuStudio/countdown-solver-go/internal/solver"
)

// report is the YAML shape of one solved (or failed) puzzle.
type report struct {
	Name    string      `yaml:"name,omitempty"`
	Target  int         `yaml:"target"`
	Numbers []int       `yaml:"numbers,flow"`
	Result  *resultView `yaml:"result,omitempty"`
	Error   string      `yaml:"error,omitempty"`
}

type resultView struct {
	Expression string   `yaml:"expression"`
	Value      int      `yaml:"value"`
	Distance   int      `yaml:"distance"`
	Exact      bool     `yaml:"exact"`
	ElapsedMS  int64    `yaml:"elapsed_ms"`
	Advisories []string `yaml:"advisories,omitempty"`
}

func newReport(o batch.Outcome) report {
	r := report{Name: o.Puzzle.Name, Target: o.Puzzle.Target, Numbers: o.Puzzle.Numbers}
	if o.Err != nil {
		r.Error = o.Err.Error()
		return r
	}
	r.Result = &resultView{
		Expression: o.Result.Expression,
		Value:      o.Result.Value,
		Distance:   o.Result.Distance,
		Exact:      o.Result.Exact,
		ElapsedMS:  o.Result.ElapsedMilliseconds(),
		Advisories: o.Result.Advisories,
	}
	return r
}

// renderer writes results as coloured text or YAML.
type renderer struct {
	w      io.Writer
	format string
	good   *color.Color
	near   *color.Color
	bad    *color.Color
}

func newRenderer(w io.Writer, format, colorMode string) (*renderer, error) {
	switch format {
	case "text", "yaml":
	default:
		return nil, &ExitError{Code: 2, Message: "invalid output: must be 'text' or 'yaml'"}
	}
	r := &renderer{
		w:      w,
		format: format,
		good:   color.New(color.FgGreen, color.Bold),
		near:   color.New(color.FgYellow),
		bad:    color.New(color.FgRed),
	}
	if useColor(w, colorMode) {
		r.good.EnableColor()
		r.near.EnableColor()
		r.bad.EnableColor()
	} else {
		r.good.DisableColor()
		r.near.DisableColor()
		r.bad.DisableColor()
	}
	return r, nil
}

func useColor(w io.Writer, mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

func (r *renderer) single(target int, numbers []int, res *solver.Result) error {
	if r.format == "yaml" {
		return r.yaml(newReport(batch.Outcome{
			Puzzle: batch.Puzzle{Target: target, Numbers: numbers},
			Result: res,
		}))
	}
	fmt.Fprintf(r.w, "Target:     %d\n", target)
	fmt.Fprintf(r.w, "Numbers:    %s\n", joinInts(numbers))
	fmt.Fprintf(r.w, "Expression: %s\n", res.Expression)
	fmt.Fprintf(r.w, "Value:      %s\n", r.verdict(res))
	fmt.Fprintf(r.w, "Elapsed:    %d ms\n", res.ElapsedMilliseconds())
	return nil
}

func (r *renderer) list(outcomes []batch.Outcome) error {
	if r.format == "yaml" {
		reports := make([]report, len(outcomes))
		for i, o := range outcomes {
			reports[i] = newReport(o)
		}
		return r.yaml(map[string][]report{"results": reports})
	}
	width := 0
	for _, o := range outcomes {
		width = max(width, len(o.Puzzle.Name))
	}
	for _, o := range outcomes {
		name := fmt.Sprintf("%-*s", width, o.Puzzle.Name)
		if o.Err != nil {
			fmt.Fprintf(r.w, "%s  %s\n", name, r.bad.Sprint(o.Err.Error()))
			continue
		}
		fmt.Fprintf(r.w, "%s  target %d: %s = %s\n", name, o.Puzzle.Target, o.Result.Expression, r.verdict(o.Result))
	}
	return nil
}

func (r *renderer) verdict(res *solver.Result) string {
	if res.Exact {
		return r.good.Sprintf("%d (exact)", res.Value)
	}
	return r.near.Sprintf("%d (%d away)", res.Value, res.Distance)
}

func (r *renderer) yaml(v any) error {
	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write yaml output: %w", err)
	}
	return enc.Close()
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, " ")
}
