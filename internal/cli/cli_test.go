package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/YashubuStudio/countdown-solver-go/internal/solver"
)

type result struct {
	out, err string
	exit     *ExitError
}

func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer
	err := Execute(context.Background(), append(args, "--color", "never"), Streams{
		In:  strings.NewReader(stdin),
		Out: &out,
		Err: &errOut,
	})
	r := result{out: out.String(), err: errOut.String()}
	if err != nil {
		require.True(t, errors.As(err, &r.exit), "Execute must return *ExitError, got %T", err)
	}
	return r
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestSolve_Exact(t *testing.T) {
	r := execute(t, "", "solve", "-t", "20", "--count", "0", "10", "10")
	require.Nil(t, r.exit)
	assert.Contains(t, r.out, "Target:     20\n")
	assert.Contains(t, r.out, "Numbers:    10 10\n")
	assert.Contains(t, r.out, "Expression: (10 + 10)\n")
	assert.Contains(t, r.out, "Value:      20 (exact)\n")
	assert.Contains(t, r.out, "Elapsed:")
}

func TestSolve_Near(t *testing.T) {
	r := execute(t, "", "solve", "-t", "100", "1", "1", "1", "1", "1", "1")
	require.Nil(t, r.exit)
	assert.Contains(t, r.out, "Value:      9 (91 away)\n")
}

func TestSolve_CommaSeparated(t *testing.T) {
	r := execute(t, "", "solve", "--target", "21", "2,3,4", "5, 6,7")
	require.Nil(t, r.exit)
	assert.Contains(t, r.out, "Numbers:    2 3 4 5 6 7\n")
	assert.Contains(t, r.out, "21 (exact)")
}

func TestSolve_Interactive(t *testing.T) {
	r := execute(t, "21\n2 3 4 5 6 7\n", "solve")
	require.Nil(t, r.exit)
	assert.Contains(t, r.err, "Target: ")
	assert.Contains(t, r.err, "Numbers: ")
	assert.Contains(t, r.out, "21 (exact)")
}

func TestSolve_InputErrors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"wrong count", "", []string{"solve", "-t", "20", "10", "10"}, "exactly 6 numbers"},
		{"zero target", "", []string{"solve", "-t", "0", "1", "2", "3", "4", "5", "6"}, "invalid target"},
		{"word target", "", []string{"solve", "-t", "lots", "1", "2", "3", "4", "5", "6"}, "invalid target"},
		{"missing target", "", []string{"solve", "1", "2", "3", "4", "5", "6"}, "invalid target"},
		{"word number", "", []string{"solve", "-t", "5", "--count", "0", "1", "two"}, "invalid numbers"},
		{"zero number", "", []string{"solve", "-t", "5", "--count", "0", "1", "0"}, "invalid numbers"},
		{"empty stdin", "", []string{"solve"}, "no target given"},
		{"no numbers on stdin", "10\n", []string{"solve"}, "no numbers given"},
		{"bad output", "", []string{"solve", "-t", "20", "--count", "0", "-o", "xml", "10", "10"}, "invalid output"},
		{"unknown flag", "", []string{"solve", "--frobnicate"}, "unknown flag"},
		{"bad log level", "", []string{"solve", "--log-level", "loud", "-t", "1", "1"}, "Log.Level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := execute(t, tt.stdin, tt.args...)
			require.NotNil(t, r.exit)
			assert.Equal(t, 2, r.exit.Code)
			assert.Contains(t, r.exit.Message, tt.want)
		})
	}
}

func TestSolve_YAML(t *testing.T) {
	r := execute(t, "", "solve", "-t", "103", "--count", "0", "-o", "yaml", "101", "2")
	require.Nil(t, r.exit)

	var rep report
	require.NoError(t, yaml.Unmarshal([]byte(r.out), &rep))
	assert.Equal(t, 103, rep.Target)
	assert.Equal(t, []int{101, 2}, rep.Numbers)
	require.NotNil(t, rep.Result)
	assert.Equal(t, "(101 + 2)", rep.Result.Expression)
	assert.True(t, rep.Result.Exact)
	assert.Len(t, rep.Result.Advisories, 1)
	assert.Contains(t, r.err, "level=WARN", "advisory is logged too")
}

func TestSolve_EarlyExitFromConfigAndFlag(t *testing.T) {
	r := execute(t, "", "solve", "-t", "7", "--count", "0", "3", "4", "5")
	require.Nil(t, r.exit)
	assert.Contains(t, r.out, "6 (1 away)")

	r = execute(t, "", "solve", "-t", "7", "--count", "0", "--early-exit", "top", "3", "4", "5")
	require.Nil(t, r.exit)
	assert.Contains(t, r.out, "Expression: ((3 * 4) - 5)\n")

	cfg := writeFile(t, "countdown.yaml", "search:\n  early_exit: top\ngame:\n  count: 3\n")
	r = execute(t, "", "solve", "--config", cfg, "-t", "7", "3", "4", "5")
	require.Nil(t, r.exit)
	assert.Contains(t, r.out, "7 (exact)")
}

func TestSolve_Subsets(t *testing.T) {
	r := execute(t, "", "solve", "-t", "100", "--count", "0", "--subsets", "1", "100")
	require.Nil(t, r.exit)
	assert.Contains(t, r.out, "Expression: 100\n")
}

func TestSolve_DebugLogsJSON(t *testing.T) {
	r := execute(t, "", "solve", "--log-level", "debug", "--log-format", "json", "-t", "20", "--count", "0", "10", "10")
	require.Nil(t, r.exit)
	assert.Contains(t, r.err, `"msg":"Search finished."`)
}

func TestSolve_MissingConfig(t *testing.T) {
	r := execute(t, "", "solve", "--config", filepath.Join(t.TempDir(), "none.yaml"), "-t", "1", "1")
	require.NotNil(t, r.exit)
	assert.Equal(t, 1, r.exit.Code)
}

const puzzles = `
puzzles:
  - name: pair
    target: 20
    numbers: [10, 10]
  - name: ones
    target: 100
    numbers: [1, 1, 1, 1, 1, 1]
`

func TestBatch_Text(t *testing.T) {
	path := writeFile(t, "puzzles.yaml", puzzles)
	r := execute(t, "", "batch", "--count", "0", "--workers", "2", path)
	require.Nil(t, r.exit)
	lines := strings.Split(strings.TrimSpace(r.out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "pair  target 20: (10 + 10) = 20 (exact)", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "ones  target 100: "))
	assert.True(t, strings.HasSuffix(lines[1], "= 9 (91 away)"))
}

func TestBatch_CountRuleFailsEntry(t *testing.T) {
	path := writeFile(t, "puzzles.yaml", puzzles)
	r := execute(t, "", "batch", path)
	require.NotNil(t, r.exit)
	assert.Equal(t, 1, r.exit.Code)
	assert.Equal(t, "1 of 2 puzzles failed", r.exit.Message)
	assert.Contains(t, r.out, "exactly 6 numbers")
	assert.Contains(t, r.out, "91 away")
}

func TestBatch_YAML(t *testing.T) {
	path := writeFile(t, "puzzles.yaml", puzzles+`
  - name: broken
    target: -1
    numbers: [1, 2]
`)
	r := execute(t, "", "batch", "--count", "0", "-o", "yaml", path)
	require.NotNil(t, r.exit)

	var doc struct {
		Results []report `yaml:"results"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(r.out), &doc))
	require.Len(t, doc.Results, 3)
	assert.Equal(t, 20, doc.Results[0].Result.Value)
	assert.Equal(t, 9, doc.Results[1].Result.Value)
	assert.Nil(t, doc.Results[2].Result)
	assert.Contains(t, doc.Results[2].Error, "invalid target")
}

func TestBatch_Args(t *testing.T) {
	r := execute(t, "", "batch")
	require.NotNil(t, r.exit)
	assert.Equal(t, 2, r.exit.Code)

	r = execute(t, "", "batch", filepath.Join(t.TempDir(), "missing.yaml"))
	require.NotNil(t, r.exit)
	assert.Equal(t, 1, r.exit.Code)
}

func TestParseNumbers(t *testing.T) {
	got, err := parseNumbers([]string{"25, 50", "75", "100,3 6"})
	require.NoError(t, err)
	assert.Equal(t, []int{25, 50, 75, 100, 3, 6}, got)

	_, err = parseNumbers([]string{" , "})
	assert.ErrorIs(t, err, solver.ErrInvalidNumbers)

	_, err = parseNumbers([]string{"1.5"})
	assert.ErrorIs(t, err, solver.ErrInvalidNumbers)
}

func TestParseTarget(t *testing.T) {
	n, err := parseTarget(" 952 ")
	require.NoError(t, err)
	assert.Equal(t, 952, n)

	_, err = parseTarget("")
	assert.ErrorIs(t, err, solver.ErrInvalidTarget)
}
