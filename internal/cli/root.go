package cli

import (
	"context"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/YashubuStudio/countdown-solver-go/internal/app"
	"github.com/YashubuStudio/countdown-solver-go/internal/config"
)

// Streams are the process streams a command reads from and writes to.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// rootFlags are the persistent flags shared by every subcommand.
type rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string
	color      string
}

// Execute runs the command line in args and returns an *ExitError on failure.
func Execute(ctx context.Context, args []string, s Streams) error {
	cmd := NewRootCmd(s)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		return toExitError(err)
	}
	return nil
}

// NewRootCmd builds the countdown command tree.
func NewRootCmd(s Streams) *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:   "countdown",
		Short: "Solve Countdown numbers puzzles",
		Long: `countdown finds the arithmetic expression over a set of numbers that
comes closest to a target, using + - * and exact division.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(s.In)
	root.SetOut(s.Out)
	root.SetErr(s.Err)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: 2, Message: err.Error()}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Path to a YAML config file.")
	pf.StringVar(&flags.logLevel, "log-level", "", "Logging level: 'debug', 'info', 'warn' or 'error'.")
	pf.StringVar(&flags.logFormat, "log-format", "", "Log output format: 'text' or 'json'.")
	pf.StringVar(&flags.color, "color", "", "Colour output: 'auto', 'always' or 'never'.")

	root.AddCommand(newSolveCmd(flags, s), newBatchCmd(flags, s))
	return root
}

// load reads the config file, applies the persistent flag overrides and
// builds the App. Logs go to the error stream.
func (f *rootFlags) load(cmd *cobra.Command, s Streams) (*app.App, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	if f.logLevel != "" {
		cfg.Log.Level = strings.ToLower(f.logLevel)
	}
	if f.logFormat != "" {
		cfg.Log.Format = strings.ToLower(f.logFormat)
	}
	if f.color != "" {
		cfg.Output.Color = strings.ToLower(f.color)
	}
	if err := applyCommandOverrides(cmd, cfg); err != nil {
		return nil, err
	}
	a, err := app.New(cfg, s.Err)
	if err != nil {
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}
	return a, nil
}

// applyCommandOverrides copies the search and batch flags a subcommand was
// given onto cfg. Flags the user left alone keep the file value.
func applyCommandOverrides(cmd *cobra.Command, cfg *config.Config) error {
	fs := cmd.Flags()
	var err error
	if fs.Changed("early-exit") {
		if cfg.Search.EarlyExit, err = fs.GetString("early-exit"); err != nil {
			return err
		}
	}
	if fs.Changed("subsets") {
		if cfg.Search.AllowSubsets, err = fs.GetBool("subsets"); err != nil {
			return err
		}
	}
	if fs.Changed("count") {
		if cfg.Game.Count, err = fs.GetInt("count"); err != nil {
			return err
		}
	}
	if fs.Changed("workers") {
		if cfg.Batch.Workers, err = fs.GetInt("workers"); err != nil {
			return err
		}
	}
	return nil
}

// addSearchFlags registers the flags shared by solve and batch.
func addSearchFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("early-exit", "subsets", "Where to stop on reaching the target: 'subsets' or 'top'.")
	f.Bool("subsets", false, "Allow answers that use only some of the numbers.")
	f.Int("count", 6, "Exact number of numbers a puzzle must have (0 for any).")
	f.StringP("output", "o", "text", "Output format: 'text' or 'yaml'.")
}
