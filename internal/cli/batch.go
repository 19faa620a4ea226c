package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YashubuStudio/countdown-solver-go/internal/batch"
)

func newBatchCmd(flags *rootFlags, s Streams) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Solve every puzzle in a YAML file",
		Long: `Solve every puzzle in a YAML file of the form

  puzzles:
    - name: classic
      target: 952
      numbers: [25, 50, 75, 100, 3, 6]

Puzzles are solved concurrently and reported in file order. The command
fails if any puzzle fails, after reporting all of them.`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return &ExitError{Code: 2, Message: fmt.Sprintf("batch takes exactly one FILE, got %d arguments", len(args))}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := flags.load(cmd, s)
			if err != nil {
				return err
			}
			output, _ := cmd.Flags().GetString("output")
			r, err := newRenderer(s.Out, output, a.Config.Output.Color)
			if err != nil {
				return err
			}

			f, err := batch.Load(args[0])
			if err != nil {
				return err
			}
			outcomes, err := batch.Run(cmd.Context(), f.Puzzles, a.Config.Batch.Workers, a.Solver, a.Config.Game, a.Logger)
			if err != nil {
				return err
			}
			if err := r.list(outcomes); err != nil {
				return err
			}

			failed := 0
			for _, o := range outcomes {
				if o.Err != nil {
					failed++
				}
			}
			if failed > 0 {
				return &ExitError{Code: 1, Message: fmt.Sprintf("%d of %d puzzles failed", failed, len(outcomes))}
			}
			return nil
		},
	}
	cmd.Flags().Int("workers", 0, "Number of puzzles solved at once (default from config).")
	addSearchFlags(cmd)
	return cmd
}
