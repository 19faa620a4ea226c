package cli

import (
	"github.com/spf13/cobra"
)

func newSolveCmd(flags *rootFlags, s Streams) *cobra.Command {
	var target string
	cmd := &cobra.Command{
		Use:   "solve [numbers...]",
		Short: "Solve one puzzle",
		Long: `Solve one puzzle. Numbers may be given as arguments, separated by spaces
or commas. Without --target and numbers the puzzle is read from standard
input, target first and numbers on the next line.`,
		Example: `  countdown solve -t 952 25 50 75 100 3 6
  countdown solve -t 952 25,50,75,100,3,6 -o yaml
  echo "952\n25 50 75 100 3 6" | countdown solve`,
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

			numberArgs := args
			if target == "" && len(args) == 0 {
				var line string
				if target, line, err = prompt(s.In, s.Err); err != nil {
					return err
				}
				numberArgs = []string{line}
			}

			t, err := parseTarget(target)
			if err != nil {
				return err
			}
			numbers, err := parseNumbers(numberArgs)
			if err != nil {
				return err
			}
			if err := a.Config.Game.CheckCount(numbers); err != nil {
				return err
			}

			res, err := a.Solver.Solve(t, numbers)
			if err != nil {
				return err
			}
			return r.single(t, numbers, res)
		},
	}
	cmd.Flags().StringVarP(&target, "target", "t", "", "Target to reach.")
	addSearchFlags(cmd)
	return cmd
}
