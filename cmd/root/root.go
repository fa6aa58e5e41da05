package root

import (
	"github.com/spf13/cobra"

	"github.com/gridfill/gridfill/cmd/demo"
	"github.com/gridfill/gridfill/cmd/solve"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gridfill",
		Short: "Gridfill is a crossword fill constraint solver",
		Long: `A constraint solver that fills crossword skeletons with words.
Slots become variables, crossings become binary constraints, and the
grid is filled by constraint propagation and backtracking search.`,
	}

	// add sub-commands
	rootCmd.AddCommand(solve.NewSolveCommand())
	rootCmd.AddCommand(demo.NewDemoCommand())

	return rootCmd
}
