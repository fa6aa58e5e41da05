package demo

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gridfill/gridfill/internal/render"
	"github.com/gridfill/gridfill/pkg/gridfill/puzzle"
	"github.com/gridfill/gridfill/pkg/gridfill/solver"
)

// A small built-in skeleton: one across slot on the top and bottom
// row, crossed by two down slots.
var structure = [][]bool{
	{false, true, true, true, false},
	{false, true, false, false, true},
	{false, true, false, false, true},
	{false, true, false, false, true},
	{false, true, true, true, true},
}

var words = []string{
	"PASTA", "PEA", "ACID", "AVID",
	"TACO", "KALE", "BEANS", "RICE",
}

func NewDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Fills a built-in example crossword",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}
}

func run() error {
	p, err := puzzle.New(structure, words)
	if err != nil {
		return err
	}

	s, err := solver.New()
	if err != nil {
		return err
	}

	solution, err := s.Solve(context.Background(), p)
	if err != nil {
		return err
	}
	if solution.Error() != nil {
		fmt.Println("No solution.")
		return nil
	}
	return render.Fprint(os.Stdout, p, solution.Assignment())
}
