package solve

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gridfill/gridfill/internal/render"
	"github.com/gridfill/gridfill/pkg/gridfill"
	"github.com/gridfill/gridfill/pkg/gridfill/puzzle"
	"github.com/gridfill/gridfill/pkg/gridfill/solver"
)

type options struct {
	output  string
	engine  string
	verbose bool
	trace   bool
}

func NewSolveCommand() *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:   "solve <structure> <words>",
		Short: "Fills a crossword skeleton with words from a list",
		Long: `Fills a crossword skeleton with words from a list. The structure file
holds one line per grid row, with an underscore for every cell that may
hold a letter and any other character for a blocked cell:

#___#
#_##_
#____

The word list holds one candidate word per line. The filled grid is
printed to stdout, or "No solution." when no valid fill exists.`,
		Args: cobra.ExactArgs(2),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
					return fmt.Errorf("file (%s) not found", path)
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], args[1], opts)
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the filled grid to a PNG file")
	cmd.Flags().StringVar(&opts.engine, "engine", string(solver.EngineBacktracking), "solving engine: backtracking or sat")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log puzzle statistics and timings")
	cmd.Flags().BoolVar(&opts.trace, "trace", false, "print every tentative search decision")
	return cmd
}

func run(structurePath, wordsPath string, opts options) error {
	logger := newLogger(opts.verbose)

	p, err := load(structurePath, wordsPath)
	if err != nil {
		return err
	}
	logger.Debug().
		Int("slots", len(p.Variables())).
		Int("words", len(p.Words())).
		Str("engine", opts.engine).
		Msg("puzzle loaded")

	solverOptions := []solver.Option{solver.WithEngine(solver.Engine(opts.engine))}
	if opts.trace {
		solverOptions = append(solverOptions, solver.WithTracer(gridfill.LoggingTracer{Writer: os.Stderr}))
	}
	s, err := solver.New(solverOptions...)
	if err != nil {
		return err
	}

	start := time.Now()
	solution, err := s.Solve(context.Background(), p)
	if err != nil {
		return err
	}
	logger.Debug().Dur("took", time.Since(start)).Msg("solve finished")

	if solution.Error() != nil {
		logger.Debug().AnErr("reason", solution.Error()).Msg("puzzle not satisfiable")
		fmt.Println("No solution.")
		return nil
	}

	if err := render.Fprint(os.Stdout, p, solution.Assignment()); err != nil {
		return err
	}
	if opts.output != "" {
		if err := render.SavePNG(opts.output, p, solution.Assignment()); err != nil {
			return err
		}
		logger.Info().Str("path", opts.output).Msg("image written")
	}
	return nil
}

func load(structurePath, wordsPath string) (*puzzle.Puzzle, error) {
	structureFile, err := os.Open(structurePath)
	if err != nil {
		return nil, fmt.Errorf("error opening structure file (%s): %w", structurePath, err)
	}
	defer structureFile.Close()

	skeleton, err := NewSkeleton(structureFile)
	if err != nil {
		return nil, fmt.Errorf("error parsing structure file (%s): %w", structurePath, err)
	}

	wordsFile, err := os.Open(wordsPath)
	if err != nil {
		return nil, fmt.Errorf("error opening word list (%s): %w", wordsPath, err)
	}
	defer wordsFile.Close()

	words, err := ReadWords(wordsFile)
	if err != nil {
		return nil, fmt.Errorf("error parsing word list (%s): %w", wordsPath, err)
	}

	return puzzle.New(skeleton.Open(), words)
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}
