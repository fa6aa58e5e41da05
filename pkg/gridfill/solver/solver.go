// Package solver is the public entry point for filling puzzles. It
// selects one of the two engines (constraint propagation with
// backtracking search, or reduction to SAT) and wraps the outcome in
// a Solution so that unsolvability stays a value, not a fault.
package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/gridfill/gridfill/internal/satsolver"
	"github.com/gridfill/gridfill/internal/solver"
	"github.com/gridfill/gridfill/pkg/gridfill"
	"github.com/gridfill/gridfill/pkg/gridfill/puzzle"
)

// Engine names a solving backend.
type Engine string

const (
	// EngineBacktracking is the default: node and arc consistency
	// followed by heuristic backtracking search.
	EngineBacktracking Engine = "backtracking"
	// EngineSAT encodes the fill as boolean satisfiability.
	EngineSAT Engine = "sat"
)

// Solution is returned by the Solver when an engine executed
// successfully. A successful execution can still end without a fill:
// in that case Error reports why and Assignment is nil.
type Solution struct {
	err        error
	assignment gridfill.Assignment
}

// Error returns the unsolvability outcome, or nil when a complete
// assignment was found.
func (s *Solution) Error() error {
	return s.err
}

// Assignment returns the complete slot-to-word mapping, or nil when
// the puzzle has no solution.
func (s *Solution) Assignment() gridfill.Assignment {
	return s.assignment
}

// Word returns the word chosen for a slot, if the solution has one.
func (s *Solution) Word(v gridfill.Variable) (string, bool) {
	w, ok := s.assignment[v]
	return w, ok
}

type Solver struct {
	engine Engine
	tracer gridfill.Tracer
}

func (s *Solver) Solve(ctx context.Context, p *puzzle.Puzzle) (*Solution, error) {
	var assignment gridfill.Assignment
	var err error

	switch s.engine {
	case EngineSAT:
		assignment, err = satsolver.Solve(p)
	default:
		var engine *solver.Solver
		engine, err = solver.New(solver.WithPuzzle(p), solver.WithTracer(s.tracer))
		if err != nil {
			return nil, err
		}
		assignment, err = engine.Solve(ctx)
	}

	if err != nil {
		var notSatisfiable gridfill.NotSatisfiable
		var notSatisfiableSAT satsolver.NotSatisfiable
		if errors.As(err, &notSatisfiable) || errors.As(err, &notSatisfiableSAT) {
			return &Solution{err: err}, nil
		}
		return nil, err
	}
	return &Solution{assignment: assignment}, nil
}

func New(options ...Option) (*Solver, error) {
	s := Solver{}
	for _, option := range append(options, defaults...) {
		if err := option(&s); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

type Option func(s *Solver) error

func WithEngine(engine Engine) Option {
	return func(s *Solver) error {
		switch engine {
		case EngineBacktracking, EngineSAT:
			s.engine = engine
			return nil
		default:
			return fmt.Errorf("unknown engine %q", engine)
		}
	}
}

func WithTracer(t gridfill.Tracer) Option {
	return func(s *Solver) error {
		s.tracer = t
		return nil
	}
}

var defaults = []Option{
	func(s *Solver) error {
		if s.engine == "" {
			s.engine = EngineBacktracking
		}
		return nil
	},
	func(s *Solver) error {
		if s.tracer == nil {
			s.tracer = gridfill.DefaultTracer{}
		}
		return nil
	},
}
