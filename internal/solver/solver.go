// Package solver fills a crossword skeleton by constraint propagation
// and backtracking search: unary length filtering, AC-3 over the
// overlap constraints, then depth-first search with MRV/degree
// variable selection and least-constraining-value ordering.
package solver

import (
	"context"
	"errors"

	"github.com/gridfill/gridfill/pkg/gridfill"
	"github.com/gridfill/gridfill/pkg/gridfill/puzzle"
)

type Solver struct {
	puzzle    *puzzle.Puzzle
	variables []gridfill.Variable
	domains   *domainStore
	tracer    gridfill.Tracer
}

// Solve prunes every slot's domain to node and arc consistency and
// then searches for a complete assignment. It returns either an
// assignment covering every slot or gridfill.NotSatisfiable; it never
// returns a partial assignment. The whole solve is one synchronous
// computation, so the context is unused.
func (s *Solver) Solve(_ context.Context) (gridfill.Assignment, error) {
	s.domains = newDomainStore(s.puzzle)

	s.enforceNodeConsistency()
	for _, v := range s.variables {
		if s.domains.size(v) == 0 {
			return nil, gridfill.NotSatisfiable{Stage: gridfill.StagePropagation}
		}
	}
	if !s.ac3(nil) {
		return nil, gridfill.NotSatisfiable{Stage: gridfill.StagePropagation}
	}

	assignment := gridfill.Assignment{}
	if !s.backtrack(assignment, 0) {
		return nil, gridfill.NotSatisfiable{Stage: gridfill.StageSearch}
	}
	return assignment, nil
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

func WithPuzzle(p *puzzle.Puzzle) Option {
	return func(s *Solver) error {
		if p == nil {
			return errors.New("puzzle must not be nil")
		}
		s.puzzle = p
		s.variables = p.Variables()
		return nil
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
		if s.puzzle == nil {
			return errors.New("a puzzle is required")
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
