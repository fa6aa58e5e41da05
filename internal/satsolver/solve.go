package satsolver

import (
	"errors"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/gridfill/gridfill/pkg/gridfill"
	"github.com/gridfill/gridfill/pkg/gridfill/puzzle"
)

const (
	satisfiable   = 1
	unsatisfiable = -1
)

// Solve encodes the puzzle, teaches the resulting constraints to a
// fresh gini solver, and decodes the model back into an assignment.
// If no model exists it returns a NotSatisfiable error listing the
// constraints gini blames.
func Solve(p *puzzle.Puzzle) (gridfill.Assignment, error) {
	enc := encode(p)
	litMap, err := newLitMapping(enc.variables)
	if err != nil {
		return nil, err
	}

	g := gini.New()
	litMap.AddConstraints(g)
	litMap.AssumeConstraints(g)

	anchors := litMap.AnchorIdentifiers()
	assumptions := make([]z.Lit, len(anchors))
	for i := range anchors {
		assumptions[i] = litMap.LitOf(anchors[i])
	}
	g.Assume(assumptions...)

	outcome := g.Solve()

	// This likely indicates a bug in the encoding, so discard
	// whatever outcome was produced.
	if derr := litMap.Error(); derr != nil {
		return nil, derr
	}

	switch outcome {
	case satisfiable:
		assignment := gridfill.Assignment{}
		for _, v := range litMap.Variables(g) {
			if pl, ok := enc.placements[v.Identifier()]; ok {
				assignment[pl.slot] = pl.word
			}
		}
		return assignment, nil
	case unsatisfiable:
		return nil, NotSatisfiable(litMap.Conflicts(g))
	}

	// This should never happen.
	return nil, errors.New("unknown outcome")
}
